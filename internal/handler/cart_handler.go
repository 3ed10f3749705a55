package handler

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cart, scoped by the visitor's cart session
type CartHandler struct {
	uc       *usecase.CartUsecase
	checkout *usecase.CheckoutUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, checkout *usecase.CheckoutUsecase) *CartHandler {
	return &CartHandler{uc: uc, checkout: checkout}
}

type AddCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo, cookieSecure bool) {
	g := e.Group("/cart")
	g.Use(middleware.CartSession(cookieSecure))

	g.GET("", h.getCart)
	g.POST("", h.addToCart)
	g.DELETE("", h.clear)
	g.PATCH("/items/:id", h.patchItem)
	g.DELETE("/items/:id", h.deleteItem)
	g.POST("/checkout", h.checkoutJSON)
	g.GET("/checkout", h.checkoutRedirect)
}

func (h *CartHandler) getCart(c echo.Context) error {
	out, err := h.uc.GetCart(c.Request().Context(), middleware.CartSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddItem(c.Request().Context(), middleware.CartSessionID(c), usecase.AddCartInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) patchItem(c echo.Context) error {
	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateQuantity(c.Request().Context(), middleware.CartSessionID(c), c.Param("id"), req.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	out, err := h.uc.RemoveItem(c.Request().Context(), middleware.CartSessionID(c), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) clear(c echo.Context) error {
	out, err := h.uc.Clear(c.Request().Context(), middleware.CartSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) checkoutJSON(c echo.Context) error {
	out, err := h.checkout.Checkout(c.Request().Context(), middleware.CartSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// for plain links: the browser follows the redirect straight into WhatsApp
func (h *CartHandler) checkoutRedirect(c echo.Context) error {
	out, err := h.checkout.Checkout(c.Request().Context(), middleware.CartSessionID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Redirect(http.StatusFound, out.URL)
}
