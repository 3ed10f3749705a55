package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /products and /categories, public
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/:id", h.detail)
	e.GET("/products/:id/suggested", h.suggested)
	e.GET("/categories", h.categories)
}

func (h *ProductHandler) list(c echo.Context) error {
	in, err := listInputFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.ListProducts(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	p, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) suggested(c echo.Context) error {
	items, err := h.uc.Suggested(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, usecase.ProductListResponse{Items: items, Total: len(items)})
}

func (h *ProductHandler) categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Categories())
}

// category, q, featured, limit
func listInputFromQuery(c echo.Context) (usecase.ListProductsInput, error) {
	in := usecase.ListProductsInput{
		Category: c.QueryParam("category"),
		Q:        c.QueryParam("q"),
	}

	if v := c.QueryParam("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return in, usecase.NewHTTPError(http.StatusBadRequest, "invalid featured")
		}
		in.Featured = &b
	}

	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return in, usecase.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		in.Limit = l
	}
	return in, nil
}
