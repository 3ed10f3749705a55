package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ProductCreateRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURLs   []string        `json:"image_urls"`
	Category    string          `json:"category"`
	Stock       int64           `json:"stock"`
	Featured    bool            `json:"featured"`
}

// ProductUpdateRequest leaves absent fields untouched.
type ProductUpdateRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURLs   *[]string        `json:"image_urls"`
	Category    *string          `json:"category"`
	Stock       *int64           `json:"stock"`
	Featured    *bool            `json:"featured"`
}

// /admin/products
type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

func (h *AdminProductHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/products", h.list)
	admin.GET("/products/:id", h.detail)
	admin.POST("/products", h.createProduct)
	admin.PUT("/products/:id", h.updateProduct)
	admin.DELETE("/products/:id", h.deleteProduct)
}

func (h *AdminProductHandler) list(c echo.Context) error {
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

func (h *AdminProductHandler) detail(c echo.Context) error {
	p, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *AdminProductHandler) createProduct(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), usecase.ProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
		Category:    req.Category,
		Stock:       req.Stock,
		Featured:    req.Featured,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *AdminProductHandler) updateProduct(c echo.Context) error {
	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), usecase.ProductPatch{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
		Category:    req.Category,
		Stock:       req.Stock,
		Featured:    req.Featured,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *AdminProductHandler) deleteProduct(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}
