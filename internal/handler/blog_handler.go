package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type BlogHandler struct {
	uc *usecase.BlogUsecase
}

func NewBlogHandler(uc *usecase.BlogUsecase) *BlogHandler {
	return &BlogHandler{uc: uc}
}

func (h *BlogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/blog", h.list)
	e.GET("/blog/:id", h.detail)
}

func (h *BlogHandler) list(c echo.Context) error {
	posts, err := h.uc.ListPosts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) detail(c echo.Context) error {
	p, err := h.uc.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
