package handler

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type BlogPostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

type BlogPostUpdateRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
}

// /admin/blog
type AdminBlogHandler struct {
	uc *usecase.BlogUsecase
}

func NewAdminBlogHandler(uc *usecase.BlogUsecase) *AdminBlogHandler {
	return &AdminBlogHandler{uc: uc}
}

func (h *AdminBlogHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/blog", h.list)
	admin.POST("/blog", h.create)
	admin.GET("/blog/:id", h.detail)
	admin.PUT("/blog/:id", h.update)
	admin.DELETE("/blog/:id", h.delete)
}

func (h *AdminBlogHandler) list(c echo.Context) error {
	posts, err := h.uc.ListPosts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, posts)
}

func (h *AdminBlogHandler) detail(c echo.Context) error {
	p, err := h.uc.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// the signed-in admin is the author
func (h *AdminBlogHandler) create(c echo.Context) error {
	authorID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.CreatePost(c.Request().Context(), authorID, usecase.BlogPostInput{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *AdminBlogHandler) update(c echo.Context) error {
	var req BlogPostUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.UpdatePost(c.Request().Context(), c.Param("id"), usecase.BlogPostPatch{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *AdminBlogHandler) delete(c echo.Context) error {
	if err := h.uc.DeletePost(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}
