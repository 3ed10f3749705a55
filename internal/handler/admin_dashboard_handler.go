package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminDashboardHandler struct {
	uc *usecase.DashboardUsecase
}

func NewAdminDashboardHandler(uc *usecase.DashboardUsecase) *AdminDashboardHandler {
	return &AdminDashboardHandler{uc: uc}
}

func (h *AdminDashboardHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/dashboard", h.summary)
}

func (h *AdminDashboardHandler) summary(c echo.Context) error {
	out, err := h.uc.Summary(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
