package handler

import (
	"io"
	"net/http"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin/settings: the single store config record
type AdminSettingsHandler struct {
	uc *usecase.StoreConfigUsecase
}

func NewAdminSettingsHandler(uc *usecase.StoreConfigUsecase) *AdminSettingsHandler {
	return &AdminSettingsHandler{uc: uc}
}

func (h *AdminSettingsHandler) RegisterRoutes(admin *echo.Group) {
	admin.GET("/settings", h.get)
	admin.PUT("/settings", h.replace)
	admin.PATCH("/settings", h.patch)
	admin.DELETE("/settings", h.reset)
}

func (h *AdminSettingsHandler) get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Get(c.Request().Context()))
}

func (h *AdminSettingsHandler) replace(c echo.Context) error {
	var req model.StoreConfig
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	view, err := h.uc.Replace(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// patch merges the raw body, so keys the client left out keep their value.
func (h *AdminSettingsHandler) patch(c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	view, err := h.uc.Patch(c.Request().Context(), raw)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *AdminSettingsHandler) reset(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Reset(c.Request().Context()))
}
