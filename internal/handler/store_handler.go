package handler

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// GET /store: contact info, hours and ready-made footer links
type StoreHandler struct {
	uc *usecase.StoreConfigUsecase
}

func NewStoreHandler(uc *usecase.StoreConfigUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

func (h *StoreHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/store", h.get)
}

func (h *StoreHandler) get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Get(c.Request().Context()))
}
