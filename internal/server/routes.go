package server

import (
	"net/http"

	"storefront/internal/config"
	"storefront/internal/middleware"
	"storefront/internal/repository"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers, userRepo repository.UserRepository) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h.Product.RegisterRoutes(e)
	h.Blog.RegisterRoutes(e)
	h.Store.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e, cfg.CookieSecure)

	// everything under /admin except login
	admin := e.Group("/admin",
		middleware.AuthJWT(cfg.JWTSecret),
		middleware.TokenVersionGuard(userRepo),
		middleware.AdminRoleGuard(),
	)
	h.Auth.RegisterRoutes(e, admin)
	h.AdminProduct.RegisterRoutes(admin)
	h.AdminBlog.RegisterRoutes(admin)
	h.AdminSettings.RegisterRoutes(admin)
	h.AdminUpload.RegisterRoutes(admin)
	h.AdminDashboard.RegisterRoutes(admin)
}
