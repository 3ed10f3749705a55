package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/logger"
	"storefront/internal/infra/storage"
	appmw "storefront/internal/middleware"
	"storefront/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 10 * time.Second

// Handlers are the route groups the server mounts.
type Handlers struct {
	Product        *handler.ProductHandler
	Cart           *handler.CartHandler
	Blog           *handler.BlogHandler
	Store          *handler.StoreHandler
	Auth           *handler.AuthHandler
	AdminProduct   *handler.AdminProductHandler
	AdminBlog      *handler.AdminBlogHandler
	AdminSettings  *handler.AdminSettingsHandler
	AdminUpload    *handler.AdminUploadHandler
	AdminDashboard *handler.AdminDashboardHandler
}

// New builds the echo instance with the common middleware stack and every route.
func New(cfg config.Config, log *logger.Logger, h Handlers, userRepo repository.UserRepository) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(appmw.RequestLog(log))
	e.Use(echomw.CORSWithConfig(corsConfig(cfg.FEURL)))
	e.Use(echomw.BodyLimit("20M"))

	if cfg.StorageMode == "local" {
		e.Static(storage.MediaRoute, cfg.LocalMediaDir)
	}

	RegisterRoutes(e, cfg, h, userRepo)
	return e
}

func corsConfig(origin string) echomw.CORSConfig {
	return echomw.CORSConfig{
		AllowOrigins: []string{origin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			appmw.CartSessionHeader,
		},
		AllowCredentials: true,
	}
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, e *echo.Echo, addr string, log *logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
