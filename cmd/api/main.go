package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	"storefront/internal/infra/kv"
	"storefront/internal/infra/logger"
	"storefront/internal/infra/persist"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/infra/storage"
	"storefront/internal/infra/token"
	"storefront/internal/server"
	"storefront/internal/usecase"
	auth "storefront/internal/usecase/auth_usecase"
	"storefront/internal/validator"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.Connect(cfg)
	if err != nil {
		return err
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	store, closeKV, err := newKVStore(ctx, cfg, gormDB)
	if err != nil {
		return err
	}
	defer closeKV()

	images, closeStorage, err := newImageStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	storeDefaults, err := config.LoadStoreDefaults(cfg.StoreDefaultsFile)
	if err != nil {
		return err
	}

	// repositories
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	postRepo := infraRepo.NewBlogPostGormRepository(gormDB)
	profileRepo := infraRepo.NewProfileGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	// persistence for session-scoped state
	carts := persist.NewCartStore(store, cfg.CartTTL, log)
	storeConfig := persist.NewStoreConfigStore(store, storeDefaults, log)

	idGen := &uuidGenerator{}
	clock := &realClock{}

	issuer, err := token.NewJWTIssuer(cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		return err
	}

	// usecases
	productUC := usecase.NewProductUsecase(productRepo, validator.NewProductValidator(), idGen, log)
	cartUC := usecase.NewCartUsecase(carts, productRepo, log)
	checkoutUC := usecase.NewCheckoutUsecase(carts, storeConfig)
	storeUC := usecase.NewStoreConfigUsecase(storeConfig, log)
	blogUC := usecase.NewBlogUsecase(postRepo, profileRepo, validator.NewBlogValidator(), idGen, clock, log)
	uploadUC := usecase.NewUploadUsecase(images, idGen, log)
	dashboardUC := usecase.NewDashboardUsecase(productRepo, postRepo, log)

	hasher := auth.NewBcryptPasswordHasher(12)
	loginUC := auth.NewLoginUsecase(userRepo, auth.NewBcryptPasswordVerifier(), issuer, clock)
	sessionUC := auth.NewSessionUsecase(userRepo)

	if cfg.AdminEmail != "" {
		bootstrap := auth.NewBootstrapAdminUsecase(userRepo, txm, hasher, idGen, clock)
		created, err := bootstrap.Execute(ctx, auth.BootstrapAdminInput{
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
			FullName: cfg.AdminName,
		})
		if err != nil {
			return err
		}
		if created {
			log.Info("admin account created", "email", cfg.AdminEmail)
		}
	}

	e := server.New(cfg, log, server.Handlers{
		Product:        handler.NewProductHandler(productUC),
		Cart:           handler.NewCartHandler(cartUC, checkoutUC),
		Blog:           handler.NewBlogHandler(blogUC),
		Store:          handler.NewStoreHandler(storeUC),
		Auth:           handler.NewAuthHandler(loginUC, sessionUC),
		AdminProduct:   handler.NewAdminProductHandler(productUC),
		AdminBlog:      handler.NewAdminBlogHandler(blogUC),
		AdminSettings:  handler.NewAdminSettingsHandler(storeUC),
		AdminUpload:    handler.NewAdminUploadHandler(uploadUC),
		AdminDashboard: handler.NewAdminDashboardHandler(dashboardUC),
	}, userRepo)

	addr := cfg.Port
	if addr == "" || addr[0] != ':' {
		addr = ":" + addr
	}
	return server.Run(ctx, e, addr, log)
}

// newKVStore picks the cart/store-config backend from CART_STORE.
func newKVStore(ctx context.Context, cfg config.Config, gormDB *gorm.DB) (kv.Store, func() error, error) {
	switch cfg.CartStore {
	case "redis":
		return kv.NewRedisStore(ctx, cfg.RedisAddr, "storefront:")
	case "memory":
		return kv.NewMemoryStore(), noop, nil
	default:
		return kv.NewGormStore(gormDB), noop, nil
	}
}

func newImageStorage(ctx context.Context, cfg config.Config, log *logger.Logger) (storage.ImageStorage, func() error, error) {
	if cfg.StorageMode == "gcs" {
		return storage.NewGCSStorage(ctx, log, cfg.GCSBucketName, cfg.GCSCDNDomain)
	}
	st, err := storage.NewLocalStorage(cfg.LocalMediaDir, cfg.PublicBaseURL)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Object storage initialized", "mode", "local", "dir", st.Dir())
	return st, noop, nil
}

func noop() error { return nil }
