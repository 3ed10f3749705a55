package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the whole application configuration, read from the environment.
type Config struct {
	Port  string
	GoEnv string // dev/prod

	DBDriver    string // postgres/sqlite
	DatabaseURL string
	SQLitePath  string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     int
	PostgresSSLMode  string

	JWTSecret  string
	SessionTTL time.Duration // admin token lifetime

	CartStore string // redis/db/memory
	RedisAddr string
	CartTTL   time.Duration

	StorageMode   string // gcs/local
	GCSBucketName string
	GCSCDNDomain  string
	LocalMediaDir string
	PublicBaseURL string

	StoreDefaultsFile string

	AdminEmail    string
	AdminPassword string
	AdminName     string

	FEURL        string
	CookieSecure bool
}

func (c Config) IsProd() bool {
	return c.GoEnv == "prod" || c.GoEnv == "production"
}

// Load reads the environment, fills defaults and checks required keys.
func Load() (Config, error) {
	var err error
	cfg := Config{
		Port:  getenv("PORT", "8080"),
		GoEnv: getenv("GO_ENV", "dev"),

		DBDriver:    strings.ToLower(getenv("DB_DRIVER", "postgres")),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getenv("SQLITE_PATH", "storefront.db"),

		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       getenv("POSTGRES_DB", "storefront"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		CartStore: strings.ToLower(getenv("CART_STORE", "db")),
		RedisAddr: os.Getenv("REDIS_ADDR"),

		StorageMode:   strings.ToLower(getenv("STORAGE_MODE", "local")),
		GCSBucketName: os.Getenv("GCS_BUCKET_NAME"),
		GCSCDNDomain:  os.Getenv("GCS_CDN_DOMAIN"),
		LocalMediaDir: getenv("LOCAL_MEDIA_DIR", "./media"),
		PublicBaseURL: strings.TrimRight(getenv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),

		StoreDefaultsFile: os.Getenv("STORE_DEFAULTS_FILE"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminName:     getenv("ADMIN_NAME", "Administrador"),

		FEURL: getenv("FE_URL", "http://localhost:3000"),
	}

	if cfg.PostgresPort, err = atoiDefault("POSTGRES_PORT", 5432); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = durationDefault("SESSION_TTL", 12*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.CartTTL, err = durationDefault("CART_TTL", 30*24*time.Hour); err != nil {
		return Config{}, err
	}
	cfg.CookieSecure = envBool("COOKIE_SECURE", cfg.IsProd())

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "postgres":
		if c.DatabaseURL == "" && c.PostgresPassword == "" {
			return fmt.Errorf("POSTGRES_PASSWORD is required")
		}
	case "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be postgres or sqlite")
	}

	if c.JWTSecret == "" {
		if c.IsProd() {
			return fmt.Errorf("JWT_SECRET is required")
		}
		c.JWTSecret = "dev_secret_change_me"
	}

	switch c.CartStore {
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required")
		}
	case "db", "memory":
	default:
		return fmt.Errorf("CART_STORE must be redis, db or memory")
	}

	switch c.StorageMode {
	case "gcs":
		if c.GCSBucketName == "" {
			return fmt.Errorf("GCS_BUCKET_NAME is required")
		}
	case "local":
		if c.LocalMediaDir == "" {
			return fmt.Errorf("LOCAL_MEDIA_DIR is required")
		}
	default:
		return fmt.Errorf("STORAGE_MODE must be gcs or local")
	}

	if c.AdminEmail != "" && c.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	return nil
}

func getenv(key string, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func durationDefault(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}

func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}
