package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"storefront/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("GO_ENV", "dev")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("CART_STORE", "")
	t.Setenv("STORAGE_MODE", "")
	t.Setenv("ADMIN_EMAIL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "db", cfg.CartStore)
	assert.Equal(t, "local", cfg.StorageMode)
	assert.Equal(t, 30*24*time.Hour, cfg.CartTTL)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.False(t, cfg.CookieSecure)
}

func TestLoad_RequiredKeys(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "prod secret", env: map[string]string{"GO_ENV": "prod", "JWT_SECRET": ""}, want: "JWT_SECRET is required"},
		{name: "redis addr", env: map[string]string{"CART_STORE": "redis", "REDIS_ADDR": ""}, want: "REDIS_ADDR is required"},
		{name: "bucket", env: map[string]string{"STORAGE_MODE": "gcs", "GCS_BUCKET_NAME": ""}, want: "GCS_BUCKET_NAME is required"},
		{name: "driver", env: map[string]string{"DB_DRIVER": "mysql"}, want: "DB_DRIVER must be postgres or sqlite"},
		{name: "port number", env: map[string]string{"POSTGRES_PORT": "abc"}, want: "POSTGRES_PORT must be number"},
		{name: "admin password", env: map[string]string{"ADMIN_EMAIL": "a@b.c", "ADMIN_PASSWORD": ""}, want: "ADMIN_PASSWORD is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_DRIVER", "sqlite")
			t.Setenv("GO_ENV", "dev")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadStoreDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storeName: Mundo Eterno Sucursal\nbusinessHours:\n  sunday: \"9:00 AM - 12:00 PM\"\n"), 0o600))

	got, err := LoadStoreDefaults(path)
	require.NoError(t, err)

	def := model.DefaultStoreConfig()
	assert.Equal(t, "Mundo Eterno Sucursal", got.StoreName)
	assert.Equal(t, "9:00 AM - 12:00 PM", got.BusinessHours.Sunday)
	assert.Equal(t, def.BusinessHours.Monday, got.BusinessHours.Monday)
	assert.Equal(t, def.WhatsAppNumber, got.WhatsAppNumber)
}

func TestLoadStoreDefaults_BadCurrency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency: XXXX\n"), 0o600))

	_, err := LoadStoreDefaults(path)
	require.Error(t, err)
}

func TestLoadStoreDefaults_NoPath(t *testing.T) {
	got, err := LoadStoreDefaults("")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultStoreConfig(), got)
}
