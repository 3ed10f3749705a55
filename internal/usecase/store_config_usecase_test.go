package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/infra/kv"
	"storefront/internal/infra/persist"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreConfigUsecase(t *testing.T) (*usecase.StoreConfigUsecase, *persist.StoreConfigStore) {
	t.Helper()
	store := persist.NewStoreConfigStore(kv.NewMemoryStore(), model.DefaultStoreConfig(), nil)
	return usecase.NewStoreConfigUsecase(store, nil), store
}

func TestStoreConfigUsecase_GetDefaults(t *testing.T) {
	uc, _ := newStoreConfigUsecase(t)

	view := uc.Get(context.Background())
	assert.Equal(t, model.DefaultStoreConfig(), view.Config)
	assert.Equal(t, "https://maps.app.goo.gl/8BZLzaxr7GwxjJwy6", view.Links.Map)
	assert.Equal(t, "mailto:info@mundoeterno.com", view.Links.Email)
	assert.Equal(t, "https://wa.me/59169507260?text=Hola%2C%20quisiera%20consultar%20el%20cat%C3%A1logo", view.Links.WhatsApp)
}

func TestStoreConfigUsecase_PatchKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	uc, store := newStoreConfigUsecase(t)

	view, err := uc.Patch(ctx, []byte(`{"phone":"+591 700 11111","businessHours":{"sunday":"Cerrado por feriado"}}`))
	require.NoError(t, err)

	assert.Equal(t, "+591 700 11111", view.Config.Phone)
	assert.Equal(t, "Cerrado por feriado", view.Config.BusinessHours.Sunday)
	assert.Equal(t, "9:00 AM - 6:00 PM", view.Config.BusinessHours.Monday)
	assert.Equal(t, "Mundo Eterno", view.Config.StoreName)
	assert.Contains(t, view.Links.WhatsApp, "https://wa.me/59170011111?")

	// persisted
	assert.Equal(t, view.Config, store.Load(ctx))
}

func TestStoreConfigUsecase_PatchClearsOptionalLinks(t *testing.T) {
	ctx := context.Background()
	uc, _ := newStoreConfigUsecase(t)

	_, err := uc.Patch(ctx, []byte(`{"googleMapsUrl":"","socialMedia":{"facebook":""}}`))
	require.NoError(t, err)

	view := uc.Get(ctx)
	assert.Empty(t, view.Config.SocialMedia.Facebook)
	assert.Empty(t, view.Config.GoogleMapsURL)
	assert.Equal(t, model.DefaultStoreConfig().SocialMedia.Instagram, view.Config.SocialMedia.Instagram)
	assert.Contains(t, view.Links.Map, "https://www.google.com/maps/search/?api=1&query=")
}

func TestStoreConfigUsecase_PatchRejects(t *testing.T) {
	ctx := context.Background()
	uc, store := newStoreConfigUsecase(t)

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{name: "malformed", body: `{"phone":`, msg: "invalid body"},
		{name: "empty name", body: `{"storeName":"  "}`, msg: "storeName is required"},
		{name: "bad email", body: `{"email":"no-at-sign"}`, msg: "invalid email"},
		{name: "short whatsapp", body: `{"whatsappNumber":"123"}`, msg: "whatsappNumber must have 8 to 15 digits"},
		{name: "bad currency", body: `{"currency":"XYZW"}`, msg: "invalid currency"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Patch(ctx, []byte(tt.body))
			he := requireHTTPError(t, err, http.StatusBadRequest)
			assert.Equal(t, tt.msg, he.Message)
		})
	}

	assert.Equal(t, model.DefaultStoreConfig(), store.Load(ctx))
}

func TestStoreConfigUsecase_ReplaceAndReset(t *testing.T) {
	ctx := context.Background()
	uc, _ := newStoreConfigUsecase(t)

	cfg := model.DefaultStoreConfig()
	cfg.StoreName = " Mundo Eterno Norte "
	cfg.Currency = "usd"
	cfg.GoogleMapsURL = ""
	cfg.Address = "Av. Banzer 4to anillo"

	view, err := uc.Replace(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, "Mundo Eterno Norte", view.Config.StoreName)
	assert.Equal(t, "USD", view.Config.Currency)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Av.%20Banzer%204to%20anillo", view.Links.Map)
	assert.Equal(t, "Mundo Eterno Norte", uc.Get(ctx).Config.StoreName)

	reset := uc.Reset(ctx)
	assert.Equal(t, model.DefaultStoreConfig(), reset.Config)
	assert.Equal(t, model.DefaultStoreConfig(), uc.Get(ctx).Config)
}

func TestLinks_Fallbacks(t *testing.T) {
	links := usecase.Links(model.StoreConfig{})

	assert.Empty(t, links.WhatsApp)
	assert.Empty(t, links.Email)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Santa%20Cruz%2C%20Bolivia", links.Map)
}
