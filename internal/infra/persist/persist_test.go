package persist

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/infra/kv"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

func newCartStore(t *testing.T) (*CartStore, *kv.MemoryStore) {
	t.Helper()
	mem := kv.NewMemoryStore()
	s := NewCartStore(mem, 0, nil)
	s.now = fixedNow
	return s, mem
}

func decimalComparer() cmp.Option {
	return cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
}

func TestCartStore_RoundTrip(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	var c model.Cart
	require.NoError(t, c.AddItem(model.CartItem{ID: "p1", Name: "Rosas rojas", UnitPrice: decimal.RequireFromString("150.50"), Image: "/a.jpg", Quantity: 2}))
	require.NoError(t, c.AddItem(model.CartItem{ID: "p2", Name: "Girasoles", UnitPrice: decimal.RequireFromString("80"), Image: "/b.jpg", Quantity: 1}))

	require.NoError(t, s.Save(ctx, "sess-1", c))

	got := s.Load(ctx, "sess-1")
	assert.Empty(t, cmp.Diff(c, got, decimalComparer()))
	assert.True(t, got.Total().Equal(c.Total()))
}

func TestCartStore_WritesVersionedEnvelope(t *testing.T) {
	s, mem := newCartStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "sess-1", model.Cart{}))

	raw, err := mem.Get(ctx, CartKey("sess-1"))
	require.NoError(t, err)

	var env struct {
		Version int             `json:"version"`
		SavedAt time.Time       `json:"saved_at"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, CurrentVersion, env.Version)
	assert.True(t, env.SavedAt.Equal(fixedNow()))
	assert.JSONEq(t, `{"items":[]}`, string(env.Data))
}

func TestCartStore_SessionsAreIsolated(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	var c model.Cart
	require.NoError(t, c.AddItem(model.CartItem{ID: "p1", Name: "x", UnitPrice: decimal.NewFromInt(1), Quantity: 1}))
	require.NoError(t, s.Save(ctx, "a", c))

	assert.True(t, s.Load(ctx, "b").IsEmpty())
	assert.Equal(t, 1, s.Load(ctx, "a").Len())
}

func TestCartStore_FallsBackToEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "malformed", raw: `{"version":1,"data":`},
		{name: "not json", raw: `hola`},
		{name: "future version", raw: `{"version":99,"saved_at":"2030-01-01T00:00:00Z","data":{"items":[{"id":"p1","name":"x","price":1,"image":"","quantity":1}]}}`},
		{name: "null data", raw: `{"version":1,"data":null}`},
		{name: "wrong payload shape", raw: `{"version":1,"data":{"items":"nope"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mem := newCartStore(t)
			ctx := context.Background()
			require.NoError(t, mem.Set(ctx, CartKey("s"), []byte(tt.raw), 0))

			c := s.Load(ctx, "s")
			assert.True(t, c.IsEmpty())
			assert.True(t, c.Total().IsZero())
		})
	}
}

func TestCartStore_UpgradesLegacyItemArray(t *testing.T) {
	s, mem := newCartStore(t)
	ctx := context.Background()

	legacy := `[
		{"id":"p1","name":"Rosas","price":120.5,"image":"/r.jpg","quantity":1},
		{"id":"p1","name":"Rosas","price":120.5,"image":"/r.jpg","quantity":2},
		{"id":"","name":"broken","price":1,"image":"","quantity":1},
		{"id":"p2","name":"Lirios","price":"45","image":"/l.jpg","quantity":1}
	]`
	require.NoError(t, mem.Set(ctx, CartKey("s"), []byte(legacy), 0))

	c := s.Load(ctx, "s")
	require.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.True(t, c.Total().Equal(decimal.RequireFromString("406.5")))
}

func TestCartStore_Delete(t *testing.T) {
	s, _ := newCartStore(t)
	ctx := context.Background()

	var c model.Cart
	require.NoError(t, c.AddItem(model.CartItem{ID: "p1", Name: "x", UnitPrice: decimal.NewFromInt(1), Quantity: 1}))
	require.NoError(t, s.Save(ctx, "s", c))
	require.NoError(t, s.Delete(ctx, "s"))

	assert.True(t, s.Load(ctx, "s").IsEmpty())
}

func TestStoreConfigStore_DefaultsWhenAbsent(t *testing.T) {
	s := NewStoreConfigStore(kv.NewMemoryStore(), model.DefaultStoreConfig(), nil)
	assert.Equal(t, model.DefaultStoreConfig(), s.Load(context.Background()))
}

func TestStoreConfigStore_RoundTrip(t *testing.T) {
	s := NewStoreConfigStore(kv.NewMemoryStore(), model.DefaultStoreConfig(), nil)
	ctx := context.Background()

	cfg := model.DefaultStoreConfig()
	cfg.StoreName = "Mundo Eterno Centro"
	cfg.BusinessHours.Sunday = "10:00 AM - 12:00 PM"
	require.NoError(t, s.Save(ctx, cfg))

	assert.Empty(t, cmp.Diff(cfg, s.Load(ctx)))
}

func TestStoreConfigStore_ClearedOptionalFieldsStayCleared(t *testing.T) {
	s := NewStoreConfigStore(kv.NewMemoryStore(), model.DefaultStoreConfig(), nil)
	ctx := context.Background()

	cfg := model.DefaultStoreConfig()
	cfg.SocialMedia.Facebook = ""
	cfg.GoogleMapsURL = ""
	require.NoError(t, s.Save(ctx, cfg))

	got := s.Load(ctx)
	assert.Empty(t, got.SocialMedia.Facebook)
	assert.Empty(t, got.GoogleMapsURL)
	assert.Equal(t, cfg.SocialMedia.Instagram, got.SocialMedia.Instagram)
}

func TestStoreConfigStore_LegacyPartialObject(t *testing.T) {
	mem := kv.NewMemoryStore()
	s := NewStoreConfigStore(mem, model.DefaultStoreConfig(), nil)
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, StoreConfigKey, []byte(`{"storeName":"Flores","socialMedia":{"facebook":"https://fb.com/flores"}}`), 0))

	got := s.Load(ctx)
	assert.Equal(t, "Flores", got.StoreName)
	assert.Equal(t, "https://fb.com/flores", got.SocialMedia.Facebook)
	assert.Equal(t, model.DefaultStoreConfig().SocialMedia.Instagram, got.SocialMedia.Instagram)
	assert.Equal(t, model.DefaultStoreConfig().WhatsAppNumber, got.WhatsAppNumber)
}

func TestStoreConfigStore_BadBlobs(t *testing.T) {
	for _, raw := range []string{`{"storeName":`, `{"version":7,"data":{"storeName":"X"}}`, `[1,2]`} {
		mem := kv.NewMemoryStore()
		s := NewStoreConfigStore(mem, model.DefaultStoreConfig(), nil)
		ctx := context.Background()
		require.NoError(t, mem.Set(ctx, StoreConfigKey, []byte(raw), 0))

		assert.Equal(t, model.DefaultStoreConfig(), s.Load(ctx), raw)
	}
}

func TestStoreConfigStore_Reset(t *testing.T) {
	s := NewStoreConfigStore(kv.NewMemoryStore(), model.DefaultStoreConfig(), nil)
	ctx := context.Background()

	cfg := model.DefaultStoreConfig()
	cfg.Phone = "+591 1"
	require.NoError(t, s.Save(ctx, cfg))
	require.NoError(t, s.Reset(ctx))

	assert.Equal(t, model.DefaultStoreConfig(), s.Load(ctx))
}
