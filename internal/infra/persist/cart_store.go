package persist

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/infra/kv"
	"storefront/internal/infra/logger"
)

const cartKeyPrefix = "cart:"

type cartPayload struct {
	Items []model.CartItem `json:"items"`
}

// CartStore saves one cart per session id.
type CartStore struct {
	kv  kv.Store
	ttl time.Duration
	log *logger.Logger
	now func() time.Time
}

func NewCartStore(store kv.Store, ttl time.Duration, log *logger.Logger) *CartStore {
	if log == nil {
		log = logger.Nop()
	}
	return &CartStore{kv: store, ttl: ttl, log: log.With("component", "CartStore"), now: time.Now}
}

func CartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

// Load never fails: a missing, unreadable or too-new blob yields an empty cart.
func (s *CartStore) Load(ctx context.Context, sessionID string) model.Cart {
	raw, err := s.kv.Get(ctx, CartKey(sessionID))
	if errors.Is(err, kv.ErrNotFound) {
		return model.Cart{}
	}
	if err != nil {
		s.log.Warn("cart read failed, starting empty", "session", sessionID, "error", err)
		return model.Cart{}
	}

	data, err := decode(raw)
	if errors.Is(err, errLegacy) {
		// early builds stored the bare item list
		var items []model.CartItem
		if err := json.Unmarshal(data, &items); err != nil {
			s.log.Warn("legacy cart unreadable, starting empty", "session", sessionID, "error", err)
			return model.Cart{}
		}
		return model.NewCart(items)
	}
	if err != nil {
		s.log.Warn("cart blob rejected, starting empty", "session", sessionID, "error", err)
		return model.Cart{}
	}

	var p cartPayload
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warn("cart payload unreadable, starting empty", "session", sessionID, "error", err)
		return model.Cart{}
	}
	return model.NewCart(p.Items)
}

// Save overwrites the whole cart.
func (s *CartStore) Save(ctx context.Context, sessionID string, cart model.Cart) error {
	items := cart.Items
	if items == nil {
		items = []model.CartItem{}
	}
	raw, err := encode(cartPayload{Items: items}, s.now())
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, CartKey(sessionID), raw, s.ttl)
}

func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	return s.kv.Delete(ctx, CartKey(sessionID))
}
