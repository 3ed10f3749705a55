package persist

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/infra/kv"
	"storefront/internal/infra/logger"
)

const StoreConfigKey = "storeConfig"

// StoreConfigStore keeps the single store record. Reads merge over defaults.
type StoreConfigStore struct {
	kv       kv.Store
	defaults model.StoreConfig
	log      *logger.Logger
	now      func() time.Time
}

func NewStoreConfigStore(store kv.Store, defaults model.StoreConfig, log *logger.Logger) *StoreConfigStore {
	if log == nil {
		log = logger.Nop()
	}
	return &StoreConfigStore{kv: store, defaults: defaults, log: log.With("component", "StoreConfigStore"), now: time.Now}
}

func (s *StoreConfigStore) Defaults() model.StoreConfig {
	return s.defaults
}

// Load never fails; anything unusable yields the defaults.
func (s *StoreConfigStore) Load(ctx context.Context) model.StoreConfig {
	raw, err := s.kv.Get(ctx, StoreConfigKey)
	if errors.Is(err, kv.ErrNotFound) {
		return s.defaults
	}
	if err != nil {
		s.log.Warn("store config read failed, using defaults", "error", err)
		return s.defaults
	}

	data, err := decode(raw)
	if err != nil && !errors.Is(err, errLegacy) {
		s.log.Warn("store config blob rejected, using defaults", "error", err)
		return s.defaults
	}

	// legacy blobs are the bare config object, same shape as the payload
	cfg, err := model.MergeStoreConfig(s.defaults, data)
	if err != nil {
		s.log.Warn("store config unreadable, using defaults", "error", err)
		return s.defaults
	}
	return cfg
}

func (s *StoreConfigStore) Save(ctx context.Context, cfg model.StoreConfig) error {
	raw, err := encode(cfg, s.now())
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, StoreConfigKey, raw, 0)
}

// Reset removes the stored record so reads return the defaults again.
func (s *StoreConfigStore) Reset(ctx context.Context) error {
	return s.kv.Delete(ctx, StoreConfigKey)
}
