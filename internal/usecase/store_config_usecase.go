package usecase

import (
	"context"
	"net/http"
	"net/mail"
	"strings"
	"sync"

	"storefront/internal/domain/model"
	"storefront/internal/infra/logger"

	"golang.org/x/text/currency"
)

type StoreConfigStore interface {
	Load(ctx context.Context) model.StoreConfig
	Save(ctx context.Context, cfg model.StoreConfig) error
	Reset(ctx context.Context) error
	Defaults() model.StoreConfig
}

const (
	contactGreeting = "Hola, quisiera consultar el catálogo"
	fallbackPlace   = "Santa Cruz, Bolivia"
)

// StoreLinks are the ready-made contact links shown in the footer.
type StoreLinks struct {
	WhatsApp string `json:"whatsapp"`
	Map      string `json:"map"`
	Email    string `json:"email"`
}

type StoreView struct {
	Config model.StoreConfig `json:"config"`
	Links  StoreLinks        `json:"links"`
}

type StoreConfigUsecase struct {
	store StoreConfigStore
	log   *logger.Logger
	mu    sync.Mutex // serializes read-modify-write
}

func NewStoreConfigUsecase(store StoreConfigStore, log *logger.Logger) *StoreConfigUsecase {
	if log == nil {
		log = logger.Nop()
	}
	return &StoreConfigUsecase{store: store, log: log.With("component", "StoreConfigUsecase")}
}

func (u *StoreConfigUsecase) Get(ctx context.Context) StoreView {
	cfg := u.store.Load(ctx)
	return StoreView{Config: cfg, Links: Links(cfg)}
}

// Replace overwrites the whole record.
func (u *StoreConfigUsecase) Replace(ctx context.Context, cfg model.StoreConfig) (StoreView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	cfg = normalizeStoreConfig(cfg)
	if err := ValidateStoreConfig(cfg); err != nil {
		return StoreView{}, err
	}
	u.save(ctx, cfg)
	return StoreView{Config: cfg, Links: Links(cfg)}, nil
}

// Patch decodes raw JSON over the current record; keys not present are kept.
func (u *StoreConfigUsecase) Patch(ctx context.Context, raw []byte) (StoreView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	cfg, err := model.MergeStoreConfig(u.store.Load(ctx), raw)
	if err != nil {
		return StoreView{}, NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	cfg = normalizeStoreConfig(cfg)
	if err := ValidateStoreConfig(cfg); err != nil {
		return StoreView{}, err
	}
	u.save(ctx, cfg)
	return StoreView{Config: cfg, Links: Links(cfg)}, nil
}

func (u *StoreConfigUsecase) Reset(ctx context.Context) StoreView {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.store.Reset(ctx); err != nil {
		u.log.Error("store config reset failed", "error", err)
	}
	cfg := u.store.Defaults()
	return StoreView{Config: cfg, Links: Links(cfg)}
}

func (u *StoreConfigUsecase) save(ctx context.Context, cfg model.StoreConfig) {
	if err := u.store.Save(ctx, cfg); err != nil {
		u.log.Error("store config save failed", "error", err)
	}
}

func normalizeStoreConfig(cfg model.StoreConfig) model.StoreConfig {
	cfg.StoreName = strings.TrimSpace(cfg.StoreName)
	cfg.Email = strings.TrimSpace(cfg.Email)
	cfg.Currency = strings.ToUpper(strings.TrimSpace(cfg.Currency))
	return cfg
}

func ValidateStoreConfig(cfg model.StoreConfig) error {
	if cfg.StoreName == "" {
		return NewHTTPError(http.StatusBadRequest, "storeName is required")
	}
	if cfg.Email != "" {
		if _, err := mail.ParseAddress(cfg.Email); err != nil {
			return NewHTTPError(http.StatusBadRequest, "invalid email")
		}
	}
	if n := len(cfg.WhatsAppDigits()); n < 8 || n > 15 {
		return NewHTTPError(http.StatusBadRequest, "whatsappNumber must have 8 to 15 digits")
	}
	if _, err := currency.ParseISO(cfg.Currency); err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid currency")
	}
	return nil
}

// Links builds the footer links: WhatsApp chat from the phone number, the map
// (explicit URL first, then an address search), and mailto.
func Links(cfg model.StoreConfig) StoreLinks {
	var out StoreLinks

	if d := cfg.PhoneDigits(); d != "" {
		out.WhatsApp = WhatsAppLink(d, contactGreeting)
	}

	if u := strings.TrimSpace(cfg.GoogleMapsURL); u != "" {
		out.Map = u
	} else {
		q := strings.TrimSpace(cfg.Address)
		if q == "" {
			q = fallbackPlace
		}
		out.Map = "https://www.google.com/maps/search/?api=1&query=" + encodeURIComponent(q)
	}

	if e := strings.TrimSpace(cfg.Email); e != "" {
		out.Email = "mailto:" + e
	}
	return out
}
