package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/infra/logger"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// CartStore loads and saves one cart per session. Load never fails.
type CartStore interface {
	Load(ctx context.Context, sessionID string) model.Cart
	Save(ctx context.Context, sessionID string, cart model.Cart) error
}

// CartUsecase is the /cart business logic. Mutations of one session run one at a time.
type CartUsecase struct {
	carts       CartStore
	productRepo repo.ProductRepository
	log         *logger.Logger
	locks       *keyedMutex
}

func NewCartUsecase(carts CartStore, productRepo repo.ProductRepository, log *logger.Logger) *CartUsecase {
	if log == nil {
		log = logger.Nop()
	}
	return &CartUsecase{
		carts:       carts,
		productRepo: productRepo,
		log:         log.With("component", "CartUsecase"),
		locks:       newKeyedMutex(),
	}
}

type CartItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Count int                `json:"count"`
	Total decimal.Decimal    `json:"total"`
}

type AddCartInput struct {
	ProductID string
	Quantity  int
}

func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (CartResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "missing cart session")
	}
	return toCartResponse(u.carts.Load(ctx, sessionID)), nil
}

// AddItem snapshots the product's current name, price and main image.
// A product already in the cart only gets its quantity increased.
func (u *CartUsecase) AddItem(ctx context.Context, sessionID string, in AddCartInput) (CartResponse, error) {
	if strings.TrimSpace(in.ProductID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		u.log.Error("product lookup failed", "product_id", in.ProductID, "error", err)
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "No se pudo cargar el producto. Intente nuevamente.")
	}

	return u.mutate(ctx, sessionID, func(c *model.Cart) error {
		return c.AddItem(p.CartItem(in.Quantity))
	})
}

func (u *CartUsecase) UpdateQuantity(ctx context.Context, sessionID string, productID string, quantity int) (CartResponse, error) {
	return u.mutate(ctx, sessionID, func(c *model.Cart) error {
		return c.UpdateQuantity(productID, quantity)
	})
}

func (u *CartUsecase) RemoveItem(ctx context.Context, sessionID string, productID string) (CartResponse, error) {
	return u.mutate(ctx, sessionID, func(c *model.Cart) error {
		c.RemoveItem(productID)
		return nil
	})
}

func (u *CartUsecase) Clear(ctx context.Context, sessionID string) (CartResponse, error) {
	return u.mutate(ctx, sessionID, func(c *model.Cart) error {
		c.Clear()
		return nil
	})
}

// mutate runs load, fn, save under the session lock. A failed save is logged
// and the updated cart is still returned.
func (u *CartUsecase) mutate(ctx context.Context, sessionID string, fn func(c *model.Cart) error) (CartResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "missing cart session")
	}

	unlock := u.locks.Lock(sessionID)
	defer unlock()

	cart := u.carts.Load(ctx, sessionID)
	if err := fn(&cart); err != nil {
		return CartResponse{}, cartErr(err)
	}

	if err := u.carts.Save(ctx, sessionID, cart); err != nil {
		u.log.Error("cart save failed", "session", sessionID, "error", err)
	}
	return toCartResponse(cart), nil
}

func cartErr(err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidQuantity):
		return NewHTTPError(http.StatusBadRequest, "invalid quantity")
	case errors.Is(err, model.ErrInvalidPrice):
		return NewHTTPError(http.StatusBadRequest, "invalid price")
	case errors.Is(err, model.ErrEmptyProductID):
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	default:
		return err
	}
}

func toCartResponse(c model.Cart) CartResponse {
	items := make([]CartItemResponse, 0, c.Len())
	for _, it := range c.Items {
		items = append(items, CartItemResponse{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.UnitPrice,
			Image:    it.Image,
			Quantity: it.Quantity,
			Subtotal: it.LineTotal(),
		})
	}
	return CartResponse{
		Items: items,
		Count: c.Count(),
		Total: c.Total(),
	}
}
