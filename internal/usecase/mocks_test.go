package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}
func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}
func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}
func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *ProductRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *ProductRepoMock) Stats(ctx context.Context, lowStockAt int64) (repo.ProductStats, error) {
	args := m.Called(ctx, lowStockAt)
	s, _ := args.Get(0).(repo.ProductStats)
	return s, args.Error(1)
}

type BlogRepoMock struct{ mock.Mock }

func (m *BlogRepoMock) List(ctx context.Context) ([]model.BlogPost, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]model.BlogPost)
	return p, args.Error(1)
}
func (m *BlogRepoMock) FindByID(ctx context.Context, id string) (model.BlogPost, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.BlogPost)
	return p, args.Error(1)
}
func (m *BlogRepoMock) Create(ctx context.Context, p model.BlogPost) (model.BlogPost, error) {
	args := m.Called(ctx, p)
	c, _ := args.Get(0).(model.BlogPost)
	return c, args.Error(1)
}
func (m *BlogRepoMock) Update(ctx context.Context, p model.BlogPost) error {
	return m.Called(ctx, p).Error(0)
}
func (m *BlogRepoMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *BlogRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type ProfileRepoMock struct{ mock.Mock }

func (m *ProfileRepoMock) FindByIDs(ctx context.Context, ids []string) ([]model.Profile, error) {
	args := m.Called(ctx, ids)
	p, _ := args.Get(0).([]model.Profile)
	return p, args.Error(1)
}
func (m *ProfileRepoMock) Upsert(ctx context.Context, p model.Profile) error {
	return m.Called(ctx, p).Error(0)
}

// failingCartStore keeps carts in memory but refuses every write.
type failingCartStore struct {
	cart  model.Cart
	saves int
}

func (s *failingCartStore) Load(context.Context, string) model.Cart { return s.cart }
func (s *failingCartStore) Save(context.Context, string, model.Cart) error {
	s.saves++
	return errors.New("quota exceeded")
}

type fixedIDs struct {
	next int
	ids  []string
}

func (f *fixedIDs) NewID() string {
	id := f.ids[f.next%len(f.ids)]
	f.next++
	return id
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// requireHTTPError asserts err is a *usecase.HTTPError with the given status.
func requireHTTPError(t *testing.T, err error, status int) *usecase.HTTPError {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "want HTTPError, got %v", err)
	require.Equal(t, status, he.Status, he.Message)
	return he
}
