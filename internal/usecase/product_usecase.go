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

const (
	defaultFeaturedLimit = 4
	suggestedLimit       = 4
	maxListLimit         = 100
	lowStockThreshold    = 5
)

// ProductValidator checks an admin-submitted product before it is written.
type ProductValidator interface {
	ValidateProduct(ctx context.Context, p model.Product) error
}

type IDGenerator interface {
	NewID() string
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
	validator   ProductValidator
	ids         IDGenerator
	log         *logger.Logger
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, validator ProductValidator, ids IDGenerator, log *logger.Logger) *ProductUsecase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUsecase{
		productRepo: productRepo,
		validator:   validator,
		ids:         ids,
		log:         log.With("component", "ProductUsecase"),
	}
}

type ListProductsInput struct {
	Category string
	Q        string
	Featured *bool
	Limit    int
}

type ProductListResponse struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

// ListProducts serves the catalog page and the home page's featured strip.
// Category "all" or empty matches every category.
func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListResponse, error) {
	var q repo.ProductListQuery

	cat := strings.TrimSpace(in.Category)
	if cat != "" && !strings.EqualFold(cat, model.CategoryAll) {
		c, ok := model.ParseCategory(cat)
		if !ok {
			return ProductListResponse{}, NewHTTPError(http.StatusBadRequest, "invalid category")
		}
		q.Category = c
	}

	if in.Limit < 0 || in.Limit > maxListLimit {
		return ProductListResponse{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	q.Limit = in.Limit
	q.Featured = in.Featured
	if q.Limit == 0 && in.Featured != nil && *in.Featured {
		q.Limit = defaultFeaturedLimit
	}
	q.Q = strings.TrimSpace(in.Q)

	items, err := u.productRepo.List(ctx, q)
	if err != nil {
		return ProductListResponse{}, u.dataErr("list products", err)
	}
	return ProductListResponse{Items: items, Total: len(items)}, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, id string) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, u.dataErr("get product", err)
	}
	return p, nil
}

// Suggested returns other products of the same category.
func (u *ProductUsecase) Suggested(ctx context.Context, id string) ([]model.Product, error) {
	p, err := u.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Category:  p.Category,
		ExcludeID: p.ID,
		Limit:     suggestedLimit,
	})
	if err != nil {
		return nil, u.dataErr("suggested products", err)
	}
	return items, nil
}

func (u *ProductUsecase) Categories() []model.CategoryInfo {
	out := make([]model.CategoryInfo, len(model.Categories))
	copy(out, model.Categories)
	return out
}

type ProductInput struct {
	Name        string
	Price       decimal.Decimal
	Description string
	ImageURLs   []string
	Category    string
	Stock       int64
	Featured    bool
}

// ProductPatch changes only the non-nil fields.
type ProductPatch struct {
	Name        *string
	Price       *decimal.Decimal
	Description *string
	ImageURLs   *[]string
	Category    *string
	Stock       *int64
	Featured    *bool
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in ProductInput) (model.Product, error) {
	p := model.Product{
		ID:          u.ids.NewID(),
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Description: strings.TrimSpace(in.Description),
		ImageURLs:   cleanImageURLs(in.ImageURLs),
		Category:    model.Category(strings.ToLower(strings.TrimSpace(in.Category))),
		Stock:       in.Stock,
		Featured:    in.Featured,
	}
	if err := u.validator.ValidateProduct(ctx, p); err != nil {
		return model.Product{}, err
	}

	created, err := u.productRepo.Create(ctx, p)
	if errors.Is(err, repo.ErrConflict) {
		return model.Product{}, NewHTTPError(http.StatusConflict, "product already exists")
	}
	if err != nil {
		return model.Product{}, u.dataErr("create product", err)
	}
	return created, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, id string, in ProductPatch) (model.Product, error) {
	p, err := u.GetProduct(ctx, id)
	if err != nil {
		return model.Product{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.ImageURLs != nil {
		p.ImageURLs = cleanImageURLs(*in.ImageURLs)
	}
	if in.Category != nil {
		p.Category = model.Category(strings.ToLower(strings.TrimSpace(*in.Category)))
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}

	if err := u.validator.ValidateProduct(ctx, p); err != nil {
		return model.Product{}, err
	}

	if err := u.productRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
		}
		return model.Product{}, u.dataErr("update product", err)
	}
	return u.GetProduct(ctx, id)
}

func (u *ProductUsecase) DeleteProduct(ctx context.Context, id string) error {
	err := u.productRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return u.dataErr("delete product", err)
	}
	return nil
}

// an empty list falls back to the placeholder image
func cleanImageURLs(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, s := range urls {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return []string{model.PlaceholderImage}
	}
	return out
}

// dataErr logs a data-service failure and returns the message the client shows.
func (u *ProductUsecase) dataErr(op string, err error) error {
	u.log.Error(op+" failed", "error", err)
	return NewHTTPError(http.StatusInternalServerError, "No se pudieron cargar los productos. Intente nuevamente.")
}
