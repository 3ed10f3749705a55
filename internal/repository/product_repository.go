package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// ProductListQuery filters the catalog. Zero values mean "no filter".
type ProductListQuery struct {
	Category  model.Category
	Q         string // case-insensitive substring of name or description
	Featured  *bool
	ExcludeID string
	Limit     int
}

type ProductStats struct {
	Total    int64 `json:"total"`
	Featured int64 `json:"featured"`
	LowStock int64 `json:"low_stock"`
}

// ProductRepository only stores and loads products.
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id string) error

	Stats(ctx context.Context, lowStockAt int64) (ProductStats, error)
}
