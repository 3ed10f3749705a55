package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type BlogPostRepository interface {
	// newest first
	List(ctx context.Context) ([]model.BlogPost, error)
	FindByID(ctx context.Context, id string) (model.BlogPost, error)
	Create(ctx context.Context, p model.BlogPost) (model.BlogPost, error)
	Update(ctx context.Context, p model.BlogPost) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type ProfileRepository interface {
	// FindByIDs skips ids without a row; the result order is unspecified.
	FindByIDs(ctx context.Context, ids []string) ([]model.Profile, error)
	Upsert(ctx context.Context, p model.Profile) error
}
