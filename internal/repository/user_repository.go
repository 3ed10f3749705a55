package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// active flag, last login
	Update(ctx context.Context, user *model.User) error
	// signs out every token issued so far
	IncrementTokenVersion(ctx context.Context, userID string) error
}
