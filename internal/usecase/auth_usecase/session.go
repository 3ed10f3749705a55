package auth

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
)

var ErrSessionGone = errors.New("session no longer valid")

// SessionUsecase covers the signed-in admin: who am I, and sign out everywhere.
type SessionUsecase struct {
	userRepo repository.UserRepository
}

func NewSessionUsecase(userRepo repository.UserRepository) *SessionUsecase {
	return &SessionUsecase{userRepo: userRepo}
}

func (u *SessionUsecase) Me(ctx context.Context, userID string) (*model.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSessionGone
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}

// Logout bumps the token version, which invalidates every token already issued.
func (u *SessionUsecase) Logout(ctx context.Context, userID string) error {
	err := u.userRepo.IncrementTokenVersion(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrSessionGone
	}
	return err
}
