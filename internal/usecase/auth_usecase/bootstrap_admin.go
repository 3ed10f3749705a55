package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type BootstrapAdminInput struct {
	Email    string
	Password string
	FullName string
}

var (
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")
)

const minPasswordLen = 8

// PasswordHasher turns a plain password into a stored hash.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}

type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// BootstrapAdminUsecase makes sure the configured admin account exists.
type BootstrapAdminUsecase struct {
	userRepo repository.UserRepository
	tx       repository.TransactionManager
	hasher   PasswordHasher
	idGen    IDGenerator
	clock    Clock
}

func NewBootstrapAdminUsecase(
	userRepo repository.UserRepository,
	tx repository.TransactionManager,
	hasher PasswordHasher,
	idGen IDGenerator,
	clock Clock,
) *BootstrapAdminUsecase {
	return &BootstrapAdminUsecase{
		userRepo: userRepo,
		tx:       tx,
		hasher:   hasher,
		idGen:    idGen,
		clock:    clock,
	}
}

// Execute creates the admin and its profile in one transaction. It reports
// created=false when the email is already registered; the existing account is left alone.
func (u *BootstrapAdminUsecase) Execute(ctx context.Context, in BootstrapAdminInput) (created bool, err error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return false, ErrInvalidEmailFormat
	}
	if len(in.Password) < minPasswordLen {
		return false, ErrPasswordTooShort
	}

	_, err = u.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return false, err
	}

	now := u.clock.Now()
	user := &model.User{
		ID:           u.idGen.NewID(),
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		if err := r.Users().Create(ctx, user); err != nil {
			return err
		}
		return r.Profiles().Upsert(ctx, model.Profile{ID: user.ID, FullName: strings.TrimSpace(in.FullName)})
	})
	if errors.Is(err, repository.ErrConflict) {
		// another instance won the race
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
