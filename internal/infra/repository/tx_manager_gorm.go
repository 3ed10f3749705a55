package repository

import (
	"context"

	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	users    repo.UserRepository
	profiles repo.ProfileRepository
}

func (r *txReposGorm) Users() repo.UserRepository       { return r.users }
func (r *txReposGorm) Profiles() repo.ProfileRepository { return r.profiles }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			users:    NewUserGormRepository(tx),
			profiles: NewProfileGormRepository(tx),
		}
		return fn(r)
	})
}
