package repository

import (
	"context"

	"storefront/internal/domain/model"
	domainrepo "storefront/internal/repository"

	"gorm.io/gorm"
)

type userGormRepository struct {
	db *gorm.DB
}

// DI
func NewUserGormRepository(db *gorm.DB) domainrepo.UserRepository {
	return &userGormRepository{db: db}
}

func (r *userGormRepository) Create(ctx context.Context, user *model.User) error {
	return mapErr("create user", r.db.WithContext(ctx).Create(user).Error)
}

// FindByEmail returns ErrNotFound when nobody has that address.
func (r *userGormRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, mapErr("find user", err)
	}
	return &u, nil
}

func (r *userGormRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, mapErr("find user", err)
	}
	return &u, nil
}

func (r *userGormRepository) Update(ctx context.Context, user *model.User) error {
	return mapErr("update user", r.db.WithContext(ctx).Save(user).Error)
}

func (r *userGormRepository) IncrementTokenVersion(ctx context.Context, id string) error {
	//token_versionを+1して発行済みのアクセストークンを無効化する
	res := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn("token_version", gorm.Expr("token_version + ?", 1))

	if res.Error != nil {
		return mapErr("increment token version", res.Error)
	}
	//更新0件はuserが存在しない
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}
