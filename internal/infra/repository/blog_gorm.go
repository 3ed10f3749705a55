package repository

import (
	"context"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlogPostGormRepository struct {
	db *gorm.DB
}

func NewBlogPostGormRepository(db *gorm.DB) *BlogPostGormRepository {
	return &BlogPostGormRepository{db: db}
}

func (r *BlogPostGormRepository) List(ctx context.Context) ([]model.BlogPost, error) {
	var posts []model.BlogPost
	err := r.db.WithContext(ctx).
		Order("published_at desc").
		Order("id desc").
		Find(&posts).Error
	if err != nil {
		return []model.BlogPost{}, mapErr("list posts", err)
	}
	return posts, nil
}

func (r *BlogPostGormRepository) FindByID(ctx context.Context, id string) (model.BlogPost, error) {
	var p model.BlogPost
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return model.BlogPost{}, mapErr("find post", err)
	}
	return p, nil
}

func (r *BlogPostGormRepository) Create(ctx context.Context, p model.BlogPost) (model.BlogPost, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.BlogPost{}, mapErr("create post", err)
	}
	return p, nil
}

func (r *BlogPostGormRepository) Update(ctx context.Context, p model.BlogPost) error {
	res := r.db.WithContext(ctx).Model(&model.BlogPost{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"title":      p.Title,
		"content":    p.Content,
		"image_url":  p.ImageURL,
		"updated_at": p.UpdatedAt,
	})
	if res.Error != nil {
		return mapErr("update post", res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *BlogPostGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BlogPost{})
	if res.Error != nil {
		return mapErr("delete post", res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *BlogPostGormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.BlogPost{}).Count(&n).Error; err != nil {
		return 0, mapErr("count posts", err)
	}
	return n, nil
}

type ProfileGormRepository struct {
	db *gorm.DB
}

func NewProfileGormRepository(db *gorm.DB) *ProfileGormRepository {
	return &ProfileGormRepository{db: db}
}

// FindByIDs issues one IN query.
func (r *ProfileGormRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Profile, error) {
	if len(ids) == 0 {
		return []model.Profile{}, nil
	}
	var out []model.Profile
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return []model.Profile{}, mapErr("find profiles", err)
	}
	return out, nil
}

func (r *ProfileGormRepository) Upsert(ctx context.Context, p model.Profile) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"full_name", "updated_at"}),
	}).Create(&p).Error
	return mapErr("upsert profile", err)
}
