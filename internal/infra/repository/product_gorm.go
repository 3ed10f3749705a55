package repository

import (
	"context"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// List returns the catalog newest first.
func (r *ProductGormRepository) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	var products []model.Product

	tx := r.db.WithContext(ctx).Model(&model.Product{})

	//カテゴリで絞り込み
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}

	// name or description, case-insensitive on both postgres and sqlite
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + escapeLike(strings.ToLower(s)) + "%"
		tx = tx.Where("(LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\')", like, like)
	}

	//おすすめ、除外id
	if q.Featured != nil {
		tx = tx.Where("featured = ?", *q.Featured)
	}
	if q.ExcludeID != "" {
		tx = tx.Where("id <> ?", q.ExcludeID)
	}

	//新しい順、同時刻はidで安定させる
	tx = tx.Order("created_at desc").Order("id desc")
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	if err := tx.Find(&products).Error; err != nil {
		return []model.Product{}, mapErr("list products", err)
	}
	return products, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		return model.Product{}, mapErr("find product", err)
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, mapErr("create product", err)
	}
	return p, nil
}

// Update writes every editable column of p.
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"image_urls":  p.ImageURLs,
		"category":    p.Category,
		"stock":       p.Stock,
		"featured":    p.Featured,
	})
	if res.Error != nil {
		return mapErr("update product", res.Error)
	}
	//更新0件は存在しない
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{})
	if res.Error != nil {
		return mapErr("delete product", res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) Stats(ctx context.Context, lowStockAt int64) (repo.ProductStats, error) {
	var s repo.ProductStats
	db := r.db.WithContext(ctx).Model(&model.Product{})

	if err := db.Count(&s.Total).Error; err != nil {
		return repo.ProductStats{}, mapErr("count products", err)
	}
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Where("featured = ?", true).Count(&s.Featured).Error; err != nil {
		return repo.ProductStats{}, mapErr("count featured", err)
	}
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Where("stock <= ?", lowStockAt).Count(&s.LowStock).Error; err != nil {
		return repo.ProductStats{}, mapErr("count low stock", err)
	}
	return s, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
