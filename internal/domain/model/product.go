package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const PlaceholderImage = "/placeholder.svg"

// CategoryAll matches every category in catalog filters.
const CategoryAll = "all"

type Category string

const (
	CategoryRosas      Category = "rosas"
	CategorySilvestres Category = "silvestres"
	CategoryGirasoles  Category = "girasoles"
	CategoryLirios     Category = "lirios"
	CategoryTulipanes  Category = "tulipanes"
	CategoryPeonias    Category = "peonias"
)

type CategoryInfo struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
}

// Categories is the fixed category set, in display order.
var Categories = []CategoryInfo{
	{ID: CategoryRosas, Label: "Rosas"},
	{ID: CategorySilvestres, Label: "Silvestres"},
	{ID: CategoryGirasoles, Label: "Girasoles"},
	{ID: CategoryLirios, Label: "Lirios"},
	{ID: CategoryTulipanes, Label: "Tulipanes"},
	{ID: CategoryPeonias, Label: "Peonías"},
}

func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, info := range Categories {
		if info.ID == c {
			return c, true
		}
	}
	return "", false
}

type Product struct {
	ID          string                     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string                     `gorm:"type:varchar(255);not null" json:"name"`
	Price       decimal.Decimal            `gorm:"type:numeric(12,2);not null" json:"price"`
	Description string                     `gorm:"type:text" json:"description"`
	ImageURLs   datatypes.JSONSlice[string] `gorm:"column:image_urls" json:"image_urls"`
	Category    Category                   `gorm:"type:varchar(50);not null;index" json:"category"`
	Stock       int64                      `gorm:"not null;default:0" json:"stock"`
	Featured    bool                       `gorm:"not null;default:false;index" json:"featured"`
	CreatedAt   time.Time                  `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time                  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// MainImage is the first image, or the placeholder when there is none.
func (p Product) MainImage() string {
	for _, u := range p.ImageURLs {
		if strings.TrimSpace(u) != "" {
			return u
		}
	}
	return PlaceholderImage
}

// CartItem snapshots the product as a cart line.
func (p Product) CartItem(quantity int) CartItem {
	return CartItem{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Image:     p.MainImage(),
		Quantity:  quantity,
	}
}
