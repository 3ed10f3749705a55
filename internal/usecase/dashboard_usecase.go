package usecase

import (
	"context"
	"net/http"

	"storefront/internal/infra/logger"
	repo "storefront/internal/repository"
)

type DashboardResponse struct {
	Products         int64 `json:"products"`
	FeaturedProducts int64 `json:"featured_products"`
	LowStockProducts int64 `json:"low_stock_products"`
	BlogPosts        int64 `json:"blog_posts"`
}

type DashboardUsecase struct {
	productRepo repo.ProductRepository
	posts       repo.BlogPostRepository
	log         *logger.Logger
}

func NewDashboardUsecase(productRepo repo.ProductRepository, posts repo.BlogPostRepository, log *logger.Logger) *DashboardUsecase {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUsecase{productRepo: productRepo, posts: posts, log: log.With("component", "DashboardUsecase")}
}

// Summary counts products with stock at or below 5 as low stock.
func (u *DashboardUsecase) Summary(ctx context.Context) (DashboardResponse, error) {
	stats, err := u.productRepo.Stats(ctx, lowStockThreshold)
	if err != nil {
		u.log.Error("product stats failed", "error", err)
		return DashboardResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	posts, err := u.posts.Count(ctx)
	if err != nil {
		u.log.Error("post count failed", "error", err)
		return DashboardResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return DashboardResponse{
		Products:         stats.Total,
		FeaturedProducts: stats.Featured,
		LowStockProducts: stats.LowStock,
		BlogPosts:        posts,
	}, nil
}
