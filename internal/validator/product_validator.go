package validator

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"
)

const (
	maxNameLen  = 255
	maxImageCnt = 10
)

type productValidator struct{}

// NewProductValidator checks admin product forms.
func NewProductValidator() usecase.ProductValidator {
	return productValidator{}
}

func (productValidator) ValidateProduct(_ context.Context, p model.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("name is required")
	}
	if utf8.RuneCountInString(p.Name) > maxNameLen {
		return invalid("name is too long")
	}
	if p.Price.IsNegative() {
		return invalid("price must be >= 0")
	}
	// numeric(12,2)
	if !p.Price.Equal(p.Price.Round(2)) {
		return invalid("price must have at most 2 decimals")
	}
	if p.Stock < 0 {
		return invalid("stock must be >= 0")
	}
	if _, ok := model.ParseCategory(string(p.Category)); !ok {
		return invalid("invalid category")
	}
	if len(p.ImageURLs) > maxImageCnt {
		return invalid("too many images")
	}
	for _, u := range p.ImageURLs {
		if !isImageRef(u) {
			return invalid("invalid image url")
		}
	}
	return nil
}

// absolute http(s) URL or a site-relative path
func isImageRef(s string) bool {
	return strings.HasPrefix(s, "/") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}

func invalid(msg string) error {
	return usecase.NewHTTPError(http.StatusBadRequest, msg)
}
