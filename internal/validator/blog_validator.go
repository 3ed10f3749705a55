package validator

import (
	"context"
	"strings"
	"unicode/utf8"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"
)

type blogValidator struct{}

func NewBlogValidator() usecase.BlogValidator {
	return blogValidator{}
}

func (blogValidator) ValidateBlogPost(_ context.Context, p model.BlogPost) error {
	if strings.TrimSpace(p.Title) == "" {
		return invalid("title is required")
	}
	if utf8.RuneCountInString(p.Title) > maxNameLen {
		return invalid("title is too long")
	}
	if strings.TrimSpace(usecase.PlainText(p.Content)) == "" {
		return invalid("content is required")
	}
	if p.AuthorID == "" {
		return invalid("author is required")
	}
	if p.ImageURL != "" && !isImageRef(p.ImageURL) {
		return invalid("invalid image url")
	}
	return nil
}
