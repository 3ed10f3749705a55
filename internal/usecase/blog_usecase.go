package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/infra/logger"
	repo "storefront/internal/repository"
)

const (
	authorUnnamed  = "Desconocido" // profile without a name
	authorFallback = "Autor"       // no profile at all
)

type BlogValidator interface {
	ValidateBlogPost(ctx context.Context, p model.BlogPost) error
}

type Clock interface {
	Now() time.Time
}

type BlogPostSummary struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Excerpt        string    `json:"excerpt"`
	ImageURL       string    `json:"image_url"`
	AuthorID       string    `json:"author_id"`
	AuthorName     string    `json:"author_name"`
	PublishedAt    time.Time `json:"published_at"`
	ReadingMinutes int       `json:"reading_minutes"`
}

type BlogPostDetail struct {
	model.BlogPost
	AuthorName     string `json:"author_name"`
	ReadingMinutes int    `json:"reading_minutes"`
}

type BlogUsecase struct {
	posts     repo.BlogPostRepository
	profiles  repo.ProfileRepository
	validator BlogValidator
	ids       IDGenerator
	clock     Clock
	log       *logger.Logger
}

func NewBlogUsecase(
	posts repo.BlogPostRepository,
	profiles repo.ProfileRepository,
	validator BlogValidator,
	ids IDGenerator,
	clock Clock,
	log *logger.Logger,
) *BlogUsecase {
	if log == nil {
		log = logger.Nop()
	}
	return &BlogUsecase{
		posts:     posts,
		profiles:  profiles,
		validator: validator,
		ids:       ids,
		clock:     clock,
		log:       log.With("component", "BlogUsecase"),
	}
}

// ListPosts returns every post newest first, authors resolved in one lookup.
func (u *BlogUsecase) ListPosts(ctx context.Context) ([]BlogPostSummary, error) {
	posts, err := u.posts.List(ctx)
	if err != nil {
		u.log.Error("list posts failed", "error", err)
		return nil, NewHTTPError(http.StatusInternalServerError, "No se pudieron cargar los artículos. Intente nuevamente.")
	}

	ids := make([]string, 0, len(posts))
	seen := map[string]bool{}
	for _, p := range posts {
		if !seen[p.AuthorID] {
			seen[p.AuthorID] = true
			ids = append(ids, p.AuthorID)
		}
	}
	names := u.authorNames(ctx, ids)

	out := make([]BlogPostSummary, 0, len(posts))
	for _, p := range posts {
		text := PlainText(p.Content)
		out = append(out, BlogPostSummary{
			ID:             p.ID,
			Title:          p.Title,
			Excerpt:        Excerpt(text, excerptLength),
			ImageURL:       p.ImageURL,
			AuthorID:       p.AuthorID,
			AuthorName:     authorName(names, p.AuthorID),
			PublishedAt:    p.PublishedAt,
			ReadingMinutes: ReadingMinutes(text),
		})
	}
	return out, nil
}

func (u *BlogUsecase) GetPost(ctx context.Context, id string) (BlogPostDetail, error) {
	p, err := u.posts.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return BlogPostDetail{}, NewHTTPError(http.StatusNotFound, "post not found")
	}
	if err != nil {
		u.log.Error("get post failed", "post_id", id, "error", err)
		return BlogPostDetail{}, NewHTTPError(http.StatusInternalServerError, "No se pudo cargar el artículo. Intente nuevamente.")
	}

	names := u.authorNames(ctx, []string{p.AuthorID})
	return BlogPostDetail{
		BlogPost:       p,
		AuthorName:     authorName(names, p.AuthorID),
		ReadingMinutes: ReadingMinutes(PlainText(p.Content)),
	}, nil
}

// authorNames never fails; a lookup error leaves every post with the fallback name.
func (u *BlogUsecase) authorNames(ctx context.Context, ids []string) map[string]string {
	names := map[string]string{}
	if len(ids) == 0 {
		return names
	}
	profiles, err := u.profiles.FindByIDs(ctx, ids)
	if err != nil {
		u.log.Warn("author lookup failed", "error", err)
		return names
	}
	for _, p := range profiles {
		n := strings.TrimSpace(p.FullName)
		if n == "" {
			n = authorUnnamed
		}
		names[p.ID] = n
	}
	return names
}

func authorName(names map[string]string, id string) string {
	if n, ok := names[id]; ok {
		return n
	}
	return authorFallback
}

type BlogPostInput struct {
	Title    string
	Content  string
	ImageURL string
}

type BlogPostPatch struct {
	Title    *string
	Content  *string
	ImageURL *string
}

func (u *BlogUsecase) CreatePost(ctx context.Context, authorID string, in BlogPostInput) (model.BlogPost, error) {
	now := u.clock.Now()
	p := model.BlogPost{
		ID:          u.ids.NewID(),
		Title:       strings.TrimSpace(in.Title),
		Content:     strings.TrimSpace(in.Content),
		AuthorID:    authorID,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		PublishedAt: now,
		UpdatedAt:   now,
	}
	if err := u.validator.ValidateBlogPost(ctx, p); err != nil {
		return model.BlogPost{}, err
	}

	created, err := u.posts.Create(ctx, p)
	if err != nil {
		u.log.Error("create post failed", "error", err)
		return model.BlogPost{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *BlogUsecase) UpdatePost(ctx context.Context, id string, in BlogPostPatch) (model.BlogPost, error) {
	detail, err := u.GetPost(ctx, id)
	if err != nil {
		return model.BlogPost{}, err
	}
	p := detail.BlogPost

	if in.Title != nil {
		p.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		p.Content = strings.TrimSpace(*in.Content)
	}
	if in.ImageURL != nil {
		p.ImageURL = strings.TrimSpace(*in.ImageURL)
	}
	p.UpdatedAt = u.clock.Now()

	if err := u.validator.ValidateBlogPost(ctx, p); err != nil {
		return model.BlogPost{}, err
	}
	if err := u.posts.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.BlogPost{}, NewHTTPError(http.StatusNotFound, "post not found")
		}
		u.log.Error("update post failed", "post_id", id, "error", err)
		return model.BlogPost{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *BlogUsecase) DeletePost(ctx context.Context, id string) error {
	err := u.posts.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "post not found")
	}
	if err != nil {
		u.log.Error("delete post failed", "post_id", id, "error", err)
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
