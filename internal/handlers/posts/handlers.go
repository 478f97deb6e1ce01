package posts

import (
	"context"

	"github.com/vlatan/block-site/internal/config"
	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/internal/ui"
)

// Content is the part of the content API the blog routes read
type Content interface {
	GetPostsPage(ctx context.Context, page, limit int) (*models.Response[models.Post], error)
	GetPostBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetPostBySlugPreview(ctx context.Context, slug string) (*models.Post, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	GetCategoryPostsPage(ctx context.Context, category *models.Category, page, limit int) (*models.Response[models.Post], error)
	GetCategoriesWithPostCounts(ctx context.Context) (models.CategoriesWithPostCount, error)
	MediaURL(media *models.Media) string
}

type Service struct {
	content Content
	ui      ui.Service
	config  *config.Config
}

func New(content Content, ui ui.Service, config *config.Config) *Service {
	return &Service{
		content: content,
		ui:      ui,
		config:  config,
	}
}
