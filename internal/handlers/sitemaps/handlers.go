package sitemaps

import (
	"context"

	"github.com/vlatan/block-site/internal/config"
	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/internal/ui"
)

// Content lists everything that has a public URL
type Content interface {
	GetAllPages(ctx context.Context) (models.Pages, error)
	GetAllPosts(ctx context.Context) (models.Posts, error)
	GetCategories(ctx context.Context) (models.Categories, error)
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
