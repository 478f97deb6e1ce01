package pages

import (
	"context"

	"github.com/vlatan/block-site/internal/config"
	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/internal/render"
	"github.com/vlatan/block-site/internal/ui"
)

// Content is the part of the content API the page routes read
type Content interface {
	render.Source
	GetPageBySlug(ctx context.Context, slug string) (*models.Page, error)
	GetPageBySlugPreview(ctx context.Context, slug string) (*models.Page, error)
	MediaURL(media *models.Media) string
}

type Service struct {
	content  Content
	resolver *render.Resolver
	ui       ui.Service
	config   *config.Config
}

func New(content Content, ui ui.Service, config *config.Config) *Service {
	return &Service{
		content:  content,
		resolver: render.New(content),
		ui:       ui,
		config:   config,
	}
}
