package payload

import (
	"context"

	"github.com/vlatan/block-site/internal/models"
)

// GetPageBySlugPreview fetches a page including its draft, for live preview.
// Never cached.
func (c *Client) GetPageBySlugPreview(ctx context.Context, slug string) (*models.Page, error) {

	query := draft()
	query.Set("where[slug][equals]", slug)
	query.Set("depth", pageDepth)

	resp, err := find[models.Page](ctx, c, "pages", query, true)
	if err != nil {
		return nil, err
	}

	return resp.First(), nil
}

// GetPostBySlugPreview fetches a post including its draft, for live preview.
// Never cached.
func (c *Client) GetPostBySlugPreview(ctx context.Context, slug string) (*models.Post, error) {

	query := draft()
	query.Set("where[slug][equals]", slug)
	query.Set("depth", postDepth)

	resp, err := find[models.Post](ctx, c, "posts", query, true)
	if err != nil {
		return nil, err
	}

	return resp.First(), nil
}
