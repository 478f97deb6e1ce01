package payload

import (
	"context"

	"github.com/vlatan/block-site/internal/models"
)

// Blocks and their media are resolved two levels deep
const pageDepth = "2"

// GetPages fetches all published pages
func (c *Client) GetPages(ctx context.Context) (models.Pages, error) {

	query := published()
	query.Set("depth", pageDepth)

	resp, err := find[models.Page](ctx, c, "pages", query, false)
	if err != nil {
		return nil, err
	}

	return resp.Docs, nil
}

// GetAllPages fetches every published page, following the pagination
func (c *Client) GetAllPages(ctx context.Context) (models.Pages, error) {

	query := published()
	query.Set("depth", "0")

	return findAll[models.Page](ctx, c, "pages", query)
}

// GetPageBySlug fetches a single published page, nil if there's no such page
func (c *Client) GetPageBySlug(ctx context.Context, slug string) (*models.Page, error) {

	query := published()
	query.Set("where[slug][equals]", slug)
	query.Set("depth", pageDepth)

	resp, err := find[models.Page](ctx, c, "pages", query, false)
	if err != nil {
		return nil, err
	}

	return resp.First(), nil
}
