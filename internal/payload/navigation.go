package payload

import (
	"context"
	"log"
	"net/url"

	"github.com/vlatan/block-site/internal/drivers/rdb"
	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/internal/navigation"
)

const navigationEndpoint = "globals/navigation"

// GetNavigation fetches and normalizes the site navigation.
// Any failure is logged and gives nil, a page renders fine with empty menus.
func (c *Client) GetNavigation(ctx context.Context) *models.Navigation {

	query := url.Values{}
	query.Set("depth", "1")

	nav, err := rdb.GetItems(
		c.cacheEnabled,
		ctx,
		c.rdb,
		"payload:"+navigationEndpoint,
		c.cacheTimeout,
		func() (models.Navigation, error) {
			var raw models.RawNavigation
			if err := c.get(ctx, navigationEndpoint, query, false, &raw); err != nil {
				return models.Navigation{}, err
			}
			return *navigation.Normalize(raw), nil
		},
	)

	if err != nil {
		log.Printf("Failed to fetch navigation: %v", err)
		return nil
	}

	return &nav
}
