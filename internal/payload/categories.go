package payload

import (
	"context"
	"net/url"

	"github.com/vlatan/block-site/internal/models"
)

// GetCategories fetches the categories
func (c *Client) GetCategories(ctx context.Context) (models.Categories, error) {

	resp, err := find[models.Category](ctx, c, "categories", url.Values{}, false)
	if err != nil {
		return nil, err
	}

	return resp.Docs, nil
}

// GetCategoryBySlug fetches a single category, nil if there's no such category
func (c *Client) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {

	query := url.Values{}
	query.Set("where[slug][equals]", slug)

	resp, err := find[models.Category](ctx, c, "categories", query, false)
	if err != nil {
		return nil, err
	}

	return resp.First(), nil
}

// GetCategoriesWithPostCounts fetches the categories and then all the published posts,
// counting per category the posts that reference it.
// The post category may be embedded or a bare id.
func (c *Client) GetCategoriesWithPostCounts(ctx context.Context) (models.CategoriesWithPostCount, error) {

	categories, err := c.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	query := published()
	query.Set("limit", "0")

	resp, err := find[models.Post](ctx, c, "posts", query, false)
	if err != nil {
		return nil, err
	}

	return CountPosts(categories, resp.Docs), nil
}

// CountPosts pairs every category with the number of posts referencing it
func CountPosts(categories models.Categories, posts models.Posts) models.CategoriesWithPostCount {

	counts := make(map[models.ID]int, len(categories))
	for _, post := range posts {
		if !post.Category.Empty() {
			counts[post.Category.ID]++
		}
	}

	result := make(models.CategoriesWithPostCount, len(categories))
	for i, category := range categories {
		result[i] = models.CategoryWithPostCount{
			Category:  category,
			PostCount: counts[category.ID],
		}
	}

	return result
}
