package payload

import (
	"context"
	"strconv"

	"github.com/vlatan/block-site/internal/models"
)

const postDepth = "1"

// GetPosts fetches the published posts, newest first.
// The limit is applied only when positive.
func (c *Client) GetPosts(ctx context.Context, limit int) (models.Posts, error) {

	resp, err := c.GetPostsPage(ctx, 0, limit)
	if err != nil {
		return nil, err
	}

	return resp.Docs, nil
}

// GetPostsPage fetches one page of the published posts, newest first
func (c *Client) GetPostsPage(ctx context.Context, page, limit int) (*models.Response[models.Post], error) {

	query := published()
	query.Set("sort", "-pubDate")
	query.Set("depth", postDepth)

	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	return find[models.Post](ctx, c, "posts", query, false)
}

// GetAllPosts fetches every published post, following the pagination
func (c *Client) GetAllPosts(ctx context.Context) (models.Posts, error) {

	query := published()
	query.Set("sort", "-pubDate")
	query.Set("depth", "0")

	return findAll[models.Post](ctx, c, "posts", query)
}

// GetPostBySlug fetches a single published post, nil if there's no such post
func (c *Client) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {

	query := published()
	query.Set("where[slug][equals]", slug)
	query.Set("depth", postDepth)

	resp, err := find[models.Post](ctx, c, "posts", query, false)
	if err != nil {
		return nil, err
	}

	return resp.First(), nil
}

// GetPostsByCategory fetches the published posts of a category, newest first.
// An unknown category slug gives an empty list, not an error.
func (c *Client) GetPostsByCategory(ctx context.Context, categorySlug string, limit int) (models.Posts, error) {

	category, err := c.GetCategoryBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}

	if category == nil {
		return models.Posts{}, nil
	}

	resp, err := c.GetCategoryPostsPage(ctx, category, 0, limit)
	if err != nil {
		return nil, err
	}

	return resp.Docs, nil
}

// GetCategoryPostsPage fetches one page of the published posts of a category
func (c *Client) GetCategoryPostsPage(ctx context.Context, category *models.Category, page, limit int) (*models.Response[models.Post], error) {

	query := published()
	query.Set("where[category][equals]", string(category.ID))
	query.Set("sort", "-pubDate")
	query.Set("depth", postDepth)

	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	return find[models.Post](ctx, c, "posts", query, false)
}
