// Package render pulls in the content the blocks of a page refer to
package render

import (
	"context"
	"fmt"

	"github.com/vlatan/block-site/internal/models"
)

const (
	SourceLatest   = "latest"
	SourceCategory = "category"
	SourceSpecific = "specific"
	SourceAll      = "all"
)

// Source is the part of the content API the blocks read from
type Source interface {
	GetPosts(ctx context.Context, limit int) (models.Posts, error)
	GetPostsByCategory(ctx context.Context, categorySlug string, limit int) (models.Posts, error)
	GetCategoriesWithPostCounts(ctx context.Context) (models.CategoriesWithPostCount, error)
}

type Resolver struct {
	src Source
}

func New(src Source) *Resolver {
	return &Resolver{src: src}
}

// Resolve prepares the blocks for rendering, in order.
// Blocks of unknown type are dropped.
// Any failed fetch fails the whole page.
func (r *Resolver) Resolve(ctx context.Context, blocks models.Blocks) ([]models.BlockView, error) {

	// Several grids on one page share the counts
	var (
		counts  models.CategoriesWithPostCount
		fetched bool
	)
	categoryCounts := func() (models.CategoriesWithPostCount, error) {
		if fetched {
			return counts, nil
		}
		c, err := r.src.GetCategoriesWithPostCounts(ctx)
		if err != nil {
			return nil, err
		}
		counts, fetched = c, true
		return counts, nil
	}

	views := make([]models.BlockView, 0, len(blocks))
	for i, block := range blocks {

		view := models.BlockView{Block: block}

		var err error
		switch b := block.(type) {
		case *models.UnknownBlock:
			continue
		case *models.Blog1:
			view.Posts, err = r.blogPosts(ctx, b)
		case *models.CategoryGrid1:
			view.Categories, err = gridCategories(b, categoryCounts)
		}

		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i, block.BlockType(), err)
		}

		views = append(views, view)
	}

	return views, nil
}

// blogPosts selects the posts of a blog grid by its source
func (r *Resolver) blogPosts(ctx context.Context, b *models.Blog1) (models.Posts, error) {

	switch b.PostSource {
	case SourceCategory:
		if !b.Category.Resolved() {
			return models.Posts{}, nil
		}
		return r.src.GetPostsByCategory(ctx, b.Category.Doc.Slug, b.Limit)

	case SourceSpecific:
		posts := make(models.Posts, 0, len(b.Posts))
		for _, ref := range b.Posts {
			if ref.Resolved() {
				posts = append(posts, *ref.Doc)
			}
		}
		return truncate(posts, b.Limit), nil

	default:
		return r.src.GetPosts(ctx, b.Limit)
	}
}

// gridCategories selects the categories of a category grid.
// The specific selection keeps the editor's order.
func gridCategories(
	b *models.CategoryGrid1,
	counts func() (models.CategoriesWithPostCount, error),
) (models.CategoriesWithPostCount, error) {

	if b.CategorySource != SourceSpecific {
		return counts()
	}

	var all models.CategoriesWithPostCount
	if b.ShowPostCount {
		var err error
		if all, err = counts(); err != nil {
			return nil, err
		}
	}

	result := make(models.CategoriesWithPostCount, 0, len(b.Categories))
	for _, ref := range b.Categories {
		if !ref.Resolved() {
			continue
		}

		count, _ := all.Count(ref.Doc.ID)
		result = append(result, models.CategoryWithPostCount{
			Category:  *ref.Doc,
			PostCount: count,
		})
	}

	return result, nil
}

func truncate(posts models.Posts, limit int) models.Posts {
	if limit > 0 && len(posts) > limit {
		return posts[:limit]
	}
	return posts
}
