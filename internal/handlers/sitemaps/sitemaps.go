package sitemaps

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/internal/utils"
)

// Handle the sitemap
func (s *Service) SitemapHandler(w http.ResponseWriter, r *http.Request) {

	items, err := s.Items(r.Context())
	if err != nil {
		log.Printf("Error while building the sitemap: %v", err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	// Get data from context and amend it with the sitemap data
	data := models.GetDataFromContext(r)
	data.SitemapItems = items
	data.XMLDeclarations = []template.HTML{
		template.HTML(`<?xml version="1.0" encoding="UTF-8"?>`),
	}

	s.ui.RenderHTML(w, r, "sitemap.xml", data)
}

// Items lists every public URL of the site, pages first
func (s *Service) Items(ctx context.Context) ([]*models.SitemapItem, error) {

	pages, err := s.content.GetAllPages(ctx)
	if err != nil {
		return nil, err
	}

	posts, err := s.content.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.content.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	var items []*models.SitemapItem
	add := func(p string, modified *time.Time) {
		items = append(items, &models.SitemapItem{
			Location:     utils.AbsoluteURL(s.config.SiteURL, p),
			LastModified: lastModified(modified),
		})
	}

	for _, page := range pages {
		add(page.Path(), page.UpdatedAt)
	}

	var newest *time.Time
	if len(posts) > 0 {
		newest = posts[0].LastModified()
	}
	add("/blog/", newest)

	for _, post := range posts {
		add("/blog/"+post.Slug+"/", post.LastModified())
	}

	for _, category := range categories {
		add("/blog/category/"+category.Slug+"/", category.UpdatedAt)
	}

	return items, nil
}

func lastModified(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}
