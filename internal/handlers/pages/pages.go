package pages

import (
	"log"
	"net/http"

	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/internal/utils"
)

// The page rendered at the site root
const homeSlug = "home"

// Handle the home page
func (s *Service) HomeHandler(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, homeSlug, false)
}

// Handle single page
func (s *Service) SinglePageHandler(w http.ResponseWriter, r *http.Request) {

	// Get the page slug from URL
	slug := r.PathValue("slug")

	// The home page lives at the root only
	if slug == homeSlug {
		http.Redirect(w, r, "/", http.StatusMovedPermanently)
		return
	}

	s.servePage(w, r, slug, false)
}

// Handle the draft of a page, for the live preview
func (s *Service) PreviewPageHandler(w http.ResponseWriter, r *http.Request) {

	if !models.IsPreview(r) {
		utils.HttpError(w, http.StatusForbidden)
		return
	}

	s.servePage(w, r, r.PathValue("slug"), true)
}

// servePage fetches the page, resolves its blocks and renders it
func (s *Service) servePage(w http.ResponseWriter, r *http.Request, slug string, preview bool) {

	fetch := s.content.GetPageBySlug
	if preview {
		fetch = s.content.GetPageBySlugPreview
	}

	page, err := fetch(r.Context(), slug)
	if err != nil {
		log.Printf("Error while getting the page '%s' on URI '%s': %v", slug, r.RequestURI, err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	if page == nil {
		http.NotFound(w, r)
		return
	}

	blocks, err := s.resolver.Resolve(r.Context(), page.Blocks)
	if err != nil {
		log.Printf("Error while resolving the blocks of the page '%s': %v", slug, err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	// Get the default data from context
	data := models.GetDataFromContext(r)
	data.Page = page
	data.Blocks = blocks

	// The site name alone titles the home page
	if slug != homeSlug || (page.Meta != nil && page.Meta.Title != "") {
		data.Title = page.SEOTitle()
	}

	if page.Meta != nil {
		if page.Meta.Description != "" {
			data.Description = page.Meta.Description
		}
		data.Image = s.content.MediaURL(page.Meta.Image.Doc)
	}

	s.ui.RenderHTML(w, r, "page.html", data)
}
