package posts

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/internal/utils"
)

// Handle the blog index, /blog/ and /blog/page/{page}/
func (s *Service) BlogHandler(w http.ResponseWriter, r *http.Request) {

	page, ok := pageNumber(w, r)
	if !ok {
		return
	}

	resp, err := s.content.GetPostsPage(r.Context(), page, s.config.PostsPerPage)
	if err != nil {
		log.Printf("Error while getting the posts on URI '%s': %v", r.RequestURI, err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	data := models.GetDataFromContext(r)
	data.Title = "Blog"
	if page > 1 {
		data.Title = fmt.Sprintf("Blog, page %d", page)
	}

	s.serveList(w, r, data, resp, page, "/blog/")
}

// Handle the posts of a category,
// /blog/category/{slug}/ and /blog/category/{slug}/page/{page}/
func (s *Service) CategoryPostsHandler(w http.ResponseWriter, r *http.Request) {

	page, ok := pageNumber(w, r)
	if !ok {
		return
	}

	slug := r.PathValue("slug")
	category, err := s.content.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("Error while getting the category '%s': %v", slug, err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	if category == nil {
		http.NotFound(w, r)
		return
	}

	resp, err := s.content.GetCategoryPostsPage(r.Context(), category, page, s.config.PostsPerPage)
	if err != nil {
		log.Printf("Error while getting the posts of the category '%s': %v", slug, err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	data := models.GetDataFromContext(r)
	data.Category = category
	data.Title = category.Name
	if category.Description != "" {
		data.Description = category.Description
	}

	s.serveList(w, r, data, resp, page, "/blog/category/"+category.Slug+"/")
}

// serveList renders one page of a post listing
func (s *Service) serveList(
	w http.ResponseWriter,
	r *http.Request,
	data *models.TemplateData,
	resp *models.Response[models.Post],
	page int,
	basePath string,
) {

	// Only the first page may be empty
	if page > 1 && len(resp.Docs) == 0 {
		http.NotFound(w, r)
		return
	}

	// The filter is a nicety, the list renders without it
	categories, err := s.content.GetCategoriesWithPostCounts(r.Context())
	if err != nil {
		log.Printf("Error while getting the categories on URI '%s': %v", r.RequestURI, err)
	}

	data.Posts = resp.Docs
	data.Categories = categories
	data.Pagination = s.ui.NewPagination(page, resp.TotalDocs, s.config.PostsPerPage, basePath)

	s.ui.RenderHTML(w, r, "blog.html", data)
}

// Handle single post
func (s *Service) SinglePostHandler(w http.ResponseWriter, r *http.Request) {
	s.servePost(w, r, false)
}

// Handle the draft of a post, for the live preview
func (s *Service) PreviewPostHandler(w http.ResponseWriter, r *http.Request) {

	if !models.IsPreview(r) {
		utils.HttpError(w, http.StatusForbidden)
		return
	}

	s.servePost(w, r, true)
}

func (s *Service) servePost(w http.ResponseWriter, r *http.Request, preview bool) {

	slug := r.PathValue("slug")

	fetch := s.content.GetPostBySlug
	if preview {
		fetch = s.content.GetPostBySlugPreview
	}

	post, err := fetch(r.Context(), slug)
	if err != nil {
		log.Printf("Error while getting the post '%s' on URI '%s': %v", slug, r.RequestURI, err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	if post == nil {
		http.NotFound(w, r)
		return
	}

	data := models.GetDataFromContext(r)
	data.Post = post
	data.Title = post.Title
	if post.Description != "" {
		data.Description = post.Description
	}
	data.Image = s.content.MediaURL(post.HeroImage.Doc)

	s.ui.RenderHTML(w, r, "post.html", data)
}

// pageNumber reads the optional page path value.
// Page one has no /page/1/ alias, it redirects to the listing root.
func pageNumber(w http.ResponseWriter, r *http.Request) (int, bool) {

	value := r.PathValue("page")
	if value == "" {
		return 1, true
	}

	page, err := strconv.Atoi(value)
	if err != nil || page < 1 {
		http.NotFound(w, r)
		return 0, false
	}

	if page == 1 {
		http.Redirect(w, r, r.URL.Path[:len(r.URL.Path)-len("page/1/")], http.StatusMovedPermanently)
		return 0, false
	}

	return page, true
}
