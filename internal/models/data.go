package models

import (
	"html/template"
	"strings"
	"time"

	"github.com/vlatan/block-site/internal/config"
)

// Specific data for the error pages
type HTMLErrorData struct {
	Title   string
	Heading string
	Text    string
}

// Error served to clients that do not want HTML
type JSONErrorData struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// BlockView is a block along with the data it pulls in when rendered
type BlockView struct {
	Block      Block
	Posts      Posts
	Categories CategoriesWithPostCount
}

// Data struct to pass to templates
type TemplateData struct {
	StaticFiles     StaticFiles
	Config          *config.Config
	Title           string
	Description     string
	Image           string
	CurrentURI      string
	CanonicalURL    string
	BaseURL         string
	Navigation      *Navigation
	Page            *Page
	Post            *Post
	Posts           Posts
	Category        *Category
	Categories      CategoriesWithPostCount
	Blocks          []BlockView
	Pagination      *PaginationInfo
	Preview         bool
	SitemapItems    []*SitemapItem
	XMLDeclarations []template.HTML
	HTMLErrorData   *HTMLErrorData
}

// Add version query string to file
func (td *TemplateData) AddVersion(path string) string {
	if fi, ok := td.StaticFiles[path]; ok {
		return path + "?v=" + fi.Etag
	}
	return path
}

// Split string helper function for templates
func (td *TemplateData) Split(s, sep string) []string {
	return strings.Split(s, sep)
}

// Get time now
func (td *TemplateData) Now() time.Time {
	return time.Now()
}

// HeaderItems is a nil safe accessor for the header menu
func (td *TemplateData) HeaderItems() []NavItem {
	if td.Navigation == nil {
		return nil
	}
	return td.Navigation.Header.Items
}

// FooterItems is a nil safe accessor for the footer menu
func (td *TemplateData) FooterItems() []NavItem {
	if td.Navigation == nil {
		return nil
	}
	return td.Navigation.Footer.Items
}

// PublicPath is the published URL of the page or post being rendered
func (td *TemplateData) PublicPath() string {
	switch {
	case td.Post != nil:
		return "/blog/" + td.Post.Slug + "/"
	case td.Page != nil:
		return td.Page.Path()
	default:
		return "/"
	}
}
