package ui

import (
	"context"
	"io"
	"net/http"
	"regexp"

	"github.com/tdewolff/minify"
	"github.com/tdewolff/minify/css"
	"github.com/tdewolff/minify/html"
	"github.com/tdewolff/minify/js"
	"github.com/tdewolff/minify/json"
	"github.com/tdewolff/minify/xml"
	"github.com/vlatan/block-site/internal/config"
	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/internal/richtext"
)

type Service interface {
	// Get the map containing the static files
	StaticFiles() models.StaticFiles
	// Get the map containing the text files
	TextFiles() models.TextFiles
	// Create new template data
	NewData(w http.ResponseWriter, r *http.Request) *models.TemplateData
	// Create new pagination struct
	NewPagination(currentPage, totalRecords, pageSize int, basePath string) *models.PaginationInfo
	// Write JSON to response
	WriteJSON(w http.ResponseWriter, r *http.Request, data any)
	// Write HTML template to response
	RenderHTML(w http.ResponseWriter, r *http.Request, templateName string, data *models.TemplateData)
	// Write JSON error to response
	JSONError(w http.ResponseWriter, r *http.Request, statusCode int)
	// Write HTML error to response
	HTMLError(w http.ResponseWriter, r *http.Request, statusCode int, data *models.TemplateData)
	// ExecuteErrorTemplate executes error.html template
	ExecuteErrorTemplate(w io.Writer, status int, data *models.TemplateData) error
	// Minifier used for templates and static files
	Minifier() *minify.M
}

// Content is what the layout needs from the content API
type Content interface {
	MediaURL(media *models.Media) string
	GetNavigation(ctx context.Context) *models.Navigation
}

type service struct {
	templates   models.TemplateMap
	staticFiles models.StaticFiles
	textFiles   models.TextFiles
	minifier    *minify.M
	config      *config.Config
	content     Content
}

var validJS = regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$")
var validXML = regexp.MustCompile("[/+]xml$")

// New parses the templates, the static and the text files.
// It panics if a template does not parse.
func New(cfg *config.Config, content Content) Service {

	m := newMinifier()
	rich := richtext.New(content.MediaURL)

	return &service{
		templates:   parseTemplates(m, templateFuncs(content.MediaURL, rich)),
		staticFiles: parseStaticFiles(m, "static"),
		textFiles:   parseTextFiles(cfg),
		minifier:    m,
		config:      cfg,
		content:     content,
	}
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFuncRegexp(validJS, js.Minify)
	m.AddFuncRegexp(validXML, xml.Minify)
	m.AddFunc("application/manifest+json", json.Minify)
	return m
}

func (s *service) Minifier() *minify.M {
	return s.minifier
}
