// Package export renders the whole site to static files
package export

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/vlatan/block-site/internal/config"
	"github.com/vlatan/block-site/internal/metrics"
	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/internal/payload"
	"github.com/vlatan/block-site/internal/utils"
	"github.com/vlatan/block-site/web"
	"golang.org/x/sync/errgroup"
)

// NotFoundRoute is requested to render the 404 page.
// No route of the site matches it.
const NotFoundRoute = "/_export/not-found"

// Content is the part of the content API the route list is built from
type Content interface {
	GetAllPages(ctx context.Context) (models.Pages, error)
	GetAllPosts(ctx context.Context) (models.Posts, error)
	GetCategories(ctx context.Context) (models.Categories, error)
}

type Service struct {
	handler http.Handler
	content Content
	config  *config.Config
}

// Result counts what a build or an upload did
type Result struct {
	Rendered int64
	Uploaded int64
	Skipped  int64
}

func New(handler http.Handler, content Content, config *config.Config) *Service {
	return &Service{
		handler: handler,
		content: content,
		config:  config,
	}
}

// Routes lists every public URL of the site
func (s *Service) Routes(ctx context.Context) ([]string, error) {

	pages, err := s.content.GetAllPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("couldn't list the pages: %w", err)
	}

	posts, err := s.content.GetAllPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("couldn't list the posts: %w", err)
	}

	categories, err := s.content.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("couldn't list the categories: %w", err)
	}

	routes := []string{"/"}
	for _, page := range pages {
		routes = append(routes, page.Path())
	}

	routes = append(routes, s.listing("/blog/", len(posts))...)
	for _, post := range posts {
		routes = append(routes, "/blog/"+post.Slug+"/")
	}

	for _, c := range payload.CountPosts(categories, posts) {
		routes = append(routes, s.listing("/blog/category/"+c.Slug+"/", c.PostCount)...)
	}

	routes = append(routes, "/sitemap.xml", "/robots.txt")
	routes = append(routes, utils.RootFavicons...)

	static, err := staticRoutes()
	if err != nil {
		return nil, err
	}
	routes = append(routes, static...)

	// The home page is both "/" and the page with the home slug
	slices.Sort(routes)
	return slices.Compact(routes), nil
}

// listing is the first page of a post list plus its numbered pages
func (s *Service) listing(basePath string, total int) []string {
	routes := []string{basePath}
	pageSize := max(s.config.PostsPerPage, 1)
	pages := (total + pageSize - 1) / pageSize
	for n := 2; n <= pages; n++ {
		routes = append(routes, fmt.Sprintf("%spage/%d/", basePath, n))
	}
	return routes
}

// staticRoutes lists the embedded assets
func staticRoutes() ([]string, error) {
	var routes []string
	err := fs.WalkDir(web.Files, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		routes = append(routes, "/"+p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't list the static files: %w", err)
	}
	return routes, nil
}

// Build renders every route into the out directory.
// Any route that does not render fails the build.
func (s *Service) Build(ctx context.Context, out string) (*Result, error) {

	routes, err := s.Routes(ctx)
	if err != nil {
		return nil, err
	}

	if err = os.MkdirAll(out, 0o755); err != nil {
		return nil, fmt.Errorf("couldn't create %s: %w", out, err)
	}

	root, err := os.OpenRoot(out)
	if err != nil {
		return nil, fmt.Errorf("couldn't open %s: %w", out, err)
	}
	defer root.Close()

	var rendered atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.config.ExportWorkers, 1))

	write := func(route, file string, want int) {
		g.Go(func() error {
			err := s.renderTo(gctx, root, route, file, want)
			metrics.ExportFilesTotal.WithLabelValues("render", metrics.Result(err)).Inc()
			if err != nil {
				return err
			}
			rendered.Add(1)
			return nil
		})
	}

	for _, route := range routes {
		write(route, FileName(route), http.StatusOK)
	}
	write(NotFoundRoute, "404.html", http.StatusNotFound)

	if err = g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("Rendered %d files into '%s'", rendered.Load(), out)
	return &Result{Rendered: rendered.Load()}, nil
}

// renderTo serves the route in process and writes the body
func (s *Service) renderTo(ctx context.Context, root *os.Root, route, file string, want int) error {

	req := httptest.NewRequestWithContext(ctx, http.MethodGet, route, nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()

	s.handler.ServeHTTP(rec, req)

	if rec.Code != want {
		return fmt.Errorf("route %s answered %d, want %d", route, rec.Code, want)
	}

	if dir := path.Dir(file); dir != "." {
		if err := root.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("couldn't create the directory of %s: %w", route, err)
		}
	}

	if err := root.WriteFile(file, rec.Body.Bytes(), 0o644); err != nil {
		return fmt.Errorf("couldn't write %s: %w", file, err)
	}

	return nil
}

// FileName maps a route to its file in the export,
// directory routes get an index.html
func FileName(route string) string {
	name := strings.TrimPrefix(route, "/")
	if name == "" || strings.HasSuffix(name, "/") {
		name += "index.html"
	}
	return name
}
