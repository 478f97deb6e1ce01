package pages

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vlatan/block-site/internal/config"
	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/internal/ui"
)

type fakeContent struct {
	pages  map[string]*models.Page
	drafts map[string]*models.Page
	err    error
}

func (f *fakeContent) GetPosts(ctx context.Context, limit int) (models.Posts, error) {
	return nil, nil
}

func (f *fakeContent) GetPostsByCategory(ctx context.Context, categorySlug string, limit int) (models.Posts, error) {
	return nil, nil
}

func (f *fakeContent) GetCategoriesWithPostCounts(ctx context.Context) (models.CategoriesWithPostCount, error) {
	return nil, nil
}

func (f *fakeContent) GetPageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	return f.pages[slug], f.err
}

func (f *fakeContent) GetPageBySlugPreview(ctx context.Context, slug string) (*models.Page, error) {
	return f.drafts[slug], f.err
}

func (f *fakeContent) MediaURL(media *models.Media) string {
	if media == nil {
		return ""
	}
	return "http://cms.test" + media.URL
}

func (f *fakeContent) GetNavigation(ctx context.Context) *models.Navigation {
	return nil
}

// newRouter mounts the page routes behind the data the middlewares would load
func newRouter(content *fakeContent, preview bool) http.Handler {
	cfg := &config.Config{SiteURL: "https://example.com", SiteName: "Test Site"}
	u := ui.New(cfg, content)
	s := New(content, u, cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.HomeHandler)
	mux.HandleFunc("GET /{slug}/{$}", s.SinglePageHandler)
	mux.HandleFunc("GET /preview/{slug}", s.PreviewPageHandler)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if preview {
			ctx = context.WithValue(ctx, models.PreviewContextKey, true)
		}
		r = r.WithContext(ctx)
		ctx = context.WithValue(ctx, models.DataContextKey, u.NewData(w, r))
		mux.ServeHTTP(w, r.WithContext(ctx))
	})
}

func testContent() *fakeContent {
	return &fakeContent{
		pages: map[string]*models.Page{
			"home":  {Slug: "home", Title: "Home"},
			"about": {Slug: "about", Title: "About us", Meta: &models.Meta{Description: "Who we are"}},
		},
		drafts: map[string]*models.Page{
			"about": {Slug: "about", Title: "About us draft"},
		},
	}
}

func TestPageHandlers(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		content    *fakeContent
		preview    bool
		wantStatus int
		wantBody   []string
		wantAbsent []string
	}{
		{
			name:       "home titled by the site",
			path:       "/",
			content:    testContent(),
			wantStatus: http.StatusOK,
			wantBody:   []string{"<title>Test Site</title>"},
			wantAbsent: []string{"Home | Test Site"},
		},
		{
			name:       "single page",
			path:       "/about/",
			content:    testContent(),
			wantStatus: http.StatusOK,
			wantBody:   []string{"About us | Test Site", "Who&#32;we&#32;are"},
		},
		{
			name:       "missing page",
			path:       "/nope/",
			content:    testContent(),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "content API down",
			path:       "/about/",
			content:    &fakeContent{err: errors.New("cms down")},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "preview without session",
			path:       "/preview/about",
			content:    testContent(),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "preview with session",
			path:       "/preview/about",
			content:    testContent(),
			preview:    true,
			wantStatus: http.StatusOK,
			wantBody:   []string{"About us draft", "Exit preview"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)

			newRouter(tt.content, tt.preview).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d", rec.Code, tt.wantStatus)
			}

			body := rec.Body.String()
			for _, want := range tt.wantBody {
				if !strings.Contains(body, want) {
					t.Errorf("got body without %q", want)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(body, absent) {
					t.Errorf("got body with %q", absent)
				}
			}
		})
	}
}

func TestHomeSlugRedirects(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/home/", nil)

	newRouter(testContent(), false).ServeHTTP(rec, req)

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusMovedPermanently)
	}

	if got := rec.Header().Get("Location"); got != "/" {
		t.Errorf("got location %q, want %q", got, "/")
	}
}
