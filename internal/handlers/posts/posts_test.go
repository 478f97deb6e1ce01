package posts

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
	posts         models.Posts
	drafts        map[string]*models.Post
	categories    models.Categories
	err           error
	categoriesErr error
}

// paginate mimics the envelope of a listing request
func paginate(posts models.Posts, page, limit int) *models.Response[models.Post] {
	start := min((page-1)*limit, len(posts))
	end := min(start+limit, len(posts))
	return &models.Response[models.Post]{
		Docs:        posts[start:end],
		TotalDocs:   len(posts),
		Page:        page,
		Limit:       limit,
		HasNextPage: end < len(posts),
	}
}

func (f *fakeContent) GetPostsPage(ctx context.Context, page, limit int) (*models.Response[models.Post], error) {
	if f.err != nil {
		return nil, f.err
	}
	return paginate(f.posts, page, limit), nil
}

func (f *fakeContent) GetPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	for i := range f.posts {
		if f.posts[i].Slug == slug {
			return &f.posts[i], f.err
		}
	}
	return nil, f.err
}

func (f *fakeContent) GetPostBySlugPreview(ctx context.Context, slug string) (*models.Post, error) {
	return f.drafts[slug], f.err
}

func (f *fakeContent) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].Slug == slug {
			return &f.categories[i], nil
		}
	}
	return nil, nil
}

func (f *fakeContent) GetCategoryPostsPage(ctx context.Context, category *models.Category, page, limit int) (*models.Response[models.Post], error) {
	var posts models.Posts
	for _, post := range f.posts {
		if post.Category.ID == category.ID {
			posts = append(posts, post)
		}
	}
	return paginate(posts, page, limit), nil
}

func (f *fakeContent) GetCategoriesWithPostCounts(ctx context.Context) (models.CategoriesWithPostCount, error) {
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	var result models.CategoriesWithPostCount
	for _, c := range f.categories {
		result = append(result, models.CategoryWithPostCount{Category: c})
	}
	return result, nil
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

func testContent() *fakeContent {
	news := models.Category{ID: "1", Name: "News", Slug: "news", Description: "What happened"}
	inNews := models.CategoryRef{ID: news.ID, Doc: &news}

	return &fakeContent{
		posts: models.Posts{
			{ID: "1", Slug: "first", Title: "First post", Category: inNews},
			{ID: "2", Slug: "second", Title: "Second post", Category: inNews},
			{ID: "3", Slug: "third", Title: "Third post", Description: "The third one"},
		},
		drafts: map[string]*models.Post{
			"first": {ID: "1", Slug: "first", Title: "First post draft"},
		},
		categories: models.Categories{news},
	}
}

func newRouter(content *fakeContent, preview bool) http.Handler {
	cfg := &config.Config{SiteURL: "https://example.com", SiteName: "Test Site", PostsPerPage: 2}
	u := ui.New(cfg, content)
	s := New(content, u, cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /blog/{$}", s.BlogHandler)
	mux.HandleFunc("GET /blog/page/{page}/{$}", s.BlogHandler)
	mux.HandleFunc("GET /blog/{slug}/{$}", s.SinglePostHandler)
	mux.HandleFunc("GET /blog/category/{slug}/{$}", s.CategoryPostsHandler)
	mux.HandleFunc("GET /blog/category/{slug}/page/{page}/{$}", s.CategoryPostsHandler)
	mux.HandleFunc("GET /preview/blog/{slug}", s.PreviewPostHandler)

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

func TestBlogHandlers(t *testing.T) {
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
			name:       "first page",
			path:       "/blog/",
			content:    testContent(),
			wantStatus: http.StatusOK,
			wantBody:   []string{"Blog | Test Site", "First post", "Second post", "/blog/page/2/"},
			wantAbsent: []string{"Third post"},
		},
		{
			name:       "second page",
			path:       "/blog/page/2/",
			content:    testContent(),
			wantStatus: http.StatusOK,
			wantBody:   []string{"Blog, page 2 | Test Site", "Third post"},
			wantAbsent: []string{"Second post"},
		},
		{
			name:       "past the last page",
			path:       "/blog/page/3/",
			content:    testContent(),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "not a number",
			path:       "/blog/page/two/",
			content:    testContent(),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "content API down",
			path:       "/blog/",
			content:    &fakeContent{err: errors.New("cms down")},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "categories down",
			path:       "/blog/",
			content:    &fakeContent{posts: testContent().posts, categoriesErr: errors.New("cms down")},
			wantStatus: http.StatusOK,
			wantBody:   []string{"First post"},
		},
		{
			name:       "category",
			path:       "/blog/category/news/",
			content:    testContent(),
			wantStatus: http.StatusOK,
			wantBody:   []string{"News | Test Site", "What happened", "First post", "Second post"},
			wantAbsent: []string{"Third post"},
		},
		{
			name:       "unknown category",
			path:       "/blog/category/sports/",
			content:    testContent(),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "single post",
			path:       "/blog/third/",
			content:    testContent(),
			wantStatus: http.StatusOK,
			wantBody:   []string{"Third post | Test Site", "The third one"},
		},
		{
			name:       "missing post",
			path:       "/blog/nope/",
			content:    testContent(),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "preview without session",
			path:       "/preview/blog/first",
			content:    testContent(),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "preview with session",
			path:       "/preview/blog/first",
			content:    testContent(),
			preview:    true,
			wantStatus: http.StatusOK,
			wantBody:   []string{"First post draft"},
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

func TestFirstPageRedirects(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/blog/page/1/", "/blog/"},
		{"/blog/category/news/page/1/", "/blog/category/news/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)

			newRouter(testContent(), false).ServeHTTP(rec, req)

			if rec.Code != http.StatusMovedPermanently {
				t.Fatalf("got status %d, want %d", rec.Code, http.StatusMovedPermanently)
			}
			if got := rec.Header().Get("Location"); got != tt.want {
				t.Errorf("got location %q, want %q", got, tt.want)
			}
		})
	}
}
