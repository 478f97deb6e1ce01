package export

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vlatan/block-site/internal/config"
	"github.com/vlatan/block-site/internal/models"
)

type fakeContent struct {
	pages      models.Pages
	posts      models.Posts
	categories models.Categories
	err        error
}

func (f *fakeContent) GetAllPages(ctx context.Context) (models.Pages, error) {
	return f.pages, f.err
}

func (f *fakeContent) GetAllPosts(ctx context.Context) (models.Posts, error) {
	return f.posts, nil
}

func (f *fakeContent) GetCategories(ctx context.Context) (models.Categories, error) {
	return f.categories, nil
}

func testContent() *fakeContent {
	news := models.Category{ID: "1", Name: "News", Slug: "news"}
	inNews := models.CategoryRef{ID: news.ID}

	return &fakeContent{
		pages: models.Pages{{Slug: "home"}, {Slug: "about"}},
		posts: models.Posts{
			{Slug: "one", Category: inNews},
			{Slug: "two", Category: inNews},
			{Slug: "three", Category: inNews},
			{Slug: "four"},
			{Slug: "five"},
		},
		categories: models.Categories{news, {ID: "2", Name: "Empty", Slug: "empty"}},
	}
}

func testConfig() *config.Config {
	return &config.Config{PostsPerPage: 2, ExportWorkers: 3, R2SiteBucketName: "site"}
}

// siteHandler answers every known route with its own path
func siteHandler(broken string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case NotFoundRoute:
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, "not found page")
		case broken:
			w.WriteHeader(http.StatusInternalServerError)
		default:
			fmt.Fprint(w, "rendered "+r.URL.Path)
		}
	})
}

func TestRoutes(t *testing.T) {
	s := New(siteHandler(""), testContent(), testConfig())

	routes, err := s.Routes(context.Background())
	if err != nil {
		t.Fatalf("got error %v, want nil", err)
	}

	want := []string{
		"/",
		"/about/",
		"/blog/",
		"/blog/page/2/",
		"/blog/page/3/",
		"/blog/one/",
		"/blog/five/",
		"/blog/category/news/",
		"/blog/category/news/page/2/",
		"/blog/category/empty/",
		"/sitemap.xml",
		"/robots.txt",
		"/favicon.svg",
		"/static/css/style.css",
		"/static/js/main.js",
	}

	for _, route := range want {
		if !slices.Contains(routes, route) {
			t.Errorf("got no route %q", route)
		}
	}

	for _, route := range []string{"/blog/page/4/", "/blog/category/empty/page/2/"} {
		if slices.Contains(routes, route) {
			t.Errorf("got unexpected route %q", route)
		}
	}

	// The home page is listed once
	roots := 0
	for _, route := range routes {
		if route == "/" {
			roots++
		}
	}
	if roots != 1 {
		t.Errorf("got %d root routes, want 1", roots)
	}
}

func TestRoutesError(t *testing.T) {
	content := testContent()
	content.err = errors.New("cms down")

	if _, err := New(siteHandler(""), content, testConfig()).Routes(context.Background()); err == nil {
		t.Error("got nil error, want error")
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		route string
		want  string
	}{
		{"/", "index.html"},
		{"/about/", "about/index.html"},
		{"/blog/page/2/", "blog/page/2/index.html"},
		{"/sitemap.xml", "sitemap.xml"},
		{"/static/css/style.css", "static/css/style.css"},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			if got := FileName(tt.route); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	out := t.TempDir()
	s := New(siteHandler(""), testContent(), testConfig())

	result, err := s.Build(context.Background(), out)
	if err != nil {
		t.Fatalf("got error %v, want nil", err)
	}

	routes, _ := s.Routes(context.Background())
	if got, want := result.Rendered, int64(len(routes)+1); got != want {
		t.Errorf("got %d rendered files, want %d", got, want)
	}

	files := map[string]string{
		"index.html":                           "rendered /",
		"blog/page/2/index.html":               "rendered /blog/page/2/",
		"blog/category/news/page/2/index.html": "rendered /blog/category/news/page/2/",
		"sitemap.xml":                          "rendered /sitemap.xml",
		"404.html":                             "not found page",
	}

	for name, want := range files {
		got, err := os.ReadFile(filepath.Join(out, name))
		if err != nil {
			t.Errorf("got error %v reading %s, want nil", err, name)
			continue
		}
		if string(got) != want {
			t.Errorf("got %q in %s, want %q", got, name, want)
		}
	}
}

func TestBuildFailedRoute(t *testing.T) {
	s := New(siteHandler("/blog/two/"), testContent(), testConfig())

	_, err := s.Build(context.Background(), t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "/blog/two/") {
		t.Errorf("got error %v, want one naming /blog/two/", err)
	}
}

type fakeUploader struct {
	mu        sync.Mutex
	keys      []string
	unchanged map[string]bool
	failures  map[string]int
}

func (f *fakeUploader) UploadFile(ctx context.Context, bucket, rootPath, key, filePath string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failures[key] > 0 {
		f.failures[key]--
		return false, errors.New("flaky network")
	}

	if f.unchanged[key] {
		return false, nil
	}

	f.keys = append(f.keys, bucket+":"+key)
	return true, nil
}

type fakeLock struct {
	held     bool
	unlocked bool
}

func (l *fakeLock) TryLock(ctx context.Context) (bool, error) { return !l.held, nil }

func (l *fakeLock) Unlock(ctx context.Context) error {
	l.unlocked = true
	return nil
}

func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	out := t.TempDir()
	for _, name := range files {
		p := filepath.Join(out, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(name), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return out
}

func TestUpload(t *testing.T) {
	out := writeTree(t, "index.html", "blog/index.html", "static/css/style.css")
	up := &fakeUploader{
		unchanged: map[string]bool{"static/css/style.css": true},
		failures:  map[string]int{"blog/index.html": 1},
	}
	lock := &fakeLock{}

	result, err := New(nil, nil, testConfig()).Upload(context.Background(), out, up, lock)
	if err != nil {
		t.Fatalf("got error %v, want nil", err)
	}

	if diff := cmp.Diff(&Result{Uploaded: 2, Skipped: 1}, result); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}

	slices.Sort(up.keys)
	if diff := cmp.Diff([]string{"site:blog/index.html", "site:index.html"}, up.keys); diff != "" {
		t.Errorf("uploaded keys mismatch (-want +got):\n%s", diff)
	}

	if !lock.unlocked {
		t.Error("got the lock still held, want it released")
	}
}

func TestUploadLocked(t *testing.T) {
	out := writeTree(t, "index.html")
	up := &fakeUploader{}

	_, err := New(nil, nil, testConfig()).Upload(context.Background(), out, up, &fakeLock{held: true})
	if !errors.Is(err, ErrLocked) {
		t.Errorf("got error %v, want %v", err, ErrLocked)
	}

	if len(up.keys) != 0 {
		t.Errorf("got %d uploads, want 0", len(up.keys))
	}
}

func TestUploadGivesUp(t *testing.T) {
	out := writeTree(t, "index.html")
	up := &fakeUploader{failures: map[string]int{"index.html": 10}}

	if _, err := New(nil, nil, testConfig()).Upload(context.Background(), out, up, nil); err == nil {
		t.Error("got nil error, want error")
	}
}
