package render

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vlatan/block-site/internal/models"
)

// fakeSource records the calls and serves fixed content
type fakeSource struct {
	calls      []string
	posts      models.Posts
	categories models.CategoriesWithPostCount
	err        error
}

func (f *fakeSource) GetPosts(ctx context.Context, limit int) (models.Posts, error) {
	f.calls = append(f.calls, "posts")
	return truncate(f.posts, limit), f.err
}

func (f *fakeSource) GetPostsByCategory(ctx context.Context, slug string, limit int) (models.Posts, error) {
	f.calls = append(f.calls, "category:"+slug)
	return truncate(f.posts, limit), f.err
}

func (f *fakeSource) GetCategoriesWithPostCounts(ctx context.Context) (models.CategoriesWithPostCount, error) {
	f.calls = append(f.calls, "counts")
	return f.categories, f.err
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		posts: models.Posts{{Slug: "a"}, {Slug: "b"}, {Slug: "c"}},
		categories: models.CategoriesWithPostCount{
			{Category: models.Category{ID: "1", Slug: "news"}, PostCount: 2},
			{Category: models.Category{ID: "2", Slug: "guides"}, PostCount: 1},
		},
	}
}

func slugs(posts models.Posts) []string {
	var result []string
	for _, p := range posts {
		result = append(result, p.Slug)
	}
	return result
}

func blog(source string, limit int) *models.Blog1 {
	b := &models.Blog1{PostSource: source, Limit: limit}
	b.Type = models.BlockBlog1
	return b
}

func TestResolveBlog(t *testing.T) {

	news := &models.Category{ID: "1", Slug: "news"}

	specific := blog(SourceSpecific, 2)
	specific.Posts = []models.PostRef{
		{ID: "x", Doc: &models.Post{Slug: "x"}},
		{ID: "dangling"},
		{ID: "y", Doc: &models.Post{Slug: "y"}},
		{ID: "z", Doc: &models.Post{Slug: "z"}},
	}

	byCategory := blog(SourceCategory, 6)
	byCategory.Category = models.CategoryRef{ID: "1", Doc: news}

	unresolved := blog(SourceCategory, 6)
	unresolved.Category = models.CategoryRef{ID: "1"}

	tests := []struct {
		name      string
		block     *models.Blog1
		wantPosts []string
		wantCalls []string
	}{
		{"latest", blog(SourceLatest, 2), []string{"a", "b"}, []string{"posts"}},
		{"default source", blog("", 0), []string{"a", "b", "c"}, []string{"posts"}},
		{"by category", byCategory, []string{"a", "b", "c"}, []string{"category:news"}},
		{"unresolved category", unresolved, nil, nil},
		{"specific", specific, []string{"x", "y"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newFakeSource()

			views, err := New(src).Resolve(context.Background(), models.Blocks{tt.block})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(views) != 1 {
				t.Fatalf("got %d views, want 1", len(views))
			}

			if diff := cmp.Diff(tt.wantPosts, slugs(views[0].Posts)); diff != "" {
				t.Errorf("posts mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.wantCalls, src.calls); diff != "" {
				t.Errorf("calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveCategoryGrid(t *testing.T) {

	grid := func(source string, showCount bool, refs ...models.CategoryRef) *models.CategoryGrid1 {
		b := &models.CategoryGrid1{CategorySource: source, ShowPostCount: showCount, Categories: refs}
		b.Type = models.BlockCategoryGrid1
		return b
	}

	guides := models.CategoryRef{ID: "2", Doc: &models.Category{ID: "2", Slug: "guides"}}
	news := models.CategoryRef{ID: "1", Doc: &models.Category{ID: "1", Slug: "news"}}

	type result struct {
		Slug  string
		Count int
	}

	tests := []struct {
		name      string
		block     *models.CategoryGrid1
		want      []result
		wantCalls []string
	}{
		{
			name:      "all",
			block:     grid(SourceAll, true),
			want:      []result{{"news", 2}, {"guides", 1}},
			wantCalls: []string{"counts"},
		},
		{
			name:      "specific with counts keeps the order",
			block:     grid(SourceSpecific, true, guides, models.CategoryRef{ID: "9"}, news),
			want:      []result{{"guides", 1}, {"news", 2}},
			wantCalls: []string{"counts"},
		},
		{
			name:  "specific without counts",
			block: grid(SourceSpecific, false, news),
			want:  []result{{"news", 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newFakeSource()

			views, err := New(src).Resolve(context.Background(), models.Blocks{tt.block})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var got []result
			for _, c := range views[0].Categories {
				got = append(got, result{c.Slug, c.PostCount})
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("categories mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.wantCalls, src.calls); diff != "" {
				t.Errorf("calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveOrderAndUnknown(t *testing.T) {

	hero := &models.Hero1{Heading: "Hi"}
	hero.Type = models.BlockHero1

	unknown := &models.UnknownBlock{}
	unknown.Type = "carousel"

	faq := &models.FAQ1{}
	faq.Type = models.BlockFAQ1

	grid1 := &models.CategoryGrid1{CategorySource: SourceAll}
	grid1.Type = models.BlockCategoryGrid1
	grid2 := &models.CategoryGrid1{CategorySource: SourceAll}
	grid2.Type = models.BlockCategoryGrid1

	src := newFakeSource()
	views, err := New(src).Resolve(context.Background(), models.Blocks{hero, unknown, grid1, faq, grid2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	for _, v := range views {
		got = append(got, v.Block.BlockType())
	}

	want := []string{"hero1", "categoryGrid1", "faq1", "categoryGrid1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	// The counts are fetched once per page
	if diff := cmp.Diff([]string{"counts"}, src.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveError(t *testing.T) {

	src := newFakeSource()
	src.err = errors.New("boom")

	_, err := New(src).Resolve(context.Background(), models.Blocks{blog(SourceLatest, 3)})
	if !errors.Is(err, src.err) {
		t.Errorf("got %v, want it to wrap %v", err, src.err)
	}
}
