package models

import "testing"

func TestPaginationURL(t *testing.T) {
	p := &PaginationInfo{BasePath: "/blog/category/news/", CurrentPage: 2, TotalPages: 3}

	tests := []struct {
		number int
		want   string
	}{
		{0, "/blog/category/news/"},
		{1, "/blog/category/news/"},
		{2, "/blog/category/news/page/2/"},
		{10, "/blog/category/news/page/10/"},
	}

	for _, tt := range tests {
		if got := p.URL(tt.number); got != tt.want {
			t.Errorf("URL(%d): got %q, want %q", tt.number, got, tt.want)
		}
	}

	if !p.HasPrevious() || !p.HasNext() {
		t.Errorf("got previous %v and next %v on the middle page, want both", p.HasPrevious(), p.HasNext())
	}

	if got := p.PreviousPage(); got != 1 {
		t.Errorf("got previous page %d, want 1", got)
	}

	p.CurrentPage = 3
	if p.HasNext() || p.NextPage() != 3 {
		t.Errorf("got next %v (%d) on the last page, want none", p.HasNext(), p.NextPage())
	}
}

func TestPublicPath(t *testing.T) {
	tests := []struct {
		name string
		data TemplateData
		want string
	}{
		{"post", TemplateData{Post: &Post{Slug: "hello"}}, "/blog/hello/"},
		{"page", TemplateData{Page: &Page{Slug: "about"}}, "/about/"},
		{"home", TemplateData{Page: &Page{Slug: "home"}}, "/"},
		{"neither", TemplateData{}, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.data.PublicPath(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
