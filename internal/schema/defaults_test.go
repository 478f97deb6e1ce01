package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vlatan/block-site/internal/slug"
)

func TestApplyBlockDefaults(t *testing.T) {

	tests := []struct {
		name  string
		input map[string]any
		want  map[string]any
	}{
		{
			name:  "cta1 gets primary background",
			input: map[string]any{"blockType": "cta1", "heading": "Go"},
			want: map[string]any{
				"blockType":  "cta1",
				"heading":    "Go",
				"align":      "center",
				"size":       "md",
				"background": "primary",
			},
		},
		{
			name: "explicit values win and nulls are filled",
			input: map[string]any{
				"blockType":  "stats1",
				"columns":    "2",
				"centered":   nil,
				"background": "dark",
			},
			want: map[string]any{
				"blockType":  "stats1",
				"columns":    "2",
				"centered":   true,
				"size":       "md",
				"background": "dark",
			},
		},
		{
			name: "button rows and group",
			input: map[string]any{
				"blockType": "faq1",
				"items":     []any{map[string]any{"question": "Q", "answer": "A"}},
				"bottomCta": map[string]any{
					"buttons": []any{map[string]any{"label": "Contact", "href": "/contact"}},
				},
			},
			want: map[string]any{
				"blockType":         "faq1",
				"title":             "FAQs",
				"items":             []any{map[string]any{"question": "Q", "answer": "A"}},
				"showBottomCta":     true,
				"centerHeading":     true,
				"maxWidth":          "medium",
				"defaultOpenFirst":  false,
				"allowMultipleOpen": false,
				"size":              "md",
				"background":        "default",
				"bottomCta": map[string]any{
					"heading": "Still have questions?",
					"buttons": []any{map[string]any{
						"label":   "Contact",
						"href":    "/contact",
						"variant": "primary",
					}},
				},
			},
		},
		{
			name:  "unknown block untouched",
			input: map[string]any{"blockType": "carousel"},
			want:  map[string]any{"blockType": "carousel"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyBlockDefaults(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyDefaultsDoesNotMutate(t *testing.T) {
	input := map[string]any{"blockType": "hero1", "heading": "Hi"}
	_ = ApplyBlockDefaults(input)
	if len(input) != 2 {
		t.Errorf("input was mutated: %v", input)
	}
}

func TestRunHooks(t *testing.T) {

	tests := []struct {
		name string
		op   slug.Operation
		data map[string]any
		want string
	}{
		{"create", slug.OperationCreate, map[string]any{"title": "About Us!"}, "about-us"},
		{"update keeps slug", slug.OperationUpdate, map[string]any{"title": "New", "slug": "old"}, "old"},
		{"update fills empty slug", slug.OperationUpdate, map[string]any{"title": "New One", "slug": ""}, "new-one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RunHooks(tt.op, Pages.Fields, tt.data)
			if got["slug"] != tt.want {
				t.Errorf("got %v, want %q", got["slug"], tt.want)
			}
		})
	}
}

func TestCategorySlugFromName(t *testing.T) {
	got := RunHooks(slug.OperationCreate, Categories.Fields, map[string]any{"name": "Web Development"})
	if got["slug"] != "web-development" {
		t.Errorf("got %v, want %q", got["slug"], "web-development")
	}
}
