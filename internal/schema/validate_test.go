package schema

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestValidateBlock(t *testing.T) {

	tests := []struct {
		name    string
		data    map[string]any
		errKeys []string
	}{
		{
			name:    "valid hero",
			data:    map[string]any{"blockType": "hero1", "heading": "Hello", "align": "left"},
			errKeys: nil,
		},
		{
			name:    "missing required heading",
			data:    map[string]any{"blockType": "cta1"},
			errKeys: []string{"heading"},
		},
		{
			name:    "option outside the list",
			data:    map[string]any{"blockType": "cta1", "heading": "x", "background": "neon"},
			errKeys: []string{"background"},
		},
		{
			name: "too few stats",
			data: map[string]any{
				"blockType": "stats1",
				"stats":     []any{map[string]any{"value": "1", "label": "one"}},
			},
			errKeys: []string{"stats"},
		},
		{
			name: "too many buttons",
			data: map[string]any{
				"blockType": "cta1",
				"heading":   "x",
				"buttons": []any{
					map[string]any{"label": "a", "href": "/a"},
					map[string]any{"label": "b", "href": "/b"},
					map[string]any{"label": "c", "href": "/c"},
					map[string]any{"label": "d", "href": "/d"},
				},
			},
			errKeys: []string{"buttons"},
		},
		{
			name: "nested row error",
			data: map[string]any{
				"blockType": "hero1",
				"heading":   "x",
				"buttons":   []any{map[string]any{"label": "a"}},
			},
			errKeys: []string{"buttons.0.href"},
		},
		{
			name: "hidden group is skipped",
			data: map[string]any{
				"blockType":     "faq1",
				"items":         []any{map[string]any{"question": "q", "answer": "a"}},
				"showBottomCta": false,
				"bottomCta":     map[string]any{"buttons": []any{map[string]any{}}},
			},
			errKeys: nil,
		},
		{
			name: "visible group is checked",
			data: map[string]any{
				"blockType":     "faq1",
				"items":         []any{map[string]any{"question": "q", "answer": "a"}},
				"showBottomCta": true,
				"bottomCta":     map[string]any{"buttons": []any{map[string]any{"href": "/"}}},
			},
			errKeys: []string{"bottomCta.buttons.0.label"},
		},
		{
			name:    "wrong type",
			data:    map[string]any{"blockType": "section", "content": map[string]any{"root": map[string]any{}}, "centerContent": "yes"},
			errKeys: []string{"centerContent"},
		},
		{
			name:    "unknown block",
			data:    map[string]any{"blockType": "carousel"},
			errKeys: []string{"blockType"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			err := ValidateBlock(tt.data)
			if tt.errKeys == nil {
				if err != nil {
					t.Fatalf("got error %v, want none", err)
				}
				return
			}

			var errs validation.Errors
			if !errors.As(err, &errs) {
				t.Fatalf("got %v, want validation.Errors", err)
			}

			var got []string
			for k := range errs {
				got = append(got, k)
			}

			sortStrings := cmpopts.SortSlices(func(a, b string) bool { return a < b })
			if diff := cmp.Diff(tt.errKeys, got, sortStrings); diff != "" {
				t.Errorf("error keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateNavigation(t *testing.T) {

	tests := []struct {
		name    string
		data    map[string]any
		wantErr string
	}{
		{
			name: "valid links",
			data: map[string]any{
				"header": map[string]any{"items": []any{
					map[string]any{"type": "internal", "page": "p1"},
					map[string]any{"type": "custom", "url": "/blog"},
				}},
			},
		},
		{
			name: "internal without page",
			data: map[string]any{
				"header": map[string]any{"items": []any{
					map[string]any{"type": "internal"},
				}},
			},
			wantErr: "header.items.0.page",
		},
		{
			name: "custom without url",
			data: map[string]any{
				"footer": map[string]any{"items": []any{
					map[string]any{"type": "custom", "url": ""},
				}},
			},
			wantErr: "footer.items.0.url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			err := Validate(Navigation.Fields, tt.data)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("got error %v, want none", err)
				}
				return
			}

			errs, ok := err.(validation.Errors)
			if !ok {
				t.Fatalf("got %v, want validation.Errors", err)
			}

			if _, ok := errs[tt.wantErr]; !ok {
				t.Errorf("got %v, want an error for %q", errs, tt.wantErr)
			}
		})
	}
}

func TestValidatePage(t *testing.T) {

	page := map[string]any{
		"title":  "Home",
		"slug":   "home",
		"status": "published",
		"blocks": []any{
			map[string]any{"blockType": "hero1", "heading": "Hi"},
			map[string]any{"blockType": "cta1"},
		},
	}

	err := Validate(Pages.Fields, page)
	errs, ok := err.(validation.Errors)
	if !ok {
		t.Fatalf("got %v, want validation.Errors", err)
	}

	if _, ok := errs["blocks.1.heading"]; !ok || len(errs) != 1 {
		t.Errorf("got %v, want a single error on blocks.1.heading", errs)
	}

	page["blocks"] = []any{}
	err = Validate(Pages.Fields, page)
	errs, _ = err.(validation.Errors)
	if _, ok := errs["blocks"]; !ok {
		t.Errorf("got %v, want an error on the empty blocks", err)
	}
}

func TestLookupCollection(t *testing.T) {

	tests := []struct {
		slug      string
		wantFound bool
	}{
		{"pages", true},
		{"posts", true},
		{"categories", true},
		{"navigation", false},
		{"users", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			c, ok := LookupCollection(tt.slug)
			if ok != tt.wantFound {
				t.Fatalf("got found %t, want %t", ok, tt.wantFound)
			}
			if ok && c.Slug != tt.slug {
				t.Errorf("got collection %q, want %q", c.Slug, tt.slug)
			}
		})
	}
}
