package schema

import (
	"errors"

	"github.com/vlatan/block-site/internal/slug"
)

type Collection struct {
	Slug       string
	UseAsTitle string
	Drafts     bool
	Fields     []Field
}

type Global struct {
	Slug   string
	Label  string
	Fields []Field
}

var statusOptions = []Option{
	{Label: "Draft", Value: "draft"},
	{Label: "Published", Value: "published"},
}

// SlugField is a unique text field auto-generated from another field
func SlugField(fieldToUse string) Field {
	return Field{
		Name:        "slug",
		Type:        TypeText,
		Unique:      true,
		Description: "Auto-generated from title. You can edit if needed.",
		Hook: func(op slug.Operation, value any, data map[string]any) any {
			s, _ := value.(string)
			return slug.Generate(op, s, data, fieldToUse)
		},
	}
}

func statusField() Field {
	return Field{
		Name:         "status",
		Type:         TypeSelect,
		Options:      statusOptions,
		DefaultValue: "draft",
		Required:     true,
	}
}

var Pages = Collection{
	Slug:       "pages",
	UseAsTitle: "title",
	Drafts:     true,
	Fields: []Field{
		{Name: "title", Type: TypeText, Required: true},
		SlugField("title"),
		{
			Name:        "blocks",
			Type:        TypeBlocks,
			Blocks:      allBlocks,
			Required:    true,
			MinRows:     1,
			Description: "Build your page by adding and arranging blocks",
		},
		{
			Name: "meta",
			Type: TypeGroup,
			Fields: []Field{
				{Name: "title", Type: TypeText, Description: "Override the page title for SEO"},
				{Name: "description", Type: TypeTextarea, Description: "Meta description for search engines"},
				{Name: "image", Type: TypeUpload, RelationTo: "media", Description: "Social sharing image"},
			},
		},
		statusField(),
	},
}

var Posts = Collection{
	Slug:       "posts",
	UseAsTitle: "title",
	Drafts:     true,
	Fields: []Field{
		{Name: "title", Type: TypeText, Required: true},
		SlugField("title"),
		{Name: "description", Type: TypeTextarea, Required: true, Description: "Short summary for SEO and previews"},
		{Name: "heroImage", Type: TypeUpload, RelationTo: "media"},
		{Name: "category", Type: TypeRelationship, RelationTo: "categories", Required: true},
		{Name: "author", Type: TypeText, DefaultValue: "Admin"},
		{Name: "pubDate", Type: TypeDate, Required: true},
		{Name: "updatedDate", Type: TypeDate},
		{Name: "content", Type: TypeRichText, Required: true},
		statusField(),
	},
}

var Categories = Collection{
	Slug:       "categories",
	UseAsTitle: "name",
	Fields: []Field{
		{Name: "name", Type: TypeText, Required: true},
		SlugField("name"),
		{Name: "description", Type: TypeTextarea},
		{Name: "color", Type: TypeText, Description: `CSS color value for category badge (e.g., "#6366f1")`},
	},
}

// LinkFields describe a single navigation entry,
// either an internal page or a custom URL
func LinkFields() []Field {
	return []Field{
		{
			Name: "type",
			Type: TypeRadio,
			Options: []Option{
				{Label: "Internal Page", Value: "internal"},
				{Label: "Custom URL", Value: "custom"},
			},
			DefaultValue: "internal",
		},
		{
			Name:        "page",
			Type:        TypeRelationship,
			RelationTo:  "pages",
			Condition:   siblingEquals("type", "internal"),
			Description: "Select a page to link to",
			Validate: func(value any, siblings map[string]any) error {
				if siblings["type"] == "internal" && isEmpty(value) {
					return errors.New("please select a page")
				}
				return nil
			},
		},
		{
			Name:        "url",
			Type:        TypeText,
			Condition:   siblingEquals("type", "custom"),
			Description: `Enter a custom URL (e.g., "/blog" or "https://example.com")`,
			Validate: func(value any, siblings map[string]any) error {
				if siblings["type"] == "custom" && isEmpty(value) {
					return errors.New("please enter a URL")
				}
				return nil
			},
		},
		{Name: "label", Type: TypeText, Description: "Optional: Override the page title or provide a custom label"},
		{Name: "newTab", Type: TypeCheckbox, Label: "Open in new tab", DefaultValue: false},
	}
}

var Navigation = Global{
	Slug:  "navigation",
	Label: "Site Navigation",
	Fields: []Field{
		{
			Name:  "header",
			Type:  TypeGroup,
			Label: "Header Navigation",
			Fields: []Field{
				{Name: "items", Type: TypeArray, Label: "Menu Items", Fields: LinkFields()},
			},
		},
		{
			Name:  "footer",
			Type:  TypeGroup,
			Label: "Footer Navigation",
			Fields: []Field{
				{Name: "items", Type: TypeArray, Label: "Footer Links", Fields: LinkFields()},
			},
		},
	},
}

// LookupCollection finds a collection definition by its slug
func LookupCollection(slug string) (Collection, bool) {
	for _, c := range []Collection{Pages, Posts, Categories} {
		if c.Slug == slug {
			return c, true
		}
	}
	return Collection{}, false
}
