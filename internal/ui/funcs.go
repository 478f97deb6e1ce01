package ui

import (
	"html/template"
	"strings"

	"github.com/vlatan/block-site/internal/models"
	"github.com/vlatan/block-site/internal/richtext"
	"github.com/vlatan/block-site/internal/utils"
)

// templateFuncs are the helpers available to every template
func templateFuncs(mediaURL func(*models.Media) string, rich *richtext.Renderer) template.FuncMap {
	return template.FuncMap{
		"mediaURL":     mediaURL,
		"richText":     rich.HTML,
		"markdown":     richtext.Markdown,
		"inline":       richtext.Inline,
		"sectionClass": sectionClass,
		"plural":       utils.Plural,
	}
}

// sectionClass maps the layout attributes of a block to CSS classes
func sectionClass(b models.Block) string {

	l := b.Layout()
	classes := []string{"section", "section--size-" + or(l.Size, "md")}

	if l.PaddingTop != "" {
		classes = append(classes, "section--pt-"+l.PaddingTop)
	}

	if l.PaddingBottom != "" {
		classes = append(classes, "section--pb-"+l.PaddingBottom)
	}

	classes = append(classes, "section--bg-"+or(l.Background, "default"))
	return strings.Join(classes, " ")
}

func or(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
