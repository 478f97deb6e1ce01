package richtext

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)

	markdownPolicy = bluemonday.UGCPolicy()
	inlinePolicy   = bluemonday.StrictPolicy().AllowElements("br")

	newlines = regexp.MustCompile(`\r?\n`)
)

// Markdown renders a textarea that supports line breaks and basic markdown
func Markdown(text string) template.HTML {

	if strings.TrimSpace(text) == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(text))
	}

	return template.HTML(markdownPolicy.SanitizeBytes(buf.Bytes()))
}

// Inline renders a single line field, newlines become <br>.
// Any other markup is stripped.
func Inline(text string) template.HTML {
	text = newlines.ReplaceAllString(text, "<br>")
	return template.HTML(inlinePolicy.Sanitize(text))
}
