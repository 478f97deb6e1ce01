// Package richtext turns the CMS rich text and textarea fields into safe HTML
package richtext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"
	"github.com/vlatan/block-site/internal/models"
)

// Text format bits of the editor
const (
	formatBold = 1 << iota
	formatItalic
	formatStrikethrough
	formatUnderline
	formatCode
	formatSubscript
	formatSuperscript
)

// node is any element of the editor tree
type node struct {
	Type     string          `json:"type"`
	Tag      string          `json:"tag"`
	Text     string          `json:"text"`
	Format   json.RawMessage `json:"format"`
	ListType string          `json:"listType"`
	Checked  *bool           `json:"checked"`
	Fields   *linkFields     `json:"fields"`
	URL      string          `json:"url"`
	Value    models.MediaRef `json:"value"`
	Children []node          `json:"children"`
}

type linkFields struct {
	URL      string          `json:"url"`
	NewTab   bool            `json:"newTab"`
	LinkType string          `json:"linkType"`
	Doc      *internalTarget `json:"doc"`
}

// internalTarget is a link to another document
type internalTarget struct {
	RelationTo string `json:"relationTo"`
	Value      struct {
		Slug string `json:"slug"`
	} `json:"value"`
}

type document struct {
	Root *node `json:"root"`
}

var headingTag = regexp.MustCompile(`^h[1-6]$`)

// Renderer renders the editor JSON.
// Media URLs of the uploads are resolved with mediaURL.
type Renderer struct {
	mediaURL func(*models.Media) string
	policy   *bluemonday.Policy
}

// New creates a renderer, mediaURL may be nil
func New(mediaURL func(*models.Media) string) *Renderer {

	if mediaURL == nil {
		mediaURL = func(m *models.Media) string { return m.URL }
	}

	return &Renderer{
		mediaURL: mediaURL,
		policy:   contentPolicy(),
	}
}

// contentPolicy is the UGC policy plus the attributes the renderer emits
func contentPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowAttrs("rel").Matching(regexp.MustCompile(`^noopener noreferrer$`)).OnElements("a")
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^[a-z0-9 _-]+$`)).OnElements("ul", "ol", "li", "figure")
	p.AllowAttrs("loading").Matching(regexp.MustCompile(`^lazy$`)).OnElements("img")
	return p
}

// HTML renders the serialized editor state.
// Empty input gives empty output.
func (r *Renderer) HTML(data json.RawMessage) (template.HTML, error) {

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("invalid rich text: %w", err)
	}

	if doc.Root == nil {
		return "", nil
	}

	w := &writer{renderer: r, ids: map[string]int{}}
	w.children(doc.Root.Children)

	return template.HTML(r.policy.Sanitize(w.String())), nil
}

// writer holds the state of a single render
type writer struct {
	strings.Builder
	renderer *Renderer
	ids      map[string]int
}

func (w *writer) children(nodes []node) {
	for i := range nodes {
		w.node(&nodes[i])
	}
}

func (w *writer) node(n *node) {
	switch n.Type {
	case "text":
		w.text(n)
	case "linebreak":
		w.WriteString("<br>")
	case "tab":
		w.WriteString("\t")
	case "paragraph":
		w.wrap("p", "", n.Children)
	case "heading":
		tag := n.Tag
		if !headingTag.MatchString(tag) {
			tag = "h2"
		}
		w.wrap(tag, ` id="`+w.headingID(n)+`"`, n.Children)
	case "quote":
		w.wrap("blockquote", "", n.Children)
	case "list":
		w.list(n)
	case "listitem":
		w.listItem(n)
	case "link", "autolink":
		w.link(n)
	case "horizontalrule":
		w.WriteString("<hr>")
	case "upload":
		w.upload(n)
	default:
		// Unknown element nodes still show their text
		w.children(n.Children)
	}
}

func (w *writer) wrap(tag, attrs string, children []node) {
	w.WriteString("<" + tag + attrs + ">")
	w.children(children)
	w.WriteString("</" + tag + ">")
}

func (w *writer) text(n *node) {

	format := n.format()
	text := html.EscapeString(n.Text)

	var opening, closing []string
	for _, f := range []struct {
		bit int
		tag string
	}{
		{formatCode, "code"},
		{formatBold, "strong"},
		{formatItalic, "em"},
		{formatStrikethrough, "s"},
		{formatUnderline, "u"},
		{formatSubscript, "sub"},
		{formatSuperscript, "sup"},
	} {
		if format&f.bit != 0 {
			opening = append(opening, "<"+f.tag+">")
			closing = append([]string{"</" + f.tag + ">"}, closing...)
		}
	}

	w.WriteString(strings.Join(opening, ""))
	w.WriteString(text)
	w.WriteString(strings.Join(closing, ""))
}

func (w *writer) list(n *node) {
	tag := "ul"
	if n.ListType == "number" || n.Tag == "ol" {
		tag = "ol"
	}

	attrs := ""
	if n.ListType == "check" {
		attrs = ` class="list-check"`
	}

	w.wrap(tag, attrs, n.Children)
}

func (w *writer) listItem(n *node) {
	attrs := ""
	if n.Checked != nil {
		attrs = ` class="unchecked"`
		if *n.Checked {
			attrs = ` class="checked"`
		}
	}
	w.wrap("li", attrs, n.Children)
}

func (w *writer) link(n *node) {

	href := n.URL
	newTab := false

	if f := n.Fields; f != nil {
		href = f.URL
		newTab = f.NewTab
		if f.LinkType == "internal" && f.Doc != nil {
			href = internalHref(f.Doc)
		}
	}

	if href == "" {
		w.children(n.Children)
		return
	}

	attrs := ` href="` + html.EscapeString(href) + `"`
	if newTab {
		attrs += ` target="_blank" rel="noopener noreferrer"`
	}

	w.wrap("a", attrs, n.Children)
}

func (w *writer) upload(n *node) {

	media := n.Value.Doc
	if media == nil {
		return
	}

	src := w.renderer.mediaURL(media)
	if src == "" {
		return
	}

	w.WriteString("<figure>")
	fmt.Fprintf(w, `<img src="%s" alt="%s" loading="lazy"`, html.EscapeString(src), html.EscapeString(media.Alt))
	if media.Width > 0 && media.Height > 0 {
		fmt.Fprintf(w, ` width="%d" height="%d"`, media.Width, media.Height)
	}
	w.WriteString(">")

	if media.Caption != "" {
		w.WriteString("<figcaption>" + html.EscapeString(media.Caption) + "</figcaption>")
	}
	w.WriteString("</figure>")
}

// headingID is the anchor of a heading, unique within the document
func (w *writer) headingID(n *node) string {

	id := slug.Make(plainText(n.Children))
	if id == "" {
		id = "section"
	}

	w.ids[id]++
	if count := w.ids[id]; count > 1 {
		id += "-" + strconv.Itoa(count)
	}

	return id
}

// format is numeric for text nodes, a string alignment for elements
func (n *node) format() int {
	var f int
	if err := json.Unmarshal(n.Format, &f); err != nil {
		return 0
	}
	return f
}

// plainText concatenates the text of all the descendants
func plainText(nodes []node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(n.Text)
		sb.WriteString(plainText(n.Children))
	}
	return sb.String()
}

// internalHref is the site path of a linked document
func internalHref(doc *internalTarget) string {
	s := doc.Value.Slug
	switch {
	case s == "":
		return ""
	case doc.RelationTo == "posts":
		return "/blog/" + s + "/"
	case s == "home":
		return "/"
	default:
		return "/" + s + "/"
	}
}
