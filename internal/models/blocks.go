package models

import (
	"encoding/json"
	"fmt"

	"github.com/vlatan/block-site/internal/schema"
)

const (
	BlockHero1         = "hero1"
	BlockCTA1          = "cta1"
	BlockCTA2          = "cta2"
	BlockFeature1      = "feature1"
	BlockLayout1       = "layout1"
	BlockStats1        = "stats1"
	BlockTeam1         = "team1"
	BlockSection       = "section"
	BlockBlog1         = "blog1"
	BlockCategoryGrid1 = "categoryGrid1"
	BlockFAQ1          = "faq1"
)

// Section holds the layout attributes shared by every block
type Section struct {
	Size          string `json:"size,omitempty"`
	PaddingTop    string `json:"paddingTop,omitempty"`
	PaddingBottom string `json:"paddingBottom,omitempty"`
	Background    string `json:"background,omitempty"`
}

type Button struct {
	Label   string `json:"label"`
	Href    string `json:"href"`
	Variant string `json:"variant,omitempty"`
}

// Block is one variant of the page building blocks
type Block interface {
	BlockType() string
	Layout() Section
}

// Base is embedded in every block variant
type Base struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"blockType"`
	Section
}

func (b Base) BlockType() string { return b.Type }
func (b Base) Layout() Section   { return b.Section }

type Hero1 struct {
	Base
	Tagline      string   `json:"tagline,omitempty"`
	Heading      string   `json:"heading"`
	Description  string   `json:"description,omitempty"`
	Align        string   `json:"align,omitempty"`
	ContentWidth string   `json:"contentWidth,omitempty"`
	Buttons      []Button `json:"buttons,omitempty"`
	Media        MediaRef `json:"media"`
}

type CTA1 struct {
	Base
	Heading     string   `json:"heading"`
	Description string   `json:"description,omitempty"`
	Align       string   `json:"align,omitempty"`
	Buttons     []Button `json:"buttons,omitempty"`
}

type CTA2 struct {
	Base
	Heading       string   `json:"heading"`
	Description   string   `json:"description,omitempty"`
	Image         MediaRef `json:"image"`
	Reverse       bool     `json:"reverse"`
	VerticalAlign string   `json:"verticalAlign,omitempty"`
	Buttons       []Button `json:"buttons,omitempty"`
}

type Feature struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Feature1 struct {
	Base
	Title         string    `json:"title,omitempty"`
	Subtitle      string    `json:"subtitle,omitempty"`
	Features      []Feature `json:"features"`
	Columns       string    `json:"columns,omitempty"`
	CardVariant   string    `json:"cardVariant,omitempty"`
	CenterHeading bool      `json:"centerHeading"`
	CenterCards   bool      `json:"centerCards"`
}

type Layout1 struct {
	Base
	Tagline     string          `json:"tagline,omitempty"`
	Heading     string          `json:"heading"`
	Description string          `json:"description,omitempty"`
	ContentText json.RawMessage `json:"contentText,omitempty"`
	MediaType   string          `json:"mediaType,omitempty"`
	Image       MediaRef        `json:"image"`
	CodeBlock   string          `json:"codeBlock,omitempty"`
	Reverse     bool            `json:"reverse"`
	Buttons     []Button        `json:"buttons,omitempty"`
}

type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Stats1 struct {
	Base
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Stats    []Stat `json:"stats"`
	Columns  string `json:"columns,omitempty"`
	Centered bool   `json:"centered"`
}

type Member struct {
	Name  string   `json:"name"`
	Role  string   `json:"role"`
	Image MediaRef `json:"image"`
	Bio   string   `json:"bio,omitempty"`
}

type Team1 struct {
	Base
	Title      string   `json:"title,omitempty"`
	Subtitle   string   `json:"subtitle,omitempty"`
	Members    []Member `json:"members"`
	Columns    string   `json:"columns,omitempty"`
	AvatarSize string   `json:"avatarSize,omitempty"`
	Centered   bool     `json:"centered"`
}

// ContentSection is the generic rich text block
type ContentSection struct {
	Base
	Content       json.RawMessage `json:"content,omitempty"`
	CenterContent bool            `json:"centerContent"`
	MaxWidth      string          `json:"maxWidth,omitempty"`
}

type Blog1 struct {
	Base
	Title         string      `json:"title,omitempty"`
	Subtitle      string      `json:"subtitle,omitempty"`
	PostSource    string      `json:"postSource,omitempty"`
	Category      CategoryRef `json:"category"`
	Posts         []PostRef   `json:"posts,omitempty"`
	Limit         int         `json:"limit,omitempty"`
	Columns       string      `json:"columns,omitempty"`
	CardVariant   string      `json:"cardVariant,omitempty"`
	CenterHeading bool        `json:"centerHeading"`
}

type CategoryGrid1 struct {
	Base
	Title          string        `json:"title,omitempty"`
	Subtitle       string        `json:"subtitle,omitempty"`
	CategorySource string        `json:"categorySource,omitempty"`
	Categories     []CategoryRef `json:"categories,omitempty"`
	ShowPostCount  bool          `json:"showPostCount"`
	Columns        string        `json:"columns,omitempty"`
	CardVariant    string        `json:"cardVariant,omitempty"`
	CenterHeading  bool          `json:"centerHeading"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type BottomCta struct {
	Heading     string   `json:"heading,omitempty"`
	Description string   `json:"description,omitempty"`
	Buttons     []Button `json:"buttons,omitempty"`
}

type FAQ1 struct {
	Base
	Title             string     `json:"title,omitempty"`
	Subtitle          string     `json:"subtitle,omitempty"`
	Items             []FAQItem  `json:"items"`
	ShowBottomCta     bool       `json:"showBottomCta"`
	BottomCta         *BottomCta `json:"bottomCta,omitempty"`
	CenterHeading     bool       `json:"centerHeading"`
	MaxWidth          string     `json:"maxWidth,omitempty"`
	DefaultOpenFirst  bool       `json:"defaultOpenFirst"`
	AllowMultipleOpen bool       `json:"allowMultipleOpen"`
}

// UnknownBlock keeps a block whose type this site does not know.
// It's skipped when rendering.
type UnknownBlock struct {
	Base
	Raw json.RawMessage `json:"-"`
}

// MarshalJSON implements the json.Marshaler interface
func (b *UnknownBlock) MarshalJSON() ([]byte, error) {
	if len(b.Raw) == 0 {
		return json.Marshal(b.Base)
	}
	return b.Raw, nil
}

// Blocks is the ordered, heterogeneous body of a page
type Blocks []Block

// UnmarshalJSON decodes every element by its blockType tag.
// Missing values are filled with the block defaults first.
func (bs *Blocks) UnmarshalJSON(data []byte) error {

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	blocks := make(Blocks, 0, len(raws))
	for i, raw := range raws {
		b, err := decodeBlock(raw)
		if err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		blocks = append(blocks, b)
	}

	*bs = blocks
	return nil
}

func decodeBlock(raw json.RawMessage) (Block, error) {

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	blockType, _ := fields["blockType"].(string)

	var b Block
	switch blockType {
	case BlockHero1:
		b = &Hero1{}
	case BlockCTA1:
		b = &CTA1{}
	case BlockCTA2:
		b = &CTA2{}
	case BlockFeature1:
		b = &Feature1{}
	case BlockLayout1:
		b = &Layout1{}
	case BlockStats1:
		b = &Stats1{}
	case BlockTeam1:
		b = &Team1{}
	case BlockSection:
		b = &ContentSection{}
	case BlockBlog1:
		b = &Blog1{}
	case BlockCategoryGrid1:
		b = &CategoryGrid1{}
	case BlockFAQ1:
		b = &FAQ1{}
	default:
		unknown := &UnknownBlock{Raw: raw}
		unknown.Type = blockType
		unknown.ID, _ = fields["id"].(string)
		return unknown, nil
	}

	filled, err := json.Marshal(schema.ApplyBlockDefaults(fields))
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(filled, b); err != nil {
		return nil, err
	}

	return b, nil
}
