package schema

var (
	alignOptions = []Option{
		{Label: "Center", Value: "center"},
		{Label: "Left", Value: "left"},
	}

	cardVariantOptions = []Option{
		{Label: "Elevated (Shadow)", Value: "elevated"},
		{Label: "Outlined (Border)", Value: "outlined"},
		{Label: "Filled (Background)", Value: "filled"},
	}

	twoToFourColumns = []Option{
		{Label: "2 Columns", Value: "2"},
		{Label: "3 Columns", Value: "3"},
		{Label: "4 Columns", Value: "4"},
	}

	twoToThreeColumns = []Option{
		{Label: "2 Columns", Value: "2"},
		{Label: "3 Columns", Value: "3"},
	}
)

var Hero1 = Block{
	Slug:     "hero1",
	Singular: "Hero (Centered)",
	Plural:   "Hero Sections",
	Fields: withSection([]Field{
		{Name: "tagline", Type: TypeText, Description: "Small badge text above heading"},
		{Name: "heading", Type: TypeText, Required: true, Description: "Main headline (use <br /> for line breaks)"},
		{Name: "description", Type: TypeTextarea, Description: "Subheading text"},
		{Name: "align", Type: TypeSelect, Options: alignOptions, DefaultValue: "center"},
		{
			Name: "contentWidth",
			Type: TypeSelect,
			Options: []Option{
				{Label: "Narrow", Value: "narrow"},
				{Label: "Medium", Value: "medium"},
				{Label: "Wide", Value: "wide"},
			},
			DefaultValue: "medium",
		},
		ButtonField(),
		{Name: "media", Type: TypeUpload, RelationTo: "media", Description: "Optional hero image"},
	}, SectionFields()),
}

var CTA1 = Block{
	Slug:     "cta1",
	Singular: "CTA (Centered)",
	Plural:   "CTA Sections",
	Fields: withSection([]Field{
		{Name: "heading", Type: TypeText, Required: true},
		{Name: "description", Type: TypeTextarea},
		{Name: "align", Type: TypeSelect, Options: alignOptions, DefaultValue: "center"},
		ButtonField(),
	}, OverrideDefault(SectionFields(), "background", TypeSelect, "primary")),
}

var CTA2 = Block{
	Slug:     "cta2",
	Singular: "CTA (With Image)",
	Plural:   "CTA With Image Sections",
	Fields: withSection([]Field{
		{Name: "heading", Type: TypeText, Required: true},
		{Name: "description", Type: TypeTextarea},
		{Name: "image", Type: TypeUpload, RelationTo: "media", Description: "Image displayed beside the content"},
		{Name: "reverse", Type: TypeCheckbox, Label: "Reverse layout (image on left)", DefaultValue: false},
		{
			Name: "verticalAlign",
			Type: TypeSelect,
			Options: []Option{
				{Label: "Top", Value: "start"},
				{Label: "Center", Value: "center"},
				{Label: "Bottom", Value: "end"},
			},
			DefaultValue: "center",
		},
		ButtonField(),
	}, OverrideDefault(SectionFields(), "background", TypeSelect, "muted")),
}

var Feature1 = Block{
	Slug:     "feature1",
	Singular: "Features Grid",
	Plural:   "Features Grids",
	Fields: withSection([]Field{
		{Name: "title", Type: TypeText, Description: "Section heading"},
		{Name: "subtitle", Type: TypeTextarea, Description: "Section subheading"},
		{
			Name:     "features",
			Type:     TypeArray,
			Required: true,
			MinRows:  1,
			MaxRows:  12,
			Fields: []Field{
				{Name: "icon", Type: TypeText, Description: `Emoji or symbol (e.g., "✦", "◈")`},
				{Name: "title", Type: TypeText, Required: true},
				{Name: "description", Type: TypeTextarea, Required: true},
			},
		},
		{Name: "columns", Type: TypeSelect, Options: twoToFourColumns, DefaultValue: "3"},
		{Name: "cardVariant", Type: TypeSelect, Options: cardVariantOptions, DefaultValue: "outlined"},
		{Name: "centerHeading", Type: TypeCheckbox, Label: "Center section heading", DefaultValue: true},
		{Name: "centerCards", Type: TypeCheckbox, Label: "Center card content", DefaultValue: true},
	}, SectionFields()),
}

var Layout1 = Block{
	Slug:     "layout1",
	Singular: "Two Column Layout",
	Plural:   "Two Column Layouts",
	Fields: withSection([]Field{
		{Name: "tagline", Type: TypeText, Description: "Small text above heading"},
		{Name: "heading", Type: TypeText, Required: true},
		{Name: "description", Type: TypeTextarea},
		{Name: "contentText", Type: TypeRichText, Description: "Additional content below description"},
		{
			Name: "mediaType",
			Type: TypeSelect,
			Options: []Option{
				{Label: "Image", Value: "image"},
				{Label: "Code Block", Value: "code"},
			},
			DefaultValue: "image",
		},
		{Name: "image", Type: TypeUpload, RelationTo: "media", Condition: siblingEquals("mediaType", "image")},
		{Name: "codeBlock", Type: TypeCode, Condition: siblingEquals("mediaType", "code")},
		{Name: "reverse", Type: TypeCheckbox, Label: "Reverse layout (media on left)", DefaultValue: false},
		ButtonField(),
	}, SectionFields()),
}

var Stats1 = Block{
	Slug:     "stats1",
	Singular: "Statistics",
	Plural:   "Statistics Sections",
	Fields: withSection([]Field{
		{Name: "title", Type: TypeText, Description: "Section heading"},
		{Name: "subtitle", Type: TypeTextarea, Description: "Section subheading"},
		{
			Name:     "stats",
			Type:     TypeArray,
			Required: true,
			MinRows:  2,
			MaxRows:  8,
			Fields: []Field{
				{Name: "value", Type: TypeText, Required: true, Description: `The number or value (e.g., "100+", "99%")`},
				{Name: "label", Type: TypeText, Required: true, Description: "Description of the stat"},
			},
		},
		{Name: "columns", Type: TypeSelect, Options: twoToFourColumns, DefaultValue: "4"},
		{Name: "centered", Type: TypeCheckbox, Label: "Center content", DefaultValue: true},
	}, SectionFields()),
}

var Team1 = Block{
	Slug:     "team1",
	Singular: "Team",
	Plural:   "Team Sections",
	Fields: withSection([]Field{
		{Name: "title", Type: TypeText, Description: "Section heading"},
		{Name: "subtitle", Type: TypeTextarea, Description: "Section subheading"},
		{
			Name:     "members",
			Type:     TypeArray,
			Required: true,
			MinRows:  1,
			MaxRows:  12,
			Fields: []Field{
				{Name: "name", Type: TypeText, Required: true},
				{Name: "role", Type: TypeText, Required: true},
				{Name: "image", Type: TypeUpload, RelationTo: "media"},
				{Name: "bio", Type: TypeTextarea},
			},
		},
		{Name: "columns", Type: TypeSelect, Options: twoToFourColumns, DefaultValue: "4"},
		{
			Name: "avatarSize",
			Type: TypeSelect,
			Options: []Option{
				{Label: "Medium", Value: "md"},
				{Label: "Large", Value: "lg"},
				{Label: "Extra Large", Value: "xl"},
			},
			DefaultValue: "xl",
		},
		{Name: "centered", Type: TypeCheckbox, Label: "Center content", DefaultValue: true},
	}, SectionFields()),
}

var Section = Block{
	Slug:     "section",
	Singular: "Content Section",
	Plural:   "Content Sections",
	Fields: withSection([]Field{
		{Name: "content", Type: TypeRichText, Required: true, Description: "Section content with rich text formatting"},
		{Name: "centerContent", Type: TypeCheckbox, Label: "Center content", DefaultValue: true},
		{
			Name: "maxWidth",
			Type: TypeSelect,
			Options: []Option{
				{Label: "Narrow (65ch)", Value: "narrow"},
				{Label: "Medium (80ch)", Value: "medium"},
				{Label: "Wide (100%)", Value: "wide"},
			},
			DefaultValue: "narrow",
		},
	}, SectionFields()),
}

var Blog1 = Block{
	Slug:     "blog1",
	Singular: "Blog Posts Grid",
	Plural:   "Blog Posts Grids",
	Fields: withSection([]Field{
		{Name: "title", Type: TypeText, Description: "Section heading"},
		{Name: "subtitle", Type: TypeTextarea, Description: "Section subheading"},
		{
			Name: "postSource",
			Type: TypeSelect,
			Options: []Option{
				{Label: "Latest Posts", Value: "latest"},
				{Label: "By Category", Value: "category"},
				{Label: "Specific Posts", Value: "specific"},
			},
			DefaultValue: "latest",
			Description:  "How to select which posts to display",
		},
		{
			Name:        "category",
			Type:        TypeRelationship,
			RelationTo:  "categories",
			Condition:   siblingEquals("postSource", "category"),
			Description: "Select category to filter posts",
		},
		{
			Name:        "posts",
			Type:        TypeRelationship,
			RelationTo:  "posts",
			HasMany:     true,
			Condition:   siblingEquals("postSource", "specific"),
			Description: "Select specific posts to display",
		},
		{Name: "limit", Type: TypeNumber, DefaultValue: 6, Description: "Maximum number of posts to display"},
		{Name: "columns", Type: TypeSelect, Options: twoToThreeColumns, DefaultValue: "3"},
		{Name: "cardVariant", Type: TypeSelect, Options: cardVariantOptions, DefaultValue: "elevated"},
		{Name: "centerHeading", Type: TypeCheckbox, Label: "Center section heading", DefaultValue: false},
	}, SectionFields()),
}

var CategoryGrid1 = Block{
	Slug:     "categoryGrid1",
	Singular: "Category Grid",
	Plural:   "Category Grids",
	Fields: withSection([]Field{
		{Name: "title", Type: TypeText, Description: "Section heading"},
		{Name: "subtitle", Type: TypeTextarea, Description: "Section subheading"},
		{
			Name: "categorySource",
			Type: TypeSelect,
			Options: []Option{
				{Label: "All Categories", Value: "all"},
				{Label: "Specific Categories", Value: "specific"},
			},
			DefaultValue: "all",
			Description:  "How to select which categories to display",
		},
		{
			Name:        "categories",
			Type:        TypeRelationship,
			RelationTo:  "categories",
			HasMany:     true,
			Condition:   siblingEquals("categorySource", "specific"),
			Description: "Select specific categories to display",
		},
		{
			Name:         "showPostCount",
			Type:         TypeCheckbox,
			Label:        "Show post count",
			DefaultValue: true,
			Description:  "Display the number of posts in each category",
		},
		{Name: "columns", Type: TypeSelect, Options: twoToThreeColumns, DefaultValue: "2"},
		{Name: "cardVariant", Type: TypeSelect, Options: cardVariantOptions, DefaultValue: "outlined"},
		{Name: "centerHeading", Type: TypeCheckbox, Label: "Center section heading", DefaultValue: false},
	}, SectionFields()),
}

var FAQ1 = Block{
	Slug:     "faq1",
	Singular: "FAQ Section",
	Plural:   "FAQ Sections",
	Fields: withSection([]Field{
		{
			Name:         "title",
			Type:         TypeText,
			DefaultValue: "FAQs",
			Description:  `Section heading (e.g., "FAQs", "Frequently Asked Questions")`,
		},
		{Name: "subtitle", Type: TypeTextarea, Description: "Optional section description below the heading"},
		{
			Name:        "items",
			Type:        TypeArray,
			Required:    true,
			MinRows:     1,
			MaxRows:     20,
			Description: "Questions and answers for the accordion",
			Fields: []Field{
				{Name: "question", Type: TypeText, Required: true, Description: "The question text"},
				{Name: "answer", Type: TypeTextarea, Required: true, Description: "The answer text (supports line breaks)"},
			},
		},
		{
			Name:         "showBottomCta",
			Type:         TypeCheckbox,
			Label:        "Show bottom CTA section",
			DefaultValue: true,
			Description:  `Display a "Still have questions?" section below the FAQs`,
		},
		{
			Name:      "bottomCta",
			Type:      TypeGroup,
			Condition: siblingEquals("showBottomCta", true),
			Fields: []Field{
				{Name: "heading", Type: TypeText, DefaultValue: "Still have questions?"},
				{Name: "description", Type: TypeTextarea},
				ButtonField(),
			},
		},
		{Name: "centerHeading", Type: TypeCheckbox, Label: "Center section heading", DefaultValue: true},
		{
			Name: "maxWidth",
			Type: TypeSelect,
			Options: []Option{
				{Label: "Small (560px)", Value: "small"},
				{Label: "Medium (768px)", Value: "medium"},
				{Label: "Large (1024px)", Value: "large"},
			},
			DefaultValue: "medium",
			Description:  "Maximum width of the FAQ accordion",
		},
		{Name: "defaultOpenFirst", Type: TypeCheckbox, Label: "Open first item by default", DefaultValue: false},
		{
			Name:         "allowMultipleOpen",
			Type:         TypeCheckbox,
			Label:        "Allow multiple items open at once",
			DefaultValue: false,
			Description:  "If unchecked, opening one item closes others",
		},
	}, SectionFields()),
}

var allBlocks = []Block{
	Hero1,
	CTA1,
	CTA2,
	Feature1,
	Layout1,
	Stats1,
	Team1,
	Section,
	Blog1,
	CategoryGrid1,
	FAQ1,
}

// AllBlocks returns the block catalog in its canonical order
func AllBlocks() []Block {
	result := make([]Block, len(allBlocks))
	copy(result, allBlocks)
	return result
}

// LookupBlock finds a block definition by its type tag
func LookupBlock(slug string) (Block, bool) {
	for _, b := range allBlocks {
		if b.Slug == slug {
			return b, true
		}
	}
	return Block{}, false
}
