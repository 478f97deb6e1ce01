package schema

var sizeOptions = []Option{
	{Label: "Small", Value: "sm"},
	{Label: "Medium", Value: "md"},
	{Label: "Large", Value: "lg"},
}

var paddingOptions = []Option{
	{Label: "Default", Value: ""},
	{Label: "None", Value: "none"},
	{Label: "Small", Value: "sm"},
	{Label: "Medium", Value: "md"},
	{Label: "Large", Value: "lg"},
}

var backgroundOptions = []Option{
	{Label: "Default (White)", Value: "default"},
	{Label: "Muted (Gray)", Value: "muted"},
	{Label: "Primary (Brand)", Value: "primary"},
	{Label: "Dark", Value: "dark"},
}

var variantOptions = []Option{
	{Label: "Primary", Value: "primary"},
	{Label: "Secondary", Value: "secondary"},
	{Label: "Ghost", Value: "ghost"},
}

// SectionFields are the layout fields every block carries.
// Each call returns a fresh slice.
func SectionFields() []Field {
	return []Field{
		{
			Name:         "size",
			Type:         TypeSelect,
			Options:      sizeOptions,
			DefaultValue: "md",
			Description:  "Vertical padding size",
		},
		{
			Name:        "paddingTop",
			Type:        TypeSelect,
			Options:     paddingOptions,
			Description: "Override top padding",
		},
		{
			Name:        "paddingBottom",
			Type:        TypeSelect,
			Options:     paddingOptions,
			Description: "Override bottom padding",
		},
		{
			Name:         "background",
			Type:         TypeSelect,
			Options:      backgroundOptions,
			DefaultValue: "default",
		},
	}
}

// ButtonField is the array of call-to-action buttons, up to three
func ButtonField() Field {
	return Field{
		Name:    "buttons",
		Type:    TypeArray,
		Label:   "Buttons",
		MaxRows: 3,
		Fields: []Field{
			{Name: "label", Type: TypeText, Required: true},
			{Name: "href", Type: TypeText, Required: true},
			{
				Name:         "variant",
				Type:         TypeSelect,
				Options:      variantOptions,
				DefaultValue: "primary",
			},
		},
	}
}

// OverrideDefault returns a copy of fields where the field matching
// both name and type gets a new default value.
// Every other property of that field stays as it is.
// The supplied slice is not modified.
func OverrideDefault(fields []Field, name string, typ FieldType, value any) []Field {
	result := make([]Field, len(fields))
	for i, f := range fields {
		if f.Name == name && f.Type == typ {
			f.DefaultValue = value
		}
		result[i] = f
	}
	return result
}

// withSection appends the section fields to the block specific ones
func withSection(fields []Field, section []Field) []Field {
	result := make([]Field, 0, len(fields)+len(section))
	result = append(result, fields...)
	return append(result, section...)
}
