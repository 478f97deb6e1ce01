package schema

import "github.com/vlatan/block-site/internal/slug"

type FieldType string

const (
	TypeText         FieldType = "text"
	TypeTextarea     FieldType = "textarea"
	TypeSelect       FieldType = "select"
	TypeRadio        FieldType = "radio"
	TypeCheckbox     FieldType = "checkbox"
	TypeNumber       FieldType = "number"
	TypeDate         FieldType = "date"
	TypeArray        FieldType = "array"
	TypeGroup        FieldType = "group"
	TypeRelationship FieldType = "relationship"
	TypeUpload       FieldType = "upload"
	TypeRichText     FieldType = "richText"
	TypeCode         FieldType = "code"
	TypeBlocks       FieldType = "blocks"
)

type Option struct {
	Label string
	Value string
}

// Condition decides whether a field is shown, given the whole document
// and the data of the field's siblings
type Condition func(data, siblings map[string]any) bool

// Hook may replace a field value before validation
type Hook func(op slug.Operation, value any, data map[string]any) any

// Check is a custom validation receiving the sibling data
type Check func(value any, siblings map[string]any) error

type Field struct {
	Name         string
	Type         FieldType
	Label        string
	Required     bool
	Unique       bool
	HasMany      bool
	RelationTo   string
	Options      []Option
	DefaultValue any
	MinRows      int
	MaxRows      int
	Fields       []Field
	Blocks       []Block
	Description  string
	Condition    Condition
	Validate     Check
	Hook         Hook
}

type Block struct {
	Slug     string
	Singular string
	Plural   string
	Fields   []Field
}

// Visible reports whether the field applies to the supplied data.
// Fields with no condition are always visible.
func Visible(f Field, data, siblings map[string]any) bool {
	if f.Condition == nil {
		return true
	}
	return f.Condition(data, siblings)
}

// OptionValues returns the raw values of the field options
func (f Field) OptionValues() []any {
	values := make([]any, len(f.Options))
	for i, o := range f.Options {
		values[i] = o.Value
	}
	return values
}

// Lookup finds a field by name among the supplied fields
func Lookup(fields []Field, name string) (Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// siblingEquals builds a condition on a sibling select/checkbox value
func siblingEquals(name string, want any) Condition {
	return func(_, siblings map[string]any) bool {
		if siblings == nil {
			return false
		}
		return siblings[name] == want
	}
}
