package schema

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks the data against the fields.
// Fields hidden by their condition are skipped.
// The result is nil or validation.Errors keyed by the dotted field path.
func Validate(fields []Field, data map[string]any) error {
	errs := validation.Errors{}
	validateFields(errs, "", fields, data, data)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateBlock validates a single block row against its definition
func ValidateBlock(data map[string]any) error {
	blockType, _ := data["blockType"].(string)
	b, ok := LookupBlock(blockType)
	if !ok {
		return validation.Errors{"blockType": fmt.Errorf("unknown block type %q", blockType)}
	}
	return Validate(b.Fields, data)
}

func validateFields(errs validation.Errors, prefix string, fields []Field, doc, siblings map[string]any) {

	for _, f := range fields {

		if !Visible(f, doc, siblings) {
			continue
		}

		key := prefix + f.Name
		value := siblings[f.Name]

		if err := validation.Validate(value, fieldRules(f, siblings)...); err != nil {
			errs[key] = err
			continue
		}

		switch f.Type {
		case TypeGroup:
			group, _ := value.(map[string]any)
			validateFields(errs, key+".", f.Fields, doc, group)

		case TypeArray:
			rows, _ := value.([]any)
			for i, row := range rows {
				m, _ := row.(map[string]any)
				validateFields(errs, fmt.Sprintf("%s.%d.", key, i), f.Fields, doc, m)
			}

		case TypeBlocks:
			rows, _ := value.([]any)
			for i, row := range rows {
				m, _ := row.(map[string]any)
				rowKey := fmt.Sprintf("%s.%d.", key, i)
				blockType, _ := m["blockType"].(string)
				b, ok := lookupIn(f.Blocks, blockType)
				if !ok {
					errs[rowKey+"blockType"] = fmt.Errorf("unknown block type %q", blockType)
					continue
				}
				validateFields(errs, rowKey, b.Fields, doc, m)
			}
		}
	}
}

// fieldRules translates the field definition to validation rules
func fieldRules(f Field, siblings map[string]any) []validation.Rule {

	var rules []validation.Rule
	if f.Required {
		rules = append(rules, validation.Required)
	}

	switch f.Type {
	case TypeText, TypeTextarea, TypeCode, TypeDate:
		rules = append(rules, validation.By(isString))
	case TypeSelect, TypeRadio:
		rules = append(rules, validation.By(isString), validation.In(f.OptionValues()...))
	case TypeCheckbox:
		rules = append(rules, validation.By(isBool))
	case TypeNumber:
		rules = append(rules, validation.By(isNumber))
	case TypeArray, TypeBlocks:
		rules = append(rules, validation.By(isList))
	case TypeGroup:
		rules = append(rules, validation.By(isObject))
	}

	if f.MinRows > 0 || f.MaxRows > 0 {
		rules = append(rules, validation.Length(f.MinRows, f.MaxRows))
	}

	if f.Validate != nil {
		check := f.Validate
		rules = append(rules, validation.By(func(value any) error {
			return check(value, siblings)
		}))
	}

	return rules
}

func lookupIn(blocks []Block, slug string) (Block, bool) {
	for _, b := range blocks {
		if b.Slug == slug {
			return b, true
		}
	}
	return Block{}, false
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	}
	return false
}

func isString(value any) error {
	if _, ok := value.(string); ok || value == nil {
		return nil
	}
	return errors.New("must be a string")
}

func isBool(value any) error {
	if _, ok := value.(bool); ok || value == nil {
		return nil
	}
	return errors.New("must be a boolean")
}

func isNumber(value any) error {
	switch value.(type) {
	case nil, float64, int:
		return nil
	}
	return errors.New("must be a number")
}

func isList(value any) error {
	if _, ok := value.([]any); ok || value == nil {
		return nil
	}
	return errors.New("must be a list")
}

func isObject(value any) error {
	if _, ok := value.(map[string]any); ok || value == nil {
		return nil
	}
	return errors.New("must be an object")
}
