package schema

import (
	"maps"

	"github.com/vlatan/block-site/internal/slug"
)

// ApplyDefaults returns a copy of data where every missing or null value
// is replaced with the field default value.
// It recurses into groups, array rows and block rows.
func ApplyDefaults(fields []Field, data map[string]any) map[string]any {

	result := make(map[string]any, len(data)+len(fields))
	maps.Copy(result, data)

	for _, f := range fields {
		switch f.Type {
		case TypeGroup:
			group, _ := result[f.Name].(map[string]any)
			result[f.Name] = ApplyDefaults(f.Fields, group)

		case TypeArray:
			if rows, ok := result[f.Name].([]any); ok {
				result[f.Name] = mapRows(rows, func(row map[string]any) map[string]any {
					return ApplyDefaults(f.Fields, row)
				})
			}

		case TypeBlocks:
			if rows, ok := result[f.Name].([]any); ok {
				result[f.Name] = mapRows(rows, ApplyBlockDefaults)
			}

		default:
			if v, ok := result[f.Name]; (!ok || v == nil) && f.DefaultValue != nil {
				result[f.Name] = f.DefaultValue
			}
		}
	}

	return result
}

// ApplyBlockDefaults fills the defaults of a single block row,
// picking the definition by the blockType tag.
// Rows of an unknown type are returned untouched.
func ApplyBlockDefaults(data map[string]any) map[string]any {
	blockType, _ := data["blockType"].(string)
	b, ok := LookupBlock(blockType)
	if !ok {
		return data
	}
	return ApplyDefaults(b.Fields, data)
}

// RunHooks applies the top level field hooks for the given operation
func RunHooks(op slug.Operation, fields []Field, data map[string]any) map[string]any {

	result := make(map[string]any, len(data))
	maps.Copy(result, data)

	for _, f := range fields {
		if f.Hook != nil {
			result[f.Name] = f.Hook(op, result[f.Name], result)
		}
	}

	return result
}

func mapRows(rows []any, fn func(map[string]any) map[string]any) []any {
	result := make([]any, len(rows))
	for i, row := range rows {
		if m, ok := row.(map[string]any); ok {
			result[i] = fn(m)
			continue
		}
		result[i] = row
	}
	return result
}
