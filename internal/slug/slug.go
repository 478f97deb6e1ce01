package slug

import (
	"regexp"
	"strings"
)

// Operation is the kind of write a slug hook runs for
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
)

// The whitespace of ECMAScript regexps, wider than RE2's \s:
// vertical tab, no-break spaces, the Zs separators and the BOM
const space = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

var (
	invalidChars   = regexp.MustCompile(`[^\w` + space + `-]`)
	whitespaceRuns = regexp.MustCompile(`[` + space + `]+`)
	hyphenRuns     = regexp.MustCompile(`-+`)
	spaceChar      = regexp.MustCompile(`^[` + space + `]$`)
)

func isSpace(r rune) bool {
	return spaceChar.MatchString(string(r))
}

// Format converts a string to a URL-friendly slug.
// Format("Hello World!") == "hello-world"
func Format(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimFunc(s, isSpace)
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Generate derives the slug value from another field of the document.
// Only on create, or when the slug is empty.
// An explicit slug is never overwritten on update.
func Generate(op Operation, value string, data map[string]any, fieldToUse string) string {

	if op != OperationCreate && value != "" {
		return value
	}

	source, ok := data[fieldToUse].(string)
	if !ok || source == "" {
		return value
	}

	return Format(source)
}
