// Package normalize derives configuration keys from Go identifiers and
// environment variable names.
package normalize

import (
	"strings"
	"unicode"
)

// FieldKey derives the source-tree key for a struct builder field: the
// snake_case form of the Go field name. Initialisms stay together.
// Examples:
//   - "Host" → "host"
//   - "MaxRetries" → "max_retries"
//   - "APIKey" → "api_key"
func FieldKey(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 2)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SplitEnvPath splits a prefix-stripped environment variable name into nested
// key segments. Double underscores separate levels, single underscores are
// kept within a segment, and segments are lowercased.
// Examples:
//   - "DATABASE__HOST" → ["database", "host"]
//   - "DB__MAX_CONNECTIONS" → ["db", "max_connections"]
func SplitEnvPath(name string) []string {
	parts := strings.Split(name, "__")
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		segs = append(segs, strings.ToLower(p))
	}
	return segs
}
