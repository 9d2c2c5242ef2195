package strata

import "strings"

// Path identifies where in a configuration tree an error occurred. Segments
// are collected leaf-first as errors unwind the recursive build, so the slice
// is stored in reverse; String renders the path root-first.
type Path []string

// Prepend records one segment while unwinding. The segment becomes the new
// outermost element of the rendered path.
func (p Path) Prepend(segment string) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, p...)
	return append(out, segment)
}

// String renders the path root-first, joined with dots.
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i := len(p) - 1; i >= 0; i-- {
		if i != len(p)-1 {
			b.WriteByte('.')
		}
		b.WriteString(p[i])
	}
	return b.String()
}
