package strata

import "fmt"

// MissingValueError reports a required value that no source provided. The path
// starts empty at the failing leaf; each recursive step on the way out prepends
// its own field, index, or key segment via PrependPath.
type MissingValueError struct {
	Path Path
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing value for path `%s`", e.Path)
}

// UnexpectedSecretError reports secret-wrapped data found in a source that does
// not permit secrets. Builders only know the path; the merge engine fills in
// Source with the offending source's identity.
type UnexpectedSecretError struct {
	Path   Path
	Source string
}

func (e *UnexpectedSecretError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("found secret at path `%s`", e.Path)
	}
	return fmt.Sprintf("found secret at path `%s` in source %s, which does not permit secrets", e.Path, e.Source)
}

// ConvertError reports a failed foreign-type conversion declared via
// BuildFieldFrom.
type ConvertError struct {
	Path Path
	Err  error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("failed conversion for path `%s`: %v", e.Path, e.Err)
}

func (e *ConvertError) Unwrap() error { return e.Err }

// SourceError wraps a failure from a Source's own Provide call (I/O error,
// parse error), opaque to the merge engine.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s returned an error: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// PrependPath tags err with the field, index, or key segment of the recursive
// step that is returning it, so the error surfaces with a full dotted path
// from root to failure site. Source errors carry no path and pass through
// unchanged, as does any error outside the engine's taxonomy.
func PrependPath(err error, segment string) error {
	switch e := err.(type) {
	case *MissingValueError:
		return &MissingValueError{Path: e.Path.Prepend(segment)}
	case *UnexpectedSecretError:
		return &UnexpectedSecretError{Path: e.Path.Prepend(segment), Source: e.Source}
	case *ConvertError:
		return &ConvertError{Path: e.Path.Prepend(segment), Err: e.Err}
	default:
		return err
	}
}
