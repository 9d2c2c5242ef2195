package strata

import (
	"context"
	"fmt"
)

// Loader accumulates ordered sources from which a configuration value is
// built. B is the hand-written builder type for the target T.
//
// Sources are applied in override order: each OverrideWith call takes
// precedence over the ones before it, so the usual layering reads top to
// bottom as defaults file, environment, explicit overrides.
type Loader[B Builder[B, T], T any] struct {
	sources []Source
}

// NewLoader creates a Loader with no sources. Building an empty Loader
// resolves every field from its declared default.
func NewLoader[B Builder[B, T], T any]() *Loader[B, T] {
	return &Loader[B, T]{}
}

// OverrideWith appends a source. Values it provides override every source
// added before it.
func (l *Loader[B, T]) OverrideWith(src Source) *Loader[B, T] {
	l.sources = append(l.sources, src)
	return l
}

// Build resolves the configuration from the accumulated sources. With no
// sources it builds from a neutral default source.
func (l *Loader[B, T]) Build(ctx context.Context) (T, error) {
	if len(l.sources) == 0 {
		return BuildFromSources[B, T](ctx, []Source{defaultSource{}})
	}
	// BuildFromSources gives priority to the earliest source, so reverse the
	// registration order to make the last OverrideWith call win.
	ordered := make([]Source, len(l.sources))
	for i, src := range l.sources {
		ordered[len(l.sources)-1-i] = src
	}
	return BuildFromSources[B, T](ctx, ordered)
}

// BuildFromSources folds the sources' builders into one and converts the
// result into a target value. Earlier sources take priority: the fold always
// passes the accumulator as the higher-priority side of Merge.
//
// Each source that does not allow secrets has its own contribution checked for
// secret-tainted data before any merging, so the check is local to that
// source, not to the merged shape. The first tainted source aborts the build.
//
// Callers must supply at least one source, if only a neutral one; an empty
// collection fails with a bare MissingValueError.
func BuildFromSources[B Builder[B, T], T any](ctx context.Context, sources []Source) (T, error) {
	var zero T
	if len(sources) == 0 {
		return zero, &MissingValueError{}
	}

	var acc B
	for i, src := range sources {
		var b B
		u, ok := any(&b).(Unmarshaler)
		if !ok {
			return zero, &SourceError{
				Source: src.String(),
				Err:    fmt.Errorf("builder %T does not implement strata.Unmarshaler", &b),
			}
		}
		if err := src.Provide(ctx, u); err != nil {
			return zero, &SourceError{Source: src.String(), Err: err}
		}

		if !src.AllowsSecrets() {
			if _, err := b.ContainsNonSecretData(); err != nil {
				if sec, ok := err.(*UnexpectedSecretError); ok {
					return zero, &UnexpectedSecretError{Path: sec.Path, Source: src.String()}
				}
				return zero, err
			}
		}

		if i == 0 {
			acc = b
		} else {
			acc = acc.Merge(b)
		}
	}

	return acc.TryBuild()
}
