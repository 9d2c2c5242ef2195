package strata

import "context"

// Source provides one partial configuration snapshot on demand. File-backed,
// environment-derived, and inline-text implementations live in the sourcefile,
// sourceenv, and sourceinline subpackages; anything that can populate a
// builder can act as a Source.
type Source interface {
	// AllowsSecrets reports whether this source may carry secret-tagged data.
	// Implementations should be conservative and return false unless the user
	// opted in.
	AllowsSecrets() bool

	// Provide parses the source's data into dst. dst is the neutral builder
	// for the target type; leaving it untouched is a valid empty contribution.
	Provide(ctx context.Context, dst Unmarshaler) error

	// String identifies the source in error messages.
	String() string
}

// defaultSource is the neutral source a Loader with no sources builds from,
// so that declared per-field defaults still apply. It carries no data and
// therefore trivially allows secrets.
type defaultSource struct{}

func (defaultSource) AllowsSecrets() bool { return true }

func (defaultSource) Provide(context.Context, Unmarshaler) error { return nil }

func (defaultSource) String() string { return "default" }
