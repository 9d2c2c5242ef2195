package strata

import "fmt"

// Builder is the contract every accumulating configuration value satisfies.
// The zero value of a builder type is its neutral "no data yet" state, so a
// nested builder being entirely absent from every source is never an error by
// itself.
//
// Value, Optional, Slice, Set, Map, Array, and Secret cover leaves and
// containers; struct and variant builders are written per target type with the
// helpers in fields.go.
type Builder[B, T any] interface {
	// Merge combines two builders recursively, preferring data already present
	// on the receiver. The receiver is the higher-priority side; Merge is
	// total and never fails.
	Merge(other B) B

	// TryBuild converts the accumulated data into the target value, or fails
	// with a path-tagged error.
	TryBuild() (T, error)

	// ContainsNonSecretData reports whether any concrete data is present that
	// is not beneath a Secret wrapper. If secret-wrapped data is present it
	// fails with a *UnexpectedSecretError instead of reporting true.
	ContainsNonSecretData() (bool, error)
}

// Unmarshaler accepts one source's raw parsed data (the output of a
// TOML/JSON/YAML parse or an environment tree). It is implemented by pointers
// to builder types; a key absent from the source never reaches it, leaving the
// builder in its neutral state.
type Unmarshaler interface {
	UnmarshalValue(v any) error
}

// decodeInto decodes a raw value into a builder through its pointer's
// Unmarshaler implementation.
func decodeInto[B any](b *B, v any) error {
	u, ok := any(b).(Unmarshaler)
	if !ok {
		return fmt.Errorf("builder %T does not implement strata.Unmarshaler", b)
	}
	return u.UnmarshalValue(v)
}
