package strata

import (
	"fmt"
	"reflect"

	"github.com/strataconf/strata/internal/normalize"
)

// The helpers in this file carry hand-written struct and variant builders:
// since no code generator is involved, each target type pairs with a builder
// type whose Merge/TryBuild/ContainsNonSecretData are written field by field
// on top of these.

// BuildField builds one field of a struct builder into dst, tagging any
// failure with the field's key.
func BuildField[B Builder[B, T], T any](name string, b B, dst *T) error {
	v, err := b.TryBuild()
	if err != nil {
		return PrependPath(err, name)
	}
	*dst = v
	return nil
}

// BuildFieldDefault is BuildField with a declared default: when the field's
// subtree holds no non-secret data after all merging, def is used instead of
// building the subtree. A taint error from the subtree counts as data being
// present, so a misconfigured secret is never papered over by a default.
func BuildFieldDefault[B Builder[B, T], T any](name string, b B, dst *T, def T) error {
	if present, err := b.ContainsNonSecretData(); err == nil && !present {
		*dst = def
		return nil
	}
	return BuildField(name, b, dst)
}

// BuildFieldFrom builds a field through an intermediate type and a fallible
// conversion. A conversion failure is reported as a ConvertError at the
// field's path.
func BuildFieldFrom[B Builder[B, I], I, T any](name string, b B, dst *T, convert func(I) (T, error)) error {
	v, err := b.TryBuild()
	if err != nil {
		return PrependPath(err, name)
	}
	out, err := convert(v)
	if err != nil {
		return &ConvertError{Path: Path{name}, Err: err}
	}
	*dst = out
	return nil
}

// FieldData names one field of a struct builder for the secret-taint walk.
type FieldData struct {
	Name  string
	Value interface {
		ContainsNonSecretData() (bool, error)
	}
}

// FieldsContainData folds ContainsNonSecretData over a struct builder's
// fields, tagging the first secret found with its field name. Fields after a
// secret are not visited; fields after plain data are, so "no data anywhere"
// is answered exactly.
func FieldsContainData(fields ...FieldData) (bool, error) {
	found := false
	for _, f := range fields {
		present, err := f.Value.ContainsNonSecretData()
		if err != nil {
			return false, PrependPath(err, f.Name)
		}
		found = found || present
	}
	return found, nil
}

// UnmarshalStruct decodes a raw source tree into a hand-written struct
// builder. Keys are matched against the snake_case form of each exported
// field's name, or the name given in a `conf:"..."` tag; `conf:"-"` skips a
// field. Keys in the tree that match no field are ignored, mirroring how
// partial sources work everywhere else.
func UnmarshalStruct(v any, dst any) error {
	tree, ok := asTree(v)
	if !ok {
		return fmt.Errorf("expected a table, got %T", v)
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("destination %T is not a pointer to a struct builder", dst)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		key := normalize.FieldKey(field.Name)
		if tag, ok := field.Tag.Lookup("conf"); ok {
			if tag == "-" {
				continue
			}
			key = tag
		}

		raw, present := tree[key]
		if !present {
			continue
		}

		u, ok := rv.Field(i).Addr().Interface().(Unmarshaler)
		if !ok {
			return fmt.Errorf("field %s (%s) does not implement strata.Unmarshaler", field.Name, field.Type)
		}
		if err := u.UnmarshalValue(raw); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	return nil
}
