package strata

// Value is the builder for a plain required scalar: either no source has
// mentioned it yet, or exactly one value is carried. Present data is kept over
// anything a lower-priority source provides.
type Value[T any] struct {
	val T
	set bool
}

// NewValue returns a builder already carrying v. Useful for pre-populated
// builders in tests and hand-written variant builders.
func NewValue[T any](v T) Value[T] {
	return Value[T]{val: v, set: true}
}

// Merge keeps the receiver's value when present, otherwise takes the other's.
func (b Value[T]) Merge(other Value[T]) Value[T] {
	if b.set {
		return b
	}
	return other
}

// TryBuild returns the accumulated value, or a MissingValueError with an empty
// path; the enclosing builder prepends its own field segment.
func (b Value[T]) TryBuild() (T, error) {
	if !b.set {
		var zero T
		return zero, &MissingValueError{}
	}
	return b.val, nil
}

func (b Value[T]) ContainsNonSecretData() (bool, error) {
	return b.set, nil
}

// UnmarshalValue coerces a raw source value into T. A raw nil (an explicit
// null where no Optional wraps the field) is treated as no data.
func (b *Value[T]) UnmarshalValue(v any) error {
	if v == nil {
		return nil
	}
	var val T
	if err := decodeScalar(v, &val); err != nil {
		return err
	}
	*b = Value[T]{val: val, set: true}
	return nil
}
