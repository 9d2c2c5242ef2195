package strata

// optState enumerates the three states of an Optional builder.
type optState uint8

const (
	optUnspecified optState = iota
	optNone
	optSome
)

// Optional is the builder for values that distinguish "nothing said yet" from
// an explicit null from an explicit value. It builds to a pointer, nil meaning
// absent: the field defaults to absent without any source mentioning it, while
// an explicit null in a high-priority source keeps a lower-priority value from
// leaking through.
type Optional[B Builder[B, T], T any] struct {
	state optState
	some  B
}

// ExplicitNone returns an Optional builder carrying an explicit null.
func ExplicitNone[B Builder[B, T], T any]() Optional[B, T] {
	return Optional[B, T]{state: optNone}
}

// ExplicitSome returns an Optional builder carrying inner.
func ExplicitSome[B Builder[B, T], T any](inner B) Optional[B, T] {
	return Optional[B, T]{state: optSome, some: inner}
}

// Merge yields entirely when unspecified, merges inner builders when both
// sides are explicit values, and otherwise keeps the receiver's explicit state
// outright, whatever the other side holds.
func (b Optional[B, T]) Merge(other Optional[B, T]) Optional[B, T] {
	switch {
	case b.state == optUnspecified:
		return other
	case b.state == optSome && other.state == optSome:
		return Optional[B, T]{state: optSome, some: b.some.Merge(other.some)}
	default:
		return b
	}
}

func (b Optional[B, T]) TryBuild() (*T, error) {
	if b.state != optSome {
		return nil, nil
	}
	v, err := b.some.TryBuild()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (b Optional[B, T]) ContainsNonSecretData() (bool, error) {
	switch b.state {
	case optSome:
		return b.some.ContainsNonSecretData()
	case optNone:
		// An explicit null is data: it overrides a declared default.
		return true, nil
	default:
		return false, nil
	}
}

func (b *Optional[B, T]) UnmarshalValue(v any) error {
	if v == nil {
		*b = Optional[B, T]{state: optNone}
		return nil
	}
	var inner B
	if err := decodeInto(&inner, v); err != nil {
		return err
	}
	*b = Optional[B, T]{state: optSome, some: inner}
	return nil
}
