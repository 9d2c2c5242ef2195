package strata

// Secret marks a subtree as secret-tainted. It is transparent for merging and
// building, delegating both to the inner builder; only the secret-taint walk
// treats it specially. Wrap the field's builder type: a field declared as
// Secret[Value[string], string] can then only be populated from a Source whose
// AllowsSecrets reports true.
type Secret[B Builder[B, T], T any] struct {
	inner B
}

// NewSecret wraps an inner builder.
func NewSecret[B Builder[B, T], T any](inner B) Secret[B, T] {
	return Secret[B, T]{inner: inner}
}

func (b Secret[B, T]) Merge(other Secret[B, T]) Secret[B, T] {
	return Secret[B, T]{inner: b.inner.Merge(other.inner)}
}

func (b Secret[B, T]) TryBuild() (T, error) {
	return b.inner.TryBuild()
}

// ContainsNonSecretData never reports data: everything beneath this node is
// secret. An inner error also counts as data being present, so a secret nested
// inside another secret still trips this check; the path restarts here so the
// report names the outermost secret node.
func (b Secret[B, T]) ContainsNonSecretData() (bool, error) {
	present, err := b.inner.ContainsNonSecretData()
	if present || err != nil {
		return false, &UnexpectedSecretError{}
	}
	return false, nil
}

func (b *Secret[B, T]) UnmarshalValue(v any) error {
	return decodeInto(&b.inner, v)
}
