package strata

import (
	"fmt"
	"reflect"
	"strconv"
)

// Slice is the builder for sequence targets. A sequence is replaced as a whole
// by a higher-priority source: there is no element-wise splicing across
// sources. An explicitly empty sequence still counts as data.
type Slice[B Builder[B, T], T any] struct {
	elems []B
	set   bool
}

// NewSlice returns a builder already carrying elems.
func NewSlice[B Builder[B, T], T any](elems ...B) Slice[B, T] {
	return Slice[B, T]{elems: elems, set: true}
}

func (b Slice[B, T]) Merge(other Slice[B, T]) Slice[B, T] {
	if b.set {
		return b
	}
	return other
}

func (b Slice[B, T]) TryBuild() ([]T, error) {
	if !b.set {
		return nil, &MissingValueError{}
	}
	out := make([]T, 0, len(b.elems))
	for i, elem := range b.elems {
		v, err := elem.TryBuild()
		if err != nil {
			return nil, PrependPath(err, strconv.Itoa(i))
		}
		out = append(out, v)
	}
	return out, nil
}

func (b Slice[B, T]) ContainsNonSecretData() (bool, error) {
	if !b.set {
		return false, nil
	}
	for i, elem := range b.elems {
		if _, err := elem.ContainsNonSecretData(); err != nil {
			return false, PrependPath(err, strconv.Itoa(i))
		}
	}
	// Reaching here means data was provided, even if the sequence is empty.
	return true, nil
}

func (b *Slice[B, T]) UnmarshalValue(v any) error {
	elems, err := decodeElems[B](v)
	if err != nil {
		return err
	}
	*b = Slice[B, T]{elems: elems, set: true}
	return nil
}

// Set is the builder for set-like targets, building a membership map. Merge
// semantics match Slice: a higher-priority source replaces the whole set.
type Set[B Builder[B, T], T comparable] struct {
	elems []B
	set   bool
}

// NewSet returns a builder already carrying elems.
func NewSet[B Builder[B, T], T comparable](elems ...B) Set[B, T] {
	return Set[B, T]{elems: elems, set: true}
}

func (b Set[B, T]) Merge(other Set[B, T]) Set[B, T] {
	if b.set {
		return b
	}
	return other
}

func (b Set[B, T]) TryBuild() (map[T]struct{}, error) {
	if !b.set {
		return nil, &MissingValueError{}
	}
	out := make(map[T]struct{}, len(b.elems))
	for i, elem := range b.elems {
		v, err := elem.TryBuild()
		if err != nil {
			return nil, PrependPath(err, strconv.Itoa(i))
		}
		out[v] = struct{}{}
	}
	return out, nil
}

func (b Set[B, T]) ContainsNonSecretData() (bool, error) {
	if !b.set {
		return false, nil
	}
	for i, elem := range b.elems {
		if _, err := elem.ContainsNonSecretData(); err != nil {
			return false, PrependPath(err, strconv.Itoa(i))
		}
	}
	return true, nil
}

func (b *Set[B, T]) UnmarshalValue(v any) error {
	elems, err := decodeElems[B](v)
	if err != nil {
		return err
	}
	*b = Set[B, T]{elems: elems, set: true}
	return nil
}

// Map is the builder for keyed containers. Merging is a key-wise union: a key
// present on both sides has its value builders merged recursively, a key
// present on only one side is carried over unchanged.
type Map[K comparable, B Builder[B, V], V any] struct {
	entries map[K]B
	set     bool
}

// NewMap returns a builder already carrying entries.
func NewMap[K comparable, B Builder[B, V], V any](entries map[K]B) Map[K, B, V] {
	return Map[K, B, V]{entries: entries, set: true}
}

func (b Map[K, B, V]) Merge(other Map[K, B, V]) Map[K, B, V] {
	if !b.set {
		return other
	}
	if !other.set {
		return b
	}
	merged := make(map[K]B, len(b.entries)+len(other.entries))
	for k, v := range b.entries {
		merged[k] = v
	}
	for k, theirs := range other.entries {
		if ours, ok := merged[k]; ok {
			merged[k] = ours.Merge(theirs)
		} else {
			merged[k] = theirs
		}
	}
	return Map[K, B, V]{entries: merged, set: true}
}

func (b Map[K, B, V]) TryBuild() (map[K]V, error) {
	if !b.set {
		return nil, &MissingValueError{}
	}
	out := make(map[K]V, len(b.entries))
	for k, elem := range b.entries {
		v, err := elem.TryBuild()
		if err != nil {
			return nil, PrependPath(err, fmt.Sprint(k))
		}
		out[k] = v
	}
	return out, nil
}

func (b Map[K, B, V]) ContainsNonSecretData() (bool, error) {
	if !b.set {
		return false, nil
	}
	for k, elem := range b.entries {
		if _, err := elem.ContainsNonSecretData(); err != nil {
			return false, PrependPath(err, fmt.Sprint(k))
		}
	}
	return true, nil
}

func (b *Map[K, B, V]) UnmarshalValue(v any) error {
	tree, ok := asTree(v)
	if !ok {
		return fmt.Errorf("expected a table, got %T", v)
	}
	entries := make(map[K]B, len(tree))
	for rawKey, rawVal := range tree {
		var key K
		if err := decodeScalar(rawKey, &key); err != nil {
			return fmt.Errorf("key %q: %w", rawKey, err)
		}
		var elem B
		if err := decodeInto(&elem, rawVal); err != nil {
			return fmt.Errorf("key %q: %w", rawKey, err)
		}
		entries[key] = elem
	}
	*b = Map[K, B, V]{entries: entries, set: true}
	return nil
}

// Array is the builder for fixed-size array targets. A is the target array
// type (for example [4]string); its length fixes the slot count, so merge is
// always index-aligned and builders of mismatched length cannot exist.
type Array[A any, B Builder[B, T], T any] struct {
	slots []B
}

// NewArray returns a builder carrying the given slots. Slots beyond the
// target's length are ignored; missing slots stay neutral.
func NewArray[A any, B Builder[B, T], T any](slots ...B) Array[A, B, T] {
	return Array[A, B, T]{slots: slots}
}

func arrayLen[A any]() int {
	t := reflect.TypeOf((*A)(nil)).Elem()
	if t.Kind() != reflect.Array {
		panic(fmt.Sprintf("strata: Array target %s is not a fixed-size array", t))
	}
	return t.Len()
}

// slot returns the builder at index i, or a neutral builder past the end.
func (b Array[A, B, T]) slot(i int) B {
	if i < len(b.slots) {
		return b.slots[i]
	}
	var zero B
	return zero
}

func (b Array[A, B, T]) Merge(other Array[A, B, T]) Array[A, B, T] {
	n := arrayLen[A]()
	slots := make([]B, n)
	for i := range slots {
		slots[i] = b.slot(i).Merge(other.slot(i))
	}
	return Array[A, B, T]{slots: slots}
}

func (b Array[A, B, T]) TryBuild() (A, error) {
	var out A
	n := arrayLen[A]()
	rv := reflect.ValueOf(&out).Elem()
	for i := 0; i < n; i++ {
		v, err := b.slot(i).TryBuild()
		if err != nil {
			return out, PrependPath(err, strconv.Itoa(i))
		}
		rv.Index(i).Set(reflect.ValueOf(v))
	}
	return out, nil
}

func (b Array[A, B, T]) ContainsNonSecretData() (bool, error) {
	found := false
	for i, slot := range b.slots {
		present, err := slot.ContainsNonSecretData()
		if err != nil {
			return false, PrependPath(err, strconv.Itoa(i))
		}
		found = found || present
	}
	return found, nil
}

func (b *Array[A, B, T]) UnmarshalValue(v any) error {
	list, ok := asList(v)
	if !ok {
		return fmt.Errorf("expected a sequence, got %T", v)
	}
	n := arrayLen[A]()
	if len(list) != n {
		return fmt.Errorf("expected %d elements, got %d", n, len(list))
	}
	slots := make([]B, n)
	for i, raw := range list {
		if err := decodeInto(&slots[i], raw); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	*b = Array[A, B, T]{slots: slots}
	return nil
}

// decodeElems decodes a raw sequence into element builders.
func decodeElems[B any](v any) ([]B, error) {
	list, ok := asList(v)
	if !ok {
		return nil, fmt.Errorf("expected a sequence, got %T", v)
	}
	elems := make([]B, len(list))
	for i, raw := range list {
		if err := decodeInto(&elems[i], raw); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	return elems, nil
}
