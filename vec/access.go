// SPDX-License-Identifier: MIT
// Package: lvtools/vec
//
// access.go - bounds-checked element access.

package vec

// At returns the element at index i.
// Returns ErrIndexOutOfRange unless 0 ≤ i < Size().
//
// Complexity: O(1).
func (v *Vec[T]) At(i int) (T, error) {
	if i < 0 || i >= v.Size() {
		var zero T
		return zero, indexErr("At", i, v.Size())
	}

	return v.data[i], nil
}

// Index is the subscript form of At: same bounds check, same result.
func (v *Vec[T]) Index(i int) (T, error) {
	if i < 0 || i >= v.Size() {
		var zero T
		return zero, indexErr("Index", i, v.Size())
	}

	return v.data[i], nil
}

// Ref returns a pointer to the element at index i for in-place mutation.
// The pointer is a view: it stops tracking the vector after any
// reallocation, insert or removal at or before i.
// Returns ErrIndexOutOfRange unless 0 ≤ i < Size().
func (v *Vec[T]) Ref(i int) (*T, error) {
	if i < 0 || i >= v.Size() {
		return nil, indexErr("Ref", i, v.Size())
	}

	return &v.data[i], nil
}

// Set overwrites the element at index i with val.
// Returns ErrIndexOutOfRange unless 0 ≤ i < Size().
func (v *Vec[T]) Set(i int, val T) error {
	if i < 0 || i >= v.Size() {
		return indexErr("Set", i, v.Size())
	}
	v.data[i] = val

	return nil
}

// PeekFront returns the first element.
// Returns ErrNoSuchElement on an empty vector.
func (v *Vec[T]) PeekFront() (T, error) {
	if v.Size() == 0 {
		var zero T
		return zero, emptyErr("PeekFront")
	}

	return v.data[0], nil
}

// PeekBack returns the last element.
// Returns ErrNoSuchElement on an empty vector.
func (v *Vec[T]) PeekBack() (T, error) {
	if v.Size() == 0 {
		var zero T
		return zero, emptyErr("PeekBack")
	}

	return v.data[v.Size()-1], nil
}

// FrontRef is the mutable form of PeekFront.
func (v *Vec[T]) FrontRef() (*T, error) {
	if v.Size() == 0 {
		return nil, emptyErr("FrontRef")
	}

	return &v.data[0], nil
}

// BackRef is the mutable form of PeekBack.
func (v *Vec[T]) BackRef() (*T, error) {
	if v.Size() == 0 {
		return nil, emptyErr("BackRef")
	}

	return &v.data[v.Size()-1], nil
}

// Data returns the live elements as a slice sharing v's storage.
// Writes through it are visible to v; the slice is a view and is
// invalidated by the same events as any other view. A nil v yields nil.
func (v *Vec[T]) Data() []T {
	if v == nil {
		return nil
	}

	return v.data
}

// ToSlice returns a copy of the elements.
func (v *Vec[T]) ToSlice() []T {
	if v == nil || len(v.data) == 0 {
		return nil
	}
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}
