// SPDX-License-Identifier: MIT
// Package: lvtools/vec
//
// modify.go - push, pop, insert and remove.

package vec

import (
	"github.com/katalvlaran/lvtools/iterator"
	"golang.org/x/exp/slices"
)

// PushBack appends a copy of val. Amortized O(1).
// Views stay valid unless the append reallocates.
func (v *Vec[T]) PushBack(val T) {
	v.grow(len(v.data) + 1)
	v.data = append(v.data, val)
}

// Append pushes vs in order, reallocating at most once.
func (v *Vec[T]) Append(vs ...T) {
	if len(vs) == 0 {
		return
	}
	v.grow(len(v.data) + len(vs))
	v.data = append(v.data, vs...)
}

// PopBack removes and returns the last element.
// On an empty vector it returns the zero value and false; it never fails.
func (v *Vec[T]) PopBack() (T, bool) {
	var zero T
	n := len(v.data)
	if n == 0 {
		return zero, false
	}
	last := v.data[n-1]
	v.data[n-1] = zero
	v.data = v.data[:n-1]
	v.views.invalidateFrom(n - 1)

	return last, true
}

// EmplaceBack appends a zero element and lets init construct it in place.
// A nil init leaves the zero value.
func (v *Vec[T]) EmplaceBack(init func(*T)) {
	v.grow(len(v.data) + 1)
	var zero T
	v.data = append(v.data, zero)
	if init != nil {
		init(&v.data[len(v.data)-1])
	}
}

// Emplace inserts a zero element at position at and lets init construct it
// in place. Returns at.
// Returns ErrIndexOutOfRange unless 0 ≤ at ≤ Size().
func (v *Vec[T]) Emplace(at int, init func(*T)) (int, error) {
	if at < 0 || at > len(v.data) {
		return 0, indexErr("Emplace", at, len(v.data))
	}
	var zero T
	v.insert(at, zero)
	if init != nil {
		init(&v.data[at])
	}

	return at, nil
}

// Insert inserts a copy of val at position at, shifting later elements.
// Returns the position of the inserted element.
// Returns ErrIndexOutOfRange unless 0 ≤ at ≤ Size().
func (v *Vec[T]) Insert(at int, val T) (int, error) {
	if at < 0 || at > len(v.data) {
		return 0, indexErr("Insert", at, len(v.data))
	}
	v.insert(at, val)

	return at, nil
}

// Fill inserts n copies of val at position at.
// Returns at. n == 0 leaves v untouched.
// Returns ErrIndexOutOfRange unless 0 ≤ at ≤ Size() and n ≥ 0.
func (v *Vec[T]) Fill(at, n int, val T) (int, error) {
	if at < 0 || at > len(v.data) {
		return 0, indexErr("Fill", at, len(v.data))
	}
	if n < 0 {
		return 0, indexErr("Fill", n, len(v.data))
	}
	if n == 0 {
		return at, nil
	}
	vals := make([]T, n)
	for i := range vals {
		vals[i] = val
	}
	v.insert(at, vals...)

	return at, nil
}

// InsertSlice inserts a copy of vals at position at, keeping their order.
// vals may alias v. Returns at.
// Returns ErrIndexOutOfRange unless 0 ≤ at ≤ Size().
func (v *Vec[T]) InsertSlice(at int, vals []T) (int, error) {
	if at < 0 || at > len(v.data) {
		return 0, indexErr("InsertSlice", at, len(v.data))
	}
	v.insert(at, vals...)

	return at, nil
}

// InsertRange inserts the values of src at position at, keeping their
// order. The position is checked before src is read; src is then drained
// exactly once, so it may be a cursor over v itself. Returns at.
// Returns ErrIndexOutOfRange unless 0 ≤ at ≤ Size().
func (v *Vec[T]) InsertRange(at int, src iterator.Source[T]) (int, error) {
	if at < 0 || at > len(v.data) {
		return 0, indexErr("InsertRange", at, len(v.data))
	}
	v.insert(at, iterator.Drain(src)...)

	return at, nil
}

// insert places vals at a validated position.
func (v *Vec[T]) insert(at int, vals ...T) {
	if len(vals) == 0 {
		return
	}
	v.grow(len(v.data) + len(vals))
	v.data = slices.Insert(v.data, at, vals...)
	v.views.invalidateFrom(at)
}

// Remove erases the element at position at and returns the position of the
// element that followed it.
// Returns ErrIndexOutOfRange unless 0 ≤ at < Size().
func (v *Vec[T]) Remove(at int) (int, error) {
	if at < 0 || at >= len(v.data) {
		return 0, indexErr("Remove", at, len(v.data))
	}
	v.data = slices.Delete(v.data, at, at+1)
	v.views.invalidateFrom(at)

	return at, nil
}

// RemoveRange erases the half-open span [begin, end) and returns the
// position following it (begin). An empty span leaves v untouched.
// Returns ErrIndexOutOfRange unless 0 ≤ begin ≤ end ≤ Size().
func (v *Vec[T]) RemoveRange(begin, end int) (int, error) {
	if begin < 0 || begin > len(v.data) {
		return 0, indexErr("RemoveRange", begin, len(v.data))
	}
	if end < begin || end > len(v.data) {
		return 0, indexErr("RemoveRange", end, len(v.data))
	}
	if begin == end {
		return begin, nil
	}
	v.data = slices.Delete(v.data, begin, end)
	v.views.invalidateFrom(begin)

	return begin, nil
}

// Clear removes every element. The capacity is kept.
func (v *Vec[T]) Clear() {
	if len(v.data) == 0 {
		return
	}
	clear(v.data)
	v.data = v.data[:0]
	v.views.invalidateFrom(0)
}
