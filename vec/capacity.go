// SPDX-License-Identifier: MIT
// Package: lvtools/vec
//
// capacity.go - size and capacity control.

package vec

import (
	"math"
	"unsafe"
)

// Size returns the number of live elements.
func (v *Vec[T]) Size() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// Len is Size under the name expected by sizer interfaces.
func (v *Vec[T]) Len() int { return v.Size() }

// Cap returns the number of elements the current allocation can hold.
func (v *Vec[T]) Cap() int {
	if v == nil {
		return 0
	}

	return cap(v.data)
}

// IsEmpty reports whether the vector holds no element.
func (v *Vec[T]) IsEmpty() bool { return v.Size() == 0 }

// MaxSize returns the largest size the vector could theoretically reach.
func (v *Vec[T]) MaxSize() int {
	var zero T
	sz := int(unsafe.Sizeof(zero))
	if sz == 0 {
		return math.MaxInt
	}

	return math.MaxInt / sz
}

// Resize grows or truncates the vector to exactly n elements. New elements
// are zero values.
// Returns ErrIndexOutOfRange for negative n.
func (v *Vec[T]) Resize(n int) error {
	var zero T
	return v.resize("Resize", n, zero)
}

// ResizeWith grows or truncates the vector to exactly n elements. New
// elements are copies of val.
// Returns ErrIndexOutOfRange for negative n.
func (v *Vec[T]) ResizeWith(n int, val T) error {
	return v.resize("ResizeWith", n, val)
}

func (v *Vec[T]) resize(op string, n int, val T) error {
	if n < 0 {
		return indexErr(op, n, len(v.data))
	}
	old := len(v.data)
	switch {
	case n < old:
		clear(v.data[n:])
		v.data = v.data[:n]
		v.views.invalidateFrom(n)
	case n > old:
		v.grow(n)
		v.data = v.data[:n]
		for i := old; i < n; i++ {
			v.data[i] = val
		}
	}

	return nil
}

// RequestCap ensures Cap() ≥ n without changing the size. It allocates
// exactly n slots when it has to grow; otherwise it is a no-op.
func (v *Vec[T]) RequestCap(n int) {
	if n <= cap(v.data) {
		return
	}
	v.realloc(n)
}

// Shrink releases unused capacity so that Cap() == Size(). It never grows
// the allocation. A vector that is already tight is left untouched.
func (v *Vec[T]) Shrink() {
	if cap(v.data) == len(v.data) {
		return
	}
	if len(v.data) == 0 {
		v.data = nil
		v.views.invalidateAll()
		return
	}
	v.realloc(len(v.data))
}

// Swap exchanges the contents of v and other in O(1) without copying
// elements. Sizes may differ. Views of either vector are invalidated.
func (v *Vec[T]) Swap(other *Vec[T]) {
	if other == nil || other == v {
		return
	}
	v.data, other.data = other.data, v.data
	v.views.invalidateAll()
	other.views.invalidateAll()
}
