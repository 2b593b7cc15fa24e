// SPDX-License-Identifier: MIT
// Package: lvtools/vec
//
// construct.go - constructors, copies and reassignment.

package vec

import (
	"github.com/katalvlaran/lvtools/iterator"
	"golang.org/x/exp/slices"
)

// New returns an empty vector configured by opts.
func New[T any](opts ...Option) *Vec[T] {
	cfg := newConfig(opts)
	v := &Vec[T]{growth: cfg.growth}
	if cfg.capacity > 0 {
		v.data = make([]T, 0, cfg.capacity)
	}

	return v
}

// From returns a vector holding a copy of values, in order.
func From[T any](values ...T) *Vec[T] {
	return FromSlice(values)
}

// FromSlice returns a vector holding a copy of values, in order.
// The capacity is exactly len(values) unless WithCapacity asks for more.
func FromSlice[T any](values []T, opts ...Option) *Vec[T] {
	v := New[T](opts...)
	if len(values) > cap(v.data) {
		v.data = make([]T, 0, len(values))
	}
	v.data = append(v.data, values...)

	return v
}

// FromVec returns a deep copy of other. A nil other yields an empty vector.
func FromVec[T any](other *Vec[T], opts ...Option) *Vec[T] {
	if other == nil {
		return New[T](opts...)
	}
	v := FromSlice(other.data, opts...)
	if len(opts) == 0 {
		v.growth = other.growth
	}

	return v
}

// FromRange returns a vector with one element per value of src, in order.
// src is traversed exactly once; single-pass sources are never rewound.
// A nil source yields an empty vector.
//
// Complexity: O(k) for k values, one allocation when src reports its size.
func FromRange[T any](src iterator.Source[T], opts ...Option) *Vec[T] {
	v := New[T](opts...)
	if src == nil {
		return v
	}
	if n, ok := iterator.Remaining(src); ok {
		v.RequestCap(n)
	}
	for src.Next() {
		v.PushBack(src.Value())
	}

	return v
}

// Of returns a vector of n copies of value. n ≤ 0 yields an empty vector.
func Of[T any](n int, value T, opts ...Option) *Vec[T] {
	v := New[T](opts...)
	if n <= 0 {
		return v
	}
	if n > cap(v.data) {
		v.data = make([]T, 0, n)
	}
	v.data = v.data[:n]
	for i := range v.data {
		v.data[i] = value
	}

	return v
}

// OfZero returns a vector of n zero values of T.
func OfZero[T any](n int, opts ...Option) *Vec[T] {
	var zero T
	return Of(n, zero, opts...)
}

// Clone returns a deep copy of v with the same growth policy.
func (v *Vec[T]) Clone() *Vec[T] {
	return FromVec(v)
}

// Assign replaces the contents of v with a copy of other's elements.
func (v *Vec[T]) Assign(other *Vec[T]) {
	if other == v {
		return
	}
	if other == nil {
		v.Clear()
		return
	}
	v.AssignSlice(other.data)
}

// AssignSlice replaces the contents of v with a copy of values. The current
// allocation is reused when it is large enough. values may alias v.
func (v *Vec[T]) AssignSlice(values []T) {
	old := len(v.data)
	if len(values) > cap(v.data) {
		v.data = append(make([]T, 0, len(values)), values...)
		v.views.invalidateAll()
		return
	}
	v.data = append(v.data[:0], values...)
	if old > len(v.data) {
		clear(v.data[len(v.data):old])
	}
	v.views.invalidateFrom(0)
}

// AssignRange replaces the contents of v with the values of src.
// src is drained before v is touched, so it may be a cursor over v.
func (v *Vec[T]) AssignRange(src iterator.Source[T]) {
	v.AssignSlice(iterator.Drain(src))
}

// Equal reports whether a and b hold equal elements in the same order.
// Two nil vectors are equal; a nil vector equals an empty one.
func Equal[T comparable](a, b *Vec[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}
