// SPDX-License-Identifier: MIT
// Package: lvtools/iterator
//
// slice.go - multi-pass slice cursors.

package iterator

import "fmt"

// SliceCursor is a multi-pass cursor over a window of a slice.
// It never copies the slice; writes through the slice are visible to it.
type SliceCursor[T any] struct {
	s      []T
	lo, hi int
	pos    int // absolute index of the current value, lo-1 before the first Next
}

// Slice returns a multi-pass cursor over every element of s.
func Slice[T any](s []T) *SliceCursor[T] {
	return &SliceCursor[T]{s: s, lo: 0, hi: len(s), pos: -1}
}

// SliceRange returns a multi-pass cursor over s[lo:hi].
// Returns ErrBadRange unless 0 ≤ lo ≤ hi ≤ len(s).
func SliceRange[T any](s []T, lo, hi int) (*SliceCursor[T], error) {
	if lo < 0 || hi > len(s) || lo > hi {
		return nil, fmt.Errorf("SliceRange(%d,%d) over %d elements: %w", lo, hi, len(s), ErrBadRange)
	}

	return &SliceCursor[T]{s: s, lo: lo, hi: hi, pos: lo - 1}, nil
}

// Next implements Source.
func (c *SliceCursor[T]) Next() bool {
	if c.pos+1 >= c.hi {
		c.pos = c.hi
		return false
	}
	c.pos++

	return true
}

// Value implements Source.
func (c *SliceCursor[T]) Value() T {
	if c.pos < c.lo || c.pos >= c.hi {
		var zero T
		return zero
	}

	return c.s[c.pos]
}

// Clone implements MultiPass.
func (c *SliceCursor[T]) Clone() MultiPass[T] {
	cp := *c
	return &cp
}

// Pos implements MultiPass.
func (c *SliceCursor[T]) Pos() int {
	return c.pos - c.lo
}

// Equal implements MultiPass. Cursors of different windows are never equal.
func (c *SliceCursor[T]) Equal(other MultiPass[T]) bool {
	o, ok := other.(*SliceCursor[T])
	if !ok {
		return false
	}

	return c.lo == o.lo && c.hi == o.hi && len(c.s) == len(o.s) && c.pos == o.pos
}

// Remaining implements Sizer.
func (c *SliceCursor[T]) Remaining() int {
	if c.pos >= c.hi {
		return 0
	}

	return c.hi - c.pos - 1
}
