// SPDX-License-Identifier: MIT
// Package: lvtools/vec
//
// cursor.go - cursors and range-over-func traversal.

package vec

import (
	"iter"

	"github.com/katalvlaran/lvtools/iterator"
)

// Cursor is a multi-pass view over a window of a vector.
//
// A cursor reads the vector directly, so it follows the view rules of the
// container: any reallocation invalidates it, and an insert or removal at a
// position at or before the cursor invalidates it. An invalid cursor stops:
// Next returns false and Value returns the zero value.
type Cursor[T any] struct {
	v      *Vec[T]
	lo, hi int
	pos    int // absolute index, lo-1 before the first Next
	stamp  viewStamp
}

var _ iterator.MultiPass[int] = (*Cursor[int])(nil)

// Cursor returns a cursor over every element of v.
func (v *Vec[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{v: v, lo: 0, hi: len(v.data), pos: -1, stamp: v.views.stamp()}
}

// Range returns a cursor over the half-open window [lo, hi).
// Returns ErrIndexOutOfRange unless 0 ≤ lo ≤ hi ≤ Size().
func (v *Vec[T]) Range(lo, hi int) (*Cursor[T], error) {
	if lo < 0 || lo > len(v.data) {
		return nil, indexErr("Range", lo, len(v.data))
	}
	if hi < lo || hi > len(v.data) {
		return nil, indexErr("Range", hi, len(v.data))
	}

	return &Cursor[T]{v: v, lo: lo, hi: hi, pos: lo - 1, stamp: v.views.stamp()}, nil
}

// Valid reports whether the cursor still tracks its vector.
func (c *Cursor[T]) Valid() bool {
	pos := c.pos
	if pos < c.lo {
		pos = c.lo
	}

	return c.v.views.valid(c.stamp, pos)
}

// end is the exclusive bound actually readable right now.
func (c *Cursor[T]) end() int {
	return min(c.hi, len(c.v.data))
}

// Next implements iterator.Source.
func (c *Cursor[T]) Next() bool {
	if !c.Valid() || c.pos+1 >= c.end() {
		if c.pos < c.hi {
			c.pos = c.hi
		}
		return false
	}
	c.pos++

	return true
}

// Value implements iterator.Source.
func (c *Cursor[T]) Value() T {
	if c.pos < c.lo || c.pos >= c.end() || !c.Valid() {
		var zero T
		return zero
	}

	return c.v.data[c.pos]
}

// Index returns the absolute index of the current element in the vector.
func (c *Cursor[T]) Index() int { return c.pos }

// Pos implements iterator.MultiPass.
func (c *Cursor[T]) Pos() int { return c.pos - c.lo }

// Clone implements iterator.MultiPass.
func (c *Cursor[T]) Clone() iterator.MultiPass[T] {
	cp := *c
	return &cp
}

// Equal implements iterator.MultiPass. Cursors of different vectors are
// never equal.
func (c *Cursor[T]) Equal(other iterator.MultiPass[T]) bool {
	o, ok := other.(*Cursor[T])
	if !ok {
		return false
	}

	return c.v == o.v && c.pos == o.pos
}

// Remaining implements iterator.Sizer.
func (c *Cursor[T]) Remaining() int {
	n := c.end() - c.pos - 1
	if n < 0 || !c.Valid() {
		return 0
	}

	return n
}

// Iter yields the elements front to back. The sequence reads the vector
// when ranged, so it reflects the contents at that time.
func (v *Vec[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range v.Data() {
			if !yield(e) {
				return
			}
		}
	}
}

// All yields index/element pairs front to back.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range v.Data() {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from the last element to the first.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.Data()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}
