// SPDX-License-Identifier: MIT
// Package: lvtools/iterator
//
// map.go - value-mapping adapters.

package iterator

import "golang.org/x/exp/constraints"

// Number is the set of element types Convert can construct from one another.
type Number interface {
	constraints.Integer | constraints.Float
}

// Map adapts src so that every value is passed through fn.
// When src is MultiPass, the returned Source is MultiPass as well.
// fn is called lazily, once per Value call. A nil src yields nil, so the
// result keeps TierNone.
func Map[From, To any](src Source[From], fn func(From) To) Source[To] {
	if src == nil {
		return nil
	}
	if mp, ok := src.(MultiPass[From]); ok {
		return &mappedMulti[From, To]{src: mp, fn: fn}
	}

	return &mapped[From, To]{src: src, fn: fn}
}

// Convert adapts a numeric source to another numeric element type using Go
// conversion rules (truncation for float to integer, wrap-around on overflow).
func Convert[To, From Number](src Source[From]) Source[To] {
	return Map(src, func(v From) To { return To(v) })
}

type mapped[From, To any] struct {
	src Source[From]
	fn  func(From) To
}

func (m *mapped[From, To]) Next() bool { return m.src.Next() }
func (m *mapped[From, To]) Value() To  { return m.fn(m.src.Value()) }

type mappedMulti[From, To any] struct {
	src MultiPass[From]
	fn  func(From) To
}

func (m *mappedMulti[From, To]) Next() bool { return m.src.Next() }
func (m *mappedMulti[From, To]) Value() To  { return m.fn(m.src.Value()) }
func (m *mappedMulti[From, To]) Pos() int   { return m.src.Pos() }

func (m *mappedMulti[From, To]) Clone() MultiPass[To] {
	return &mappedMulti[From, To]{src: m.src.Clone(), fn: m.fn}
}

func (m *mappedMulti[From, To]) Equal(other MultiPass[To]) bool {
	o, ok := other.(*mappedMulti[From, To])
	if !ok {
		return false
	}

	return m.src.Equal(o.src)
}

func (m *mappedMulti[From, To]) Remaining() int {
	n, _ := Remaining[From](m.src)
	return n
}
