// SPDX-License-Identifier: MIT
// Package: lvtools/iterator
//
// capability.go - tier classification and draining.

package iterator

import "go.llib.dev/frameless/pkg/iterkit"

// TierOf reports the capability tier of src.
// A nil source is TierNone; a MultiPass is TierMultiPass; any other Source
// is TierSinglePass.
//
// Complexity: O(1).
func TierOf[T any](src Source[T]) Tier {
	if src == nil {
		return TierNone
	}
	if _, ok := src.(MultiPass[T]); ok {
		return TierMultiPass
	}

	return TierSinglePass
}

// Valid reports whether src satisfies exactly one capability tier and can
// therefore feed a container construction or insertion.
func Valid[T any](src Source[T]) bool {
	return TierOf(src) != TierNone
}

// Remaining returns the number of values left in src when the source can
// tell without consuming itself.
func Remaining[T any](src Source[T]) (int, bool) {
	s, ok := src.(Sizer)
	if !ok {
		return 0, false
	}
	n := s.Remaining()
	if n < 0 {
		n = 0
	}

	return n, true
}

// Drain consumes src once, front to back, and returns its values in order.
// A nil source yields nil.
//
// Complexity: O(k) for k remaining values.
func Drain[T any](src Source[T]) []T {
	if src == nil {
		return nil
	}
	var out []T
	if n, ok := Remaining(src); ok {
		out = make([]T, 0, n)
	}
	for src.Next() {
		out = append(out, src.Value())
	}

	return out
}

// Seq exposes src as a range-over-func sequence. Ranging over it consumes
// src, so the result is single-use whatever the tier of src.
func Seq[T any](src Source[T]) iterkit.SingleUseSeq[T] {
	return func(yield func(T) bool) {
		if src == nil {
			return
		}
		for src.Next() {
			if !yield(src.Value()) {
				return
			}
		}
	}
}
