// SPDX-License-Identifier: MIT
// Package: lvtools/vec
//
// format.go - "[a, b, c]" rendering and parsing.

package vec

import (
	"fmt"
	"strings"
)

// String renders the vector as "[e0, e1, ..., eN-1]" using the default
// fmt formatting of each element. An empty vector renders as "[]".
//
// Complexity: O(n) for the string construction.
func (v *Vec[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range v.Data() {
		if i > 0 {
			b.WriteString(", ") // separate values with comma
		}
		fmt.Fprint(&b, e)
	}
	b.WriteByte(']')

	return b.String()
}

// Parse reads the rendering produced by String back into a vector, using
// elem to decode each element. Whitespace is ignored only around the
// brackets; elements are split on the exact ", " separator and passed to
// elem untouched, so padded and empty string elements survive the round
// trip. "[]" always reads as an empty vector, which means a vector holding
// a single empty string cannot round-trip; neither can elements whose own
// rendering contains ", ".
//
// Returns ErrMalformed when the brackets are missing or elem fails (its
// error is kept in the chain).
func Parse[T any](s string, elem func(string) (T, error), opts ...Option) (*Vec[T], error) {
	body := strings.TrimSpace(s)
	if !strings.HasPrefix(body, "[") || !strings.HasSuffix(body, "]") || len(body) < 2 {
		return nil, fmt.Errorf("vec.Parse(%q): %w", s, ErrMalformed.F("missing brackets"))
	}
	body = body[1 : len(body)-1]
	if body == "" {
		return New[T](opts...), nil
	}

	parts := strings.Split(body, ", ")
	v := New[T](append([]Option{WithCapacity(len(parts))}, opts...)...)
	for i, part := range parts {
		e, err := elem(part)
		if err != nil {
			return nil, fmt.Errorf("vec.Parse(%q): element %d: %w", s, i, ErrMalformed.Wrap(err))
		}
		v.PushBack(e)
	}

	return v, nil
}
