// SPDX-License-Identifier: MIT
// Package: lvtools/vec
//
// with.go - integer pattern filling.

package vec

import (
	"github.com/katalvlaran/lvtools/pattern"
	"golang.org/x/exp/constraints"
)

// With rewrites v in place so that element i becomes p(element i-1) for
// i from 1 to Size()-1; element 0 is the seed and is left unchanged.
// It returns v for chaining. Only integer vectors are accepted, which the
// compiler enforces. No view is invalidated: positions do not move.
//
//	vec.With(vec.Of(4, 1), pattern.Incr[int]()) // [1, 2, 3, 4]
func With[T constraints.Integer](v *Vec[T], p pattern.Pattern[T]) *Vec[T] {
	if v == nil {
		return nil
	}
	pattern.Apply(v.data, p)

	return v
}
