// Package pattern provides pure element-to-element transitions used to
// populate integer sequences in place from a seed value.
//
// A Pattern maps the previous element to the next one. Apply scans a slice
// left to right: element 0 is the seed and stays unchanged, element i
// becomes p(element i-1). Only integer element types are accepted; the
// constraint is checked by the compiler.
//
//	s := []int{1, 0, 0, 0}
//	pattern.Apply(s, pattern.Mult[int]()) // [1 2 4 8]
package pattern

import "golang.org/x/exp/constraints"

// Pattern is a stateless transition from one element to the next.
type Pattern[T constraints.Integer] func(prev T) T

// Default steps of the built-in patterns.
const (
	DefaultIncrStep = 1
	DefaultDecrStep = 1
	DefaultMultStep = 2
)

// Incr is an incremental sequence by 1 (e.g. 1, 2, 3, 4, ...).
func Incr[T constraints.Integer]() Pattern[T] { return IncrBy[T](DefaultIncrStep) }

// Decr is a decremental sequence by 1 (e.g. 100, 99, 98, ...).
func Decr[T constraints.Integer]() Pattern[T] { return DecrBy[T](DefaultDecrStep) }

// Mult is a geometric sequence by 2 (e.g. 1, 2, 4, 8, ...).
func Mult[T constraints.Integer]() Pattern[T] { return MultBy[T](DefaultMultStep) }

// IncrBy returns next = prev + by.
func IncrBy[T constraints.Integer](by T) Pattern[T] {
	return func(prev T) T { return prev + by }
}

// DecrBy returns next = prev - by.
func DecrBy[T constraints.Integer](by T) Pattern[T] {
	return func(prev T) T { return prev - by }
}

// MultBy returns next = prev * by.
func MultBy[T constraints.Integer](by T) Pattern[T] {
	return func(prev T) T { return prev * by }
}

// Apply rewrites s[1:] so that s[i] = p(s[i-1]), reading each already
// updated predecessor. s[0] is the seed. A nil pattern leaves s untouched.
//
// Complexity: O(len(s)) time, O(1) extra memory.
func Apply[T constraints.Integer](s []T, p Pattern[T]) {
	if p == nil {
		return
	}
	for i := 1; i < len(s); i++ {
		s[i] = p(s[i-1])
	}
}

// Generate returns n elements starting at seed and following p.
// n ≤ 0 yields nil; a nil pattern repeats the seed.
func Generate[T constraints.Integer](seed T, n int, p Pattern[T]) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = seed
	}
	Apply(out, p)

	return out
}
