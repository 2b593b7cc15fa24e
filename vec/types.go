// SPDX-License-Identifier: MIT
// Package: lvtools/vec
//
// types.go - the Vec type, its growth policy and view tracking.

package vec

import "math"

// Vec is a growable, bounds-checked sequence of T.
//
// Elements occupy indices [0, Size()) contiguously in insertion order inside
// an allocation of Cap() ≥ Size() slots. The zero value is an empty vector
// ready to use. A Vec must not be copied by value once used; use Clone.
//
// A nil *Vec reads as an empty vector: observers (Size, Cap, Len, IsEmpty,
// Data, ToSlice, String) and the checked accessors (At, Index, Ref, Set,
// Peek*, FrontRef, BackRef) work on it and report the usual errors.
// Mutators and cursors need a non-nil vector.
//
// Vec is not safe for concurrent mutation; callers impose their own
// exclusion.
type Vec[T any] struct {
	data   []T // len(data) is the size, cap(data) the capacity
	growth float64
	views  viewState
}

// maxMarks bounds the invalidation history kept between reallocations.
// When exceeded, every outstanding view is invalidated at once.
const maxMarks = 64

// viewState tracks which outstanding views are still valid.
//
// epoch advances on every event that invalidates all views (reallocation,
// swap, shrink). marks records, in order, the positions of events that
// invalidate views at or after a position (insert, remove, truncation)
// within the current epoch.
type viewState struct {
	epoch uint64
	marks []int
}

// viewStamp is the state a view captured when it was issued.
type viewStamp struct {
	epoch uint64
	mark  int
}

func (s *viewState) invalidateAll() {
	s.epoch++
	s.marks = s.marks[:0]
}

func (s *viewState) invalidateFrom(pos int) {
	if len(s.marks) == maxMarks {
		s.invalidateAll()
		return
	}
	s.marks = append(s.marks, pos)
}

func (s *viewState) stamp() viewStamp {
	return viewStamp{epoch: s.epoch, mark: len(s.marks)}
}

// valid reports whether a view issued at st and standing at pos survived
// every event since.
func (s *viewState) valid(st viewStamp, pos int) bool {
	if st.epoch != s.epoch || st.mark > len(s.marks) {
		return false
	}
	for _, p := range s.marks[st.mark:] {
		if p <= pos {
			return false
		}
	}

	return true
}

func (v *Vec[T]) growthFactor() float64 {
	if v.growth > 1 {
		return v.growth
	}

	return DefaultGrowthFactor
}

// realloc moves the live elements into a fresh allocation of exactly n slots.
// n must be ≥ len(v.data). All views become invalid.
func (v *Vec[T]) realloc(n int) {
	buf := make([]T, len(v.data), n)
	copy(buf, v.data)
	v.data = buf
	v.views.invalidateAll()
}

// grow makes room for need elements, applying the growth factor.
// It is a no-op when the capacity already suffices.
func (v *Vec[T]) grow(need int) {
	if need <= cap(v.data) {
		return
	}
	next := math.Ceil(float64(cap(v.data)) * v.growthFactor())
	n := need
	if next > float64(n) && next < float64(math.MaxInt) {
		n = int(next)
	}
	if n < minAlloc {
		n = minAlloc
	}
	v.realloc(n)
}
