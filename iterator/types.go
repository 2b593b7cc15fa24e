// SPDX-License-Identifier: MIT
// Package: lvtools/iterator
//
// types.go - source interfaces and capability tiers.

package iterator

// Source is a single-pass traversal.
//
// Next advances to the following value and reports whether one exists;
// Value returns the value Next stopped on. Value before the first Next, or
// after Next returned false, yields the zero value of T.
type Source[T any] interface {
	Next() bool
	Value() T
}

// MultiPass is a Source that supports independent passes.
//
// Clone returns a cursor at the same position that advances independently.
// Pos is the zero-based offset of the current value within the traversal
// (-1 before the first Next). Equal reports whether two cursors of the same
// traversal stand at the same position.
type MultiPass[T any] interface {
	Source[T]
	Clone() MultiPass[T]
	Pos() int
	Equal(other MultiPass[T]) bool
}

// Sizer is implemented by sources that know how many values are left.
// Range operations use it as a reservation hint only.
type Sizer interface {
	Remaining() int
}

// Tier is the capability class of a traversal source.
type Tier int

const (
	// TierNone marks a nil source.
	TierNone Tier = iota

	// TierSinglePass marks a source that can be consumed only once.
	TierSinglePass

	// TierMultiPass marks a source that can be cloned and compared.
	TierMultiPass
)

// String implements fmt.Stringer.
func (t Tier) String() string {
	switch t {
	case TierSinglePass:
		return "single-pass"
	case TierMultiPass:
		return "multi-pass"
	default:
		return "none"
	}
}
