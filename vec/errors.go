// SPDX-License-Identifier: MIT
// Package: lvtools/vec
//
// errors.go - the error domain of the container.
//
// Error policy:
//   • Two kinds only for element access: ErrNoSuchElement and ErrIndexOutOfRange.
//     ErrMalformed belongs to Parse and is never produced by container methods.
//   • Every check runs before any mutation; a failed call leaves the vector as it was.
//   • Returned errors carry method context and the current size; callers branch
//     with errors.Is and may extract *IndexError with errors.As.
//   • Methods never panic on user input. Option constructors (WithX) do.

package vec

import (
	"fmt"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	// ErrNoSuchElement is returned by the peek accessors on an empty vector.
	ErrNoSuchElement errorkit.Error = "vec: no such element"

	// ErrIndexOutOfRange is returned by indexed operations when the index is
	// not strictly below the size (or, for insert positions, above the size).
	ErrIndexOutOfRange errorkit.Error = "vec: index out of range"

	// ErrMalformed is returned by Parse when the text is not a bracketed,
	// comma separated rendering, or an element fails to parse.
	ErrMalformed errorkit.Error = "vec: malformed rendering"
)

// IndexError describes a rejected index or count.
type IndexError struct {
	Op    string // method name, e.g. "At"
	Index int    // offending index or count
	Size  int    // size of the vector when the call was made
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("Vec.%s(%d): %s: invalid index for vector of size %d", e.Op, e.Index, ErrIndexOutOfRange, e.Size)
}

// Unwrap makes errors.Is(err, ErrIndexOutOfRange) hold.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// indexErr builds the error returned for a bad index in method op.
func indexErr(op string, index, size int) error {
	return &IndexError{Op: op, Index: index, Size: size}
}

// emptyErr builds the error returned by peek accessors on an empty vector.
func emptyErr(op string) error {
	return fmt.Errorf("Vec.%s: %w", op, ErrNoSuchElement.F("vector is empty"))
}
