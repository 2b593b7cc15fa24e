// SPDX-License-Identifier: MIT
// Package: lvtools/iterator
//
// errors.go - sentinel errors for the iterator package.
//
// Callers branch with errors.Is; context is attached with %w at the call site.

package iterator

import "go.llib.dev/frameless/pkg/errorkit"

// ErrBadRange indicates a [lo, hi) window that does not fit the underlying
// slice (lo < 0, hi > len or lo > hi).
const ErrBadRange errorkit.Error = "iterator: invalid range"
