// SPDX-License-Identifier: MIT
// Package: lvtools/iterator
//
// pull.go - single-pass adapters over iter.Seq and channels.

package iterator

import "iter"

// PullSource is a single-pass Source over an iter.Seq.
// Call Stop when abandoning the source before it is exhausted.
type PullSource[T any] struct {
	next func() (T, bool)
	stop func()
	cur  T
	done bool
}

// Pull turns seq into a single-pass Source.
func Pull[T any](seq iter.Seq[T]) *PullSource[T] {
	next, stop := iter.Pull(seq)
	return &PullSource[T]{next: next, stop: stop}
}

// Next implements Source.
func (p *PullSource[T]) Next() bool {
	if p.done {
		return false
	}
	v, ok := p.next()
	if !ok {
		p.Stop()
		return false
	}
	p.cur = v

	return true
}

// Value implements Source.
func (p *PullSource[T]) Value() T {
	if p.done {
		var zero T
		return zero
	}

	return p.cur
}

// Stop releases the underlying sequence. Safe to call more than once.
func (p *PullSource[T]) Stop() {
	if p.done {
		return
	}
	p.done = true
	var zero T
	p.cur = zero
	p.stop()
}

// ChanSource is a single-pass Source that receives from a channel until it
// is closed.
type ChanSource[T any] struct {
	ch   <-chan T
	cur  T
	done bool
}

// Chan turns ch into a single-pass Source.
func Chan[T any](ch <-chan T) *ChanSource[T] {
	return &ChanSource[T]{ch: ch}
}

// Next implements Source. It blocks until a value arrives or ch is closed.
func (c *ChanSource[T]) Next() bool {
	if c.done || c.ch == nil {
		return false
	}
	v, ok := <-c.ch
	if !ok {
		c.done = true
		var zero T
		c.cur = zero
		return false
	}
	c.cur = v

	return true
}

// Value implements Source.
func (c *ChanSource[T]) Value() T {
	return c.cur
}
