// Package iterator classifies traversal sources by the guarantees they give
// and provides the adapters used to feed them into containers.
//
// Two capability tiers are recognized:
//
//   - Single-pass (Source): values are produced once, front to back. A saved
//     position cannot be replayed; draining the source consumes it.
//     Examples: Pull over an iter.Seq, Chan over a channel.
//   - Multi-pass (MultiPass): a Source that can be cloned into independent
//     cursors and whose positions can be compared.
//     Examples: Slice, SliceRange, vec.Cursor.
//
// Range-based container operations are generic over Source[T], so a source
// whose values are not T is rejected by the compiler. Map and Convert adapt
// the value type when needed; Map keeps the multi-pass tier of its input.
//
// Containers never rewind a source: a range operation performs at most one
// full traversal, which makes every Source valid input.
//
//	src := iterator.Slice([]int{1, 2, 3})
//	fmt.Println(iterator.TierOf[int](src)) // multi-pass
package iterator
