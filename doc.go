// Package lvtools is a small toolbox of generic containers built around a
// checked, growable vector and the iterator contract it is filled from.
//
// 🚀 What is lvtools?
//
//	A library that brings together:
//		• vec: Vec[T], a contiguous owning sequence with bounds-checked access,
//		  explicit capacity control and tracked view invalidation
//		• iterator: Source/MultiPass capability tiers, slice/channel/iter.Seq
//		  adapters, Map and Convert
//		• pattern: integer successor functions (Incr, Decr, Mult) used to fill
//		  vectors in place
//
// ✨ Why choose lvtools?
//
//   - Fail fast: no clamped indexes, no silent truncation; errors are values
//   - Predictable growth: documented policy, exact reservations
//   - Works with the Go iteration protocol: Iter, All, Backward, Pull
//
// Layout:
//
//	vec/       - Vec[T], options, cursors, rendering and parsing
//	iterator/  - range sources and their capability tiers
//	pattern/   - integer patterns and in-place scans
//	examples/  - runnable walkthroughs
//
// Quick example:
//
//	v := vec.With(vec.Of(4, 1), pattern.MultBy(5))
//	fmt.Println(v) // [1, 5, 25, 125]
//
//	go get github.com/katalvlaran/lvtools
package lvtools
