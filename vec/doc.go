// Package vec provides Vec, a growable, bounds-checked sequence container.
//
// 🚀 What is Vec?
//
//	A generic, owning, contiguous array that fails fast instead of
//	misbehaving: every indexed access is checked, every peek on an empty
//	vector is reported, and no index is ever clamped silently.
//
// ✨ Key features:
//   - bounds-checked access: At / Index / Ref / Set → ErrIndexOutOfRange
//   - peeks: PeekFront / PeekBack → ErrNoSuchElement on an empty vector
//   - PopBack returns (value, ok) and never fails
//   - insert / fill / insert-slice / insert-range at any position 0..Size()
//   - explicit capacity control: RequestCap, Shrink, WithCapacity, WithGrowthFactor
//   - range construction from any iterator.Source (single- or multi-pass)
//   - integer pattern filling: With(v, pattern.Incr[int]())
//   - "[a, b, c]" rendering via String, and Parse for the way back
//
// Invariants:
//
//	0 ≤ Size() ≤ Cap(); elements occupy [0, Size()) in insertion order.
//	A failing call leaves size, capacity and contents unchanged.
//
// Views (Cursor, Ref pointers, Data slices):
//   - any reallocation invalidates every view;
//   - Insert*/Remove* at position p invalidate views at positions ≥ p;
//   - PushBack/EmplaceBack invalidate views only when they reallocate.
//
// Cursor.Valid reports the state of a cursor; pointers and slices cannot
// report it and must be re-acquired by the caller.
//
// ⚙️ Usage:
//
//	v := vec.Of(4, 1)
//	vec.With(v, pattern.MultBy(5))
//	fmt.Println(v) // [1, 5, 25, 125]
//
//	if _, err := v.At(4); errors.Is(err, vec.ErrIndexOutOfRange) {
//	  // handle
//	}
//
// A nil *Vec behaves as an empty vector for reads; mutate only non-nil vectors.
//
// Concurrency: none. Vec is a single-owner value; guard it externally when
// shared between goroutines.
package vec
