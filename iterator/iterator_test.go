package iterator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.llib.dev/frameless/pkg/iterkit"

	"github.com/katalvlaran/lvtools/iterator"
)

// TestTierOf checks the runtime classification of every adapter.
func TestTierOf(t *testing.T) {
	ch := make(chan int)
	close(ch)

	assert.Equal(t, iterator.TierNone, iterator.TierOf[int](nil))
	assert.Equal(t, iterator.TierMultiPass, iterator.TierOf[int](iterator.Slice([]int{1})))
	assert.Equal(t, iterator.TierSinglePass, iterator.TierOf[int](iterator.Pull(iterkit.FromSlice([]int{1}))))
	assert.Equal(t, iterator.TierSinglePass, iterator.TierOf[int](iterator.Chan(ch)))

	assert.True(t, iterator.Valid[int](iterator.Slice([]int{})))
	assert.False(t, iterator.Valid[int](nil))
}

// TestTier_String covers the diagnostic names.
func TestTier_String(t *testing.T) {
	assert.Equal(t, "none", iterator.TierNone.String())
	assert.Equal(t, "single-pass", iterator.TierSinglePass.String())
	assert.Equal(t, "multi-pass", iterator.TierMultiPass.String())
}

// TestSlice_CloneAdvancesIndependently verifies the multi-pass guarantee.
func TestSlice_CloneAdvancesIndependently(t *testing.T) {
	c := iterator.Slice([]string{"a", "b", "c"})
	require.True(t, c.Next())
	assert.Equal(t, "a", c.Value())
	assert.Equal(t, 0, c.Pos())

	cl := c.Clone()
	assert.True(t, c.Equal(cl), "clone starts at the same position")

	require.True(t, cl.Next())
	assert.Equal(t, "b", cl.Value())
	assert.False(t, c.Equal(cl), "clone moved on its own")
	assert.Equal(t, "a", c.Value(), "the cloned-from cursor did not move")

	require.True(t, c.Next())
	assert.True(t, c.Equal(cl))
	assert.Equal(t, 1, c.Remaining())
}

// TestSlice_ValueOutsideWindow returns the zero value before Next and after exhaustion.
func TestSlice_ValueOutsideWindow(t *testing.T) {
	c := iterator.Slice([]int{7})
	assert.Equal(t, 0, c.Value())
	assert.Equal(t, -1, c.Pos())
	require.True(t, c.Next())
	assert.Equal(t, 7, c.Value())
	assert.False(t, c.Next())
	assert.False(t, c.Next(), "exhausted cursor stays exhausted")
	assert.Equal(t, 0, c.Value())
	assert.Equal(t, 0, c.Remaining())
}

// TestSliceRange covers window validation and traversal.
func TestSliceRange(t *testing.T) {
	s := []int{0, 1, 2, 3, 4}

	c, err := iterator.SliceRange(s, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, iterator.Drain[int](c))

	empty, err := iterator.SliceRange(s, 2, 2)
	require.NoError(t, err)
	assert.Empty(t, iterator.Drain[int](empty))

	for _, tc := range []struct{ lo, hi int }{{-1, 2}, {0, 6}, {3, 2}} {
		_, err := iterator.SliceRange(s, tc.lo, tc.hi)
		assert.ErrorIs(t, err, iterator.ErrBadRange, "lo=%d hi=%d", tc.lo, tc.hi)
	}
}

// TestPull_IsSinglePass drains a pulled sequence once and never again.
func TestPull_IsSinglePass(t *testing.T) {
	src := iterator.Pull(iterkit.FromSlice([]int{1, 2, 3}))
	assert.Equal(t, []int{1, 2, 3}, iterator.Drain[int](src))
	assert.False(t, src.Next())
	assert.Equal(t, 0, src.Value())
	src.Stop() // idempotent
}

// TestPull_StopEarly releases the sequence before exhaustion.
func TestPull_StopEarly(t *testing.T) {
	src := iterator.Pull(iterkit.IntRange(1, 100))
	require.True(t, src.Next())
	assert.Equal(t, 1, src.Value())
	src.Stop()
	assert.False(t, src.Next())
}

// TestChan drains a closed channel.
func TestChan(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 4
	ch <- 5
	ch <- 6
	close(ch)

	assert.Equal(t, []int{4, 5, 6}, iterator.Drain[int](iterator.Chan(ch)))
	assert.False(t, iterator.Chan[int](nil).Next(), "nil channel is an empty source")
}

// TestMap_KeepsTier ensures Map preserves multi-pass capability.
func TestMap_KeepsTier(t *testing.T) {
	double := func(v int) int { return v * 2 }

	multi := iterator.Map[int, int](iterator.Slice([]int{1, 2, 3}), double)
	assert.Equal(t, iterator.TierMultiPass, iterator.TierOf(multi))

	single := iterator.Map[int, int](iterator.Pull(iterkit.FromSlice([]int{1, 2, 3})), double)
	assert.Equal(t, iterator.TierSinglePass, iterator.TierOf(single))

	mp := multi.(iterator.MultiPass[int])
	require.True(t, mp.Next())
	cl := mp.Clone()
	assert.True(t, mp.Equal(cl))
	assert.Equal(t, []int{4, 6}, iterator.Drain[int](cl))
	assert.Equal(t, 2, mp.Value())
	assert.Equal(t, 0, mp.Pos())

	n, ok := iterator.Remaining(multi)
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}

// TestConvert constructs a different numeric element type.
// TestMap_NilSource keeps a nil source nil through the adapters.
func TestMap_NilSource(t *testing.T) {
	double := func(v int) int { return v * 2 }
	assert.Nil(t, iterator.Map[int, int](nil, double))
	assert.Equal(t, iterator.TierNone, iterator.TierOf(iterator.Map[int, int](nil, double)))
	assert.False(t, iterator.Valid(iterator.Convert[int64, int](nil)))
	assert.Nil(t, iterator.Drain(iterator.Map[int, int](nil, double)))
}

func TestConvert(t *testing.T) {
	src := iterator.Convert[int64, float64](iterator.Slice([]float64{1.9, -2.5, 3}))
	assert.Equal(t, []int64{1, -2, 3}, iterator.Drain(src))
}

// TestSeq consumes the source through range-over-func.
func TestSeq(t *testing.T) {
	src := iterator.Slice([]int{1, 2, 3})
	assert.Equal(t, []int{1, 2, 3}, iterkit.Collect(iterator.Seq[int](src)))
	assert.Empty(t, iterkit.Collect(iterator.Seq[int](src)), "source already consumed")
	assert.Empty(t, iterkit.Collect(iterator.Seq[int](nil)))
}

// TestRemaining_NoHint reports false for sources without a size.
func TestRemaining_NoHint(t *testing.T) {
	_, ok := iterator.Remaining[int](iterator.Pull(iterkit.FromSlice([]int{1})))
	assert.False(t, ok)
	assert.Nil(t, iterator.Drain[int](nil))
}
