package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvtools/pattern"
)

// TestBuiltins checks each built-in transition and its default step.
func TestBuiltins(t *testing.T) {
	cases := []struct {
		name string
		p    pattern.Pattern[int]
		in   int
		want int
	}{
		{"Incr", pattern.Incr[int](), 1, 2},
		{"IncrBy", pattern.IncrBy(3), 1, 4},
		{"Decr", pattern.Decr[int](), 100, 99},
		{"DecrBy", pattern.DecrBy(10), 100, 90},
		{"Mult", pattern.Mult[int](), 3, 6},
		{"MultBy", pattern.MultBy(5), 5, 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p(tc.in))
			assert.Equal(t, tc.want, tc.p(tc.in), "pattern must be stateless")
		})
	}
}

// TestApply covers the left-to-right dependent scan.
func TestApply(t *testing.T) {
	s := []int{1, 1, 1, 1}
	pattern.Apply(s, pattern.IncrBy(1))
	assert.Equal(t, []int{1, 2, 3, 4}, s)

	s = []int{1, 9, 9, 9}
	pattern.Apply(s, pattern.MultBy(5))
	assert.Equal(t, []int{1, 5, 25, 125}, s, "existing values past index 0 are ignored")

	one := []int{42}
	pattern.Apply(one, pattern.Incr[int]())
	assert.Equal(t, []int{42}, one)

	var empty []int
	pattern.Apply(empty, pattern.Incr[int]())
	assert.Empty(t, empty)

	keep := []int{3, 2, 1}
	pattern.Apply(keep, nil)
	assert.Equal(t, []int{3, 2, 1}, keep)
}

// TestApply_Wraps relies on Go integer overflow semantics.
func TestApply_Wraps(t *testing.T) {
	s := []uint8{250, 0, 0}
	pattern.Apply(s, pattern.IncrBy[uint8](5))
	assert.Equal(t, []uint8{250, 255, 4}, s)
}

// TestGenerate builds sequences from a seed.
func TestGenerate(t *testing.T) {
	assert.Equal(t, []int64{100, 99, 98}, pattern.Generate(int64(100), 3, pattern.Decr[int64]()))
	assert.Equal(t, []int{7, 7}, pattern.Generate(7, 2, nil))
	assert.Nil(t, pattern.Generate(1, 0, pattern.Incr[int]()))
	assert.Nil(t, pattern.Generate(1, -3, pattern.Incr[int]()))
}
