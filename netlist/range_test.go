package netlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeRangeAscending(t *testing.T) {
	r, w := normalizeRange(2, 5)
	require.Equal(t, Range{Start: 0, End: 3}, r)
	require.EqualValues(t, 4, w)
}

func TestNormalizeRangeDescendingSource(t *testing.T) {
	// A declared range written hi-to-lo in source still normalizes to a
	// zero-based ascending Range.
	r, w := normalizeRange(7, 0)
	require.Equal(t, Range{Start: 0, End: 7}, r)
	require.EqualValues(t, 8, w)
}

func TestNormalizeRangeScalar(t *testing.T) {
	r, w := normalizeRange(0, 0)
	require.Equal(t, Range{Start: 0, End: 0}, r)
	require.EqualValues(t, 1, w)
}

func TestRangeString(t *testing.T) {
	require.Equal(t, "[3]", Range{Start: 3, End: 3}.String())
	require.Equal(t, "[4:2]", Range{Start: 2, End: 4}.String())
}
