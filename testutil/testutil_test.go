package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	assert.Equal(t, a.UniformLocations(10, 4), b.UniformLocations(10, 4))

	a.Reset()
	second := a.UniformLocations(10, 4)
	b.Reset()
	assert.Equal(t, second, b.UniformLocations(10, 4))
}

func TestFillUniformRange(t *testing.T) {
	rng := NewRNG(1)
	dst := make([]float64, 1000)
	rng.FillUniformRange(dst, -2, 3)

	for _, v := range dst {
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 3.0)
	}
}

func TestBruteForceSearch(t *testing.T) {
	locations := [][]float64{
		{0, 0},
		{1, 0},
		{5, 5},
		{0.5, 0},
	}

	results := BruteForceSearch(locations, []float64{0, 0}, 3)
	require.Len(t, results, 3)

	assert.Equal(t, 0, results[0].Index)
	assert.Equal(t, 3, results[1].Index)
	assert.Equal(t, 1, results[2].Index)

	all := BruteForceSearch(locations, []float64{0, 0}, 100)
	assert.Len(t, all, len(locations))
}
