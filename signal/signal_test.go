package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinePeriod(t *testing.T) {
	sine := Sine(2, 20, 0)
	series := Sample(sine, 60, 1)

	require.Len(t, series, 60)
	for index := 0; index < 40; index++ {
		assert.InDelta(t, series[index], series[index+20], 1e-12,
			"one period apart at index %v", index)
	}
	assert.InDelta(t, 0, series[0], 1e-12)
	assert.InDelta(t, 2, series[5], 1e-12) // quarter period peak
}

func TestSumSuperimposes(t *testing.T) {
	combined := Sum(Trend(0.5), Sine(1, 10, 0))
	for _, instant := range []float64{0, 1, 2.5, 7} {
		expected := 0.5*instant + math.Sin(2*math.Pi*instant/10)
		assert.InDelta(t, expected, combined(instant), 1e-12)
	}
}

func TestNoiseReproducible(t *testing.T) {
	first := Sample(Noise(0.5, 42), 100, 1)
	second := Sample(Noise(0.5, 42), 100, 1)
	assert.Equal(t, first, second)

	var mean float64
	for _, value := range first {
		mean += value
	}
	mean /= float64(len(first))
	assert.InDelta(t, 0, mean, 0.2)
}
