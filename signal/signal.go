// Package signal generates synthetic test series: sinusoids, linear trends
// and Gaussian noise, composable into a single sampled sequence.
package signal

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Signal maps a time instant to a scalar value.
type Signal func(t float64) float64

// Sine returns amplitude * sin(2 pi t / period + phase).
func Sine(amplitude, period, phase float64) Signal {
	return func(t float64) float64 {
		return amplitude * math.Sin(2*math.Pi*t/period+phase)
	}
}

// Trend returns the linear ramp slope * t.
func Trend(slope float64) Signal {
	return func(t float64) float64 {
		return slope * t
	}
}

// Noise returns zero-mean Gaussian noise with standard deviation sigma. The
// returned signal ignores its argument and draws a fresh value per call;
// the seed makes a sampled sequence reproducible.
func Noise(sigma float64, seed uint64) Signal {
	normal := distuv.Normal{Mu: 0, Sigma: sigma, Src: rand.NewSource(seed)}
	return func(float64) float64 {
		return normal.Rand()
	}
}

// Sum superimposes signals pointwise.
func Sum(signals ...Signal) Signal {
	return func(t float64) float64 {
		var value float64
		for _, s := range signals {
			value += s(t)
		}
		return value
	}
}

// Sample evaluates s at n instants spaced dt apart, starting at t = 0.
func Sample(s Signal, n int, dt float64) []float64 {
	series := make([]float64, n)
	for index := range series {
		series[index] = s(float64(index) * dt)
	}
	return series
}
