// Package covariance estimates the lagged autocovariance structure of a
// centered series and expands it into the symmetric Toeplitz matrix used by
// the Toeplitz decomposition path.
package covariance

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Center returns series with its arithmetic mean subtracted.
func Center(series []float64) []float64 {
	mean := stat.Mean(series, nil)
	centered := make([]float64, len(series))
	for index, value := range series {
		centered[index] = value - mean
	}
	return centered
}

// Autocovariance estimates the autocovariance of centered at lags 0 through
// lags-1. The lag-h sum runs over all N-h overlapping pairs and is divided by
// N-h (biased, full-overlap normalization).
func Autocovariance(centered []float64, lags int) []float64 {
	n := len(centered)
	covs := make([]float64, lags)
	for lag := 0; lag < lags; lag++ {
		var sum float64
		for index := 0; index < n-lag; index++ {
			sum += centered[index] * centered[index+lag]
		}
		covs[lag] = sum / float64(n-lag)
	}
	return covs
}

// Toeplitz expands the lag estimates into the L by L symmetric matrix with
// entry (i, j) equal to covs[|i-j|], L = len(covs).
func Toeplitz(covs []float64) *mat.SymDense {
	l := len(covs)
	toeplitz := mat.NewSymDense(l, nil)
	for row := 0; row < l; row++ {
		for col := row; col < l; col++ {
			toeplitz.SetSym(row, col, covs[col-row])
		}
	}
	return toeplitz
}
