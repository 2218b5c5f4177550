// Package embedding builds the trajectory (Hankel) matrix of a time series
// and inverts the embedding through diagonal averaging, as described in
// https://en.wikipedia.org/wiki/Singular_spectrum_analysis.
package embedding

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrWindow signals a window length outside the valid range [2, N].
var ErrWindow = errors.New("embedding: window length outside [2, len(series)]")

// BuildTrajectory returns the L by K trajectory matrix of series, where
// L = window, K = len(series)-window+1 and column j holds series[j : j+window].
func BuildTrajectory(series []float64, window int) (*mat.Dense, error) {
	n := len(series)
	if window < 2 || window > n {
		return nil, fmt.Errorf("%w: window %v, series length %v", ErrWindow, window, n)
	}
	k := n - window + 1
	data := make([]float64, window*k)
	for row := 0; row < window; row++ {
		copy(data[row*k:(row+1)*k], series[row:row+k])
	}
	return mat.NewDense(window, k, data), nil
}

// DiagonalAverage recovers a length m+n-1 sequence from an m by n matrix by
// averaging the entries of each anti-diagonal (constant row+column index).
// Applied to a trajectory matrix this inverts BuildTrajectory exactly; applied
// to a sum of elementary matrices it yields the reconstructed series.
func DiagonalAverage(matrix mat.Matrix) []float64 {
	m, n := matrix.Dims()
	series := make([]float64, m+n-1)
	counts := make([]float64, m+n-1)
	for row := 0; row < m; row++ {
		for col := 0; col < n; col++ {
			series[row+col] += matrix.At(row, col)
			counts[row+col]++
		}
	}
	for index := range series {
		series[index] /= counts[index]
	}
	return series
}
