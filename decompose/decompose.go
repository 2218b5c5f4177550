// Package decompose produces ordered singular triplets from a trajectory
// matrix. Two factorizations are provided: a direct singular value
// decomposition (exact or randomized) and an eigen-decomposition of a
// Toeplitz autocovariance matrix, better suited to stationary series.
package decompose

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrDegenerateComponent signals a zero projection norm for a retained
// component on the Toeplitz path, where the right singular vector would
// require a division by zero.
var ErrDegenerateComponent = errors.New("decompose: zero projection norm for retained component")

// Triplets holds the singular triplets (u_i, sigma_i, v_i) of a trajectory
// matrix X such that X is approximated by the sum of sigma_i * u_i * v_i^T.
// U is L by d, V is K by d and Sigma holds the d singular values in
// non-increasing order.
type Triplets struct {
	U     *mat.Dense
	Sigma []float64
	V     *mat.Dense
}

// Rank returns the number of retained triplets.
func (t Triplets) Rank() int {
	return len(t.Sigma)
}

// Factorizer produces ordered singular triplets from a trajectory matrix.
// Implementations must return singular values in non-increasing order.
type Factorizer interface {
	Factorize(x *mat.Dense) (Triplets, error)
}

// Components builds one elementary matrix sigma_i * u_i * v_i^T per triplet,
// in factorization order. Summed over all triplets the elementary matrices
// recover the (approximate) trajectory matrix.
func Components(t Triplets) []*mat.Dense {
	components := make([]*mat.Dense, t.Rank())
	for index := range components {
		var elementary mat.Dense
		elementary.Outer(t.Sigma[index], t.U.ColView(index), t.V.ColView(index))
		components[index] = &elementary
	}
	return components
}
