package decompose

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Toeplitz factorizes through the eigenvectors of an L by L Toeplitz
// autocovariance matrix instead of the trajectory matrix itself. The
// eigenvectors act as left singular vectors; the singular values are the
// norms of the trajectory matrix projected onto them, which generally orders
// the components differently than the eigenvalues do.
type Toeplitz struct {
	// Cov is the L by L symmetric autocovariance matrix of the series.
	Cov *mat.SymDense
}

// Factorize eigen-decomposes the covariance matrix, projects x onto each
// eigenvector and returns the resulting L triplets sorted by descending
// projection norm. A zero projection norm for any component returns
// ErrDegenerateComponent, since its right singular vector is undefined.
func (t Toeplitz) Factorize(x *mat.Dense) (Triplets, error) {
	l, k := x.Dims()
	if rows, _ := t.Cov.Dims(); rows != l {
		panic(fmt.Sprintf("decompose: covariance order %v does not match window %v", rows, l))
	}

	var eigen mat.EigenSym
	if ok := eigen.Factorize(t.Cov, true); !ok {
		return Triplets{}, ErrFactorization
	}
	var vectors mat.Dense
	eigen.VectorsTo(&vectors)

	projections := make([]*mat.VecDense, l)
	sigma := make([]float64, l)
	for index := 0; index < l; index++ {
		projection := mat.NewVecDense(k, nil)
		projection.MulVec(x.T(), vectors.ColView(index))
		projections[index] = projection
		sigma[index] = mat.Norm(projection, 2)
	}

	order := make([]int, l)
	for index := range order {
		order[index] = index
	}
	sort.SliceStable(order, func(i, j int) bool {
		return sigma[order[i]] > sigma[order[j]]
	})

	u := mat.NewDense(l, l, nil)
	v := mat.NewDense(k, l, nil)
	sorted := make([]float64, l)
	for position, index := range order {
		if sigma[index] == 0 {
			return Triplets{}, fmt.Errorf("%w: component %v", ErrDegenerateComponent, position)
		}
		sorted[position] = sigma[index]
		for row := 0; row < l; row++ {
			u.Set(row, position, vectors.At(row, index))
		}
		for row := 0; row < k; row++ {
			v.Set(row, position, projections[index].AtVec(row)/sigma[index])
		}
	}
	return Triplets{U: u, Sigma: sorted, V: v}, nil
}
