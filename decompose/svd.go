package decompose

import (
	"errors"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// defaultSeed keeps randomized factorizations reproducible when the caller
// does not provide a seed.
const defaultSeed uint64 = 1

// ErrFactorization signals that the underlying numerical routine failed to
// converge. This does not happen for finite well-formed input.
var ErrFactorization = errors.New("decompose: factorization failed to converge")

// SVD factorizes the trajectory matrix directly. With Randomized unset it
// computes the full thin decomposition, all min(L, K) triplets in the
// non-increasing order returned by gonum. With Randomized set it sketches
// the range of the matrix with a Gaussian test matrix and factorizes the
// projected matrix, returning only the top Components triplets
// (Halko, Martinsson & Tropp, https://arxiv.org/abs/0909.4061).
type SVD struct {
	// Randomized selects the approximate sketch-based factorization.
	Randomized bool
	// Components is the truncation rank of the randomized factorization.
	// Zero or negative means min(L, K).
	Components int
	// Seed drives the Gaussian sketch. Zero means a fixed default, so two
	// runs over the same matrix agree exactly.
	Seed uint64
}

// Factorize returns the singular triplets of x.
func (s SVD) Factorize(x *mat.Dense) (Triplets, error) {
	if !s.Randomized {
		return exactSVD(x)
	}
	return s.randomizedSVD(x)
}

func exactSVD(x *mat.Dense) (Triplets, error) {
	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return Triplets{}, ErrFactorization
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	return Triplets{U: &u, Sigma: svd.Values(nil), V: &v}, nil
}

func (s SVD) randomizedSVD(x *mat.Dense) (Triplets, error) {
	l, k := x.Dims()
	components := s.Components
	if components <= 0 || components > l {
		components = l
	}
	if components > k {
		components = k
	}

	seed := s.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}

	// Sketch the range of x with a K by n Gaussian test matrix.
	sketch := mat.NewDense(k, components, nil)
	for row := 0; row < k; row++ {
		for col := 0; col < components; col++ {
			sketch.Set(row, col, normal.Rand())
		}
	}
	var sample mat.Dense
	sample.Mul(x, sketch)

	// Orthonormalize the sample to obtain a basis q for the range.
	var qr mat.QR
	qr.Factorize(&sample)
	var full mat.Dense
	qr.QTo(&full)
	q := full.Slice(0, l, 0, components)

	// Factorize the small projected matrix and lift the left vectors back.
	var projected mat.Dense
	projected.Mul(q.T(), x)
	small, err := exactSVD(&projected)
	if err != nil {
		return Triplets{}, err
	}
	var u mat.Dense
	u.Mul(q, small.U)
	return Triplets{U: &u, Sigma: small.Sigma, V: small.V}, nil
}
