// Package essa decomposes a one-dimensional time series into additive
// components (trend, oscillatory modes, noise) through Singular Spectrum
// Analysis: the series is embedded into a trajectory matrix, factorized into
// singular triplets, and selected groups of the resulting rank-1 components
// are averaged back into series form.
//
// Two factorization methods are available. Exact and Randomized decompose
// the trajectory matrix directly; Toeplitz eigen-decomposes a Toeplitz
// autocovariance matrix and suits series that are approximately stationary
// within the window.
package essa

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/ProtonEvgeny/essa/covariance"
	"github.com/ProtonEvgeny/essa/decompose"
	"github.com/ProtonEvgeny/essa/embedding"
)

// Method selects the factorization strategy.
type Method int

const (
	// Exact computes the full singular value decomposition of the
	// trajectory matrix.
	Exact Method = iota
	// Randomized approximates the top components of the decomposition with
	// a Gaussian sketch, trading exactness for speed on large matrices.
	Randomized
	// Toeplitz eigen-decomposes the Toeplitz autocovariance matrix of the
	// centered series and projects the trajectory matrix onto its
	// eigenvectors.
	Toeplitz
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case Exact:
		return "exact"
	case Randomized:
		return "randomized"
	case Toeplitz:
		return "toeplitz"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Option configures an SSA instance at construction.
type Option func(*SSA)

// WithMethod selects the factorization method. The default is Exact.
func WithMethod(method Method) Option {
	return func(s *SSA) { s.method = method }
}

// WithComponents truncates the Randomized factorization to the top n
// triplets. It defaults to the window length and must not exceed it.
func WithComponents(n int) Option {
	return func(s *SSA) { s.components = n }
}

// WithSeed fixes the random source of the Randomized sketch, making repeated
// decompositions of the same instance identical.
func WithSeed(seed uint64) Option {
	return func(s *SSA) { s.seed = seed }
}

// SSA holds one decomposition run: the immutable series and window length,
// and, once Decompose has run, the derived trajectory matrix, singular
// triplets and elementary matrices. Instances are independent of each other;
// a single instance must not be decomposed from several goroutines at once.
type SSA struct {
	series     []float64
	window     int
	method     Method
	components int
	seed       uint64

	trajectory *mat.Dense
	triplets   decompose.Triplets
	elementary []*mat.Dense
	decomposed bool
}

// New validates the parameters and returns an SSA instance over a private
// copy of series. The window length must lie in [2, len(series)].
func New(series []float64, window int, opts ...Option) (*SSA, error) {
	n := len(series)
	if n < 2 {
		return nil, fmt.Errorf("%w: series length %v, need at least 2", ErrConfiguration, n)
	}
	if window < 2 || window > n {
		return nil, fmt.Errorf("%w: window %v outside [2, %v]", ErrConfiguration, window, n)
	}

	s := &SSA{
		series: append([]float64(nil), series...),
		window: window,
		method: Exact,
	}
	for _, opt := range opts {
		opt(s)
	}

	switch s.method {
	case Exact, Randomized, Toeplitz:
	default:
		return nil, fmt.Errorf("%w: unrecognized method %v", ErrConfiguration, s.method)
	}
	if s.components < 0 || s.components > window {
		return nil, fmt.Errorf("%w: components %v exceeds window %v", ErrConfiguration, s.components, window)
	}
	if s.components == 0 {
		s.components = window
	}
	return s, nil
}

// Decompose embeds the series, factorizes the trajectory matrix with the
// configured method and builds one elementary matrix per singular triplet.
// All derived state is recomputed in full on every call. The returned slice
// is ordered by non-increasing singular value.
func (s *SSA) Decompose() ([]*mat.Dense, error) {
	trajectory, err := embedding.BuildTrajectory(s.series, s.window)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	triplets, err := s.factorizer().Factorize(trajectory)
	if err != nil {
		return nil, err
	}

	s.trajectory = trajectory
	s.triplets = triplets
	s.elementary = decompose.Components(triplets)
	s.decomposed = true
	return s.elementary, nil
}

func (s *SSA) factorizer() decompose.Factorizer {
	switch s.method {
	case Randomized:
		return decompose.SVD{Randomized: true, Components: s.components, Seed: s.seed}
	case Toeplitz:
		covs := covariance.Autocovariance(covariance.Center(s.series), s.window)
		return decompose.Toeplitz{Cov: covariance.Toeplitz(covs)}
	default:
		return decompose.SVD{}
	}
}

// Reconstruct turns groups of elementary matrices back into series form,
// one reconstructed length-N series per group, in the order the groups were
// given. Each group's matrices are summed and diagonally averaged; groups do
// not share state, so reconstructing one group never affects another.
func (s *SSA) Reconstruct(groups ...[]int) ([][]float64, error) {
	if !s.decomposed {
		return nil, ErrState
	}

	rank := s.triplets.Rank()
	rows, cols := s.trajectory.Dims()
	reconstructed := make([][]float64, len(groups))
	for position, group := range groups {
		if len(group) == 0 {
			return nil, fmt.Errorf("%w: group %v is empty", ErrComponentIndex, position)
		}
		sum := mat.NewDense(rows, cols, nil)
		for _, index := range group {
			if index < 0 || index >= rank {
				return nil, fmt.Errorf("%w: index %v, rank %v", ErrComponentIndex, index, rank)
			}
			sum.Add(sum, s.elementary[index])
		}
		reconstructed[position] = embedding.DiagonalAverage(sum)
	}
	return reconstructed, nil
}

// Run is the one-shot form: Decompose followed by Reconstruct(groups).
func (s *SSA) Run(groups ...[]int) ([][]float64, error) {
	if _, err := s.Decompose(); err != nil {
		return nil, err
	}
	return s.Reconstruct(groups...)
}

// TrajectoryMatrix returns the L by K trajectory matrix of the last
// decomposition, or nil before Decompose has run.
func (s *SSA) TrajectoryMatrix() *mat.Dense {
	return s.trajectory
}

// LeftVectors returns the matrix whose columns are the left singular
// vectors, or nil before Decompose has run.
func (s *SSA) LeftVectors() *mat.Dense {
	return s.triplets.U
}

// RightVectors returns the matrix whose columns are the right singular
// vectors, or nil before Decompose has run.
func (s *SSA) RightVectors() *mat.Dense {
	return s.triplets.V
}

// SingularValues returns the singular values in non-increasing order, or nil
// before Decompose has run.
func (s *SSA) SingularValues() []float64 {
	return s.triplets.Sigma
}

// Rank returns the number of retained components of the last decomposition.
func (s *SSA) Rank() int {
	return s.triplets.Rank()
}

// Contributions returns the percentage variance contribution of each
// component, sigma_i^2 / sum(sigma^2) * 100, or nil before Decompose has run.
func (s *SSA) Contributions() []float64 {
	if !s.decomposed {
		return nil
	}
	var total float64
	for _, sigma := range s.triplets.Sigma {
		total += sigma * sigma
	}
	contributions := make([]float64, s.triplets.Rank())
	if total == 0 {
		return contributions
	}
	for index, sigma := range s.triplets.Sigma {
		contributions[index] = sigma * sigma / total * 100
	}
	return contributions
}
