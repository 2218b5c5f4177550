package essa

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ProtonEvgeny/essa/signal"
)

func sineSeries(n int, period float64) []float64 {
	return signal.Sample(signal.Sine(1, period, 0), n, 1)
}

func TestNewConfigurationErrors(t *testing.T) {
	series := sineSeries(100, 20)

	_, err := New([]float64{1}, 2)
	assert.ErrorIs(t, err, ErrConfiguration, "series too short")

	_, err = New(series, 1)
	assert.ErrorIs(t, err, ErrConfiguration, "window below 2")

	_, err = New(series, 101)
	assert.ErrorIs(t, err, ErrConfiguration, "window above N")

	_, err = New(series, 20, WithMethod(Method(99)))
	assert.ErrorIs(t, err, ErrConfiguration, "unrecognized method")

	_, err = New(series, 20, WithMethod(Randomized), WithComponents(21))
	assert.ErrorIs(t, err, ErrConfiguration, "components above window")

	_, err = New(series, 20, WithMethod(Randomized), WithComponents(20))
	assert.NoError(t, err)
}

func TestReconstructBeforeDecompose(t *testing.T) {
	s, err := New(sineSeries(50, 10), 10)
	require.NoError(t, err)

	_, err = s.Reconstruct([]int{0})
	assert.ErrorIs(t, err, ErrState)
}

func TestReconstructIndexOutOfRange(t *testing.T) {
	s, err := New(sineSeries(50, 10), 10)
	require.NoError(t, err)
	_, err = s.Decompose()
	require.NoError(t, err)

	_, err = s.Reconstruct([]int{10})
	assert.ErrorIs(t, err, ErrComponentIndex)

	_, err = s.Reconstruct([]int{-1})
	assert.ErrorIs(t, err, ErrComponentIndex)
}

func TestFullGroupReproducesSeries(t *testing.T) {
	series := signal.Sample(signal.Sum(
		signal.Trend(0.05),
		signal.Sine(1, 20, 0.3),
		signal.Noise(0.2, 3),
	), 120, 1)

	for _, method := range []Method{Exact, Toeplitz} {
		s, err := New(series, 24, WithMethod(method))
		require.NoError(t, err)
		_, err = s.Decompose()
		require.NoError(t, err)

		all := make([]int, s.Rank())
		for index := range all {
			all[index] = index
		}
		reconstructed, err := s.Reconstruct(all)
		require.NoError(t, err)
		require.Len(t, reconstructed, 1)
		require.Len(t, reconstructed[0], len(series))

		for index := range series {
			assert.InDelta(t, series[index], reconstructed[0][index], 1e-9,
				"method %v, index %v", method, index)
		}
	}
}

func TestReconstructionAdditivity(t *testing.T) {
	series := signal.Sample(signal.Sum(
		signal.Sine(1, 12, 0),
		signal.Sine(0.4, 5, 1),
		signal.Noise(0.1, 11),
	), 90, 1)

	s, err := New(series, 18)
	require.NoError(t, err)
	_, err = s.Decompose()
	require.NoError(t, err)

	all := make([]int, s.Rank())
	for index := range all {
		all[index] = index
	}
	full, err := s.Reconstruct(all)
	require.NoError(t, err)

	// Disjoint groups covering all indices must sum to the full-group result.
	parts, err := s.Reconstruct(all[:3], all[3:7], all[7:])
	require.NoError(t, err)
	require.Len(t, parts, 3)

	for index := range series {
		sum := parts[0][index] + parts[1][index] + parts[2][index]
		assert.InDelta(t, full[0][index], sum, 1e-9, "index %v", index)
	}
}

func TestSingularValuesNonIncreasing(t *testing.T) {
	series := signal.Sample(signal.Sum(
		signal.Trend(0.02),
		signal.Sine(1, 14, 0),
		signal.Noise(0.3, 5),
	), 100, 1)

	for _, method := range []Method{Exact, Randomized, Toeplitz} {
		s, err := New(series, 20, WithMethod(method))
		require.NoError(t, err)
		_, err = s.Decompose()
		require.NoError(t, err)

		values := s.SingularValues()
		require.NotEmpty(t, values)
		for index := 1; index < len(values); index++ {
			assert.GreaterOrEqual(t, values[index-1], values[index], "method %v", method)
		}
		for _, value := range values {
			assert.GreaterOrEqual(t, value, 0., "method %v", method)
		}
	}
}

func TestPureSinusoidLeadingPair(t *testing.T) {
	// sin(2 pi t / 20) for t = 0..99 with a matching window concentrates in
	// the leading pair of components.
	series := make([]float64, 100)
	for index := range series {
		series[index] = math.Sin(2 * math.Pi * float64(index) / 20)
	}

	s, err := New(series, 20)
	require.NoError(t, err)
	_, err = s.Decompose()
	require.NoError(t, err)

	contributions := s.Contributions()
	require.GreaterOrEqual(t, len(contributions), 2)
	assert.Greater(t, contributions[0]+contributions[1], 90.)

	var total float64
	for _, contribution := range contributions {
		total += contribution
	}
	assert.InDelta(t, 100, total, 1e-9)

	reconstructed, err := s.Reconstruct([]int{0, 1})
	require.NoError(t, err)
	for index := range series {
		assert.InDelta(t, series[index], reconstructed[0][index], 0.05, "index %v", index)
	}
}

func TestRunOneShot(t *testing.T) {
	series := signal.Sample(signal.Sum(
		signal.Trend(0.1),
		signal.Sine(1, 10, 0),
	), 80, 1)

	s, err := New(series, 16)
	require.NoError(t, err)

	reconstructed, err := s.Run([]int{0}, []int{1, 2})
	require.NoError(t, err)
	require.Len(t, reconstructed, 2)
	assert.Len(t, reconstructed[0], len(series))
	assert.Len(t, reconstructed[1], len(series))

	assert.NotNil(t, s.TrajectoryMatrix())
	assert.NotNil(t, s.LeftVectors())
	assert.NotNil(t, s.RightVectors())
	assert.Equal(t, 16, s.Rank())
}

func TestInstancesIndependent(t *testing.T) {
	series := signal.Sample(signal.Sine(1, 10, 0), 60, 1)

	first, err := New(series, 10)
	require.NoError(t, err)
	second, err := New(series, 10, WithMethod(Toeplitz))
	require.NoError(t, err)

	_, err = first.Decompose()
	require.NoError(t, err)
	_, err = second.Decompose()
	require.NoError(t, err)

	a, err := first.Reconstruct([]int{0, 1})
	require.NoError(t, err)
	b, err := first.Reconstruct([]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, a, b, "repeated reconstruction shares no mutable state")
}

func TestDecomposeRecomputes(t *testing.T) {
	series := signal.Sample(signal.Sum(signal.Sine(1, 8, 0), signal.Noise(0.1, 9)), 64, 1)

	s, err := New(series, 16, WithMethod(Randomized), WithComponents(6), WithSeed(21))
	require.NoError(t, err)

	first, err := s.Decompose()
	require.NoError(t, err)
	second, err := s.Decompose()
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	assert.Equal(t, 6, s.Rank())
	for index := range first {
		assert.True(t, mat.Equal(first[index], second[index]), "component %v", index)
	}
}
