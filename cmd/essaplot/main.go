// Command essaplot decomposes a synthetic trend + seasonal + noise series
// with both factorization paths, saves the reconstructed components and the
// leading eigenvectors as PNG files, and prints the variance contributions.
//
// Usage: essaplot [series length] [window length]
package main

import (
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/ProtonEvgeny/essa"
	"github.com/ProtonEvgeny/essa/signal"
)

func main() {
	n, window := 500, 60
	var err error
	if len(os.Args) > 1 {
		if n, err = strconv.Atoi(os.Args[1]); err != nil {
			panic("series length not an integer")
		}
	}
	if len(os.Args) > 2 {
		if window, err = strconv.Atoi(os.Args[2]); err != nil {
			panic("window length not an integer")
		}
	}

	series := signal.Sample(signal.Sum(
		signal.Trend(0.01),
		signal.Sine(2, 100, 0),
		signal.Sine(1.5, 35, 0.5),
		signal.Noise(0.5, 42),
	), n, 1)

	s, err := essa.New(series, window)
	if err != nil {
		fail(err)
	}
	if _, err = s.Decompose(); err != nil {
		fail(err)
	}

	noise := make([]int, 0, s.Rank()-6)
	for index := 6; index < s.Rank(); index++ {
		noise = append(noise, index)
	}
	groups, err := s.Reconstruct([]int{0, 1}, []int{2, 3, 4, 5}, noise)
	if err != nil {
		fail(err)
	}

	fmt.Println("Leading variance contributions (%):")
	for index, contribution := range s.Contributions()[:8] {
		fmt.Printf("  component %v: %6.2f\n", index, contribution)
	}

	if err = plotComponents(series, groups); err != nil {
		fail(err)
	}
	if err = plotEigenvectors(series, window); err != nil {
		fail(err)
	}
}

func plotComponents(series []float64, groups [][]float64) error {
	p := plot.New()
	p.Title.Text = "SSA decomposition"
	p.X.Label.Text = "t"
	if err := plotutil.AddLines(p,
		"series", xys(series),
		"trend", xys(groups[0]),
		"seasonal", xys(groups[1]),
		"noise", xys(groups[2]),
	); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, "components.png")
}

// plotEigenvectors compares the leading left vectors of the Toeplitz path
// against the direct decomposition.
func plotEigenvectors(series []float64, window int) error {
	s, err := essa.New(series, window, essa.WithMethod(essa.Toeplitz))
	if err != nil {
		return err
	}
	if _, err = s.Decompose(); err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Leading eigenvectors (Toeplitz path)"
	contributions := s.Contributions()
	vectors := s.LeftVectors()
	lines := make([]interface{}, 0, 8)
	for index := 0; index < 4; index++ {
		column := make([]float64, window)
		for row := 0; row < window; row++ {
			column[row] = vectors.At(row, index)
		}
		lines = append(lines,
			fmt.Sprintf("%v (%.2f%%)", index+1, contributions[index]), xys(column))
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, "eigenvectors.png")
}

func xys(series []float64) plotter.XYs {
	points := make(plotter.XYs, len(series))
	for index, value := range series {
		points[index].X = float64(index)
		points[index].Y = value
	}
	return points
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
