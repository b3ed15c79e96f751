package train

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrEmptyDataset is returned when a dataset has no samples.
var ErrEmptyDataset = errors.New("empty dataset")

// Dataset is a set of feature vectors with labels in {-1, +1}.
type Dataset struct {
	X [][]float64
	Y []float64
}

// Len returns the number of samples.
func (d Dataset) Len() int {
	return len(d.Y)
}

// Features returns the width of a feature vector.
func (d Dataset) Features() int {
	if len(d.X) == 0 {
		return 0
	}
	return len(d.X[0])
}

// Validate checks that the dataset is non-empty and rectangular.
func (d Dataset) Validate() error {
	if len(d.X) == 0 {
		return ErrEmptyDataset
	}
	if len(d.X) != len(d.Y) {
		return fmt.Errorf("dataset: %d feature rows, %d labels", len(d.X), len(d.Y))
	}
	width := len(d.X[0])
	for i, x := range d.X {
		if len(x) != width {
			return fmt.Errorf("dataset: row %d has %d features, want %d", i, len(x), width)
		}
	}
	return nil
}

// TwoBlobs generates n points in two Gaussian clusters centered at (-1, -1)
// (label -1) and (1, 1) (label +1). Samples alternate between the clusters.
func TwoBlobs(n int, spread float64, seed int64) Dataset {
	//nolint:gosec // Using math/rand for toy data (not security-critical)
	rng := rand.New(rand.NewSource(seed))

	ds := Dataset{
		X: make([][]float64, n),
		Y: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		label := 1.0
		if i%2 == 0 {
			label = -1.0
		}
		ds.X[i] = []float64{
			label + rng.NormFloat64()*spread,
			label + rng.NormFloat64()*spread,
		}
		ds.Y[i] = label
	}
	return ds
}
