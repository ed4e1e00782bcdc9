package solver

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// TailMean returns the mean of the worst floor(alpha * len) energies under
// a minimization objective, i.e. the highest-energy tail. A tail fraction
// that would select zero samples is clamped to one sample so the aggregate
// is always defined.
func TailMean(energies []float64, alpha float64) (float64, error) {
	if len(energies) == 0 {
		return 0, fmt.Errorf("cannot aggregate an empty energy batch")
	}
	if alpha <= 0 || alpha > 1 {
		return 0, fmt.Errorf("tail fraction must be in (0, 1], got %v", alpha)
	}

	sorted := make([]float64, len(energies))
	copy(sorted, energies)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	count := int(alpha * float64(len(sorted)))
	if count == 0 {
		count = 1
	}
	if count > len(sorted) {
		count = len(sorted)
	}

	return stat.Mean(sorted[:count], nil), nil
}
