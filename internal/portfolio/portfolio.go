// Package portfolio defines the data structures describing a
// portfolio-selection problem instance and includes functions for generating
// sample instances.
package portfolio

import (
	"fmt"
	"math/rand"

	"github.com/iwvelando/quantum-portfolio/pkg/mathutil"
)

// Parameters holds one immutable problem instance. Arrays are indexed by
// security; Loadings and Targets are indexed [security][factor] and
// [bucket][factor] respectively.
type Parameters struct {
	Securities  int
	Price       []float64
	MinHolding  []float64
	MaxHolding  []float64
	Issuance    []float64
	Delta       []float64
	Loadings    [][]float64
	Targets     [][]float64
	RiskWeights []float64
	Buckets     [][]int
	MaxSelected int
	Weight      []float64
}

// Generate creates a sample problem instance with random but plausible data.
// All randomness comes from the provided generator so that a fixed seed
// reproduces the same instance.
func Generate(numSecurities int, rng *rand.Rand) (*Parameters, error) {
	if numSecurities <= 0 {
		return nil, fmt.Errorf("cannot generate a problem with %d securities", numSecurities)
	}

	p := &Parameters{
		Securities:  numSecurities,
		Price:       uniformSlice(rng, 90, 110, numSecurities),
		MinHolding:  uniformSlice(rng, 1, 5, numSecurities),
		Issuance:    uniformSlice(rng, 5, 15, numSecurities),
		Delta:       make([]float64, numSecurities),
		Loadings:    make([][]float64, numSecurities),
		Targets:     [][]float64{{uniform(rng, 5, 10)}},
		RiskWeights: []float64{1.0},
		MaxSelected: numSecurities / 2,
	}

	p.MaxHolding = make([]float64, numSecurities)
	for c := 0; c < numSecurities; c++ {
		p.MaxHolding[c] = p.MinHolding[c] + uniform(rng, 10, 20)
		p.Delta[c] = 1.0
		p.Loadings[c] = []float64{uniform(rng, -0.5, 1.5)}
	}

	// A single bucket covering every security.
	all := make([]int, numSecurities)
	for c := range all {
		all[c] = c
	}
	p.Buckets = [][]int{all}

	p.Weight = make([]float64, numSecurities)
	for c := 0; c < numSecurities; c++ {
		p.Weight[c] = (p.MinHolding[c] + mathutil.Min(p.MaxHolding[c], p.Issuance[c])) / (2 * p.Delta[c])
	}

	return p, nil
}

func uniform(rng *rand.Rand, low, high float64) float64 {
	return low + rng.Float64()*(high-low)
}

func uniformSlice(rng *rand.Rand, low, high float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = uniform(rng, low, high)
	}
	return out
}
