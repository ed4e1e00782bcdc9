// Package ising converts a binary quadratic model into its spin
// representation and includes functions for evaluating spin energies.
package ising

import (
	"fmt"

	"github.com/iwvelando/quantum-portfolio/internal/qubo"
	"github.com/iwvelando/quantum-portfolio/pkg/mathutil"
)

// Pair identifies one pairwise coupling, with I < J in the canonical
// variable order.
type Pair struct {
	I int
	J int
}

// Hamiltonian is the spin form of a binary quadratic model. H holds the
// single-spin coefficients indexed by the model's variable order, J the
// pairwise couplings, and Offset the constant shift that makes the spin
// energy equal the binary energy under s_i = 1 - 2*x_i.
type Hamiltonian struct {
	H      []float64
	J      map[Pair]float64
	Offset float64
}

// Transform rewrites the binary form over spins via x_i = (1 - s_i) / 2.
// Coefficients whose spin-side magnitude falls below the numeric tolerance
// are pruned from the term set; the offset keeps its exact value.
func Transform(m *qubo.Model) (*Hamiltonian, error) {
	ham := &Hamiltonian{
		H:      make([]float64, m.NumVariables()),
		J:      make(map[Pair]float64),
		Offset: m.Offset,
	}

	for name, coeff := range m.Linear {
		i, err := m.Index(name)
		if err != nil {
			return nil, fmt.Errorf("linear term: %w", err)
		}
		ham.Offset += coeff / 2
		ham.H[i] -= coeff / 2
	}

	for pair, coeff := range m.Quadratic {
		i, err := m.Index(pair.A)
		if err != nil {
			return nil, fmt.Errorf("quadratic term: %w", err)
		}
		j, err := m.Index(pair.B)
		if err != nil {
			return nil, fmt.Errorf("quadratic term: %w", err)
		}
		if i > j {
			i, j = j, i
		}
		ham.Offset += coeff / 4
		ham.H[i] -= coeff / 4
		ham.H[j] -= coeff / 4
		ham.J[Pair{I: i, J: j}] += coeff / 4
	}

	for i, h := range ham.H {
		if mathutil.IsZero(h) {
			ham.H[i] = 0
		}
	}
	for pair, j := range ham.J {
		if mathutil.IsZero(j) {
			delete(ham.J, pair)
		}
	}

	return ham, nil
}

// NumSpins returns the spin count.
func (ham *Hamiltonian) NumSpins() int {
	return len(ham.H)
}

// TermEnergy evaluates the h and J terms at the given +-1 spin assignment,
// excluding the constant offset. This is the quantity a measurement of the
// spin observable reports.
func (ham *Hamiltonian) TermEnergy(spins []int) float64 {
	energy := 0.0
	for i, h := range ham.H {
		energy += h * float64(spins[i])
	}
	for pair, j := range ham.J {
		energy += j * float64(spins[pair.I]*spins[pair.J])
	}
	return energy
}

// Energy evaluates the full spin form, offset included.
func (ham *Hamiltonian) Energy(spins []int) float64 {
	return ham.Offset + ham.TermEnergy(spins)
}

// SpinsFromBits converts a 0/1 assignment into the +-1 convention used by
// the spin form.
func SpinsFromBits(bits []int) []int {
	spins := make([]int, len(bits))
	for i, b := range bits {
		spins[i] = 1 - 2*b
	}
	return spins
}
