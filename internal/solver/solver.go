// Package solver implements the portfolio QUBO solvers: a classical
// annealing baseline and three variational variants that share one
// optimization-loop skeleton and differ only in ansatz construction and
// cost policy.
package solver

import (
	"errors"

	"github.com/iwvelando/quantum-portfolio/internal/ising"
	"github.com/iwvelando/quantum-portfolio/internal/quantum"
	"github.com/iwvelando/quantum-portfolio/internal/qubo"
)

// ErrNumericalInstability indicates a non-finite cost or energy during
// optimization. The solve aborts; evaluations are never retried.
var ErrNumericalInstability = errors.New("non-finite cost during optimization")

// Oracle is the cost-oracle capability the variational solvers consume:
// expectation values of a spin observable under a circuit's state, and
// measurement sampling from that state.
type Oracle interface {
	Expectation(c *quantum.Circuit, ham *ising.Hamiltonian) (float64, error)
	Sample(c *quantum.Circuit, shots int) ([][]int, error)
}

// Solver is the common contract over the four variants.
type Solver interface {
	Name() string
	Solve(model *qubo.Model) (qubo.Solution, History, error)
}

// History records one (energy, parameter vector) pair per cost evaluation,
// in evaluation order. Energies are reported in the original QUBO scale so
// all variants are comparable. A History belongs to a single solve call.
type History struct {
	Energies []float64
	Params   [][]float64
}

func (h *History) append(energy float64, params []float64) {
	snapshot := make([]float64, len(params))
	copy(snapshot, params)
	h.Energies = append(h.Energies, energy)
	h.Params = append(h.Params, snapshot)
}

// Evaluations returns the number of cost evaluations recorded.
func (h History) Evaluations() int {
	return len(h.Energies)
}

// BestEnergy returns the lowest recorded energy, or ok=false for an empty
// history.
func (h History) BestEnergy() (float64, bool) {
	if len(h.Energies) == 0 {
		return 0, false
	}
	best := h.Energies[0]
	for _, e := range h.Energies[1:] {
		if e < best {
			best = e
		}
	}
	return best, true
}
