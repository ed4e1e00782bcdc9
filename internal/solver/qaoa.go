package solver

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/iwvelando/quantum-portfolio/internal/ising"
	"github.com/iwvelando/quantum-portfolio/internal/quantum"
	"github.com/iwvelando/quantum-portfolio/internal/qubo"
	"github.com/iwvelando/quantum-portfolio/pkg/constants"
	"go.uber.org/zap"
)

// QAOA is the alternating-operator solver: a layered evolution alternating
// between the problem Hamiltonian and a single-spin-flip mixer.
type QAOA struct {
	core   variationalCore
	layers int
}

// NewQAOA constructs the alternating-operator solver with p layers.
func NewQAOA(logger *zap.Logger, oracle Oracle, layers, maxIter, shots int, rng *rand.Rand) *QAOA {
	return &QAOA{
		core:   newVariationalCore(logger, oracle, maxIter, shots, rng),
		layers: layers,
	}
}

// Name returns the solver identifier.
func (s *QAOA) Name() string {
	return constants.SolverQAOA
}

// Solve runs the shared variational loop over 2p parameters laid out as all
// p problem couplings first, then all p mixer couplings. The optimizer's
// parameter vector encodes this layout positionally, so the split is fixed.
func (s *QAOA) Solve(model *qubo.Model) (qubo.Solution, History, error) {
	if s.layers <= 0 {
		return nil, History{}, fmt.Errorf("layer count must be positive, got %d", s.layers)
	}
	ham, err := ising.Transform(model)
	if err != nil {
		return nil, History{}, fmt.Errorf("spin transform failed: %w", err)
	}
	numQubits := model.NumVariables()
	ansatz := func(params []float64) *quantum.Circuit {
		return alternatingAnsatz(numQubits, s.layers, ham, params)
	}

	cost := func(params []float64) (float64, error) {
		return s.core.oracle.Expectation(ansatz(params), ham)
	}

	optimal, history, err := s.core.minimize(2*s.layers, math.Pi, cost, ham.Offset)
	if err != nil {
		return nil, history, err
	}

	solution, err := s.core.extract(ansatz(optimal), model)
	if err != nil {
		return nil, history, err
	}

	if best, ok := history.BestEnergy(); ok {
		s.core.logger.Info("qaoa solve finished",
			zap.String("op", "solver.QAOA.Solve"),
			zap.Int("layers", s.layers),
			zap.Float64("bestEnergy", best),
			zap.Int("evaluations", history.Evaluations()),
		)
	}
	return solution, history, nil
}

// alternatingAnsatz prepares a uniform superposition and then applies, per
// layer in order, a problem evolution for that layer's gamma followed by a
// mixer evolution for that layer's beta.
func alternatingAnsatz(numQubits, layers int, ham *ising.Hamiltonian, params []float64) *quantum.Circuit {
	gammas := params[:layers]
	betas := params[layers:]

	circuit := quantum.NewCircuit(numQubits)
	for q := 0; q < numQubits; q++ {
		circuit.Hadamard(q)
	}
	for layer := 0; layer < layers; layer++ {
		circuit.EvolveProblem(ham, gammas[layer])
		circuit.EvolveMixer(betas[layer])
	}
	return circuit
}
