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

// VQE minimizes the plain expectation value of the spin Hamiltonian under a
// hardware-efficient ansatz.
type VQE struct {
	core variationalCore
}

// NewVQE constructs the expectation-based variational solver.
func NewVQE(logger *zap.Logger, oracle Oracle, maxIter, shots int, rng *rand.Rand) *VQE {
	return &VQE{core: newVariationalCore(logger, oracle, maxIter, shots, rng)}
}

// Name returns the solver identifier.
func (s *VQE) Name() string {
	return constants.SolverVQE
}

// Solve transforms the model to its spin form and runs the shared
// variational loop with the expectation cost policy.
func (s *VQE) Solve(model *qubo.Model) (qubo.Solution, History, error) {
	ham, err := ising.Transform(model)
	if err != nil {
		return nil, History{}, fmt.Errorf("spin transform failed: %w", err)
	}
	numQubits := model.NumVariables()
	ansatz := func(params []float64) *quantum.Circuit {
		return hardwareEfficientAnsatz(numQubits, params)
	}

	cost := func(params []float64) (float64, error) {
		return s.core.oracle.Expectation(ansatz(params), ham)
	}

	optimal, history, err := s.core.minimize(2*numQubits, 2*math.Pi, cost, ham.Offset)
	if err != nil {
		return nil, history, err
	}

	solution, err := s.core.extract(ansatz(optimal), model)
	if err != nil {
		return nil, history, err
	}

	if best, ok := history.BestEnergy(); ok {
		s.core.logger.Info("vqe solve finished",
			zap.String("op", "solver.VQE.Solve"),
			zap.Float64("bestEnergy", best),
			zap.Int("evaluations", history.Evaluations()),
		)
	}
	return solution, history, nil
}

// hardwareEfficientAnsatz lays a Y then Z rotation on every qubit followed
// by a chain of controlled-Z entanglers. Parameters 2i and 2i+1 belong to
// qubit i.
func hardwareEfficientAnsatz(numQubits int, params []float64) *quantum.Circuit {
	circuit := quantum.NewCircuit(numQubits)
	for q := 0; q < numQubits; q++ {
		circuit.RY(q, params[2*q])
		circuit.RZ(q, params[2*q+1])
	}
	for q := 0; q < numQubits-1; q++ {
		circuit.CZ(q, q+1)
	}
	return circuit
}
