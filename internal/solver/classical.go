package solver

import (
	"math/rand"

	"github.com/iwvelando/quantum-portfolio/internal/anneal"
	"github.com/iwvelando/quantum-portfolio/internal/qubo"
	"github.com/iwvelando/quantum-portfolio/pkg/constants"
	"go.uber.org/zap"
)

// Classical is the stochastic annealing baseline. It produces no
// convergence history; only the best sample matters for comparison.
type Classical struct {
	logger *zap.Logger
	reads  int
	sweeps int
	rng    *rand.Rand
}

// NewClassical constructs the annealing baseline solver.
func NewClassical(logger *zap.Logger, reads, sweeps int, rng *rand.Rand) *Classical {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classical{logger: logger, reads: reads, sweeps: sweeps, rng: rng}
}

// Name returns the solver identifier.
func (s *Classical) Name() string {
	return constants.SolverClassical
}

// Solve samples the binary model directly and returns the lowest-energy
// assignment seen.
func (s *Classical) Solve(model *qubo.Model) (qubo.Solution, History, error) {
	solution, energy, err := anneal.SampleQUBO(model, s.reads, s.sweeps, s.rng)
	if err != nil {
		return nil, History{}, err
	}

	s.logger.Info("classical solve finished",
		zap.String("op", "solver.Classical.Solve"),
		zap.Float64("energy", energy),
		zap.Int("reads", s.reads),
	)
	return solution, History{}, nil
}
