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

// CVaRVQE is the risk-averse variational solver. Instead of the plain
// expectation it samples the ansatz state and minimizes the mean of the
// worst fraction of the measured bitstring energies, scored against the
// original binary form.
type CVaRVQE struct {
	core        variationalCore
	alpha       float64
	sampleShots int
}

// NewCVaRVQE constructs the tail-aggregated variational solver.
func NewCVaRVQE(logger *zap.Logger, oracle Oracle, alpha float64, maxIter, shots int, rng *rand.Rand) *CVaRVQE {
	return &CVaRVQE{
		core:        newVariationalCore(logger, oracle, maxIter, shots, rng),
		alpha:       alpha,
		sampleShots: constants.CVaRSampleShots,
	}
}

// Name returns the solver identifier.
func (s *CVaRVQE) Name() string {
	return constants.SolverCVaR
}

// Solve runs the shared variational loop with the tail-conditional cost
// policy. Sampled bitstrings are scored with the binary model, offset
// included, so the recorded energies are already in the original scale.
func (s *CVaRVQE) Solve(model *qubo.Model) (qubo.Solution, History, error) {
	if _, err := ising.Transform(model); err != nil {
		return nil, History{}, fmt.Errorf("spin transform failed: %w", err)
	}
	numQubits := model.NumVariables()
	ansatz := func(params []float64) *quantum.Circuit {
		return hardwareEfficientAnsatz(numQubits, params)
	}

	cost := func(params []float64) (float64, error) {
		outcomes, err := s.core.oracle.Sample(ansatz(params), s.sampleShots)
		if err != nil {
			return 0, err
		}
		energies := make([]float64, len(outcomes))
		for i, bits := range outcomes {
			energies[i] = model.EnergyBits(bits)
		}
		return TailMean(energies, s.alpha)
	}

	optimal, history, err := s.core.minimize(2*numQubits, 2*math.Pi, cost, 0)
	if err != nil {
		return nil, history, err
	}

	solution, err := s.core.extract(ansatz(optimal), model)
	if err != nil {
		return nil, history, err
	}

	if best, ok := history.BestEnergy(); ok {
		s.core.logger.Info("cvar solve finished",
			zap.String("op", "solver.CVaRVQE.Solve"),
			zap.Float64("alpha", s.alpha),
			zap.Float64("bestTailEnergy", best),
			zap.Int("evaluations", history.Evaluations()),
		)
	}
	return solution, history, nil
}
