// Package analysis decodes solver solutions into comparable metrics:
// objective value, selection count, and constraint standing.
package analysis

import (
	"strings"
	"time"

	"github.com/iwvelando/quantum-portfolio/internal/portfolio"
	"github.com/iwvelando/quantum-portfolio/internal/qubo"
	"github.com/iwvelando/quantum-portfolio/internal/solver"
)

// Metrics summarizes one solver run over one problem instance.
type Metrics struct {
	Solver              string
	Objective           float64
	BestEnergy          float64
	SelectedCount       int
	MaxSelected         int
	ConstraintSatisfied bool
	Evaluations         int
	Runtime             time.Duration
}

// Analyze scores a solution. The constraint flag is recomputed directly
// from the decision bits rather than trusted from the solver: a penalty
// that failed to dominate can legitimately produce violating solutions, and
// the report has to say so.
func Analyze(solverName string, sol qubo.Solution, model *qubo.Model, params *portfolio.Parameters, history solver.History, runtime time.Duration) (Metrics, error) {
	objective, err := model.Energy(sol)
	if err != nil {
		return Metrics{}, err
	}

	selected := SelectedCount(sol)

	best := objective
	if b, ok := history.BestEnergy(); ok {
		best = b
	}

	return Metrics{
		Solver:              solverName,
		Objective:           objective,
		BestEnergy:          best,
		SelectedCount:       selected,
		MaxSelected:         params.MaxSelected,
		ConstraintSatisfied: selected <= params.MaxSelected,
		Evaluations:         history.Evaluations(),
		Runtime:             runtime,
	}, nil
}

// SelectedCount counts the decision variables set to 1, ignoring slack
// bits.
func SelectedCount(sol qubo.Solution) int {
	count := 0
	for name, bit := range sol {
		if strings.HasPrefix(name, qubo.DecisionPrefix) && bit == 1 {
			count++
		}
	}
	return count
}
