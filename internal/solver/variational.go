package solver

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/iwvelando/quantum-portfolio/internal/quantum"
	"github.com/iwvelando/quantum-portfolio/internal/qubo"
	"github.com/iwvelando/quantum-portfolio/pkg/mathutil"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/optimize"
)

// ansatzFunc builds the parameterized circuit for one parameter vector.
type ansatzFunc func(params []float64) *quantum.Circuit

// costFunc evaluates one parameter vector through the oracle.
type costFunc func(params []float64) (float64, error)

// variationalCore is the shared skeleton of the variational variants: a
// derivative-free minimization over rotation angles where every evaluation
// is one oracle call, followed by majority-vote solution extraction.
type variationalCore struct {
	logger  *zap.Logger
	oracle  Oracle
	maxIter int
	shots   int
	rng     *rand.Rand
}

func newVariationalCore(logger *zap.Logger, oracle Oracle, maxIter, shots int, rng *rand.Rand) variationalCore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return variationalCore{
		logger:  logger,
		oracle:  oracle,
		maxIter: maxIter,
		shots:   shots,
		rng:     rng,
	}
}

// randomParams draws the initial parameter vector uniformly from
// [0, limit).
func (v *variationalCore) randomParams(numParams int, limit float64) []float64 {
	params := make([]float64, numParams)
	for i := range params {
		params[i] = v.rng.Float64() * limit
	}
	return params
}

// minimize drives the classical optimizer over the cost function. The
// budget caps function evaluations; history records every evaluation with
// historyShift added so recorded energies live in the original QUBO scale.
// A non-finite cost latches the failure and poisons the remaining
// evaluations; the solve aborts once the optimizer returns.
func (v *variationalCore) minimize(numParams int, initLimit float64, evaluate costFunc, historyShift float64) ([]float64, History, error) {
	history := History{}
	var evalErr error

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			if evalErr != nil {
				return math.Inf(1)
			}
			cost, err := evaluate(x)
			if err != nil {
				evalErr = fmt.Errorf("%w: evaluation %d: %v", ErrNumericalInstability, history.Evaluations()+1, err)
				return math.Inf(1)
			}
			if !mathutil.IsFinite(cost) {
				evalErr = fmt.Errorf("%w: evaluation %d returned %v", ErrNumericalInstability, history.Evaluations()+1, cost)
				return math.Inf(1)
			}
			history.append(cost+historyShift, x)
			return cost
		},
	}

	initial := v.randomParams(numParams, initLimit)
	settings := &optimize.Settings{FuncEvaluations: v.maxIter}
	result, err := optimize.Minimize(problem, initial, settings, &optimize.NelderMead{})
	if evalErr != nil {
		return nil, history, evalErr
	}
	if err != nil {
		return nil, history, fmt.Errorf("optimizer failed: %w", err)
	}

	v.logger.Debug("optimization finished",
		zap.String("op", "solver.minimize"),
		zap.Int("evaluations", history.Evaluations()),
		zap.String("status", result.Status.String()),
	)

	return result.X, history, nil
}

// extract measures the final state repeatedly and selects the most frequent
// outcome. Ties keep the first-encountered outcome, which is deterministic
// for a fixed sampling order.
func (v *variationalCore) extract(circuit *quantum.Circuit, model *qubo.Model) (qubo.Solution, error) {
	outcomes, err := v.oracle.Sample(circuit, v.shots)
	if err != nil {
		return nil, fmt.Errorf("final sampling failed: %w", err)
	}

	counts := make(map[string]int)
	var modeKey string
	modeCount := 0
	for _, bits := range outcomes {
		key := bitsKey(bits)
		counts[key]++
		if counts[key] > modeCount {
			modeCount = counts[key]
			modeKey = key
		}
	}

	bits := make([]int, len(modeKey))
	for i := range modeKey {
		bits[i] = int(modeKey[i] - '0')
	}
	return model.SolutionFromBits(bits), nil
}

func bitsKey(bits []int) string {
	key := make([]byte, len(bits))
	for i, b := range bits {
		key[i] = byte('0' + b)
	}
	return string(key)
}
