package qubo

import (
	"fmt"
	"math"

	"github.com/iwvelando/quantum-portfolio/internal/portfolio"
	"gonum.org/v1/gonum/floats"
)

// Variable name prefixes in the canonical order: decision variables first,
// then slack bits.
const (
	DecisionPrefix = "y"
	SlackPrefix    = "s"
)

// term is one weighted variable inside a squared linear form.
type term struct {
	name  string
	coeff float64
}

// Build encodes a problem instance into a binary quadratic model. The
// objective expands each target/exposure pair as a squared linear form over
// the decision variables; the selection bound is enforced by a penalized
// slack-bit equality whose weight dominates every unpenalized coefficient.
func Build(params *portfolio.Parameters) (*Model, error) {
	if params == nil || params.Securities == 0 {
		return nil, ErrEmptyProblem
	}
	if params.MaxSelected < 0 {
		return nil, fmt.Errorf("%w: N=%d", ErrInvalidBound, params.MaxSelected)
	}

	numSlack := bitLength(params.MaxSelected)
	variables := make([]string, 0, params.Securities+numSlack)
	for c := 0; c < params.Securities; c++ {
		variables = append(variables, fmt.Sprintf("%s%d", DecisionPrefix, c))
	}
	for k := 0; k < numSlack; k++ {
		variables = append(variables, fmt.Sprintf("%s%d", SlackPrefix, k))
	}

	m := NewModel(variables)

	// Objective: for each bucket l and factor j, expand
	// rho_j * (sum_c beta_cj * A_c * y_c - K_lj)^2.
	for l, bucket := range params.Buckets {
		for j, rho := range params.RiskWeights {
			terms := make([]term, 0, len(bucket))
			for _, c := range bucket {
				terms = append(terms, term{
					name:  variables[c],
					coeff: params.Loadings[c][j] * params.Weight[c],
				})
			}
			m.addSquaredForm(rho, terms, -params.Targets[l][j])
		}
	}

	// The penalty must dominate any single objective term, so it is sized
	// from the unpenalized coefficients before the constraint is added.
	m.PenaltyWeight = 2 * maxAbsCoefficient(m)

	// Constraint: sum_c y_c + sum_k 2^k s_k = N, slack bits absorbing the
	// inequality headroom.
	constraint := make([]term, 0, params.Securities+numSlack)
	for c := 0; c < params.Securities; c++ {
		constraint = append(constraint, term{name: variables[c], coeff: 1})
	}
	for k := 0; k < numSlack; k++ {
		constraint = append(constraint, term{
			name:  variables[params.Securities+k],
			coeff: math.Pow(2, float64(k)),
		})
	}
	m.addSquaredForm(m.PenaltyWeight, constraint, -float64(params.MaxSelected))

	return m, nil
}

// addSquaredForm expands weight * (sum_i a_i x_i + constant)^2 over binary
// variables and merges the resulting coefficients into the model. Squared
// binary variables collapse to linear terms.
func (m *Model) addSquaredForm(weight float64, terms []term, constant float64) {
	for i, t := range terms {
		m.addLinear(t.name, weight*(t.coeff*t.coeff+2*constant*t.coeff))
		for _, u := range terms[i+1:] {
			m.addQuadratic(t.name, u.name, weight*2*t.coeff*u.coeff)
		}
	}
	m.Offset += weight * constant * constant
}

// maxAbsCoefficient returns the largest coefficient magnitude currently in
// the model, zero for an empty coefficient map.
func maxAbsCoefficient(m *Model) float64 {
	magnitudes := make([]float64, 0, len(m.Linear)+len(m.Quadratic))
	for _, c := range m.Linear {
		magnitudes = append(magnitudes, math.Abs(c))
	}
	for _, c := range m.Quadratic {
		magnitudes = append(magnitudes, math.Abs(c))
	}
	if len(magnitudes) == 0 {
		return 0
	}
	return floats.Max(magnitudes)
}

// bitLength returns the number of slack bits needed to represent integers
// in [0, N], i.e. the bit length of N.
func bitLength(n int) int {
	length := 0
	for n > 0 {
		length++
		n >>= 1
	}
	return length
}
