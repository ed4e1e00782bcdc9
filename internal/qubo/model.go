// Package qubo defines the binary quadratic model produced from a portfolio
// problem instance and includes functions for encoding and evaluating it.
package qubo

import (
	"errors"
	"fmt"
)

// Sentinel errors for model construction and evaluation.
var (
	// ErrInvalidBound indicates a negative selection bound N.
	ErrInvalidBound = errors.New("selection bound must be non-negative")

	// ErrEmptyProblem indicates a problem instance with zero decision variables.
	ErrEmptyProblem = errors.New("problem has no decision variables")

	// ErrUnknownVariable indicates a coefficient referencing a variable that
	// is absent from the canonical variable order.
	ErrUnknownVariable = errors.New("coefficient references unknown variable")
)

// Pair identifies one quadratic term. A always precedes B in the canonical
// variable order, so each unordered pair is stored exactly once.
type Pair struct {
	A string
	B string
}

// Model is a binary quadratic form over an ordered variable list. Linear
// terms and quadratic terms are kept in separate maps so a diagonal
// coefficient can never be confused with a pairwise one. A Model is built
// once per problem instance and read-only afterward.
type Model struct {
	Variables []string
	Linear    map[string]float64
	Quadratic map[Pair]float64
	Offset    float64

	// PenaltyWeight records the constraint penalty chosen by the encoder,
	// kept for diagnostics.
	PenaltyWeight float64

	index map[string]int
}

// Solution maps each variable to its 0/1 assignment.
type Solution map[string]int

// NewModel constructs an empty model over the given variable order.
func NewModel(variables []string) *Model {
	m := &Model{
		Variables: variables,
		Linear:    make(map[string]float64),
		Quadratic: make(map[Pair]float64),
		index:     make(map[string]int, len(variables)),
	}
	for i, v := range variables {
		m.index[v] = i
	}
	return m
}

// Index returns the canonical position of the named variable.
func (m *Model) Index(name string) (int, error) {
	i, ok := m.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownVariable, name)
	}
	return i, nil
}

// NumVariables returns the length of the canonical variable list.
func (m *Model) NumVariables() int {
	return len(m.Variables)
}

// addLinear accumulates a diagonal coefficient for one variable.
func (m *Model) addLinear(name string, coeff float64) {
	m.Linear[name] += coeff
}

// addQuadratic accumulates a pairwise coefficient, normalizing the key so
// the lower-indexed variable comes first.
func (m *Model) addQuadratic(a, b string, coeff float64) {
	if m.index[a] > m.index[b] {
		a, b = b, a
	}
	m.Quadratic[Pair{A: a, B: b}] += coeff
}

// Energy evaluates the binary form, offset included, at the given
// assignment. Every model variable must be present in the solution.
func (m *Model) Energy(sol Solution) (float64, error) {
	bits := make([]int, len(m.Variables))
	for i, v := range m.Variables {
		bit, ok := sol[v]
		if !ok {
			return 0, fmt.Errorf("solution is missing variable %s", v)
		}
		bits[i] = bit
	}
	return m.EnergyBits(bits), nil
}

// EnergyBits evaluates the binary form at an assignment given in canonical
// variable order. It is the hot path for scoring sampled measurement
// outcomes, so it assumes len(bits) == len(m.Variables).
func (m *Model) EnergyBits(bits []int) float64 {
	energy := m.Offset
	for name, coeff := range m.Linear {
		if bits[m.index[name]] == 1 {
			energy += coeff
		}
	}
	for pair, coeff := range m.Quadratic {
		if bits[m.index[pair.A]] == 1 && bits[m.index[pair.B]] == 1 {
			energy += coeff
		}
	}
	return energy
}

// SolutionFromBits builds a Solution from an assignment in canonical
// variable order.
func (m *Model) SolutionFromBits(bits []int) Solution {
	sol := make(Solution, len(m.Variables))
	for i, v := range m.Variables {
		sol[v] = bits[i]
	}
	return sol
}
