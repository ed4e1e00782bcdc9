// Package quantum provides a parameterized-circuit description and a dense
// statevector simulator implementing the cost-oracle operations the solvers
// consume: expectation values of a spin observable and measurement sampling.
package quantum

import (
	"github.com/iwvelando/quantum-portfolio/internal/ising"
)

// GateKind enumerates the gate set the solvers build their ansatz from.
type GateKind int

const (
	// GateHadamard applies a Hadamard to Target.
	GateHadamard GateKind = iota
	// GateRX applies an X rotation by Theta to Target.
	GateRX
	// GateRY applies a Y rotation by Theta to Target.
	GateRY
	// GateRZ applies a Z rotation by Theta to Target.
	GateRZ
	// GateCZ applies a controlled-Z between Control and Target.
	GateCZ
	// GateProblem applies exp(-i * Theta * H) for the diagonal problem
	// Hamiltonian held in Problem.
	GateProblem
	// GateMixer applies exp(-i * Theta * sum_q X_q), one X rotation of
	// angle 2*Theta per qubit.
	GateMixer
)

// Gate is one operation in a circuit. Only the fields relevant to its Kind
// are meaningful.
type Gate struct {
	Kind    GateKind
	Target  int
	Control int
	Theta   float64
	Problem *ising.Hamiltonian
}

// Circuit is an ordered gate list over a fixed qubit register. Variable i of
// the originating model corresponds to qubit i, which in turn is bit i of a
// measured basis-state index.
type Circuit struct {
	Qubits int
	Gates  []Gate
}

// NewCircuit creates an empty circuit over the given register size.
func NewCircuit(qubits int) *Circuit {
	return &Circuit{Qubits: qubits}
}

// Hadamard appends a Hadamard on qubit q.
func (c *Circuit) Hadamard(q int) {
	c.Gates = append(c.Gates, Gate{Kind: GateHadamard, Target: q})
}

// RX appends an X rotation by theta on qubit q.
func (c *Circuit) RX(q int, theta float64) {
	c.Gates = append(c.Gates, Gate{Kind: GateRX, Target: q, Theta: theta})
}

// RY appends a Y rotation by theta on qubit q.
func (c *Circuit) RY(q int, theta float64) {
	c.Gates = append(c.Gates, Gate{Kind: GateRY, Target: q, Theta: theta})
}

// RZ appends a Z rotation by theta on qubit q.
func (c *Circuit) RZ(q int, theta float64) {
	c.Gates = append(c.Gates, Gate{Kind: GateRZ, Target: q, Theta: theta})
}

// CZ appends a controlled-Z between qubits a and b.
func (c *Circuit) CZ(a, b int) {
	c.Gates = append(c.Gates, Gate{Kind: GateCZ, Control: a, Target: b})
}

// EvolveProblem appends a diagonal evolution generated by the problem
// Hamiltonian for duration theta.
func (c *Circuit) EvolveProblem(ham *ising.Hamiltonian, theta float64) {
	c.Gates = append(c.Gates, Gate{Kind: GateProblem, Theta: theta, Problem: ham})
}

// EvolveMixer appends an evolution generated by the single-spin-flip mixer
// for duration theta.
func (c *Circuit) EvolveMixer(theta float64) {
	c.Gates = append(c.Gates, Gate{Kind: GateMixer, Theta: theta})
}
