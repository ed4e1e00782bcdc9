package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/iwvelando/quantum-portfolio/internal/ising"
)

// maxQubits caps the register size; the statevector is dense and grows as
// 2^n.
const maxQubits = 24

// Simulator evolves dense statevectors. Sampling draws come from the seeded
// generator supplied at construction, so a fixed seed reproduces the same
// measurement outcomes.
type Simulator struct {
	rng *rand.Rand
}

// NewSimulator constructs a Simulator around the provided generator.
func NewSimulator(rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	return &Simulator{rng: rng}
}

// Expectation runs the circuit and returns the expectation value of the
// spin observable, excluding its constant offset.
func (s *Simulator) Expectation(c *Circuit, ham *ising.Hamiltonian) (float64, error) {
	if ham.NumSpins() != c.Qubits {
		return 0, fmt.Errorf("observable has %d spins but circuit has %d qubits", ham.NumSpins(), c.Qubits)
	}
	state, err := s.run(c)
	if err != nil {
		return 0, err
	}

	energies := basisTermEnergies(ham, c.Qubits)
	expectation := 0.0
	for idx, amp := range state {
		p := real(amp)*real(amp) + imag(amp)*imag(amp)
		expectation += p * energies[idx]
	}
	return expectation, nil
}

// Sample runs the circuit and draws measurement outcomes in the computational
// basis. Each outcome is returned as a bit slice indexed by qubit.
func (s *Simulator) Sample(c *Circuit, shots int) ([][]int, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("shot count must be positive, got %d", shots)
	}
	state, err := s.run(c)
	if err != nil {
		return nil, err
	}

	probs := make([]float64, len(state))
	total := 0.0
	for idx, amp := range state {
		p := real(amp)*real(amp) + imag(amp)*imag(amp)
		probs[idx] = p
		total += p
	}
	if total <= 0 || math.IsNaN(total) {
		return nil, fmt.Errorf("state norm is not positive: %v", total)
	}

	outcomes := make([][]int, shots)
	for shot := 0; shot < shots; shot++ {
		r := s.rng.Float64() * total
		idx := len(probs) - 1
		for i, p := range probs {
			r -= p
			if r <= 0 {
				idx = i
				break
			}
		}
		outcomes[shot] = bitsOf(idx, c.Qubits)
	}
	return outcomes, nil
}

// run evolves |0...0> through the circuit's gate list.
func (s *Simulator) run(c *Circuit) ([]complex128, error) {
	if c.Qubits <= 0 {
		return nil, fmt.Errorf("circuit must have at least one qubit")
	}
	if c.Qubits > maxQubits {
		return nil, fmt.Errorf("circuit has %d qubits, statevector limit is %d", c.Qubits, maxQubits)
	}

	state := make([]complex128, 1<<c.Qubits)
	state[0] = 1

	for _, g := range c.Gates {
		switch g.Kind {
		case GateHadamard:
			h := complex(1/math.Sqrt2, 0)
			applySingle(state, g.Target, h, h, h, -h)
		case GateRX:
			cos := complex(math.Cos(g.Theta/2), 0)
			isin := complex(0, -math.Sin(g.Theta/2))
			applySingle(state, g.Target, cos, isin, isin, cos)
		case GateRY:
			cos := complex(math.Cos(g.Theta/2), 0)
			sin := complex(math.Sin(g.Theta/2), 0)
			applySingle(state, g.Target, cos, -sin, sin, cos)
		case GateRZ:
			applySingle(state, g.Target,
				cmplx.Exp(complex(0, -g.Theta/2)), 0,
				0, cmplx.Exp(complex(0, g.Theta/2)))
		case GateCZ:
			maskA := 1 << g.Control
			maskB := 1 << g.Target
			for idx := range state {
				if idx&maskA != 0 && idx&maskB != 0 {
					state[idx] = -state[idx]
				}
			}
		case GateProblem:
			if g.Problem == nil {
				return nil, fmt.Errorf("problem evolution gate has no Hamiltonian")
			}
			if g.Problem.NumSpins() != c.Qubits {
				return nil, fmt.Errorf("problem Hamiltonian has %d spins but circuit has %d qubits", g.Problem.NumSpins(), c.Qubits)
			}
			energies := basisTermEnergies(g.Problem, c.Qubits)
			for idx := range state {
				state[idx] *= cmplx.Exp(complex(0, -g.Theta*energies[idx]))
			}
		case GateMixer:
			cos := complex(math.Cos(g.Theta), 0)
			isin := complex(0, -math.Sin(g.Theta))
			for q := 0; q < c.Qubits; q++ {
				applySingle(state, q, cos, isin, isin, cos)
			}
		default:
			return nil, fmt.Errorf("unknown gate kind %d", g.Kind)
		}
	}
	return state, nil
}

// applySingle applies the 2x2 unitary [[a, b], [c, d]] to one qubit.
func applySingle(state []complex128, qubit int, a, b, c, d complex128) {
	mask := 1 << qubit
	for idx := range state {
		if idx&mask != 0 {
			continue
		}
		lo := state[idx]
		hi := state[idx|mask]
		state[idx] = a*lo + b*hi
		state[idx|mask] = c*lo + d*hi
	}
}

// basisTermEnergies evaluates the spin observable, offset excluded, at every
// computational basis state.
func basisTermEnergies(ham *ising.Hamiltonian, qubits int) []float64 {
	energies := make([]float64, 1<<qubits)
	for idx := range energies {
		energies[idx] = ham.TermEnergy(ising.SpinsFromBits(bitsOf(idx, qubits)))
	}
	return energies
}

// bitsOf expands a basis-state index into per-qubit bits; qubit i is bit i
// of the index.
func bitsOf(idx, qubits int) []int {
	bits := make([]int, qubits)
	for q := 0; q < qubits; q++ {
		bits[q] = (idx >> q) & 1
	}
	return bits
}
