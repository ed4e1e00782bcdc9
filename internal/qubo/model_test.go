package qubo

import (
	"math"
	"testing"
)

func TestEnergyMissingVariable(t *testing.T) {
	m := NewModel([]string{"y0", "y1"})
	m.Linear["y0"] = 1.0

	_, err := m.Energy(Solution{"y0": 1})
	if err == nil {
		t.Errorf("Energy() expected error for missing variable, got nil")
	}
}

func TestEnergyAgreesWithEnergyBits(t *testing.T) {
	m := NewModel([]string{"y0", "y1", "s0"})
	m.Linear["y0"] = -1.5
	m.Linear["s0"] = 0.25
	m.Quadratic[Pair{A: "y0", B: "y1"}] = 2.0
	m.Quadratic[Pair{A: "y1", B: "s0"}] = -0.5
	m.Offset = 3.0

	for assignment := 0; assignment < 8; assignment++ {
		bits := []int{assignment & 1, (assignment >> 1) & 1, (assignment >> 2) & 1}
		sol := m.SolutionFromBits(bits)

		fromSolution, err := m.Energy(sol)
		if err != nil {
			t.Fatalf("Energy() error = %v", err)
		}
		fromBits := m.EnergyBits(bits)
		if math.Abs(fromSolution-fromBits) > 1e-12 {
			t.Errorf("Energy(%v) = %v, EnergyBits = %v", bits, fromSolution, fromBits)
		}
	}
}

func TestSolutionFromBits(t *testing.T) {
	m := NewModel([]string{"y0", "y1", "s0"})
	sol := m.SolutionFromBits([]int{1, 0, 1})

	expected := Solution{"y0": 1, "y1": 0, "s0": 1}
	if len(sol) != len(expected) {
		t.Fatalf("SolutionFromBits() produced %d entries, expected %d", len(sol), len(expected))
	}
	for name, bit := range expected {
		if sol[name] != bit {
			t.Errorf("SolutionFromBits()[%s] = %d, expected %d", name, sol[name], bit)
		}
	}
}
