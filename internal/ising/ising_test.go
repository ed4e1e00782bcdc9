package ising

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/iwvelando/quantum-portfolio/internal/portfolio"
	"github.com/iwvelando/quantum-portfolio/internal/qubo"
)

func TestTransformEquivalence(t *testing.T) {
	m := qubo.NewModel([]string{"y0", "y1", "y2"})
	m.Linear["y0"] = 2.5
	m.Linear["y1"] = -1.0
	m.Quadratic[qubo.Pair{A: "y0", B: "y1"}] = 3.0
	m.Quadratic[qubo.Pair{A: "y1", B: "y2"}] = -0.75
	m.Offset = 1.25

	ham, err := Transform(m)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	// The spin energy under s_i = 1 - 2*x_i must match the binary energy
	// for every one of the 8 assignments.
	for assignment := 0; assignment < 8; assignment++ {
		bits := []int{assignment & 1, (assignment >> 1) & 1, (assignment >> 2) & 1}
		binary := m.EnergyBits(bits)
		spin := ham.Energy(SpinsFromBits(bits))
		if math.Abs(binary-spin) > 1e-9 {
			t.Errorf("assignment %v: binary energy %v, spin energy %v", bits, binary, spin)
		}
	}
}

func TestTransformEquivalenceEncodedInstance(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	params, err := portfolio.Generate(4, rng)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	m, err := qubo.Build(params)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	ham, err := Transform(m)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if ham.NumSpins() != m.NumVariables() {
		t.Fatalf("Transform() produced %d spins, expected %d", ham.NumSpins(), m.NumVariables())
	}

	n := m.NumVariables()
	for assignment := 0; assignment < 1<<n; assignment++ {
		bits := make([]int, n)
		for i := range bits {
			bits[i] = (assignment >> i) & 1
		}
		binary := m.EnergyBits(bits)
		spin := ham.Energy(SpinsFromBits(bits))
		if math.Abs(binary-spin) > 1e-6 {
			t.Errorf("assignment %v: binary energy %v, spin energy %v", bits, binary, spin)
		}
	}
}

func TestTransformUnknownVariable(t *testing.T) {
	m := qubo.NewModel([]string{"y0"})
	m.Linear["y9"] = 1.0

	_, err := Transform(m)
	if !errors.Is(err, qubo.ErrUnknownVariable) {
		t.Errorf("Transform() error = %v, expected %v", err, qubo.ErrUnknownVariable)
	}
}

func TestTransformPrunesNoiseTerms(t *testing.T) {
	m := qubo.NewModel([]string{"y0", "y1"})
	m.Linear["y0"] = 1e-12
	m.Quadratic[qubo.Pair{A: "y0", B: "y1"}] = 4e-12

	ham, err := Transform(m)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	if ham.H[0] != 0 || ham.H[1] != 0 {
		t.Errorf("Transform() kept noise-level h terms: %v", ham.H)
	}
	if len(ham.J) != 0 {
		t.Errorf("Transform() kept noise-level J terms: %v", ham.J)
	}

	// Pruning must not touch the exact offset: c/2 + c'/4.
	expectedOffset := 1e-12/2 + 4e-12/4
	if math.Abs(ham.Offset-expectedOffset) > 1e-18 {
		t.Errorf("Transform() offset = %v, expected %v", ham.Offset, expectedOffset)
	}
}
