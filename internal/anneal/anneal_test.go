package anneal

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/iwvelando/quantum-portfolio/internal/qubo"
)

// bruteForceMin scans every assignment for the true minimum energy.
func bruteForceMin(m *qubo.Model) float64 {
	n := m.NumVariables()
	best := math.Inf(1)
	for assignment := 0; assignment < 1<<n; assignment++ {
		bits := make([]int, n)
		for i := range bits {
			bits[i] = (assignment >> i) & 1
		}
		if e := m.EnergyBits(bits); e < best {
			best = e
		}
	}
	return best
}

func TestSampleQUBOFindsGroundState(t *testing.T) {
	tests := []struct {
		name  string
		build func() *qubo.Model
	}{
		{
			name: "single variable prefers zero",
			build: func() *qubo.Model {
				m := qubo.NewModel([]string{"y0"})
				m.Linear["y0"] = 1.0
				return m
			},
		},
		{
			name: "single variable prefers one",
			build: func() *qubo.Model {
				m := qubo.NewModel([]string{"y0"})
				m.Linear["y0"] = -1.0
				return m
			},
		},
		{
			name: "coupled pair",
			build: func() *qubo.Model {
				m := qubo.NewModel([]string{"y0", "y1"})
				m.Linear["y0"] = 1.0
				m.Linear["y1"] = 1.0
				m.Quadratic[qubo.Pair{A: "y0", B: "y1"}] = -3.0
				return m
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.build()
			rng := rand.New(rand.NewSource(11))

			solution, energy, err := SampleQUBO(m, 20, 200, rng)
			if err != nil {
				t.Fatalf("SampleQUBO() error = %v", err)
			}

			expected := bruteForceMin(m)
			if math.Abs(energy-expected) > 1e-12 {
				t.Errorf("SampleQUBO() energy = %v, brute force minimum is %v", energy, expected)
			}

			recomputed, err := m.Energy(solution)
			if err != nil {
				t.Fatalf("Energy() error = %v", err)
			}
			if math.Abs(recomputed-energy) > 1e-12 {
				t.Errorf("reported energy %v disagrees with recomputed %v", energy, recomputed)
			}
		})
	}
}

func TestSampleQUBOErrors(t *testing.T) {
	m := qubo.NewModel([]string{"y0"})
	rng := rand.New(rand.NewSource(1))

	if _, _, err := SampleQUBO(nil, 10, 10, rng); !errors.Is(err, qubo.ErrEmptyProblem) {
		t.Errorf("SampleQUBO(nil) error = %v, expected %v", err, qubo.ErrEmptyProblem)
	}
	if _, _, err := SampleQUBO(m, 0, 10, rng); err == nil {
		t.Errorf("SampleQUBO() with zero reads expected error, got nil")
	}
	if _, _, err := SampleQUBO(m, 10, 0, rng); err == nil {
		t.Errorf("SampleQUBO() with zero sweeps expected error, got nil")
	}
}
