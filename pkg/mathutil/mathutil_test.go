package mathutil

import (
	"math"
	"testing"
)

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		val      float64
		expected bool
	}{
		{"exact zero", 0, true},
		{"below tolerance", 1e-12, true},
		{"negative below tolerance", -1e-12, true},
		{"above tolerance", 1e-6, false},
		{"large value", 3.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsZero(tt.val); got != tt.expected {
				t.Errorf("IsZero(%v) = %t, expected %t", tt.val, got, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(1.0, 1.0+1e-10, 1e-9) {
		t.Errorf("WithinTolerance() = false for values within tolerance")
	}
	if WithinTolerance(1.0, 1.1, 1e-9) {
		t.Errorf("WithinTolerance() = true for values outside tolerance")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Errorf("IsFinite(1.5) = false")
	}
	if IsFinite(math.NaN()) {
		t.Errorf("IsFinite(NaN) = true")
	}
	if IsFinite(math.Inf(1)) {
		t.Errorf("IsFinite(+Inf) = true")
	}
	if IsFinite(math.Inf(-1)) {
		t.Errorf("IsFinite(-Inf) = true")
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(2, -1); got != -1 {
		t.Errorf("Min(2, -1) = %v, expected -1", got)
	}
	if got := Max(2, -1); got != 2 {
		t.Errorf("Max(2, -1) = %v, expected 2", got)
	}
}
