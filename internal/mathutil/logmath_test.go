package mathutil

import (
	"math"
	"testing"
)

func TestLog2(t *testing.T) {
	got, ok := Log2(0.25, 0)
	if !ok {
		t.Fatal("Log2(0.25) not ok")
	}
	if math.Abs(got-(-2)) > 1e-10 {
		t.Errorf("Log2(0.25) = %f, want -2", got)
	}
}

func TestLog2Zero(t *testing.T) {
	if got, ok := Log2(0, 0); ok || !math.IsInf(got, -1) {
		t.Errorf("Log2(0, 0) = %f, %v, want -Inf, false", got, ok)
	}

	got, ok := Log2(0, 0.125)
	if !ok {
		t.Fatal("Log2 with floor not ok")
	}
	if math.Abs(got-(-3)) > 1e-10 {
		t.Errorf("Log2(0, 0.125) = %f, want -3", got)
	}
}

func TestNormalize(t *testing.T) {
	w := []float64{1, 3}
	sum, ok := Normalize(w)
	if !ok {
		t.Fatal("Normalize not ok")
	}
	if sum != 4 {
		t.Errorf("sum = %f, want 4", sum)
	}
	if math.Abs(w[0]-0.25) > 1e-10 || math.Abs(w[1]-0.75) > 1e-10 {
		t.Errorf("normalized = %v, want [0.25 0.75]", w)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	tests := []struct {
		name string
		w    []float64
	}{
		{"empty", nil},
		{"zeros", []float64{0, 0}},
		{"negative", []float64{1, -1}},
	}
	for _, tt := range tests {
		if _, ok := Normalize(tt.w); ok {
			t.Errorf("%s: Normalize(%v) ok, want false", tt.name, tt.w)
		}
	}
}
