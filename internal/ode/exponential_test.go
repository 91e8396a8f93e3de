package ode

import (
	"math"
	"testing"
)

func TestExponentialEval(t *testing.T) {
	model := NewExponential(1.5, 100)

	tests := []struct {
		t        float64
		expected float64
	}{
		{0, 100},
		{0.2, 100 * math.Exp(0.3)},
		{1.0, 100 * math.Exp(1.5)},
		{-1.0, 100 * math.Exp(-1.5)},
	}

	for _, tt := range tests {
		if got := model.Eval(tt.t); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.expected)
		}
	}
}

func TestExponentialEvalAll(t *testing.T) {
	model := NewExponential(0.5, 2)

	ts := []float64{0, 1, 2, 3}
	ys := model.EvalAll(ts)

	if len(ys) != len(ts) {
		t.Fatalf("expected %d values, got %d", len(ts), len(ys))
	}
	for i, tv := range ts {
		if ys[i] != model.Eval(tv) {
			t.Errorf("element %d: EvalAll %v != Eval %v", i, ys[i], model.Eval(tv))
		}
	}
}

func TestExponentialAnchoredStart(t *testing.T) {
	// With T0 set, the initial condition holds at T0 rather than 0.
	model := &Exponential{K: 2.0, Y0: 10, T0: 3.0}

	if got := model.Eval(3.0); got != 10 {
		t.Errorf("Eval(T0) = %v, want exactly 10", got)
	}
	want := 10 * math.Exp(2.0)
	if got := model.Eval(4.0); math.Abs(got-want) > 1e-9 {
		t.Errorf("Eval(T0+1) = %v, want %v", got, want)
	}
}

func TestExponentialOverflow(t *testing.T) {
	model := NewExponential(1000, 1)

	if got := model.Eval(1e6); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf, got %v", got)
	}
}

func TestExponentialDerivative(t *testing.T) {
	model := NewExponential(1.5, 100)

	// f(t, y) = k*y, independent of t.
	if got := model.Derivative(0.7, 200); got != 300 {
		t.Errorf("Derivative = %v, want 300", got)
	}
	if model.Derivative(0, 200) != model.Derivative(99, 200) {
		t.Error("derivative should not depend on t")
	}

	var f Func = model.Derivative
	if f(0, 2) != 3 {
		t.Error("method value should satisfy Func")
	}
}

func TestLinspace(t *testing.T) {
	ts := Linspace(0, 1, 101)

	if len(ts) != 101 {
		t.Fatalf("expected 101 points, got %d", len(ts))
	}
	if ts[0] != 0 || ts[100] != 1 {
		t.Errorf("endpoints = (%v, %v), want (0, 1)", ts[0], ts[100])
	}
	if math.Abs(ts[50]-0.5) > 1e-12 {
		t.Errorf("midpoint = %v, want 0.5", ts[50])
	}
}
