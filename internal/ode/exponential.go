package ode

import "math"

// Exponential is the growth model dy/dt = K*y with initial value Y0 at time
// T0. Separation of variables gives the exact solution
//
//	y(t) = Y0 * e^(K*(t-T0))
//
// which serves as ground truth for error measurement.
type Exponential struct {
	K  float64
	Y0 float64
	T0 float64
}

// NewExponential builds the model anchored at t=0.
func NewExponential(k, y0 float64) *Exponential {
	return &Exponential{K: k, Y0: y0}
}

// Derivative evaluates dy/dt = K*y. The t argument is unused by this model
// but kept so the method satisfies [Func].
func (e *Exponential) Derivative(t, y float64) float64 {
	return e.K * y
}

// Eval returns the exact solution at t. Overflow for large K*t produces an
// IEEE infinity.
func (e *Exponential) Eval(t float64) float64 {
	return e.Y0 * math.Exp(e.K*(t-e.T0))
}

// EvalAll applies Eval element-wise over a time grid.
func (e *Exponential) EvalAll(ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = e.Eval(t)
	}
	return out
}

// Linspace returns n evenly spaced points from start to stop inclusive,
// used for the smooth reference curve. n must be at least 2.
func Linspace(start, stop float64, n int) []float64 {
	if n < 2 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
