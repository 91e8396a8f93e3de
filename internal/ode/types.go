package ode

import "math"

// Func is the right-hand side of a first-order scalar ODE dy/dt = f(t, y).
// Implementations must be pure: same inputs, same output, no side effects.
type Func func(t, y float64) float64

// Trajectory holds the ordered samples of a numerical solution. Times and
// Values are parallel slices of equal length; index 0 carries the initial
// condition. A trajectory is never mutated after construction.
type Trajectory struct {
	Times  []float64
	Values []float64
}

func (tr *Trajectory) Len() int {
	return len(tr.Times)
}

// Final returns the last (t, y) sample.
func (tr *Trajectory) Final() (float64, float64) {
	n := len(tr.Times)
	return tr.Times[n-1], tr.Values[n-1]
}

// IsValid reports whether every sample is finite.
func (tr *Trajectory) IsValid() bool {
	for _, y := range tr.Values {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return false
		}
	}
	return true
}
