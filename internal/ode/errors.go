package ode

import "fmt"

// InvalidStepError reports integration parameters that cannot produce a
// grid: a non-positive step size or an interval that ends before it starts.
// It is a configuration error, fatal to the computation.
type InvalidStepError struct {
	H      float64
	T0     float64
	TFinal float64
}

func (e *InvalidStepError) Error() string {
	if e.H <= 0 {
		return fmt.Sprintf("ode: step size must be positive, got h=%g", e.H)
	}
	return fmt.Sprintf("ode: interval end %g precedes start %g", e.TFinal, e.T0)
}
