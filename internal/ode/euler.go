package ode

// Integrate advances y' = f(t, y) from (t0, y0) to tFinal with forward Euler
// steps of fixed size h:
//
//	y_{n+1} = y_n + h * f(t_n, y_n)
//
// The step count is floor((tFinal-t0)/h), so a trailing partial interval is
// dropped and the last sample may land strictly before tFinal. The returned
// trajectory has step count + 1 samples, the first being (t0, y0) exactly.
//
// Integrate returns an *InvalidStepError when h <= 0 or tFinal < t0.
func Integrate(f Func, t0, y0, tFinal, h float64) (*Trajectory, error) {
	if h <= 0 || tFinal < t0 {
		return nil, &InvalidStepError{H: h, T0: t0, TFinal: tFinal}
	}

	steps := int((tFinal - t0) / h)

	times := make([]float64, steps+1)
	values := make([]float64, steps+1)
	times[0] = t0
	values[0] = y0

	// The recurrence is inherently sequential: each value depends on the
	// previous one.
	for i := 0; i < steps; i++ {
		times[i+1] = times[i] + h
		values[i+1] = values[i] + h*f(times[i], values[i])
	}

	return &Trajectory{Times: times, Values: values}, nil
}
