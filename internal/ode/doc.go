// Package ode provides the numerical core for first-order scalar ODEs.
//
// The package defines the fundamental types for comparing a closed-form
// solution against a fixed-step numerical approximation:
//
//   - [Func]: derivative callable dy/dt = f(t, y)
//   - [Trajectory]: ordered (t, y) samples produced by an integrator
//   - [Integrate]: forward Euler stepping over a fixed grid
//   - [Exponential]: the growth model dy/dt = k*y with its exact solution
//
// # Example
//
//	model := ode.NewExponential(1.5, 100)
//	traj, _ := ode.Integrate(model.Derivative, 0, 100, 1, 0.2)
//	exact := model.EvalAll(traj.Times)
//
// # Numerical Behavior
//
// Forward Euler has local truncation error O(h^2) per step and global error
// O(h); the gap widens along the trajectory as errors compound. Overflowing
// values propagate as IEEE infinities rather than failing the integration.
package ode
