// Package analysis measures how far a numerical solution strays from the
// exact one.
//
// [Compare] reduces two aligned value slices to per-point absolute and
// relative errors plus max/mean summaries. Non-finite values are reported,
// not rejected: an overflowed trajectory still yields usable statistics for
// the points that stayed finite.
package analysis
