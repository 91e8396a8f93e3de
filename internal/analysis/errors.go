package analysis

import (
	"fmt"
	"math"
)

// Stats holds the pointwise deviation of a numerical solution from the exact
// one, plus reductions over the whole grid. Absolute and Relative are
// parallel to the input slices; Relative is a percentage of the exact value.
//
// Non-finite entries (overflowed values, relative error at an exact zero)
// are kept verbatim in the per-point slices, excluded from the max/mean
// reductions, and counted in NonFinite.
type Stats struct {
	Absolute []float64
	Relative []float64

	MaxAbs  float64
	MeanAbs float64
	MaxRel  float64
	MeanRel float64

	NonFinite int
}

// Compare measures approx against exact point by point. The slices must be
// the same length and aligned on the same time grid.
func Compare(approx, exact []float64) (*Stats, error) {
	if len(approx) != len(exact) {
		return nil, fmt.Errorf("analysis: length mismatch: %d approx vs %d exact", len(approx), len(exact))
	}

	s := &Stats{
		Absolute: make([]float64, len(approx)),
		Relative: make([]float64, len(approx)),
	}

	absSamples, relSamples := 0, 0
	absSum, relSum := 0.0, 0.0

	for i := range approx {
		abs := math.Abs(approx[i] - exact[i])
		rel := abs / math.Abs(exact[i]) * 100

		s.Absolute[i] = abs
		s.Relative[i] = rel

		finite := true
		if isFinite(abs) {
			absSum += abs
			absSamples++
			if abs > s.MaxAbs {
				s.MaxAbs = abs
			}
		} else {
			finite = false
		}
		if isFinite(rel) {
			relSum += rel
			relSamples++
			if rel > s.MaxRel {
				s.MaxRel = rel
			}
		} else {
			finite = false
		}
		if !finite {
			s.NonFinite++
		}
	}

	if absSamples > 0 {
		s.MeanAbs = absSum / float64(absSamples)
	}
	if relSamples > 0 {
		s.MeanRel = relSum / float64(relSamples)
	}

	return s, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
