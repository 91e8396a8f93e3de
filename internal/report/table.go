package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/san-kum/eulercmp/internal/analysis"
	"github.com/san-kum/eulercmp/internal/ode"
)

// WriteComparison prints the per-iteration table: index, time, Euler value,
// exact value, absolute error. Non-finite entries print as Go renders them
// (+Inf, NaN) so overflowed runs stay readable.
func WriteComparison(w io.Writer, traj *ode.Trajectory, exact []float64, stats *analysis.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "N\tT\tEULER\tEXACT\tABS_ERROR")

	for i := 0; i < traj.Len(); i++ {
		fmt.Fprintf(tw, "%d\t%.2f\t%.6f\t%.6f\t%.6f\n",
			i,
			traj.Times[i],
			traj.Values[i],
			exact[i],
			stats.Absolute[i],
		)
	}

	return tw.Flush()
}

// WriteStats prints the error summary and final-value comparison.
func WriteStats(w io.Writer, traj *ode.Trajectory, exact []float64, stats *analysis.Stats) {
	fmt.Fprintln(w, "error statistics:")
	fmt.Fprintf(w, "  max abs error:   %.6f\n", stats.MaxAbs)
	fmt.Fprintf(w, "  mean abs error:  %.6f\n", stats.MeanAbs)
	fmt.Fprintf(w, "  max rel error:   %.4f%%\n", stats.MaxRel)
	fmt.Fprintf(w, "  mean rel error:  %.4f%%\n", stats.MeanRel)
	if stats.NonFinite > 0 {
		fmt.Fprintf(w, "  non-finite points: %d\n", stats.NonFinite)
	}

	tFinal, yFinal := traj.Final()
	exactFinal := exact[len(exact)-1]
	fmt.Fprintf(w, "\nfinal values (t = %g):\n", tFinal)
	fmt.Fprintf(w, "  exact:  %.6f\n", exactFinal)
	fmt.Fprintf(w, "  euler:  %.6f\n", yFinal)
	fmt.Fprintf(w, "  diff:   %.6f\n", stats.Absolute[len(stats.Absolute)-1])
}
