package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/eulercmp/internal/analysis"
	"github.com/san-kum/eulercmp/internal/config"
	"github.com/san-kum/eulercmp/internal/export"
	"github.com/san-kum/eulercmp/internal/ode"
	"github.com/san-kum/eulercmp/internal/report"
	"github.com/san-kum/eulercmp/internal/storage"
	"github.com/spf13/cobra"
)

var (
	dataDir     string
	growthRate  float64
	initial     float64
	tStart      float64
	tFinal      float64
	step        float64
	curvePoints int
	configFile  string
	preset      string
	stepList    string
	outDir      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eulercmp",
		Short: "compare forward euler against the exact exponential solution",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".eulercmp", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate dy/dt = k*y and compare against the closed form",
		RunE:  runComparison,
	}
	addParamFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "repeat the comparison across step sizes",
		RunE:  sweepSteps,
	}
	addParamFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&stepList, "steps", "0.4,0.2,0.1,0.05,0.025", "comma-separated step sizes")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	chartCmd := &cobra.Command{
		Use:   "chart [run_id]",
		Short: "render solution and error charts to svg files",
		Args:  cobra.ExactArgs(1),
		RunE:  chartRun,
	}
	chartCmd.Flags().StringVar(&outDir, "out", ".", "output directory for svg files")
	chartCmd.Flags().IntVar(&curvePoints, "curve-points", config.DefaultCurvePoints, "smooth curve resolution")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-8s k=%g y0=%g [%g, %g] h=%g\n", name, cfg.K, cfg.Y0, cfg.T0, cfg.TFinal, cfg.H)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, sweepCmd, listCmd, plotCmd, chartCmd, exportCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&growthRate, "k", config.DefaultGrowthRate, "growth rate")
	cmd.Flags().Float64Var(&initial, "y0", config.DefaultInitial, "initial value")
	cmd.Flags().Float64Var(&tStart, "t0", config.DefaultTStart, "interval start")
	cmd.Flags().Float64Var(&tFinal, "time", config.DefaultTFinal, "interval end")
	cmd.Flags().Float64Var(&step, "h", config.DefaultStep, "euler step size")
	cmd.Flags().IntVar(&curvePoints, "curve-points", config.DefaultCurvePoints, "smooth curve resolution")
}

// resolveConfig merges preset, config file, and flags. Flags win over the
// config file, which wins over the preset.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("k") {
		cfg.K = growthRate
	}
	if cmd.Flags().Changed("y0") {
		cfg.Y0 = initial
	}
	if cmd.Flags().Changed("t0") {
		cfg.T0 = tStart
	}
	if cmd.Flags().Changed("time") {
		cfg.TFinal = tFinal
	}
	if cmd.Flags().Changed("h") {
		cfg.H = step
	}
	if cmd.Flags().Changed("curve-points") {
		cfg.CurvePoints = curvePoints
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func compute(cfg *config.Config) (*ode.Trajectory, []float64, *analysis.Stats, error) {
	model := &ode.Exponential{K: cfg.K, Y0: cfg.Y0, T0: cfg.T0}

	traj, err := ode.Integrate(model.Derivative, cfg.T0, cfg.Y0, cfg.TFinal, cfg.H)
	if err != nil {
		return nil, nil, nil, err
	}

	exact := model.EvalAll(traj.Times)
	stats, err := analysis.Compare(traj.Values, exact)
	if err != nil {
		return nil, nil, nil, err
	}

	return traj, exact, stats, nil
}

func runComparison(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("dy/dt = %g*y, y(%g) = %g, interval [%g, %g], h = %g\n", cfg.K, cfg.T0, cfg.Y0, cfg.T0, cfg.TFinal, cfg.H)
	fmt.Printf("exact solution: y(t) = %g * e^(%g*(t-%g))\n\n", cfg.Y0, cfg.K, cfg.T0)

	traj, exact, stats, err := compute(cfg)
	if err != nil {
		return err
	}

	if err := report.WriteComparison(os.Stdout, traj, exact, stats); err != nil {
		return err
	}
	fmt.Println()
	report.WriteStats(os.Stdout, traj, exact, stats)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg, traj, exact, stats)
	if err != nil {
		return err
	}

	fmt.Printf("\nrun id: %s\n", runID)
	return nil
}

func sweepSteps(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	steps, err := parseStepList(stepList)
	if err != nil {
		return err
	}

	fmt.Printf("dy/dt = %g*y, y(%g) = %g over [%g, %g]\n\n", cfg.K, cfg.T0, cfg.Y0, cfg.T0, cfg.TFinal)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "H\tPOINTS\tFINAL_EULER\tFINAL_EXACT\tFINAL_ABS_ERR\tMAX_REL_%")

	for _, h := range steps {
		runCfg := *cfg
		runCfg.H = h

		traj, exact, stats, err := compute(&runCfg)
		if err != nil {
			fmt.Fprintf(w, "%g\terror: %v\n", h, err)
			continue
		}

		_, yFinal := traj.Final()
		fmt.Fprintf(w, "%g\t%d\t%.6f\t%.6f\t%.6f\t%.4f\n",
			h,
			traj.Len(),
			yFinal,
			exact[len(exact)-1],
			stats.Absolute[len(stats.Absolute)-1],
			stats.MaxRel,
		)
	}

	return w.Flush()
}

func parseStepList(list string) ([]float64, error) {
	parts := strings.Split(list, ",")
	steps := make([]float64, 0, len(parts))
	for _, part := range parts {
		h, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid step size %q: %w", part, err)
		}
		steps = append(steps, h)
	}
	return steps, nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tK\tY0\tINTERVAL\tH\tPOINTS\tMAX_ABS_ERR")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t[%g, %g]\t%g\t%d\t%.6f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.K,
			run.Y0,
			run.T0,
			run.TFinal,
			run.H,
			run.Points,
			run.Stats["max_abs_error"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	pts, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}

	if len(pts.Times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("dy/dt = %g*y, y0 = %g, h = %g\n\n", meta.K, meta.Y0, meta.H)

	curves := []struct {
		data    []float64
		caption string
	}{
		{pts.Euler, "euler approximation"},
		{pts.Exact, "exact solution"},
		{pts.AbsError, "absolute error"},
	}

	for _, c := range curves {
		graph := asciigraph.Plot(c.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(c.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func chartRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	pts, err := st.LoadPoints(runID)
	if err != nil {
		return err
	}

	if len(pts.Times) == 0 {
		return fmt.Errorf("no data to chart")
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	// Smooth reference curve, rebuilt from the stored parameters.
	model := &ode.Exponential{K: meta.K, Y0: meta.Y0, T0: meta.T0}
	curveT := ode.Linspace(meta.T0, meta.TFinal, curvePoints)
	curveY := model.EvalAll(curveT)

	solutionPath := filepath.Join(outDir, fmt.Sprintf("%s_solution.svg", runID))
	svg := export.SolutionChart(curveT, curveY, pts.Times, pts.Euler, meta.H)
	if err := export.WriteFile(solutionPath, svg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", solutionPath)

	errorPath := filepath.Join(outDir, fmt.Sprintf("%s_error.svg", runID))
	svg = export.ErrorChart(pts.Times, pts.AbsError, pts.RelError)
	if err := export.WriteFile(errorPath, svg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", errorPath)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	pts, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}

	return storage.ExportCSV(os.Stdout, pts)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	pts, err := st.LoadPoints(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, pts)
}
