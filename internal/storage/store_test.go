package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/eulercmp/internal/analysis"
	"github.com/san-kum/eulercmp/internal/config"
	"github.com/san-kum/eulercmp/internal/ode"
)

func makeRun(t *testing.T) (*config.Config, *ode.Trajectory, []float64, *analysis.Stats) {
	t.Helper()

	cfg := config.DefaultConfig()
	model := &ode.Exponential{K: cfg.K, Y0: cfg.Y0, T0: cfg.T0}

	traj, err := ode.Integrate(model.Derivative, cfg.T0, cfg.Y0, cfg.TFinal, cfg.H)
	if err != nil {
		t.Fatalf("integrate failed: %v", err)
	}

	exact := model.EvalAll(traj.Times)
	stats, err := analysis.Compare(traj.Values, exact)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	return cfg, traj, exact, stats
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, traj, exact, stats := makeRun(t)

	runID, err := st.Save(cfg, traj, exact, stats)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.K != 1.5 || meta.Y0 != 100 || meta.H != 0.2 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Points != 6 {
		t.Errorf("expected 6 points, got %d", meta.Points)
	}
	if meta.Stats["max_abs_error"] != stats.MaxAbs {
		t.Errorf("max abs error %v, want %v", meta.Stats["max_abs_error"], stats.MaxAbs)
	}

	pts, err := st.LoadPoints(runID)
	if err != nil {
		t.Fatalf("load points failed: %v", err)
	}
	if len(pts.Times) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(pts.Times))
	}
	if pts.Euler[1] != 130.0 {
		t.Errorf("euler[1] = %v, want 130", pts.Euler[1])
	}
	if pts.AbsError[0] != 0 {
		t.Errorf("abs error at row 0 = %v, want 0", pts.AbsError[0])
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	cfg, traj, exact, stats := makeRun(t)
	if _, err := st.Save(cfg, traj, exact, stats); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, traj, exact, stats := makeRun(t)
	runID, err := st.Save(cfg, traj, exact, stats)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "points.csv")); os.IsNotExist(err) {
		t.Error("points.csv not created")
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, traj, exact, stats := makeRun(t)
	runID, err := st.Save(cfg, traj, exact, stats)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	pts, err := st.LoadPoints(runID)
	if err != nil {
		t.Fatalf("load points failed: %v", err)
	}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, pts); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if data.Points != 6 || len(data.Euler) != 6 {
		t.Errorf("exported %d points, want 6", data.Points)
	}
}

func TestExportCSV(t *testing.T) {
	pts := &Points{
		Times:    []float64{0, 0.2},
		Euler:    []float64{100, 130},
		Exact:    []float64{100, 134.985881},
		AbsError: []float64{0, 4.985881},
		RelError: []float64{0, 3.693634},
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, pts); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "n,t,euler") {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[2], "1,0.200000,130.000000") {
		t.Errorf("unexpected row: %s", lines[2])
	}
}
