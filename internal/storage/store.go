package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/eulercmp/internal/analysis"
	"github.com/san-kum/eulercmp/internal/config"
	"github.com/san-kum/eulercmp/internal/ode"
)

// Store persists comparison runs on disk, one directory per run holding
// metadata.json and points.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	K         float64            `json:"k"`
	Y0        float64            `json:"y0"`
	T0        float64            `json:"t0"`
	TFinal    float64            `json:"t_final"`
	H         float64            `json:"h"`
	Points    int                `json:"points"`
	Stats     map[string]float64 `json:"stats"`
}

// Points holds the tabular run data loaded back from points.csv, aligned on
// the Euler grid.
type Points struct {
	Times    []float64
	Euler    []float64
	Exact    []float64
	AbsError []float64
	RelError []float64
}

func statsMap(stats *analysis.Stats) map[string]float64 {
	return map[string]float64{
		"max_abs_error":      stats.MaxAbs,
		"mean_abs_error":     stats.MeanAbs,
		"max_rel_error_pct":  stats.MaxRel,
		"mean_rel_error_pct": stats.MeanRel,
		"non_finite_points":  float64(stats.NonFinite),
	}
}

func (s *Store) Save(cfg *config.Config, traj *ode.Trajectory, exact []float64, stats *analysis.Stats) (string, error) {
	runID := fmt.Sprintf("euler_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		K:         cfg.K,
		Y0:        cfg.Y0,
		T0:        cfg.T0,
		TFinal:    cfg.TFinal,
		H:         cfg.H,
		Points:    traj.Len(),
		Stats:     statsMap(stats),
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "points.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"n", "t", "euler", "exact", "abs_error", "rel_error_pct"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := 0; i < traj.Len(); i++ {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(traj.Times[i], 'f', 6, 64),
			strconv.FormatFloat(traj.Values[i], 'f', 6, 64),
			strconv.FormatFloat(exact[i], 'f', 6, 64),
			strconv.FormatFloat(stats.Absolute[i], 'f', 6, 64),
			strconv.FormatFloat(stats.Relative[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadPoints(runID string) (*Points, error) {
	csvPath := filepath.Join(s.baseDir, runID, "points.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	pts := &Points{}
	if len(records) < 2 {
		return pts, nil
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 6 {
			continue
		}

		vals := make([]float64, 5)
		ok := true
		for j := 0; j < 5; j++ {
			v, err := strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}

		pts.Times = append(pts.Times, vals[0])
		pts.Euler = append(pts.Euler, vals[1])
		pts.Exact = append(pts.Exact, vals[2])
		pts.AbsError = append(pts.AbsError, vals[3])
		pts.RelError = append(pts.RelError, vals[4])
	}

	return pts, nil
}
