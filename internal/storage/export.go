package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

type ExportData struct {
	ID       string             `json:"id"`
	K        float64            `json:"k"`
	Y0       float64            `json:"y0"`
	T0       float64            `json:"t0"`
	TFinal   float64            `json:"t_final"`
	H        float64            `json:"h"`
	Points   int                `json:"points"`
	Times    []float64          `json:"times"`
	Euler    []float64          `json:"euler"`
	Exact    []float64          `json:"exact"`
	AbsError []float64          `json:"abs_error"`
	RelError []float64          `json:"rel_error_pct"`
	Stats    map[string]float64 `json:"stats"`
}

// ExportJSON writes a full run (metadata plus point data) as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, pts *Points) error {
	data := ExportData{
		ID:       meta.ID,
		K:        meta.K,
		Y0:       meta.Y0,
		T0:       meta.T0,
		TFinal:   meta.TFinal,
		H:        meta.H,
		Points:   len(pts.Times),
		Times:    pts.Times,
		Euler:    pts.Euler,
		Exact:    pts.Exact,
		AbsError: pts.AbsError,
		RelError: pts.RelError,
		Stats:    meta.Stats,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV writes the point data of a run as CSV.
func ExportCSV(w io.Writer, pts *Points) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"n", "t", "euler", "exact", "abs_error", "rel_error_pct"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := range pts.Times {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(pts.Times[i], 'f', 6, 64),
			strconv.FormatFloat(pts.Euler[i], 'f', 6, 64),
			strconv.FormatFloat(pts.Exact[i], 'f', 6, 64),
			strconv.FormatFloat(pts.AbsError[i], 'f', 6, 64),
			strconv.FormatFloat(pts.RelError[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return nil
}
