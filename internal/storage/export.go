package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/san-kum/qsweep/internal/sweep"
)

type ExportData struct {
	ID              string    `json:"id"`
	Ec              float64   `json:"ec"`
	N               int       `json:"n"`
	NgPoints        int       `json:"ng_points"`
	Ratios          []float64 `json:"ratios"`
	Frequencies     []float64 `json:"frequencies_ghz"`
	Anharmonicities []float64 `json:"anharmonicities_ghz"`
	Dispersions     []float64 `json:"dispersions_ghz"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, points []sweep.Point) error {
	result := sweep.Result{Points: points}
	data := ExportData{
		ID:              meta.ID,
		Ec:              meta.Ec,
		N:               meta.N,
		NgPoints:        meta.NgPoints,
		Ratios:          result.Ratios(),
		Frequencies:     result.Frequencies(),
		Anharmonicities: result.Anharmonicities(),
		Dispersions:     result.Dispersions(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func ExportCSV(w io.Writer, points []sweep.Point) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(pointHeader()); err != nil {
		return err
	}
	for _, p := range points {
		if err := cw.Write(pointRow(p)); err != nil {
			return err
		}
	}
	return nil
}
