package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/qsweep/internal/sweep"
)

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
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Ec        float64       `json:"ec"`
	N         int           `json:"n"`
	NgPoints  int           `json:"ng_points"`
	Workers   int           `json:"workers"`
	Points    int           `json:"points"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// Save persists one sweep as metadata.json plus points.csv under a fresh
// run id. Point values use the shortest round-tripping representation, so
// dispersions survive their full exponent range.
func (s *Store) Save(cfg sweep.Config, result *sweep.Result) (string, error) {
	runID := fmt.Sprintf("sweep_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Ec:        cfg.Ec,
		N:         cfg.N,
		NgPoints:  cfg.NgPoints,
		Workers:   cfg.Workers,
		Points:    len(result.Points),
		Elapsed:   result.Elapsed,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "points.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(pointHeader()); err != nil {
		return "", err
	}
	for _, p := range result.Points {
		if err := w.Write(pointRow(p)); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
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
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadPoints(runID string) ([]sweep.Point, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "points.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []sweep.Point{}, nil
	}

	points := make([]sweep.Point, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 4 {
			return nil, fmt.Errorf("storage: malformed point row in %s: %v", runID, record)
		}
		var vals [4]float64
		for i, field := range record[:4] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: malformed point row in %s: %w", runID, err)
			}
			vals[i] = v
		}
		points = append(points, sweep.Point{
			Ratio:         vals[0],
			Frequency:     vals[1],
			Anharmonicity: vals[2],
			Dispersion:    vals[3],
		})
	}

	return points, nil
}

func pointHeader() []string {
	return []string{"ratio", "frequency_ghz", "anharmonicity_ghz", "dispersion_ghz"}
}

func pointRow(p sweep.Point) []string {
	return []string{
		strconv.FormatFloat(p.Ratio, 'g', -1, 64),
		strconv.FormatFloat(p.Frequency, 'g', -1, 64),
		strconv.FormatFloat(p.Anharmonicity, 'g', -1, 64),
		strconv.FormatFloat(p.Dispersion, 'g', -1, 64),
	}
}
