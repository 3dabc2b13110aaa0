package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/san-kum/qsweep/internal/sweep"
)

func testResult() (sweep.Config, *sweep.Result) {
	cfg := sweep.Config{Ec: 0.3, N: 10, NgPoints: 21, Ratios: []float64{5, 50}}
	result := &sweep.Result{
		Points: []sweep.Point{
			{Ratio: 5, Frequency: 1.6937, Anharmonicity: -1.0575, Dispersion: 0.32199},
			{Ratio: 50, Frequency: 5.6826, Anharmonicity: -0.34477, Dispersion: 1.1889e-5},
		},
		Elapsed: 42 * time.Millisecond,
	}
	return cfg, result
}

func TestSaveLoadRoundtrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, result := testResult()
	runID, err := st.Save(cfg, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Ec != cfg.Ec || meta.N != cfg.N || meta.Points != 2 {
		t.Errorf("metadata differs: %+v", meta)
	}

	points, err := st.LoadPoints(runID)
	if err != nil {
		t.Fatalf("load points failed: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	for i, p := range points {
		if p != result.Points[i] {
			t.Errorf("point %d did not survive the roundtrip: %+v vs %+v", i, p, result.Points[i])
		}
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir())

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, result := testResult()
	runID, err := st.Save(cfg, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Errorf("expected run %s, got %+v", runID, runs)
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("sweep_0"); err == nil {
		t.Error("expected error for missing run")
	}
}

func TestExportCSV(t *testing.T) {
	_, result := testResult()

	var b strings.Builder
	if err := ExportCSV(&b, result.Points); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "ratio,frequency_ghz,anharmonicity_ghz,dispersion_ghz" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[2], "1.1889e-05") {
		t.Errorf("small dispersion lost precision: %q", lines[2])
	}
}

func TestExportJSON(t *testing.T) {
	cfg, result := testResult()
	meta := &RunMetadata{ID: "sweep_1", Ec: cfg.Ec, N: cfg.N, NgPoints: cfg.NgPoints}

	var b strings.Builder
	if err := ExportJSON(&b, meta, result.Points); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	out := b.String()
	for _, want := range []string{`"id": "sweep_1"`, `"frequencies_ghz"`, `"dispersions_ghz"`} {
		if !strings.Contains(out, want) {
			t.Errorf("export missing %s:\n%s", want, out)
		}
	}
}
