package store

import (
	"testing"
)

func TestSaveAndLoadRun(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	meta := RunMetadata{
		Evolution:  "drift",
		Renderer:   "canvas",
		Particles:  3,
		Seed:       42,
		Iterations: 5,
		Metrics:    map[string]float64{"population": 3},
	}
	series := map[string][]float64{
		"population": {3, 3, 3, 3, 3},
		"mean_age":   {1, 2, 3, 4, 5},
	}

	runID, err := s.Save(meta, series)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	loaded, err := s.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Evolution != "drift" || loaded.Iterations != 5 {
		t.Errorf("loaded meta = %+v", loaded)
	}
	if loaded.Metrics["population"] != 3 {
		t.Errorf("expected population 3, got %f", loaded.Metrics["population"])
	}

	got, err := s.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	if len(got["mean_age"]) != 5 || got["mean_age"][4] != 5 {
		t.Errorf("mean_age series = %v", got["mean_age"])
	}
}

func TestListEmptyDir(t *testing.T) {
	s := New(t.TempDir() + "/missing")
	runs, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestListReturnsSavedRuns(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Save(RunMetadata{Evolution: "drift"}, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Save(RunMetadata{Evolution: "bounce"}, nil); err != nil {
		t.Fatal(err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("runs = %d, want 2", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := s.Save(RunMetadata{Evolution: "drift"},
		map[string][]float64{"population": {2, 1}})
	if err != nil {
		t.Fatal(err)
	}

	path := t.TempDir() + "/run.json"
	if err := s.ExportJSON(runID, path); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := ReadExport(path)
	if err != nil {
		t.Fatalf("read export failed: %v", err)
	}
	if data.Meta.Evolution != "drift" {
		t.Errorf("exported evolution = %s", data.Meta.Evolution)
	}
	if len(data.Series["population"]) != 2 {
		t.Errorf("exported series = %v", data.Series)
	}
}
