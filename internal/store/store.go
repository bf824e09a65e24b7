// Package store persists demo run results under a data directory: one
// subdirectory per run with JSON metadata and a CSV of per-step metric
// series.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
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

// RunMetadata summarizes one recorded run.
type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Evolution  string             `json:"evolution"`
	Renderer   string             `json:"renderer"`
	Particles  int                `json:"particles"`
	Seed       int64              `json:"seed"`
	Iterations int                `json:"iterations"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save records a run: metadata.json plus series.csv with one column per
// metric and one row per step. Returns the run ID.
func (s *Store) Save(meta RunMetadata, series map[string][]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Evolution, time.Now().Unix())
	meta.ID = runID
	meta.Timestamp = time.Now()

	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
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

	if err := s.writeSeries(runDir, series); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) writeSeries(runDir string, series map[string][]float64) error {
	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	names := make([]string, 0, len(series))
	rows := 0
	for name, values := range series {
		names = append(names, name)
		if len(values) > rows {
			rows = len(values)
		}
	}
	sort.Strings(names)

	header := append([]string{"step"}, names...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		row := []string{strconv.Itoa(i)}
		for _, name := range names {
			values := series[name]
			if i < len(values) {
				row = append(row, strconv.FormatFloat(values[i], 'f', 6, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// List returns metadata for every recorded run, newest last.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

// Load reads one run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("store: corrupt metadata for %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadSeries reads one run's recorded per-step series back from CSV.
func (s *Store) LoadSeries(runID string) (map[string][]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("store: corrupt series for %s: %w", runID, err)
	}
	if len(records) == 0 {
		return map[string][]float64{}, nil
	}

	header := records[0]
	series := make(map[string][]float64, len(header)-1)
	for _, row := range records[1:] {
		for col := 1; col < len(header) && col < len(row); col++ {
			if row[col] == "" {
				continue
			}
			v, err := strconv.ParseFloat(row[col], 64)
			if err != nil {
				return nil, fmt.Errorf("store: corrupt series for %s: %w", runID, err)
			}
			series[header[col]] = append(series[header[col]], v)
		}
	}
	return series, nil
}
