package store

import (
	"encoding/json"
	"os"
)

// ExportData is the self-contained JSON form of one recorded run: metadata
// plus the full per-step series, suitable for external tooling.
type ExportData struct {
	Meta   RunMetadata          `json:"meta"`
	Series map[string][]float64 `json:"series"`
}

// ExportJSON writes one recorded run as a single JSON document.
func (s *Store) ExportJSON(runID, path string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	series, err := s.LoadSeries(runID)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Meta: *meta, Series: series})
}

// ReadExport parses a document written by ExportJSON.
func ReadExport(path string) (*ExportData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
