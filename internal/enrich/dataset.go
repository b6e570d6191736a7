// Package enrich implements the batch jobs that populate poster identifiers
// and genre lists for a movie dataset by querying the metadata API. Jobs are
// resumable: progress is checkpointed to the output CSV so an interrupted
// run picks up where it left off.
package enrich

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Row is one record of an enrichment snapshot CSV. Fields not present in the
// input file stay empty and are written back as empty cells.
type Row struct {
	Title      string
	Overview   string
	PosterPath string
	Genres     string
}

var datasetHeader = []string{"title", "overview", "poster_path", "genres"}

// ReadDataset loads a snapshot CSV. Column order is header-driven; missing
// optional columns are tolerated.
func ReadDataset(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s is empty", path)
	}

	cols := map[string]int{"title": -1, "overview": -1, "poster_path": -1, "genres": -1}
	for idx, name := range records[0] {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := cols[key]; ok && cols[key] < 0 {
			cols[key] = idx
		}
	}
	if cols["title"] < 0 {
		return nil, fmt.Errorf("dataset %s has no title column", path)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, Row{
			Title:      field(rec, cols["title"]),
			Overview:   field(rec, cols["overview"]),
			PosterPath: field(rec, cols["poster_path"]),
			Genres:     field(rec, cols["genres"]),
		})
	}
	return rows, nil
}

// WriteDataset writes a snapshot CSV atomically (temp file + rename) so a
// crash mid-checkpoint never truncates previous progress.
func WriteDataset(path string, rows []Row) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(datasetHeader); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		record := []string{row.Title, row.Overview, row.PosterPath, row.Genres}
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush dataset: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close dataset: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename dataset: %w", err)
	}
	return nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
