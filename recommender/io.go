package recommender

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// catalog CSV columns, matching the enrichment job output.
const (
	columnTitle      = "title"
	columnOverview   = "overview"
	columnPosterPath = "poster_path"
	columnGenres     = "genres"
)

// LoadCatalogCSV reads a catalog snapshot produced by the enrichment jobs.
// The file must carry a header with at least title and overview columns;
// poster_path and genres are optional.
func LoadCatalogCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog %s is empty", path)
	}

	cols := detectColumns(records[0])
	if cols[columnTitle] < 0 || cols[columnOverview] < 0 {
		return nil, fmt.Errorf("catalog %s is missing title/overview columns", path)
	}

	movies := make([]Movie, 0, len(records)-1)
	for _, row := range records[1:] {
		m := Movie{
			Title:    cell(row, cols[columnTitle]),
			Overview: cell(row, cols[columnOverview]),
		}
		if idx := cols[columnPosterPath]; idx >= 0 {
			m.PosterPath = cell(row, idx)
		}
		if idx := cols[columnGenres]; idx >= 0 {
			m.Genres = SplitGenres(cell(row, idx))
		}
		movies = append(movies, m)
	}
	return NewCatalog(movies), nil
}

func detectColumns(header []string) map[string]int {
	cols := map[string]int{
		columnTitle:      -1,
		columnOverview:   -1,
		columnPosterPath: -1,
		columnGenres:     -1,
	}
	for idx, name := range header {
		normalized := strings.ToLower(NormalizeText(name))
		if _, ok := cols[normalized]; ok && cols[normalized] < 0 {
			cols[normalized] = idx
		}
	}
	return cols
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
