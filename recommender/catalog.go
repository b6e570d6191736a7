package recommender

import (
	"sort"
	"strings"
)

// Catalog is the read-only in-memory movie table shared by all
// recommendation calls within a process. Entries with an empty overview are
// dropped at construction time and never reach scoring.
type Catalog struct {
	movies    []Movie
	overviews []string
	genres    []string
}

// NewCatalog builds a catalog from raw movie records. Rows without an
// overview are discarded; genre names are normalized and deduplicated.
func NewCatalog(movies []Movie) *Catalog {
	c := &Catalog{movies: make([]Movie, 0, len(movies))}
	for _, m := range movies {
		m.Title = NormalizeText(m.Title)
		m.Overview = NormalizeText(m.Overview)
		if m.Title == "" || m.Overview == "" {
			continue
		}
		m.Genres = uniqueNormalized(m.Genres)
		m.PosterPath = strings.TrimSpace(m.PosterPath)
		c.movies = append(c.movies, m)
		c.overviews = append(c.overviews, m.Overview)
	}
	c.genres = distinctGenres(c.movies)
	return c
}

// Len returns the number of scorable movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Movies exposes the backing table in stable load order. Callers must treat
// the returned slice as read-only.
func (c *Catalog) Movies() []Movie {
	return c.movies
}

// Genres returns the sorted distinct genre names across the catalog.
func (c *Catalog) Genres() []string {
	out := make([]string, len(c.genres))
	copy(out, c.genres)
	return out
}

func distinctGenres(movies []Movie) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, m := range movies {
		for _, g := range m.Genres {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			out = append(out, g)
		}
	}
	sort.Strings(out)
	return out
}

// SplitGenres parses a comma-joined genre string into normalized names.
func SplitGenres(raw string) []string {
	parts := strings.Split(raw, ",")
	return uniqueNormalized(parts)
}
