package enrich

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sanamulla68/Sentiment-Enhanced-Movie-Recommendation-System/internal/tmdb"
)

// checkpointEvery is the number of processed rows between partial saves.
// The counter is over processed rows, not row indices, so a resumed run
// checkpoints just as regularly as a fresh one.
const checkpointEvery = 50

// MetadataSource is the subset of the TMDB client the jobs depend on.
type MetadataSource interface {
	SearchMovie(ctx context.Context, title string) (*tmdb.SearchResult, error)
	GetMovieDetails(ctx context.Context, id int) (*tmdb.MovieDetails, error)
}

// SaveFunc checkpoints the full row set.
type SaveFunc func(rows []Row) error

// ProgressFunc reports processed/total row counts, e.g. to a progress bar.
type ProgressFunc func(done, total int)

// Job bundles the collaborators shared by both enrichment passes.
type Job struct {
	Source   MetadataSource
	Save     SaveFunc
	Progress ProgressFunc
	Logger   zerolog.Logger
}

// FillPosters looks up a poster path for every row that has none. Lookup
// failures for individual titles are logged and leave the field empty, as an
// incomplete catalog is still usable. Returns the number of rows filled.
func (j *Job) FillPosters(ctx context.Context, rows []Row) (int, error) {
	return j.run(ctx, rows, func(row *Row) bool {
		return row.PosterPath == ""
	}, func(ctx context.Context, row *Row) error {
		res, err := j.Source.SearchMovie(ctx, row.Title)
		if err != nil {
			return err
		}
		row.PosterPath = res.PosterPath
		return nil
	})
}

// FillGenres resolves a comma-joined genre list for every row that has none,
// via a title search followed by a details lookup.
func (j *Job) FillGenres(ctx context.Context, rows []Row) (int, error) {
	return j.run(ctx, rows, func(row *Row) bool {
		return row.Genres == ""
	}, func(ctx context.Context, row *Row) error {
		res, err := j.Source.SearchMovie(ctx, row.Title)
		if err != nil {
			return err
		}
		details, err := j.Source.GetMovieDetails(ctx, res.ID)
		if err != nil {
			return err
		}
		row.Genres = strings.Join(details.GenreNames(), ", ")
		return nil
	})
}

func (j *Job) run(ctx context.Context, rows []Row, needs func(*Row) bool, fetch func(context.Context, *Row) error) (int, error) {
	total := 0
	for i := range rows {
		if needs(&rows[i]) {
			total++
		}
	}

	processed := 0
	filled := 0
	for i := range rows {
		if err := ctx.Err(); err != nil {
			return filled, err
		}
		if !needs(&rows[i]) {
			continue
		}
		if err := fetch(ctx, &rows[i]); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return filled, err
			}
			if !errors.Is(err, tmdb.ErrNotFound) {
				j.Logger.Warn().Err(err).Str("title", rows[i].Title).Msg("metadata lookup failed")
			}
		} else {
			filled++
		}
		processed++
		if j.Progress != nil {
			j.Progress(processed, total)
		}
		if processed%checkpointEvery == 0 && j.Save != nil {
			if err := j.Save(rows); err != nil {
				return filled, fmt.Errorf("checkpoint after %d rows: %w", processed, err)
			}
		}
	}

	if j.Save != nil {
		if err := j.Save(rows); err != nil {
			return filled, fmt.Errorf("final save: %w", err)
		}
	}
	return filled, nil
}
