package service

import (
	"context"
	"errors"

	"github.com/flickstack/rental-api/internal/domain"
)

// Movies manages the catalog and its physical copies.
type Movies struct {
	movies domain.MovieRepository
}

func NewMovies(movies domain.MovieRepository) *Movies {
	return &Movies{movies: movies}
}

// MovieQuery selects movies by copy id, UPC or title, in that order of
// precedence (a known copy id resolves to its movie's UPC first).
type MovieQuery struct {
	UPC             string
	Title           string
	CopyID          string
	ExcludeInactive bool
}

// Get resolves the query to movie rows and attaches each row's copy ids.
// Inactive copies are dropped unless the query asks for them.
func (s *Movies) Get(ctx context.Context, q MovieQuery) ([]domain.Movie, error) {
	upc := q.UPC
	if q.CopyID != "" {
		cp, err := s.movies.GetCopy(ctx, q.CopyID)
		switch {
		case err == nil:
			upc = cp.UPC
		case errors.Is(err, domain.ErrMovieNotFound):
			upc = ""
		default:
			return nil, err
		}
	}

	var (
		rows []domain.Movie
		err  error
	)
	if upc != "" {
		rows, err = s.movies.GetByUPC(ctx, upc)
	} else {
		rows, err = s.movies.GetByTitle(ctx, q.Title)
	}
	if err != nil {
		return nil, err
	}

	for i := range rows {
		copies, err := s.movies.CopiesByUPC(ctx, rows[i].UPC)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(copies))
		for _, c := range copies {
			if q.ExcludeInactive && !c.Active {
				continue
			}
			ids = append(ids, c.ID)
		}
		rows[i].Copies = ids
	}
	return rows, nil
}

func (s *Movies) Create(ctx context.Context, m domain.Movie) error {
	existing, err := s.movies.GetByUPC(ctx, m.UPC)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return domain.ErrUPCExists
	}
	return s.movies.Create(ctx, m)
}

func (s *Movies) Edit(ctx context.Context, m domain.Movie) error {
	existing, err := s.movies.GetByUPC(ctx, m.UPC)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return domain.ErrMovieNotFound
	}
	return s.movies.Update(ctx, m)
}

// AddCopy registers a new physical copy under an existing movie.
func (s *Movies) AddCopy(ctx context.Context, upc, copyID string) error {
	existing, err := s.movies.GetByUPC(ctx, upc)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return domain.ErrMovieNotFound
	}

	if _, err := s.movies.GetCopy(ctx, copyID); err == nil {
		return domain.ErrCopyIDExists
	} else if !errors.Is(err, domain.ErrMovieNotFound) {
		return err
	}

	return s.movies.AddCopy(ctx, domain.Copy{ID: copyID, UPC: upc, Active: true})
}
