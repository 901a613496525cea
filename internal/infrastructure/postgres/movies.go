package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/flickstack/rental-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MovieRepository struct {
	pool *pgxpool.Pool
}

func NewMovieRepository(pool *pgxpool.Pool) *MovieRepository {
	return &MovieRepository{pool: pool}
}

func (r *MovieRepository) queryMovies(ctx context.Context, query string, args ...any) ([]domain.Movie, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var out []domain.Movie
	for rows.Next() {
		var m domain.Movie
		if err := rows.Scan(&m.UPC, &m.Title, &m.PosterLoc); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MovieRepository) GetByUPC(ctx context.Context, upc string) ([]domain.Movie, error) {
	return r.queryMovies(ctx, `SELECT upc, title, poster_loc FROM movies WHERE upc = $1`, upc)
}

func (r *MovieRepository) GetByTitle(ctx context.Context, title string) ([]domain.Movie, error) {
	return r.queryMovies(ctx, `SELECT upc, title, poster_loc FROM movies WHERE title = $1`, title)
}

func (r *MovieRepository) Create(ctx context.Context, m domain.Movie) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO movies (upc, title, poster_loc) VALUES ($1, $2, $3)`,
		m.UPC, m.Title, m.PosterLoc,
	)
	if err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	return nil
}

func (r *MovieRepository) Update(ctx context.Context, m domain.Movie) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE movies SET title = $2, poster_loc = $3 WHERE upc = $1`,
		m.UPC, m.Title, m.PosterLoc,
	)
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return nil
}

func (r *MovieRepository) CopiesByUPC(ctx context.Context, upc string) ([]domain.Copy, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, upc, active FROM movie_copies WHERE upc = $1`, upc)
	if err != nil {
		return nil, fmt.Errorf("list copies: %w", err)
	}
	defer rows.Close()

	var out []domain.Copy
	for rows.Next() {
		var c domain.Copy
		if err := rows.Scan(&c.ID, &c.UPC, &c.Active); err != nil {
			return nil, fmt.Errorf("scan copy: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *MovieRepository) GetCopy(ctx context.Context, copyID string) (*domain.Copy, error) {
	var c domain.Copy
	err := r.pool.QueryRow(ctx, `SELECT id, upc, active FROM movie_copies WHERE id = $1`, copyID).
		Scan(&c.ID, &c.UPC, &c.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("get copy: %w", err)
	}
	return &c, nil
}

func (r *MovieRepository) AddCopy(ctx context.Context, c domain.Copy) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO movie_copies (id, upc, active) VALUES ($1, $2, $3)`,
		c.ID, c.UPC, c.Active,
	)
	if err != nil {
		return fmt.Errorf("add copy: %w", err)
	}
	return nil
}
