package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/flickstack/rental-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, f_name, l_name, pin, role, token, timestamp, question, answer, active, phone, address`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.FName, &u.LName, &u.Pin, &u.Role,
		&u.Token, &u.Timestamp, &u.Question, &u.Answer,
		&u.Active, &u.Phone, &u.Address,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	// Empty token means "no session" and must never match a row.
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE token = $1 AND token <> ''`, token)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by token: %w", err)
	}
	return u, nil
}

func (r *UserRepository) ActiveTokens(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT token FROM users WHERE token <> ''`)
	if err != nil {
		return nil, fmt.Errorf("list tokens: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan token: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *UserRepository) SetSession(ctx context.Context, id, token, timestamp string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET token = $2, timestamp = $3 WHERE id = $1`,
		id, token, timestamp,
	)
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func (r *UserRepository) TouchSession(ctx context.Context, id, timestamp string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET timestamp = $2 WHERE id = $1`,
		id, timestamp,
	)
	if err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	return nil
}

func (r *UserRepository) ClearSession(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET token = '', timestamp = '' WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

func (r *UserRepository) Create(ctx context.Context, u domain.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, f_name, l_name, pin, role, token, timestamp, question, answer, active, phone, address)
		VALUES ($1, $2, $3, $4, $5, '', '', $6, $7, $8, $9, $10)
	`, u.ID, u.FName, u.LName, u.Pin, u.Role, u.Question, u.Answer, u.Active, u.Phone, u.Address)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
