package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/flickstack/rental-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

const customerColumns = `id, f_name, l_name, phone, address, active, email`

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+customerColumns+` FROM customers`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.FName, &c.LName, &c.Phone, &c.Address, &c.Active, &c.Email); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id).
		Scan(&c.ID, &c.FName, &c.LName, &c.Phone, &c.Address, &c.Active, &c.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c domain.Customer) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO customers (id, f_name, l_name, phone, address, active, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, c.ID, c.FName, c.LName, c.Phone, c.Address, c.Active, c.Email)
	if err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c domain.Customer) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE customers SET f_name = $2, l_name = $3, phone = $4, address = $5, active = $6, email = $7
		WHERE id = $1
	`, c.ID, c.FName, c.LName, c.Phone, c.Address, c.Active, c.Email)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}
