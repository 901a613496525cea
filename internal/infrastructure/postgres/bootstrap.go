package postgres

import (
	"context"
	"strings"

	"github.com/flickstack/rental-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Bootstrap verifies the tables the service depends on and creates any that
// are missing. It backs the health endpoint.
type Bootstrap struct {
	pool *pgxpool.Pool
}

func NewBootstrap(pool *pgxpool.Pool) *Bootstrap {
	return &Bootstrap{pool: pool}
}

var tableDDL = map[string]string{
	"users": `CREATE TABLE users (
		id          text NOT NULL,
		f_name      text,
		l_name      text,
		pin         text,
		token       text,
		timestamp   text,
		role        text,
		active      boolean,
		question    text,
		answer      text,
		phone       text,
		address     text,
		PRIMARY KEY(id)
	)`,
	"customers": `CREATE TABLE customers (
		id          text NOT NULL,
		f_name      text,
		l_name      text,
		phone       text,
		address     text,
		active      boolean,
		email       text,
		PRIMARY KEY(id)
	)`,
	"movies": `CREATE TABLE movies (
		upc          text NOT NULL,
		title        text,
		poster_loc   text,
		PRIMARY KEY(upc)
	)`,
	"movie_copies": `CREATE TABLE movie_copies (
		id      text NOT NULL,
		upc     text NOT NULL,
		active  boolean,
		PRIMARY KEY(id)
	)`,
}

// CheckTable probes a table and creates it when the probe says it does not
// exist. Any other probe failure is reported as unreachable.
func (b *Bootstrap) CheckTable(ctx context.Context, name string) domain.TableStatus {
	ddl, known := tableDDL[name]
	if !known {
		return domain.TableStatus{Error: true, ErrorMsg: "Unknown table " + name}
	}

	_, err := b.pool.Exec(ctx, `SELECT count(*) FROM `+name)
	if err == nil {
		return domain.TableStatus{}
	}

	if strings.Contains(err.Error(), "does not exist") {
		if _, err := b.pool.Exec(ctx, ddl); err != nil {
			return domain.TableStatus{Error: true, ErrorMsg: "Could not create " + name + " table"}
		}
		return domain.TableStatus{}
	}

	return domain.TableStatus{Error: true, ErrorMsg: "Could not reach " + name + " table"}
}

// SeedSuperuser makes sure the bootstrap admin account exists so a fresh
// deployment can be signed into. Matching the legacy behavior the result is
// ignored by the health check.
func (b *Bootstrap) SeedSuperuser(ctx context.Context) error {
	_, err := b.pool.Exec(ctx, `
		INSERT INTO users (id, f_name, l_name, pin, role, token, timestamp, question, answer, active, phone, address)
		VALUES ('superuser', '', '', 'password', 'admin', '', '', '', NULL, true, '', '')
		ON CONFLICT (id) DO NOTHING
	`)
	return err
}
