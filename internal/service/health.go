package service

import (
	"context"

	"github.com/flickstack/rental-api/internal/domain"
	"github.com/flickstack/rental-api/internal/pkg/logger"
)

// Bootstrapper probes and repairs the tables the service depends on.
type Bootstrapper interface {
	CheckTable(ctx context.Context, name string) domain.TableStatus
	SeedSuperuser(ctx context.Context) error
}

type Health struct {
	db Bootstrapper
}

func NewHealth(db Bootstrapper) *Health {
	return &Health{db: db}
}

// HealthReport is the health endpoint payload: one status per table plus an
// overall flag.
type HealthReport struct {
	UsersDatabase     domain.TableStatus `json:"usersDatabase"`
	CustomersDatabase domain.TableStatus `json:"customersDatabase"`
	MoviesDatabase    domain.TableStatus `json:"moviesDatabase"`
	CopiesDatabase    domain.TableStatus `json:"copiesDatabase"`
	Error             bool               `json:"error"`
}

// Check probes every table, creating missing ones, and re-seeds the
// superuser account. The seed result does not affect the report.
func (s *Health) Check(ctx context.Context) HealthReport {
	rep := HealthReport{
		UsersDatabase:     s.db.CheckTable(ctx, "users"),
		CustomersDatabase: s.db.CheckTable(ctx, "customers"),
		MoviesDatabase:    s.db.CheckTable(ctx, "movies"),
		CopiesDatabase:    s.db.CheckTable(ctx, "movie_copies"),
	}

	if err := s.db.SeedSuperuser(ctx); err != nil {
		logger.WithCtx(ctx).Warn().Err(err).Msg("superuser seed failed")
	}

	rep.Error = rep.UsersDatabase.Error || rep.CustomersDatabase.Error ||
		rep.MoviesDatabase.Error || rep.CopiesDatabase.Error
	return rep
}
