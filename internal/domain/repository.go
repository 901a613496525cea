package domain

import (
	"context"
	"time"
)

// UserRepository is the narrow store surface the authentication core runs
// against. Lookups are keyed by id or token; there is no fetch-all scan on
// the request path.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByToken(ctx context.Context, token string) (*User, error)

	// ActiveTokens returns every currently-assigned session token. The token
	// generator draws from a space disjoint from this set.
	ActiveTokens(ctx context.Context) ([]string, error)

	// SetSession writes a new token/timestamp pair for a user.
	SetSession(ctx context.Context, id, token, timestamp string) error

	// TouchSession refreshes only the last-activity timestamp.
	TouchSession(ctx context.Context, id, timestamp string) error

	// ClearSession resets token and timestamp to empty strings.
	ClearSession(ctx context.Context, id string) error

	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, u User) error
}

type CustomerRepository interface {
	List(ctx context.Context) ([]Customer, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
	Create(ctx context.Context, c Customer) error
	Update(ctx context.Context, c Customer) error
}

type MovieRepository interface {
	GetByUPC(ctx context.Context, upc string) ([]Movie, error)
	GetByTitle(ctx context.Context, title string) ([]Movie, error)
	Create(ctx context.Context, m Movie) error
	Update(ctx context.Context, m Movie) error

	CopiesByUPC(ctx context.Context, upc string) ([]Copy, error)
	GetCopy(ctx context.Context, copyID string) (*Copy, error)
	AddCopy(ctx context.Context, c Copy) error
}

// CacheRepository backs the IP rate limiter.
type CacheRepository interface {
	AllowRequest(ctx context.Context, ip string, limit int, window time.Duration) (bool, error)
}
