package service_test

import (
	"context"
	"time"

	"github.com/flickstack/rental-api/internal/audit"
	"github.com/flickstack/rental-api/internal/domain"
	"github.com/flickstack/rental-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

type MockUsers struct{ mock.Mock }

func (m *MockUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	var u *domain.User
	if v := args.Get(0); v != nil {
		u = v.(*domain.User)
	}
	return u, args.Error(1)
}
func (m *MockUsers) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	var u *domain.User
	if v := args.Get(0); v != nil {
		u = v.(*domain.User)
	}
	return u, args.Error(1)
}
func (m *MockUsers) ActiveTokens(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	var out []string
	if v := args.Get(0); v != nil {
		out = v.([]string)
	}
	return out, args.Error(1)
}
func (m *MockUsers) SetSession(ctx context.Context, id, token, timestamp string) error {
	return m.Called(ctx, id, token, timestamp).Error(0)
}
func (m *MockUsers) TouchSession(ctx context.Context, id, timestamp string) error {
	return m.Called(ctx, id, timestamp).Error(0)
}
func (m *MockUsers) ClearSession(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockUsers) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var out []domain.User
	if v := args.Get(0); v != nil {
		out = v.([]domain.User)
	}
	return out, args.Error(1)
}
func (m *MockUsers) Create(ctx context.Context, u domain.User) error {
	return m.Called(ctx, u).Error(0)
}

type MockCustomers struct{ mock.Mock }

func (m *MockCustomers) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	var out []domain.Customer
	if v := args.Get(0); v != nil {
		out = v.([]domain.Customer)
	}
	return out, args.Error(1)
}
func (m *MockCustomers) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	var c *domain.Customer
	if v := args.Get(0); v != nil {
		c = v.(*domain.Customer)
	}
	return c, args.Error(1)
}
func (m *MockCustomers) Create(ctx context.Context, c domain.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomers) Update(ctx context.Context, c domain.Customer) error {
	return m.Called(ctx, c).Error(0)
}

type MockMovies struct{ mock.Mock }

func (m *MockMovies) GetByUPC(ctx context.Context, upc string) ([]domain.Movie, error) {
	args := m.Called(ctx, upc)
	var out []domain.Movie
	if v := args.Get(0); v != nil {
		out = v.([]domain.Movie)
	}
	return out, args.Error(1)
}
func (m *MockMovies) GetByTitle(ctx context.Context, title string) ([]domain.Movie, error) {
	args := m.Called(ctx, title)
	var out []domain.Movie
	if v := args.Get(0); v != nil {
		out = v.([]domain.Movie)
	}
	return out, args.Error(1)
}
func (m *MockMovies) Create(ctx context.Context, mv domain.Movie) error {
	return m.Called(ctx, mv).Error(0)
}
func (m *MockMovies) Update(ctx context.Context, mv domain.Movie) error {
	return m.Called(ctx, mv).Error(0)
}
func (m *MockMovies) CopiesByUPC(ctx context.Context, upc string) ([]domain.Copy, error) {
	args := m.Called(ctx, upc)
	var out []domain.Copy
	if v := args.Get(0); v != nil {
		out = v.([]domain.Copy)
	}
	return out, args.Error(1)
}
func (m *MockMovies) GetCopy(ctx context.Context, copyID string) (*domain.Copy, error) {
	args := m.Called(ctx, copyID)
	var c *domain.Copy
	if v := args.Get(0); v != nil {
		c = v.(*domain.Copy)
	}
	return c, args.Error(1)
}
func (m *MockMovies) AddCopy(ctx context.Context, c domain.Copy) error {
	return m.Called(ctx, c).Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishSessionOpened(ctx context.Context, evt service.SessionEvent) error {
	return m.Called(ctx, evt).Error(0)
}
func (m *MockPublisher) PublishSessionClosed(ctx context.Context, evt service.SessionEvent) error {
	return m.Called(ctx, evt).Error(0)
}
func (m *MockPublisher) PublishUserCreated(ctx context.Context, evt service.UserCreatedEvent) error {
	return m.Called(ctx, evt).Error(0)
}

func nopAudit() *audit.Logger { return audit.New(zerolog.Nop()) }

func strPtr(s string) *string { return &s }

func stamp(t time.Time) string { return t.Format(domain.TimestampLayout) }
