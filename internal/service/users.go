package service

import (
	"context"
	"errors"
	"time"

	"github.com/flickstack/rental-api/internal/audit"
	"github.com/flickstack/rental-api/internal/domain"
	"github.com/flickstack/rental-api/internal/pkg/logger"
)

// Users covers staff-account management: provisioning and the signed-in
// report.
type Users struct {
	users     domain.UserRepository
	idle      time.Duration
	audit     *audit.Logger
	publisher EventPublisher
}

func NewUsers(users domain.UserRepository, idle time.Duration, aud *audit.Logger, pub EventPublisher) *Users {
	return &Users{users: users, idle: idle, audit: aud, publisher: pub}
}

// NewUserInput carries the provisioning fields. ID, Pin and Role are
// required; the rest default to empty strings.
type NewUserInput struct {
	ID      string
	Pin     string
	Role    string
	FName   string
	LName   string
	Phone   string
	Address string
}

// Create provisions a staff account. New rows start active with no session.
func (s *Users) Create(ctx context.Context, in NewUserInput) error {
	if _, err := s.users.GetByID(ctx, in.ID); err == nil {
		return domain.ErrIDExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	u := domain.User{
		ID:      in.ID,
		FName:   in.FName,
		LName:   in.LName,
		Pin:     in.Pin,
		Role:    in.Role,
		Active:  true,
		Phone:   in.Phone,
		Address: in.Address,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return err
	}

	s.audit.UserCreated(ctx, u.ID, u.Role)
	if s.publisher != nil {
		evt := UserCreatedEvent{UserID: u.ID, Role: u.Role, At: time.Now()}
		if err := s.publisher.PublishUserCreated(ctx, evt); err != nil {
			logger.WithCtx(ctx).Warn().Err(err).Msg("publish user created failed")
		}
	}
	return nil
}

// SignedIn reports the active users whose session token is set and whose
// last activity falls inside the idle window. Only non-sensitive fields
// survive the projection.
func (s *Users) SignedIn(ctx context.Context) ([]domain.SignedInUser, error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]domain.SignedInUser, 0, len(all))
	for _, u := range all {
		if !u.Active || u.Token == "" {
			continue
		}
		last, ok := u.LastActivity()
		if !ok || now.Sub(last) >= s.idle {
			continue
		}
		out = append(out, domain.SignedInUser{
			ID:    u.ID,
			FName: u.FName,
			LName: u.LName,
			Role:  u.Role,
		})
	}
	return out, nil
}
