package service

import (
	"context"
	"errors"
	"time"

	"github.com/flickstack/rental-api/internal/audit"
	"github.com/flickstack/rental-api/internal/auth"
	"github.com/flickstack/rental-api/internal/domain"
	"github.com/flickstack/rental-api/internal/pkg/logger"
)

// Auth owns the session state machine: issuing tokens at login, the
// per-request idle-timeout gate, and logout.
type Auth struct {
	users     domain.UserRepository
	idle      time.Duration
	audit     *audit.Logger
	publisher EventPublisher
}

func NewAuth(users domain.UserRepository, idle time.Duration, aud *audit.Logger, pub EventPublisher) *Auth {
	return &Auth{users: users, idle: idle, audit: aud, publisher: pub}
}

// LoginResult is what a successful login exposes. It never carries the pin,
// question or answer.
type LoginResult struct {
	ID                    string
	FName                 string
	LName                 string
	Role                  string
	Token                 string
	NeedsSecurityQuestion bool
}

// LoginWithPin authenticates the primary credential. The comparison is exact:
// no trimming, no case folding.
func (s *Auth) LoginWithPin(ctx context.Context, id, pin string) (*LoginResult, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// An inactive account fails exactly like a wrong pin, so deactivation
	// cannot be probed.
	if !u.Active || !u.VerifyPin(pin) {
		s.audit.LoginRejected(ctx, id, "invalid_credentials")
		return nil, domain.ErrInvalidCredentials
	}

	res, err := s.openSession(ctx, u)
	if err != nil {
		return nil, err
	}
	res.NeedsSecurityQuestion = !u.HasSecurityQuestion()
	s.audit.SessionOpened(ctx, u.ID, u.Role, "pin")
	return res, nil
}

// LoginWithAnswer authenticates via the security-question fallback. An
// account whose question was never configured cannot use this path at all,
// which is reported separately from a wrong answer.
func (s *Auth) LoginWithAnswer(ctx context.Context, id, answer string) (*LoginResult, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !u.Active {
		s.audit.LoginRejected(ctx, id, "invalid_credentials")
		return nil, domain.ErrInvalidCredentials
	}
	if u.Question == "" || u.Answer == nil {
		s.audit.LoginRejected(ctx, id, "security_question_not_set")
		return nil, domain.ErrSecurityQuestionNotSet
	}
	if !u.VerifyAnswer(answer) {
		s.audit.LoginRejected(ctx, id, "incorrect_answer")
		return nil, domain.ErrIncorrectAnswer
	}

	res, err := s.openSession(ctx, u)
	if err != nil {
		return nil, err
	}
	// The fallback only works when the pair is already configured.
	res.NeedsSecurityQuestion = false
	s.audit.SessionOpened(ctx, u.ID, u.Role, "security_question")
	return res, nil
}

// openSession issues a token unique against every currently-assigned token
// and persists it with a fresh timestamp. The persist is fire-and-forget:
// a write failure is logged but the login still succeeds, matching the
// long-standing behavior callers depend on.
func (s *Auth) openSession(ctx context.Context, u *domain.User) (*LoginResult, error) {
	taken, err := s.users.ActiveTokens(ctx)
	if err != nil {
		return nil, err
	}

	token, err := auth.NewToken(taken)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.users.SetSession(ctx, u.ID, token, now.Format(domain.TimestampLayout)); err != nil {
		logger.WithCtx(ctx).Warn().Err(err).Str("user_id", u.ID).Msg("session persist failed")
	}

	s.publishOpened(ctx, u, now)

	return &LoginResult{
		ID:    u.ID,
		FName: u.FName,
		LName: u.LName,
		Role:  u.Role,
		Token: token,
	}, nil
}

// Session validates a presented token and slides the idle window forward.
// The returned user is the authenticated principal for the request.
func (s *Auth) Session(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrNoTokenProvided
	}

	u, err := s.users.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown token reads the same as a bad login credential.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	last, ok := u.LastActivity()
	if !ok {
		// Cleared or never-set timestamp: an expired session, not an
		// active session with no clock.
		s.audit.SessionExpired(ctx, u.ID)
		return nil, domain.ErrSessionTimeout
	}

	now := time.Now()
	if now.Sub(last) >= s.idle {
		s.audit.SessionExpired(ctx, u.ID)
		return nil, domain.ErrSessionTimeout
	}

	ts := now.Format(domain.TimestampLayout)
	if err := s.users.TouchSession(ctx, u.ID, ts); err != nil {
		logger.WithCtx(ctx).Warn().Err(err).Str("user_id", u.ID).Msg("session refresh failed")
	}
	u.Timestamp = ts

	return u, nil
}

// Logout clears a user's session state. It only needs a known identifier,
// not proof of the active token.
func (s *Auth) Logout(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrUserNotFound
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.ClearSession(ctx, u.ID); err != nil {
		logger.WithCtx(ctx).Warn().Err(err).Str("user_id", u.ID).Msg("session clear failed")
	}

	s.audit.SessionClosed(ctx, u.ID)
	s.publishClosed(ctx, u)
	return nil
}

func (s *Auth) publishOpened(ctx context.Context, u *domain.User, at time.Time) {
	if s.publisher == nil {
		return
	}
	evt := SessionEvent{UserID: u.ID, Role: u.Role, At: at}
	if err := s.publisher.PublishSessionOpened(ctx, evt); err != nil {
		logger.WithCtx(ctx).Warn().Err(err).Msg("publish session opened failed")
	}
}

func (s *Auth) publishClosed(ctx context.Context, u *domain.User) {
	if s.publisher == nil {
		return
	}
	evt := SessionEvent{UserID: u.ID, Role: u.Role, At: time.Now()}
	if err := s.publisher.PublishSessionClosed(ctx, evt); err != nil {
		logger.WithCtx(ctx).Warn().Err(err).Msg("publish session closed failed")
	}
}
