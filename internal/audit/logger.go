// Package audit provides structured audit logging for staff-facing events.
package audit

import (
	"context"

	appCtx "github.com/flickstack/rental-api/internal/pkg/context"
	"github.com/rs/zerolog"
)

type Logger struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Logger {
	return &Logger{
		log: log.With().Bool("audit", true).Logger(),
	}
}

// SessionOpened logs a successful login and the credential path that won.
func (l *Logger) SessionOpened(ctx context.Context, userID, role, path string) {
	l.log.Info().
		Str("action", "session_opened").
		Str("user_id", userID).
		Str("role", role).
		Str("credential_path", path).
		Str("request_id", appCtx.GetRequestID(ctx)).
		Msg("User signed in")
}

// LoginRejected logs a failed login attempt. The reason is the outcome name,
// never the stored credential.
func (l *Logger) LoginRejected(ctx context.Context, userID, reason string) {
	l.log.Warn().
		Str("action", "login_rejected").
		Str("user_id", userID).
		Str("reason", reason).
		Str("request_id", appCtx.GetRequestID(ctx)).
		Msg("Login rejected")
}

// SessionClosed logs an explicit logout.
func (l *Logger) SessionClosed(ctx context.Context, userID string) {
	l.log.Info().
		Str("action", "session_closed").
		Str("user_id", userID).
		Str("request_id", appCtx.GetRequestID(ctx)).
		Msg("User signed out")
}

// SessionExpired logs an idle-timeout rejection.
func (l *Logger) SessionExpired(ctx context.Context, userID string) {
	l.log.Info().
		Str("action", "session_expired").
		Str("user_id", userID).
		Str("request_id", appCtx.GetRequestID(ctx)).
		Msg("Session expired")
}

// UserCreated logs administrative provisioning of a staff account.
func (l *Logger) UserCreated(ctx context.Context, userID, role string) {
	l.log.Info().
		Str("action", "user_created").
		Str("user_id", userID).
		Str("role", role).
		Str("request_id", appCtx.GetRequestID(ctx)).
		Msg("User created")
}
