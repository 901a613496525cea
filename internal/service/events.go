package service

import (
	"context"
	"time"
)

// SessionEvent is published when a session is opened or closed.
type SessionEvent struct {
	UserID string    `json:"user_id"`
	Role   string    `json:"role"`
	At     time.Time `json:"at"`
}

// UserCreatedEvent is published when a staff account is provisioned.
type UserCreatedEvent struct {
	UserID string    `json:"user_id"`
	Role   string    `json:"role"`
	At     time.Time `json:"at"`
}

// EventPublisher pushes staff events to the message broker. Publishing is
// best effort: a broker failure never fails the request that triggered it.
type EventPublisher interface {
	PublishSessionOpened(ctx context.Context, evt SessionEvent) error
	PublishSessionClosed(ctx context.Context, evt SessionEvent) error
	PublishUserCreated(ctx context.Context, evt UserCreatedEvent) error
}
