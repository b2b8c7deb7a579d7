package session

import (
	"context"
	"time"
)

// Session is the store-held fact that a session identifier is live.
// It carries only what refresh rotation needs to re-mint tokens.
type Session struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// Store is the key-value source of truth for sessions. The record's
// existence under its TTL is the session's validity; no other state
// is kept in-process.
//
// Get returns (nil, nil) when no record exists. Delete reports whether
// a record was actually removed: rotation uses that bit as its
// single-winner commit point, so implementations must make the
// removal of a single key atomic.
type Store interface {
	Create(ctx context.Context, sessionID string, s Session, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) (bool, error)
}
