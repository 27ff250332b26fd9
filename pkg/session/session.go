// Package session holds per-user menu state for the bot surface: which
// gender and roast level a user picked through the two-step selection flow.
package session

import (
	"context"

	"wahalabot/pkg/roast"
)

// Session is one user's selection progress. A session exists from the first
// /start onward and is never destroyed by the flow itself; eviction is left
// to the backing store (see RedisStore's TTL).
type Session struct {
	Gender roast.Gender `json:"gender,omitempty"`
	Level  roast.Level  `json:"level,omitempty"`
}

// Ready reports whether both menu steps are complete and free text can be
// roasted.
func (s *Session) Ready() bool {
	return s != nil && s.Gender != "" && s.Level != ""
}

// Store is a per-user session store. Get returns (nil, nil) for users with
// no session. Implementations must allow different user IDs to be accessed
// concurrently without contending on a single lock.
type Store interface {
	Get(ctx context.Context, userID string) (*Session, error)
	Put(ctx context.Context, userID string, s *Session) error
	Delete(ctx context.Context, userID string) error
}
