// Repository interface for per-browser view state
package contract

import (
	"context"
	"errors"
	"time"

	"predator-web/internal/view"
)

var ErrSessionNotFound = errors.New("session not found")

// DefaultSessionTTL bounds how long an untouched view state is kept.
const DefaultSessionTTL = 24 * time.Hour

type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (*view.State, error)
	Save(ctx context.Context, sessionID string, state view.State) error
	Delete(ctx context.Context, sessionID string) error
}
