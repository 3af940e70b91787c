package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"predator-web/internal/repository/contract"
	"predator-web/internal/view"
)

type SessionRepository struct {
	cache *cache.Cache
}

var _ contract.SessionRepository = &SessionRepository{}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = contract.DefaultSessionTTL
	}
	// Expired states are purged every 10 minutes
	return &SessionRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *SessionRepository) Save(_ context.Context, sessionID string, state view.State) error {
	r.cache.Set(sessionID, state, cache.DefaultExpiration)
	return nil
}

// Get hands out a copy; callers mutate it and Save it back.
func (r *SessionRepository) Get(_ context.Context, sessionID string) (*view.State, error) {
	if x, found := r.cache.Get(sessionID); found {
		state := x.(view.State)
		return &state, nil
	}
	return nil, contract.ErrSessionNotFound
}

func (r *SessionRepository) Delete(_ context.Context, sessionID string) error {
	r.cache.Delete(sessionID)
	return nil
}
