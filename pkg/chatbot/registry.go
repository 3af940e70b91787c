package chatbot

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"predator-web/internal/pkg/logger"
	"predator-web/pkg/llm"
)

const (
	DefaultSessionTTL    = time.Hour
	defaultCleanupPeriod = 10 * time.Minute
)

// Registry keeps one Session per browser session. Idle sessions expire,
// which drops their transcript.
type Registry struct {
	mu       sync.Mutex
	cache    *cache.Cache
	ttl      time.Duration
	provider llm.LLMProvider
	logger   logger.ILogger
	observe  func(sessionID string) Observer
}

type RegistryOption func(*Registry)

func WithTTL(ttl time.Duration) RegistryOption {
	return func(r *Registry) {
		r.ttl = ttl
	}
}

// WithSessionObserver attaches an observer to every session the registry
// creates.
func WithSessionObserver(fn func(sessionID string) Observer) RegistryOption {
	return func(r *Registry) {
		r.observe = fn
	}
}

func NewRegistry(provider llm.LLMProvider, log logger.ILogger, opts ...RegistryOption) *Registry {
	r := &Registry{
		ttl:      DefaultSessionTTL,
		provider: provider,
		logger:   log,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.cache = cache.New(r.ttl, defaultCleanupPeriod)
	return r
}

// Get returns the session for id, creating it on first use. Every access
// renews the expiry.
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.cache.Get(id); ok {
		s := v.(*Session)
		r.cache.Set(id, s, r.ttl)
		return s
	}

	var opts []SessionOption
	if r.observe != nil {
		if o := r.observe(id); o != nil {
			opts = append(opts, WithObserver(o))
		}
	}
	s := NewSession(r.provider, r.logger, opts...)
	r.cache.Set(id, s, r.ttl)
	return s
}

// Peek returns the session without creating one.
func (r *Registry) Peek(id string) (*Session, bool) {
	v, ok := r.cache.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

func (r *Registry) Count() int {
	return r.cache.ItemCount()
}
