package chatbot

import (
	"context"
	"strings"
	"sync"

	"predator-web/internal/constant"
	"predator-web/internal/pkg/logger"
	"predator-web/pkg/llm"
)

type Role string

const (
	RoleUser  Role = constant.ChatMessageRoleUser
	RoleModel Role = constant.ChatMessageRoleModel
)

type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

type State string

const (
	StateIdle    State = "idle"
	StateSending State = "sending"
)

// Snapshot is a consistent copy of a session at one instant.
type Snapshot struct {
	Messages []Message `json:"messages"`
	State    State     `json:"state"`
}

// Observer is notified after every transcript change. It runs on the
// sending goroutine without the session lock held.
type Observer func(Snapshot)

type SessionOption func(*Session)

func WithObserver(o Observer) SessionOption {
	return func(s *Session) {
		s.observers = append(s.observers, o)
	}
}

// WithLLMOptions appends to the default persona and sampling options.
func WithLLMOptions(opts ...llm.Option) SessionOption {
	return func(s *Session) {
		s.llmOptions = append(s.llmOptions, opts...)
	}
}

// Session is one visitor's conversation with the consultant. At most one
// reply is in flight at a time.
type Session struct {
	mu         sync.Mutex
	provider   llm.LLMProvider
	logger     logger.ILogger
	llmOptions []llm.Option
	observers  []Observer

	messages []Message
	state    State
}

func NewSession(provider llm.LLMProvider, log logger.ILogger, opts ...SessionOption) *Session {
	s := &Session{
		provider: provider,
		logger:   log,
		llmOptions: []llm.Option{
			llm.WithSystemInstruction(constant.ConsultantSystemInstruction),
			llm.WithTemperature(constant.ConsultantTemperature),
			llm.WithTopP(constant.ConsultantTopP),
		},
		messages: []Message{{Role: RoleModel, Text: constant.ConsultantWelcomeMessage}},
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send appends text as a user message and blocks until the reply (or the
// fallback) is appended. It reports false, touching nothing, when text is
// blank or another reply is still pending.
func (s *Session) Send(ctx context.Context, text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	s.mu.Lock()
	if s.state == StateSending {
		s.mu.Unlock()
		return false
	}
	s.messages = append(s.messages, Message{Role: RoleUser, Text: text})
	s.state = StateSending
	history := toHistory(s.messages)
	pending := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(pending)

	reply, err := s.provider.Chat(ctx, history, s.llmOptions...)
	switch {
	case err != nil:
		s.logger.Error("CHATBOT", "Consultant reply failed", map[string]interface{}{
			"error":   err.Error(),
			"history": len(history),
		})
		reply = constant.ConsultantOfflineMessage
	case strings.TrimSpace(reply) == "":
		s.logger.Warn("CHATBOT", "Consultant returned an empty reply", nil)
		reply = constant.ConsultantSilenceMessage
	}

	s.mu.Lock()
	s.messages = append(s.messages, Message{Role: RoleModel, Text: reply})
	s.state = StateIdle
	done := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(done)
	return true
}

func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		Messages: append([]Message(nil), s.messages...),
		State:    s.state,
	}
}

func (s *Session) notify(snap Snapshot) {
	for _, o := range s.observers {
		o(snap)
	}
}

func toHistory(messages []Message) []llm.Message {
	history := make([]llm.Message, len(messages))
	for i, m := range messages {
		history[i] = llm.Message{Role: string(m.Role), Content: m.Text}
	}
	return history
}
