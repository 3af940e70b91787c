package service

import (
	"context"
	"sync"
	"testing"

	"predator-web/internal/catalog"
	"predator-web/internal/pkg/logger"
	"predator-web/internal/repository/memory"
	"predator-web/pkg/events"
	"predator-web/pkg/llm"
	"predator-web/pkg/payment"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, payload []byte) error {
	e, err := events.Decode(payload)
	if err != nil {
		return err
	}
	return p.PublishEvent(ctx, e)
}

func (p *recordingPublisher) PublishEvent(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType())
	}
	return out
}

type stubLLM struct {
	reply string
	err   error
}

func (s stubLLM) Chat(context.Context, []llm.Message, ...llm.Option) (string, error) {
	return s.reply, s.err
}

func (s stubLLM) Generate(context.Context, string, ...llm.Option) (string, error) {
	return s.reply, s.err
}

type fixture struct {
	catalog   *catalog.Catalog
	sessions  *memory.SessionRepository
	publisher *recordingPublisher
	site      ISiteService
	checkout  ICheckoutService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c := catalog.Default()
	sessions := memory.NewSessionRepository(0)
	pub := &recordingPublisher{}
	gw := payment.NewPayFast(payment.PayFastConfig{MerchantID: "merchant", MerchantKey: "key", Sandbox: true})
	log := logger.NewNopLogger()

	return &fixture{
		catalog:   c,
		sessions:  sessions,
		publisher: pub,
		site:      NewSiteService(c, sessions, gw, pub, log),
		checkout:  NewCheckoutService(c, sessions, gw, pub, log),
	}
}
