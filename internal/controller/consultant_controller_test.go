package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"predator-web/internal/dto"
	"predator-web/internal/pkg/logger"
	"predator-web/pkg/chatbot"
)

type capturingConsultant struct {
	ctxErr    error
	sessionID string
	message   string
}

func (s *capturingConsultant) Snapshot(string) chatbot.Snapshot {
	return chatbot.Snapshot{}
}

func (s *capturingConsultant) Send(ctx context.Context, sessionID string, req *dto.ConsultantMessageRequest) (bool, chatbot.Snapshot, error) {
	s.ctxErr = ctx.Err()
	s.sessionID = sessionID
	s.message = req.Message
	return true, chatbot.Snapshot{}, nil
}

func TestSocketSender_OutlivesClosedSocket(t *testing.T) {
	svc := &capturingConsultant{}
	ctrl := &consultantController{consultantService: svc, logger: logger.NewNopLogger()}

	connCtx, cancel := context.WithCancel(context.Background())
	send := ctrl.socketSender(connCtx, "sess-1")
	cancel()

	send("What is our moat?")

	require.Equal(t, "sess-1", svc.sessionID)
	assert.Equal(t, "What is our moat?", svc.message)
	assert.NoError(t, svc.ctxErr)
}
