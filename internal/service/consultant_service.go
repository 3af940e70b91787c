package service

import (
	"context"

	"predator-web/internal/dto"
	"predator-web/internal/pkg/logger"
	"predator-web/internal/pkg/serverutils"
	"predator-web/pkg/chatbot"
	"predator-web/pkg/events"
)

type IConsultantService interface {
	Snapshot(sessionID string) chatbot.Snapshot
	// Send blocks until the reply is in. accepted is false for blank input
	// or while a previous reply is pending.
	Send(ctx context.Context, sessionID string, req *dto.ConsultantMessageRequest) (accepted bool, snap chatbot.Snapshot, err error)
}

type consultantService struct {
	registry  *chatbot.Registry
	publisher IPublisherService
	logger    logger.ILogger
}

func NewConsultantService(registry *chatbot.Registry, publisher IPublisherService, log logger.ILogger) IConsultantService {
	return &consultantService{
		registry:  registry,
		publisher: publisher,
		logger:    log,
	}
}

func (s *consultantService) Snapshot(sessionID string) chatbot.Snapshot {
	return s.registry.Get(sessionID).Snapshot()
}

func (s *consultantService) Send(ctx context.Context, sessionID string, req *dto.ConsultantMessageRequest) (bool, chatbot.Snapshot, error) {
	if err := serverutils.ValidateRequest(req); err != nil {
		return false, chatbot.Snapshot{}, err
	}

	session := s.registry.Get(sessionID)
	accepted := session.Send(ctx, req.Message)
	snap := session.Snapshot()

	if accepted && s.publisher != nil {
		evt := events.New(events.TypeConsultantMessage, map[string]interface{}{
			"session_id":     sessionID,
			"message_length": len(req.Message),
			"transcript_len": len(snap.Messages),
		})
		if err := s.publisher.PublishEvent(ctx, evt); err != nil {
			s.logger.Warn("CONSULTANT", "Failed to publish consultant event", map[string]interface{}{"error": err.Error()})
		}
	}

	return accepted, snap, nil
}

func ToConsultantResponse(accepted bool, snap chatbot.Snapshot) dto.ConsultantResponse {
	res := dto.ConsultantResponse{
		Accepted: accepted,
		State:    string(snap.State),
		Messages: make([]dto.ConsultantMessageDTO, 0, len(snap.Messages)),
	}
	for _, m := range snap.Messages {
		res.Messages = append(res.Messages, dto.ConsultantMessageDTO{Role: string(m.Role), Text: m.Text})
	}
	return res
}
