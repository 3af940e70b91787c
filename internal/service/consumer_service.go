package service

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	"predator-web/internal/pkg/logger"
	"predator-web/pkg/events"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// EventRelay forwards site events beyond the process. *nats.Publisher
// satisfies it.
type EventRelay interface {
	Publish(ctx context.Context, event events.Event) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	relay      EventRelay
	logger     logger.ILogger
}

// NewConsumerService builds the site event consumer. relay may be nil, in
// which case events are only logged.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	relay EventRelay,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		relay:      relay,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	event, err := events.Decode(msg.Payload)
	if err != nil {
		cs.logger.Error("EVENTS", "Dropping malformed site event", map[string]interface{}{
			"error":      err.Error(),
			"message_id": msg.UUID,
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info("EVENTS", "Site event", map[string]interface{}{
		"type":        event.Type,
		"data":        event.Data,
		"occurred_at": event.OccurredAt,
	})

	if cs.relay != nil {
		if err := cs.relay.Publish(ctx, event); err != nil {
			// The relay is best effort; the event is already logged.
			cs.logger.Warn("EVENTS", "Failed to relay site event to NATS", map[string]interface{}{
				"type":  event.Type,
				"error": err.Error(),
			})
		}
	}

	msg.Ack()
}
