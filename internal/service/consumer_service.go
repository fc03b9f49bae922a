package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-studio-be/internal/dto"
	"ai-studio-be/internal/pkg/logger"
	"ai-studio-be/internal/websocket"
	"ai-studio-be/pkg/events"
	pktNats "ai-studio-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService drains the in-process studio event topic and fans each
// event out to WebSocket subscribers and (when connected) the NATS bus.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	hub       *websocket.Hub
	natsPub   *pktNats.Publisher
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	hub *websocket.Hub,
	natsPub *pktNats.Publisher,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		hub:       hub,
		natsPub:   natsPub,
		logger:    sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
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
	var payload dto.StudioEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("Consumer", "Failed to unmarshal studio event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	// Presentation subscribers get the envelope as-is.
	cs.hub.Broadcast(msg.Payload)

	// Mirroring to NATS is auxiliary; log and move on when it fails.
	if cs.natsPub != nil {
		evt := events.BaseEvent{
			Type:       payload.Type,
			Data:       payload.Data,
			OccurredAt: payload.OccurredAt,
		}
		pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := cs.natsPub.Publish(pubCtx, evt); err != nil {
			cs.logger.Warn("Consumer", "Failed to mirror event to NATS", map[string]interface{}{
				"type":  payload.Type,
				"error": err.Error(),
			})
		}
		cancel()
	}

	msg.Ack()
}
