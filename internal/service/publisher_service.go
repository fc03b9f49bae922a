package service

import (
	"encoding/json"

	"ai-studio-be/internal/dto"
	"ai-studio-be/internal/pkg/logger"
	"ai-studio-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IPublisherService puts studio events onto the in-process topic. Publishing
// is fire-and-forget: a failed publish is logged, never raised, so store
// mutations can never fail because of their notifications.
type IPublisherService interface {
	Publish(event events.Event)
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
	logger    logger.ILogger
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel, sysLogger logger.ILogger) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
		logger:    sysLogger,
	}
}

func (ps *publisherService) Publish(event events.Event) {
	payload, err := json.Marshal(dto.StudioEventMessage{
		Type:       event.EventType(),
		Data:       event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		ps.logger.Warn("Publisher", "Failed to marshal studio event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := ps.pubSub.Publish(ps.topicName, msg); err != nil {
		ps.logger.Warn("Publisher", "Failed to publish studio event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}
