// FILE: internal/service/publisher_service.go
package service

import (
	"encoding/json"

	"rag-assessment-be/internal/dto"
	"rag-assessment-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	PublishChatTurn(turn dto.ChatTurnMessage)
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
	logger    logger.ILogger
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel, log logger.ILogger) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
		logger:    log,
	}
}

// PublishChatTurn hands the answered turn to the in-process bus. Failures
// are logged and dropped; the Redis history already holds the live copy.
func (p *publisherService) PublishChatTurn(turn dto.ChatTurnMessage) {
	payload, err := json.Marshal(turn)
	if err != nil {
		p.logger.Error("PublisherService", "Failed to marshal chat turn", map[string]interface{}{
			"session_id": turn.SessionId,
			"error":      err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.pubSub.Publish(p.topicName, msg); err != nil {
		p.logger.Error("PublisherService", "Failed to publish chat turn", map[string]interface{}{
			"session_id": turn.SessionId,
			"error":      err.Error(),
		})
	}
}
