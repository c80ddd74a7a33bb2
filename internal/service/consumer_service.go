// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"

	"rag-assessment-be/internal/dto"
	"rag-assessment-be/internal/entity"
	"rag-assessment-be/internal/pkg/logger"
	"rag-assessment-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService persists answered chat turns into the SQL history table.
// The write happens off the request path so a slow database never delays
// the chat response.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
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
	var turn dto.ChatTurnMessage
	if err := json.Unmarshal(msg.Payload, &turn); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal chat turn", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	sources, err := json.Marshal(turn.Sources)
	if err != nil {
		cs.logger.Error("ConsumerService", "Failed to marshal sources", map[string]interface{}{
			"session_id": turn.SessionId,
			"error":      err.Error(),
		})
		sources = []byte("[]")
	}

	record := &entity.ChatHistory{
		Id:        uuid.New(),
		SessionId: turn.SessionId,
		UserId:    turn.UserId,
		Query:     turn.Query,
		Response:  turn.Response,
		Sources:   sources,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatHistoryRepository().Create(ctx, record); err != nil {
		cs.logger.Error("ConsumerService", "Failed to persist chat history", map[string]interface{}{
			"session_id": turn.SessionId,
			"error":      err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	cs.logger.Info("ConsumerService", "Chat turn persisted", map[string]interface{}{
		"session_id": turn.SessionId,
	})
	msg.Ack()
}
