// FILE: internal/service/chat_service.go
package service

import (
	"context"
	"time"

	"rag-assessment-be/internal/dto"
	"rag-assessment-be/internal/repository/specification"
	"rag-assessment-be/internal/repository/unitofwork"
	"rag-assessment-be/pkg/rag"
)

// BookingIntentError signals the controller to answer with the booking
// redirect payload instead of a chat response. Extracted holds any booking
// details pulled out of the query, nil when nothing usable was found.
type BookingIntentError struct {
	Message   string
	Extracted *rag.BookingInfo
}

func (e *BookingIntentError) Error() string {
	return e.Message
}

type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	GetChatHistory(ctx context.Context, sessionId string, limit int) ([]dto.ChatHistoryEntry, error)
}

type chatService struct {
	pipeline   *rag.Pipeline
	extractor  *rag.BookingExtractor
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
}

func NewChatService(
	pipeline *rag.Pipeline,
	extractor *rag.BookingExtractor,
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
) IChatService {
	return &chatService{
		pipeline:   pipeline,
		extractor:  extractor,
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	result, err := s.pipeline.Query(ctx, req.SessionId, req.Query)
	if err != nil {
		return nil, err
	}

	if result.Type == rag.TypeBookingIntent {
		return nil, &BookingIntentError{
			Message:   result.Message,
			Extracted: s.extractor.Extract(ctx, req.Query),
		}
	}

	// Hand the turn to the background consumer for the SQL backup.
	s.publisher.PublishChatTurn(dto.ChatTurnMessage{
		SessionId: req.SessionId,
		UserId:    req.UserId,
		Query:     req.Query,
		Response:  result.Answer,
		Sources:   result.Sources,
	})

	return &dto.ChatResponse{
		Answer:    result.Answer,
		Sources:   result.Sources,
		SessionId: req.SessionId,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (s *chatService) GetChatHistory(ctx context.Context, sessionId string, limit int) ([]dto.ChatHistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.ChatHistoryRepository().FindAll(ctx,
		specification.BySessionId{SessionId: sessionId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, err
	}

	// Newest rows are fetched first; reverse into chronological order.
	entries := make([]dto.ChatHistoryEntry, len(records))
	for i, record := range records {
		entries[len(records)-1-i] = dto.ChatHistoryEntry{
			Query:     record.Query,
			Response:  record.Response,
			Timestamp: record.CreatedAt,
		}
	}
	return entries, nil
}
