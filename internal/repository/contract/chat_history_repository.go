package contract

import (
	"context"

	"rag-assessment-be/internal/entity"
	"rag-assessment-be/internal/repository/specification"
)

type ChatHistoryRepository interface {
	Create(ctx context.Context, record *entity.ChatHistory) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatHistory, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
