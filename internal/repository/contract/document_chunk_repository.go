package contract

import (
	"context"

	"rag-assessment-be/internal/entity"
	"rag-assessment-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DocumentChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.DocumentChunk) error
	DeleteByDocumentId(ctx context.Context, documentId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
