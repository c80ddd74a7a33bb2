package unitofwork

import (
	"context"

	"rag-assessment-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	DocumentRepository() contract.DocumentRepository
	DocumentChunkRepository() contract.DocumentChunkRepository
	BookingRepository() contract.BookingRepository
	ChatHistoryRepository() contract.ChatHistoryRepository
}
