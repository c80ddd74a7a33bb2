package entity

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id               uuid.UUID
	Filename         string
	FileType         string
	ChunkingStrategy string
	ChunksCount      int
	FileSize         int64
	CreatedAt        time.Time
	UpdatedAt        *time.Time
	DeletedAt        *time.Time
	IsDeleted        bool
}

type DocumentChunk struct {
	Id          uuid.UUID
	DocumentId  uuid.UUID
	ChunkIndex  int
	ChunkText   string
	ChunkSize   int
	EmbeddingId string
	CreatedAt   time.Time
}
