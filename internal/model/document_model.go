package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Filename         string         `gorm:"type:varchar(255);not null"`
	FileType         string         `gorm:"type:varchar(10);not null"`
	ChunkingStrategy string         `gorm:"type:varchar(20);not null"`
	ChunksCount      int            `gorm:"not null"`
	FileSize         int64          `gorm:"default:0"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (Document) TableName() string {
	return "documents"
}

type DocumentChunk struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId  uuid.UUID `gorm:"type:uuid;not null;index"`
	ChunkIndex  int       `gorm:"not null"`
	ChunkText   string    `gorm:"type:text;not null"`
	ChunkSize   int       `gorm:"not null"`
	EmbeddingId string    `gorm:"type:varchar(64)"` // Point ID in the vector store
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (DocumentChunk) TableName() string {
	return "document_chunks"
}
