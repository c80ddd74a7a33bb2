package dto

import (
	"time"

	"github.com/google/uuid"
)

type IngestDocumentRequest struct {
	Filename         string `validate:"required"`
	Content          []byte `validate:"required"`
	ChunkingStrategy string `validate:"omitempty,oneof=fixed semantic"`
}

type IngestDocumentResponse struct {
	DocumentId       uuid.UUID `json:"document_id"`
	Filename         string    `json:"filename"`
	ChunksCount      int       `json:"chunks_count"`
	Status           string    `json:"status"`
	Message          string    `json:"message"`
	ChunkingStrategy string    `json:"chunking_strategy"`
}

type DocumentResponse struct {
	Id               uuid.UUID `json:"id"`
	Filename         string    `json:"filename"`
	FileType         string    `json:"file_type"`
	ChunkingStrategy string    `json:"chunking_strategy"`
	ChunksCount      int       `json:"chunks_count"`
	UploadDate       time.Time `json:"upload_date"`
}

type ListDocumentsRequest struct {
	Skip  int `query:"skip" validate:"gte=0"`
	Limit int `query:"limit" validate:"gte=0,lte=100"`
}

type DeleteDocumentResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
