// FILE: pkg/vectorstore/pgvector/store.go
// PURPOSE: Postgres-backed similarity index using the pgvector extension

package pgvector

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	pgv "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"rag-assessment-be/pkg/vectorstore"
)

// DocumentEmbedding is one indexed chunk vector with its payload columns.
type DocumentEmbedding struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId string     `gorm:"type:uuid;not null;index"`
	Filename   string     `gorm:"type:varchar(255)"`
	ChunkIndex int        `gorm:"default:0"`
	ChunkText  string     `gorm:"type:text"`
	ChunkSize  int        `gorm:"default:0"`
	Embedding  pgv.Vector `gorm:"type:vector(768)"` // nomic-embed-text uses 768 dimensions
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
}

func (DocumentEmbedding) TableName() string {
	return "document_embeddings"
}

// Store implements the VectorStore contract on top of Postgres + pgvector.
// Cosine distance in pgvector is 1 - cosine_similarity, so the score column
// is computed as 1 - (embedding <=> query).
type Store struct {
	db *gorm.DB
}

var _ vectorstore.VectorStore = &Store{}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Upsert(ctx context.Context, points []vectorstore.Point) error {
	if len(points) == 0 {
		return nil
	}
	models := make([]*DocumentEmbedding, len(points))
	for i, p := range points {
		id, err := uuid.Parse(p.ID)
		if err != nil {
			id = uuid.New()
		}
		models[i] = &DocumentEmbedding{
			Id:         id,
			DocumentId: p.Metadata.DocumentID,
			Filename:   p.Metadata.Filename,
			ChunkIndex: p.Metadata.ChunkIndex,
			ChunkText:  p.Metadata.ChunkText,
			ChunkSize:  p.Metadata.ChunkSize,
			Embedding:  pgv.NewVector(p.Vector),
		}
	}
	if err := s.db.WithContext(ctx).Create(models).Error; err != nil {
		return fmt.Errorf("bulk insert embeddings: %w", err)
	}
	return nil
}

func (s *Store) Search(ctx context.Context, queryVector []float32, topK int) ([]vectorstore.SearchResult, error) {
	if topK <= 0 {
		topK = 5
	}

	type row struct {
		DocumentEmbedding
		Score float64
	}
	var rows []row

	query := pgv.NewVector(queryVector)

	err := s.db.WithContext(ctx).
		Table("document_embeddings").
		Select("document_embeddings.*, 1 - (embedding <=> ?) as score", query).
		Order("score DESC").
		Limit(topK).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	results := make([]vectorstore.SearchResult, len(rows))
	for i, r := range rows {
		results[i] = vectorstore.SearchResult{
			ID:    r.Id.String(),
			Score: r.Score,
			Metadata: vectorstore.ChunkMetadata{
				DocumentID: r.DocumentId,
				Filename:   r.Filename,
				ChunkIndex: r.ChunkIndex,
				ChunkText:  r.ChunkText,
				ChunkSize:  r.ChunkSize,
			},
		}
	}
	return results, nil
}

func (s *Store) DeleteByDocumentID(ctx context.Context, documentID string) error {
	return s.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Delete(&DocumentEmbedding{}).Error
}
