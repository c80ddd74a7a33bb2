// FILE: pkg/vectorstore/store.go
// PURPOSE: Contracts for the similarity index used by ingestion and retrieval

package vectorstore

import "context"

// ChunkMetadata is the payload stored alongside each vector.
// Defaults on read: empty document id, "Unknown" filename handled by callers.
type ChunkMetadata struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	ChunkIndex int    `json:"chunk_index"`
	ChunkText  string `json:"chunk_text"`
	ChunkSize  int    `json:"chunk_size"`
}

// SearchResult is one retrieved chunk's match against a query.
// Score is an opaque ordering key (higher = more relevant); within one
// response results are sorted descending by it.
type SearchResult struct {
	ID       string
	Score    float64
	Metadata ChunkMetadata
}

// Point is one vector plus payload to index.
type Point struct {
	ID       string
	Vector   []float32
	Metadata ChunkMetadata
}

// Retriever is the read side used on the query path.
// TopK is a cap, not a guarantee: fewer results return when the index
// holds fewer candidates.
type Retriever interface {
	Search(ctx context.Context, queryVector []float32, topK int) ([]SearchResult, error)
}

// VectorStore is the full contract used by ingestion.
type VectorStore interface {
	Retriever
	Upsert(ctx context.Context, points []Point) error
	DeleteByDocumentID(ctx context.Context, documentID string) error
}
