// FILE: pkg/vectorstore/qdrant/client.go
// PURPOSE: Minimal REST client to Qdrant implementing the VectorStore contract

package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"rag-assessment-be/pkg/vectorstore"
)

// Store talks to Qdrant over its HTTP API. It assumes cosine distance and
// creates the collection on Init if missing.
type Store struct {
	url        string
	apiKey     string
	collection string
	client     *http.Client
}

var _ vectorstore.VectorStore = &Store{}

type Config struct {
	URL        string
	APIKey     string
	Collection string
	Timeout    time.Duration
}

func NewStore(cfg Config) *Store {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	collection := cfg.Collection
	if collection == "" {
		collection = "documents"
	}
	return &Store{
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		collection: collection,
		client:     &http.Client{Timeout: timeout},
	}
}

// Init ensures the collection exists with the given vector dimension.
// Qdrant answers 200 when the collection already exists with the same schema.
func (s *Store) Init(ctx context.Context, dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid embedding dimension")
	}
	body := map[string]any{
		"vectors": map[string]any{
			"size":     dimension,
			"distance": "Cosine",
		},
	}
	return s.doJSON(ctx, http.MethodPut, fmt.Sprintf("%s/collections/%s", s.url, s.collection), body, nil)
}

func (s *Store) Upsert(ctx context.Context, points []vectorstore.Point) error {
	if len(points) == 0 {
		return nil
	}
	payload := make([]map[string]any, len(points))
	for i, p := range points {
		payload[i] = map[string]any{
			"id":     p.ID,
			"vector": p.Vector,
			"payload": map[string]any{
				"document_id": p.Metadata.DocumentID,
				"filename":    p.Metadata.Filename,
				"chunk_index": p.Metadata.ChunkIndex,
				"chunk_text":  p.Metadata.ChunkText,
				"chunk_size":  p.Metadata.ChunkSize,
			},
		}
	}
	body := map[string]any{"points": payload}
	url := fmt.Sprintf("%s/collections/%s/points?wait=true", s.url, s.collection)
	return s.doJSON(ctx, http.MethodPut, url, body, nil)
}

func (s *Store) Search(ctx context.Context, queryVector []float32, topK int) ([]vectorstore.SearchResult, error) {
	if topK <= 0 {
		topK = 5
	}
	req := map[string]any{
		"vector":       queryVector,
		"limit":        topK,
		"with_payload": true,
	}
	var resp struct {
		Result []struct {
			ID      any            `json:"id"`
			Score   float64        `json:"score"`
			Payload map[string]any `json:"payload"`
		} `json:"result"`
	}
	url := fmt.Sprintf("%s/collections/%s/points/search", s.url, s.collection)
	if err := s.doJSON(ctx, http.MethodPost, url, req, &resp); err != nil {
		return nil, err
	}

	results := make([]vectorstore.SearchResult, 0, len(resp.Result))
	for _, r := range resp.Result {
		meta := vectorstore.ChunkMetadata{}
		if v, ok := r.Payload["document_id"].(string); ok {
			meta.DocumentID = v
		}
		if v, ok := r.Payload["filename"].(string); ok {
			meta.Filename = v
		}
		if v, ok := r.Payload["chunk_index"].(float64); ok {
			meta.ChunkIndex = int(v)
		}
		if v, ok := r.Payload["chunk_text"].(string); ok {
			meta.ChunkText = v
		}
		if v, ok := r.Payload["chunk_size"].(float64); ok {
			meta.ChunkSize = int(v)
		}
		results = append(results, vectorstore.SearchResult{
			ID:       fmt.Sprintf("%v", r.ID),
			Score:    r.Score,
			Metadata: meta,
		})
	}
	return results, nil
}

// DeleteByDocumentID removes every point whose payload carries the document id.
func (s *Store) DeleteByDocumentID(ctx context.Context, documentID string) error {
	body := map[string]any{
		"filter": map[string]any{
			"must": []map[string]any{
				{
					"key":   "document_id",
					"match": map[string]any{"value": documentID},
				},
			},
		},
	}
	url := fmt.Sprintf("%s/collections/%s/points/delete?wait=true", s.url, s.collection)
	return s.doJSON(ctx, http.MethodPost, url, body, nil)
}

func (s *Store) doJSON(ctx context.Context, method, url string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal qdrant request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create qdrant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("api-key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("qdrant request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read qdrant response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("qdrant error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("unmarshal qdrant response: %w", err)
		}
	}
	return nil
}
