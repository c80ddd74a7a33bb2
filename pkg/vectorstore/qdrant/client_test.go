package qdrant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-assessment-be/pkg/vectorstore"
)

func TestSearchMapsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/documents/points/search", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, float64(3), req["limit"])
		assert.Equal(t, true, req["with_payload"])

		resp := map[string]any{
			"result": []map[string]any{
				{
					"id":    "point-1",
					"score": 0.91,
					"payload": map[string]any{
						"document_id": "doc-1",
						"filename":    "report.txt",
						"chunk_index": 2,
						"chunk_text":  "some chunk",
						"chunk_size":  10,
					},
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	store := NewStore(Config{URL: srv.URL})
	results, err := store.Search(context.Background(), []float32{0.1, 0.2}, 3)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "point-1", results[0].ID)
	assert.InDelta(t, 0.91, results[0].Score, 1e-9)
	assert.Equal(t, "doc-1", results[0].Metadata.DocumentID)
	assert.Equal(t, "report.txt", results[0].Metadata.Filename)
	assert.Equal(t, 2, results[0].Metadata.ChunkIndex)
	assert.Equal(t, "some chunk", results[0].Metadata.ChunkText)
}

func TestSearchDefaultsTopK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, float64(5), req["limit"])
		json.NewEncoder(w).Encode(map[string]any{"result": []any{}})
	}))
	defer srv.Close()

	store := NewStore(Config{URL: srv.URL})
	results, err := store.Search(context.Background(), []float32{0.1}, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestUpsertSendsPointsAndWaits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/collections/documents/points", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("wait"))

		var req struct {
			Points []struct {
				ID      string         `json:"id"`
				Vector  []float32      `json:"vector"`
				Payload map[string]any `json:"payload"`
			} `json:"points"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Points, 1)
		assert.Equal(t, "doc-1", req.Points[0].Payload["document_id"])

		json.NewEncoder(w).Encode(map[string]any{"result": map[string]any{"status": "completed"}})
	}))
	defer srv.Close()

	store := NewStore(Config{URL: srv.URL})
	err := store.Upsert(context.Background(), []vectorstore.Point{
		{
			ID:     "11111111-1111-1111-1111-111111111111",
			Vector: []float32{0.1, 0.2},
			Metadata: vectorstore.ChunkMetadata{
				DocumentID: "doc-1",
				Filename:   "report.txt",
			},
		},
	})
	require.NoError(t, err)
}

func TestUpsertEmptyIsNoop(t *testing.T) {
	// No server: an empty batch must not issue a request at all.
	store := NewStore(Config{URL: "http://127.0.0.1:1"})
	require.NoError(t, store.Upsert(context.Background(), nil))
}

func TestDeleteByDocumentIDFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/documents/points/delete", r.URL.Path)

		var req struct {
			Filter struct {
				Must []struct {
					Key   string `json:"key"`
					Match struct {
						Value string `json:"value"`
					} `json:"match"`
				} `json:"must"`
			} `json:"filter"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Filter.Must, 1)
		assert.Equal(t, "document_id", req.Filter.Must[0].Key)
		assert.Equal(t, "doc-9", req.Filter.Must[0].Match.Value)

		json.NewEncoder(w).Encode(map[string]any{"result": map[string]any{"status": "completed"}})
	}))
	defer srv.Close()

	store := NewStore(Config{URL: srv.URL})
	require.NoError(t, store.DeleteByDocumentID(context.Background(), "doc-9"))
}

func TestErrorStatusSurfacesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":{"error":"wrong vector size"}}`))
	}))
	defer srv.Close()

	store := NewStore(Config{URL: srv.URL})
	_, err := store.Search(context.Background(), []float32{0.1}, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "wrong vector size")
}
