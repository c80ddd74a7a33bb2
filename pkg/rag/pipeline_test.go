package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-assessment-be/pkg/store"
	"rag-assessment-be/pkg/vectorstore"
)

type fakeEmbedder struct {
	vector []float32
	err    error
	calls  int
}

func (f *fakeEmbedder) Generate(string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

func (f *fakeEmbedder) GenerateBatch(texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vec, err := f.Generate(texts[i])
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return vectors, nil
}

type fakeRetriever struct {
	results []vectorstore.SearchResult
	err     error
	calls   int
	topK    int
}

func (f *fakeRetriever) Search(_ context.Context, _ []float32, topK int) ([]vectorstore.SearchResult, error) {
	f.calls++
	f.topK = topK
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func newTestPipeline(embedder *fakeEmbedder, retriever *fakeRetriever, llmFake *fakeLLM) (*Pipeline, *store.MemoryConversationStore) {
	conversations := store.NewMemoryConversationStore()
	composer := NewComposer(llmFake, conversations, testLogger())
	return NewPipeline(embedder, retriever, conversations, composer, testLogger()), conversations
}

func TestQueryHappyPath(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1, 0.2}}
	retriever := &fakeRetriever{results: []vectorstore.SearchResult{
		{Score: 0.88, Metadata: vectorstore.ChunkMetadata{DocumentID: "d1", Filename: "faq.txt", ChunkText: "Answers live here."}},
	}}
	llmFake := &fakeLLM{response: "Here is your answer."}
	pipeline, conversations := newTestPipeline(embedder, retriever, llmFake)

	result, err := pipeline.Query(context.Background(), "s1", "where do answers live?")
	require.NoError(t, err)

	assert.Equal(t, TypeAnswer, result.Type)
	assert.Equal(t, "Here is your answer.", result.Answer)
	require.Len(t, result.Sources, 1)
	assert.Equal(t, "faq.txt", result.Sources[0].Filename)
	assert.Equal(t, 0.88, result.Sources[0].RelevanceScore)
	assert.Equal(t, 5, retriever.topK)

	history, err := conversations.ReadRecent(context.Background(), "s1", 0)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestQueryBookingShortCircuit(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1}}
	retriever := &fakeRetriever{}
	llmFake := &fakeLLM{response: "unused"}
	pipeline, conversations := newTestPipeline(embedder, retriever, llmFake)

	result, err := pipeline.Query(context.Background(), "s1", "I want to book an interview")
	require.NoError(t, err)

	assert.Equal(t, TypeBookingIntent, result.Type)
	assert.Equal(t, BookingIntentMessage, result.Message)
	assert.Empty(t, result.Answer)
	assert.NotNil(t, result.Sources)
	assert.Empty(t, result.Sources)

	// No embedding, retrieval, generation, or history writes happen.
	assert.Zero(t, embedder.calls)
	assert.Zero(t, retriever.calls)
	assert.Zero(t, llmFake.calls)
	n, err := conversations.Length(context.Background(), "s1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestQueryEmbeddingFailurePropagates(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("embedder down")}
	retriever := &fakeRetriever{}
	llmFake := &fakeLLM{}
	pipeline, conversations := newTestPipeline(embedder, retriever, llmFake)

	_, err := pipeline.Query(context.Background(), "s1", "a plain question")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedding query")
	assert.Zero(t, retriever.calls)

	n, err := conversations.Length(context.Background(), "s1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestQueryRetrievalFailurePropagates(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1}}
	retriever := &fakeRetriever{err: errors.New("index offline")}
	llmFake := &fakeLLM{}
	pipeline, _ := newTestPipeline(embedder, retriever, llmFake)

	_, err := pipeline.Query(context.Background(), "s1", "a plain question")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "searching index")
	assert.Zero(t, llmFake.calls)
}

// failingHistoryStore errors on every read while writes still work.
type failingHistoryStore struct {
	*store.MemoryConversationStore
	readErr error
}

func (f *failingHistoryStore) ReadRecent(context.Context, string, int) ([]store.Message, error) {
	return nil, f.readErr
}

func TestQueryHistoryReadFailurePropagates(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1}}
	retriever := &fakeRetriever{}
	llmFake := &fakeLLM{response: "unused"}
	conversations := &failingHistoryStore{
		MemoryConversationStore: store.NewMemoryConversationStore(),
		readErr:                 errors.New("redis down"),
	}
	composer := NewComposer(llmFake, conversations, testLogger())
	pipeline := NewPipeline(embedder, retriever, conversations, composer, testLogger())

	_, err := pipeline.Query(context.Background(), "s1", "a plain question")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading history")
	assert.Zero(t, llmFake.calls)
}

func TestQueryGenerationFailureIsSoft(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1}}
	retriever := &fakeRetriever{}
	llmFake := &fakeLLM{err: errors.New("rate limited")}
	pipeline, _ := newTestPipeline(embedder, retriever, llmFake)

	result, err := pipeline.Query(context.Background(), "s1", "a plain question")
	require.NoError(t, err)
	assert.Equal(t, TypeAnswer, result.Type)
	assert.Equal(t, "Error generating answer: rate limited", result.Answer)
}
