// FILE: pkg/rag/pipeline.go
// PURPOSE: Query orchestration: intent gate, embed, retrieve, compose

package rag

import (
	"context"
	"fmt"
	"log"

	"rag-assessment-be/pkg/embedding"
	"rag-assessment-be/pkg/store"
	"rag-assessment-be/pkg/vectorstore"
)

const (
	defaultTopK         = 5
	defaultHistoryLimit = 10
)

// Pipeline runs the full question answering flow for one query.
// Booking requests short-circuit before any embedding or retrieval work.
type Pipeline struct {
	embedder      embedding.EmbeddingProvider
	retriever     vectorstore.Retriever
	conversations store.ConversationStore
	composer      *Composer
	logger        *log.Logger

	topK         int
	historyLimit int
}

func NewPipeline(
	embedder embedding.EmbeddingProvider,
	retriever vectorstore.Retriever,
	conversations store.ConversationStore,
	composer *Composer,
	logger *log.Logger,
) *Pipeline {
	return &Pipeline{
		embedder:      embedder,
		retriever:     retriever,
		conversations: conversations,
		composer:      composer,
		logger:        logger,
		topK:          defaultTopK,
		historyLimit:  defaultHistoryLimit,
	}
}

// Query answers one user query within a session.
func (p *Pipeline) Query(ctx context.Context, sessionID, query string) (*AnswerResult, error) {
	if IsBookingIntent(query) {
		p.logger.Printf("[INTENT] Booking request detected for session %s", sessionID)
		return &AnswerResult{
			Type:    TypeBookingIntent,
			Message: BookingIntentMessage,
			Sources: []Source{},
		}, nil
	}

	queryVector, err := p.embedder.Generate(query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	results, err := p.retriever.Search(ctx, queryVector, p.topK)
	if err != nil {
		return nil, fmt.Errorf("searching index: %w", err)
	}

	history, err := p.conversations.ReadRecent(ctx, sessionID, p.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	answer, err := p.composer.Compose(ctx, sessionID, query, results, history)
	if err != nil {
		return nil, err
	}

	return &AnswerResult{
		Type:    TypeAnswer,
		Answer:  answer,
		Sources: FormatSources(results),
	}, nil
}
