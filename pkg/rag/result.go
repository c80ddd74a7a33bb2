// FILE: pkg/rag/result.go
// PURPOSE: Result types returned by the question answering pipeline

package rag

import (
	"math"

	"rag-assessment-be/pkg/vectorstore"
)

// Result kinds. A query either produces a grounded answer or is recognized
// as a booking request and short-circuits before retrieval.
const (
	TypeAnswer        = "answer"
	TypeBookingIntent = "booking_intent"
)

const sourcePreviewLength = 200

// Source is one retrieved chunk cited in an answer.
type Source struct {
	DocumentID     string  `json:"document_id"`
	Filename       string  `json:"filename"`
	ChunkText      string  `json:"chunk_text"`
	RelevanceScore float64 `json:"relevance_score"`
}

// AnswerResult is the outcome of one pipeline run.
// For TypeAnswer, Answer and Sources are set. For TypeBookingIntent,
// Message carries the redirect text and the rest is empty.
type AnswerResult struct {
	Type    string   `json:"type"`
	Answer  string   `json:"answer,omitempty"`
	Message string   `json:"message,omitempty"`
	Sources []Source `json:"sources,omitempty"`
}

// FormatSources converts retrieval hits into citation entries, preserving
// relevance order. Chunk text is cut to a 200 character preview with a
// trailing ellipsis, and scores are rounded to 4 decimal places.
func FormatSources(results []vectorstore.SearchResult) []Source {
	sources := make([]Source, len(results))
	for i, r := range results {
		filename := r.Metadata.Filename
		if filename == "" {
			filename = "Unknown"
		}

		runes := []rune(r.Metadata.ChunkText)
		if len(runes) > sourcePreviewLength {
			runes = runes[:sourcePreviewLength]
		}
		preview := string(runes) + "..."

		sources[i] = Source{
			DocumentID:     r.Metadata.DocumentID,
			Filename:       filename,
			ChunkText:      preview,
			RelevanceScore: roundScore(r.Score),
		}
	}
	return sources
}

func roundScore(score float64) float64 {
	return math.Round(score*10000) / 10000
}
