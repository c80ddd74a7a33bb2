// FILE: pkg/chunking/semantic.go
// PURPOSE: Sentence-grouping chunking with a minimum-size floor

package chunking

import (
	"fmt"
	"strings"
	"unicode"
)

// SemanticStrategy groups whole sentences until the accumulated length would
// exceed ChunkSize, then closes the chunk. Chunks whose joined text is shorter
// than MinChunkSize are dropped rather than emitted.
//
// NOTE: the floor means very short trailing sentence groups are silently lost
// from the index. This mirrors the documented ingestion behaviour; callers who
// cannot tolerate the loss should use the fixed strategy instead.
type SemanticStrategy struct {
	ChunkSize    int
	MinChunkSize int
}

var _ Strategy = &SemanticStrategy{}

func NewSemanticStrategy(chunkSize, minChunkSize int) (*SemanticStrategy, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("invalid chunk_size %d: must be positive", chunkSize)
	}
	if minChunkSize < 0 {
		return nil, fmt.Errorf("invalid min_chunk_size %d: must not be negative", minChunkSize)
	}
	return &SemanticStrategy{
		ChunkSize:    chunkSize,
		MinChunkSize: minChunkSize,
	}, nil
}

func (s *SemanticStrategy) Chunk(text string) []Chunk {
	sentences := splitSentences(cleanText(text, " "))

	var chunks []Chunk
	var current []string
	currentSize := 0
	index := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		joined := strings.Join(current, " ")
		if len([]rune(joined)) >= s.MinChunkSize {
			chunks = append(chunks, Chunk{
				Index:         index,
				Text:          joined,
				Size:          len([]rune(joined)),
				SentenceCount: len(current),
			})
			index++
		}
	}

	for _, sentence := range sentences {
		sentenceLen := len([]rune(sentence))

		if currentSize+sentenceLen > s.ChunkSize && len(current) > 0 {
			flush()
			current = []string{sentence}
			currentSize = sentenceLen
		} else {
			current = append(current, sentence)
			currentSize += sentenceLen
		}
	}

	flush()

	return chunks
}

// splitSentences cuts the text after each '.', '!' or '?' that is followed by
// whitespace. The terminator stays with its sentence; empty fragments are dropped.
func splitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)

	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			sentence := strings.TrimSpace(string(runes[start : i+1]))
			if sentence != "" {
				sentences = append(sentences, sentence)
			}
			start = i + 1
		}
	}

	if tail := strings.TrimSpace(string(runes[start:])); tail != "" {
		sentences = append(sentences, tail)
	}

	return sentences
}
