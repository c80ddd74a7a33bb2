// FILE: pkg/chunking/fixed.go
// PURPOSE: Fixed-size chunking with overlap

package chunking

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	newlineRe    = regexp.MustCompile(`\n+`)
)

// FixedStrategy slides a window of ChunkSize characters over the cleaned text,
// advancing by ChunkSize-ChunkOverlap each step so neighbouring chunks share context.
type FixedStrategy struct {
	ChunkSize    int
	ChunkOverlap int
}

var _ Strategy = &FixedStrategy{}

// NewFixedStrategy validates the window parameters up front.
// An overlap >= chunk size would never advance the window, so it is rejected.
func NewFixedStrategy(chunkSize, chunkOverlap int) (*FixedStrategy, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("invalid chunk_size %d: must be positive", chunkSize)
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		return nil, fmt.Errorf("invalid chunk_overlap %d: must be in [0, chunk_size)", chunkOverlap)
	}
	return &FixedStrategy{
		ChunkSize:    chunkSize,
		ChunkOverlap: chunkOverlap,
	}, nil
}

func (s *FixedStrategy) Chunk(text string) []Chunk {
	runes := []rune(cleanText(text, "\n"))
	totalLen := len(runes)

	var chunks []Chunk
	start := 0
	index := 0

	for start < totalLen {
		end := start + s.ChunkSize

		sliceEnd := end
		if sliceEnd > totalLen {
			sliceEnd = totalLen
		}
		window := strings.TrimSpace(string(runes[start:sliceEnd]))

		if window != "" {
			chunks = append(chunks, Chunk{
				Index:         index,
				Text:          window,
				Size:          len([]rune(window)),
				StartPosition: start,
				EndPosition:   end,
			})
			index++
		}

		start = end - s.ChunkOverlap

		// Guard against a non-advancing window once the tail is covered.
		if start <= 0 && end >= totalLen {
			break
		}
	}

	return chunks
}

// cleanText collapses whitespace runs to a single space and newline runs to a
// single occurrence of newlineRepl, then trims the ends.
func cleanText(text, newlineRepl string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = newlineRe.ReplaceAllString(text, newlineRepl)
	return strings.TrimSpace(text)
}
