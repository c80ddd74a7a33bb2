// FILE: pkg/chunking/chunking.go
// PURPOSE: Strategy selection for splitting document text into retrievable chunks

package chunking

import (
	"errors"
	"fmt"
)

// Chunk is one contiguous span of a document's text.
// StartPosition/EndPosition are populated by the fixed strategy,
// SentenceCount by the semantic strategy.
type Chunk struct {
	Index         int
	Text          string
	Size          int
	StartPosition int
	EndPosition   int
	SentenceCount int
}

// Strategy splits raw text into ordered chunks.
// Concatenated in index order, the chunks cover the normalized input
// (with overlap duplication for the fixed strategy).
type Strategy interface {
	Chunk(text string) []Chunk
}

// ErrUnknownStrategy is returned when the requested strategy name is not registered.
var ErrUnknownStrategy = errors.New("unknown chunking strategy")

const (
	StrategyFixed    = "fixed"
	StrategySemantic = "semantic"
)

// Config carries chunking parameters, usually loaded from env config.
type Config struct {
	ChunkSize    int
	ChunkOverlap int
	MinChunkSize int
}

// ForName returns the strategy registered under the given name.
// Configuration is validated before any text is touched.
func ForName(name string, cfg Config) (Strategy, error) {
	switch name {
	case StrategyFixed:
		return NewFixedStrategy(cfg.ChunkSize, cfg.ChunkOverlap)
	case StrategySemantic:
		return NewSemanticStrategy(cfg.ChunkSize, cfg.MinChunkSize)
	default:
		return nil, fmt.Errorf("%w: %s (available: fixed, semantic)", ErrUnknownStrategy, name)
	}
}
