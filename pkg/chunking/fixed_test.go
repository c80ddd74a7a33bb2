package chunking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFixedStrategyValidation(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
		wantErr bool
	}{
		{name: "valid", size: 500, overlap: 50, wantErr: false},
		{name: "zero overlap", size: 100, overlap: 0, wantErr: false},
		{name: "zero size", size: 0, overlap: 0, wantErr: true},
		{name: "negative overlap", size: 100, overlap: -1, wantErr: true},
		{name: "overlap equals size", size: 100, overlap: 100, wantErr: true},
		{name: "overlap exceeds size", size: 100, overlap: 150, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFixedStrategy(tt.size, tt.overlap)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFixedChunkingTermination(t *testing.T) {
	// 100 chars, window 10, overlap 3 -> advance 7 per step.
	s, err := NewFixedStrategy(10, 3)
	require.NoError(t, err)

	text := strings.Repeat("a", 100)
	chunks := s.Chunk(text)

	// Window starts at 0, 7, 14, ... 98 -> 15 chunks.
	assert.Len(t, chunks, 15)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c.Text), 10)
		assert.NotEmpty(t, strings.TrimSpace(c.Text))
	}
}

func TestFixedChunkingCoverage(t *testing.T) {
	s, err := NewFixedStrategy(20, 5)
	require.NoError(t, err)

	text := "The quick brown fox jumps over the lazy dog and keeps on running through the field."
	normalized := cleanText(text, "\n")
	chunks := s.Chunk(text)
	require.NotEmpty(t, chunks)

	// Windows must tile the normalized text: each next start is the previous
	// end minus the overlap, and the final window reaches the tail.
	runes := []rune(normalized)
	for i, c := range chunks {
		assert.Equal(t, i, c.Index)
		if i > 0 {
			assert.Equal(t, chunks[i-1].EndPosition-5, c.StartPosition)
		}
		end := c.EndPosition
		if end > len(runes) {
			end = len(runes)
		}
		assert.Equal(t, strings.TrimSpace(string(runes[c.StartPosition:end])), c.Text)
	}
	assert.GreaterOrEqual(t, chunks[len(chunks)-1].EndPosition, len(runes))
}

func TestFixedChunkingNormalizesWhitespace(t *testing.T) {
	s, err := NewFixedStrategy(100, 0)
	require.NoError(t, err)

	chunks := s.Chunk("hello   world\n\n\nagain\t\tthere")
	require.Len(t, chunks, 1)
	assert.Equal(t, "hello world again there", chunks[0].Text)
}

func TestFixedChunkingEmptyInput(t *testing.T) {
	s, err := NewFixedStrategy(10, 3)
	require.NoError(t, err)

	assert.Empty(t, s.Chunk(""))
	assert.Empty(t, s.Chunk("   \n\t  "))
}
