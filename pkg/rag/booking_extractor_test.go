package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractParsesFields(t *testing.T) {
	llmFake := &fakeLLM{response: `{"name": "Jane Doe", "email": "jane@example.com", "date": "2026-09-15", "time": "14:30"}`}
	extractor := NewBookingExtractor(llmFake, testLogger())

	info := extractor.Extract(context.Background(), "book me in, I'm Jane Doe (jane@example.com), Sep 15 at 2:30pm")
	require.NotNil(t, info)
	assert.Equal(t, "Jane Doe", info.Name)
	assert.Equal(t, "jane@example.com", info.Email)
	assert.Equal(t, "2026-09-15", info.Date)
	assert.Equal(t, "14:30", info.Time)
}

func TestExtractStripsCodeFences(t *testing.T) {
	llmFake := &fakeLLM{response: "```json\n{\"name\": \"Jane\", \"email\": null, \"date\": null, \"time\": null}\n```"}
	extractor := NewBookingExtractor(llmFake, testLogger())

	info := extractor.Extract(context.Background(), "I'm Jane")
	require.NotNil(t, info)
	assert.Equal(t, "Jane", info.Name)
	assert.Empty(t, info.Email)
}

func TestExtractReturnsNilWhenNothingFound(t *testing.T) {
	llmFake := &fakeLLM{response: `{"name": null, "email": null, "date": null, "time": null}`}
	extractor := NewBookingExtractor(llmFake, testLogger())

	assert.Nil(t, extractor.Extract(context.Background(), "hello there"))
}

func TestExtractSwallowsLLMErrors(t *testing.T) {
	llmFake := &fakeLLM{err: errors.New("timeout")}
	extractor := NewBookingExtractor(llmFake, testLogger())

	assert.Nil(t, extractor.Extract(context.Background(), "book something"))
}

func TestExtractSwallowsMalformedOutput(t *testing.T) {
	llmFake := &fakeLLM{response: "Sure! The name is Jane and the date is tomorrow."}
	extractor := NewBookingExtractor(llmFake, testLogger())

	assert.Nil(t, extractor.Extract(context.Background(), "book something"))
}
