package rag

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-assessment-be/pkg/llm"
	"rag-assessment-be/pkg/store"
	"rag-assessment-be/pkg/vectorstore"
)

type fakeLLM struct {
	response string
	err      error
	prompts  []llm.Message
	calls    int
}

func (f *fakeLLM) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	f.calls++
	f.prompts = history
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestComposer(provider llm.LLMProvider, conversations store.ConversationStore) *Composer {
	return NewComposer(provider, conversations, testLogger())
}

func TestComposeGeneratesAndRecordsTurn(t *testing.T) {
	llmFake := &fakeLLM{response: "The policy allows refunds within 30 days."}
	conversations := store.NewMemoryConversationStore()
	composer := newTestComposer(llmFake, conversations)

	results := []vectorstore.SearchResult{
		{Score: 0.9, Metadata: vectorstore.ChunkMetadata{Filename: "policy.txt", ChunkText: "Refunds are allowed within 30 days."}},
	}

	answer, err := composer.Compose(context.Background(), "s1", "what is the refund policy?", results, nil)
	require.NoError(t, err)
	assert.Equal(t, "The policy allows refunds within 30 days.", answer)

	history, err := conversations.ReadRecent(context.Background(), "s1", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, store.RoleUser, history[0].Role)
	assert.Equal(t, "what is the refund policy?", history[0].Content)
	assert.Equal(t, store.RoleAssistant, history[1].Role)
	assert.Equal(t, "The policy allows refunds within 30 days.", history[1].Content)
}

func TestComposePromptIncludesNumberedSources(t *testing.T) {
	llmFake := &fakeLLM{response: "ok"}
	composer := newTestComposer(llmFake, store.NewMemoryConversationStore())

	results := []vectorstore.SearchResult{
		{Metadata: vectorstore.ChunkMetadata{Filename: "a.txt", ChunkText: "first chunk"}},
		{Metadata: vectorstore.ChunkMetadata{ChunkText: "second chunk"}},
	}

	_, err := composer.Compose(context.Background(), "s1", "q", results, nil)
	require.NoError(t, err)

	require.Len(t, llmFake.prompts, 2)
	assert.Equal(t, "system", llmFake.prompts[0].Role)

	userPrompt := llmFake.prompts[1].Content
	assert.Contains(t, userPrompt, "[Source 1: a.txt]\nfirst chunk")
	assert.Contains(t, userPrompt, "[Source 2: Unknown]\nsecond chunk")
	assert.Contains(t, userPrompt, "No previous conversation")
	assert.Contains(t, userPrompt, "Question: q")
}

func TestComposePromptPlaceholders(t *testing.T) {
	llmFake := &fakeLLM{response: "ok"}
	composer := newTestComposer(llmFake, store.NewMemoryConversationStore())

	_, err := composer.Compose(context.Background(), "s1", "q", nil, nil)
	require.NoError(t, err)

	userPrompt := llmFake.prompts[1].Content
	assert.Contains(t, userPrompt, "No previous conversation")
	assert.Contains(t, userPrompt, "No relevant context found")
}

func TestComposeHistoryWindowIsLastSixChronological(t *testing.T) {
	llmFake := &fakeLLM{response: "ok"}
	composer := newTestComposer(llmFake, store.NewMemoryConversationStore())

	history := make([]store.Message, 0, 20)
	for i := 0; i < 10; i++ {
		history = append(history,
			store.Message{Role: store.RoleUser, Content: fmt.Sprintf("question %d", i)},
			store.Message{Role: store.RoleAssistant, Content: fmt.Sprintf("answer %d", i)},
		)
	}

	_, err := composer.Compose(context.Background(), "s1", "q", nil, history)
	require.NoError(t, err)

	userPrompt := llmFake.prompts[1].Content
	assert.NotContains(t, userPrompt, "question 6")
	assert.Contains(t, userPrompt, "User: question 7")
	assert.Contains(t, userPrompt, "Assistant: answer 9")

	// Oldest kept message renders before the newest.
	assert.Less(t,
		strings.Index(userPrompt, "question 7"),
		strings.Index(userPrompt, "answer 9"),
	)
}

func TestComposeGenerationFailureIsSoftAndStillRecorded(t *testing.T) {
	llmFake := &fakeLLM{err: errors.New("model overloaded")}
	conversations := store.NewMemoryConversationStore()
	composer := newTestComposer(llmFake, conversations)

	answer, err := composer.Compose(context.Background(), "s1", "q", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Error generating answer: model overloaded", answer)

	history, err := conversations.ReadRecent(context.Background(), "s1", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Error generating answer: model overloaded", history[1].Content)
}

func TestFormatSources(t *testing.T) {
	long := strings.Repeat("x", 300)
	results := []vectorstore.SearchResult{
		{Score: 0.923456, Metadata: vectorstore.ChunkMetadata{DocumentID: "d1", Filename: "a.txt", ChunkText: long}},
		{Score: 0.5, Metadata: vectorstore.ChunkMetadata{DocumentID: "d2", ChunkText: "short"}},
	}

	sources := FormatSources(results)
	require.Len(t, sources, 2)

	assert.Equal(t, "d1", sources[0].DocumentID)
	assert.Equal(t, "a.txt", sources[0].Filename)
	assert.Equal(t, strings.Repeat("x", 200)+"...", sources[0].ChunkText)
	assert.Equal(t, 0.9235, sources[0].RelevanceScore)

	// Ellipsis is appended even when nothing was cut.
	assert.Equal(t, "Unknown", sources[1].Filename)
	assert.Equal(t, "short...", sources[1].ChunkText)
	assert.Equal(t, 0.5, sources[1].RelevanceScore)

	// Pure function: a second pass over the same results is identical.
	assert.Equal(t, sources, FormatSources(results))
}

func TestFormatSourcesPreservesOrder(t *testing.T) {
	results := []vectorstore.SearchResult{
		{Score: 0.9, Metadata: vectorstore.ChunkMetadata{DocumentID: "first"}},
		{Score: 0.8, Metadata: vectorstore.ChunkMetadata{DocumentID: "second"}},
		{Score: 0.7, Metadata: vectorstore.ChunkMetadata{DocumentID: "third"}},
	}

	sources := FormatSources(results)
	require.Len(t, sources, 3)
	assert.Equal(t, "first", sources[0].DocumentID)
	assert.Equal(t, "second", sources[1].DocumentID)
	assert.Equal(t, "third", sources[2].DocumentID)
}
