// FILE: pkg/rag/composer.go
// PURPOSE: Prompt construction and answer generation over retrieved context

package rag

import (
	"context"
	"fmt"
	"log"
	"strings"

	"rag-assessment-be/pkg/llm"
	"rag-assessment-be/pkg/store"
	"rag-assessment-be/pkg/vectorstore"
)

const answerSystemPrompt = `You are a helpful AI assistant. Answer questions based on the provided context.
If the context doesn't contain relevant information, say so politely.
Be concise and accurate. Use the conversation history for context.`

const (
	answerTemperature = 0.7
	answerMaxTokens   = 500
	historyWindow     = 6
)

// Composer turns a query, retrieved chunks and conversation history into a
// generated answer, then records the exchange in the session history.
type Composer struct {
	llmProvider   llm.LLMProvider
	conversations store.ConversationStore
	logger        *log.Logger
}

func NewComposer(llmProvider llm.LLMProvider, conversations store.ConversationStore, logger *log.Logger) *Composer {
	return &Composer{
		llmProvider:   llmProvider,
		conversations: conversations,
		logger:        logger,
	}
}

// Compose generates the answer and appends the turn to the session history.
// Generation failures do not fail the call: the answer becomes an error
// message and the turn is still recorded.
func (c *Composer) Compose(
	ctx context.Context,
	sessionID string,
	query string,
	results []vectorstore.SearchResult,
	history []store.Message,
) (string, error) {

	answer := c.generate(ctx, query, results, history)

	err := c.conversations.AppendTurn(ctx, sessionID,
		store.Message{Role: store.RoleUser, Content: query},
		store.Message{Role: store.RoleAssistant, Content: answer},
	)
	if err != nil {
		return "", fmt.Errorf("saving conversation turn: %w", err)
	}

	return answer, nil
}

func (c *Composer) generate(
	ctx context.Context,
	query string,
	results []vectorstore.SearchResult,
	history []store.Message,
) string {

	userPrompt := c.buildUserPrompt(query, results, history)

	messages := []llm.Message{
		{Role: "system", Content: answerSystemPrompt},
		{Role: "user", Content: userPrompt},
	}

	answer, err := c.llmProvider.Chat(ctx, messages,
		llm.WithTemperature(answerTemperature),
		llm.WithMaxTokens(answerMaxTokens),
	)
	if err != nil {
		c.logger.Printf("[ERROR] Answer generation failed: %v", err)
		return fmt.Sprintf("Error generating answer: %s", err.Error())
	}

	return strings.TrimSpace(answer)
}

func (c *Composer) buildUserPrompt(query string, results []vectorstore.SearchResult, history []store.Message) string {
	historyText := buildHistory(history)
	if historyText == "" {
		historyText = "No previous conversation"
	}

	contextText := buildContext(results)
	if contextText == "" {
		contextText = "No relevant context found"
	}

	return fmt.Sprintf(`Previous conversation:
%s

Context from documents:
%s

Question: %s

Please provide a clear and concise answer based on the context above.`, historyText, contextText, query)
}

// buildContext renders retrieved chunks as numbered source blocks.
func buildContext(results []vectorstore.SearchResult) string {
	parts := make([]string, 0, len(results))
	for i, r := range results {
		filename := r.Metadata.Filename
		if filename == "" {
			filename = "Unknown"
		}
		parts = append(parts, fmt.Sprintf("[Source %d: %s]\n%s\n", i+1, filename, r.Metadata.ChunkText))
	}
	return strings.Join(parts, "\n")
}

// buildHistory renders the last 6 messages (3 turns) as "Role: content" lines.
func buildHistory(history []store.Message) string {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	parts := make([]string, 0, len(history))
	for _, msg := range history {
		if msg.Role == "" || msg.Content == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", capitalize(msg.Role), msg.Content))
	}
	return strings.Join(parts, "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
