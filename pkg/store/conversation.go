package store

import "context"

// Message is one turn of a conversation as persisted in session history.
type Message struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationStore keeps per-session chat history ordered oldest first.
// ReadRecent returns at most limit messages from the tail of the history;
// limit <= 0 means the full history.
type ConversationStore interface {
	Append(ctx context.Context, sessionID string, msg Message) error
	// AppendTurn writes a user message and its assistant reply as one
	// logical operation.
	AppendTurn(ctx context.Context, sessionID string, user, assistant Message) error
	ReadRecent(ctx context.Context, sessionID string, limit int) ([]Message, error)
	Clear(ctx context.Context, sessionID string) error
	Length(ctx context.Context, sessionID string) (int64, error)
	Exists(ctx context.Context, sessionID string) (bool, error)
}
