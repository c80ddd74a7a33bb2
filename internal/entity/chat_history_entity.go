package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatHistory is the SQL backup of a conversation turn. The live history
// lives in Redis; these rows survive session expiry.
type ChatHistory struct {
	Id        uuid.UUID
	SessionId string
	UserId    string
	Query     string
	Response  string
	Sources   []byte // JSON array of cited sources
	CreatedAt time.Time
}
