package dto

import (
	"time"

	"rag-assessment-be/pkg/rag"
)

type ChatRequest struct {
	Query     string `json:"query" validate:"required,min=1"`
	SessionId string `json:"session_id" validate:"required"`
	UserId    string `json:"user_id"`
}

type ChatResponse struct {
	Answer    string       `json:"answer"`
	Sources   []rag.Source `json:"sources"`
	SessionId string       `json:"session_id"`
	Timestamp time.Time    `json:"timestamp"`
}

// BookingIntentResponse is the 400 payload returned when the chat endpoint
// recognizes a booking request instead of answering it. ExtractedInfo carries
// any booking details the model could pull out of the message, so the client
// can prefill the booking form.
type BookingIntentResponse struct {
	Error         string           `json:"error"`
	Message       string           `json:"message"`
	Suggestion    string           `json:"suggestion"`
	ExtractedInfo *rag.BookingInfo `json:"extracted_info,omitempty"`
}

type ChatHistoryEntry struct {
	Query     string    `json:"query"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatTurnMessage is the event payload published after every answered query,
// consumed asynchronously to persist the SQL history backup.
type ChatTurnMessage struct {
	SessionId string       `json:"session_id"`
	UserId    string       `json:"user_id"`
	Query     string       `json:"query"`
	Response  string       `json:"response"`
	Sources   []rag.Source `json:"sources"`
}
