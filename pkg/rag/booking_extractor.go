// FILE: pkg/rag/booking_extractor.go
// PURPOSE: LLM-based extraction of booking details from free-form text

package rag

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"rag-assessment-be/pkg/llm"
)

// BookingInfo holds the fields the extractor pulls out of a message.
// Missing fields stay empty.
type BookingInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Date  string `json:"date"` // YYYY-MM-DD
	Time  string `json:"time"` // HH:MM
}

// Empty reports whether no field was extracted at all.
func (b BookingInfo) Empty() bool {
	return b.Name == "" && b.Email == "" && b.Date == "" && b.Time == ""
}

const extractionSystemPrompt = "You extract structured data and return only JSON."

const extractionPromptTemplate = `Extract booking information from this text.
Return ONLY a JSON object with these fields: name, email, date, time.
If a field is not found, set it to null.
Date format: YYYY-MM-DD
Time format: HH:MM

Text: %s

JSON:`

var codeFenceRe = regexp.MustCompile("```json\\s*|\\s*```")

// BookingExtractor asks the model for booking details as JSON.
type BookingExtractor struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewBookingExtractor(llmProvider llm.LLMProvider, logger *log.Logger) *BookingExtractor {
	return &BookingExtractor{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Extract returns nil when nothing was found or the model output could not
// be parsed. Extraction failures never surface as errors to the caller.
func (e *BookingExtractor) Extract(ctx context.Context, text string) *BookingInfo {
	messages := []llm.Message{
		{Role: "system", Content: extractionSystemPrompt},
		{Role: "user", Content: fmt.Sprintf(extractionPromptTemplate, text)},
	}

	response, err := e.llmProvider.Chat(ctx, messages,
		llm.WithTemperature(0.3),
		llm.WithMaxTokens(200),
	)
	if err != nil {
		e.logger.Printf("[WARN] Booking info extraction failed: %v", err)
		return nil
	}

	cleaned := strings.TrimSpace(codeFenceRe.ReplaceAllString(response, ""))

	var info BookingInfo
	if err := json.Unmarshal([]byte(cleaned), &info); err != nil {
		e.logger.Printf("[WARN] Booking info parse failed: %v", err)
		return nil
	}

	if info.Empty() {
		return nil
	}
	return &info
}
