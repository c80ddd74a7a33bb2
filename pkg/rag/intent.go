// FILE: pkg/rag/intent.go
// PURPOSE: Keyword heuristic for recognizing interview booking requests

package rag

import "strings"

// BookingIntentMessage is returned verbatim when a booking request is
// recognized, telling the user what details to provide.
const BookingIntentMessage = "I detected you want to book an interview. Please provide: name, email, date (YYYY-MM-DD), and time (HH:MM)"

var bookingKeywords = []string{
	"book", "schedule", "interview", "appointment",
	"meeting", "set up", "arrange", "reserve",
}

// IsBookingIntent reports whether the query looks like an interview booking
// request. It is a case-insensitive substring match, so questions that merely
// mention one of the keywords also trigger it.
func IsBookingIntent(query string) bool {
	queryLower := strings.ToLower(query)
	for _, keyword := range bookingKeywords {
		if strings.Contains(queryLower, keyword) {
			return true
		}
	}
	return false
}
