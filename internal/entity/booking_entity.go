package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses
const (
	BookingStatusScheduled = "scheduled"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type InterviewBooking struct {
	Id        uuid.UUID
	Name      string
	Email     string
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	SessionId string
	Status    string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
