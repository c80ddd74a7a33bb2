package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookingRequest struct {
	Name      string `json:"name" validate:"required,min=1"`
	Email     string `json:"email" validate:"required,email"`
	Date      string `json:"date" validate:"required"` // YYYY-MM-DD
	Time      string `json:"time" validate:"required"` // HH:MM
	SessionId string `json:"session_id" validate:"required"`
}

type BookingResponse struct {
	BookingId uuid.UUID `json:"booking_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type ListBookingsRequest struct {
	Skip   int    `query:"skip" validate:"gte=0"`
	Limit  int    `query:"limit" validate:"gte=0,lte=100"`
	Status string `query:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

type BookingListItem struct {
	BookingId uuid.UUID `json:"booking_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type CancelBookingResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
