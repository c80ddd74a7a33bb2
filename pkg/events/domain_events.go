package events

import "time"

// Event type codes published to the bus.
const (
	TypeDocumentIngested = "DOCUMENT_INGESTED"
	TypeBookingCreated   = "BOOKING_CREATED"
	TypeBookingCancelled = "BOOKING_CANCELLED"
)

func NewDocumentIngested(documentId, filename string, chunksCount int) Event {
	return BaseEvent{
		Type: TypeDocumentIngested,
		Data: map[string]interface{}{
			"document_id":  documentId,
			"filename":     filename,
			"chunks_count": chunksCount,
		},
		OccurredAt: time.Now(),
	}
}

func NewBookingCreated(bookingId, name, email, date, timeSlot string) Event {
	return BaseEvent{
		Type: TypeBookingCreated,
		Data: map[string]interface{}{
			"booking_id": bookingId,
			"name":       name,
			"email":      email,
			"date":       date,
			"time":       timeSlot,
		},
		OccurredAt: time.Now(),
	}
}

func NewBookingCancelled(bookingId string) Event {
	return BaseEvent{
		Type: TypeBookingCancelled,
		Data: map[string]interface{}{
			"booking_id": bookingId,
		},
		OccurredAt: time.Now(),
	}
}
