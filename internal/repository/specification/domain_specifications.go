package specification

import "gorm.io/gorm"

// BySessionId filters by session identifier
type BySessionId struct {
	SessionId string
}

func (s BySessionId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionId)
}

// ByStatus filters bookings by status
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByDocumentId filters chunks by owning document
type ByDocumentId struct {
	DocumentId interface{}
}

func (s ByDocumentId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_id = ?", s.DocumentId)
}

// ScheduledSlot matches an active booking for the same email, date and time.
// Used for duplicate detection before creating a new booking.
type ScheduledSlot struct {
	Email string
	Date  string
	Time  string
}

func (s ScheduledSlot) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Where("email = ?", s.Email).
		Where("date = ?", s.Date).
		Where("time = ?", s.Time).
		Where("status = ?", "scheduled")
}
