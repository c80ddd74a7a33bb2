package mapper

import (
	"time"

	"rag-assessment-be/internal/entity"
	"rag-assessment-be/internal/model"
)

type BookingMapper struct{}

func NewBookingMapper() *BookingMapper {
	return &BookingMapper{}
}

func (m *BookingMapper) ToEntity(b *model.InterviewBooking) *entity.InterviewBooking {
	if b == nil {
		return nil
	}

	var updatedAt *time.Time
	if !b.UpdatedAt.IsZero() {
		t := b.UpdatedAt
		updatedAt = &t
	}

	return &entity.InterviewBooking{
		Id:        b.Id,
		Name:      b.Name,
		Email:     b.Email,
		Date:      b.Date,
		Time:      b.Time,
		SessionId: b.SessionId,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *BookingMapper) ToModel(b *entity.InterviewBooking) *model.InterviewBooking {
	if b == nil {
		return nil
	}

	var updatedAt time.Time
	if b.UpdatedAt != nil {
		updatedAt = *b.UpdatedAt
	}

	return &model.InterviewBooking{
		Id:        b.Id,
		Name:      b.Name,
		Email:     b.Email,
		Date:      b.Date,
		Time:      b.Time,
		SessionId: b.SessionId,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *BookingMapper) ToEntities(bookings []*model.InterviewBooking) []*entity.InterviewBooking {
	entities := make([]*entity.InterviewBooking, len(bookings))
	for i, b := range bookings {
		entities[i] = m.ToEntity(b)
	}
	return entities
}
