package contract

import (
	"context"

	"rag-assessment-be/internal/entity"
	"rag-assessment-be/internal/repository/specification"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.InterviewBooking) error
	Update(ctx context.Context, booking *entity.InterviewBooking) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.InterviewBooking, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InterviewBooking, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
