// FILE: internal/service/booking_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"rag-assessment-be/internal/dto"
	"rag-assessment-be/internal/entity"
	"rag-assessment-be/internal/pkg/logger"
	"rag-assessment-be/internal/pkg/mailer"
	"rag-assessment-be/internal/pkg/serverutils"
	"rag-assessment-be/internal/repository/specification"
	"rag-assessment-be/internal/repository/unitofwork"
	"rag-assessment-be/pkg/events"
	pktNats "rag-assessment-be/pkg/nats"

	"github.com/google/uuid"
)

type IBookingService interface {
	Book(ctx context.Context, req *dto.BookingRequest) (*dto.BookingResponse, error)
	List(ctx context.Context, req *dto.ListBookingsRequest) ([]dto.BookingListItem, error)
	Cancel(ctx context.Context, bookingId uuid.UUID) (*dto.CancelBookingResponse, error)
}

type bookingService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	natsPub      *pktNats.Publisher
	logger       logger.ILogger
}

func NewBookingService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
) IBookingService {
	return &bookingService{
		uowFactory:   uowFactory,
		emailService: emailService,
		natsPub:      natsPub,
		logger:       log,
	}
}

func (s *bookingService) Book(ctx context.Context, req *dto.BookingRequest) (*dto.BookingResponse, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, serverutils.NewBadRequest("Invalid date format. Use YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, serverutils.NewBadRequest("Invalid time format. Use HH:MM (24-hour format)")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.BookingRepository().FindOne(ctx, specification.ScheduledSlot{
		Email: req.Email,
		Date:  req.Date,
		Time:  req.Time,
	})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewBadRequest("An interview is already scheduled for this email at this time")
	}

	booking := &entity.InterviewBooking{
		Id:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Date:      req.Date,
		Time:      req.Time,
		SessionId: req.SessionId,
		Status:    entity.BookingStatusScheduled,
	}
	if err := uow.BookingRepository().Create(ctx, booking); err != nil {
		return nil, err
	}

	// Confirmation email and event are best effort.
	if s.emailService != nil {
		if err := s.emailService.SendBookingConfirmation(booking.Email, booking.Name, booking.Date, booking.Time); err != nil {
			s.logger.Warn("BookingService", "Failed to send booking confirmation", map[string]interface{}{
				"email": booking.Email,
				"error": err.Error(),
			})
		}
	}
	if s.natsPub != nil {
		event := events.NewBookingCreated(booking.Id.String(), booking.Name, booking.Email, booking.Date, booking.Time)
		if err := s.natsPub.Publish(ctx, event); err != nil {
			s.logger.Warn("BookingService", "Failed to publish booking.created event", map[string]interface{}{
				"booking_id": booking.Id.String(),
				"error":      err.Error(),
			})
		}
	}

	return &dto.BookingResponse{
		BookingId: booking.Id,
		Name:      booking.Name,
		Email:     booking.Email,
		Date:      booking.Date,
		Time:      booking.Time,
		Status:    booking.Status,
		Message:   fmt.Sprintf("Interview successfully scheduled for %s on %s at %s", req.Name, req.Date, req.Time),
		CreatedAt: booking.CreatedAt,
	}, nil
}

func (s *bookingService) List(ctx context.Context, req *dto.ListBookingsRequest) ([]dto.BookingListItem, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: req.Skip},
	}
	if req.Status != "" {
		specs = append([]specification.Specification{specification.ByStatus{Status: req.Status}}, specs...)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	bookings, err := uow.BookingRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.BookingListItem, len(bookings))
	for i, b := range bookings {
		items[i] = dto.BookingListItem{
			BookingId: b.Id,
			Name:      b.Name,
			Email:     b.Email,
			Date:      b.Date,
			Time:      b.Time,
			Status:    b.Status,
			CreatedAt: b.CreatedAt,
		}
	}
	return items, nil
}

func (s *bookingService) Cancel(ctx context.Context, bookingId uuid.UUID) (*dto.CancelBookingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	booking, err := uow.BookingRepository().FindOne(ctx, specification.ByID{ID: bookingId})
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, serverutils.NewNotFound("Booking not found")
	}

	booking.Status = entity.BookingStatusCancelled
	if err := uow.BookingRepository().Update(ctx, booking); err != nil {
		return nil, err
	}

	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, events.NewBookingCancelled(bookingId.String())); err != nil {
			s.logger.Warn("BookingService", "Failed to publish booking.cancelled event", map[string]interface{}{
				"booking_id": bookingId.String(),
				"error":      err.Error(),
			})
		}
	}

	return &dto.CancelBookingResponse{
		Status:  "success",
		Message: fmt.Sprintf("Booking %s cancelled successfully", bookingId),
	}, nil
}
