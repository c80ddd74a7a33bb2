package service

import (
	"context"
	"errors"
	"testing"

	"rag-assessment-be/internal/dto"
	"rag-assessment-be/internal/entity"
	"rag-assessment-be/internal/pkg/logger"
	"rag-assessment-be/internal/repository/contract"
	"rag-assessment-be/internal/repository/specification"
	"rag-assessment-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingRepository struct {
	existing *entity.InterviewBooking
	created  []*entity.InterviewBooking
	updated  []*entity.InterviewBooking
}

func (f *fakeBookingRepository) Create(_ context.Context, booking *entity.InterviewBooking) error {
	f.created = append(f.created, booking)
	return nil
}

func (f *fakeBookingRepository) Update(_ context.Context, booking *entity.InterviewBooking) error {
	f.updated = append(f.updated, booking)
	return nil
}

func (f *fakeBookingRepository) FindOne(context.Context, ...specification.Specification) (*entity.InterviewBooking, error) {
	return f.existing, nil
}

func (f *fakeBookingRepository) FindAll(context.Context, ...specification.Specification) ([]*entity.InterviewBooking, error) {
	if f.existing == nil {
		return nil, nil
	}
	return []*entity.InterviewBooking{f.existing}, nil
}

func (f *fakeBookingRepository) Count(context.Context, ...specification.Specification) (int64, error) {
	return int64(len(f.created)), nil
}

type fakeUnitOfWork struct {
	bookings *fakeBookingRepository
}

func (f *fakeUnitOfWork) Begin(context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error               { return nil }
func (f *fakeUnitOfWork) Rollback() error             { return nil }

func (f *fakeUnitOfWork) DocumentRepository() contract.DocumentRepository           { return nil }
func (f *fakeUnitOfWork) DocumentChunkRepository() contract.DocumentChunkRepository { return nil }
func (f *fakeUnitOfWork) BookingRepository() contract.BookingRepository             { return f.bookings }
func (f *fakeUnitOfWork) ChatHistoryRepository() contract.ChatHistoryRepository     { return nil }

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type loggedEntry struct {
	level   string
	module  string
	message string
	details map[string]interface{}
}

type spyLogger struct {
	entries []loggedEntry
}

func (s *spyLogger) record(level, module, message string, details map[string]interface{}) {
	s.entries = append(s.entries, loggedEntry{level, module, message, details})
}

func (s *spyLogger) Debug(module, message string, details map[string]interface{}) {
	s.record("DEBUG", module, message, details)
}

func (s *spyLogger) Info(module, message string, details map[string]interface{}) {
	s.record("INFO", module, message, details)
}

func (s *spyLogger) Warn(module, message string, details map[string]interface{}) {
	s.record("WARN", module, message, details)
}

func (s *spyLogger) Error(module, message string, details map[string]interface{}) {
	s.record("ERROR", module, message, details)
}

func (s *spyLogger) Sync() error { return nil }

func (s *spyLogger) GetLogs(string, int, int) ([]logger.LogEntry, error) { return nil, nil }
func (s *spyLogger) GetLogById(string) (*logger.LogEntry, error)        { return nil, nil }

func (s *spyLogger) warnings() []loggedEntry {
	var out []loggedEntry
	for _, e := range s.entries {
		if e.level == "WARN" {
			out = append(out, e)
		}
	}
	return out
}

type failingEmailService struct {
	err   error
	calls int
}

func (f *failingEmailService) SendBookingConfirmation(string, string, string, string) error {
	f.calls++
	return f.err
}

func newBookingFixture(existing *entity.InterviewBooking, mail *failingEmailService) (IBookingService, *fakeBookingRepository, *spyLogger) {
	repo := &fakeBookingRepository{existing: existing}
	factory := &fakeUowFactory{uow: &fakeUnitOfWork{bookings: repo}}
	log := &spyLogger{}
	return NewBookingService(factory, mail, nil, log), repo, log
}

func validBookingRequest() *dto.BookingRequest {
	return &dto.BookingRequest{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Date:  "2026-10-01",
		Time:  "14:30",
	}
}

func TestBookCreatesScheduledBooking(t *testing.T) {
	mail := &failingEmailService{}
	svc, repo, _ := newBookingFixture(nil, mail)

	res, err := svc.Book(context.Background(), validBookingRequest())
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, entity.BookingStatusScheduled, repo.created[0].Status)
	assert.Equal(t, 1, mail.calls)
	assert.Equal(t, "Interview successfully scheduled for Jane Doe on 2026-10-01 at 14:30", res.Message)
}

func TestBookEmailFailureIsBestEffort(t *testing.T) {
	mail := &failingEmailService{err: errors.New("smtp unreachable")}
	svc, repo, log := newBookingFixture(nil, mail)

	res, err := svc.Book(context.Background(), validBookingRequest())
	require.NoError(t, err)
	require.NotNil(t, res)

	// The booking is created and the failure goes to the structured logger.
	require.Len(t, repo.created, 1)
	warnings := log.warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "BookingService", warnings[0].module)
	assert.Equal(t, "Failed to send booking confirmation", warnings[0].message)
	assert.Equal(t, "smtp unreachable", warnings[0].details["error"])
}

func TestBookRejectsInvalidDate(t *testing.T) {
	svc, repo, _ := newBookingFixture(nil, &failingEmailService{})

	req := validBookingRequest()
	req.Date = "01-10-2026"
	_, err := svc.Book(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid date format. Use YYYY-MM-DD")
	assert.Empty(t, repo.created)
}

func TestBookRejectsInvalidTime(t *testing.T) {
	svc, repo, _ := newBookingFixture(nil, &failingEmailService{})

	req := validBookingRequest()
	req.Time = "2pm"
	_, err := svc.Book(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid time format. Use HH:MM (24-hour format)")
	assert.Empty(t, repo.created)
}

func TestBookRejectsDuplicateSlot(t *testing.T) {
	existing := &entity.InterviewBooking{
		Email:  "jane@example.com",
		Date:   "2026-10-01",
		Time:   "14:30",
		Status: entity.BookingStatusScheduled,
	}
	mail := &failingEmailService{}
	svc, repo, _ := newBookingFixture(existing, mail)

	_, err := svc.Book(context.Background(), validBookingRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "An interview is already scheduled for this email at this time")
	assert.Empty(t, repo.created)
	assert.Zero(t, mail.calls)
}
