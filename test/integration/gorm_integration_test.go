package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"rag-assessment-be/internal/entity"
	"rag-assessment-be/internal/repository/specification"
	"rag-assessment-be/internal/repository/unitofwork"
	"rag-assessment-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.DocumentRepository())
	assert.NotNil(t, uow.BookingRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Document Repository", func(t *testing.T) {
		count, err := uow.DocumentRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Document count: %d", count)
	})

	t.Run("Check Chat History Repository", func(t *testing.T) {
		count, err := uow.ChatHistoryRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("ChatHistory count: %d", count)
	})

	t.Run("Check Transactional Document Ingestion", func(t *testing.T) {
		ctx := context.Background()
		err := uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		docId := uuid.New()
		doc := &entity.Document{
			Id:               docId,
			Filename:         "integration-" + uuid.New().String() + ".txt",
			FileType:         "txt",
			ChunkingStrategy: "fixed",
			ChunksCount:      2,
			FileSize:         64,
			CreatedAt:        time.Now().UTC(),
		}
		err = uow.DocumentRepository().Create(ctx, doc)
		assert.NoError(t, err)

		chunks := []*entity.DocumentChunk{
			{
				Id:         uuid.New(),
				DocumentId: docId,
				ChunkIndex: 0,
				ChunkText:  "first chunk of the integration document",
				ChunkSize:  39,
				CreatedAt:  time.Now().UTC(),
			},
			{
				Id:         uuid.New(),
				DocumentId: docId,
				ChunkIndex: 1,
				ChunkText:  "second chunk of the integration document",
				ChunkSize:  40,
				CreatedAt:  time.Now().UTC(),
			},
		}
		err = uow.DocumentChunkRepository().CreateBulk(ctx, chunks)
		assert.NoError(t, err)

		count, err := uow.DocumentChunkRepository().Count(ctx, specification.ByDocumentId{DocumentId: docId})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)

		err = uow.Commit()
		assert.NoError(t, err)

		// Cleanup
		cleanup := uowFactory.NewUnitOfWork(ctx)
		_ = cleanup.DocumentChunkRepository().DeleteByDocumentId(ctx, docId)
		_ = cleanup.DocumentRepository().Delete(ctx, docId)

		t.Log("Successfully created Document with Chunks in Transaction")
	})

	t.Run("Check Duplicate Booking Slot Lookup", func(t *testing.T) {
		ctx := context.Background()

		booking := &entity.InterviewBooking{
			Id:        uuid.New(),
			Name:      "Integration Test Candidate",
			Email:     "integration-" + uuid.New().String() + "@example.com",
			Date:      "2099-01-15",
			Time:      "10:30",
			Status:    entity.BookingStatusScheduled,
			CreatedAt: time.Now().UTC(),
		}
		err := uow.BookingRepository().Create(ctx, booking)
		assert.NoError(t, err)

		slot := specification.ScheduledSlot{Email: booking.Email, Date: booking.Date, Time: booking.Time}
		found, err := uow.BookingRepository().FindOne(ctx, slot)
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, booking.Id, found.Id)

		// Cancelled bookings should not block the slot
		found.Status = entity.BookingStatusCancelled
		err = uow.BookingRepository().Update(ctx, found)
		assert.NoError(t, err)

		free, err := uow.BookingRepository().FindOne(ctx, slot)
		assert.NoError(t, err)
		assert.Nil(t, free)
	})
}
