// FILE: internal/service/ingestion_service.go
package service

import (
	"context"
	"fmt"

	"rag-assessment-be/internal/dto"
	"rag-assessment-be/internal/entity"
	"rag-assessment-be/internal/pkg/logger"
	"rag-assessment-be/internal/pkg/serverutils"
	"rag-assessment-be/internal/repository/specification"
	"rag-assessment-be/internal/repository/unitofwork"
	"rag-assessment-be/pkg/chunking"
	"rag-assessment-be/pkg/embedding"
	"rag-assessment-be/pkg/events"
	"rag-assessment-be/pkg/extract"
	pktNats "rag-assessment-be/pkg/nats"
	"rag-assessment-be/pkg/vectorstore"

	"github.com/google/uuid"
)

type IIngestionService interface {
	Ingest(ctx context.Context, req *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error)
	List(ctx context.Context, req *dto.ListDocumentsRequest) ([]dto.DocumentResponse, error)
	Delete(ctx context.Context, documentId uuid.UUID) (*dto.DeleteDocumentResponse, error)
}

type ingestionService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	vectorStore       vectorstore.VectorStore
	chunkingCfg       chunking.Config
	natsPub           *pktNats.Publisher
	logger            logger.ILogger
}

func NewIngestionService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	vectorStore vectorstore.VectorStore,
	chunkingCfg chunking.Config,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
) IIngestionService {
	return &ingestionService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		vectorStore:       vectorStore,
		chunkingCfg:       chunkingCfg,
		natsPub:           natsPub,
		logger:            log,
	}
}

func (s *ingestionService) Ingest(ctx context.Context, req *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error) {
	// 1. Validate the upload
	if err := extract.ValidateFile(req.Filename, int64(len(req.Content))); err != nil {
		return nil, serverutils.NewBadRequest(fmt.Sprintf("File validation failed: %s", err.Error()))
	}

	// 2. Extract text
	text, fileType, err := extract.ExtractText(req.Content, req.Filename)
	if err != nil {
		return nil, serverutils.NewBadRequest(fmt.Sprintf("Text extraction failed: %s", err.Error()))
	}

	// 3. Chunk
	strategyName := req.ChunkingStrategy
	if strategyName == "" {
		strategyName = chunking.StrategyFixed
	}
	strategy, err := chunking.ForName(strategyName, s.chunkingCfg)
	if err != nil {
		return nil, serverutils.NewBadRequest(fmt.Sprintf("Chunking failed: %s", err.Error()))
	}
	chunks := strategy.Chunk(text)
	if len(chunks) == 0 {
		return nil, serverutils.NewBadRequest("Chunking produced no results")
	}

	// 4. Embed every chunk
	chunkTexts := make([]string, len(chunks))
	for i, c := range chunks {
		chunkTexts[i] = c.Text
	}
	vectors, err := s.embeddingProvider.GenerateBatch(chunkTexts)
	if err != nil {
		return nil, serverutils.NewInternal(fmt.Sprintf("Embedding generation failed: %s", err.Error()))
	}

	// 5. Index into the vector store
	documentId := uuid.New()
	points := make([]vectorstore.Point, len(chunks))
	for i, c := range chunks {
		points[i] = vectorstore.Point{
			ID:     uuid.New().String(),
			Vector: vectors[i],
			Metadata: vectorstore.ChunkMetadata{
				DocumentID: documentId.String(),
				Filename:   req.Filename,
				ChunkIndex: c.Index,
				ChunkText:  c.Text,
				ChunkSize:  c.Size,
			},
		}
	}
	if err := s.vectorStore.Upsert(ctx, points); err != nil {
		return nil, serverutils.NewInternal(fmt.Sprintf("Vector storage failed: %s", err.Error()))
	}

	// 6. Persist document and chunk metadata in one transaction
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	document := &entity.Document{
		Id:               documentId,
		Filename:         req.Filename,
		FileType:         fileType,
		ChunkingStrategy: strategyName,
		ChunksCount:      len(chunks),
		FileSize:         int64(len(req.Content)),
	}
	if err := uow.DocumentRepository().Create(ctx, document); err != nil {
		return nil, err
	}

	chunkEntities := make([]*entity.DocumentChunk, len(chunks))
	for i, c := range chunks {
		chunkEntities[i] = &entity.DocumentChunk{
			Id:          uuid.New(),
			DocumentId:  documentId,
			ChunkIndex:  c.Index,
			ChunkText:   c.Text,
			ChunkSize:   c.Size,
			EmbeddingId: points[i].ID,
		}
	}
	if err := uow.DocumentChunkRepository().CreateBulk(ctx, chunkEntities); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// 7. Announce the ingestion (best effort)
	if s.natsPub != nil {
		event := events.NewDocumentIngested(documentId.String(), req.Filename, len(chunks))
		if err := s.natsPub.Publish(ctx, event); err != nil {
			s.logger.Warn("IngestionService", "Failed to publish document.ingested event", map[string]interface{}{
				"document_id": documentId.String(),
				"error":       err.Error(),
			})
		}
	}

	s.logger.Info("IngestionService", "Document ingested", map[string]interface{}{
		"document_id":  documentId.String(),
		"filename":     req.Filename,
		"chunks_count": len(chunks),
	})

	return &dto.IngestDocumentResponse{
		DocumentId:       documentId,
		Filename:         req.Filename,
		ChunksCount:      len(chunks),
		Status:           "success",
		Message:          fmt.Sprintf("Document ingested successfully with %d chunks", len(chunks)),
		ChunkingStrategy: strategyName,
	}, nil
}

func (s *ingestionService) List(ctx context.Context, req *dto.ListDocumentsRequest) ([]dto.DocumentResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	documents, err := uow.DocumentRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: req.Skip},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.DocumentResponse, len(documents))
	for i, d := range documents {
		responses[i] = dto.DocumentResponse{
			Id:               d.Id,
			Filename:         d.Filename,
			FileType:         d.FileType,
			ChunkingStrategy: d.ChunkingStrategy,
			ChunksCount:      d.ChunksCount,
			UploadDate:       d.CreatedAt,
		}
	}
	return responses, nil
}

func (s *ingestionService) Delete(ctx context.Context, documentId uuid.UUID) (*dto.DeleteDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	document, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return nil, err
	}
	if document == nil {
		return nil, serverutils.NewNotFound("Document not found")
	}

	// Remove vectors first so a failed SQL delete can be retried safely.
	if err := s.vectorStore.DeleteByDocumentID(ctx, documentId.String()); err != nil {
		return nil, serverutils.NewInternal(fmt.Sprintf("Vector deletion failed: %s", err.Error()))
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.DocumentChunkRepository().DeleteByDocumentId(ctx, documentId); err != nil {
		return nil, err
	}
	if err := uow.DocumentRepository().Delete(ctx, documentId); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.DeleteDocumentResponse{
		Status:  "success",
		Message: fmt.Sprintf("Document %s deleted successfully", documentId),
	}, nil
}
