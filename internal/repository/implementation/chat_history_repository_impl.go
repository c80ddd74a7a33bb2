package implementation

import (
	"context"

	"rag-assessment-be/internal/entity"
	"rag-assessment-be/internal/mapper"
	"rag-assessment-be/internal/model"
	"rag-assessment-be/internal/repository/contract"
	"rag-assessment-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChatHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatHistoryMapper
}

func NewChatHistoryRepository(db *gorm.DB) contract.ChatHistoryRepository {
	return &ChatHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatHistoryMapper(),
	}
}

func (r *ChatHistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatHistoryRepositoryImpl) Create(ctx context.Context, record *entity.ChatHistory) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChatHistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatHistory, error) {
	var models []*model.ChatHistory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ChatHistoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.ChatHistory{}).Count(&count).Error
	return count, err
}
