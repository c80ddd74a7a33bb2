package mapper

import (
	"rag-assessment-be/internal/entity"
	"rag-assessment-be/internal/model"

	"gorm.io/datatypes"
)

type ChatHistoryMapper struct{}

func NewChatHistoryMapper() *ChatHistoryMapper {
	return &ChatHistoryMapper{}
}

func (m *ChatHistoryMapper) ToEntity(c *model.ChatHistory) *entity.ChatHistory {
	if c == nil {
		return nil
	}
	return &entity.ChatHistory{
		Id:        c.Id,
		SessionId: c.SessionId,
		UserId:    c.UserId,
		Query:     c.Query,
		Response:  c.Response,
		Sources:   []byte(c.Sources),
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChatHistoryMapper) ToModel(c *entity.ChatHistory) *model.ChatHistory {
	if c == nil {
		return nil
	}
	return &model.ChatHistory{
		Id:        c.Id,
		SessionId: c.SessionId,
		UserId:    c.UserId,
		Query:     c.Query,
		Response:  c.Response,
		Sources:   datatypes.JSON(c.Sources),
		CreatedAt: c.CreatedAt,
	}
}

func (m *ChatHistoryMapper) ToEntities(records []*model.ChatHistory) []*entity.ChatHistory {
	entities := make([]*entity.ChatHistory, len(records))
	for i, c := range records {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
