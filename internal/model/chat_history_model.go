package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatHistory struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId string         `gorm:"type:varchar(255);not null;index"`
	UserId    string         `gorm:"type:varchar(255);index"`
	Query     string         `gorm:"type:text;not null"`
	Response  string         `gorm:"type:text;not null"`
	Sources   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (ChatHistory) TableName() string {
	return "chat_history"
}
