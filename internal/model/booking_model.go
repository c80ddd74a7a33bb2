package model

import (
	"time"

	"github.com/google/uuid"
)

type InterviewBooking struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Date      string    `gorm:"type:varchar(10);not null"` // YYYY-MM-DD
	Time      string    `gorm:"type:varchar(5);not null"`  // HH:MM
	SessionId string    `gorm:"type:varchar(255);not null;index"`
	Status    string    `gorm:"type:varchar(20);default:scheduled"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (InterviewBooking) TableName() string {
	return "interview_bookings"
}
