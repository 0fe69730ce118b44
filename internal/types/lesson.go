package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Lesson struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;index;not null;column:user_id" json:"user_id"`
	LanguageID uuid.UUID      `gorm:"type:uuid;index;not null;column:language_id" json:"language_id"`
	Level      string         `gorm:"not null;column:level" json:"level"`
	Topic      string         `gorm:"column:topic" json:"topic"`
	Title      string         `gorm:"column:title" json:"title"`
	Content    datatypes.JSON `gorm:"column:content" json:"content"`
	Source     string         `gorm:"not null;default:model;column:source" json:"source"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null" json:"updated_at"`
}

func (Lesson) TableName() string {
	return "lesson"
}
