package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PronunciationAttempt struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;index;not null;column:user_id" json:"user_id"`
	LanguageID uuid.UUID      `gorm:"type:uuid;index;not null;column:language_id" json:"language_id"`
	TargetText string         `gorm:"not null;column:target_text" json:"target_text"`
	Level      string         `gorm:"not null;column:level" json:"level"`
	Accuracy   float64        `gorm:"not null;column:accuracy" json:"accuracy"`
	Feedback   datatypes.JSON `gorm:"column:feedback" json:"feedback"`
	Source     string         `gorm:"not null;default:model;column:source" json:"source"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
}

func (PronunciationAttempt) TableName() string {
	return "pronunciation_attempt"
}
