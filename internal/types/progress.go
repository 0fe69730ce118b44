package types

import (
	"time"

	"github.com/google/uuid"
)

type Progress struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_language;column:user_id" json:"user_id"`
	LanguageID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_language;column:language_id" json:"language_id"`
	XP               int       `gorm:"not null;default:0;column:xp" json:"xp"`
	LessonsGenerated int       `gorm:"not null;default:0;column:lessons_generated" json:"lessons_generated"`
	Streak           int       `gorm:"not null;default:0;column:streak" json:"streak"`
	LastActivityAt   time.Time `gorm:"column:last_activity_at" json:"last_activity_at"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}

func (Progress) TableName() string {
	return "progress"
}
