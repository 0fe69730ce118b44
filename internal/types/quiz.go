package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Quiz holds the generated question set for a lesson. The unique index on
// lesson_id is the idempotency key for cascade generation: a second writer
// for the same lesson loses at the database, not in application code.
type Quiz struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	LessonID  uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null;column:lesson_id" json:"lesson_id"`
	Questions datatypes.JSON `gorm:"column:questions" json:"questions"`
	Source    string         `gorm:"not null;default:model;column:source" json:"source"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
}

func (Quiz) TableName() string {
	return "quiz"
}
