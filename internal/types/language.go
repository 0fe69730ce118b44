package types

import (
	"time"

	"github.com/google/uuid"
)

type Language struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code       string    `gorm:"uniqueIndex;not null;column:code" json:"code"`
	Name       string    `gorm:"not null;column:name" json:"name"`
	NativeName string    `gorm:"column:native_name" json:"native_name"`
	Flag       string    `gorm:"column:flag" json:"flag"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (Language) TableName() string {
	return "language"
}
