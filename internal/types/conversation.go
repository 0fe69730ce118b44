package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Conversation struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;index;not null;column:user_id" json:"user_id"`
	LanguageID uuid.UUID      `gorm:"type:uuid;index;not null;column:language_id" json:"language_id"`
	Level      string         `gorm:"not null;column:level" json:"level"`
	Scenario   string         `gorm:"column:scenario" json:"scenario"`
	Content    datatypes.JSON `gorm:"column:content" json:"content"`
	Source     string         `gorm:"not null;default:model;column:source" json:"source"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
}

func (Conversation) TableName() string {
	return "conversation"
}

// ConversationExchange is a single free-text turn: the learner's message
// and the model's reply.
type ConversationExchange struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null;column:user_id" json:"user_id"`
	LanguageID uuid.UUID `gorm:"type:uuid;index;not null;column:language_id" json:"language_id"`
	Message    string    `gorm:"not null;column:message" json:"message"`
	Reply      string    `gorm:"not null;column:reply" json:"reply"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (ConversationExchange) TableName() string {
	return "conversation_exchange"
}
