package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/linguabridge-backend/internal/generation"
	"github.com/yungbote/linguabridge-backend/internal/platform/apierr"
	"github.com/yungbote/linguabridge-backend/internal/platform/logger"
	"github.com/yungbote/linguabridge-backend/internal/repos"
	"github.com/yungbote/linguabridge-backend/internal/requestdata"
	"github.com/yungbote/linguabridge-backend/internal/types"
)

type ConversationService interface {
	// GeneratePrompt builds a practice conversation scenario for the
	// authenticated user and persists it.
	GeneratePrompt(ctx context.Context, languageID uuid.UUID, level, scenario string) (*types.Conversation, error)

	// Respond answers one free-text learner turn and records the
	// exchange. The reply is plain text, not JSON.
	Respond(ctx context.Context, languageID uuid.UUID, message string) (*types.ConversationExchange, error)
}

type conversationService struct {
	db           *gorm.DB
	log          *logger.Logger
	gen          *generation.Generator
	convoRepo    repos.ConversationRepo
	languageRepo repos.LanguageRepo
}

func NewConversationService(
	db *gorm.DB,
	log *logger.Logger,
	gen *generation.Generator,
	convoRepo repos.ConversationRepo,
	languageRepo repos.LanguageRepo,
) ConversationService {
	return &conversationService{
		db:           db,
		log:          log.With("service", "ConversationService"),
		gen:          gen,
		convoRepo:    convoRepo,
		languageRepo: languageRepo,
	}
}

func (cs *conversationService) GeneratePrompt(ctx context.Context, languageID uuid.UUID, level, scenario string) (*types.Conversation, error) {
	userID, ok := requestdata.UserID(ctx)
	if !ok {
		return nil, apierr.New(http.StatusUnauthorized, "unauthorized", errors.New("no authenticated user"))
	}
	level = strings.TrimSpace(level)
	if level == "" {
		return nil, apierr.New(http.StatusBadRequest, "missing_level", errors.New("level is required"))
	}
	language, err := cs.languageRepo.GetByID(ctx, nil, languageID)
	if err != nil {
		return nil, fmt.Errorf("load language: %w", err)
	}
	if language == nil {
		return nil, apierr.New(http.StatusNotFound, "language_not_found", errors.New("language not found"))
	}

	content, source, err := cs.gen.Conversation(ctx, generation.ConversationRequest{
		LanguageName: language.Name,
		Level:        level,
		Scenario:     scenario,
	})
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("encode conversation: %w", err)
	}

	conversation, err := cs.convoRepo.Create(ctx, nil, &types.Conversation{
		ID:         uuid.New(),
		UserID:     userID,
		LanguageID: languageID,
		Level:      level,
		Scenario:   content.Scenario,
		Content:    payload,
		Source:     string(source),
	})
	if err != nil {
		return nil, fmt.Errorf("store conversation: %w", err)
	}
	cs.log.Info("Conversation stored", "conversation_id", conversation.ID, "language", language.Code, "source", source)
	return conversation, nil
}

func (cs *conversationService) Respond(ctx context.Context, languageID uuid.UUID, message string) (*types.ConversationExchange, error) {
	userID, ok := requestdata.UserID(ctx)
	if !ok {
		return nil, apierr.New(http.StatusUnauthorized, "unauthorized", errors.New("no authenticated user"))
	}
	if strings.TrimSpace(message) == "" {
		return nil, apierr.New(http.StatusBadRequest, "empty_message", errors.New("message is required"))
	}
	language, err := cs.languageRepo.GetByID(ctx, nil, languageID)
	if err != nil {
		return nil, fmt.Errorf("load language: %w", err)
	}
	if language == nil {
		return nil, apierr.New(http.StatusNotFound, "language_not_found", errors.New("language not found"))
	}

	reply, _, err := cs.gen.Turn(ctx, generation.TurnRequest{
		LanguageName: language.Name,
		Message:      message,
	})
	if err != nil {
		return nil, err
	}

	exchange, err := cs.convoRepo.CreateExchange(ctx, nil, &types.ConversationExchange{
		ID:         uuid.New(),
		UserID:     userID,
		LanguageID: languageID,
		Message:    message,
		Reply:      reply,
	})
	if err != nil {
		return nil, fmt.Errorf("store exchange: %w", err)
	}
	return exchange, nil
}
