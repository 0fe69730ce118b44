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

type PronunciationService interface {
	// GenerateFeedback produces pronunciation feedback for the target
	// phrase and records the attempt for the authenticated user.
	GenerateFeedback(ctx context.Context, languageID uuid.UUID, targetText, level string) (*types.PronunciationAttempt, error)
}

type pronunciationService struct {
	db           *gorm.DB
	log          *logger.Logger
	gen          *generation.Generator
	attemptRepo  repos.PronunciationRepo
	languageRepo repos.LanguageRepo
}

func NewPronunciationService(
	db *gorm.DB,
	log *logger.Logger,
	gen *generation.Generator,
	attemptRepo repos.PronunciationRepo,
	languageRepo repos.LanguageRepo,
) PronunciationService {
	return &pronunciationService{
		db:           db,
		log:          log.With("service", "PronunciationService"),
		gen:          gen,
		attemptRepo:  attemptRepo,
		languageRepo: languageRepo,
	}
}

func (ps *pronunciationService) GenerateFeedback(ctx context.Context, languageID uuid.UUID, targetText, level string) (*types.PronunciationAttempt, error) {
	userID, ok := requestdata.UserID(ctx)
	if !ok {
		return nil, apierr.New(http.StatusUnauthorized, "unauthorized", errors.New("no authenticated user"))
	}
	if strings.TrimSpace(targetText) == "" {
		return nil, apierr.New(http.StatusBadRequest, "empty_target_text", errors.New("targetText is required"))
	}
	level = strings.TrimSpace(level)
	if level == "" {
		return nil, apierr.New(http.StatusBadRequest, "missing_level", errors.New("level is required"))
	}
	language, err := ps.languageRepo.GetByID(ctx, nil, languageID)
	if err != nil {
		return nil, fmt.Errorf("load language: %w", err)
	}
	if language == nil {
		return nil, apierr.New(http.StatusNotFound, "language_not_found", errors.New("language not found"))
	}

	content, source, err := ps.gen.Pronunciation(ctx, generation.PronunciationRequest{
		LanguageName: language.Name,
		TargetText:   targetText,
		Level:        level,
	})
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("encode feedback: %w", err)
	}

	attempt, err := ps.attemptRepo.Create(ctx, nil, &types.PronunciationAttempt{
		ID:         uuid.New(),
		UserID:     userID,
		LanguageID: languageID,
		TargetText: targetText,
		Level:      level,
		Accuracy:   content.Accuracy,
		Feedback:   payload,
		Source:     string(source),
	})
	if err != nil {
		return nil, fmt.Errorf("store attempt: %w", err)
	}
	ps.log.Info("Pronunciation attempt stored", "attempt_id", attempt.ID, "accuracy", content.Accuracy, "source", source)
	return attempt, nil
}
