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

// LessonResult bundles the stored lesson with the caller's updated
// progress for the language.
type LessonResult struct {
	Lesson   *types.Lesson   `json:"lesson"`
	Progress *types.Progress `json:"progress"`
}

// LessonWithQuiz pairs a lesson with its quiz, which may be nil when the
// cascade has not produced one.
type LessonWithQuiz struct {
	Lesson *types.Lesson `json:"lesson"`
	Quiz   *types.Quiz   `json:"quiz"`
}

type LessonService interface {
	// Generate runs the lesson pipeline for the authenticated user,
	// persists the result, records progress, and then best-effort
	// generates the companion quiz. A quiz failure never fails the
	// lesson call.
	Generate(ctx context.Context, languageID uuid.UUID, level, topic string) (*LessonResult, error)

	// GetWithQuiz returns a stored lesson together with its quiz if one
	// exists.
	GetWithQuiz(ctx context.Context, lessonID uuid.UUID) (*LessonWithQuiz, error)

	// ListForUser returns the caller's lessons, newest first.
	ListForUser(ctx context.Context) ([]*types.Lesson, error)
}

type lessonService struct {
	db           *gorm.DB
	log          *logger.Logger
	gen          *generation.Generator
	lessonRepo   repos.LessonRepo
	quizRepo     repos.QuizRepo
	languageRepo repos.LanguageRepo
	quizSvc      QuizService
	progressSvc  ProgressService
}

func NewLessonService(
	db *gorm.DB,
	log *logger.Logger,
	gen *generation.Generator,
	lessonRepo repos.LessonRepo,
	quizRepo repos.QuizRepo,
	languageRepo repos.LanguageRepo,
	quizSvc QuizService,
	progressSvc ProgressService,
) LessonService {
	return &lessonService{
		db:           db,
		log:          log.With("service", "LessonService"),
		gen:          gen,
		lessonRepo:   lessonRepo,
		quizRepo:     quizRepo,
		languageRepo: languageRepo,
		quizSvc:      quizSvc,
		progressSvc:  progressSvc,
	}
}

func (ls *lessonService) Generate(ctx context.Context, languageID uuid.UUID, level, topic string) (*LessonResult, error) {
	userID, ok := requestdata.UserID(ctx)
	if !ok {
		return nil, apierr.New(http.StatusUnauthorized, "unauthorized", errors.New("no authenticated user"))
	}

	level = strings.TrimSpace(level)
	if level == "" {
		return nil, apierr.New(http.StatusBadRequest, "missing_level", errors.New("level is required"))
	}

	language, err := ls.languageRepo.GetByID(ctx, nil, languageID)
	if err != nil {
		return nil, fmt.Errorf("load language: %w", err)
	}
	if language == nil {
		return nil, apierr.New(http.StatusNotFound, "language_not_found", errors.New("language not found"))
	}

	content, source, err := ls.gen.Lesson(ctx, generation.LessonRequest{
		LanguageName: language.Name,
		Level:        level,
		Topic:        topic,
	})
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("encode lesson content: %w", err)
	}

	lesson, err := ls.lessonRepo.Create(ctx, nil, &types.Lesson{
		ID:         uuid.New(),
		UserID:     userID,
		LanguageID: languageID,
		Level:      level,
		Topic:      topic,
		Title:      content.Title,
		Content:    payload,
		Source:     string(source),
	})
	if err != nil {
		return nil, fmt.Errorf("store lesson: %w", err)
	}
	ls.log.Info("Lesson stored", "lesson_id", lesson.ID, "language", language.Code, "source", source)

	progress, err := ls.progressSvc.RecordLesson(ctx, userID, languageID)
	if err != nil {
		// The lesson exists, so surface progress trouble in logs only.
		ls.log.Error("Failed to record lesson progress", "lesson_id", lesson.ID, "error", err)
	}

	// Cascade runs after the lesson row is committed so the quiz's
	// lesson_id reference is always valid. Its failure is logged and
	// swallowed: the lesson call already succeeded from the user's
	// point of view, and the quiz endpoint regenerates on demand.
	if existing, qerr := ls.quizRepo.GetByLessonID(ctx, nil, lesson.ID); qerr != nil {
		ls.log.Error("Quiz lookup failed during cascade", "lesson_id", lesson.ID, "error", qerr)
	} else if existing == nil {
		if _, qerr := ls.quizSvc.GenerateForLesson(ctx, lesson, generation.DefaultQuizQuestionCount); qerr != nil {
			ls.log.Error("Cascade quiz generation failed", "lesson_id", lesson.ID, "error", qerr)
		}
	}

	return &LessonResult{Lesson: lesson, Progress: progress}, nil
}

func (ls *lessonService) GetWithQuiz(ctx context.Context, lessonID uuid.UUID) (*LessonWithQuiz, error) {
	lesson, err := ls.lessonRepo.GetByID(ctx, nil, lessonID)
	if err != nil {
		return nil, fmt.Errorf("load lesson: %w", err)
	}
	if lesson == nil {
		return nil, apierr.New(http.StatusNotFound, "lesson_not_found", errors.New("lesson not found"))
	}
	quiz, err := ls.quizRepo.GetByLessonID(ctx, nil, lessonID)
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	return &LessonWithQuiz{Lesson: lesson, Quiz: quiz}, nil
}

func (ls *lessonService) ListForUser(ctx context.Context) ([]*types.Lesson, error) {
	userID, ok := requestdata.UserID(ctx)
	if !ok {
		return nil, apierr.New(http.StatusUnauthorized, "unauthorized", errors.New("no authenticated user"))
	}
	return ls.lessonRepo.GetByUserID(ctx, nil, userID)
}
