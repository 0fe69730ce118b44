package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/linguabridge-backend/internal/generation"
	"github.com/yungbote/linguabridge-backend/internal/platform/apierr"
	"github.com/yungbote/linguabridge-backend/internal/platform/logger"
	"github.com/yungbote/linguabridge-backend/internal/repos"
	"github.com/yungbote/linguabridge-backend/internal/types"
)

type QuizService interface {
	// GetOrGenerate returns the stored quiz for the lesson when one
	// exists; otherwise it runs the generation pipeline with the lesson
	// content as context and stores the result. No model call is made
	// when a quiz is already present.
	GetOrGenerate(ctx context.Context, lessonID uuid.UUID, count int) (*types.Quiz, error)

	// GenerateForLesson generates and stores a quiz for an already-loaded
	// lesson. Used by the lesson cascade, which has the row in hand.
	GenerateForLesson(ctx context.Context, lesson *types.Lesson, count int) (*types.Quiz, error)
}

type quizService struct {
	db           *gorm.DB
	log          *logger.Logger
	gen          *generation.Generator
	lessonRepo   repos.LessonRepo
	quizRepo     repos.QuizRepo
	languageRepo repos.LanguageRepo
}

func NewQuizService(
	db *gorm.DB,
	log *logger.Logger,
	gen *generation.Generator,
	lessonRepo repos.LessonRepo,
	quizRepo repos.QuizRepo,
	languageRepo repos.LanguageRepo,
) QuizService {
	return &quizService{
		db:           db,
		log:          log.With("service", "QuizService"),
		gen:          gen,
		lessonRepo:   lessonRepo,
		quizRepo:     quizRepo,
		languageRepo: languageRepo,
	}
}

func (qs *quizService) GetOrGenerate(ctx context.Context, lessonID uuid.UUID, count int) (*types.Quiz, error) {
	lesson, err := qs.lessonRepo.GetByID(ctx, nil, lessonID)
	if err != nil {
		return nil, fmt.Errorf("load lesson: %w", err)
	}
	if lesson == nil {
		return nil, apierr.New(http.StatusNotFound, "lesson_not_found", errors.New("lesson not found"))
	}

	existing, err := qs.quizRepo.GetByLessonID(ctx, nil, lessonID)
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	return qs.GenerateForLesson(ctx, lesson, count)
}

func (qs *quizService) GenerateForLesson(ctx context.Context, lesson *types.Lesson, count int) (*types.Quiz, error) {
	language, err := qs.languageRepo.GetByID(ctx, nil, lesson.LanguageID)
	if err != nil {
		return nil, fmt.Errorf("load language: %w", err)
	}
	languageName := "the target language"
	if language != nil {
		languageName = language.Name
	}

	var lessonContent types.LessonContent
	if len(lesson.Content) > 0 {
		if err := json.Unmarshal(lesson.Content, &lessonContent); err != nil {
			qs.log.Warn("Stored lesson content failed to decode, generating quiz without it",
				"lesson_id", lesson.ID, "error", err)
		}
	}

	questions, source, err := qs.gen.Quiz(ctx, generation.QuizRequest{
		LanguageName:  languageName,
		LessonTitle:   lesson.Title,
		LessonContent: lessonContent,
		Count:         count,
	})
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(questions)
	if err != nil {
		return nil, fmt.Errorf("encode questions: %w", err)
	}

	quiz := &types.Quiz{
		ID:        uuid.New(),
		LessonID:  lesson.ID,
		Questions: payload,
		Source:    string(source),
	}
	stored, err := qs.quizRepo.CreateIfAbsent(ctx, nil, quiz)
	if err != nil {
		return nil, fmt.Errorf("store quiz: %w", err)
	}
	qs.log.Info("Quiz stored", "lesson_id", lesson.ID, "questions", len(questions), "source", source)
	return stored, nil
}
