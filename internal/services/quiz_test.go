package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/linguabridge-backend/internal/generation"
	"github.com/yungbote/linguabridge-backend/internal/platform/apierr"
	"github.com/yungbote/linguabridge-backend/internal/platform/gemini"
	"github.com/yungbote/linguabridge-backend/internal/repos"
	"github.com/yungbote/linguabridge-backend/internal/types"
)

type quizFixture struct {
	db       *gorm.DB
	svc      QuizService
	quizRepo repos.QuizRepo
	mock     *gemini.MockClient
	user     *types.User
	language *types.Language
}

func newQuizFixture(t *testing.T, responses ...gemini.MockResponse) *quizFixture {
	t.Helper()
	db := newTestDB(t)
	log := testLog()
	mock := gemini.NewMockClient(responses...)
	gen := generation.NewGenerator(mock, log)

	lessonRepo := repos.NewLessonRepo(db, log)
	quizRepo := repos.NewQuizRepo(db, log)
	languageRepo := repos.NewLanguageRepo(db, log)

	return &quizFixture{
		db:       db,
		svc:      NewQuizService(db, log, gen, lessonRepo, quizRepo, languageRepo),
		quizRepo: quizRepo,
		mock:     mock,
		user:     seedUser(t, db),
		language: seedLanguage(t, db, "fr", "French"),
	}
}

func (f *quizFixture) seedLesson(t *testing.T) *types.Lesson {
	t.Helper()
	lesson := &types.Lesson{
		ID:         uuid.New(),
		UserID:     f.user.ID,
		LanguageID: f.language.ID,
		Level:      "beginner",
		Title:      "Ordering food",
		Content:    []byte(`{"title":"Ordering food","grammar":"Use je voudrais to order."}`),
		Source:     string(types.SourceModel),
	}
	if err := f.db.Create(lesson).Error; err != nil {
		t.Fatalf("seed lesson: %v", err)
	}
	return lesson
}

func TestGetOrGenerateExistingQuizSkipsModel(t *testing.T) {
	f := newQuizFixture(t)
	lesson := f.seedLesson(t)
	existing := &types.Quiz{
		ID:        uuid.New(),
		LessonID:  lesson.ID,
		Questions: []byte(quizJSON),
		Source:    string(types.SourceModel),
	}
	if err := f.db.Create(existing).Error; err != nil {
		t.Fatalf("seed quiz: %v", err)
	}

	quiz, err := f.svc.GetOrGenerate(context.Background(), lesson.ID, 5)
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	if quiz.ID != existing.ID {
		t.Fatalf("quiz.ID = %v, want %v", quiz.ID, existing.ID)
	}
	if f.mock.CallCount() != 0 {
		t.Fatalf("model calls = %d, want 0", f.mock.CallCount())
	}
}

func TestGetOrGenerateCreatesQuiz(t *testing.T) {
	f := newQuizFixture(t, gemini.MockResponse{Text: quizJSON})
	lesson := f.seedLesson(t)

	quiz, err := f.svc.GetOrGenerate(context.Background(), lesson.ID, 5)
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	if quiz.LessonID != lesson.ID {
		t.Fatalf("quiz.LessonID = %v, want %v", quiz.LessonID, lesson.ID)
	}
	if quiz.Source != string(types.SourceModel) {
		t.Fatalf("quiz source = %q, want model", quiz.Source)
	}
	stored, err := f.quizRepo.GetByLessonID(context.Background(), nil, lesson.ID)
	if err != nil {
		t.Fatalf("GetByLessonID: %v", err)
	}
	if stored == nil {
		t.Fatal("quiz not persisted")
	}
}

func TestGetOrGenerateSecondCallReusesRow(t *testing.T) {
	f := newQuizFixture(t, gemini.MockResponse{Text: quizJSON})
	lesson := f.seedLesson(t)

	first, err := f.svc.GetOrGenerate(context.Background(), lesson.ID, 5)
	if err != nil {
		t.Fatalf("first GetOrGenerate: %v", err)
	}
	second, err := f.svc.GetOrGenerate(context.Background(), lesson.ID, 5)
	if err != nil {
		t.Fatalf("second GetOrGenerate: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("second call created a new quiz: %v vs %v", first.ID, second.ID)
	}
	if f.mock.CallCount() != 1 {
		t.Fatalf("model calls = %d, want 1", f.mock.CallCount())
	}
}

func TestGetOrGenerateFallbackQuizOnGarbage(t *testing.T) {
	f := newQuizFixture(t, gemini.MockResponse{Text: "no json here"})
	lesson := f.seedLesson(t)

	quiz, err := f.svc.GetOrGenerate(context.Background(), lesson.ID, 5)
	if err != nil {
		t.Fatalf("GetOrGenerate: %v", err)
	}
	if quiz.Source != string(types.SourceFallback) {
		t.Fatalf("quiz source = %q, want fallback", quiz.Source)
	}
	var questions []types.QuizQuestion
	if err := json.Unmarshal(quiz.Questions, &questions); err != nil {
		t.Fatalf("decode questions: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("fallback quiz has %d questions, want 0", len(questions))
	}
}

func TestGetOrGenerateUnknownLesson(t *testing.T) {
	f := newQuizFixture(t)

	_, err := f.svc.GetOrGenerate(context.Background(), uuid.New(), 5)
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Fatalf("err = %v, want 404 apierr", err)
	}
}
