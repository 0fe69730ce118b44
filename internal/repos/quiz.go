package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/linguabridge-backend/internal/platform/logger"
	"github.com/yungbote/linguabridge-backend/internal/types"
)

type QuizRepo interface {
	// CreateIfAbsent inserts the quiz unless one already exists for the
	// lesson, and returns the stored row either way. The unique index on
	// lesson_id resolves concurrent writers: the loser's insert is a no-op
	// and it reads back the winner's row.
	CreateIfAbsent(ctx context.Context, tx *gorm.DB, quiz *types.Quiz) (*types.Quiz, error)
	GetByLessonID(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID) (*types.Quiz, error)
}

type quizRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizRepo(db *gorm.DB, baseLog *logger.Logger) QuizRepo {
	return &quizRepo{db: db, log: baseLog.With("repo", "QuizRepo")}
}

func (r *quizRepo) CreateIfAbsent(ctx context.Context, tx *gorm.DB, quiz *types.Quiz) (*types.Quiz, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "lesson_id"}},
			DoNothing: true,
		}).
		Create(quiz).Error; err != nil {
		return nil, err
	}

	stored, err := r.GetByLessonID(ctx, transaction, quiz.LessonID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, errors.New("quiz insert raced and readback found nothing")
	}
	return stored, nil
}

func (r *quizRepo) GetByLessonID(ctx context.Context, tx *gorm.DB, lessonID uuid.UUID) (*types.Quiz, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var quiz types.Quiz
	err := transaction.WithContext(ctx).Where("lesson_id = ?", lessonID).First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}
