package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/linguabridge-backend/internal/platform/logger"
	"github.com/yungbote/linguabridge-backend/internal/types"
)

type PronunciationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, attempt *types.PronunciationAttempt) (*types.PronunciationAttempt, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.PronunciationAttempt, error)
}

type pronunciationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPronunciationRepo(db *gorm.DB, baseLog *logger.Logger) PronunciationRepo {
	return &pronunciationRepo{db: db, log: baseLog.With("repo", "PronunciationRepo")}
}

func (r *pronunciationRepo) Create(ctx context.Context, tx *gorm.DB, attempt *types.PronunciationAttempt) (*types.PronunciationAttempt, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(attempt).Error; err != nil {
		return nil, err
	}
	return attempt, nil
}

func (r *pronunciationRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.PronunciationAttempt, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if limit <= 0 {
		limit = 50
	}
	var results []*types.PronunciationAttempt
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
