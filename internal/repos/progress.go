package repos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/linguabridge-backend/internal/platform/logger"
	"github.com/yungbote/linguabridge-backend/internal/types"
)

type ProgressRepo interface {
	// AddLessonXP upserts the per-user-per-language progress row, adding
	// the XP and bumping the lesson counter. Streak increments when the
	// previous activity was on an earlier day.
	AddLessonXP(ctx context.Context, tx *gorm.DB, userID, languageID uuid.UUID, xp int) (*types.Progress, error)
	GetByUserAndLanguage(ctx context.Context, tx *gorm.DB, userID, languageID uuid.UUID) (*types.Progress, error)
	TopByLanguage(ctx context.Context, tx *gorm.DB, languageID uuid.UUID, limit int) ([]*types.Progress, error)
}

type progressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProgressRepo(db *gorm.DB, baseLog *logger.Logger) ProgressRepo {
	return &progressRepo{db: db, log: baseLog.With("repo", "ProgressRepo")}
}

func (r *progressRepo) AddLessonXP(ctx context.Context, tx *gorm.DB, userID, languageID uuid.UUID, xp int) (*types.Progress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var progress *types.Progress
	err := transaction.WithContext(ctx).Transaction(func(inner *gorm.DB) error {
		var row types.Progress
		err := inner.Where("user_id = ? AND language_id = ?", userID, languageID).First(&row).Error
		now := time.Now().UTC()
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = types.Progress{
				ID:               uuid.New(),
				UserID:           userID,
				LanguageID:       languageID,
				XP:               xp,
				LessonsGenerated: 1,
				Streak:           1,
				LastActivityAt:   now,
			}
			if err := inner.Create(&row).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			row.XP += xp
			row.LessonsGenerated++
			if sameDay(row.LastActivityAt, now) {
				// Streak unchanged within the same day.
			} else if sameDay(row.LastActivityAt.Add(24*time.Hour), now) {
				row.Streak++
			} else {
				row.Streak = 1
			}
			row.LastActivityAt = now
			if err := inner.Save(&row).Error; err != nil {
				return err
			}
		}
		progress = &row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *progressRepo) GetByUserAndLanguage(ctx context.Context, tx *gorm.DB, userID, languageID uuid.UUID) (*types.Progress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var progress types.Progress
	err := transaction.WithContext(ctx).
		Where("user_id = ? AND language_id = ?", userID, languageID).
		First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepo) TopByLanguage(ctx context.Context, tx *gorm.DB, languageID uuid.UUID, limit int) ([]*types.Progress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if limit <= 0 {
		limit = 10
	}
	var results []*types.Progress
	if err := transaction.WithContext(ctx).
		Where("language_id = ?", languageID).
		Order("xp DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
