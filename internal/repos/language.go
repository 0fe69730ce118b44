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

type LanguageRepo interface {
	Seed(ctx context.Context, tx *gorm.DB, languages []*types.Language) error
	List(ctx context.Context, tx *gorm.DB) ([]*types.Language, error)
	GetByID(ctx context.Context, tx *gorm.DB, languageID uuid.UUID) (*types.Language, error)
	GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Language, error)
}

type languageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLanguageRepo(db *gorm.DB, baseLog *logger.Logger) LanguageRepo {
	return &languageRepo{db: db, log: baseLog.With("repo", "LanguageRepo")}
}

// Seed inserts the catalog rows, skipping codes that already exist, so
// startup migration stays idempotent.
func (r *languageRepo) Seed(ctx context.Context, tx *gorm.DB, languages []*types.Language) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(languages) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).
		Create(&languages).Error
}

func (r *languageRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Language, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Language
	if err := transaction.WithContext(ctx).Order("name ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *languageRepo) GetByID(ctx context.Context, tx *gorm.DB, languageID uuid.UUID) (*types.Language, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var language types.Language
	err := transaction.WithContext(ctx).Where("id = ?", languageID).First(&language).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &language, nil
}

func (r *languageRepo) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Language, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var language types.Language
	err := transaction.WithContext(ctx).Where("code = ?", code).First(&language).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &language, nil
}
