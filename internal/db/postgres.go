package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yungbote/linguabridge-backend/internal/platform/logger"
	"github.com/yungbote/linguabridge-backend/internal/repos"
	"github.com/yungbote/linguabridge-backend/internal/types"
	"github.com/yungbote/linguabridge-backend/internal/utils"
)

//go:embed languages.yaml
var languageCatalog []byte

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "linguabridge", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		serviceLog.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.Language{},
		&types.Lesson{},
		&types.Quiz{},
		&types.Conversation{},
		&types.ConversationExchange{},
		&types.PronunciationAttempt{},
		&types.Progress{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		table, name, column, refTable string
	}{
		{"user_token", "fk_user_token_user_id", "user_id", "user"},
		{"lesson", "fk_lesson_user_id", "user_id", "user"},
		{"lesson", "fk_lesson_language_id", "language_id", "language"},
		{"quiz", "fk_quiz_lesson_id", "lesson_id", "lesson"},
		{"conversation", "fk_conversation_user_id", "user_id", "user"},
		{"conversation", "fk_conversation_language_id", "language_id", "language"},
		{"conversation_exchange", "fk_conversation_exchange_user_id", "user_id", "user"},
		{"pronunciation_attempt", "fk_pronunciation_attempt_user_id", "user_id", "user"},
		{"progress", "fk_progress_user_id", "user_id", "user"},
		{"progress", "fk_progress_language_id", "language_id", "language"},
	}
	for _, fk := range constraints {
		stmt := fmt.Sprintf(`
			DO $$ BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
					ALTER TABLE "%s"
					ADD CONSTRAINT "%s"
					FOREIGN KEY ("%s")
					REFERENCES "%s"("id")
					ON DELETE CASCADE;
				END IF;
			END $$;
		`, fk.name, fk.table, fk.name, fk.column, fk.refTable)
		if err := s.db.Exec(stmt).Error; err != nil {
			s.log.Error("Failed to add foreign key constraint", "constraint", fk.name, "error", err)
			return err
		}
	}
	return nil
}

// SeedLanguages loads the embedded catalog into the language table.
// Existing codes are left untouched so repeated startups are safe.
func (s *PostgresService) SeedLanguages(ctx context.Context, languageRepo repos.LanguageRepo) error {
	var catalog struct {
		Languages []struct {
			Code       string `yaml:"code"`
			Name       string `yaml:"name"`
			NativeName string `yaml:"native_name"`
			Flag       string `yaml:"flag"`
		} `yaml:"languages"`
	}
	if err := yaml.Unmarshal(languageCatalog, &catalog); err != nil {
		return fmt.Errorf("parse language catalog: %w", err)
	}
	rows := make([]*types.Language, 0, len(catalog.Languages))
	for _, entry := range catalog.Languages {
		rows = append(rows, &types.Language{
			ID:         uuid.New(),
			Code:       entry.Code,
			Name:       entry.Name,
			NativeName: entry.NativeName,
			Flag:       entry.Flag,
		})
	}
	if err := languageRepo.Seed(ctx, s.db, rows); err != nil {
		return fmt.Errorf("seed languages: %w", err)
	}
	s.log.Info("Language catalog seeded", "count", len(rows))
	return nil
}
