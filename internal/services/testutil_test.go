package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/linguabridge-backend/internal/platform/logger"
	"github.com/yungbote/linguabridge-backend/internal/requestdata"
	"github.com/yungbote/linguabridge-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A named in-memory database keeps all pooled connections on the
	// same store for the duration of the test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.Language{},
		&types.Lesson{},
		&types.Quiz{},
		&types.Conversation{},
		&types.ConversationExchange{},
		&types.PronunciationAttempt{},
		&types.Progress{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func testLog() *logger.Logger {
	return logger.NewNop()
}

func seedUser(t *testing.T, db *gorm.DB) *types.User {
	t.Helper()
	user := &types.User{
		ID:        uuid.New(),
		Email:     fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		Password:  "not-a-real-hash",
		FirstName: "Test",
		LastName:  "User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedLanguage(t *testing.T, db *gorm.DB, code, name string) *types.Language {
	t.Helper()
	language := &types.Language{
		ID:   uuid.New(),
		Code: code,
		Name: name,
	}
	if err := db.Create(language).Error; err != nil {
		t.Fatalf("seed language: %v", err)
	}
	return language
}

func authedCtx(user *types.User) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{
		UserID: user.ID,
		Email:  user.Email,
	})
}
