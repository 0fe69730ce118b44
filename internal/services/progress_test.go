package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/linguabridge-backend/internal/platform/apierr"
	"github.com/yungbote/linguabridge-backend/internal/repos"
	"github.com/yungbote/linguabridge-backend/internal/types"
)

func newProgressFixture(t *testing.T) (*gorm.DB, ProgressService) {
	t.Helper()
	db := newTestDB(t)
	log := testLog()
	progressRepo := repos.NewProgressRepo(db, log)
	userRepo := repos.NewUserRepo(db, log)
	// nil redis client exercises the postgres-only path.
	return db, NewProgressService(db, log, progressRepo, userRepo, nil)
}

func TestRecordLessonAccruesXP(t *testing.T) {
	db, svc := newProgressFixture(t)
	user := seedUser(t, db)
	language := seedLanguage(t, db, "de", "German")
	ctx := authedCtx(user)

	first, err := svc.RecordLesson(ctx, user.ID, language.ID)
	if err != nil {
		t.Fatalf("first RecordLesson: %v", err)
	}
	if first.XP != 10 || first.LessonsGenerated != 1 {
		t.Fatalf("first progress = %+v", first)
	}

	second, err := svc.RecordLesson(ctx, user.ID, language.ID)
	if err != nil {
		t.Fatalf("second RecordLesson: %v", err)
	}
	if second.XP != 20 || second.LessonsGenerated != 2 {
		t.Fatalf("second progress = %+v", second)
	}
	if second.Streak < 1 {
		t.Fatalf("streak = %d, want at least 1", second.Streak)
	}
}

func TestGetProgressRequiresIdentity(t *testing.T) {
	db, svc := newProgressFixture(t)
	language := seedLanguage(t, db, "it", "Italian")

	_, err := svc.GetProgress(context.Background(), language.ID)
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("err = %v, want 401 apierr", err)
	}
}

func TestGetProgressEmptyRow(t *testing.T) {
	db, svc := newProgressFixture(t)
	user := seedUser(t, db)
	language := seedLanguage(t, db, "pt", "Portuguese")

	progress, err := svc.GetProgress(authedCtx(user), language.ID)
	if err != nil {
		t.Fatalf("GetProgress: %v", err)
	}
	if progress.XP != 0 || progress.LessonsGenerated != 0 {
		t.Fatalf("expected empty progress, got %+v", progress)
	}
	if progress.UserID != user.ID || progress.LanguageID != language.ID {
		t.Fatalf("empty row identity mismatch: %+v", progress)
	}
}

func TestGetLeaderboardOrdersByXP(t *testing.T) {
	db, svc := newProgressFixture(t)
	language := seedLanguage(t, db, "ja", "Japanese")

	var users []*types.User
	for i := 0; i < 3; i++ {
		users = append(users, seedUser(t, db))
	}
	// users[1] earns the most XP, then users[2], then users[0].
	lessonCounts := []int{1, 4, 2}
	for i, user := range users {
		for n := 0; n < lessonCounts[i]; n++ {
			if _, err := svc.RecordLesson(authedCtx(user), user.ID, language.ID); err != nil {
				t.Fatalf("RecordLesson: %v", err)
			}
		}
	}

	entries, err := svc.GetLeaderboard(context.Background(), language.ID, 10)
	if err != nil {
		t.Fatalf("GetLeaderboard: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	if entries[0].UserID != users[1].ID || entries[0].XP != 40 || entries[0].Rank != 1 {
		t.Fatalf("top entry = %+v", entries[0])
	}
	if entries[1].UserID != users[2].ID || entries[2].UserID != users[0].ID {
		t.Fatalf("order wrong: %+v", entries)
	}
}
