package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yungbote/linguabridge-backend/internal/platform/apierr"
	"github.com/yungbote/linguabridge-backend/internal/platform/logger"
	"github.com/yungbote/linguabridge-backend/internal/repos"
	"github.com/yungbote/linguabridge-backend/internal/requestdata"
	"github.com/yungbote/linguabridge-backend/internal/types"
)

const xpPerLesson = 10

type LeaderboardEntry struct {
	UserID    uuid.UUID `json:"user_id"`
	FirstName string    `json:"first_name"`
	XP        int       `json:"xp"`
	Rank      int       `json:"rank"`
}

type ProgressService interface {
	// RecordLesson awards lesson XP to the calling user for the language
	// and mirrors the new total into the leaderboard cache.
	RecordLesson(ctx context.Context, userID, languageID uuid.UUID) (*types.Progress, error)
	GetProgress(ctx context.Context, languageID uuid.UUID) (*types.Progress, error)
	GetLeaderboard(ctx context.Context, languageID uuid.UUID, limit int) ([]LeaderboardEntry, error)
}

type progressService struct {
	db           *gorm.DB
	log          *logger.Logger
	progressRepo repos.ProgressRepo
	userRepo     repos.UserRepo
	// rdb may be nil: the leaderboard then reads straight from postgres.
	rdb *goredis.Client
}

func NewProgressService(
	db *gorm.DB,
	log *logger.Logger,
	progressRepo repos.ProgressRepo,
	userRepo repos.UserRepo,
	rdb *goredis.Client,
) ProgressService {
	return &progressService{
		db:           db,
		log:          log.With("service", "ProgressService"),
		progressRepo: progressRepo,
		userRepo:     userRepo,
		rdb:          rdb,
	}
}

func leaderboardKey(languageID uuid.UUID) string {
	return fmt.Sprintf("leaderboard:%s", languageID)
}

func (ps *progressService) RecordLesson(ctx context.Context, userID, languageID uuid.UUID) (*types.Progress, error) {
	progress, err := ps.progressRepo.AddLessonXP(ctx, nil, userID, languageID, xpPerLesson)
	if err != nil {
		return nil, fmt.Errorf("add lesson xp: %w", err)
	}

	if ps.rdb != nil {
		// Postgres is the source of truth; the ZSET mirrors the absolute
		// total so a replayed update cannot double-count.
		err := ps.rdb.ZAdd(ctx, leaderboardKey(languageID), goredis.Z{
			Score:  float64(progress.XP),
			Member: userID.String(),
		}).Err()
		if err != nil {
			ps.log.Warn("Leaderboard cache update failed", "error", err, "language_id", languageID)
		}
	}
	return progress, nil
}

func (ps *progressService) GetProgress(ctx context.Context, languageID uuid.UUID) (*types.Progress, error) {
	userID, ok := requestdata.UserID(ctx)
	if !ok {
		return nil, apierr.New(http.StatusUnauthorized, "missing_identity", errors.New("no authenticated user"))
	}
	progress, err := ps.progressRepo.GetByUserAndLanguage(ctx, nil, userID, languageID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	if progress == nil {
		// No activity yet: an empty progress row, not an error.
		return &types.Progress{UserID: userID, LanguageID: languageID}, nil
	}
	return progress, nil
}

func (ps *progressService) GetLeaderboard(ctx context.Context, languageID uuid.UUID, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	if ps.rdb != nil {
		entries, err := ps.leaderboardFromRedis(ctx, languageID, limit)
		if err != nil {
			ps.log.Warn("Leaderboard cache read failed, falling back to postgres", "error", err)
		} else if len(entries) > 0 {
			return entries, nil
		}
	}
	return ps.leaderboardFromPostgres(ctx, languageID, limit)
}

func (ps *progressService) leaderboardFromRedis(ctx context.Context, languageID uuid.UUID, limit int) ([]LeaderboardEntry, error) {
	zs, err := ps.rdb.ZRevRangeWithScores(ctx, leaderboardKey(languageID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(zs))
	for i, z := range zs {
		member, _ := z.Member.(string)
		userID, err := uuid.Parse(member)
		if err != nil {
			continue
		}
		entry := LeaderboardEntry{
			UserID: userID,
			XP:     int(z.Score),
			Rank:   i + 1,
		}
		if user, err := ps.userRepo.GetByID(ctx, nil, userID); err == nil && user != nil {
			entry.FirstName = user.FirstName
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (ps *progressService) leaderboardFromPostgres(ctx context.Context, languageID uuid.UUID, limit int) ([]LeaderboardEntry, error) {
	rows, err := ps.progressRepo.TopByLanguage(ctx, nil, languageID, limit)
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	entries := make([]LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entry := LeaderboardEntry{
			UserID: row.UserID,
			XP:     row.XP,
			Rank:   i + 1,
		}
		if user, err := ps.userRepo.GetByID(ctx, nil, row.UserID); err == nil && user != nil {
			entry.FirstName = user.FirstName
		}
		entries = append(entries, entry)

		if ps.rdb != nil {
			// Lazily rebuild the cache while we have the rows in hand.
			_ = ps.rdb.ZAdd(ctx, leaderboardKey(languageID), goredis.Z{
				Score:  float64(row.XP),
				Member: row.UserID.String(),
			}).Err()
		}
	}
	return entries, nil
}
