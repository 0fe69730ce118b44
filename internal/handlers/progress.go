package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/linguabridge-backend/internal/services"
)

type ProgressHandler struct {
	progressService services.ProgressService
}

func NewProgressHandler(progressService services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

func (ph *ProgressHandler) GetProgress(c *gin.Context) {
	languageID, err := uuid.Parse(c.Param("languageId"))
	if err != nil {
		badRequest(c, "languageId must be a valid UUID")
		return
	}
	progress, err := ph.progressService.GetProgress(c.Request.Context(), languageID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"progress": progress})
}

func (ph *ProgressHandler) GetLeaderboard(c *gin.Context) {
	languageID, err := uuid.Parse(c.Param("languageId"))
	if err != nil {
		badRequest(c, "languageId must be a valid UUID")
		return
	}
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	entries, err := ph.progressService.GetLeaderboard(c.Request.Context(), languageID, limit)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"leaderboard": entries})
}
