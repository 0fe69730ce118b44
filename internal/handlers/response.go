package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/linguabridge-backend/internal/platform/apierr"
	"github.com/yungbote/linguabridge-backend/internal/platform/gemini"
)

// ok writes the standard success envelope. Payload keys are spread into
// the top-level object next to "success".
func ok(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// fail maps service errors to the failure envelope. apierr carries its
// own status; model-layer errors are server-side faults; everything else
// is a 500 with a generic message so internals never leak.
func fail(c *gin.Context, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"success": false, "message": apiErr.Error()})
		return
	}
	if errors.Is(err, gemini.ErrNoAPIKey) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "content generation is not configured"})
		return
	}
	var upstream *gemini.UpstreamError
	if errors.As(err, &upstream) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "content generation is temporarily unavailable"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}
