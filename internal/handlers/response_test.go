package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/linguabridge-backend/internal/platform/apierr"
	"github.com/yungbote/linguabridge-backend/internal/platform/gemini"
)

func runFail(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	fail(c, err)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return rec.Code, body
}

func TestFailMapsAPIError(t *testing.T) {
	status, body := runFail(t, apierr.New(http.StatusNotFound, "lesson_not_found", errors.New("lesson not found")))
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if body["success"] != false || body["message"] != "lesson not found" {
		t.Fatalf("body = %v", body)
	}
}

func TestFailMapsMissingAPIKey(t *testing.T) {
	status, body := runFail(t, gemini.ErrNoAPIKey)
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if body["message"] != "content generation is not configured" {
		t.Fatalf("body = %v", body)
	}
}

func TestFailMapsUpstreamError(t *testing.T) {
	status, body := runFail(t, &gemini.UpstreamError{Err: errors.New("quota exhausted")})
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	// The upstream cause stays in logs, never in the response body.
	if body["message"] != "content generation is temporarily unavailable" {
		t.Fatalf("body = %v", body)
	}
}

func TestFailHidesUnknownErrors(t *testing.T) {
	status, body := runFail(t, errors.New("pq: connection refused"))
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if body["message"] != "internal server error" {
		t.Fatalf("body = %v", body)
	}
}

func TestOkSpreadsPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	ok(c, http.StatusOK, gin.H{"response": "bonjour"})

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["success"] != true || body["response"] != "bonjour" {
		t.Fatalf("body = %v", body)
	}
}
