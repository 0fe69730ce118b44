package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/linguabridge-backend/internal/generation"
	"github.com/yungbote/linguabridge-backend/internal/services"
)

// AIHandler fronts the generation endpoints. Each handler binds the
// request, delegates to the owning service, and wraps the result.
type AIHandler struct {
	lessonService        services.LessonService
	quizService          services.QuizService
	conversationService  services.ConversationService
	pronunciationService services.PronunciationService
}

func NewAIHandler(
	lessonService services.LessonService,
	quizService services.QuizService,
	conversationService services.ConversationService,
	pronunciationService services.PronunciationService,
) *AIHandler {
	return &AIHandler{
		lessonService:        lessonService,
		quizService:          quizService,
		conversationService:  conversationService,
		pronunciationService: pronunciationService,
	}
}

func (h *AIHandler) GenerateLesson(c *gin.Context) {
	var req struct {
		LanguageID string `json:"languageId"`
		Level      string `json:"level"`
		Topic      string `json:"topic"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	languageID, err := uuid.Parse(req.LanguageID)
	if err != nil {
		badRequest(c, "languageId must be a valid UUID")
		return
	}
	result, err := h.lessonService.Generate(c.Request.Context(), languageID, req.Level, req.Topic)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"lesson": result.Lesson, "progress": result.Progress})
}

func (h *AIHandler) GenerateQuiz(c *gin.Context) {
	var req struct {
		LessonID          string `json:"lessonId"`
		NumberOfQuestions int    `json:"numberOfQuestions"`
		// count is accepted as an alias for numberOfQuestions.
		Count int `json:"count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	lessonID, err := uuid.Parse(req.LessonID)
	if err != nil {
		badRequest(c, "lessonId must be a valid UUID")
		return
	}
	count := req.NumberOfQuestions
	if count <= 0 {
		count = req.Count
	}
	if count <= 0 {
		count = generation.DefaultQuizQuestionCount
	}
	quiz, err := h.quizService.GetOrGenerate(c.Request.Context(), lessonID, count)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"quiz": quiz})
}

func (h *AIHandler) ConversationPrompt(c *gin.Context) {
	var req struct {
		LanguageID string `json:"languageId"`
		Level      string `json:"level"`
		Scenario   string `json:"scenario"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	languageID, err := uuid.Parse(req.LanguageID)
	if err != nil {
		badRequest(c, "languageId must be a valid UUID")
		return
	}
	conversation, err := h.conversationService.GeneratePrompt(c.Request.Context(), languageID, req.Level, req.Scenario)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"conversation": conversation})
}

func (h *AIHandler) ConversationResponse(c *gin.Context) {
	var req struct {
		LanguageID string `json:"languageId"`
		Message    string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	languageID, err := uuid.Parse(req.LanguageID)
	if err != nil {
		badRequest(c, "languageId must be a valid UUID")
		return
	}
	exchange, err := h.conversationService.Respond(c.Request.Context(), languageID, req.Message)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"response": exchange.Reply})
}

func (h *AIHandler) PronunciationFeedback(c *gin.Context) {
	var req struct {
		LanguageID string `json:"languageId"`
		TargetText string `json:"targetText"`
		Level      string `json:"level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	languageID, err := uuid.Parse(req.LanguageID)
	if err != nil {
		badRequest(c, "languageId must be a valid UUID")
		return
	}
	attempt, err := h.pronunciationService.GenerateFeedback(c.Request.Context(), languageID, req.TargetText, req.Level)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"feedback": attempt})
}

func (h *AIHandler) GetLesson(c *gin.Context) {
	lessonID, err := uuid.Parse(c.Param("lessonId"))
	if err != nil {
		badRequest(c, "lessonId must be a valid UUID")
		return
	}
	result, err := h.lessonService.GetWithQuiz(c.Request.Context(), lessonID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"lesson": result.Lesson, "quiz": result.Quiz})
}
