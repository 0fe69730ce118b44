package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/linguabridge-backend/internal/repos"
)

type LanguageHandler struct {
	languageRepo repos.LanguageRepo
}

func NewLanguageHandler(languageRepo repos.LanguageRepo) *LanguageHandler {
	return &LanguageHandler{languageRepo: languageRepo}
}

func (lh *LanguageHandler) List(c *gin.Context) {
	languages, err := lh.languageRepo.List(c.Request.Context(), nil)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"languages": languages})
}
