package generation

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/yungbote/linguabridge-backend/internal/platform/gemini"
	"github.com/yungbote/linguabridge-backend/internal/platform/logger"
	"github.com/yungbote/linguabridge-backend/internal/types"
)

// Generator runs the content pipeline for each kind: build the prompt,
// invoke the model, extract a JSON document from whatever came back, then
// repair it into typed content. Invocation errors (missing credential,
// upstream failure) propagate to the caller untouched; extraction failures
// are absorbed by substituting deterministic fallback content.
//
// The generator holds no per-request state and performs no retries.
type Generator struct {
	client gemini.Client
	log    *logger.Logger
}

func NewGenerator(client gemini.Client, log *logger.Logger) *Generator {
	return &Generator{
		client: client,
		log:    log.With("component", "Generator"),
	}
}

func (g *Generator) Lesson(ctx context.Context, req LessonRequest) (types.LessonContent, types.ContentSource, error) {
	doc, source, err := g.generateDocument(ctx, req)
	if err != nil {
		return types.LessonContent{}, "", err
	}
	if source == types.SourceFallback {
		return FallbackLesson(req.LanguageName, req.Level, req.Topic), source, nil
	}
	return ValidateLesson(doc), source, nil
}

func (g *Generator) Quiz(ctx context.Context, req QuizRequest) ([]types.QuizQuestion, types.ContentSource, error) {
	doc, source, err := g.generateDocument(ctx, req)
	if err != nil {
		return nil, "", err
	}
	if source == types.SourceFallback {
		return FallbackQuiz(), source, nil
	}
	return ValidateQuiz(doc), source, nil
}

func (g *Generator) Conversation(ctx context.Context, req ConversationRequest) (types.ConversationContent, types.ContentSource, error) {
	doc, source, err := g.generateDocument(ctx, req)
	if err != nil {
		return types.ConversationContent{}, "", err
	}
	if source == types.SourceFallback {
		return FallbackConversation(req.Scenario), source, nil
	}
	return ValidateConversation(doc), source, nil
}

// Turn is the one free-text kind: no JSON extraction, no validation beyond
// trimming. An empty reply falls back to a canned one.
func (g *Generator) Turn(ctx context.Context, req TurnRequest) (string, types.ContentSource, error) {
	prompt := BuildPrompt(req)
	raw, err := g.client.GenerateText(ctx, prompt.System, prompt.User, prompt.Options)
	if err != nil {
		return "", "", err
	}
	reply := strings.TrimSpace(raw)
	if reply == "" {
		return FallbackTurn(), types.SourceFallback, nil
	}
	return reply, types.SourceModel, nil
}

func (g *Generator) Pronunciation(ctx context.Context, req PronunciationRequest) (types.PronunciationContent, types.ContentSource, error) {
	doc, source, err := g.generateDocument(ctx, req)
	if err != nil {
		return types.PronunciationContent{}, "", err
	}
	if source == types.SourceFallback {
		return FallbackPronunciation(req.TargetText), source, nil
	}
	return ValidatePronunciation(doc), source, nil
}

// generateDocument runs the shared prompt → invoke → extract steps. It
// returns SourceFallback with a nil document when extraction is exhausted;
// the per-kind wrappers substitute their fallback content in that case.
func (g *Generator) generateDocument(ctx context.Context, req Request) (json.RawMessage, types.ContentSource, error) {
	prompt := BuildPrompt(req)

	raw, err := g.client.GenerateText(ctx, prompt.System, prompt.User, prompt.Options)
	if err != nil {
		return nil, "", err
	}

	doc, err := Extract(raw)
	if err != nil {
		if !errors.Is(err, ErrExtraction) {
			return nil, "", err
		}
		g.log.Warn("Extraction exhausted, substituting fallback content",
			"kind", req.Kind(), "model", g.client.ModelID(), "raw_len", len(raw))
		return nil, types.SourceFallback, nil
	}
	return doc, types.SourceModel, nil
}
