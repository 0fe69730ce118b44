package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/linguabridge-backend/internal/platform/gemini"
	"github.com/yungbote/linguabridge-backend/internal/platform/logger"
	"github.com/yungbote/linguabridge-backend/internal/types"
)

func newTestGenerator(responses ...gemini.MockResponse) (*Generator, *gemini.MockClient) {
	mock := gemini.NewMockClient(responses...)
	return NewGenerator(mock, logger.NewNop()), mock
}

func TestGenerator_LessonFromFencedOutput(t *testing.T) {
	g, mock := newTestGenerator(gemini.MockResponse{Text: "```json\n{\"grammar\":\"ok\"}\n```"})

	content, source, err := g.Lesson(context.Background(), LessonRequest{LanguageName: "Spanish", Level: "beginner"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != types.SourceModel {
		t.Fatalf("source: got %q, want %q", source, types.SourceModel)
	}
	if content.Grammar != "ok" {
		t.Fatalf("grammar: got %q", content.Grammar)
	}
	if content.Vocabulary == nil || content.Examples == nil || content.Exercises == nil {
		t.Fatalf("validator must fill sequence defaults: %#v", content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected exactly one model call, got %d", mock.CallCount())
	}
}

func TestGenerator_UpstreamErrorPropagates(t *testing.T) {
	upstream := &gemini.UpstreamError{Err: errors.New("network timeout")}
	g, _ := newTestGenerator(gemini.MockResponse{Err: upstream})

	_, _, err := g.Lesson(context.Background(), LessonRequest{LanguageName: "Spanish", Level: "beginner"})
	var ue *gemini.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError to surface, got %v", err)
	}
}

func TestGenerator_MissingCredentialPropagates(t *testing.T) {
	g, _ := newTestGenerator(gemini.MockResponse{Err: gemini.ErrNoAPIKey})

	_, _, err := g.Quiz(context.Background(), QuizRequest{LanguageName: "Spanish"})
	if !errors.Is(err, gemini.ErrNoAPIKey) {
		t.Fatalf("expected ErrNoAPIKey to surface, got %v", err)
	}
}

func TestGenerator_ExtractionFailureSubstitutesFallback(t *testing.T) {
	g, _ := newTestGenerator(gemini.MockResponse{Text: "I'm sorry, something went wrong."})

	content, source, err := g.Pronunciation(context.Background(), PronunciationRequest{
		LanguageName: "Spanish",
		TargetText:   "Hola amigo",
		Level:        "beginner",
	})
	if err != nil {
		t.Fatalf("extraction failure must not surface as an error, got %v", err)
	}
	if source != types.SourceFallback {
		t.Fatalf("source: got %q, want %q", source, types.SourceFallback)
	}
	if content.Accuracy != DefaultAccuracy {
		t.Fatalf("fallback accuracy: got %v", content.Accuracy)
	}
	if len(content.Phonemes) != 1 || content.Phonemes[0].Sound != "Hola" {
		t.Fatalf("fallback phoneme should come from the target text, got %#v", content.Phonemes)
	}
}

func TestGenerator_QuizFallbackIsEmptySet(t *testing.T) {
	g, _ := newTestGenerator(gemini.MockResponse{Text: "no json here"})

	questions, source, err := g.Quiz(context.Background(), QuizRequest{LanguageName: "Spanish"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != types.SourceFallback {
		t.Fatalf("source: got %q", source)
	}
	if questions == nil || len(questions) != 0 {
		t.Fatalf("quiz fallback should be an empty set, got %#v", questions)
	}
}

func TestGenerator_TurnPlainText(t *testing.T) {
	g, mock := newTestGenerator(gemini.MockResponse{Text: "  Sehr gut, danke!  "})

	reply, source, err := g.Turn(context.Background(), TurnRequest{LanguageName: "German", Message: "Wie geht's?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != types.SourceModel {
		t.Fatalf("source: got %q", source)
	}
	if reply != "Sehr gut, danke!" {
		t.Fatalf("reply should be trimmed model text, got %q", reply)
	}
	if mock.Calls[0].Opts.StrictJSON {
		t.Fatalf("turn requests must not ask for strict JSON")
	}
}
