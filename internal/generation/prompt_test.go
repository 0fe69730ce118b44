package generation

import (
	"strings"
	"testing"
)

func TestBuildPrompt_Lesson(t *testing.T) {
	p := BuildPrompt(LessonRequest{LanguageName: "Spanish", Level: "beginner", Topic: "Ordering food"})

	for _, want := range []string{"Spanish", "beginner", "Ordering food", "5-10 vocabulary", "3-6 example", "3-6 exercises"} {
		if !strings.Contains(p.User, want) {
			t.Fatalf("lesson prompt missing %q:\n%s", want, p.User)
		}
	}
	if !p.Options.StrictJSON {
		t.Fatalf("lesson prompt must request strict JSON output")
	}
	if !strings.Contains(p.User, "ONLY the JSON") {
		t.Fatalf("strict kinds must carry the JSON-only instruction")
	}
}

func TestBuildPrompt_QuizEmbedsLessonContext(t *testing.T) {
	req := QuizRequest{
		LanguageName: "French",
		LessonTitle:  "Greetings",
		Count:        7,
	}
	req.LessonContent.Grammar = "Use bonjour before noon."

	p := BuildPrompt(req)
	for _, want := range []string{"7-question", "Greetings", "bonjour", "exactly 4 strings", "0-3"} {
		if !strings.Contains(p.User, want) {
			t.Fatalf("quiz prompt missing %q:\n%s", want, p.User)
		}
	}
}

func TestBuildPrompt_QuizDefaultCount(t *testing.T) {
	p := BuildPrompt(QuizRequest{LanguageName: "French"})
	if !strings.Contains(p.User, "5-question") {
		t.Fatalf("quiz prompt should default to 5 questions:\n%s", p.User)
	}
}

func TestBuildPrompt_TurnIsPlainText(t *testing.T) {
	p := BuildPrompt(TurnRequest{LanguageName: "German", Message: "Wie geht's?"})
	if p.Options.StrictJSON {
		t.Fatalf("conversation turns are free text, not JSON")
	}
	if !strings.Contains(p.User, "Wie geht's?") {
		t.Fatalf("turn prompt must embed the learner message:\n%s", p.User)
	}
}

func TestBuildPrompt_PronunciationRules(t *testing.T) {
	p := BuildPrompt(PronunciationRequest{LanguageName: "Spanish", TargetText: "Hola amigo", Level: "beginner"})
	for _, want := range []string{"Hola amigo", "2-4 suggestions", "2-5 phoneme"} {
		if !strings.Contains(p.User, want) {
			t.Fatalf("pronunciation prompt missing %q:\n%s", want, p.User)
		}
	}
	if !p.Options.StrictJSON {
		t.Fatalf("pronunciation prompt must request strict JSON output")
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	req := ConversationRequest{LanguageName: "Italian", Level: "intermediate", Scenario: "At the station"}
	a := BuildPrompt(req)
	b := BuildPrompt(req)
	if a != b {
		t.Fatalf("prompt building must be deterministic")
	}
}
