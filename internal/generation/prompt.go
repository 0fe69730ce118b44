package generation

import (
	"fmt"
	"strings"

	"github.com/yungbote/linguabridge-backend/internal/platform/gemini"
)

// Prompt is the fully built model input for one request. Building it is
// pure and deterministic: no I/O, no clock, no randomness.
type Prompt struct {
	System  string
	User    string
	Options gemini.GenerateOptions
}

const jsonOnlyInstruction = "Respond with ONLY the JSON described above. No markdown fences, no commentary, no text before or after it."

const lessonSystemPrompt = `You are an experienced language teacher creating structured study material. You always follow the requested output format exactly.`

const conversationSystemPrompt = `You are a language teacher writing realistic practice dialogues for learners. You always follow the requested output format exactly.`

const turnSystemPrompt = `You are a friendly native speaker having a casual conversation with a language learner. Keep replies short (1-3 sentences), stay in the target language, and gently model correct usage instead of correcting explicitly.`

const pronunciationSystemPrompt = `You are a pronunciation coach. You assess how difficult a phrase is for a learner at the given level and produce actionable feedback. You always follow the requested output format exactly.`

// BuildPrompt renders the fixed template for the request's kind.
func BuildPrompt(req Request) Prompt {
	switch r := req.(type) {
	case LessonRequest:
		return buildLessonPrompt(r)
	case QuizRequest:
		return buildQuizPrompt(r)
	case ConversationRequest:
		return buildConversationPrompt(r)
	case TurnRequest:
		return buildTurnPrompt(r)
	case PronunciationRequest:
		return buildPronunciationPrompt(r)
	default:
		// The Request set is sealed; this is unreachable for real callers.
		return Prompt{}
	}
}

func buildLessonPrompt(r LessonRequest) Prompt {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Create a %s-level lesson for a learner of %s.\n", r.Level, r.LanguageName))
	if r.Topic != "" {
		b.WriteString(fmt.Sprintf("Topic: %s\n", r.Topic))
	} else {
		b.WriteString("Pick an everyday topic appropriate for the level.\n")
	}

	b.WriteString(`
Output a single JSON object with exactly these keys:
  "title": string, a short lesson title
  "vocabulary": array of objects {"word", "translation", "pronunciation", "example"}
  "grammar": string, one grammar point explained in 3-5 sentences
  "examples": array of strings, full sentences using the vocabulary
  "exercises": array of objects {"instruction", "answer"}
  "culturalNotes": string, a brief cultural note

Rules:
1. Include 5-10 vocabulary items.
2. Include 3-6 example sentences.
3. Include 3-6 exercises.
4. Translations are into English.
5. `)
	b.WriteString(jsonOnlyInstruction)

	return Prompt{
		System: lessonSystemPrompt,
		User:   b.String(),
		Options: gemini.GenerateOptions{
			MaxOutputTokens: 2048,
			Temperature:     0.7,
			StrictJSON:      true,
		},
	}
}

func buildQuizPrompt(r QuizRequest) Prompt {
	count := r.Count
	if count <= 0 {
		count = DefaultQuizQuestionCount
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Create a %d-question multiple-choice quiz in English about this %s lesson.\n\n", count, r.LanguageName))
	if r.LessonTitle != "" {
		b.WriteString(fmt.Sprintf("Lesson title: %s\n", r.LessonTitle))
	}
	if len(r.LessonContent.Vocabulary) > 0 {
		b.WriteString("Vocabulary covered:\n")
		for _, v := range r.LessonContent.Vocabulary {
			b.WriteString(fmt.Sprintf("- %s = %s\n", v.Word, v.Translation))
		}
	}
	if r.LessonContent.Grammar != "" {
		b.WriteString(fmt.Sprintf("Grammar point: %s\n", r.LessonContent.Grammar))
	}

	b.WriteString(fmt.Sprintf(`
Output a single JSON array of exactly %d objects, each with:
  "question": string
  "options": array of exactly 4 strings
  "correctAnswer": integer 0-3, the index of the correct option
  "explanation": string, why the answer is correct

Rules:
1. Every question must be answerable from the lesson material above.
2. Exactly one option is correct per question.
3. `, count))
	b.WriteString(jsonOnlyInstruction)

	return Prompt{
		System: lessonSystemPrompt,
		User:   b.String(),
		Options: gemini.GenerateOptions{
			MaxOutputTokens: 1536,
			Temperature:     0.5,
			StrictJSON:      true,
		},
	}
}

func buildConversationPrompt(r ConversationRequest) Prompt {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Write a practice conversation in %s for a %s learner.\n", r.LanguageName, r.Level))
	if r.Scenario != "" {
		b.WriteString(fmt.Sprintf("Scenario: %s\n", r.Scenario))
	} else {
		b.WriteString("Pick a common everyday scenario (ordering food, asking directions, shopping).\n")
	}

	b.WriteString(`
Output a single JSON object with exactly these keys:
  "scenario": string, one line describing the situation
  "vocabulary": array of objects {"word", "translation", "pronunciation", "example"}
  "script": array of objects {"speaker", "text", "translation"}

Rules:
1. Include 5-10 vocabulary items that appear in the dialogue.
2. The script has 6-12 lines alternating between two speakers.
3. Keep the language level-appropriate.
4. `)
	b.WriteString(jsonOnlyInstruction)

	return Prompt{
		System: conversationSystemPrompt,
		User:   b.String(),
		Options: gemini.GenerateOptions{
			MaxOutputTokens: 1536,
			Temperature:     0.8,
			StrictJSON:      true,
		},
	}
}

func buildTurnPrompt(r TurnRequest) Prompt {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("The learner is practicing %s and says:\n\n%s\n\nReply as their conversation partner.", r.LanguageName, r.Message))

	return Prompt{
		System: turnSystemPrompt,
		User:   b.String(),
		Options: gemini.GenerateOptions{
			MaxOutputTokens: 512,
			Temperature:     0.9,
			StrictJSON:      false,
		},
	}
}

func buildPronunciationPrompt(r PronunciationRequest) Prompt {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("A %s learner of %s is practicing saying:\n\n%q\n\n", r.Level, r.LanguageName, r.TargetText))
	b.WriteString(`Assess the pronunciation challenges in this phrase for that learner and produce feedback.

Output a single JSON object with exactly these keys:
  "accuracy": number between 0.0 and 1.0, the expected accuracy for this level
  "feedback": string, 2-3 encouraging sentences
  "suggestions": array of strings, concrete practice tips
  "phonemes": array of objects {"sound", "accuracy", "hint"} for the tricky sounds

Rules:
1. Include 2-4 suggestions.
2. Include 2-5 phoneme entries.
3. `)
	b.WriteString(jsonOnlyInstruction)

	return Prompt{
		System: pronunciationSystemPrompt,
		User:   b.String(),
		Options: gemini.GenerateOptions{
			MaxOutputTokens: 1024,
			Temperature:     0.4,
			StrictJSON:      true,
		},
	}
}
