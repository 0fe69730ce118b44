package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yungbote/linguabridge-backend/internal/types"
)

// Deterministic placeholder content, produced without any model call. Every
// fallback satisfies the same shape contract as model-derived content, so
// nothing downstream branches on the source.

func FallbackLesson(languageName, level, topic string) types.LessonContent {
	title := fmt.Sprintf("%s lesson (%s)", languageName, level)
	if topic != "" {
		title = fmt.Sprintf("%s: %s", languageName, topic)
	}
	return types.LessonContent{
		Title:         title,
		Vocabulary:    []types.VocabularyItem{},
		Grammar:       "Lesson generation failed. Please try again in a moment.",
		Examples:      []string{},
		Exercises:     []types.Exercise{},
		CulturalNotes: "",
	}
}

// FallbackQuiz is an empty question set. Callers surface it as an empty
// quiz rather than an error.
func FallbackQuiz() []types.QuizQuestion {
	return []types.QuizQuestion{}
}

func FallbackConversation(scenario string) types.ConversationContent {
	if scenario == "" {
		scenario = "Everyday conversation practice"
	}
	return types.ConversationContent{
		Scenario:   scenario,
		Vocabulary: []types.VocabularyItem{},
		Script:     []json.RawMessage{},
	}
}

func FallbackTurn() string {
	return "Sorry, I did not catch that. Could you say it again?"
}

func FallbackPronunciation(targetText string) types.PronunciationContent {
	sound := ""
	if words := strings.Fields(targetText); len(words) > 0 {
		sound = words[0]
	}
	out := types.PronunciationContent{
		Accuracy: DefaultAccuracy,
		Feedback: genericPronunciation,
		Suggestions: []string{
			"Listen to native speakers and repeat after them.",
			"Slow down and pronounce each syllable clearly.",
			"Record yourself and compare with a reference recording.",
		},
		Phonemes: []types.PhonemeFeedback{},
	}
	if sound != "" {
		out.Phonemes = append(out.Phonemes, types.PhonemeFeedback{
			Sound:    sound,
			Accuracy: DefaultAccuracy,
			Hint:     "Focus on this word first.",
		})
	}
	return out
}
