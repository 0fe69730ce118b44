package generation

import (
	"encoding/json"
	"math"

	"github.com/yungbote/linguabridge-backend/internal/types"
)

// The validators repair instead of rejecting: whatever shape the extracted
// document has, the result satisfies its kind's contract. Running a
// validator over its own output is a no-op.

const (
	DefaultAccuracy      = 0.7
	QuizOptionCount      = 4
	genericPronunciation = "Good effort! Keep practicing and your pronunciation will keep improving."
)

// ValidateLesson normalizes an extracted lesson document.
func ValidateLesson(doc json.RawMessage) types.LessonContent {
	obj := asObject(doc)

	out := types.LessonContent{
		Title:         asString(obj["title"], ""),
		Grammar:       asString(obj["grammar"], ""),
		CulturalNotes: asString(obj["culturalNotes"], ""),
		Vocabulary:    asVocabulary(obj["vocabulary"]),
		Examples:      asStringSlice(obj["examples"]),
		Exercises:     asExercises(obj["exercises"]),
	}
	return out
}

// ValidateQuiz normalizes an extracted quiz document. Questions that do not
// carry exactly four string options and an integer correctAnswer in [0,3]
// are dropped; a document that is not a question sequence yields an empty
// (but valid) quiz.
func ValidateQuiz(doc json.RawMessage) []types.QuizQuestion {
	items := asArray(doc)
	if items == nil {
		// Some models wrap the array in {"questions": [...]}. Unwrap once.
		obj := asObject(doc)
		if inner, ok := obj["questions"].([]any); ok {
			items = inner
		}
	}

	out := make([]types.QuizQuestion, 0, len(items))
	for _, item := range items {
		q, ok := item.(map[string]any)
		if !ok {
			continue
		}
		question := asString(q["question"], "")
		if question == "" {
			continue
		}
		options := asStringSlice(q["options"])
		if len(options) != QuizOptionCount {
			continue
		}
		correct, ok := asIndex(q["correctAnswer"])
		if !ok || correct < 0 || correct > QuizOptionCount-1 {
			continue
		}
		out = append(out, types.QuizQuestion{
			Question:      question,
			Options:       options,
			CorrectAnswer: correct,
			Explanation:   asString(q["explanation"], ""),
		})
	}
	return out
}

// ValidateConversation normalizes an extracted conversation document. The
// script is kept loose: any sequence passes through untouched.
func ValidateConversation(doc json.RawMessage) types.ConversationContent {
	obj := asObject(doc)

	out := types.ConversationContent{
		Scenario:   asString(obj["scenario"], ""),
		Vocabulary: asVocabulary(obj["vocabulary"]),
		Script:     asRawSlice(obj["script"]),
	}
	return out
}

// ValidatePronunciation normalizes an extracted pronunciation document.
// Accuracy is clamped into [0.0, 1.0]; a missing or non-numeric accuracy
// becomes DefaultAccuracy.
func ValidatePronunciation(doc json.RawMessage) types.PronunciationContent {
	obj := asObject(doc)

	out := types.PronunciationContent{
		Accuracy:    asAccuracy(obj["accuracy"]),
		Feedback:    asString(obj["feedback"], genericPronunciation),
		Suggestions: asStringSlice(obj["suggestions"]),
		Phonemes:    asPhonemes(obj["phonemes"]),
	}
	return out
}

// ---- coercion helpers ----

func asObject(doc json.RawMessage) map[string]any {
	var obj map[string]any
	if err := json.Unmarshal(doc, &obj); err != nil || obj == nil {
		return map[string]any{}
	}
	return obj
}

func asArray(doc json.RawMessage) []any {
	var arr []any
	if err := json.Unmarshal(doc, &arr); err != nil {
		return nil
	}
	return arr
}

func asString(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func asStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func asRawSlice(v any) []json.RawMessage {
	items, ok := v.([]any)
	if !ok {
		return []json.RawMessage{}
	}
	out := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			continue
		}
		out = append(out, raw)
	}
	return out
}

// asIndex accepts only whole numbers. JSON numbers decode as float64, so
// 2.0 passes but 2.5 does not.
func asIndex(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func asAccuracy(v any) float64 {
	f, ok := v.(float64)
	if !ok {
		return DefaultAccuracy
	}
	if math.IsNaN(f) {
		return DefaultAccuracy
	}
	return math.Min(1.0, math.Max(0.0, f))
}

func asVocabulary(v any) []types.VocabularyItem {
	items, ok := v.([]any)
	if !ok {
		return []types.VocabularyItem{}
	}
	out := make([]types.VocabularyItem, 0, len(items))
	for _, item := range items {
		switch e := item.(type) {
		case map[string]any:
			word := asString(e["word"], "")
			if word == "" {
				continue
			}
			out = append(out, types.VocabularyItem{
				Word:          word,
				Translation:   asString(e["translation"], ""),
				Pronunciation: asString(e["pronunciation"], ""),
				Example:       asString(e["example"], ""),
			})
		case string:
			if e != "" {
				out = append(out, types.VocabularyItem{Word: e})
			}
		}
	}
	return out
}

func asExercises(v any) []types.Exercise {
	items, ok := v.([]any)
	if !ok {
		return []types.Exercise{}
	}
	out := make([]types.Exercise, 0, len(items))
	for _, item := range items {
		switch e := item.(type) {
		case map[string]any:
			instruction := asString(e["instruction"], "")
			if instruction == "" {
				continue
			}
			out = append(out, types.Exercise{
				Instruction: instruction,
				Answer:      asString(e["answer"], ""),
			})
		case string:
			if e != "" {
				out = append(out, types.Exercise{Instruction: e})
			}
		}
	}
	return out
}

func asPhonemes(v any) []types.PhonemeFeedback {
	items, ok := v.([]any)
	if !ok {
		return []types.PhonemeFeedback{}
	}
	out := make([]types.PhonemeFeedback, 0, len(items))
	for _, item := range items {
		e, ok := item.(map[string]any)
		if !ok {
			continue
		}
		sound := asString(e["sound"], "")
		if sound == "" {
			continue
		}
		out = append(out, types.PhonemeFeedback{
			Sound:    sound,
			Accuracy: asAccuracy(e["accuracy"]),
			Hint:     asString(e["hint"], ""),
		})
	}
	return out
}
