package types

import "encoding/json"

// Pure JSON contracts for generated content. Not DB models. The validator
// in internal/generation guarantees every field here is populated (with a
// zero-value default at minimum) before anything is persisted or returned.

// ContentSource marks whether a payload came from the model or from the
// deterministic fallback.
type ContentSource string

const (
	SourceModel    ContentSource = "model"
	SourceFallback ContentSource = "fallback"
)

type VocabularyItem struct {
	Word          string `json:"word"`
	Translation   string `json:"translation"`
	Pronunciation string `json:"pronunciation,omitempty"`
	Example       string `json:"example,omitempty"`
}

type Exercise struct {
	Instruction string `json:"instruction"`
	Answer      string `json:"answer,omitempty"`
}

type LessonContent struct {
	Title         string           `json:"title"`
	Vocabulary    []VocabularyItem `json:"vocabulary"`
	Grammar       string           `json:"grammar"`
	Examples      []string         `json:"examples"`
	Exercises     []Exercise       `json:"exercises"`
	CulturalNotes string           `json:"culturalNotes"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"` // always exactly 4 after validation
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

type ConversationContent struct {
	Scenario   string           `json:"scenario"`
	Vocabulary []VocabularyItem `json:"vocabulary"`
	// Script lines are kept loose on purpose: the model varies the line
	// shape (speaker/text vs. role/line) and the client renders whatever
	// keys are present.
	Script []json.RawMessage `json:"script"`
}

type PhonemeFeedback struct {
	Sound    string  `json:"sound"`
	Accuracy float64 `json:"accuracy"`
	Hint     string  `json:"hint,omitempty"`
}

type PronunciationContent struct {
	Accuracy    float64           `json:"accuracy"` // always in [0.0, 1.0]
	Feedback    string            `json:"feedback"`
	Suggestions []string          `json:"suggestions"`
	Phonemes    []PhonemeFeedback `json:"phonemes"`
}
