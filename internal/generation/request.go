package generation

import "github.com/yungbote/linguabridge-backend/internal/types"

// Kind discriminates the content pipelines. Each kind has its own prompt
// template, output schema, and repair rules.
type Kind string

const (
	KindLesson        Kind = "lesson"
	KindQuiz          Kind = "quiz"
	KindConversation  Kind = "conversation"
	KindTurn          Kind = "conversation_turn"
	KindPronunciation Kind = "pronunciation"
)

// Request is the sealed set of content requests. Exactly one concrete
// variant exists per pipeline run; requests are never persisted.
type Request interface {
	Kind() Kind
}

type LessonRequest struct {
	LanguageName string
	Level        string
	Topic        string
}

func (LessonRequest) Kind() Kind { return KindLesson }

// QuizRequest carries the parent lesson's validated content as prompt
// context, so cascade generation can quiz what the lesson actually taught.
type QuizRequest struct {
	LanguageName  string
	LessonTitle   string
	LessonContent types.LessonContent
	Count         int
}

func (QuizRequest) Kind() Kind { return KindQuiz }

type ConversationRequest struct {
	LanguageName string
	Level        string
	Scenario     string
}

func (ConversationRequest) Kind() Kind { return KindConversation }

type TurnRequest struct {
	LanguageName string
	Message      string
}

func (TurnRequest) Kind() Kind { return KindTurn }

type PronunciationRequest struct {
	LanguageName string
	TargetText   string
	Level        string
}

func (PronunciationRequest) Kind() Kind { return KindPronunciation }

// DefaultQuizQuestionCount is used when the caller does not supply one.
const DefaultQuizQuestionCount = 5
