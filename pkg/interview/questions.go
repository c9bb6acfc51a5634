package interview

import (
	"github.com/pixie-sh/errors-go"
)

// QuestionType selects how an executor renders a question.
type QuestionType string

const (
	// QuestionInput is a free-text line of input.
	QuestionInput QuestionType = "input"
	// QuestionPassword is free text with hidden echo.
	QuestionPassword QuestionType = "password"
	// QuestionConfirm is a yes/no question answering a bool.
	QuestionConfirm QuestionType = "confirm"
	// QuestionSelect picks one value from Options.
	QuestionSelect QuestionType = "select"
)

// Option is one selectable choice of a QuestionSelect question.
type Option struct {
	Label string
	Value string
}

// Question is one prompt descriptor. Executors interpret it; the engine only
// moves answers around keyed by Name.
type Question struct {
	Name    string
	Type    QuestionType
	Message string
	Default any
	Options []Option

	// Validate rejects a raw text answer before it is accepted. Only
	// meaningful for input and password questions.
	Validate func(string) error
}

// Builder produces a question list on demand. Builders typically hold a
// reference to the interview's shared data so later groups can shape their
// questions from earlier answers.
type Builder interface {
	Build() ([]Question, error)
}

// QuestionSource yields an ordered question list when resolved. Resolution
// happens at read time, every time: sources backed by a function or builder
// may return different questions as external state changes, so callers that
// need a stable snapshot must capture the resolved slice themselves.
type QuestionSource interface {
	Resolve() ([]Question, error)
}

type staticSource struct {
	questions []Question
}

func (s staticSource) Resolve() ([]Question, error) {
	return s.questions, nil
}

// Static wraps a fixed question list.
func Static(qs ...Question) QuestionSource {
	return staticSource{questions: qs}
}

type computedSource struct {
	build func() ([]Question, error)
}

func (s computedSource) Resolve() ([]Question, error) {
	return s.build()
}

// Computed wraps a builder function invoked on every resolution. Arguments
// the function needs are its closure captures. Errors propagate to the
// caller unwrapped.
func Computed(build func() ([]Question, error)) QuestionSource {
	return computedSource{build: build}
}

type builderSource struct {
	builder Builder
}

func (s builderSource) Resolve() ([]Question, error) {
	return s.builder.Build()
}

// FromBuilder wraps a Builder, calling Build on every resolution.
func FromBuilder(b Builder) QuestionSource {
	return builderSource{builder: b}
}

// validateSource checks a source at construction time so misconfiguration
// fails before any prompting begins.
func validateSource(src QuestionSource, what string) error {
	if src == nil {
		return errors.New("%s question source is required", what)
	}
	if bs, ok := src.(builderSource); ok && bs.builder == nil {
		return errors.New("%s question source wraps a nil builder", what)
	}
	if cs, ok := src.(computedSource); ok && cs.build == nil {
		return errors.New("%s question source wraps a nil builder function", what)
	}
	return nil
}

// applyDefaults fills in Question.Default from the defaults layer for
// questions that don't carry their own default. The input slice is not
// mutated.
func applyDefaults(qs []Question, defaults Answers) []Question {
	if len(defaults) == 0 {
		return qs
	}
	out := make([]Question, len(qs))
	copy(out, qs)
	for i := range out {
		if out[i].Default != nil {
			continue
		}
		if v, ok := defaults[out[i].Name]; ok {
			out[i].Default = v
		}
	}
	return out
}
