package interview

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/pixie-sh/errors-go"
)

// HuhExecutor renders question lists as charmbracelet/huh forms. It is the
// production executor for interactive terminal sessions.
type HuhExecutor struct {
	// Accessible switches huh into accessible mode (no live redraw),
	// which also suits screen readers and dumb terminals.
	Accessible bool
}

// NewHuhExecutor returns a terminal executor with default settings.
func NewHuhExecutor() *HuhExecutor {
	return &HuhExecutor{}
}

// Execute builds a single huh form for the question list, runs it, and
// collects the bound values into an answer map.
func (e *HuhExecutor) Execute(ctx context.Context, questions []Question) (Answers, error) {
	if len(questions) == 0 {
		return Answers{}, nil
	}

	fields := make([]huh.Field, 0, len(questions))
	texts := make(map[string]*string)
	bools := make(map[string]*bool)

	for _, q := range questions {
		switch q.Type {
		case QuestionConfirm:
			value := new(bool)
			if d, ok := q.Default.(bool); ok {
				*value = d
			}
			bools[q.Name] = value
			fields = append(fields, huh.NewConfirm().
				Title(q.Message).
				Value(value))

		case QuestionSelect:
			value := new(string)
			if d, ok := q.Default.(string); ok {
				*value = d
			}
			texts[q.Name] = value
			options := make([]huh.Option[string], 0, len(q.Options))
			for _, opt := range q.Options {
				label := opt.Label
				if label == "" {
					label = opt.Value
				}
				options = append(options, huh.NewOption(label, opt.Value))
			}
			fields = append(fields, huh.NewSelect[string]().
				Title(q.Message).
				Options(options...).
				Value(value))

		case QuestionInput, QuestionPassword, "":
			value := new(string)
			if q.Default != nil {
				*value = fmt.Sprint(q.Default)
			}
			texts[q.Name] = value
			input := huh.NewInput().
				Title(q.Message).
				Value(value)
			if q.Type == QuestionPassword {
				input = input.EchoMode(huh.EchoModePassword)
			}
			if q.Validate != nil {
				input = input.Validate(q.Validate)
			}
			fields = append(fields, input)

		default:
			return nil, errors.New("unsupported question type: %s", q.Type)
		}
	}

	form := huh.NewForm(huh.NewGroup(fields...)).WithAccessible(e.Accessible)
	if err := form.RunWithContext(ctx); err != nil {
		return nil, err
	}

	answers := make(Answers, len(questions))
	for name, v := range texts {
		answers[name] = *v
	}
	for name, v := range bools {
		answers[name] = *v
	}
	return answers, nil
}
