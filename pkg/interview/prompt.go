package interview

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pixie-sh/errors-go"
)

// PromptOptions configures a single prompt-with-confirmation cycle.
type PromptOptions struct {
	// Executor shows questions and collects answers. Required.
	Executor Executor

	// Questions is the main question source. Required.
	Questions QuestionSource

	// Confirmation, when set, is asked after the main questions; answering
	// neither proceed nor (effective) restart accepts the answers as-is.
	Confirmation QuestionSource

	// InvertConfirmation flips the sense of the restart answer via the
	// shared XOR rule, so one "try again?" question can be reused with
	// either polarity.
	InvertConfirmation bool

	// Defaults seed question defaults and the final merged answer view.
	Defaults Answers

	// Display, when set, is invoked with the collected answers after each
	// prompt pass.
	Display DisplayFunc

	// Out receives separator lines and rendered tables. Defaults to
	// os.Stdout.
	Out io.Writer
}

// Prompt wraps one prompt-and-optional-confirm cycle: show questions,
// collect answers, optionally confirm, and loop back on a redo request.
type Prompt struct {
	executor     Executor
	questions    QuestionSource
	confirmation QuestionSource
	invert       bool
	defaults     Answers
	display      DisplayFunc
	out          io.Writer

	userAnswers         Answers
	confirmationAnswers Answers
}

// NewPrompt validates the options and builds a Prompt. Configuration errors
// surface here, before any prompting begins.
func NewPrompt(opts PromptOptions) (*Prompt, error) {
	if opts.Executor == nil {
		return nil, errors.New("prompt executor is required")
	}
	if err := validateSource(opts.Questions, "main"); err != nil {
		return nil, err
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Prompt{
		executor:     opts.Executor,
		questions:    opts.Questions,
		confirmation: opts.Confirmation,
		invert:       opts.InvertConfirmation,
		defaults:     opts.Defaults.Clone(),
		display:      opts.Display,
		out:          out,
	}, nil
}

// UserAnswers returns the answers collected by the most recent Prompt call.
func (p *Prompt) UserAnswers() Answers {
	return p.userAnswers
}

// FinalAnswers merges defaults and user answers, recomputed on every call.
func (p *Prompt) FinalAnswers() Answers {
	return mergeAnswers(p.defaults, p.userAnswers)
}

// Prompt runs the cycle: resolve questions, execute, optionally display,
// then ask whether to redo. Each redo pass fully replaces the previous
// user answers for this prompt.
func (p *Prompt) Prompt(ctx context.Context) (Answers, error) {
	for {
		questions, err := p.questions.Resolve()
		if err != nil {
			return nil, err
		}
		answers, err := p.executor.Execute(ctx, applyDefaults(questions, p.defaults))
		if err != nil {
			return nil, err
		}
		p.userAnswers = answers

		runDisplay(p.out, p.display, "", p.userAnswers)

		redo, err := p.confirmRestart(ctx)
		if err != nil {
			return nil, err
		}
		if !redo {
			return p.userAnswers, nil
		}
		// Separate repeated prompts in the transcript.
		fmt.Fprintln(p.out)
	}
}

// confirmRestart decides whether the user wants another pass. No configured
// confirmation means implicit proceed. An explicit proceed answer always
// wins; otherwise the restart answer goes through the inversion XOR rule.
func (p *Prompt) confirmRestart(ctx context.Context) (bool, error) {
	if p.confirmation == nil {
		p.confirmationAnswers = Answers{ConfirmProceed: true, ConfirmRestart: false, ConfirmAbort: false}
		return false, nil
	}

	questions, err := p.confirmation.Resolve()
	if err != nil {
		return false, err
	}
	answers, err := p.executor.Execute(ctx, questions)
	if err != nil {
		return false, err
	}
	confirmation := newConfirmationAnswers()
	for k, v := range answers {
		confirmation[k] = v
	}
	p.confirmationAnswers = confirmation

	if confirmation.Bool(ConfirmProceed) {
		return false, nil
	}
	return xorBool(p.invert, confirmation.Bool(ConfirmRestart)), nil
}
