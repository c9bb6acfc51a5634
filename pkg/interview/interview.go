package interview

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pixie-sh/errors-go"
	"go.uber.org/zap"
)

// Status records how an interview run ended. Aborted and Completed are
// mutually exclusive terminal outcomes; Reason carries the abort message.
type Status struct {
	Aborted   bool
	Completed bool
	Reason    string
}

// WhenFunc decides whether a group runs, given the user answers accumulated
// so far. Returning false skips the group without prompting.
type WhenFunc func(ctx context.Context, user Answers) (bool, error)

// WhenValue lifts a static boolean into a WhenFunc.
func WhenValue(run bool) WhenFunc {
	return func(context.Context, Answers) (bool, error) { return run, nil }
}

// AbortFunc inspects a group's answers (and the accumulated answers) after
// the group runs. A non-empty return value aborts the interview with that
// reason; empty string continues.
type AbortFunc func(group, all Answers) string

// Group is one step of an interview: a prompt plus visibility and abort
// conditions. Groups are created through CreateGroup and are immutable
// afterward except When, which callers may reassign between runs.
type Group struct {
	Title string
	When  WhenFunc
	Abort AbortFunc

	prompt *Prompt
}

// GroupOptions configures one interview group.
type GroupOptions struct {
	// Questions is the group's main question source. Required.
	Questions QuestionSource

	// Confirmation, when set, adds a per-group redo prompt (see
	// PromptOptions.Confirmation).
	Confirmation QuestionSource

	// InvertConfirmation applies to the group's redo prompt.
	InvertConfirmation bool

	// Display shows the group's answers after each prompt pass.
	Display DisplayFunc

	// When gates the group; nil means the group always runs.
	When WhenFunc

	// Abort can end the whole interview after this group runs.
	Abort AbortFunc

	// Title is printed before the group prompts, when non-empty.
	Title string
}

// Options configures an Interview.
type Options struct {
	// Executor shows questions and collects answers. Required.
	Executor Executor

	// Defaults is the immutable baseline answer layer.
	Defaults Answers

	// Confirmation, when set, is the final proceed/restart prompt asked
	// after all groups complete. Without it Start proceeds implicitly.
	Confirmation QuestionSource

	// ConfirmationHeader is printed before the final confirmation prompt.
	ConfirmationHeader string

	// InvertConfirmation flips the sense of the final proceed/restart
	// answers via the shared XOR rule.
	InvertConfirmation bool

	// Display shows the accumulated answers before the final confirmation.
	Display DisplayFunc

	// DisplayHeader is printed before the Display output.
	DisplayHeader string

	// SharedData is an explicit context bag the caller and its question
	// builders can share; the engine stores it untouched.
	SharedData map[string]any

	// Out receives titles, status messages, and rendered tables.
	// Defaults to os.Stdout.
	Out io.Writer

	// Logger receives debug-level engine events. Defaults to a nop logger.
	Logger *zap.Logger
}

// Interview sequences an ordered list of prompt groups, merging answers
// progressively and finishing with an optional proceed/restart/abort
// confirmation. Construct with New, add groups with CreateGroup, then call
// Start.
type Interview struct {
	executor           Executor
	defaults           Answers
	confirmation       QuestionSource
	confirmationHeader string
	invert             bool
	display            DisplayFunc
	displayHeader      string
	sharedData         map[string]any
	out                io.Writer
	log                *zap.Logger

	groups      []*Group
	userAnswers Answers
	status      Status
}

// New validates options and builds an Interview with no groups.
func New(opts Options) (*Interview, error) {
	if opts.Executor == nil {
		return nil, errors.New("interview executor is required")
	}
	if opts.Confirmation != nil {
		if err := validateSource(opts.Confirmation, "confirmation"); err != nil {
			return nil, err
		}
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	shared := opts.SharedData
	if shared == nil {
		shared = make(map[string]any)
	}
	return &Interview{
		executor:           opts.Executor,
		defaults:           opts.Defaults.Clone(),
		confirmation:       opts.Confirmation,
		confirmationHeader: opts.ConfirmationHeader,
		invert:             opts.InvertConfirmation,
		display:            opts.Display,
		displayHeader:      opts.DisplayHeader,
		sharedData:         shared,
		out:                out,
		log:                log,
		userAnswers:        make(Answers),
	}, nil
}

// CreateGroup builds a prompt from the group's question sources and the
// interview defaults, pairs it with the group's conditions, and appends it
// to the execution order. No prompting happens here.
func (iv *Interview) CreateGroup(opts GroupOptions) (*Group, error) {
	prompt, err := NewPrompt(PromptOptions{
		Executor:           iv.executor,
		Questions:          opts.Questions,
		Confirmation:       opts.Confirmation,
		InvertConfirmation: opts.InvertConfirmation,
		Defaults:           iv.defaults,
		Display:            opts.Display,
		Out:                iv.out,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create interview group %d", len(iv.groups))
	}
	group := &Group{
		Title:  opts.Title,
		When:   opts.When,
		Abort:  opts.Abort,
		prompt: prompt,
	}
	iv.groups = append(iv.groups, group)
	return group, nil
}

// SharedData returns the interview's shared context bag. Question builders
// hold a reference to it to shape later questions from earlier state.
func (iv *Interview) SharedData() map[string]any {
	return iv.sharedData
}

// Status reports the terminal outcome of the last Start call.
func (iv *Interview) Status() Status {
	return iv.status
}

// DefaultAnswers returns a copy of the immutable default layer.
func (iv *Interview) DefaultAnswers() Answers {
	return iv.defaults.Clone()
}

// UserAnswers returns the progressively accumulated user answer layer.
func (iv *Interview) UserAnswers() Answers {
	return iv.userAnswers
}

// FinalAnswers merges defaults and accumulated user answers. Recomputed on
// every call because user answers keep changing until Start returns.
func (iv *Interview) FinalAnswers() Answers {
	return mergeAnswers(iv.defaults, iv.userAnswers)
}

// Start runs every group in declaration order, then the final confirmation.
// A restart re-runs the whole sequence from the top, re-evaluating every
// group's When against the answers accumulated so far (which are kept, not
// reset). Returns the merged final answers; callers inspect Status to
// distinguish completion from abort.
func (iv *Interview) Start(ctx context.Context) (Answers, error) {
	iv.status = Status{}

	for restart := true; restart; {
		restart = false

		for i, group := range iv.groups {
			run, err := iv.groupRuns(ctx, group)
			if err != nil {
				return nil, err
			}
			if !run {
				iv.log.Debug("skipping interview group",
					zap.Int("group", i),
					zap.String("title", group.Title))
				continue
			}

			if group.Title != "" {
				fmt.Fprintln(iv.out, group.Title)
			}
			groupAnswers, err := group.prompt.Prompt(ctx)
			if err != nil {
				return nil, err
			}
			for k, v := range groupAnswers {
				iv.userAnswers[k] = v
			}
			iv.log.Debug("merged group answers",
				zap.Int("group", i),
				zap.Int("groupAnswers", len(groupAnswers)),
				zap.Int("userAnswers", len(iv.userAnswers)))

			if group.Abort != nil {
				if reason := group.Abort(groupAnswers, iv.userAnswers); reason != "" {
					iv.status = Status{Aborted: true, Reason: reason}
					iv.log.Debug("interview aborted by group",
						zap.Int("group", i),
						zap.String("reason", reason))
					fmt.Fprintln(iv.out, reason)
					return iv.FinalAnswers(), nil
				}
			}
		}

		proceed, again, err := iv.proceedRestartAbort(ctx)
		if err != nil {
			return nil, err
		}
		if iv.status.Aborted {
			return iv.FinalAnswers(), nil
		}
		if proceed {
			iv.status.Completed = true
			return iv.FinalAnswers(), nil
		}
		if again {
			iv.log.Debug("restarting interview",
				zap.Int("userAnswers", len(iv.userAnswers)))
			fmt.Fprintln(iv.out)
			restart = true
		}
	}

	return iv.FinalAnswers(), nil
}

// groupRuns evaluates a group's When gate. Absent When means run.
func (iv *Interview) groupRuns(ctx context.Context, group *Group) (bool, error) {
	if group.When == nil {
		return true, nil
	}
	return group.When(ctx, iv.userAnswers)
}

// proceedRestartAbort runs the final confirmation. Without a configured
// confirmation source it proceeds implicitly. Otherwise proceed/restart are
// each put through the inversion XOR rule; neither being true aborts.
func (iv *Interview) proceedRestartAbort(ctx context.Context) (proceed, restart bool, err error) {
	if iv.confirmation == nil {
		return true, false, nil
	}

	runDisplay(iv.out, iv.display, iv.displayHeader, iv.FinalAnswers())
	if iv.confirmationHeader != "" {
		fmt.Fprintln(iv.out, iv.confirmationHeader)
	}

	questions, err := iv.confirmation.Resolve()
	if err != nil {
		return false, false, err
	}
	raw, err := iv.executor.Execute(ctx, questions)
	if err != nil {
		return false, false, err
	}
	confirmation := newConfirmationAnswers()
	for k, v := range raw {
		confirmation[k] = v
	}

	proceed = xorBool(iv.invert, confirmation.Bool(ConfirmProceed))
	restart = xorBool(iv.invert, confirmation.Bool(ConfirmRestart))

	if !proceed && !restart {
		iv.status = Status{Aborted: true, Reason: "Command Aborted"}
		fmt.Fprintln(iv.out, iv.status.Reason)
		return false, false, nil
	}
	return proceed, restart, nil
}
