// Package generator sequences the phases of a scaffolding run: gather
// answers, configure, execute tasks. It owns the lifecycle only; hooks and
// tasks do the actual work, and nothing here touches the filesystem.
package generator

import (
	"context"
	"io"
	"os"

	"github.com/pixie-sh/errors-go"
	"go.uber.org/zap"

	"github.com/pixie-sh/wizard-kit/pkg/interview"
	"github.com/pixie-sh/wizard-kit/pkg/task"
)

// Phase names one stage of a generator run.
type Phase string

const (
	PhaseInitializing Phase = "initializing"
	PhasePrompting    Phase = "prompting"
	PhaseConfiguring  Phase = "configuring"
	PhaseWriting      Phase = "writing"
	PhaseInstalling   Phase = "installing"
	PhaseEnding       Phase = "ending"
)

// phaseOrder is the fixed execution sequence.
var phaseOrder = []Phase{
	PhaseInitializing,
	PhasePrompting,
	PhaseConfiguring,
	PhaseWriting,
	PhaseInstalling,
	PhaseEnding,
}

// Hook is a per-phase callback. It runs before the phase's built-in
// behavior (the interview in prompting, the task tree in writing).
type Hook func(ctx context.Context, g *Generator) error

// Status records how a generator run ended.
type Status struct {
	Aborted   bool
	Completed bool
	Reason    string
}

// Options configures a Generator.
type Options struct {
	// Interview, when set, runs during the prompting phase; its final
	// answers become the generator's answers.
	Interview *interview.Interview

	// Tasks, when non-empty, run through a task.Runner during the writing
	// phase.
	Tasks []task.Task

	// Hooks attach per-phase callbacks. Unset phases are no-ops.
	Hooks map[Phase]Hook

	// Out receives task progress output. Defaults to os.Stdout.
	Out io.Writer

	// Logger receives debug-level phase transitions. Defaults to a nop
	// logger.
	Logger *zap.Logger
}

// Generator runs phases in a fixed order. An interview abort during the
// prompting phase skips every later phase except ending, which always runs
// so cleanup hooks get their turn.
type Generator struct {
	interview *interview.Interview
	tasks     []task.Task
	hooks     map[Phase]Hook
	out       io.Writer
	log       *zap.Logger

	phase   Phase
	answers interview.Answers
	status  Status
}

// New builds a Generator from options, filling in defaults.
func New(opts Options) *Generator {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		interview: opts.Interview,
		tasks:     opts.Tasks,
		hooks:     opts.Hooks,
		out:       out,
		log:       log,
	}
}

// Phase reports the phase most recently entered.
func (g *Generator) Phase() Phase {
	return g.phase
}

// Answers returns the final answers collected by the prompting phase.
func (g *Generator) Answers() interview.Answers {
	return g.answers
}

// Status reports the terminal outcome of the last Run call.
func (g *Generator) Status() Status {
	return g.status
}

// Run executes every phase in order. Hook and built-in failures stop the
// run; an interview abort is not an error but flips Status().Aborted.
func (g *Generator) Run(ctx context.Context) error {
	g.status = Status{}
	g.answers = nil

	for _, phase := range phaseOrder {
		if g.status.Aborted && phase != PhaseEnding {
			g.log.Debug("skipping phase after abort", zap.String("phase", string(phase)))
			continue
		}
		g.phase = phase
		g.log.Debug("entering phase", zap.String("phase", string(phase)))

		if hook := g.hooks[phase]; hook != nil {
			if err := hook(ctx, g); err != nil {
				return errors.Wrap(err, "%s hook failed", phase)
			}
		}

		if err := g.runPhase(ctx, phase); err != nil {
			return err
		}
	}

	if !g.status.Aborted {
		g.status.Completed = true
	}
	return nil
}

// runPhase runs the built-in behavior a phase carries, if any.
func (g *Generator) runPhase(ctx context.Context, phase Phase) error {
	switch phase {
	case PhasePrompting:
		if g.interview == nil {
			return nil
		}
		answers, err := g.interview.Start(ctx)
		if err != nil {
			return err
		}
		g.answers = answers
		if st := g.interview.Status(); st.Aborted {
			g.status = Status{Aborted: true, Reason: st.Reason}
		}
		return nil

	case PhaseWriting:
		if len(g.tasks) == 0 {
			return nil
		}
		runner := task.NewRunner(task.Options{Out: g.out, Logger: g.log})
		return runner.Run(ctx, g.tasks)

	default:
		return nil
	}
}
