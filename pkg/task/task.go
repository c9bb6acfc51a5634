package task

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/pixie-sh/errors-go"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// RunFunc is a task body. It receives the tree-wide state bag.
type RunFunc func(ctx context.Context, st *State) error

// SkipFunc decides at run time whether a task is skipped. A non-empty
// return value is the skip reason shown to the user.
type SkipFunc func(st *State) string

// EnabledFunc decides whether a task participates at all. Disabled tasks
// produce no output.
type EnabledFunc func(st *State) bool

// Task is one node of a task tree. A node either has a Run body or child
// Tasks; when both are set, Run executes before the children.
type Task struct {
	// Title is printed with the task's outcome glyph.
	Title string

	// Run is the task body. Optional for parent nodes.
	Run RunFunc

	// Skip, when set and returning a non-empty reason, skips the task.
	Skip SkipFunc

	// Enabled, when set and returning false, drops the task silently.
	Enabled EnabledFunc

	// Tasks are child tasks run after Run.
	Tasks []Task

	// Concurrent runs the child tasks through a pool instead of in order.
	Concurrent bool
}

// Options configures a Runner.
type Options struct {
	// Out receives task progress lines. Defaults to os.Stdout.
	Out io.Writer

	// State is the shared bag handed to every task. Defaults to a fresh one.
	State *State

	// Logger receives debug-level task transitions. Defaults to a nop logger.
	Logger *zap.Logger
}

// Runner walks a task tree, printing one line per task outcome:
// ✓ for success, ✖ for failure, - with a reason for skipped.
type Runner struct {
	out   io.Writer
	outMu sync.Mutex
	state *State
	log   *zap.Logger
}

// NewRunner builds a Runner from options, filling in defaults.
func NewRunner(opts Options) *Runner {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	state := opts.State
	if state == nil {
		state = NewState()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{out: out, state: state, log: log}
}

// State returns the runner's shared state bag.
func (r *Runner) State() *State {
	return r.state
}

// Run executes tasks in declaration order. The first failure stops the
// walk and is returned wrapped with the failing task's title.
func (r *Runner) Run(ctx context.Context, tasks []Task) error {
	return r.run(ctx, tasks, 0)
}

func (r *Runner) run(ctx context.Context, tasks []Task, depth int) error {
	for i := range tasks {
		if err := r.runOne(ctx, &tasks[i], depth); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runOne(ctx context.Context, t *Task, depth int) error {
	if t.Enabled != nil && !t.Enabled(r.state) {
		r.log.Debug("task disabled", zap.String("title", t.Title))
		return nil
	}
	if t.Skip != nil {
		if reason := t.Skip(r.state); reason != "" {
			r.log.Debug("task skipped",
				zap.String("title", t.Title),
				zap.String("reason", reason))
			r.printf("%s- %s [skipped: %s]\n", indent(depth), t.Title, reason)
			return nil
		}
	}

	if t.Run != nil {
		r.log.Debug("task starting", zap.String("title", t.Title))
		if err := t.Run(ctx, r.state); err != nil {
			r.printf("%s✖ %s\n", indent(depth), t.Title)
			return errors.Wrap(err, "task %s failed", t.Title)
		}
	}

	if len(t.Tasks) > 0 {
		if t.Title != "" {
			r.printf("%s%s\n", indent(depth), t.Title)
		}
		if err := r.runChildren(ctx, t, depth+1); err != nil {
			return err
		}
		return nil
	}

	r.printf("%s✓ %s\n", indent(depth), t.Title)
	return nil
}

// printf serializes progress lines; concurrent subtasks share the writer.
func (r *Runner) printf(format string, args ...any) {
	r.outMu.Lock()
	defer r.outMu.Unlock()
	fmt.Fprintf(r.out, format, args...)
}

func (r *Runner) runChildren(ctx context.Context, t *Task, depth int) error {
	if !t.Concurrent {
		return r.run(ctx, t.Tasks, depth)
	}

	p := pool.New().WithContext(ctx)
	for i := range t.Tasks {
		child := &t.Tasks[i]
		p.Go(func(ctx context.Context) error {
			return r.runOne(ctx, child, depth)
		})
	}
	return p.Wait()
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
