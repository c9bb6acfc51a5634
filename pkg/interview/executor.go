package interview

import (
	"context"
)

// Executor shows a question list to the user and returns the collected
// answers keyed by question name. It is the engine's only hard dependency;
// any terminal prompt library satisfies it.
//
// Executors must return answers for the questions they were given and
// nothing else. Errors propagate to Prompt/Start callers unmodified; the
// engine performs no retry.
type Executor interface {
	Execute(ctx context.Context, questions []Question) (Answers, error)
}

// ExecutorFunc adapts a function to the Executor interface. Tests use it to
// script answers without a terminal.
type ExecutorFunc func(ctx context.Context, questions []Question) (Answers, error)

// Execute implements Executor.
func (f ExecutorFunc) Execute(ctx context.Context, questions []Question) (Answers, error) {
	return f(ctx, questions)
}
