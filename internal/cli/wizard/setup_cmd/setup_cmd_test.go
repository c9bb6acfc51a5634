package setup_cmd

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/pixie-sh/wizard-kit/internal/cli/wizard/shared"
	"github.com/pixie-sh/wizard-kit/pkg/interview"
	"github.com/pixie-sh/wizard-kit/pkg/task"
)

func TestPlanFill(t *testing.T) {
	p := &plan{cfg: shared.DefaultConfig()}

	err := p.fill(interview.Answers{
		"name":     "demo-app",
		"module":   "github.com/acme/demo-app",
		"stack":    "golang",
		"license":  "MIT",
		"git_init": true,
		"docker":   true,
	})
	if err != nil {
		t.Fatalf("fill() error = %v", err)
	}
	if p.Name != "demo-app" || p.Stack != "golang" {
		t.Errorf("plan = %+v, want answers copied over", p)
	}
	if !p.Features["docker"] || !p.Features["ci"] {
		t.Errorf("Features = %v, want docker to pull in ci", p.Features)
	}
}

func TestPlanFillRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		answers interview.Answers
	}{
		{"invalid project name", interview.Answers{"name": "Bad Name", "module": "example.com/x"}},
		{"reserved project name", interview.Answers{"name": "tmp", "module": "example.com/x"}},
		{"missing module", interview.Answers{"name": "demo-app"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &plan{cfg: shared.DefaultConfig()}
			if err := p.fill(tt.answers); err == nil {
				t.Error("fill() error = nil, want validation error")
			}
		})
	}
}

func TestPlanTasksSkipDisabledFeatures(t *testing.T) {
	p := &plan{
		cfg:      shared.DefaultConfig(),
		Name:     "demo-app",
		Features: map[string]bool{"ci": true},
		GitInit:  false,
	}

	out := &bytes.Buffer{}
	runner := task.NewRunner(task.Options{Out: out})
	if err := runner.Run(context.Background(), planTasks(p)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(out.String(), "✓ Plan CI workflows") {
		t.Errorf("CI planning did not run:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Plan Dockerfile [skipped: docker disabled]") {
		t.Errorf("Dockerfile planning not skipped:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Plan git initialization [skipped: git disabled]") {
		t.Errorf("git planning not skipped:\n%s", out.String())
	}
	if runner.State().String("features") != "ci" {
		t.Errorf("state features = %q, want ci", runner.State().String("features"))
	}
}

func TestRunNonInteractive(t *testing.T) {
	tmp := t.TempDir()
	origDir, _ := os.Getwd()
	defer func() {
		if err := os.Chdir(origDir); err != nil {
			t.Logf("Failed to restore directory: %v", err)
		}
	}()
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	if err := os.WriteFile("go.mod", []byte("module github.com/acme/demo-app\n\ngo 1.21\n"), 0644); err != nil {
		t.Fatalf("Failed to write go.mod: %v", err)
	}

	err := Run(context.Background(), Options{
		Name:           "demo-app",
		Features:       "docker",
		NonInteractive: true,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestRunNonInteractiveRejectsReservedName(t *testing.T) {
	tmp := t.TempDir()
	origDir, _ := os.Getwd()
	defer func() {
		if err := os.Chdir(origDir); err != nil {
			t.Logf("Failed to restore directory: %v", err)
		}
	}()
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	err := Run(context.Background(), Options{
		Name:           "tmp",
		Module:         "example.com/tmp",
		NonInteractive: true,
	})
	if err == nil {
		t.Fatal("Run() error = nil, want reserved-name rejection")
	}
}
