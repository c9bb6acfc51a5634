package setup_cmd

import (
	"context"
	"fmt"

	"github.com/pixie-sh/errors-go"
	"github.com/spf13/cobra"

	"github.com/pixie-sh/wizard-kit/internal/cli/wizard/shared"
	"github.com/pixie-sh/wizard-kit/pkg/generator"
	"github.com/pixie-sh/wizard-kit/pkg/interview"
	"github.com/pixie-sh/wizard-kit/pkg/task"
)

// featureNames are the optional features the wizard can toggle.
var featureNames = []string{"ci", "docker", "lint", "release"}

// Options holds all options for the setup command
type Options struct {
	Name           string // Project name
	Module         string // Go module path
	Stack          string // Technology stack
	License        string // License identifier
	Features       string // Comma-separated feature list
	NonInteractive bool   // Skip all prompts, use flags and defaults
	Accessible     bool   // Render prompts in accessible mode
}

// SetupCmd returns the setup wizard command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Interactively configure a new project",
		Long: `Walk through an interactive interview to configure a new project.

The wizard asks for:
  - Project name, module path, and technology stack
  - Optional features (only when you choose to customize)
  - License and git preferences

Answers are summarized in a table and confirmed before anything runs;
answering "start over" re-runs the interview keeping your answers as the
new defaults. Defaults are seeded from .wizard.yaml / wizard.yaml and from
the go.mod in the current directory.

Examples:
  # Run the full interactive wizard
  wizard setup

  # Pre-seed answers from flags, still confirming interactively
  wizard setup --name my-api --module github.com/company/my-api

  # No prompts at all; flags and config defaults decide everything
  wizard setup --name my-api --module github.com/company/my-api --non-interactive --features ci,docker
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			module, _ := cmd.Flags().GetString("module")
			stack, _ := cmd.Flags().GetString("stack")
			license, _ := cmd.Flags().GetString("license")
			features, _ := cmd.Flags().GetString("features")
			nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
			accessible, _ := cmd.Flags().GetBool("accessible")

			opts := Options{
				Name:           name,
				Module:         module,
				Stack:          stack,
				License:        license,
				Features:       features,
				NonInteractive: nonInteractive,
				Accessible:     accessible,
			}

			return Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().String("name", "", "Project name")
	cmd.Flags().String("module", "", "Go module path (auto-detected from go.mod if empty)")
	cmd.Flags().String("stack", "", "Technology stack")
	cmd.Flags().String("license", "", "License identifier")
	cmd.Flags().String("features", "", "Comma-separated features (ci,docker,lint,release)")
	cmd.Flags().Bool("non-interactive", false, "Skip all prompts and use flags plus config defaults")
	cmd.Flags().Bool("accessible", false, "Render prompts in accessible mode")

	return cmd
}

// Run executes the setup wizard
func Run(ctx context.Context, opts Options) error {
	cfg, err := shared.LoadConfig()
	if err != nil {
		return errors.Wrap(err, "failed to load wizard config")
	}

	// go.mod detection is best effort; the interview can still ask.
	module := opts.Module
	if module == "" {
		if detected, err := shared.DetectModule(); err == nil {
			module = detected
		}
	}

	defaults := interview.Answers{
		"name":      firstNonEmpty(opts.Name, cfg.ProjectName),
		"module":    module,
		"stack":     firstNonEmpty(opts.Stack, cfg.DefaultStack),
		"license":   firstNonEmpty(opts.License, cfg.License),
		"customize": opts.Features != "",
		"git_init":  true,
	}
	for _, feature := range featureNames {
		defaults[feature] = false
	}
	for feature := range shared.ParseFeatures(opts.Features) {
		defaults[feature] = true
	}

	p := &plan{cfg: cfg}

	var iv *interview.Interview
	if !opts.NonInteractive {
		iv, err = buildInterview(cfg, defaults, opts.Accessible)
		if err != nil {
			return err
		}
	}

	g := generator.New(generator.Options{
		Interview: iv,
		Hooks: map[generator.Phase]generator.Hook{
			generator.PhaseConfiguring: func(_ context.Context, g *generator.Generator) error {
				answers := g.Answers()
				if answers == nil {
					// Non-interactive runs have no interview answers.
					answers = defaults
				}
				return p.fill(answers)
			},
		},
		Tasks: planTasks(p),
	})

	if err := g.Run(ctx); err != nil {
		return err
	}
	if g.Status().Aborted {
		return nil
	}

	printNextSteps(p)
	return nil
}

// buildInterview assembles the three wizard groups and the final
// confirmation.
func buildInterview(cfg shared.SetupConfig, defaults interview.Answers, accessible bool) (*interview.Interview, error) {
	executor := interview.NewHuhExecutor()
	executor.Accessible = accessible

	iv, err := interview.New(interview.Options{
		Executor:      executor,
		Defaults:      defaults,
		Display:       interview.AnswerRows,
		DisplayHeader: "Project configuration:",
		Confirmation: interview.Static(
			interview.Question{
				Name:    interview.ConfirmProceed,
				Type:    interview.QuestionConfirm,
				Message: "Create the project with these settings?",
				Default: true,
			},
			interview.Question{
				Name:    interview.ConfirmRestart,
				Type:    interview.QuestionConfirm,
				Message: "Start over? (your answers become the new defaults)",
			},
		),
	})
	if err != nil {
		return nil, err
	}

	stackOptions := make([]interview.Option, 0, len(cfg.Stacks))
	for _, stack := range cfg.Stacks {
		stackOptions = append(stackOptions, interview.Option{Label: stack, Value: stack})
	}

	_, err = iv.CreateGroup(interview.GroupOptions{
		Title: "Project",
		Questions: interview.Static(
			interview.Question{
				Name:     "name",
				Type:     interview.QuestionInput,
				Message:  "Project name",
				Validate: shared.ValidateProjectName,
			},
			interview.Question{
				Name:     "module",
				Type:     interview.QuestionInput,
				Message:  "Go module path",
				Validate: shared.ValidateModulePath,
			},
			interview.Question{
				Name:    "stack",
				Type:    interview.QuestionSelect,
				Message: "Technology stack",
				Options: stackOptions,
			},
			interview.Question{
				Name:    "customize",
				Type:    interview.QuestionConfirm,
				Message: "Customize optional features?",
			},
		),
		Abort: func(_, all interview.Answers) string {
			if name := all.String("name"); cfg.IsReserved(name) {
				return fmt.Sprintf("%q is a reserved project name", name)
			}
			return ""
		},
	})
	if err != nil {
		return nil, err
	}

	featureQuestions := make([]interview.Question, 0, len(featureNames))
	for _, feature := range featureNames {
		featureQuestions = append(featureQuestions, interview.Question{
			Name:    feature,
			Type:    interview.QuestionConfirm,
			Message: fmt.Sprintf("Enable %s?", feature),
		})
	}
	_, err = iv.CreateGroup(interview.GroupOptions{
		Title:     "Features",
		Questions: interview.Static(featureQuestions...),
		When: func(_ context.Context, user interview.Answers) (bool, error) {
			return user.Bool("customize"), nil
		},
	})
	if err != nil {
		return nil, err
	}

	_, err = iv.CreateGroup(interview.GroupOptions{
		Title: "Extras",
		Questions: interview.Static(
			interview.Question{
				Name:    "license",
				Type:    interview.QuestionSelect,
				Message: "License",
				Options: []interview.Option{
					{Label: "MIT", Value: "MIT"},
					{Label: "Apache 2.0", Value: "Apache-2.0"},
					{Label: "BSD 3-Clause", Value: "BSD-3-Clause"},
					{Label: "None", Value: "none"},
				},
			},
			interview.Question{
				Name:    "git_init",
				Type:    interview.QuestionConfirm,
				Message: "Initialize a git repository?",
				Default: true,
			},
		),
	})
	if err != nil {
		return nil, err
	}

	return iv, nil
}

// plan is the configuration the wizard settles on before any task runs.
type plan struct {
	cfg shared.SetupConfig

	Name     string
	Module   string
	Stack    string
	License  string
	GitInit  bool
	Features map[string]bool
}

// fill populates the plan from interview answers (or defaults, for
// non-interactive runs) and re-validates the fields prompts may have
// skipped.
func (p *plan) fill(answers interview.Answers) error {
	p.Name = answers.String("name")
	p.Module = answers.String("module")
	p.Stack = answers.String("stack")
	p.License = answers.String("license")
	p.GitInit = answers.Bool("git_init")

	p.Features = make(map[string]bool)
	for _, feature := range featureNames {
		if answers.Bool(feature) {
			p.Features[feature] = true
		}
	}
	p.Features = shared.ResolveFeatureDependencies(p.Features)

	if err := shared.ValidateProjectName(p.Name); err != nil {
		return err
	}
	if p.cfg.IsReserved(p.Name) {
		return errors.New("%q is a reserved project name", p.Name)
	}
	return shared.ValidateModulePath(p.Module)
}

// planTasks builds the scaffolding plan tree. The closures read the plan at
// run time, after the configuring hook has filled it.
func planTasks(p *plan) []task.Task {
	return []task.Task{
		{
			Title: "Resolve feature dependencies",
			Run: func(_ context.Context, st *task.State) error {
				st.Set("features", shared.FeaturesListString(p.Features))
				return nil
			},
		},
		{
			Title: "Prepare scaffolding plan",
			Tasks: []task.Task{
				{
					Title: "Plan project layout",
					Run:   func(context.Context, *task.State) error { return nil },
				},
				{
					Title: "Plan CI workflows",
					Skip: func(*task.State) string {
						if !p.Features["ci"] {
							return "ci disabled"
						}
						return ""
					},
					Run: func(context.Context, *task.State) error { return nil },
				},
				{
					Title: "Plan Dockerfile",
					Skip: func(*task.State) string {
						if !p.Features["docker"] {
							return "docker disabled"
						}
						return ""
					},
					Run: func(context.Context, *task.State) error { return nil },
				},
			},
		},
		{
			Title: "Plan git initialization",
			Skip: func(*task.State) string {
				if !p.GitInit {
					return "git disabled"
				}
				return ""
			},
			Run: func(context.Context, *task.State) error { return nil },
		},
	}
}

// printNextSteps summarizes the plan and tells the user what to do next.
func printNextSteps(p *plan) {
	fmt.Printf("\nProject configured: %s\n", p.Name)
	fmt.Printf("   Module: %s\n", p.Module)
	fmt.Printf("   Stack: %s\n", p.Stack)
	fmt.Printf("   License: %s\n", p.License)
	fmt.Printf("   Features: %s\n", shared.FeaturesListString(p.Features))

	fmt.Println("\nNext steps:")
	fmt.Printf("   mkdir %s && cd %s\n", p.Name, p.Name)
	if p.Stack == "golang" {
		fmt.Printf("   go mod init %s\n", p.Module)
	}
	if p.GitInit {
		fmt.Println("   git init")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
