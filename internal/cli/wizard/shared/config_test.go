package shared

import (
	"os"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"ProjectName", cfg.ProjectName, "my-project"},
		{"License", cfg.License, "MIT"},
		{"DefaultStack", cfg.DefaultStack, "golang"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("DefaultConfig().%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}

	if len(cfg.Stacks) != 3 {
		t.Errorf("DefaultConfig().Stacks = %v, want three stacks", cfg.Stacks)
	}
	if len(cfg.ReservedNames) == 0 {
		t.Error("DefaultConfig().ReservedNames is empty")
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	// Run in a temp directory with no config files
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

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil", err)
	}

	// Should return defaults
	want := DefaultConfig()
	if cfg.ProjectName != want.ProjectName {
		t.Errorf("ProjectName = %q, want %q", cfg.ProjectName, want.ProjectName)
	}
	if cfg.DefaultStack != want.DefaultStack {
		t.Errorf("DefaultStack = %q, want %q", cfg.DefaultStack, want.DefaultStack)
	}
}

func TestLoadConfig_WizardYaml(t *testing.T) {
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

	content := `setup:
  project_name: "acme-api"
  license: "Apache-2.0"
  default_stack: "angular"
  stacks:
    - "golang"
    - "angular"
  reserved_names:
    - "internal"
`
	if err := os.WriteFile("wizard.yaml", []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write wizard.yaml: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil", err)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"ProjectName", cfg.ProjectName, "acme-api"},
		{"License", cfg.License, "Apache-2.0"},
		{"DefaultStack", cfg.DefaultStack, "angular"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("LoadConfig().%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}

	if len(cfg.Stacks) != 2 {
		t.Errorf("Stacks = %v, want two entries", cfg.Stacks)
	}
	if !cfg.IsReserved("internal") {
		t.Error("IsReserved(internal) = false after override")
	}
}

func TestLoadConfig_DotWizardYamlPriority(t *testing.T) {
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

	// Both files exist; .wizard.yaml should win
	if err := os.WriteFile(".wizard.yaml", []byte("setup:\n  project_name: \"from-dot-wizard\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write .wizard.yaml: %v", err)
	}
	if err := os.WriteFile("wizard.yaml", []byte("setup:\n  project_name: \"from-wizard\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write wizard.yaml: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil", err)
	}

	if cfg.ProjectName != "from-dot-wizard" {
		t.Errorf("ProjectName = %q, want %q (should prefer .wizard.yaml)", cfg.ProjectName, "from-dot-wizard")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
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

	if err := os.WriteFile(".wizard.yaml", []byte("{{invalid yaml}}"), 0644); err != nil {
		t.Fatalf("Failed to write .wizard.yaml: %v", err)
	}

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig() error = nil, want error for invalid YAML")
	}
}

func TestLoadConfig_PartialOverride(t *testing.T) {
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

	// Only override one field; others should keep defaults
	if err := os.WriteFile("wizard.yaml", []byte("setup:\n  license: \"BSD-3-Clause\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write wizard.yaml: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil", err)
	}

	if cfg.License != "BSD-3-Clause" {
		t.Errorf("License = %q, want %q", cfg.License, "BSD-3-Clause")
	}
	// Verify other fields retain defaults
	if cfg.ProjectName != "my-project" {
		t.Errorf("ProjectName = %q, want default %q", cfg.ProjectName, "my-project")
	}
}

func TestIsReserved(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		want bool
	}{
		{"test", true},
		{"TEST", true},
		{"tmp", true},
		{"my-project", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.IsReserved(tt.name); got != tt.want {
				t.Errorf("IsReserved(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestDetectModule(t *testing.T) {
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

	goMod := `module github.com/example/myproject

go 1.21

require (
	github.com/some/dep v1.0.0
)
`
	if err := os.WriteFile("go.mod", []byte(goMod), 0644); err != nil {
		t.Fatalf("Failed to write go.mod: %v", err)
	}

	mod, err := DetectModule()
	if err != nil {
		t.Fatalf("DetectModule() error = %v, want nil", err)
	}
	if mod != "github.com/example/myproject" {
		t.Errorf("DetectModule() = %q, want %q", mod, "github.com/example/myproject")
	}
}

func TestDetectModule_NoGoMod(t *testing.T) {
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

	_, err := DetectModule()
	if err == nil {
		t.Fatal("DetectModule() error = nil, want error when go.mod missing")
	}
}

func TestResolveModule_Provided(t *testing.T) {
	mod, err := ResolveModule("github.com/custom/mod")
	if err != nil {
		t.Fatalf("ResolveModule() error = %v", err)
	}
	if mod != "github.com/custom/mod" {
		t.Errorf("ResolveModule() = %q, want %q", mod, "github.com/custom/mod")
	}
}

func TestResolveModule_AutoDetect(t *testing.T) {
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

	if err := os.WriteFile("go.mod", []byte("module github.com/auto/detected\n\ngo 1.21\n"), 0644); err != nil {
		t.Fatalf("Failed to write go.mod: %v", err)
	}

	mod, err := ResolveModule("")
	if err != nil {
		t.Fatalf("ResolveModule() error = %v", err)
	}
	if mod != "github.com/auto/detected" {
		t.Errorf("ResolveModule() = %q, want %q", mod, "github.com/auto/detected")
	}
}
