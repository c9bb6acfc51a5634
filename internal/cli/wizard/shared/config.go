package shared

import (
	"os"
	"strings"

	"github.com/pixie-sh/errors-go"
	"gopkg.in/yaml.v3"
)

// SetupConfig holds the defaults the setup wizard seeds its questions with.
// Loaded from .wizard.yaml or wizard.yaml if present, otherwise sensible
// defaults are used.
type SetupConfig struct {
	// Project defaults
	ProjectName string `yaml:"project_name"` // e.g. "my-project"
	License     string `yaml:"license"`      // e.g. "MIT"

	// Stack selection
	Stacks       []string `yaml:"stacks"`        // selectable stacks
	DefaultStack string   `yaml:"default_stack"` // pre-selected stack

	// Names the wizard refuses to scaffold
	ReservedNames []string `yaml:"reserved_names"`

	// Module name (auto-detected from go.mod if empty)
	ModuleName string `yaml:"module_name"`
}

// DefaultConfig returns a SetupConfig with sensible defaults.
func DefaultConfig() SetupConfig {
	return SetupConfig{
		ProjectName:   "my-project",
		License:       "MIT",
		Stacks:        []string{"golang", "angular", "expo"},
		DefaultStack:  "golang",
		ReservedNames: []string{"test", "tmp", "node_modules"},
	}
}

// LoadConfig loads configuration from .wizard.yaml or wizard.yaml in the
// current directory. If no config file is found, returns DefaultConfig with
// no error.
func LoadConfig() (SetupConfig, error) {
	cfg := DefaultConfig()

	// Try .wizard.yaml first, then wizard.yaml
	configPaths := []string{".wizard.yaml", "wizard.yaml"}

	var data []byte
	var found bool
	for _, path := range configPaths {
		content, err := os.ReadFile(path)
		if err == nil {
			data = content
			found = true
			break
		}
	}

	if !found {
		return cfg, nil
	}

	// Parse YAML into a wrapper struct that has a "setup" key
	var wrapper struct {
		Setup SetupConfig `yaml:"setup"`
	}
	wrapper.Setup = cfg // preserve defaults

	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return cfg, errors.Wrap(err, "failed to parse wizard config file")
	}

	return wrapper.Setup, nil
}

// IsReserved reports whether name is on the config's reserved list.
func (c SetupConfig) IsReserved(name string) bool {
	for _, reserved := range c.ReservedNames {
		if strings.EqualFold(name, reserved) {
			return true
		}
	}
	return false
}

// DetectModule reads go.mod from the current directory and returns the module path.
func DetectModule() (string, error) {
	content, err := os.ReadFile("go.mod")
	if err != nil {
		return "", errors.Wrap(err, "could not read go.mod file")
	}

	lines := strings.Split(string(content), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "module ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "module ")), nil
		}
	}

	return "", errors.New("module name not found in go.mod")
}

// ResolveModule returns moduleName if non-empty, otherwise auto-detects from go.mod.
func ResolveModule(moduleName string) (string, error) {
	if moduleName != "" {
		return moduleName, nil
	}
	return DetectModule()
}
