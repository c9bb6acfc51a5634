package shared

import (
	"sort"
	"strings"
	"testing"
)

func TestIsValidProjectName(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"my-project", true},
		{"users", true},
		{"a", true},
		{"api-v2", true},
		{"service2", true},

		// Invalid cases
		{"", false},
		{"MyProject", false},    // uppercase
		{"my_project", false},   // underscore
		{"-project", false},     // leading dash
		{"project-", false},     // trailing dash
		{"my--project", false},  // double dash
		{"2project", false},     // leading digit
		{"my project", false},   // space
		{"my.project", false},   // dot
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidProjectName(tt.input); got != tt.want {
				t.Errorf("IsValidProjectName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateProjectName(t *testing.T) {
	if err := ValidateProjectName("my-project"); err != nil {
		t.Errorf("ValidateProjectName(my-project) error = %v, want nil", err)
	}
	if err := ValidateProjectName("My Project"); err == nil {
		t.Error("ValidateProjectName(My Project) error = nil, want validation error")
	}
}

func TestValidateModulePath(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"github.com/acme/api", false},
		{"example.com/app", false},
		{"", true},
		{"has space", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateModulePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateModulePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseFeatures(t *testing.T) {
	tests := []struct {
		name       string
		featureStr string
		wantKeys   []string
	}{
		{"empty", "", nil},
		{"single", "ci", []string{"ci"}},
		{"multiple", "ci,docker,lint", []string{"ci", "docker", "lint"}},
		{"whitespace tolerated", " ci , docker ", []string{"ci", "docker"}},
		{"empty entries dropped", "ci,,docker,", []string{"ci", "docker"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features := ParseFeatures(tt.featureStr)
			if len(features) != len(tt.wantKeys) {
				t.Fatalf("ParseFeatures(%q) = %v, want keys %v", tt.featureStr, features, tt.wantKeys)
			}
			for _, key := range tt.wantKeys {
				if !features[key] {
					t.Errorf("ParseFeatures(%q)[%s] = false, want true", tt.featureStr, key)
				}
			}
		})
	}
}

func TestResolveFeatureDependencies(t *testing.T) {
	tests := []struct {
		name     string
		features map[string]bool
		wantKeys []string
	}{
		{"release pulls ci", map[string]bool{"release": true}, []string{"release", "ci"}},
		{"docker pulls ci", map[string]bool{"docker": true}, []string{"docker", "ci"}},
		{"no deps", map[string]bool{"lint": true}, []string{"lint"}},
		{"already satisfied", map[string]bool{"docker": true, "ci": true}, []string{"docker", "ci"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features := ResolveFeatureDependencies(tt.features)
			for _, key := range tt.wantKeys {
				if !features[key] {
					t.Errorf("feature %s = false, want true", key)
				}
			}
			if len(features) != len(tt.wantKeys) {
				t.Errorf("features = %v, want exactly %v", features, tt.wantKeys)
			}
		})
	}
}

func TestEnabledFeatures(t *testing.T) {
	features := map[string]bool{"ci": true, "docker": false, "lint": true}

	enabled := EnabledFeatures(features)
	sort.Strings(enabled)
	if len(enabled) != 2 || enabled[0] != "ci" || enabled[1] != "lint" {
		t.Errorf("EnabledFeatures() = %v, want [ci lint]", enabled)
	}
}

func TestFeaturesListString(t *testing.T) {
	if got := FeaturesListString(map[string]bool{}); got != "none" {
		t.Errorf("FeaturesListString(empty) = %q, want none", got)
	}

	got := FeaturesListString(map[string]bool{"ci": true, "lint": true})
	for _, want := range []string{"ci", "lint"} {
		if !strings.Contains(got, want) {
			t.Errorf("FeaturesListString() = %q, missing %q", got, want)
		}
	}
}
