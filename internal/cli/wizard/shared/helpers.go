package shared

import (
	"strings"

	"github.com/pixie-sh/errors-go"
)

// IsValidProjectName checks whether s is a valid kebab-case project name
// (lowercase alpha + digits, single dashes, no leading/trailing dash).
func IsValidProjectName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9' && i > 0) || (r == '-' && i > 0 && i < len(s)-1)) {
			return false
		}
	}
	return !strings.Contains(s, "--")
}

// ValidateProjectName adapts IsValidProjectName for prompt validation.
func ValidateProjectName(s string) error {
	if !IsValidProjectName(s) {
		return errors.New("project name must be kebab-case (e.g. my-project)")
	}
	return nil
}

// ValidateModulePath checks that s looks like a Go module path.
func ValidateModulePath(s string) error {
	if s == "" {
		return errors.New("module path is required")
	}
	if strings.ContainsAny(s, " \t") {
		return errors.New("module path must not contain whitespace")
	}
	return nil
}

// ParseFeatures parses a comma-separated feature string into a feature map.
func ParseFeatures(featureStr string) map[string]bool {
	features := make(map[string]bool)
	if featureStr == "" {
		return features
	}
	for _, feature := range strings.Split(featureStr, ",") {
		feature = strings.TrimSpace(feature)
		if feature != "" {
			features[feature] = true
		}
	}
	return features
}

// ResolveFeatureDependencies ensures all required feature dependencies are satisfied.
func ResolveFeatureDependencies(features map[string]bool) map[string]bool {
	dependencies := map[string][]string{
		"release": {"ci"},
		"docker":  {"ci"},
	}

	for {
		added := false
		for feature, deps := range dependencies {
			if features[feature] {
				for _, dep := range deps {
					if !features[dep] {
						features[dep] = true
						added = true
					}
				}
			}
		}
		if !added {
			break
		}
	}

	return features
}

// EnabledFeatures returns a list of enabled feature names.
func EnabledFeatures(features map[string]bool) []string {
	var enabled []string
	for feature, isEnabled := range features {
		if isEnabled {
			enabled = append(enabled, feature)
		}
	}
	return enabled
}

// FeaturesListString returns a comma-separated string of enabled features.
func FeaturesListString(features map[string]bool) string {
	enabled := EnabledFeatures(features)
	if len(enabled) == 0 {
		return "none"
	}
	return strings.Join(enabled, ", ")
}
