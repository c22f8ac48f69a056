// Package validators contains input validation shared by CLI commands.
package validators

import (
	"fmt"
	"regexp"
	"strings"
)

var projectDirPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// ValidateAgentName checks that the agent name is non-empty and short
// enough to make a usable package name.
func ValidateAgentName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("agent name must not be empty")
	}
	if len(trimmed) > 64 {
		return fmt.Errorf("agent name must be at most 64 characters")
	}
	return nil
}

// ValidateProjectDir checks that dir is a safe relative directory name.
func ValidateProjectDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("project directory must not be empty")
	}
	if !projectDirPattern.MatchString(dir) {
		return fmt.Errorf("project directory %q must be lowercase alphanumeric (dots, dashes, underscores allowed)", dir)
	}
	return nil
}
