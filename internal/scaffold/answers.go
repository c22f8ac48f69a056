// Package scaffold generates the source files for a new on-chain agent
// project. Every Build* function is a pure mapping from the collected
// wizard answers (plus resolved chain configuration) to literal file
// contents; writing the files to disk is the Writer's job.
package scaffold

import "strings"

// Feature identifiers the generator recognizes.
const (
	FeatureA2A = "a2a"
	FeatureMCP = "mcp"
)

// WizardAnswers holds everything collected from the user for a single
// generation pass. It is read-only input; the generator never mutates it.
type WizardAnswers struct {
	AgentName        string
	AgentDescription string
	AgentImage       string
	Features         []string
	Chain            string
	TrustModels      []string
	AgentWallet      string
	// GeneratedPrivateKey is only ever interpolated into the .env
	// template. It must not appear in any other artifact or in logs.
	GeneratedPrivateKey string
	ProjectDir          string
}

// HasFeature reports whether the given feature identifier is enabled.
func (a WizardAnswers) HasFeature(feature string) bool {
	for _, f := range a.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// PackageName derives the package manifest name from the agent name:
// lower-cased, runs of whitespace collapsed to a single hyphen.
func (a WizardAnswers) PackageName() string {
	return strings.ToLower(strings.Join(strings.Fields(a.AgentName), "-"))
}
