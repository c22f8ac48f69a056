package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const RecordFileName = "agentforge.yaml"

// Record captures the answers a project was generated from so later tool
// runs can re-generate or inspect the scaffold. The private key is never
// part of the record.
type Record struct {
	AgentName   string    `yaml:"agentName"`
	Description string    `yaml:"description,omitempty"`
	Image       string    `yaml:"image,omitempty"`
	Chain       string    `yaml:"chain"`
	Features    []string  `yaml:"features,omitempty"`
	TrustModels []string  `yaml:"trustModels,omitempty"`
	AgentWallet string    `yaml:"agentWallet,omitempty"`
	GeneratedAt time.Time `yaml:"generatedAt,omitempty"`
}

// NewRecord builds a Record from wizard answers.
func NewRecord(answers WizardAnswers) *Record {
	return &Record{
		AgentName:   answers.AgentName,
		Description: answers.AgentDescription,
		Image:       answers.AgentImage,
		Chain:       answers.Chain,
		Features:    answers.Features,
		TrustModels: answers.TrustModels,
		AgentWallet: answers.AgentWallet,
	}
}

// RecordManager handles loading and saving the project record.
type RecordManager struct {
	projectRoot string
}

// NewRecordManager creates a manager rooted at the given project directory.
func NewRecordManager(projectRoot string) *RecordManager {
	return &RecordManager{projectRoot: projectRoot}
}

// Load reads and validates the project record.
func (m *RecordManager) Load() (*Record, error) {
	path := filepath.Join(m.projectRoot, RecordFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s not found in %s", RecordFileName, m.projectRoot)
		}
		return nil, fmt.Errorf("failed to read %s: %w", RecordFileName, err)
	}

	var record Record
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", RecordFileName, err)
	}
	if err := m.Validate(&record); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", RecordFileName, err)
	}
	return &record, nil
}

// Save validates and writes the record.
func (m *RecordManager) Save(record *Record) error {
	record.GeneratedAt = time.Now().UTC()

	if err := m.Validate(record); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}

	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	path := filepath.Join(m.projectRoot, RecordFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", RecordFileName, err)
	}
	return nil
}

// Validate checks the record's required fields and feature identifiers.
func (m *RecordManager) Validate(record *Record) error {
	if record.AgentName == "" {
		return fmt.Errorf("agent name is required")
	}
	if record.Chain == "" {
		return fmt.Errorf("chain is required")
	}
	for i, f := range record.Features {
		if f != FeatureA2A && f != FeatureMCP {
			return fmt.Errorf("features[%d]: unsupported feature '%s'", i, f)
		}
	}
	return nil
}
