package scaffold

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordRoundTrip(t *testing.T) {
	dir := t.TempDir()

	answers := sampleAnswers(FeatureA2A, FeatureMCP)
	record := NewRecord(answers)

	manager := NewRecordManager(dir)
	require.NoError(t, manager.Save(record))

	loaded, err := manager.Load()
	require.NoError(t, err)
	require.Equal(t, answers.AgentName, loaded.AgentName)
	require.Equal(t, answers.Chain, loaded.Chain)
	require.Equal(t, answers.Features, loaded.Features)
	require.Equal(t, answers.TrustModels, loaded.TrustModels)
	require.Equal(t, answers.AgentWallet, loaded.AgentWallet)
	require.False(t, loaded.GeneratedAt.IsZero())
}

func TestRecordValidate(t *testing.T) {
	manager := NewRecordManager(t.TempDir())

	tests := []struct {
		name    string
		record  Record
		wantErr string
	}{
		{"missing name", Record{Chain: ChainMonadTestnet}, "agent name is required"},
		{"missing chain", Record{AgentName: "a"}, "chain is required"},
		{"bad feature", Record{AgentName: "a", Chain: ChainMonadTestnet, Features: []string{"grpc"}}, "unsupported feature"},
		{"valid", Record{AgentName: "a", Chain: ChainMonadTestnet, Features: []string{FeatureA2A}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := manager.Validate(&tt.record)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRecordLoadMissing(t *testing.T) {
	_, err := NewRecordManager(t.TempDir()).Load()
	require.ErrorContains(t, err, RecordFileName)
}
