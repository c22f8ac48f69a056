package scaffold

import (
	"strings"
	"testing"
)

func TestBuildRegistrationScriptEscaping(t *testing.T) {
	answers := sampleAnswers()
	answers.AgentName = `Say "hello"`
	answers.AgentDescription = `An agent that says "hi" back`

	script := BuildRegistrationScript(answers, ChainByID(answers.Chain))

	if !strings.Contains(script, `name: "Say \"hello\""`) {
		t.Error("agent name double quotes are not escaped")
	}
	if !strings.Contains(script, `description: "An agent that says \"hi\" back"`) {
		t.Error("agent description double quotes are not escaped")
	}
}

func TestBuildRegistrationScriptServices(t *testing.T) {
	tests := []struct {
		name      string
		features  []string
		wantCount int
		wantNames []string
	}{
		{"no features", nil, 0, nil},
		{"a2a only", []string{FeatureA2A}, 1, []string{`"name": "A2A"`}},
		{"mcp only", []string{FeatureMCP}, 1, []string{`"name": "MCP"`}},
		{"both", []string{FeatureA2A, FeatureMCP}, 2, []string{`"name": "A2A"`, `"name": "MCP"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := sampleAnswers(tt.features...)
			script := BuildRegistrationScript(answers, ChainByID(answers.Chain))

			got := strings.Count(script, `"endpoint"`)
			if got != tt.wantCount {
				t.Errorf("services count = %d, want %d", got, tt.wantCount)
			}
			for _, want := range tt.wantNames {
				if !strings.Contains(script, want) {
					t.Errorf("script missing service entry %q", want)
				}
			}
			if tt.wantCount == 0 && !strings.Contains(script, "services: []") {
				t.Error("expected empty services literal")
			}
		})
	}
}

func TestBuildRegistrationScriptChainBinding(t *testing.T) {
	tests := []struct {
		name  string
		chain string
	}{
		{"mainnet", ChainMonadMainnet},
		{"testnet", ChainMonadTestnet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := sampleAnswers()
			answers.Chain = tt.chain
			cfg := ChainByID(tt.chain)
			contracts := SelectContracts(tt.chain)

			script := BuildRegistrationScript(answers, cfg)

			if !strings.Contains(script, contracts.IdentityRegistry.Hex()) {
				t.Error("script missing identity registry address")
			}
			if !strings.Contains(script, contracts.ReputationRegistry.Hex()) {
				t.Error("script missing reputation registry address")
			}
			if !strings.Contains(script, cfg.RPCURL) {
				t.Error("script missing chain RPC URL")
			}
			if !strings.Contains(script, cfg.ScanPath+"/tx/") {
				t.Error("script missing explorer URL base")
			}
		})
	}
}

func TestBuildRegistrationScriptSteps(t *testing.T) {
	answers := sampleAnswers(FeatureA2A)
	script := BuildRegistrationScript(answers, ChainByID(answers.Chain))

	// Logical step markers in generation order.
	steps := []string{
		"requireEnv('PRIVATE_KEY')",
		"functionName: 'balanceOf'",
		"await sleep(5000)",
		"await pinMetadata(",
		"estimateContractGas",
		"(gas * 120n) / 100n",
		"waitForTransactionReceipt",
		"=== 'reverted'",
		"topics[3]",
		"'unknown'",
	}
	last := -1
	for _, step := range steps {
		idx := strings.Index(script, step)
		if idx < 0 {
			t.Fatalf("script missing step marker %q", step)
		}
		if idx < last {
			t.Fatalf("step %q appears out of order", step)
		}
		last = idx
	}

	if !strings.Contains(script, `trustModels: ["reputation"]`) {
		t.Error("trust models are not embedded verbatim")
	}
}

func TestBuildRegistrationScriptDeterministic(t *testing.T) {
	answers := sampleAnswers(FeatureA2A, FeatureMCP)
	chain := ChainByID(answers.Chain)
	if BuildRegistrationScript(answers, chain) != BuildRegistrationScript(answers, chain) {
		t.Fatal("BuildRegistrationScript is not deterministic for identical input")
	}
}
