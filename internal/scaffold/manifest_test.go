package scaffold

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleAnswers(features ...string) WizardAnswers {
	return WizardAnswers{
		AgentName:        "Demo Agent",
		AgentDescription: "A demo agent",
		AgentImage:       "https://example.com/demo.png",
		Features:         features,
		Chain:            ChainMonadTestnet,
		TrustModels:      []string{"reputation"},
		AgentWallet:      "0x1111111111111111111111111111111111111111",
	}
}

func decodeManifest(t *testing.T, manifest string) map[string]any {
	t.Helper()
	var parsed map[string]any
	if err := json.Unmarshal([]byte(manifest), &parsed); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	return parsed
}

func section(t *testing.T, parsed map[string]any, key string) map[string]any {
	t.Helper()
	sec, ok := parsed[key].(map[string]any)
	if !ok {
		t.Fatalf("manifest is missing object section %q", key)
	}
	return sec
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		name      string
		agentName string
		want      string
	}{
		{"mixed case", "Demo Agent", "demo-agent"},
		{"internal whitespace run", "My   Cool\tAgent", "my-cool-agent"},
		{"leading and trailing space", "  Edge Agent  ", "edge-agent"},
		{"single word", "Solo", "solo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := WizardAnswers{AgentName: tt.agentName}
			if got := a.PackageName(); got != tt.want {
				t.Errorf("PackageName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildManifestBaseEntries(t *testing.T) {
	parsed := decodeManifest(t, BuildManifest(sampleAnswers()))

	if parsed["name"] != "demo-agent" {
		t.Errorf("name = %v, want demo-agent", parsed["name"])
	}

	scripts := section(t, parsed, "scripts")
	if scripts["register"] != "tsx scripts/register.ts" {
		t.Errorf("register script = %v", scripts["register"])
	}
	if len(scripts) != 1 {
		t.Errorf("expected only the base script, got %d entries", len(scripts))
	}

	deps := section(t, parsed, "dependencies")
	for _, want := range []string{"dotenv", "viem"} {
		if _, ok := deps[want]; !ok {
			t.Errorf("missing base dependency %q", want)
		}
	}
	if len(deps) != 2 {
		t.Errorf("expected 2 base dependencies, got %d", len(deps))
	}
}

func TestBuildManifestFeatureGating(t *testing.T) {
	tests := []struct {
		name         string
		features     []string
		wantScripts  []string
		wantDeps     []string
		wantDevDeps  []string
		extraScripts int
		extraDeps    int
		extraDevDeps int
	}{
		{
			name:     "no features add nothing",
			features: nil,
		},
		{
			name:         "a2a adds server deps",
			features:     []string{FeatureA2A},
			wantScripts:  []string{"start:a2a"},
			wantDeps:     []string{"express", "uuid"},
			wantDevDeps:  []string{"@types/express", "@types/uuid"},
			extraScripts: 1,
			extraDeps:    2,
			extraDevDeps: 2,
		},
		{
			name:         "mcp adds protocol sdk",
			features:     []string{FeatureMCP},
			wantScripts:  []string{"start:mcp"},
			wantDeps:     []string{"@modelcontextprotocol/sdk"},
			extraScripts: 1,
			extraDeps:    1,
		},
		{
			name:         "both features add the union",
			features:     []string{FeatureA2A, FeatureMCP},
			wantScripts:  []string{"start:a2a", "start:mcp"},
			wantDeps:     []string{"express", "uuid", "@modelcontextprotocol/sdk"},
			wantDevDeps:  []string{"@types/express", "@types/uuid"},
			extraScripts: 2,
			extraDeps:    3,
			extraDevDeps: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := decodeManifest(t, BuildManifest(sampleAnswers(tt.features...)))

			scripts := section(t, parsed, "scripts")
			deps := section(t, parsed, "dependencies")
			devDeps := section(t, parsed, "devDependencies")

			for _, want := range tt.wantScripts {
				if _, ok := scripts[want]; !ok {
					t.Errorf("missing script %q", want)
				}
			}
			for _, want := range tt.wantDeps {
				if _, ok := deps[want]; !ok {
					t.Errorf("missing dependency %q", want)
				}
			}
			for _, want := range tt.wantDevDeps {
				if _, ok := devDeps[want]; !ok {
					t.Errorf("missing devDependency %q", want)
				}
			}

			if got := len(scripts) - 1; got != tt.extraScripts {
				t.Errorf("feature scripts added = %d, want %d", got, tt.extraScripts)
			}
			if got := len(deps) - 2; got != tt.extraDeps {
				t.Errorf("feature dependencies added = %d, want %d", got, tt.extraDeps)
			}
			if got := len(devDeps) - 3; got != tt.extraDevDeps {
				t.Errorf("feature devDependencies added = %d, want %d", got, tt.extraDevDeps)
			}
		})
	}
}

func TestBuildManifestKeyOrder(t *testing.T) {
	manifest := BuildManifest(sampleAnswers(FeatureA2A, FeatureMCP))

	// Sections appear in insertion order.
	scriptsIdx := strings.Index(manifest, `"scripts"`)
	depsIdx := strings.Index(manifest, `"dependencies"`)
	devDepsIdx := strings.Index(manifest, `"devDependencies"`)
	if !(scriptsIdx < depsIdx && depsIdx < devDepsIdx) {
		t.Fatalf("sections out of order: scripts=%d dependencies=%d devDependencies=%d",
			scriptsIdx, depsIdx, devDepsIdx)
	}

	// Base entries precede feature additions, a2a additions precede mcp's.
	registerIdx := strings.Index(manifest, `"register"`)
	a2aIdx := strings.Index(manifest, `"start:a2a"`)
	mcpIdx := strings.Index(manifest, `"start:mcp"`)
	if !(registerIdx < a2aIdx && a2aIdx < mcpIdx) {
		t.Fatalf("scripts out of order: register=%d start:a2a=%d start:mcp=%d",
			registerIdx, a2aIdx, mcpIdx)
	}

	if !strings.Contains(manifest, "  \"scripts\"") {
		t.Error("expected two-space indentation")
	}
}

func TestBuildManifestDeterministic(t *testing.T) {
	answers := sampleAnswers(FeatureA2A, FeatureMCP)
	if BuildManifest(answers) != BuildManifest(answers) {
		t.Fatal("BuildManifest is not deterministic for identical input")
	}
}
