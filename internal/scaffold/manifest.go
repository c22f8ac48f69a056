package scaffold

import "encoding/json"

// Base manifest entries shared by every generated project. Feature checks
// run in a fixed order (a2a before mcp) so two projects with the same
// answers always serialize identically.
var (
	baseScripts = [][2]string{
		{"register", "tsx scripts/register.ts"},
	}
	baseDependencies = [][2]string{
		{"dotenv", "^16.4.5"},
		{"viem", "^2.21.0"},
	}
	baseDevDependencies = [][2]string{
		{"@types/node", "^22.0.0"},
		{"tsx", "^4.19.0"},
		{"typescript", "^5.6.0"},
	}
)

// BuildManifest renders the package.json for the scaffolded project. Keys
// are emitted in insertion order with two-space indentation: scripts,
// dependencies, devDependencies, each with base entries first and
// feature-gated additions after.
func BuildManifest(answers WizardAnswers) string {
	scripts := newOrderedObject()
	for _, kv := range baseScripts {
		scripts.Set(kv[0], kv[1])
	}

	deps := newOrderedObject()
	for _, kv := range baseDependencies {
		deps.Set(kv[0], kv[1])
	}

	devDeps := newOrderedObject()
	for _, kv := range baseDevDependencies {
		devDeps.Set(kv[0], kv[1])
	}

	if answers.HasFeature(FeatureA2A) {
		scripts.Set("start:a2a", "tsx src/a2a-server.ts")
		deps.Set("express", "^4.21.0")
		deps.Set("uuid", "^10.0.0")
		devDeps.Set("@types/express", "^4.17.21")
		devDeps.Set("@types/uuid", "^10.0.0")
	}
	if answers.HasFeature(FeatureMCP) {
		scripts.Set("start:mcp", "tsx src/mcp-server.ts")
		deps.Set("@modelcontextprotocol/sdk", "^1.0.0")
	}

	manifest := newOrderedObject().
		Set("name", answers.PackageName()).
		Set("version", "0.1.0").
		Set("private", true).
		Set("type", "module").
		Set("scripts", scripts).
		Set("dependencies", deps).
		Set("devDependencies", devDeps)

	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		// orderedObject only holds strings and bools; marshaling them
		// cannot fail.
		panic(err)
	}
	return string(out) + "\n"
}
