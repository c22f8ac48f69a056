package scaffold

import (
	"fmt"
	"strings"
)

// BuildReadme renders the project README: identifiers, wallet and contract
// addresses, setup steps, and one section plus one directory-tree entry per
// enabled feature.
func BuildReadme(answers WizardAnswers, chain ChainConfig) string {
	contracts := SelectContracts(answers.Chain)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", answers.AgentName)
	if answers.AgentDescription != "" {
		fmt.Fprintf(&b, "%s\n\n", answers.AgentDescription)
	}

	fmt.Fprintf(&b, `## Network

| | |
| --- | --- |
| Chain | %s (chain id %d) |
| RPC | %s |
| Explorer | %s |
| Agent wallet | %s |
| Identity registry | %s |
| Reputation registry | %s |

## Setup

1. Install dependencies:

   npm install

2. Copy the environment template and fill in your secrets:

   cp .env.example .env

3. Register the agent on-chain:

   npm run register

The registration script pins your agent metadata to IPFS via Pinata and
submits a register transaction to the identity registry. It prints the
minted agent id and an explorer link when it completes.
`,
		chain.Name, chain.ChainID, chain.RPCURL, chain.ScanPath,
		answers.AgentWallet,
		contracts.IdentityRegistry.Hex(),
		contracts.ReputationRegistry.Hex(),
	)

	if answers.HasFeature(FeatureA2A) {
		fmt.Fprintf(&b, `
## Start the A2A server

   npm run start:a2a

Serves the agent card at /.well-known/agent-card.json and accepts JSON-RPC
messages on /a2a (port %d by default).
`, a2aDefaultPort)
	}
	if answers.HasFeature(FeatureMCP) {
		b.WriteString(`
## Start the MCP server

   npm run start:mcp

Exposes the agent's tools to MCP clients over stdio.
`)
	}

	b.WriteString(`
## Project layout

` + "```" + `
.
├── package.json
├── .env.example
├── scripts/
│   └── register.ts
`)
	hasA2A := answers.HasFeature(FeatureA2A)
	hasMCP := answers.HasFeature(FeatureMCP)
	switch {
	case hasA2A && hasMCP:
		b.WriteString("├── src/\n│   ├── a2a-server.ts\n│   └── mcp-server.ts\n")
	case hasA2A:
		b.WriteString("├── src/\n│   └── a2a-server.ts\n")
	case hasMCP:
		b.WriteString("├── src/\n│   └── mcp-server.ts\n")
	}
	b.WriteString("└── README.md\n" + "```" + "\n")

	return b.String()
}
