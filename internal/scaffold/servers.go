package scaffold

import (
	"fmt"
	"strings"
)

// BuildA2AServer renders src/a2a-server.ts: an express app that serves the
// agent card and dispatches JSON-RPC messages. Payment handling is a thin
// pass-through that surfaces the facilitator requirements header; actual
// settlement belongs to the facilitator SDK the user wires in later.
func BuildA2AServer(answers WizardAnswers) string {
	var b strings.Builder
	fmt.Fprintf(&b, `import express from 'express';
import { v4 as uuidv4 } from 'uuid';

const PORT = Number(process.env.A2A_PORT ?? %d);

const agentCard = {
  name: "%s",
  description: "%s",
  url: 'http://localhost:' + PORT + '/a2a',
  version: '0.1.0',
  protocolVersion: '%s',
  capabilities: { streaming: false },
  skills: [],
};

const app = express();
app.use(express.json());

// Payment middleware: pass-through that advertises payment requirements.
// Replace with your payment facilitator's middleware to enforce them.
app.use('/a2a', (req, res, next) => {
  res.setHeader('x-payment-required', 'false');
  next();
});

app.get('/.well-known/agent-card.json', (req, res) => {
  res.json(agentCard);
});

app.post('/a2a', (req, res) => {
  const { jsonrpc, id, method, params } = req.body ?? {};
  if (jsonrpc !== '2.0' || !method) {
    res.status(400).json({
      jsonrpc: '2.0',
      id: id ?? null,
      error: { code: -32600, message: 'Invalid Request' },
    });
    return;
  }

  if (method === 'message/send') {
    const text = params?.message?.parts?.[0]?.text ?? '';
    res.json({
      jsonrpc: '2.0',
      id,
      result: {
        kind: 'message',
        messageId: uuidv4(),
        role: 'agent',
        parts: [{ kind: 'text', text: 'Echo from %s: ' + text }],
      },
    });
    return;
  }

  res.json({
    jsonrpc: '2.0',
    id,
    error: { code: -32601, message: 'Method not found: ' + method },
  });
});

app.listen(PORT, () => {
  console.log('A2A server listening on http://localhost:' + PORT);
});
`,
		a2aDefaultPort,
		jsEscape(answers.AgentName),
		jsEscape(answers.AgentDescription),
		a2aProtocolVersion,
		jsEscape(answers.AgentName),
	)
	return b.String()
}

// BuildMCPServer renders src/mcp-server.ts: a stdio MCP server exposing a
// single tool that reports the agent's registration details.
func BuildMCPServer(answers WizardAnswers) string {
	var b strings.Builder
	fmt.Fprintf(&b, `import { McpServer } from '@modelcontextprotocol/sdk/server/mcp.js';
import { StdioServerTransport } from '@modelcontextprotocol/sdk/server/stdio.js';

const server = new McpServer({
  name: "%s",
  version: '0.1.0',
});

server.tool(
  'agent_info',
  'Describe this agent and how it is registered on-chain',
  {},
  async () => ({
    content: [
      {
        type: 'text',
        text: JSON.stringify({
          name: "%s",
          description: "%s",
          wallet: '%s',
        }),
      },
    ],
  }),
);

const transport = new StdioServerTransport();
await server.connect(transport);
`,
		jsEscape(answers.AgentName),
		jsEscape(answers.AgentName),
		jsEscape(answers.AgentDescription),
		answers.AgentWallet,
	)
	return b.String()
}

// BuildTSConfig renders the fixed tsconfig.json every project gets.
func BuildTSConfig() string {
	return `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "NodeNext",
    "moduleResolution": "NodeNext",
    "strict": true,
    "esModuleInterop": true,
    "skipLibCheck": true
  },
  "include": ["scripts", "src"]
}
`
}

// BuildGitignore renders the fixed .gitignore every project gets.
func BuildGitignore() string {
	return `.env
node_modules/
dist/
`
}
