package scaffold

import (
	"fmt"
	"strings"
)

// Default local ports for the optional feature servers. The metadata
// service endpoints and the generated server sources must agree on these.
const (
	a2aDefaultPort = 41241
	mcpDefaultPort = 3001

	a2aProtocolVersion = "0.3.0"
	mcpProtocolVersion = "2025-06-18"
)

// jsEscape escapes double quotes in free text interpolated into generated
// script string literals. Other control characters are deliberately left
// alone; answers are maintainer-authored, not adversarial input.
func jsEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// servicesLiteral renders the metadata services array, one entry per
// enabled feature, a2a before mcp.
func servicesLiteral(answers WizardAnswers) string {
	var entries []string
	if answers.HasFeature(FeatureA2A) {
		entries = append(entries, fmt.Sprintf(
			`    { "name": "A2A", "endpoint": "http://localhost:%d/a2a", "version": "%s" }`,
			a2aDefaultPort, a2aProtocolVersion))
	}
	if answers.HasFeature(FeatureMCP) {
		entries = append(entries, fmt.Sprintf(
			`    { "name": "MCP", "endpoint": "http://localhost:%d/mcp", "version": "%s" }`,
			mcpDefaultPort, mcpProtocolVersion))
	}
	if len(entries) == 0 {
		return "[]"
	}
	return "[\n" + strings.Join(entries, ",\n") + "\n  ]"
}

// trustModelsLiteral renders the trustModels array verbatim from answers.
func trustModelsLiteral(answers WizardAnswers) string {
	if len(answers.TrustModels) == 0 {
		return "[]"
	}
	quoted := make([]string, len(answers.TrustModels))
	for i, m := range answers.TrustModels {
		quoted[i] = `"` + jsEscape(m) + `"`
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// BuildRegistrationScript renders scripts/register.ts: a viem-based script
// that pins the agent metadata to IPFS and registers the agent with the
// identity registry. The generator only produces the text; none of the
// steps run at generation time.
func BuildRegistrationScript(answers WizardAnswers, chain ChainConfig) string {
	contracts := SelectContracts(answers.Chain)

	var b strings.Builder
	fmt.Fprintf(&b, `import 'dotenv/config';
import { createPublicClient, createWalletClient, defineChain, http, parseAbi } from 'viem';
import { privateKeyToAccount } from 'viem/accounts';

const IDENTITY_REGISTRY = '%s';
const REPUTATION_REGISTRY = '%s';
const TRANSFER_TOPIC = '0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef';

const registryAbi = parseAbi([
  'function register(string tokenURI) returns (uint256)',
  'function balanceOf(address owner) view returns (uint256)',
]);

const chain = defineChain({
  id: %d,
  name: '%s',
  nativeCurrency: { name: 'Monad', symbol: 'MON', decimals: 18 },
  rpcUrls: { default: { http: [process.env.RPC_URL ?? '%s'] } },
});

function requireEnv(name) {
  const value = process.env[name];
  if (!value) {
    console.error('Missing required environment variable: ' + name);
    console.error('Copy .env.example to .env and fill in the blanks.');
    process.exit(1);
  }
  return value;
}

function sleep(ms) {
  return new Promise((resolve) => setTimeout(resolve, ms));
}

async function pinMetadata(metadata) {
  const jwt = process.env.PINATA_JWT;
  if (!jwt || jwt === 'your_pinata_jwt_here') {
    throw new Error('PINATA_JWT is not set; cannot upload agent metadata to IPFS');
  }
  const res = await fetch('https://api.pinata.cloud/pinning/pinJSONToIPFS', {
    method: 'POST',
    headers: {
      'Content-Type': 'application/json',
      Authorization: 'Bearer ' + jwt,
    },
    body: JSON.stringify({ pinataContent: metadata }),
  });
  if (!res.ok) {
    throw new Error('IPFS upload failed: ' + res.status + ' ' + res.statusText);
  }
  const body = await res.json();
  return 'ipfs://' + body.IpfsHash;
}

async function main() {
  const privateKey = requireEnv('PRIVATE_KEY');
  requireEnv('RPC_URL');

  const account = privateKeyToAccount(
    privateKey.startsWith('0x') ? privateKey : '0x' + privateKey,
  );
  const publicClient = createPublicClient({ chain, transport: http() });
  const walletClient = createWalletClient({ account, chain, transport: http() });

  const agentCount = await publicClient.readContract({
    address: IDENTITY_REGISTRY,
    abi: registryAbi,
    functionName: 'balanceOf',
    args: [account.address],
  });
  if (agentCount > 0n) {
    console.warn('Wallet ' + account.address + ' already controls ' + agentCount + ' agent(s).');
    console.warn('Continuing with a new registration in 5 seconds, press Ctrl-C to abort...');
    await sleep(5000);
  }

  const metadata = {
    name: "%s",
    description: "%s",
    image: "%s",
    services: %s,
    trustModels: %s,
  };

  console.log('Uploading agent metadata to IPFS...');
  const tokenURI = await pinMetadata(metadata);
  console.log('Pinned metadata at ' + tokenURI);

  const gas = await publicClient.estimateContractGas({
    account,
    address: IDENTITY_REGISTRY,
    abi: registryAbi,
    functionName: 'register',
    args: [tokenURI],
  });
  const gasLimit = (gas * 120n) / 100n;

  const hash = await walletClient.writeContract({
    address: IDENTITY_REGISTRY,
    abi: registryAbi,
    functionName: 'register',
    args: [tokenURI],
    gas: gasLimit,
  });
  console.log('Registration transaction sent: ' + hash);

  const receipt = await publicClient.waitForTransactionReceipt({ hash });
  if (receipt.status === 'reverted') {
    console.error('Registration transaction reverted: ' + hash);
    process.exit(1);
  }

  const mintLog = receipt.logs.find(
    (log) => log.topics[0] === TRANSFER_TOPIC && log.topics.length > 3,
  );
  const agentId = mintLog ? BigInt(mintLog.topics[3]).toString() : 'unknown';

  console.log('');
  console.log('Agent registered successfully');
  console.log('  Name:        %s');
  console.log('  Agent ID:    ' + agentId);
  console.log('  Wallet:      ' + account.address);
  console.log('  Reputation:  ' + REPUTATION_REGISTRY);
  console.log('  Transaction: %s/tx/' + hash);
}

main().catch((err) => {
  console.error(err);
  process.exit(1);
});
`,
		contracts.IdentityRegistry.Hex(),
		contracts.ReputationRegistry.Hex(),
		chain.ChainID,
		chain.Name,
		chain.RPCURL,
		jsEscape(answers.AgentName),
		jsEscape(answers.AgentDescription),
		jsEscape(answers.AgentImage),
		servicesLiteral(answers),
		trustModelsLiteral(answers),
		jsEscape(answers.AgentName),
		chain.ScanPath,
	)
	return b.String()
}
