package scaffold

import "fmt"

// Placeholder values for secrets the user fills in after generation. The
// variable names and their order are a contract with the generated
// registration script; do not reorder.
const (
	privateKeyPlaceholder = "your_private_key_here"
	pinataJWTPlaceholder  = "your_pinata_jwt_here"
	openAIKeyPlaceholder  = "your_openai_api_key_here"
)

// BuildEnvTemplate renders the .env template: exactly one line per
// variable, fixed order. A wallet key generated during the wizard is
// substituted verbatim; otherwise a placeholder literal is emitted.
func BuildEnvTemplate(answers WizardAnswers, chain ChainConfig) string {
	privateKey := answers.GeneratedPrivateKey
	if privateKey == "" {
		privateKey = privateKeyPlaceholder
	}

	return fmt.Sprintf(`PRIVATE_KEY=%s
RPC_URL=%s
PINATA_JWT=%s
OPENAI_API_KEY=%s
`, privateKey, chain.RPCURL, pinataJWTPlaceholder, openAIKeyPlaceholder)
}
