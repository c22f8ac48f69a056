package cli

import (
	"fmt"
	"strings"

	"github.com/agentforge-dev/agentforge/internal/cli/tui"
	"github.com/agentforge-dev/agentforge/internal/scaffold"
	"github.com/agentforge-dev/agentforge/internal/wallet"
	"github.com/agentforge-dev/agentforge/pkg/validators"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create [project-dir]",
	Short: "Generate a new agent project",
	Long: `Generate a new agent project: package manifest, environment template,
chain registration script, README, and optional A2A/MCP servers.

Run without flags for the interactive wizard, or supply answers directly:

  agentforge create my-agent --name "Demo Agent" --chain monad-testnet \
    --features a2a --trust-models reputation --generate-wallet`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

var (
	createName        string
	createDescription string
	createImage       string
	createChain       string
	createFeatures    []string
	createTrust       []string
	createWallet      string
	createGenWallet   bool
	createVerbose     bool
)

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Agent name")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Agent description")
	createCmd.Flags().StringVar(&createImage, "image", "", "Agent image URL embedded in metadata")
	createCmd.Flags().StringVar(&createChain, "chain", "", "Target chain (see 'agentforge chains')")
	createCmd.Flags().StringSliceVar(&createFeatures, "features", nil, "Optional features to enable (a2a, mcp)")
	createCmd.Flags().StringSliceVar(&createTrust, "trust-models", nil, "Trust model identifiers embedded verbatim in metadata")
	createCmd.Flags().StringVar(&createWallet, "wallet", "", "Existing wallet address controlling the agent")
	createCmd.Flags().BoolVar(&createGenWallet, "generate-wallet", false, "Generate a fresh wallet for the agent")
	createCmd.Flags().BoolVarP(&createVerbose, "verbose", "v", false, "Print each generated file")
}

func runCreate(cmd *cobra.Command, args []string) error {
	var answers scaffold.WizardAnswers
	if createName == "" {
		collected, err := runWizard()
		if err != nil {
			return err
		}
		if collected == nil {
			// User quit the wizard; not an error.
			return nil
		}
		answers = *collected
	} else {
		built, err := answersFromFlags()
		if err != nil {
			return err
		}
		answers = built
	}

	if len(args) > 0 {
		answers.ProjectDir = args[0]
	}
	if answers.ProjectDir == "" {
		answers.ProjectDir = answers.PackageName()
	}
	if err := validators.ValidateProjectDir(answers.ProjectDir); err != nil {
		return err
	}

	files := scaffold.GenerateProject(answers)
	writer := scaffold.NewWriter(answers.ProjectDir, createVerbose || settings.Verbose)
	if err := writer.WriteAll(files); err != nil {
		return err
	}

	record := scaffold.NewRecord(answers)
	if err := scaffold.NewRecordManager(answers.ProjectDir).Save(record); err != nil {
		return err
	}

	printCreateSummary(answers)
	return nil
}

// answersFromFlags validates the non-interactive flag set into answers.
func answersFromFlags() (scaffold.WizardAnswers, error) {
	var answers scaffold.WizardAnswers

	if err := validators.ValidateAgentName(createName); err != nil {
		return answers, fmt.Errorf("invalid agent name: %w", err)
	}

	chain := createChain
	if chain == "" {
		chain = settings.DefaultChain
	}
	if !scaffold.IsSupportedChain(chain) {
		ids := make([]string, 0, 2)
		for _, c := range scaffold.SupportedChains() {
			ids = append(ids, c.ID)
		}
		return answers, fmt.Errorf("unsupported chain %q, expected one of: %s", chain, strings.Join(ids, ", "))
	}

	for _, f := range createFeatures {
		if f != scaffold.FeatureA2A && f != scaffold.FeatureMCP {
			return answers, fmt.Errorf("unsupported feature %q, expected a2a or mcp", f)
		}
	}

	image := createImage
	if image == "" {
		image = settings.DefaultImage
	}

	answers = scaffold.WizardAnswers{
		AgentName:        strings.TrimSpace(createName),
		AgentDescription: strings.TrimSpace(createDescription),
		AgentImage:       image,
		Features:         createFeatures,
		Chain:            chain,
		TrustModels:      createTrust,
	}

	switch {
	case createGenWallet:
		kp, err := wallet.Generate()
		if err != nil {
			return answers, err
		}
		answers.AgentWallet = kp.Address
		answers.GeneratedPrivateKey = kp.PrivateKeyHex
	case createWallet != "":
		if err := wallet.ValidateAddress(createWallet); err != nil {
			return answers, err
		}
		answers.AgentWallet = createWallet
	default:
		return answers, fmt.Errorf("either --wallet or --generate-wallet is required")
	}

	return answers, nil
}

// runWizard launches the interactive TUI and returns the collected
// answers, or nil if the user aborted.
func runWizard() (*scaffold.WizardAnswers, error) {
	w := tui.NewCreateWizard(settings.DefaultChain)
	if _, err := tea.NewProgram(w, tea.WithAltScreen()).Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}
	if !w.Ok() {
		return nil, nil
	}
	answers := w.Result()
	return &answers, nil
}

func printCreateSummary(answers scaffold.WizardAnswers) {
	chain := scaffold.ChainByID(answers.Chain)

	fmt.Printf("✓ Successfully created agent project: %s\n", answers.ProjectDir)
	fmt.Printf("  Chain: %s (chain id %d)\n", chain.Name, chain.ChainID)
	fmt.Printf("  Wallet: %s\n", answers.AgentWallet)
	if answers.GeneratedPrivateKey != "" {
		fmt.Printf("  A fresh wallet key was written to %s/.env.example — keep it secret.\n", answers.ProjectDir)
	}
	fmt.Printf("\nNext steps:\n")
	fmt.Printf("  1. cd %s\n", answers.ProjectDir)
	fmt.Printf("  2. npm install\n")
	fmt.Printf("  3. cp .env.example .env  # then fill in PINATA_JWT\n")
	fmt.Printf("  4. npm run register\n")
	step := 5
	if answers.HasFeature(scaffold.FeatureA2A) {
		fmt.Printf("  %d. npm run start:a2a\n", step)
		step++
	}
	if answers.HasFeature(scaffold.FeatureMCP) {
		fmt.Printf("  %d. npm run start:mcp\n", step)
	}
}
