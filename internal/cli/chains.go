package cli

import (
	"os"

	"github.com/agentforge-dev/agentforge/internal/scaffold"
	"github.com/agentforge-dev/agentforge/pkg/printer"
	"github.com/spf13/cobra"
)

var chainsNoHeaders bool

var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "List supported target chains",
	RunE:  runChains,
}

func init() {
	chainsCmd.Flags().BoolVar(&chainsNoHeaders, "no-headers", false, "Omit column headers")
}

func runChains(cmd *cobra.Command, args []string) error {
	opts := []printer.Option{}
	if chainsNoHeaders {
		opts = append(opts, printer.WithNoHeaders())
	}

	p := printer.NewTablePrinter(os.Stdout, opts...)
	p.SetHeaders("chain", "name", "chain id", "rpc", "explorer")
	for _, c := range scaffold.SupportedChains() {
		p.AddRow(c.ID, c.Name, c.ChainID, c.RPCURL, c.ScanPath)
	}
	return p.Render()
}
