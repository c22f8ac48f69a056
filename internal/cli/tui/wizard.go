// Package tui implements the interactive wizard that collects the answers
// a new agent project is generated from.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/agentforge-dev/agentforge/internal/cli/tui/theme"
	"github.com/agentforge-dev/agentforge/internal/scaffold"
	"github.com/agentforge-dev/agentforge/internal/wallet"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

type wizardStep int

const (
	stepName wizardStep = iota
	stepDescription
	stepImage
	stepChain
	stepFeatures
	stepTrustModels
	stepWallet
	stepWalletAddress
	stepDone
)

const totalSteps = 7

// wallet source choices
const (
	walletGenerate = "Generate a fresh wallet (key goes into .env.example)"
	walletExisting = "Use an existing wallet address"
)

type featureChoice struct {
	id      string
	label   string
	enabled bool
}

// CreateWizard walks the user through the answers for a new project.
type CreateWizard struct {
	width  int
	height int

	step   wizardStep
	result scaffold.WizardAnswers
	ok     bool
	errMsg string

	nameInput    textinput.Model
	descInput    textinput.Model
	imageInput   textinput.Model
	trustInput   textinput.Model
	addressInput textinput.Model

	chainList  list.Model
	walletList list.Model

	features       []featureChoice
	featuresCursor int
}

// NewCreateWizard builds a wizard with the chain list preselected to the
// configured default chain.
func NewCreateWizard(defaultChain string) *CreateWizard {
	mk := func(ph string, w int) textinput.Model {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = ph
		ti.Width = w
		return ti
	}

	chains := scaffold.SupportedChains()
	chainItems := make([]list.Item, len(chains))
	selected := 0
	for i, c := range chains {
		chainItems[i] = choiceItem{fmt.Sprintf("%s (%s)", c.Name, c.ID)}
		if c.ID == defaultChain {
			selected = i
		}
	}
	cl := list.New(chainItems, choiceDelegate{}, 50, 10)
	cl.Title = "Target chain"
	cl.SetShowStatusBar(false)
	cl.SetFilteringEnabled(false)
	cl.Styles.Title = lipgloss.NewStyle().Bold(true)
	cl.Select(selected)

	wl := list.New([]list.Item{
		choiceItem{walletGenerate},
		choiceItem{walletExisting},
	}, choiceDelegate{}, 60, 8)
	wl.Title = "Agent wallet"
	wl.SetShowStatusBar(false)
	wl.SetFilteringEnabled(false)
	wl.Styles.Title = lipgloss.NewStyle().Bold(true)

	w := &CreateWizard{
		step:         stepName,
		nameInput:    mk("Demo Agent", 40),
		descInput:    mk("What does this agent do? (optional)", 60),
		imageInput:   mk("https://example.com/agent.png (optional)", 60),
		trustInput:   mk("comma-separated, e.g. reputation (optional)", 60),
		addressInput: mk("0x...", 50),
		chainList:    cl,
		walletList:   wl,
		features: []featureChoice{
			{id: scaffold.FeatureA2A, label: "A2A server (agent-to-agent JSON-RPC)"},
			{id: scaffold.FeatureMCP, label: "MCP server (tools over stdio)"},
		},
	}
	w.nameInput.Focus()
	return w
}

// Ok reports whether the wizard finished with a complete answer set.
func (w *CreateWizard) Ok() bool { return w.ok }

// Result returns the collected answers; valid only when Ok is true.
func (w *CreateWizard) Result() scaffold.WizardAnswers { return w.result }

func (w *CreateWizard) Init() tea.Cmd {
	return textinput.Blink
}

func (w *CreateWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		w.width, w.height = m.Width, m.Height
		w.chainList.SetSize(maxInt(50, m.Width-20), maxInt(8, m.Height-12))
		w.walletList.SetSize(maxInt(60, m.Width-20), maxInt(6, m.Height-12))
		return w, nil
	case tea.KeyMsg:
		switch m.String() {
		case "ctrl+c":
			return w, tea.Quit
		case "esc":
			if w.step == stepName {
				return w, tea.Quit
			}
			w.errMsg = ""
			w.prevStep()
			return w, nil
		case "enter":
			return w, w.onEnter()
		case " ":
			if w.step == stepFeatures {
				w.features[w.featuresCursor].enabled = !w.features[w.featuresCursor].enabled
				return w, nil
			}
		case "up", "k":
			if w.step == stepFeatures {
				if w.featuresCursor > 0 {
					w.featuresCursor--
				}
				return w, nil
			}
		case "down", "j":
			if w.step == stepFeatures {
				if w.featuresCursor < len(w.features)-1 {
					w.featuresCursor++
				}
				return w, nil
			}
		}
	}

	var cmd tea.Cmd
	switch w.step {
	case stepName:
		w.nameInput, cmd = w.nameInput.Update(msg)
	case stepDescription:
		w.descInput, cmd = w.descInput.Update(msg)
	case stepImage:
		w.imageInput, cmd = w.imageInput.Update(msg)
	case stepChain:
		w.chainList, cmd = w.chainList.Update(msg)
	case stepTrustModels:
		w.trustInput, cmd = w.trustInput.Update(msg)
	case stepWallet:
		w.walletList, cmd = w.walletList.Update(msg)
	case stepWalletAddress:
		w.addressInput, cmd = w.addressInput.Update(msg)
	}
	return w, cmd
}

func (w *CreateWizard) View() string {
	header := theme.HeadingStyle().Render(
		fmt.Sprintf("New agent project  —  Step %d/%d", w.stepPosition(), totalSteps))

	var body string
	switch w.step {
	case stepName:
		body = w.labeled("Agent name", w.nameInput.View()) + w.errorView()
	case stepDescription:
		body = w.labeled("Description", w.descInput.View()) + w.errorView()
	case stepImage:
		body = w.labeled("Image URL", w.imageInput.View()) + w.errorView()
	case stepChain:
		body = w.chainList.View() + w.errorView()
	case stepFeatures:
		body = w.renderFeatures()
	case stepTrustModels:
		body = w.labeled("Trust models", w.trustInput.View()) + w.errorView()
	case stepWallet:
		body = w.walletList.View() + w.errorView()
	case stepWalletAddress:
		body = w.labeled("Wallet address", w.addressInput.View()) + w.errorView()
	case stepDone:
		body = theme.HeadingStyle().Render("Done")
	}

	help := theme.StatusStyle().Render(
		wordwrap.String("enter: continue · esc: back · ctrl+c: quit", maxInt(40, w.width-10)))

	inner := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", help)
	box := lipgloss.NewStyle().Padding(1, 2).Render(inner)
	if w.width == 0 {
		return box
	}
	return lipgloss.Place(w.width, w.height, lipgloss.Center, lipgloss.Center, box)
}

func (w *CreateWizard) onEnter() tea.Cmd {
	w.errMsg = ""
	switch w.step {
	case stepName:
		name := strings.TrimSpace(w.nameInput.Value())
		if name == "" {
			w.errMsg = "Agent name is required"
			return nil
		}
		w.result.AgentName = name
		w.step = stepDescription
		w.descInput.Focus()
		return nil
	case stepDescription:
		w.result.AgentDescription = strings.TrimSpace(w.descInput.Value())
		w.step = stepImage
		w.imageInput.Focus()
		return nil
	case stepImage:
		w.result.AgentImage = strings.TrimSpace(w.imageInput.Value())
		w.step = stepChain
		return nil
	case stepChain:
		chains := scaffold.SupportedChains()
		idx := w.chainList.Index()
		if idx < 0 || idx >= len(chains) {
			return nil
		}
		w.result.Chain = chains[idx].ID
		w.step = stepFeatures
		return nil
	case stepFeatures:
		w.result.Features = nil
		for _, f := range w.features {
			if f.enabled {
				w.result.Features = append(w.result.Features, f.id)
			}
		}
		w.step = stepTrustModels
		w.trustInput.Focus()
		return nil
	case stepTrustModels:
		w.result.TrustModels = splitCSV(w.trustInput.Value())
		w.step = stepWallet
		return nil
	case stepWallet:
		it, ok := w.walletList.SelectedItem().(choiceItem)
		if !ok {
			return nil
		}
		if it.Title() == walletGenerate {
			kp, err := wallet.Generate()
			if err != nil {
				w.errMsg = err.Error()
				return nil
			}
			w.result.AgentWallet = kp.Address
			w.result.GeneratedPrivateKey = kp.PrivateKeyHex
			return w.finish()
		}
		w.step = stepWalletAddress
		w.addressInput.Focus()
		return nil
	case stepWalletAddress:
		addr := strings.TrimSpace(w.addressInput.Value())
		if err := wallet.ValidateAddress(addr); err != nil {
			w.errMsg = err.Error()
			return nil
		}
		w.result.AgentWallet = addr
		return w.finish()
	}
	return nil
}

func (w *CreateWizard) finish() tea.Cmd {
	w.result.ProjectDir = w.result.PackageName()
	w.step = stepDone
	w.ok = true
	return tea.Quit
}

func (w *CreateWizard) prevStep() {
	switch w.step {
	case stepDescription:
		w.step = stepName
	case stepImage:
		w.step = stepDescription
	case stepChain:
		w.step = stepImage
	case stepFeatures:
		w.step = stepChain
	case stepTrustModels:
		w.step = stepFeatures
	case stepWallet:
		w.step = stepTrustModels
	case stepWalletAddress:
		w.step = stepWallet
	default:
		w.step = stepName
	}
}

// stepPosition maps the current step to a display position; the wallet
// address entry shares the wallet step's slot.
func (w *CreateWizard) stepPosition() int {
	switch w.step {
	case stepName:
		return 1
	case stepDescription:
		return 2
	case stepImage:
		return 3
	case stepChain:
		return 4
	case stepFeatures:
		return 5
	case stepTrustModels:
		return 6
	default:
		return 7
	}
}

func (w *CreateWizard) renderFeatures() string {
	var sb strings.Builder
	sb.WriteString(theme.StatusStyle().Render("Optional features (space to toggle, enter to continue)"))
	sb.WriteString("\n\n")
	for i, f := range w.features {
		mark := "[ ]"
		if f.enabled {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, f.label)
		if i == w.featuresCursor {
			line = lipgloss.NewStyle().Foreground(theme.ColorPrimary).Render("> " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(w.errorView())
	return sb.String()
}

func (w *CreateWizard) labeled(label, view string) string {
	return lipgloss.JoinHorizontal(lipgloss.Left, theme.StatusStyle().Render(label+": "), view)
}

func (w *CreateWizard) errorView() string {
	if strings.TrimSpace(w.errMsg) == "" {
		return ""
	}
	return theme.ErrorStyle().Render("\nError: " + w.errMsg)
}

// choice list items
type choiceItem struct{ label string }

func (i choiceItem) Title() string       { return i.label }
func (i choiceItem) Description() string { return "" }
func (i choiceItem) FilterValue() string { return i.label }

type choiceDelegate struct{}

func (d choiceDelegate) Height() int                             { return 1 }
func (d choiceDelegate) Spacing() int                            { return 0 }
func (d choiceDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d choiceDelegate) Render(out io.Writer, m list.Model, index int, it list.Item) {
	i, ok := it.(choiceItem)
	if !ok {
		return
	}
	str := fmt.Sprintf("%d. %s", index+1, i.Title())
	normal := lipgloss.NewStyle().PaddingLeft(2)
	selected := lipgloss.NewStyle().PaddingLeft(1).Foreground(theme.ColorPrimary)
	if index == m.Index() {
		_, _ = out.Write([]byte(selected.Render("> " + str)))
	} else {
		_, _ = out.Write([]byte(normal.Render(str)))
	}
}

// splitCSV splits comma-separated values, trimming whitespace and skipping empties
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		v := strings.TrimSpace(p)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// maxInt returns the maximum of two ints
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
