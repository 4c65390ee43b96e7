package cli

import (
	"context"
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	pkgio "github.com/matzehuels/chainviz/pkg/io"
	"github.com/matzehuels/chainviz/pkg/markov"
)

// Threshold bounds for the explorer's decade steps.
const (
	minThreshold  = 1e-12
	maxThreshold  = 0.1
	seedThreshold = 1e-6
)

// exploreCommand creates the explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var save string

	cmd := &cobra.Command{
		Use:   "explore <chain.json>",
		Short: "Browse a chain's edges and tune the threshold interactively",
		Long: `Browse the visible transitions of a chain file.

Keys:
  ↑/↓      move through edges
  +/-      raise or lower the threshold by a decade
  t        toggle probability and timescale labels
  enter    accept (writes the chain to --save when given)
  q        quit without saving`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExplore(cmd.Context(), args[0], save)
		},
	}

	cmd.Flags().StringVar(&save, "save", "", "write the accepted options to this chain file")

	return cmd
}

// runExplore loads the chain and runs the explorer.
func (c *CLI) runExplore(ctx context.Context, input, save string) error {
	chain, err := pkgio.ImportChain(input)
	if err != nil {
		return err
	}
	if chain.NodeColor == "" {
		chain.NodeColor = c.cfg.Render.NodeColor
	}
	if chain.Threshold == nil {
		t := c.cfg.Render.Threshold
		chain.Threshold = &t
	}

	P, err := chain.Transition()
	if err != nil {
		return err
	}
	opts, err := chain.Options()
	if err != nil {
		return err
	}

	m, err := NewChainExplorerModel(P, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	result := final.(ChainExplorerModel)
	if !result.Accepted {
		printInfo("No changes")
		return nil
	}

	printSuccess("Threshold %g, %s labels", result.Options.Threshold, labelMode(result.Options))
	printStats(result.Graph.N(), len(result.Graph.Edges), false)
	if save == "" {
		printNextStep("Render with these settings", fmt.Sprintf("chainviz render %s --threshold %g%s",
			input, result.Options.Threshold, timescaleFlag(result.Options)))
		return nil
	}
	if err := pkgio.ExportChain(pkgio.NewChain(P, result.Options), save); err != nil {
		return err
	}
	printFile(save)
	return nil
}

func labelMode(opts markov.Options) string {
	if opts.UseTimescale {
		return "timescale"
	}
	return "probability"
}

func timescaleFlag(opts markov.Options) string {
	if opts.UseTimescale {
		return " --timescale"
	}
	return ""
}

// =============================================================================
// ChainExplorerModel - Interactive threshold and label tuning
// =============================================================================

// ChainExplorerModel is the bubbletea model for browsing a chain's edges.
type ChainExplorerModel struct {
	P       mat.Matrix
	Options markov.Options
	Graph   *markov.Graph

	Cursor   int
	Offset   int
	Height   int
	Accepted bool

	err error
}

// NewChainExplorerModel builds the initial graph. It fails when the matrix
// and options cannot be drawn at all.
func NewChainExplorerModel(P mat.Matrix, opts markov.Options) (ChainExplorerModel, error) {
	g, err := markov.Build(P, opts)
	if err != nil {
		return ChainExplorerModel{}, err
	}
	return ChainExplorerModel{P: P, Options: opts, Graph: g, Height: 15}, nil
}

func (m ChainExplorerModel) Init() tea.Cmd {
	return nil
}

func (m ChainExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.Accepted = true
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Graph.Edges)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "+", "=":
			m = m.withThreshold(raiseThreshold(m.Options.Threshold))
		case "-", "_":
			m = m.withThreshold(lowerThreshold(m.Options.Threshold))
		case "t":
			opts := m.Options
			opts.UseTimescale = !opts.UseTimescale
			m = m.rebuild(opts)
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ChainExplorerModel) withThreshold(t float64) ChainExplorerModel {
	opts := m.Options
	opts.Threshold = t
	return m.rebuild(opts)
}

// rebuild redraws the graph with opts. On failure the previous graph stays
// and the error is shown.
func (m ChainExplorerModel) rebuild(opts markov.Options) ChainExplorerModel {
	g, err := markov.Build(m.P, opts)
	if err != nil {
		m.err = err
		return m
	}
	m.Options, m.Graph, m.err = opts, g, nil
	if m.Cursor >= len(g.Edges) {
		m.Cursor = max(len(g.Edges)-1, 0)
	}
	if m.Offset > m.Cursor {
		m.Offset = m.Cursor
	}
	return m
}

// raiseThreshold steps up one decade, starting from seedThreshold at zero.
func raiseThreshold(t float64) float64 {
	if t <= 0 {
		return seedThreshold
	}
	return min(math.Pow10(decade(t)+1), maxThreshold)
}

// lowerThreshold steps down one decade and drops to zero below minThreshold.
func lowerThreshold(t float64) float64 {
	if t <= 0 {
		return 0
	}
	t = math.Pow10(decade(t) - 1)
	if t < minThreshold {
		return 0
	}
	return t
}

// decade returns the nearest power of ten exponent of t.
func decade(t float64) int {
	return int(math.Round(math.Log10(t)))
}

func (m ChainExplorerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Explore Chain"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  +/- threshold  t labels  ⏎ accept  q quit"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n\n",
		StyleDim.Render("states"), StyleNumber.Render(fmt.Sprint(m.Graph.N())),
		StyleDim.Render("threshold"), StyleNumber.Render(fmt.Sprintf("%g", m.Options.Threshold)),
		StyleDim.Render("labels"), StyleValue.Render(labelMode(m.Options))))

	edges := m.Graph.Edges
	end := min(m.Offset+m.Height, len(edges))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := edges[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			nodeName(m.Graph, e.From),
			nodeName(m.Graph, e.To),
			fmt.Sprintf("%.4g", e.Prob),
			e.Kind.String(),
			e.Label,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "From", "To", "P", "Kind", "Label").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			idx := m.Offset + row
			if idx >= len(edges) {
				return lipgloss.NewStyle()
			}
			if idx == m.Cursor {
				return styleSelected
			}
			if col == 4 {
				return edgeKindStyles[edges[idx].Kind]
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	if len(edges) == 0 {
		b.WriteString(StyleWarning.Render("  no transitions above the threshold"))
	} else {
		b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(edges))))
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(styleIconError.Render("  " + m.err.Error()))
	}

	return b.String()
}

// nodeName returns the node's label, or its default name when unlabeled.
func nodeName(g *markov.Graph, i int) string {
	if l := g.Nodes[i].Label; l != "" {
		return l
	}
	return markov.StateLabel(i)
}
