package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/core/board"
	"github.com/matzehuels/gridboard/pkg/errors"
	"github.com/matzehuels/gridboard/pkg/observability"
	"github.com/matzehuels/gridboard/pkg/render"
)

var (
	editSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	editDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// editCommand opens an interactive editor for one board.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <board>",
		Short: "Edit a board interactively",
		Long: `Edit a board in the terminal.

Keys:
  tab / shift+tab     select next / previous box
  arrows or h j k l   move the selected box one cell
  H L                 narrower / wider by one width step
  K J                 shorter / taller by one height step
  t                   park the box in the default pallete
  p                   place a parked box back on the board
  s                   save and quit
  q                   quit without saving`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeBoards,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w, err := c.openWorkspace(ctx)
			if err != nil {
				return err
			}
			defer w.Close()

			b, err := w.Open(ctx, args[0])
			if err != nil {
				return err
			}
			policy, err := board.ParseLinkPolicy(c.cfg.Engine.LinkPolicy)
			if err != nil {
				return err
			}
			// Log output would tear the alt screen.
			e := board.NewEngine(board.WithLinkPolicy(policy), board.WithHooks(observability.NoopBoardHooks{}))

			final, err := tea.NewProgram(newEditModel(b, e), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			if err != nil {
				return fmt.Errorf("run editor: %w", err)
			}
			m := final.(editModel)
			if !m.save {
				printInfo("Discarded changes")
				return nil
			}
			if _, err := w.Put(ctx, m.board.Snapshot()); err != nil {
				return err
			}
			printSuccess("Saved %s (%d changes)", StyleHighlight.Render(b.ID()), m.changes)
			return nil
		},
	}
}

// =============================================================================
// editModel - interactive board editor
// =============================================================================

// editModel is the bubbletea model for the board editor. Each key applies
// one engine operation to the in-memory board; rejected operations only
// update the status line.
type editModel struct {
	board   *board.Board
	engine  *board.Engine
	ids     []string
	cursor  int
	status  string
	failed  bool
	changes int
	save    bool
}

func newEditModel(b *board.Board, e *board.Engine) editModel {
	m := editModel{board: b, engine: e}
	for _, x := range b.AllBoxes() {
		m.ids = append(m.ids, x.ID())
	}
	return m
}

func (m editModel) selected() *board.Box {
	if len(m.ids) == 0 {
		return nil
	}
	x, _ := m.board.Box(m.ids[m.cursor])
	return x
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "s":
		m.save = true
		return m, tea.Quit
	case "tab":
		if len(m.ids) > 0 {
			m.cursor = (m.cursor + 1) % len(m.ids)
		}
		return m, nil
	case "shift+tab":
		if len(m.ids) > 0 {
			m.cursor = (m.cursor + len(m.ids) - 1) % len(m.ids)
		}
		return m, nil
	}

	box := m.selected()
	if box == nil {
		return m, nil
	}
	r := box.Dimensions()
	c := box.Constraints()

	var err error
	switch key.String() {
	case "left", "h":
		_, err = m.engine.MoveTo(m.board, box, r.Left-1, r.Top)
	case "right", "l":
		_, err = m.engine.MoveTo(m.board, box, r.Left+1, r.Top)
	case "up", "k":
		_, err = m.engine.MoveTo(m.board, box, r.Left, r.Top-1)
	case "down", "j":
		_, err = m.engine.MoveTo(m.board, box, r.Left, r.Top+1)
	case "H":
		r.Width -= c.WidthStep
		_, err = m.engine.Resize(m.board, box, r)
	case "L":
		r.Width += c.WidthStep
		_, err = m.engine.Resize(m.board, box, r)
	case "K":
		r.Height -= c.HeightStep
		_, err = m.engine.Resize(m.board, box, r)
	case "J":
		r.Height += c.HeightStep
		_, err = m.engine.Resize(m.board, box, r)
	case "t":
		_, err = m.engine.TransferToPallete(m.board, box, "")
	case "p":
		_, err = m.engine.Place(m.board, box, r)
	default:
		return m, nil
	}

	if err != nil {
		m.status, m.failed = errors.UserMessage(err), true
		return m, nil
	}
	m.changes++
	m.status, m.failed = fmt.Sprintf("%s %s", box.ID(), describe(box.Dimensions())), false
	return m, nil
}

func (m editModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Edit " + m.board.ID()))
	b.WriteString("\n")
	b.WriteString(editDimStyle.Render("tab select  arrows move  H/L J/K resize  t park  p place  s save  q quit"))
	b.WriteString("\n\n")
	b.WriteString(render.Text(m.board.Snapshot()))
	b.WriteString("\n")

	if box := m.selected(); box != nil {
		where := "board"
		if p := box.Pallete(); p != nil {
			where = "pallete " + p.ID()
		}
		b.WriteString(editSelectedStyle.Render(fmt.Sprintf("▸ %s", box.ID())))
		b.WriteString(editDimStyle.Render(fmt.Sprintf("  %s on %s", describe(box.Dimensions()), where)))
		b.WriteString("\n")
	} else {
		b.WriteString(editDimStyle.Render("no boxes"))
		b.WriteString("\n")
	}

	if m.status != "" {
		style := StyleSuccess
		if m.failed {
			style = StyleError
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}
