package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/piececube"
	"github.com/SeamusWaldron/piececube/internal/cube"
	"github.com/SeamusWaldron/piececube/internal/notation"
	"github.com/SeamusWaldron/piececube/internal/search"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Turn a virtual cube in the terminal",
		Long: `Start an interactive TUI with a colored cube net.

Keyboard shortcuts:
  u r f d l b  - Turn a face clockwise
  U R F D L B  - Turn a face counter-clockwise
  s            - Scramble
  h            - Search for the shortest D cross
  z            - Undo the last move
  x            - Reset to solved
  q/Esc        - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newPlayModel(cfg.ScrambleLength, cfg.MaxDepth, !flags.noColor)
			p := tea.NewProgram(m, tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}

// Messages
type hintMsg struct {
	moves []piececube.Move
	err   error
}

type playModel struct {
	cube     *piececube.Cube
	undo     []piececube.Move
	length   int
	depth    int
	color    bool
	status   string
	hint     string
	quitting bool
}

func newPlayModel(length, depth int, color bool) *playModel {
	return &playModel{
		cube:   piececube.NewCube(piececube.WithMoveHistory(false)),
		length: length,
		depth:  depth,
		color:  color,
	}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "s":
			moves := m.cube.Scramble(m.length)
			m.undo = append(m.undo, moves...)
			m.status = "Scrambled: " + notation.Format(moves)
			m.hint = ""

		case "z":
			if n := len(m.undo); n > 0 {
				last := m.undo[n-1]
				m.undo = m.undo[:n-1]
				m.cube.Apply(last.Inverse())
				m.status = "Undid " + last.Notation()
			}

		case "x":
			m.cube.Reset()
			m.undo = nil
			m.status = "Reset"
			m.hint = ""

		case "h":
			m.hint = "searching..."
			return m, m.searchCross()

		default:
			if len(key) == 1 {
				if f, ok := cube.ParseFace(strings.ToUpper(key)); ok {
					mv := piececube.Move{Face: f.TypesFace(), Turn: piececube.CW}
					if key != strings.ToLower(key) {
						mv.Turn = piececube.CCW
					}
					m.cube.Apply(mv)
					m.undo = append(m.undo, mv)
					m.status = mv.Notation()
					m.hint = ""
				}
			}
		}

	case hintMsg:
		switch {
		case msg.err != nil:
			m.hint = msg.err.Error()
		case len(msg.moves) == 0:
			m.hint = "D cross already solved"
		default:
			m.hint = "D cross: " + notation.Format(msg.moves)
		}
	}
	return m, nil
}

func (m *playModel) searchCross() tea.Cmd {
	st := m.cube.State()
	depth := m.depth
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		moves, err := search.BFS(ctx, st, search.Cross(cube.D), search.WithMaxDepth(depth))
		return hintMsg{moves: moves, err: err}
	}
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	style := func(s lipgloss.Style, text string) string {
		if !m.color {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	b.WriteString(style(titleStyle, "piececube"))
	b.WriteString("\n\n")
	b.WriteString(renderNet(m.cube.Grid(), m.color))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Moves: %d", len(m.undo))
	if m.cube.IsSolved() {
		b.WriteString("  " + style(moveStyle, "SOLVED"))
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(style(labelStyle, m.status) + "\n")
	}
	if m.hint != "" {
		b.WriteString(style(moveStyle, m.hint) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(style(helpStyle, "urfdlb: turn  URFDLB: reverse  s: scramble  h: cross hint  z: undo  x: reset  q: quit"))
	b.WriteString("\n")
	return b.String()
}
