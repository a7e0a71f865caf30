package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dbgview/pkg/render"
	"github.com/matzehuels/dbgview/pkg/session"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command, an interactive stepper over the
// frames of a recorded session.
func (c *CLI) browseCommand() *cobra.Command {
	var rf renderFlags

	cmd := &cobra.Command{
		Use:   "browse <session.json>",
		Short: "Step through a recorded session interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rf.apply(cmd, c.Config)
			if err != nil {
				return err
			}
			s, err := session.ImportJSON(args[0])
			if err != nil {
				return err
			}
			if s.Len() == 0 {
				printWarning(cmd.ErrOrStderr(), "Session %s has no frames", s.ID)
				return nil
			}

			m := NewBrowseModel(s, cfg.FrameStyle())
			m.JSON = cfg.JSON
			p := tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	rf.register(cmd)

	return cmd
}

// =============================================================================
// BrowseModel - Interactive frame stepper
// =============================================================================

// browseEntry is one line of the stepper list. Loop headers have no frame.
type browseEntry struct {
	title string
	depth int
	frame *render.Frame
}

// BrowseModel is the bubbletea model for stepping through a session.
type BrowseModel struct {
	ID      string
	Entries []browseEntry
	Cursor  int
	Offset  int
	Height  int

	// JSON shows the selected frame as indented JSON instead of text.
	JSON  bool
	Style render.FrameStyle
}

// NewBrowseModel creates a stepper over the loop-folded frames of s.
func NewBrowseModel(s *session.Session, style render.FrameStyle) BrowseModel {
	return BrowseModel{
		ID:      s.ID,
		Entries: flattenSteps(session.Group(s.Frames()), 0),
		Height:  10,
		Style:   style,
	}
}

func flattenSteps(steps []session.Step, depth int) []browseEntry {
	var out []browseEntry
	for _, st := range steps {
		if st.Kind == session.StepSingle {
			out = append(out, browseEntry{title: frameTitle(st.Index, st.Frame), depth: depth, frame: st.Frame})
			continue
		}
		out = append(out, browseEntry{
			title: fmt.Sprintf("%s loop at %s:%d (%d iterations)", iconLoop, shortFile(st.File), st.Line, len(st.Iterations)),
			depth: depth,
		})
		for i, it := range st.Iterations {
			out = append(out, browseEntry{
				title: fmt.Sprintf("iteration %d: %s", i+1, blockLabels(it.Frame)),
				depth: depth + 1,
				frame: it.Frame,
			})
			out = append(out, flattenSteps(it.Steps, depth+2)...)
		}
	}
	return out
}

func frameTitle(index int, f *render.Frame) string {
	loc := f.Location()
	if loc == "" {
		loc = "?"
	}
	return fmt.Sprintf("#%d %s  %s", index+1, loc, blockLabels(f))
}

func blockLabels(f *render.Frame) string {
	labels := make([]string, len(f.Blocks))
	for i, b := range f.Blocks {
		labels[i] = b.Label
	}
	return strings.Join(labels, ", ")
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = max(len(m.Entries)-1, 0)
		case "enter":
			m.JSON = !m.JSON
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height/3, 5)
		if msg.Width > 0 {
			m.Style.Width = msg.Width
		}
	}
	m.scroll()
	return m, nil
}

// scroll keeps the cursor inside the visible window.
func (m *BrowseModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

// Selected returns the frame under the cursor, or nil on a loop header.
func (m BrowseModel) Selected() *render.Frame {
	if m.Cursor < 0 || m.Cursor >= len(m.Entries) {
		return nil
	}
	return m.Entries[m.Cursor].frame
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Session " + m.ID))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ step  ⏎ text/json  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Entries))
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := cursor + strings.Repeat("  ", e.depth) + e.title
		switch {
		case i == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case e.frame == nil:
			b.WriteString(styleLoop.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(listDimStyle.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")
	b.WriteString(m.detail())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}

func (m BrowseModel) detail() string {
	f := m.Selected()
	if f == nil {
		return listDimStyle.Render("select an iteration to see its frame")
	}
	if !m.JSON {
		return f.Text(m.Style)
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return StyleWarning.Render(err.Error())
	}
	return string(data) + "\n"
}
