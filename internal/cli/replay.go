package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dbgview/pkg/render"
	"github.com/matzehuels/dbgview/pkg/session"
)

// replayCommand creates the replay command, which prints a recorded session
// with repeated frames folded into loops.
func (c *CLI) replayCommand() *cobra.Command {
	var (
		rf      renderFlags
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "replay <session.json>...",
		Short: "Print recorded sessions with loops folded",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rf.apply(cmd, c.Config)
			if err != nil {
				return err
			}
			store, err := loadSessions(loggerFromContext(cmd.Context()), args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, s := range store.Sessions() {
				if cfg.JSON {
					if err := writeJSONFrames(w, s.Frames()); err != nil {
						return err
					}
					continue
				}
				if i > 0 {
					fmt.Fprintln(w)
				}
				printSummary(w, s)
				if summary {
					continue
				}
				fmt.Fprintln(w)
				if err := writeSteps(w, session.Group(s.Frames()), cfg.FrameStyle(), ""); err != nil {
					return err
				}
			}
			return nil
		},
	}

	rf.register(cmd)
	cmd.Flags().BoolVar(&summary, "summary", false, "print only the session summary")

	return cmd
}

// loadSessions imports every path into a store, in argument order.
func loadSessions(logger *log.Logger, paths []string) (*session.Store, error) {
	store := session.NewStore()
	store.Logger = logger
	unsubscribe := store.Subscribe(func(s *session.Session) {
		logger.Debug("loaded session", "id", s.ID, "frames", s.Len())
	})
	defer unsubscribe()

	for _, p := range paths {
		s, err := session.ImportJSON(p)
		if err != nil {
			return nil, err
		}
		store.Add(s)
	}
	return store, nil
}

// printSummary prints the session header and a table with one row per frame.
func printSummary(w io.Writer, s *session.Session) {
	fmt.Fprintln(w, StyleTitle.Render("Session "+s.ID))
	printKeyValue(w, "started", s.StartedAt.Format("2006-01-02 15:04:05"))
	printKeyValue(w, "frames", strconv.Itoa(s.Len()))
	blocks := 0
	for _, n := range s.BlockCounts() {
		blocks += n
	}
	printKeyValue(w, "blocks", strconv.Itoa(blocks))

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Location", "Function", "Blocks").
		Rows(summaryRows(s.Frames())...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})
	fmt.Fprintln(w, t.Render())
}

func summaryRows(frames []render.Frame) [][]string {
	rows := make([][]string, len(frames))
	for i, f := range frames {
		labels := make([]string, len(f.Blocks))
		for j, b := range f.Blocks {
			labels[j] = b.Label
		}
		loc := f.Location()
		if loc == "" {
			loc = "-"
		}
		rows[i] = []string{strconv.Itoa(i + 1), loc, f.Function, strings.Join(labels, ", ")}
	}
	return rows
}

// writeSteps writes grouped steps, indenting loop bodies by two spaces per
// level.
func writeSteps(w io.Writer, steps []session.Step, style render.FrameStyle, indent string) error {
	for _, st := range steps {
		if st.Kind == session.StepSingle {
			if err := writeFrame(w, st.Frame, style, indent); err != nil {
				return err
			}
			continue
		}
		loc := fmt.Sprintf("%s:%d", shortFile(st.File), st.Line)
		fmt.Fprintf(w, "%s%s\n", indent, styleLoop.Render(fmt.Sprintf("%s loop at %s, %d iterations", iconLoop, loc, len(st.Iterations))))
		for i, it := range st.Iterations {
			fmt.Fprintf(w, "%s  %s\n", indent, StyleDim.Render(fmt.Sprintf("iteration %d", i+1)))
			if err := writeFrame(w, it.Frame, style, indent+"    "); err != nil {
				return err
			}
			if err := writeSteps(w, it.Steps, style, indent+"    "); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeJSONFrames(w io.Writer, frames []render.Frame) error {
	for i := range frames {
		if err := frames[i].WriteJSON(w); err != nil {
			return err
		}
	}
	return nil
}

func writeFrame(w io.Writer, f *render.Frame, style render.FrameStyle, indent string) error {
	text := f.Text(style)
	if indent == "" {
		_, err := io.WriteString(w, text)
		return err
	}
	var sb strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		sb.WriteString(indent)
		sb.WriteString(line)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func shortFile(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
