package render

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dbgview/pkg/shape"
)

// Block is one labeled argument of a diagnostic call.
type Block struct {
	Label string    `json:"label"`
	Shape shape.Tag `json:"shape"`
	Body  *Node     `json:"body"`
}

// NewBlock renders v under label.
func NewBlock(label string, v any, opts Options) Block {
	body := Build(v, opts)
	return Block{Label: label, Shape: body.Shape, Body: body}
}

// Frame is the output of one diagnostic call.
type Frame struct {
	File     string    `json:"file,omitempty"`
	Line     int       `json:"line,omitempty"`
	Function string    `json:"function,omitempty"`
	Time     time.Time `json:"time,omitzero"`
	Blocks   []Block   `json:"blocks"`
}

// Location returns "file.go:42", or "" when the call site is unknown.
func (f *Frame) Location() string {
	if f.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line)
}

func (f *Frame) header() string {
	loc := f.Location()
	switch {
	case loc == "":
		return f.Function
	case f.Function == "":
		return loc
	}
	return loc + " " + f.Function
}

// FrameStyle controls the text form of a frame.
type FrameStyle struct {
	// Location writes the "[file.go:42 pkg.Func]" header line.
	Location bool
	// ShowShape appends each block's shape tag to its label.
	ShowShape bool
	// Width is the layout width passed to [Node.Text].
	Width int
}

// DefaultFrameStyle shows locations and lays out at DefaultWidth.
func DefaultFrameStyle() FrameStyle {
	return FrameStyle{Location: true, Width: DefaultWidth}
}

// Text returns the frame as text without styling.
func (f *Frame) Text(style FrameStyle) string {
	var sb strings.Builder
	_ = f.write(&sb, style, lipgloss.NewRenderer(io.Discard))
	return sb.String()
}

// WriteText writes the frame to w. Headers and labels are colored when w is
// a color terminal; other writers receive plain text.
func (f *Frame) WriteText(w io.Writer, style FrameStyle) error {
	return f.write(w, style, lipgloss.NewRenderer(w))
}

func (f *Frame) write(w io.Writer, style FrameStyle, r *lipgloss.Renderer) error {
	headerStyle := r.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle := r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	shapeStyle := r.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)

	var sb strings.Builder
	if header := f.header(); style.Location && header != "" {
		sb.WriteString(headerStyle.Render("["+header+"]") + "\n")
	}

	width := style.Width
	if width > 0 {
		width = max(width-len(indent), 1)
	}
	for _, b := range f.Blocks {
		head := b.Label
		if style.ShowShape {
			head += " (" + b.Shape.String() + ")"
		}
		lead := lipgloss.Width(head) + len(" = ")
		body := b.Body.layout(width, lead)

		sb.WriteString(indent)
		sb.WriteString(labelStyle.Render(b.Label))
		if style.ShowShape {
			sb.WriteString(" " + shapeStyle.Render("("+b.Shape.String()+")"))
		}
		sb.WriteString(" = ")
		sb.WriteString(strings.ReplaceAll(body, "\n", "\n"+indent))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteJSON writes the frame as a single line of JSON.
func (f *Frame) WriteJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(f)
}
