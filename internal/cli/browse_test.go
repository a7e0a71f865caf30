package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/dbgview/pkg/render"
	"github.com/matzehuels/dbgview/pkg/session"
)

// browseSession records a frame at line 1, a loop of two iterations at
// line 2 and a final frame at line 3.
func browseSession() *session.Session {
	s := session.New()
	opts := render.DefaultOptions()
	at := func(line int, label string, v any) render.Frame {
		return render.Frame{File: "main.go", Line: line, Function: "main.main", Blocks: []render.Block{render.NewBlock(label, v, opts)}}
	}
	s.Record(at(1, "start", 0))
	s.Record(at(2, "i", 0))
	s.Record(at(2, "i", 1))
	s.Record(at(3, "done", true))
	return s
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m BrowseModel, keys ...string) (BrowseModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(BrowseModel)
	}
	return m, cmd
}

func TestBrowseEntries(t *testing.T) {
	m := NewBrowseModel(browseSession(), render.DefaultFrameStyle())

	// start, loop header, two iterations, done
	if len(m.Entries) != 5 {
		t.Fatalf("got %d entries, want 5", len(m.Entries))
	}
	if m.Entries[1].frame != nil || !strings.Contains(m.Entries[1].title, "2 iterations") {
		t.Errorf("entry 1 = %+v, want loop header", m.Entries[1])
	}
	if m.Entries[2].depth != 1 || m.Entries[3].depth != 1 {
		t.Error("iterations should be nested under the loop")
	}
}

func TestBrowseNavigation(t *testing.T) {
	m := NewBrowseModel(browseSession(), render.DefaultFrameStyle())

	m, _ = update(m, "up")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after up at the top, want 0", m.Cursor)
	}

	m, _ = update(m, "down", "down", "down")
	if m.Cursor != 3 {
		t.Fatalf("Cursor = %d, want 3", m.Cursor)
	}
	if f := m.Selected(); f == nil || f.Blocks[0].Body.Value != "1" {
		t.Errorf("Selected() = %+v, want the second iteration", f)
	}

	m, _ = update(m, "G")
	if m.Cursor != len(m.Entries)-1 {
		t.Errorf("Cursor = %d after G, want last", m.Cursor)
	}
	m, _ = update(m, "down")
	if m.Cursor != len(m.Entries)-1 {
		t.Error("cursor moved past the last entry")
	}
	m, _ = update(m, "g")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after g, want 0", m.Cursor)
	}
}

func TestBrowseToggleJSON(t *testing.T) {
	m := NewBrowseModel(browseSession(), render.DefaultFrameStyle())

	if !strings.Contains(m.View(), "start = 0") {
		t.Errorf("text view missing block:\n%s", m.View())
	}

	m, _ = update(m, "enter")
	if !m.JSON || !strings.Contains(m.View(), `"label": "start"`) {
		t.Errorf("JSON view missing label:\n%s", m.View())
	}

	m, _ = update(m, "down")
	if !strings.Contains(m.View(), "select an iteration") {
		t.Errorf("loop header should have no frame:\n%s", m.View())
	}
}

func TestBrowseQuit(t *testing.T) {
	m := NewBrowseModel(browseSession(), render.DefaultFrameStyle())

	_, cmd := update(m, "q")
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestBrowseScroll(t *testing.T) {
	m := NewBrowseModel(browseSession(), render.DefaultFrameStyle())
	m.Height = 2

	m, _ = update(m, "down", "down", "down")
	if m.Offset != 2 {
		t.Errorf("Offset = %d, want 2", m.Offset)
	}
	m, _ = update(m, "g")
	if m.Offset != 0 {
		t.Errorf("Offset = %d after g, want 0", m.Offset)
	}
}
