package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/dbgview/pkg/errors"
	"github.com/matzehuels/dbgview/pkg/render"
	"github.com/matzehuels/dbgview/pkg/session"
)

const pathGraph = "3 2\n4 5 6\n1 2\n2 3\n"

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	isolateConfig(t)

	var logs, stdout, stderr bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetArgs(append([]string{"--env-file="}, args...))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestDumpText(t *testing.T) {
	in := writeFile(t, "graph.in", pathGraph)

	out, _, err := execute(t, "dump", in)
	if err != nil {
		t.Fatalf("dump error: %v", err)
	}

	for _, want := range []string{
		"  n = 3\n",
		"  costs = [4, 5, 6]\n",
		"  adj = [[1], [0, 2], [1]]\n",
		"  adjacency = graph(3 vertices, 4 edges) {",
		"  weighted by cost = graph(",
		"  queue = pq[6, 5, 4]\n",
		"  sample = graph(20 vertices",
		"[dump.go:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output missing %q:\n%s", want, out)
		}
	}
}

func TestDumpJSON(t *testing.T) {
	in := writeFile(t, "graph.in", pathGraph)

	out, _, err := execute(t, "dump", in, "--json")
	if err != nil {
		t.Fatalf("dump error: %v", err)
	}

	var frames []render.Frame
	sc := bufio.NewScanner(strings.NewReader(out))
	sc.Buffer(make([]byte, 1<<20), 1<<20)
	for sc.Scan() {
		var f render.Frame
		if err := json.Unmarshal(sc.Bytes(), &f); err != nil {
			t.Fatalf("line %d is not a frame: %v", len(frames)+1, err)
		}
		frames = append(frames, f)
	}
	// 5 frames before the loop, one per vertex, then queue and sample.
	if len(frames) != 10 {
		t.Fatalf("got %d frames, want 10", len(frames))
	}
	if frames[0].Blocks[0].Label != "n" || frames[0].Blocks[1].Label != "m" {
		t.Errorf("first frame labels = %q, %q", frames[0].Blocks[0].Label, frames[0].Blocks[1].Label)
	}
}

func TestDumpBadInput(t *testing.T) {
	in := writeFile(t, "graph.in", "2 1\n1 2\n1 9\n")

	_, _, err := execute(t, "dump", in)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("dump error = %v, want INVALID_INPUT", err)
	}
}

func TestDumpFlagValidation(t *testing.T) {
	in := writeFile(t, "graph.in", pathGraph)

	_, _, err := execute(t, "dump", in, "--max-depth", "0")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("dump error = %v, want INVALID_CONFIG", err)
	}
}

func TestRecordAndReplay(t *testing.T) {
	in := writeFile(t, "graph.in", pathGraph)
	rec := filepath.Join(t.TempDir(), "session.json")

	_, status, err := execute(t, "dump", in, "--record", rec)
	if err != nil {
		t.Fatalf("dump error: %v", err)
	}
	if !strings.Contains(status, "Recorded 10 frames") {
		t.Errorf("status = %q", status)
	}

	s, err := session.ImportJSON(rec)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if s.Len() != 10 {
		t.Fatalf("recorded %d frames, want 10", s.Len())
	}

	out, _, err := execute(t, "replay", rec)
	if err != nil {
		t.Fatalf("replay error: %v", err)
	}
	for _, want := range []string{
		"Session " + s.ID,
		"Location",
		"n, m",
		"loop at dump.go:",
		"3 iterations",
		"iteration 3",
		"neighbors = [0, 2]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("replay output missing %q:\n%s", want, out)
		}
	}
}

func TestReplayMultiple(t *testing.T) {
	in := writeFile(t, "graph.in", pathGraph)
	dir := t.TempDir()
	first, second := filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")
	for _, rec := range []string{first, second} {
		if _, _, err := execute(t, "dump", in, "--record", rec); err != nil {
			t.Fatalf("dump error: %v", err)
		}
	}
	a, err := session.ImportJSON(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := session.ImportJSON(second)
	if err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "replay", "--summary", first, second)
	if err != nil {
		t.Fatalf("replay error: %v", err)
	}
	ia, ib := strings.Index(out, "Session "+a.ID), strings.Index(out, "Session "+b.ID)
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("sessions missing or out of order:\n%s", out)
	}
	if strings.Contains(out, "loop at") {
		t.Error("--summary should not print frames")
	}
}

func TestReplayMissingSession(t *testing.T) {
	_, _, err := execute(t, "replay", filepath.Join(t.TempDir(), "none.json"))
	if err == nil {
		t.Fatal("replay of a missing file should fail")
	}
}

func TestExportDOT(t *testing.T) {
	in := writeFile(t, "graph.in", pathGraph)

	out, _, err := execute(t, "export", in, "-f", "dot")
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	for _, want := range []string{"digraph G {", `label="adjacency"`, `"0" -> "1";`, `"1" -> "2";`} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT output missing %q:\n%s", want, out)
		}
	}
}

func TestExportWeightedToFile(t *testing.T) {
	in := writeFile(t, "graph.in", pathGraph)
	dst := filepath.Join(t.TempDir(), "g.dot")

	_, status, err := execute(t, "export", in, "--view", "weighted", "-o", dst)
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	if !strings.Contains(status, dst) {
		t.Errorf("status should name the output file: %q", status)
	}
}

func TestExportValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"format", []string{"export", "--view", "sample", "-f", "gif"}},
		{"view", []string{"export", "--view", "tree"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("export error = %v, want INVALID_FORMAT", err)
			}
		})
	}
}

func TestCompletion(t *testing.T) {
	out, _, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, "dbgview") {
		t.Error("bash completion should mention the command name")
	}
}
