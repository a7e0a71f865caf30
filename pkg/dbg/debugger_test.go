package dbg

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dbgview/pkg/render"
	"github.com/matzehuels/dbgview/pkg/shape"
)

func quiet() Options {
	opts := DefaultOptions()
	opts.Location = false
	return opts
}

func TestDbgLabelsFromSource(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, quiet())

	costs := []int{4, 8}
	adj := [][]int{{1}, {0}}
	d.Dbg(costs, Graph(adj), len(costs))

	want := strings.Join([]string{
		"  costs = [4, 8]",
		"  adj = graph(2 vertices, 2 edges) {",
		"    0: 1",
		"    1: 0",
		"  }",
		"  len(costs) = 2",
		"",
	}, "\n")
	require.Equal(t, want, buf.String())
}

func TestDbgTrailingLabel(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, quiet())

	test := []int{1, 2}
	d.Dbg(test, 6, "TESTING")
	require.Equal(t, "  TESTING = [1, 2]\n  TESTING = 6\n", buf.String())
}

func TestDbgGraphLabel(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, quiet())

	adj2 := [][]int{{1, 2}, {2}, {0}}
	d.Dbg(Graph(adj2, "adj2 sample"))
	require.True(t, strings.HasPrefix(buf.String(), "  adj2 sample = graph(3 vertices, 4 edges) {\n"))
}

func TestDbgLocationHeader(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, DefaultOptions())

	x := 1
	d.Dbg(x)
	first := strings.SplitN(buf.String(), "\n", 2)[0]
	require.Regexp(t, `^\[debugger_test\.go:\d+ dbg\.TestDbgLocationHeader\]$`, first)
}

func TestDbgMalformedGraphKeepsSiblings(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, quiet())

	bad := [][]int{{5}}
	d.Dbg(1, Graph(bad))
	require.Equal(t, "  1 = 1\n  bad = <malformed graph: vertex 0: neighbor 5 out of range [0, 1)>\n", buf.String())
}

type brokenKeys struct{}

func (brokenKeys) Keys() []any         { panic("keys boom") }
func (brokenKeys) Get(any) (any, bool) { return nil, false }

func TestDbgPanickingGraphKeepsSiblings(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, quiet())

	require.NotPanics(t, func() { d.Dbg(Graph(brokenKeys{}, "g"), 1) })
	require.Equal(t, "  g = <malformed graph: panic: keys boom>\n  1 = 1\n", buf.String())
}

func TestDbgZeroArgumentsWarnsOnce(t *testing.T) {
	var out, logs bytes.Buffer
	opts := quiet()
	opts.Logger = log.New(&logs)
	d := New(&out, opts)

	d.Dbg()
	d.Dbg()
	require.Empty(t, out.String())
	require.Equal(t, 1, strings.Count(logs.String(), "without arguments"))
}

type frames struct {
	mu  sync.Mutex
	got []render.Frame
}

func (r *frames) Record(f render.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, f)
}

func TestDbgRecorder(t *testing.T) {
	rec := &frames{}
	opts := quiet()
	opts.Recorder = rec
	d := New(nil, opts)

	n := 3
	d.Dbg(n)
	d.Dbg(n, n)
	require.Len(t, rec.got, 2)
	require.Len(t, rec.got[1].Blocks, 2)
	require.Equal(t, "n", rec.got[0].Blocks[0].Label)
	require.NotZero(t, rec.got[0].Line)
}

func TestDbgJSON(t *testing.T) {
	var buf bytes.Buffer
	opts := quiet()
	opts.JSON = true
	d := New(&buf, opts)

	m := map[string]int{"b": 2, "a": 1}
	d.Dbg(m)

	var f render.Frame
	require.NoError(t, json.Unmarshal(buf.Bytes(), &f))
	require.Len(t, f.Blocks, 1)
	require.Equal(t, "m", f.Blocks[0].Label)
	require.Equal(t, shape.TagMapping, f.Blocks[0].Shape)
	require.Equal(t, `"a"`, f.Blocks[0].Body.Entries[0].Key.Value)
}

func TestDbgJSONIsDeterministic(t *testing.T) {
	var buf bytes.Buffer
	rec := &frames{}
	opts := quiet()
	opts.JSON = true
	opts.Recorder = rec
	d := New(&buf, opts)

	costs := []int{3, 1}
	for range 2 {
		d.Dbg(costs)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, lines[0], lines[1])
	require.NotContains(t, lines[0], `"time"`)
	require.False(t, rec.got[0].Time.IsZero())
}

func TestFrameDoesNotWrite(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, quiet())

	v := []string{"x"}
	f := d.Frame(v, Labeled("explicit", 2))
	require.Empty(t, buf.String())
	require.Equal(t, "v", f.Blocks[0].Label)
	require.Equal(t, "explicit", f.Blocks[1].Label)
	require.Equal(t, "2", f.Blocks[1].Body.Value)
}

func TestDbgConcurrentFramesDoNotInterleave(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, quiet())

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Dbg(i, i, "pair")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 32)
	for i := 0; i < len(lines); i += 2 {
		require.Equal(t, lines[i], lines[i+1], "frame split at line %d", i)
	}
}

func TestDefaultDebuggerRedirect(t *testing.T) {
	var buf bytes.Buffer
	prev := Default().Options()
	SetOutput(&buf)
	SetOptions(quiet())
	t.Cleanup(func() {
		SetOptions(prev)
		SetOutput(os.Stderr)
	})

	answer := 42
	Dbg(answer)
	require.Equal(t, "  answer = 42\n", buf.String())
}
