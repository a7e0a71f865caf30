package dbg

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dbgview/pkg/graphview"
	"github.com/matzehuels/dbgview/pkg/label"
	"github.com/matzehuels/dbgview/pkg/observability"
	"github.com/matzehuels/dbgview/pkg/render"
)

// Recorder receives every emitted frame, for example a session.
type Recorder interface {
	Record(f render.Frame)
}

// Options configures a [Debugger].
type Options struct {
	Render render.Options

	// Location writes the "[file.go:42 pkg.Func]" header of each frame.
	Location bool
	// ShowShape appends each block's shape tag to its label.
	ShowShape bool
	// JSON writes frames as JSON lines instead of text. Written frames carry
	// no timestamp, so equal calls produce equal lines; only the copy passed
	// to Recorder is stamped.
	JSON bool

	// Logger receives contract violations; nil selects log.Default().
	Logger *log.Logger
	// Recorder, when set, receives a copy of every emitted frame.
	Recorder Recorder
	// Resolver recovers argument texts; nil selects a shared resolver.
	Resolver *label.Resolver
}

// DefaultOptions returns the options of the process-wide debugger.
func DefaultOptions() Options {
	return Options{
		Render:   render.DefaultOptions(),
		Location: true,
	}
}

var sharedResolver = label.NewResolver(label.DefaultCacheSize)

// Debugger renders diagnostic calls and writes them to a sink.
type Debugger struct {
	mu   sync.Mutex
	w    io.Writer
	opts Options

	warnOnce sync.Once
}

// New returns a debugger writing to w.
func New(w io.Writer, opts Options) *Debugger {
	return &Debugger{w: w, opts: opts}
}

// SetOutput redirects the debugger to w.
func (d *Debugger) SetOutput(w io.Writer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.w = w
}

// SetOptions replaces the debugger's options.
func (d *Debugger) SetOptions(opts Options) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.opts = opts
}

// Options returns the debugger's current options.
func (d *Debugger) Options() Options {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opts
}

// Dbg renders args as one frame and writes it to the sink. Calling Dbg
// without arguments logs a warning once and writes nothing.
func (d *Debugger) Dbg(args ...any) {
	d.emit(1, "Dbg", args)
}

// Frame renders args the way Dbg does without writing anything.
func (d *Debugger) Frame(args ...any) render.Frame {
	f, _ := d.frame(1, "Frame", args, d.Options())
	return f
}

// emit is Dbg for a user call skip frames above its caller.
func (d *Debugger) emit(skip int, entry string, args []any) {
	start := time.Now()
	opts := d.Options()
	f, ok := d.frame(skip+1, entry, args, opts)
	if !ok {
		d.warnOnce.Do(func() {
			logger(opts).Warn("dbg called without arguments; nothing to print", "at", f.Location())
		})
		observability.Debug().OnUsageError(context.Background(), f.Location(), "no arguments")
		return
	}

	d.mu.Lock()
	err := d.write(f, opts)
	d.mu.Unlock()
	if err != nil {
		logger(opts).Debug("write frame", "err", err)
	}

	if opts.Recorder != nil {
		rec := f
		rec.Time = time.Now()
		opts.Recorder.Record(rec)
	}
	ctx := context.Background()
	for _, b := range f.Blocks {
		for _, m := range issues(b.Body) {
			observability.Debug().OnRenderIssue(ctx, b.Label, m)
		}
	}
	observability.Debug().OnFrameEmitted(ctx, f.Location(), len(f.Blocks), time.Since(start))
}

// frame renders a call skip frames above its caller. It reports false when
// there is nothing to render.
func (d *Debugger) frame(skip int, entry string, args []any, opts Options) (render.Frame, bool) {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = sharedResolver
	}
	site := resolver.Resolve(skip+1, entry, len(args))
	f := render.Frame{
		File:     site.File,
		Line:     site.Line,
		Function: site.Function,
	}
	if len(args) == 0 {
		return f, false
	}
	for _, a := range label.Assign(args, site) {
		f.Blocks = append(f.Blocks, render.NewBlock(a.Label, a.Value, opts.Render))
	}
	return f, true
}

func (d *Debugger) write(f render.Frame, opts Options) error {
	if d.w == nil {
		return nil
	}
	if opts.JSON {
		return f.WriteJSON(d.w)
	}
	return f.WriteText(d.w, render.FrameStyle{
		Location:  opts.Location,
		ShowShape: opts.ShowShape,
		Width:     opts.Render.Width,
	})
}

func logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return log.Default()
}

// issues returns the markers in n that signal a problem with the value
// rather than a bound or an empty collection.
func issues(n *render.Node) []string {
	if n == nil {
		return nil
	}
	var out []string
	if strings.HasPrefix(n.Marker, "<malformed graph") || strings.HasPrefix(n.Marker, "<panic") {
		out = append(out, n.Marker)
	}
	for _, el := range n.Elems {
		out = append(out, issues(el)...)
	}
	for _, e := range n.Entries {
		out = append(out, issues(e.Key)...)
		out = append(out, issues(e.Value)...)
	}
	return out
}

// =============================================================================
// Process-wide debugger
// =============================================================================

var (
	defaultMu       sync.Mutex
	defaultDebugger *Debugger
)

// Default returns the process-wide debugger, creating it on first use with
// [DefaultOptions] and standard error as its sink.
func Default() *Debugger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultDebugger == nil {
		defaultDebugger = New(os.Stderr, DefaultOptions())
	}
	return defaultDebugger
}

// SetOutput redirects the process-wide debugger.
func SetOutput(w io.Writer) { Default().SetOutput(w) }

// SetOptions replaces the options of the process-wide debugger.
func SetOptions(opts Options) { Default().SetOptions(opts) }

// Dbg renders args as one frame on the process-wide debugger.
func Dbg(args ...any) {
	Default().emit(1, "Dbg", args)
}

// Graph wraps adjacency data for display. It prints nothing; pass the result
// to [Dbg]. An optional label names the block.
func Graph(adj any, labels ...string) *graphview.View {
	var l string
	if len(labels) > 0 {
		l = labels[0]
	}
	return graphview.New(adj, l)
}

// Labeled names v explicitly. The name takes precedence over every other
// label source.
func Labeled(name string, v any) label.Value {
	return label.Value{Name: name, Value: v}
}
