package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dbgview/pkg/dbg"
	"github.com/matzehuels/dbgview/pkg/input"
	"github.com/matzehuels/dbgview/pkg/session"
)

// dumpOpts holds the flags of the dump command.
type dumpOpts struct {
	render renderFlags
	record string // session file written after the dump
}

// dumpCommand creates the dump command, which prints the views of an input
// graph that the solution drivers printed while debugging.
func (c *CLI) dumpCommand() *cobra.Command {
	var opts dumpOpts

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print debug views of an input graph",
		Long: `Parse a graph in the "n m / costs / edges" text format and print its
debug views: counts, costs, raw adjacency, dense and weighted graph views,
per-vertex neighbor lists, the cost queue and the built-in sample graph.

Without a file, testdata/sample_small.in is used when present, otherwise
standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.render.apply(cmd, c.Config)
			if err != nil {
				return err
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return c.runDump(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), path, cfg, opts.record)
		},
	}

	opts.render.register(cmd)
	cmd.Flags().StringVar(&opts.record, "record", "", "record the emitted frames to a session file")

	return cmd
}

// runDump writes frames to w and status lines to status, which keeps JSON
// output parseable.
func (c *CLI) runDump(ctx context.Context, w, status io.Writer, path string, cfg Config, record string) error {
	logger := loggerFromContext(ctx)

	r, name, err := input.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	g, err := input.Parse(r)
	if err != nil {
		return err
	}
	logger.Debug("parsed input", "source", name, "vertices", g.N(), "edges", g.M())

	opts := cfg.DebugOptions()
	opts.Logger = logger
	var sess *session.Session
	if record != "" {
		sess = session.New()
		opts.Recorder = sess
	}
	d := dbg.New(w, opts)

	dumpGraph(d, g)

	if sess == nil {
		return nil
	}
	if err := session.ExportJSON(record, sess); err != nil {
		return err
	}
	logger.Info("recorded session", "id", sess.ID, "frames", sess.Len())
	printSuccess(status, "Recorded %d frames", sess.Len())
	printDetail(status, "Session %s", sess.ID)
	printFile(status, record)
	printNextStep(status, "Replay with", "dbgview replay "+record)
	return nil
}

// dumpGraph emits the views of g, one frame per call.
func dumpGraph(d *dbg.Debugger, g *input.Graph) {
	adj := g.Adjacency()

	d.Dbg(dbg.Labeled("n", g.N()), dbg.Labeled("m", g.M()))
	d.Dbg(dbg.Labeled("costs", g.Costs))
	d.Dbg(dbg.Labeled("adj", adj))
	d.Dbg(dbg.Graph(adj, "adjacency"))
	d.Dbg(dbg.Graph(g.WeightedMap(), "weighted by cost"))
	for u, nbrs := range adj {
		d.Dbg(dbg.Labeled("u", u), dbg.Labeled("cost", g.Costs[u]), dbg.Labeled("neighbors", nbrs))
	}
	d.Dbg(dbg.Labeled("queue", g.CostQueue()))
	d.Dbg(dbg.Graph(input.Sample(), "sample"))
}
