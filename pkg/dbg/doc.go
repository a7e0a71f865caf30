// Package dbg is the diagnostic entry point: print any number of values of
// unknown shape, each under a label, as one frame on a diagnostic sink.
//
//	adj := [][]int{{1, 2}, {2}, {0}}
//	dbg.Dbg(dbg.Graph(adj, "adj2 sample"), len(adj))
//
// writes to standard error:
//
//	[main.go:12 main.main]
//	  adj2 sample = graph(3 vertices, 4 edges) {
//	    0: 1, 2
//	    1: 2
//	    2: 0
//	  }
//	  len(adj) = 3
//
// Labels come from the call's source text. A trailing string literal labels
// every preceding argument instead:
//
//	dbg.Dbg(test, 6, "TESTING") // both blocks are labeled TESTING
//
// When the source is not available at run time, [Labeled] names a value
// explicitly.
//
// The package-level functions use a process-wide [Debugger] created on first
// use. [SetOutput] and [SetOptions] redirect it, which is mostly useful in
// tests. A frame is written with a single write under a mutex, so frames
// from concurrent goroutines never interleave.
package dbg
