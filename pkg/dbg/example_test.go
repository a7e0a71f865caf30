package dbg_test

import (
	"os"

	"github.com/matzehuels/dbgview/pkg/dbg"
	"github.com/matzehuels/dbgview/pkg/shape"
)

func Example() {
	d := dbg.New(os.Stdout, dbg.Options{Location: false})

	adj2 := [][]int{{1, 2}, {2}, {0}}
	d.Dbg(dbg.Graph(adj2, "adj2 sample"), len(adj2))
	// Output:
	// adj2 sample = graph(3 vertices, 4 edges) {
	//     0: 1, 2
	//     1: 2
	//     2: 0
	//   }
	//   len(adj2) = 3
}

func ExampleDebugger_Dbg_weighted() {
	d := dbg.New(os.Stdout, dbg.Options{})

	adj := map[int][]shape.Pair[int, int]{
		20: {shape.MakePair(21, 3), shape.MakePair(22, 7)},
		21: {shape.MakePair(22, 2)},
		22: {shape.MakePair(20, 5)},
	}
	d.Dbg(dbg.Graph(adj))
	// Output:
	// adj = graph(3 vertices, 4 edges) {
	//     20: 21(3), 22(7)
	//     21: 22(2)
	//     22: 20(5)
	//   }
}

func ExampleLabeled() {
	d := dbg.New(os.Stdout, dbg.Options{})
	d.Dbg(dbg.Labeled("costs", []int{5, 3}), "ignored")
	// Output:
	// costs = [5, 3]
}
