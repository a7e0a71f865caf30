package label

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dbgview/pkg/graphview"
)

func labels(args []Arg) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a.Label
	}
	return out
}

func TestAssign(t *testing.T) {
	view := graphview.New([][]int{{0}}, "adj2 sample")
	bare := graphview.New([][]int{{0}}, "")

	tests := []struct {
		name  string
		args  []any
		site  Site
		want  []string
		count int
	}{
		{
			name:  "CallSiteText",
			args:  []any{1, 2},
			site:  Site{Args: []string{"a", "b"}, Literal: []bool{false, false}},
			want:  []string{"a", "b"},
			count: 2,
		},
		{
			name:  "TrailingLiteral",
			args:  []any{[]int{1}, 6, "TESTING"},
			site:  Site{Args: []string{"test", "6", `"TESTING"`}, Literal: []bool{false, false, true}},
			want:  []string{"TESTING", "TESTING"},
			count: 2,
		},
		{
			name:  "TrailingVariableIsAValue",
			args:  []any{1, "s"},
			site:  Site{Args: []string{"n", "name"}, Literal: []bool{false, false}},
			want:  []string{"n", "name"},
			count: 2,
		},
		{
			name:  "SingleStringIsAValue",
			args:  []any{"hello"},
			site:  Site{Args: []string{`"hello"`}, Literal: []bool{true}},
			want:  []string{`"hello"`},
			count: 1,
		},
		{
			name:  "NoSourceTrailingString",
			args:  []any{1, 2, "label"},
			want:  []string{"label", "label"},
			count: 2,
		},
		{
			name:  "NoSource",
			args:  []any{1, 2},
			want:  []string{"arg0", "arg1"},
			count: 2,
		},
		{
			name:  "GraphLabelWins",
			args:  []any{view, bare, "X"},
			site:  Site{Args: []string{"adj2", "adj", `"X"`}, Literal: []bool{false, false, true}},
			want:  []string{"adj2 sample", "X"},
			count: 2,
		},
		{
			name:  "UnlabeledGraphWithoutSource",
			args:  []any{bare},
			want:  []string{"graph"},
			count: 1,
		},
		{
			name:  "ExplicitName",
			args:  []any{Value{Name: "mine", Value: view}, 3, "X"},
			site:  Site{Args: []string{"label.Value{}", "3", `"X"`}, Literal: []bool{false, false, true}},
			want:  []string{"mine", "X"},
			count: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assign(tt.args, tt.site)
			require.Len(t, got, tt.count)
			require.Equal(t, tt.want, labels(got))
		})
	}
}

func TestAssignUnwrapsExplicitValue(t *testing.T) {
	got := Assign([]any{Value{Name: "n", Value: 7}}, Site{})
	require.Equal(t, []Arg{{Label: "n", Value: 7}}, got)
}
