package label

import (
	"fmt"

	"github.com/matzehuels/dbgview/pkg/graphview"
)

// Value is a value with an explicit label. It takes precedence over every
// other label source.
type Value struct {
	Name  string
	Value any
}

// Arg is an argument paired with its display label.
type Arg struct {
	Label string
	Value any
}

// Assign pairs the arguments of one call with labels using the texts in
// site. A trailing string literal is removed from the values and labels
// every preceding argument.
func Assign(args []any, site Site) []Arg {
	override, hasOverride := trailingOverride(args, site)
	if hasOverride {
		args = args[:len(args)-1]
	}

	out := make([]Arg, len(args))
	for i, a := range args {
		out[i] = Arg{Value: a}
		switch {
		case isNamed(a):
			lv := a.(Value)
			out[i] = Arg{Label: lv.Name, Value: lv.Value}
		case graphLabel(a) != "":
			out[i].Label = graphLabel(a)
		case hasOverride:
			out[i].Label = override
		case i < len(site.Args) && site.Args[i] != "":
			out[i].Label = site.Args[i]
		case isGraph(a):
			out[i].Label = graphview.DefaultLabel
		default:
			out[i].Label = fmt.Sprintf("arg%d", i)
		}
	}
	return out
}

func trailingOverride(args []any, site Site) (string, bool) {
	if len(args) < 2 {
		return "", false
	}
	last := len(args) - 1
	s, ok := args[last].(string)
	if !ok {
		return "", false
	}
	if site.Available() && (last >= len(site.Literal) || !site.Literal[last]) {
		return "", false
	}
	return s, true
}

func isNamed(a any) bool {
	_, ok := a.(Value)
	return ok
}

func isGraph(a any) bool {
	_, ok := a.(*graphview.View)
	return ok
}

func graphLabel(a any) string {
	if v, ok := a.(*graphview.View); ok && v != nil {
		return v.Label
	}
	return ""
}
