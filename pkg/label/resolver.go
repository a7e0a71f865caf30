package label

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/tools/go/ast/inspector"
)

// DefaultCacheSize is the number of parsed files a resolver keeps.
const DefaultCacheSize = 64

// Site is the call site of one diagnostic call.
type Site struct {
	File     string
	Line     int
	Function string

	// Args holds the source text of each argument, whitespace collapsed.
	// It is nil when the source is unavailable or the call could not be
	// matched unambiguously.
	Args []string
	// Literal reports, per argument, whether it is a string literal.
	Literal []bool
}

// Available reports whether argument texts were recovered.
func (s Site) Available() bool { return s.Args != nil }

// Resolver finds call sites and argument texts. It is safe for concurrent
// use.
type Resolver struct {
	files *lru.Cache[string, *source]
}

type source struct {
	fset *token.FileSet
	src  []byte
	insp *inspector.Inspector
	err  error
}

// NewResolver returns a resolver that caches up to size parsed files.
func NewResolver(size int) *Resolver {
	if size <= 0 {
		size = DefaultCacheSize
	}
	files, err := lru.New[string, *source](size)
	if err != nil {
		panic(err)
	}
	return &Resolver{files: files}
}

// Resolve returns the call site skip frames above the caller of Resolve and
// the texts of the n arguments of the call to a function named entry on
// that line. Arguments are never evaluated.
func (r *Resolver) Resolve(skip int, entry string, n int) Site {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{}
	}
	site := Site{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		site.Function = shortFuncName(fn.Name())
	}

	src := r.load(file)
	if src.err != nil {
		return site
	}
	call := src.find(line, entry, n)
	if call == nil {
		return site
	}
	site.Args = make([]string, len(call.Args))
	site.Literal = make([]bool, len(call.Args))
	for i, arg := range call.Args {
		site.Args[i] = src.argText(arg)
		lit, ok := arg.(*ast.BasicLit)
		site.Literal[i] = ok && lit.Kind == token.STRING
	}
	return site
}

// Purge drops all cached files.
func (r *Resolver) Purge() { r.files.Purge() }

func (r *Resolver) load(file string) *source {
	if s, ok := r.files.Get(file); ok {
		return s
	}
	s := parseSource(file)
	r.files.Add(file, s)
	return s
}

func parseSource(file string) *source {
	data, err := os.ReadFile(file)
	if err != nil {
		return &source{err: err}
	}
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, file, data, parser.SkipObjectResolution)
	if err != nil {
		return &source{err: err}
	}
	return &source{fset: fset, src: data, insp: inspector.New([]*ast.File{f})}
}

// find returns the call to entry whose lines include line and that has n
// arguments. Calls spread with "..." never match, and nil is returned when
// more than one call matches.
func (s *source) find(line int, entry string, n int) *ast.CallExpr {
	var found []*ast.CallExpr
	s.insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(node ast.Node) {
		call := node.(*ast.CallExpr)
		if call.Ellipsis.IsValid() || len(call.Args) != n || calleeName(call) != entry {
			return
		}
		start, end := s.fset.Position(call.Pos()).Line, s.fset.Position(call.End()).Line
		if start <= line && line <= end {
			found = append(found, call)
		}
	})
	if len(found) != 1 {
		return nil
	}
	return found[0]
}

// argText returns the source text of an argument. A call to Graph(x, ...)
// is named after x.
func (s *source) argText(arg ast.Expr) string {
	if call, ok := arg.(*ast.CallExpr); ok && calleeName(call) == "Graph" && len(call.Args) > 0 {
		arg = call.Args[0]
	}
	start, end := s.fset.Position(arg.Pos()).Offset, s.fset.Position(arg.End()).Offset
	if start < 0 || end > len(s.src) || start > end {
		return ""
	}
	return strings.Join(strings.Fields(string(s.src[start:end])), " ")
}

func calleeName(call *ast.CallExpr) string {
	fun := call.Fun
	if idx, ok := fun.(*ast.IndexExpr); ok {
		fun = idx.X
	}
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	}
	return ""
}

// shortFuncName trims the import path: "github.com/x/app.main" becomes
// "app.main".
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		return name[i+1:]
	}
	return name
}
