package interp

import (
	"bufio"
	"io"

	"aud/internal/ast"
	"aud/internal/config"
	"aud/internal/domain"
)

// Options configures one interpreter run.
type Options struct {
	Config config.Config
	World  *domain.World // created fresh from Config.MaxFolderDepth when nil
	Stdin  io.Reader
	Stdout io.Writer
}

// Result is the outcome of running a program: at most one Fault, per the
// spec's fail-fast runtime fault model.
type Result struct {
	Fault *Fault
}

type interpreter struct {
	env    *Environment
	world  *domain.World
	cfg    config.Config
	funcs  map[string]*ast.FuncDef
	stdout io.Writer
	stdin  *bufio.Scanner
}

// Run executes a type-checked program's top-level statements in source
// order. prog is assumed to have already passed sema.Check with zero
// diagnostics; Run does not re-validate types.
func Run(prog *ast.Program, opts Options) Result {
	world := opts.World
	if world == nil {
		world = domain.NewWorld(opts.Config.MaxFolderDepth)
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	stdin := opts.Stdin
	if stdin == nil {
		stdin = &emptyReader{}
	}

	funcs := make(map[string]*ast.FuncDef, len(prog.Funcs))
	for _, fn := range prog.Funcs {
		funcs[fn.Name] = fn
	}

	in := &interpreter{
		env:    NewEnvironment(),
		world:  world,
		cfg:    opts.Config,
		funcs:  funcs,
		stdout: stdout,
		stdin:  bufio.NewScanner(stdin),
	}

	for _, s := range prog.Stmts {
		sig, f := in.exec(s)
		if f != nil {
			return Result{Fault: f}
		}
		// A bare `return;` at top level ends the program early; there is
		// no enclosing CallContext to propagate it to.
		if sig.Kind == sigReturn {
			break
		}
	}
	return Result{}
}

// emptyReader stands in for stdin when Run is invoked without one (e.g.
// a program that never calls input()), so bufio.Scanner has something to
// wrap without a nil-pointer panic if input() is called anyway.
type emptyReader struct{}

func (*emptyReader) Read(p []byte) (int, error) { return 0, io.EOF }
