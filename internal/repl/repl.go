package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/sunholo/pylattice/internal/classgraph"
	"github.com/sunholo/pylattice/internal/db"
	"github.com/sunholo/pylattice/internal/operators"
	"github.com/sunholo/pylattice/internal/relations"
	"github.com/sunholo/pylattice/internal/symbols"
)

// Color functions for pretty output.
var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

const historyFileName = ".pylattice_history"

// REPL is the interactive loop the kernel sits behind: a liner-driven
// prompt that parses type expressions
// (typeexpr.go) and dispatches colon-commands against the kernel's
// relations/classgraph/operators packages.
type REPL struct {
	DB       *db.DB
	Graph    *classgraph.Graph
	Checker  *relations.Checker
	Ops      *operators.Context
	Registry *Registry
	Parser   *ExprParser
	Symbols  *symbols.Resolver

	out     io.Writer
	history []string
}

// New creates a REPL with a fresh in-memory DB, class graph, and the
// builtin classes NewRegistry wires up.
func New() *REPL {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a REPL that writes output to w, used by tests that
// want to capture output without touching a terminal.
func NewWithWriter(w io.Writer) *REPL {
	return NewWithDB(db.NewMemory(), w)
}

// NewWithDB creates a REPL backed by an already-opened DB (in-memory via
// db.NewMemory, or on-disk via db.Open), writing output to w. A driver that
// wants its revision ledger to survive between runs — a long-lived CLI
// session with --db, say — builds its own db.DB and passes it here instead
// of going through New.
func NewWithDB(d *db.DB, w io.Writer) *REPL {
	g := classgraph.New(d)
	registry := NewRegistry(d, g)
	checker := relations.New(g, registry.Object())
	for known, class := range registry.KnownClasses() {
		checker.KnownClasses[known] = class
	}
	ops := operators.New(d, checker, registry, registry)
	return &REPL{
		DB:       d,
		Graph:    g,
		Checker:  checker,
		Ops:      ops,
		Registry: registry,
		Parser:   NewExprParser(d, checker, registry, ops),
		Symbols:  symbols.New(d, checker, registry.UseDef()),
		out:      w,
	}
}

func (r *REPL) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Run drives the interactive liner loop until the user exits or input
// closes.
func (r *REPL) Run() error {
	line := liner.NewLiner()
	defer line.Close()

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	r.printf("%s\n", bold(cyan("pylattice — type lattice REPL")))
	r.printf("%s\n", dim("Type :help for commands, :quit to exit."))

	for {
		input, err := line.Prompt(bold(">>> "))
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		line.AppendHistory(input)
		r.history = append(r.history, input)

		if trimmed == ":quit" || trimmed == ":exit" {
			break
		}
		r.EvalLine(trimmed)
	}

	if f, err := os.Create(histPath); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
	return nil
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFileName
	}
	return home + string(os.PathSeparator) + historyFileName
}

// EvalLine evaluates one line of input: a colon-command or a bare type
// expression. It writes its result to r.out and never panics on malformed
// input; recovery is always local to the line.
func (r *REPL) EvalLine(line string) {
	if strings.HasPrefix(line, ":") {
		r.runCommand(line)
		return
	}
	t, err := r.Parser.Parse(line)
	if err != nil {
		r.printf("%s %s\n", red("parse error:"), err)
		return
	}
	for _, rep := range r.Parser.Reports() {
		r.printf("  %s %s\n", yellow(rep.Code), rep.Message)
	}
	r.printf("%s\n", t.String())
}
