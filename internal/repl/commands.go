package repl

import (
	"fmt"
	"strings"

	"github.com/sunholo/pylattice/internal/errors"
	"github.com/sunholo/pylattice/internal/operators"
	"github.com/sunholo/pylattice/internal/relations"
	"github.com/sunholo/pylattice/internal/ty"
)

// runCommand dispatches a colon-command: strings.Fields on the line, then
// a switch on the command word.
func (r *REPL) runCommand(line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}

	switch parts[0] {
	case ":help", ":h":
		r.printHelp()

	case ":class":
		r.cmdClass(parts[1:])

	case ":attr":
		r.cmdAttr(parts[1:])

	case ":func":
		r.cmdFunc(parts[1:])

	case ":module":
		r.cmdModule(parts[1:])

	case ":mro":
		r.cmdMRO(parts[1:])

	case ":member":
		r.cmdMember(parts[1:])

	case ":call":
		r.cmdCall(parts[1:])

	case ":iterate":
		r.cmdIterate(parts[1:])

	case ":bool":
		r.cmdBool(parts[1:])

	case ":str":
		r.cmdStrRepr(parts[1:], false)

	case ":repr":
		r.cmdStrRepr(parts[1:], true)

	case ":subtype":
		r.cmdRelation(parts[1:], "subtype")

	case ":assignable":
		r.cmdRelation(parts[1:], "assignable")

	case ":equivalent":
		r.cmdRelation(parts[1:], "equivalent")

	case ":reveal":
		r.cmdReveal(parts[1:])

	case ":declare":
		r.cmdDeclare(parts[1:])

	case ":symbol":
		r.cmdSymbol(parts[1:])

	default:
		r.printf("%s %s\n", red("unknown command:"), parts[0])
		r.printf("%s\n", dim("Type :help for the command list."))
	}
}

func (r *REPL) printHelp() {
	r.printf(`%s
  :class Name [Base1 Base2 ...]   define or redefine a class
  :attr Class.member TypeExpr     set an own member's type
  :func name -> TypeExpr          define a function's annotated return type
  :module name [sym TypeExpr]     define a module, optionally setting a global
  :mro ClassName                  print the class's C3 linearization
  :member TypeExpr name           look up member(TypeExpr, name)
  :call TypeExpr [ArgExpr ...]    evaluate call(TypeExpr, args)
  :iterate TypeExpr               evaluate iterate(TypeExpr)
  :bool TypeExpr                  evaluate three-valued truthiness
  :str TypeExpr / :repr TypeExpr  evaluate str()/repr()
  :subtype A B                    is A <: B
  :assignable A B                 is A assignable to B
  :equivalent A B                 is A ≡ B
  :reveal TypeExpr                pretty-print with display truncation
  :declare name TypeExpr          add a declared type for a symbol
  :symbol name                    fold a symbol's declarations to its public type
  :quit / :exit                   leave the REPL
  <bare expression>                parse and print a type expression
`, bold("Commands:"))
}

func (r *REPL) parseArg(expr string) (ty.Type, bool) {
	t, err := r.Parser.Parse(expr)
	if err != nil {
		r.printf("%s %s\n", red("parse error:"), err)
		return nil, false
	}
	return t, true
}

func (r *REPL) cmdClass(args []string) {
	if len(args) == 0 {
		r.printf("Usage: :class Name [Base1 Base2 ...]\n")
		return
	}
	name := args[0]
	var bases []ty.Type
	for _, b := range args[1:] {
		base, ok := r.parseArg(b)
		if !ok {
			return
		}
		bases = append(bases, base)
	}
	class := r.Registry.DefineClass(name, ty.KnownClassNone, bases)
	r.printf("%s %s\n", green("defined class"), class.Name)
}

func (r *REPL) cmdAttr(args []string) {
	if len(args) < 2 || !strings.Contains(args[0], ".") {
		r.printf("Usage: :attr Class.member TypeExpr\n")
		return
	}
	className, member, _ := strings.Cut(args[0], ".")
	class, ok := r.Registry.Class(className)
	if !ok {
		r.printf("%s unknown class %q\n", red("error:"), className)
		return
	}
	t, ok := r.parseArg(strings.Join(args[1:], " "))
	if !ok {
		return
	}
	if err := r.Registry.SetMember(class, member, t); err != nil {
		r.printf("%s %s\n", red("error:"), err)
		return
	}
	r.printf("%s %s.%s : %s\n", green("set"), className, member, t.String())
}

func (r *REPL) cmdFunc(args []string) {
	joined := strings.Join(args, " ")
	name, retExpr, ok := strings.Cut(joined, "->")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		r.printf("Usage: :func name -> TypeExpr\n")
		return
	}
	ret, ok := r.parseArg(strings.TrimSpace(retExpr))
	if !ok {
		return
	}
	f := r.Registry.DefineFunction(name, ret)
	r.printf("%s %s -> %s\n", green("defined function"), f.Name, ret.String())
}

func (r *REPL) cmdModule(args []string) {
	if len(args) == 0 || len(args) == 2 {
		r.printf("Usage: :module name [sym TypeExpr]\n")
		return
	}
	name := args[0]
	r.Registry.DefineModule(name)
	if len(args) == 1 {
		r.printf("%s %s\n", green("defined module"), name)
		return
	}
	sym := args[1]
	t, ok := r.parseArg(strings.Join(args[2:], " "))
	if !ok {
		return
	}
	if err := r.Registry.SetGlobal(name, sym, t); err != nil {
		r.printf("%s %s\n", red("error:"), err)
		return
	}
	r.printf("%s %s.%s : %s\n", green("set"), name, sym, t.String())
}

func (r *REPL) cmdMRO(args []string) {
	if len(args) != 1 {
		r.printf("Usage: :mro ClassName\n")
		return
	}
	class, ok := r.Registry.Class(args[0])
	if !ok {
		r.printf("%s unknown class %q\n", red("error:"), args[0])
		return
	}
	possibilities := r.Graph.MRO(class, r.Checker.Object)
	for i, p := range possibilities {
		if p.Failed {
			r.printf("  [%d] %s\n", i, red("no consistent linearization"))
			continue
		}
		names := make([]string, len(p.Classes))
		for j, c := range p.Classes {
			names[j] = c.Name
		}
		r.printf("  [%d] %s\n", i, strings.Join(names, " -> "))
	}
}

func (r *REPL) cmdMember(args []string) {
	if len(args) < 2 {
		r.printf("Usage: :member TypeExpr name\n")
		return
	}
	name := args[len(args)-1]
	t, ok := r.parseArg(strings.Join(args[:len(args)-1], " "))
	if !ok {
		return
	}
	result := r.Ops.Member(t, name)
	r.printf("%s\n", result.String())
}

func (r *REPL) cmdCall(args []string) {
	if len(args) == 0 {
		r.printf("Usage: :call TypeExpr [ArgExpr ...]\n")
		return
	}
	callee, ok := r.parseArg(args[0])
	if !ok {
		return
	}
	var argTypes []ty.Type
	for _, a := range args[1:] {
		at, ok := r.parseArg(a)
		if !ok {
			return
		}
		argTypes = append(argTypes, at)
	}
	outcome := r.Ops.Call(callee, argTypes)
	ret, reports := r.Ops.ReturnTypeResult(outcome)
	r.printf("%s %s\n", dim("return:"), ret.String())
	for _, rep := range reports {
		r.printf("  %s %s\n", yellow(rep.Code), rep.Message)
	}
}

func (r *REPL) cmdIterate(args []string) {
	if len(args) != 1 {
		r.printf("Usage: :iterate TypeExpr\n")
		return
	}
	t, ok := r.parseArg(args[0])
	if !ok {
		return
	}
	outcome := r.Ops.Iterate(t)
	if outcome.Kind == operators.IterationNotIterable {
		rep := &errors.Report{
			Schema:  errors.SchemaV1,
			Code:    errors.TYC005,
			Phase:   "typecheck",
			Message: fmt.Sprintf("Object of type `%s` is not iterable", t.String()),
		}
		r.printf("  %s %s\n", yellow(rep.Code), rep.Message)
		return
	}
	r.printf("%s\n", outcome.Element.String())
}

func (r *REPL) cmdBool(args []string) {
	if len(args) != 1 {
		r.printf("Usage: :bool TypeExpr\n")
		return
	}
	t, ok := r.parseArg(args[0])
	if !ok {
		return
	}
	r.printf("%s\n", relations.Bool(t))
}

func (r *REPL) cmdStrRepr(args []string, repr bool) {
	if len(args) != 1 {
		r.printf("Usage: :str TypeExpr (or :repr TypeExpr)\n")
		return
	}
	t, ok := r.parseArg(args[0])
	if !ok {
		return
	}
	if repr {
		r.printf("%s\n", r.Ops.Repr(t).String())
	} else {
		r.printf("%s\n", r.Ops.Str(t).String())
	}
}

func (r *REPL) cmdRelation(args []string, kind string) {
	if len(args) != 2 {
		r.printf("Usage: :%s A B\n", kind)
		return
	}
	a, ok := r.parseArg(args[0])
	if !ok {
		return
	}
	b, ok := r.parseArg(args[1])
	if !ok {
		return
	}
	var result bool
	switch kind {
	case "subtype":
		result = r.Checker.Subtype(a, b)
	case "assignable":
		result = r.Checker.Assignable(a, b)
	case "equivalent":
		result = relations.Equivalent(a, b)
	}
	r.printf("%v\n", result)
}

func (r *REPL) cmdReveal(args []string) {
	if len(args) == 0 {
		r.printf("Usage: :reveal TypeExpr\n")
		return
	}
	t, ok := r.parseArg(strings.Join(args, " "))
	if !ok {
		return
	}
	r.printf("%s\n", operators.TruncateForDisplay(t.String(), 120))
}

func (r *REPL) cmdDeclare(args []string) {
	if len(args) < 2 {
		r.printf("Usage: :declare name TypeExpr\n")
		return
	}
	name := args[0]
	t, ok := r.parseArg(strings.Join(args[1:], " "))
	if !ok {
		return
	}
	r.Registry.Declare(name, t)
	r.printf("%s %s : %s\n", green("declared"), name, t.String())
}

// cmdSymbol folds every :declare'd type for name into its public type,
// printing a TYC006 diagnostic if the declarations are not
// pairwise equivalent.
func (r *REPL) cmdSymbol(args []string) {
	if len(args) != 1 {
		r.printf("Usage: :symbol name\n")
		return
	}
	before := len(r.Symbols.Reports())
	t := r.Symbols.PublicType(r.Registry.Symbol(args[0]), nil)
	r.printf("%s\n", t.String())
	for _, rep := range r.Symbols.Reports()[before:] {
		r.printf("  %s %s\n", yellow(rep.Code), rep.Message)
	}
}
