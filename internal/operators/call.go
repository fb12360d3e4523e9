package operators

import (
	"fmt"

	"github.com/sunholo/pylattice/internal/errors"
	"github.com/sunholo/pylattice/internal/relations"
	"github.com/sunholo/pylattice/internal/ty"
	"github.com/sunholo/pylattice/internal/ty/builder"
)

// NotCallableKind distinguishes the three non-callable diagnostic shapes:
// the whole type, a single union arm, or several union arms are not
// callable.
type NotCallableKind int

const (
	NotCallableNone NotCallableKind = iota
	NotCallableWhole
	NotCallableUnionArm
	NotCallableMultipleUnionArms
)

// CallOutcomeKind tags which shape of CallOutcome a Call produced.
type CallOutcomeKind int

const (
	CallOutcomeCallable CallOutcomeKind = iota
	CallOutcomeRevealType
	CallOutcomeNotCallable
	CallOutcomeUnion
)

// CallOutcome is the outcome sum call() returns.
type CallOutcome struct {
	Kind CallOutcomeKind

	// Return is the call's return type, valid for Callable and RevealType.
	Return ty.Type

	// Revealed is the argument reveal_type() was called with (or Unknown if
	// it was called with none), valid only for RevealType.
	Revealed ty.Type

	// CalledType is the type that was called, carried for diagnostic
	// messages on NotCallable and Union outcomes.
	CalledType ty.Type

	// Outcomes holds one element per arm of a Union call, in element order.
	Outcomes []CallOutcome

	// NotCallable classifies a NotCallable outcome's shape.
	NotCallable NotCallableKind
}

// Call implements call(τ, argtypes).
func (c *Context) Call(t ty.Type, args []ty.Type) CallOutcome {
	switch v := t.(type) {
	case ty.TFunction:
		return c.callFunction(v, args)
	case ty.TClass:
		return c.callClass(v, args)
	case ty.TInstance:
		return c.callInstance(t, v, args)
	case ty.TAny, ty.TUnknown, ty.TTodo:
		return CallOutcome{Kind: CallOutcomeCallable, Return: t}
	case ty.TUnion:
		outcomes := make([]CallOutcome, len(v.Elements))
		for i, e := range v.Elements {
			outcomes[i] = c.Call(e, args)
		}
		return CallOutcome{Kind: CallOutcomeUnion, CalledType: t, Outcomes: outcomes}
	default:
		return CallOutcome{Kind: CallOutcomeNotCallable, CalledType: t, NotCallable: NotCallableWhole}
	}
}

func (c *Context) callFunction(v ty.TFunction, args []ty.Type) CallOutcome {
	if v.Function != nil && v.Function.Known == ty.KnownFunctionRevealType {
		revealed := ty.Type(ty.Unknown)
		if len(args) > 0 {
			revealed = args[0]
		}
		return CallOutcome{Kind: CallOutcomeRevealType, Return: c.functionReturn(v.Function), Revealed: revealed}
	}
	return CallOutcome{Kind: CallOutcomeCallable, Return: c.functionReturn(v.Function)}
}

func (c *Context) functionReturn(f *ty.FunctionType) ty.Type {
	if c.returns == nil || f == nil {
		return ty.Unknown
	}
	return c.returns.ReturnType(f)
}

func (c *Context) callClass(v ty.TClass, args []ty.Type) CallOutcome {
	if v.Class != nil && v.Class.Known == ty.KnownClassBool {
		return CallOutcome{Kind: CallOutcomeCallable, Return: c.boolCallReturn(args)}
	}
	if v.Class == nil {
		return CallOutcome{Kind: CallOutcomeCallable, Return: ty.Unknown}
	}
	return CallOutcome{Kind: CallOutcomeCallable, Return: ty.Instance(v.Class)}
}

func (c *Context) boolCallReturn(args []ty.Type) ty.Type {
	if len(args) == 0 {
		return c.db.InternBooleanLiteral(false)
	}
	switch relations.Bool(args[0]) {
	case relations.AlwaysTrue:
		return c.db.InternBooleanLiteral(true)
	case relations.AlwaysFalse:
		return c.db.InternBooleanLiteral(false)
	default:
		return c.instanceOf(ty.KnownClassBool)
	}
}

// callInstance resolves __call__ as a class member of the instance's class
// (not via the instance), prepending self to the argument vector.
// original is the Instance(c) type itself, passed through as `self`.
func (c *Context) callInstance(original ty.Type, v ty.TInstance, args []ty.Type) CallOutcome {
	if v.Class == nil || c.checker == nil || c.checker.Graph == nil {
		return CallOutcome{Kind: CallOutcomeNotCallable, CalledType: original, NotCallable: NotCallableWhole}
	}
	results := c.checker.Graph.ClassMember(v.Class, "__call__", c.checker.Object)
	dunder := builder.UnionOf(c.db, c.checker, results...)
	if dunder.Equals(ty.Unbound) {
		return CallOutcome{Kind: CallOutcomeNotCallable, CalledType: original, NotCallable: NotCallableWhole}
	}
	withSelf := append([]ty.Type{original}, args...)
	return c.Call(dunder, withSelf)
}

// typeLabel renders t's display string, or "<unknown>" for a nil Type.
func typeLabel(t ty.Type) string {
	if t == nil {
		return "<unknown>"
	}
	return t.String()
}

func report(code, message string) *errors.Report {
	return &errors.Report{Schema: errors.SchemaV1, Code: code, Phase: "typecheck", Message: message}
}

// ReturnTypeResult materializes outcome's return type and any diagnostics
// it implies: a RevealType outcome always emits a
// "Revealed type is ..." diagnostic; a NotCallable outcome emits one of the
// three non-callable shapes; a Union outcome combines its arms' return
// types and, if every arm is not callable, reports the whole union rather
// than each arm individually. The return type on any error path is Unknown.
func (c *Context) ReturnTypeResult(o CallOutcome) (ty.Type, []*errors.Report) {
	switch o.Kind {
	case CallOutcomeCallable:
		return o.Return, nil

	case CallOutcomeRevealType:
		msg := fmt.Sprintf("Revealed type is `%s`", TruncateForDisplay(typeLabel(o.Revealed), 200))
		return o.Return, []*errors.Report{report(errors.TYC004, msg)}

	case CallOutcomeNotCallable:
		msg := fmt.Sprintf("Object of type `%s` is not callable", typeLabel(o.CalledType))
		return ty.Unknown, []*errors.Report{report(errors.TYC001, msg)}

	case CallOutcomeUnion:
		return c.unionCallResult(o)

	default:
		return ty.Unknown, nil
	}
}

func (c *Context) unionCallResult(o CallOutcome) (ty.Type, []*errors.Report) {
	var reports []*errors.Report
	union := builder.NewUnionBuilder(c.db, c.checker)
	notCallable := 0

	for _, sub := range o.Outcomes {
		if sub.Kind == CallOutcomeRevealType {
			msg := fmt.Sprintf("Revealed type is `%s`", TruncateForDisplay(typeLabel(sub.Revealed), 200))
			reports = append(reports, report(errors.TYC004, msg))
		}
		if sub.Kind == CallOutcomeNotCallable {
			notCallable++
			continue
		}
		union.Add(sub.Return)
	}

	total := len(o.Outcomes)
	switch {
	case total > 0 && notCallable == total:
		msg := fmt.Sprintf("Object of type `%s` is not callable", typeLabel(o.CalledType))
		reports = append(reports, report(errors.TYC001, msg))
		return ty.Unknown, reports
	case notCallable == 1:
		msg := fmt.Sprintf("Object of type `%s` is not callable (one union arm)", typeLabel(o.CalledType))
		reports = append(reports, report(errors.TYC002, msg))
	case notCallable > 1:
		msg := fmt.Sprintf("Object of type `%s` is not callable (%d union arms)", typeLabel(o.CalledType), notCallable)
		reports = append(reports, report(errors.TYC003, msg))
	}

	return union.Build(), reports
}
