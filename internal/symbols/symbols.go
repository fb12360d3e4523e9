// Package symbols implements symbol-type resolution: folding a symbol's
// reachable bindings and declarations, each narrowed by its own
// constraints, into one public type. The fold runs per symbol over an
// externally-supplied UseDefMap; this package never builds that map
// itself.
package symbols

import (
	"sort"

	"github.com/sunholo/pylattice/internal/db"
	"github.com/sunholo/pylattice/internal/errors"
	"github.com/sunholo/pylattice/internal/index"
	"github.com/sunholo/pylattice/internal/relations"
	"github.com/sunholo/pylattice/internal/ty"
	"github.com/sunholo/pylattice/internal/ty/builder"
)

// Resolver folds bindings/declarations into public types, reporting
// conflicting-declarations diagnostics as it goes.
type Resolver struct {
	db      *db.DB
	checker *relations.Checker
	useDef  index.UseDefMap
	reports []*errors.Report
}

// New creates a Resolver over one UseDefMap.
func New(d *db.DB, checker *relations.Checker, useDef index.UseDefMap) *Resolver {
	return &Resolver{db: d, checker: checker, useDef: useDef}
}

// Reports returns the diagnostics accumulated since the Resolver was
// created; reading them does not clear them.
func (r *Resolver) Reports() []*errors.Report { return r.reports }

// BindingsTy folds a symbol's bindings through their narrowing constraints:
// the binding's inferred type is intersected with each constraint's
// narrowing type (all positive), and the per-binding results are unioned,
// together with the optional unbound marker. unboundMarker may be
// ty.Unbound for an ordinary local, or a caller-supplied substitute (e.g. an
// implicit-global fallback's type) — or nil if there is no such path.
//
// It is a programmer error to call BindingsTy with zero bindings and no
// unbound marker.
func (r *Resolver) BindingsTy(bindings []index.Binding, unboundMarker ty.Type) ty.Type {
	if len(bindings) == 0 && unboundMarker == nil {
		panic("symbols: BindingsTy called with zero bindings and no unbound marker")
	}

	union := builder.NewUnionBuilder(r.db, r.checker)
	for _, bnd := range bindings {
		union.Add(r.narrowBinding(bnd))
	}
	if unboundMarker != nil {
		union.Add(unboundMarker)
	}
	return union.Build()
}

// narrowBinding intersects one binding's inferred type with all of its
// narrowing constraints (all positive).
func (r *Resolver) narrowBinding(bnd index.Binding) ty.Type {
	constraints := bnd.NarrowingConstraints()
	if len(constraints) == 0 {
		return bnd.Type()
	}
	inter := builder.NewIntersectionBuilder(r.db, r.checker)
	inter.AddPositive(bnd.Type())
	for _, c := range constraints {
		inter.AddPositive(c.Type())
	}
	return inter.Build()
}

// publicTypeResult is the memoized shape of one PublicType fold: the folded
// type plus any diagnostics the fold produced, so a cache hit can replay
// the same reports the original computation raised.
type publicTypeResult struct {
	t       ty.Type
	reports []*errors.Report
}

// PublicType computes the public type of symbol s: declarations
// win over bindings when any are live; otherwise bindings alone, folded
// with an unbound/substitute marker only when r.useDef.PublicMayBeUnbound
// says some path actually skips binding s. A trivially-bound symbol (no
// such path) resolves to its bindings' type with no marker at all.
//
// The fold is memoized through the DB under "public_ty:" + s.ID, so asking
// the same question twice in one revision computes once; the diagnostics it
// produced are appended to Reports on every call, hit or miss. A driver
// that mutates a symbol's declarations mid-revision must Forget the
// symbol's key (internal/repl's Registry.Declare does).
func (r *Resolver) PublicType(s index.Symbol, globalFallback ty.Type) ty.Type {
	key := "public_ty:" + s.ID
	if globalFallback != nil {
		key += "|" + globalFallback.String()
	}
	res := r.db.Memoize(key, func() any {
		return r.computePublicType(s, globalFallback)
	}).(publicTypeResult)
	r.reports = append(r.reports, res.reports...)
	return res.t
}

func (r *Resolver) computePublicType(s index.Symbol, globalFallback ty.Type) publicTypeResult {
	if r.useDef.HasPublicDeclarations(s.ID) {
		return r.publicDeclaredType(s)
	}
	bindings := r.useDef.PublicBindings(s.ID)
	if !r.useDef.PublicMayBeUnbound(s.ID) {
		if len(bindings) == 0 {
			return publicTypeResult{t: ty.Unbound}
		}
		return publicTypeResult{t: r.BindingsTy(bindings, nil)}
	}
	marker := ty.Unbound
	if globalFallback != nil {
		marker = globalFallback
	}
	if len(bindings) == 0 {
		return publicTypeResult{t: marker}
	}
	return publicTypeResult{t: r.BindingsTy(bindings, marker)}
}

func (r *Resolver) publicDeclaredType(s index.Symbol) publicTypeResult {
	decls := r.useDef.PublicDeclarations(s.ID)
	union := builder.NewUnionBuilder(r.db, r.checker)

	var res publicTypeResult
	var declTypes []ty.Type
	for _, d := range decls {
		declTypes = append(declTypes, d.Type())
		union.Add(d.Type())
	}
	if !r.pairwiseEquivalent(declTypes) {
		res.reports = append(res.reports, &errors.Report{
			Schema:  errors.SchemaV1,
			Code:    errors.TYC006,
			Phase:   "typecheck",
			Message: "conflicting declarations for " + s.Name,
		})
	}

	if r.useDef.PublicMayBeUndeclared(s.ID) {
		bindings := r.useDef.PublicBindings(s.ID)
		if len(bindings) > 0 {
			union.Add(r.BindingsTy(bindings, ty.Unknown))
		} else {
			union.Add(ty.Unknown)
		}
	}
	res.t = union.Build()
	return res
}

// CheckTypes folds every symbol of every scope into its public type,
// returning the diagnostics accumulated along the way — the check_types
// boundary, minus rendering. Symbols are visited in name order
// within each scope so the diagnostic sequence is deterministic.
func (r *Resolver) CheckTypes(scopes []index.Scope) []*errors.Report {
	for _, scope := range scopes {
		names := make([]string, 0, len(scope.Symbols))
		for name := range scope.Symbols {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			r.PublicType(scope.Symbols[name], nil)
		}
	}
	return r.Reports()
}

func (r *Resolver) pairwiseEquivalent(types []ty.Type) bool {
	for i := 1; i < len(types); i++ {
		if !relations.Equivalent(types[0], types[i]) {
			return false
		}
	}
	return true
}
