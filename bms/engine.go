// Package bms implements the Berlekamp–Massey–Sakata algorithm: a
// multi-dimensional generalization of classical Berlekamp-Massey that
// produces a minimal Gröbner-style basis of the vanishing ideal of a
// multi-dimensional array. It is grounded on
// pkg/das/erasure/polynomial_ops.go's RSBerlekampMassey (the classical
// 1-D precursor this generalizes) and on original_source/bmsa.hpp, whose
// own BMSAlgorithm main loop is
// incomplete (an empty branch, a typo shadowing its own update variable,
// and a stub getPolynomialList) -- this package implements the complete
// algorithm rather than porting that draft.
package bms

import (
	"fmt"
	"sort"

	"github.com/eth2030/bmsa/field"
	"github.com/eth2030/bmsa/mvpoly"
	"github.com/eth2030/bmsa/point"
)

// entry pairs a multi-degree / delta-point with its polynomial, since Go
// maps need comparable keys and point.Point is not one (see point.Point.Key).
type entry[T any] struct {
	pt   *point.Point
	poly *mvpoly.Poly[T]
}

// Engine holds the F-map, G-map and previous delta set state carried
// across a BMS run's iterations.
type Engine[T any] struct {
	fld   field.Field[T]
	order point.MonomialOrder
	dim   int
	u     mvpoly.Lookup[T]
	bound *point.Point

	f         map[string]entry[T]
	g         map[string]entry[T]
	deltaPrev []*point.Point

	scanned []*point.Point
	ran     bool
}

// New builds a BMS engine over the given field, monomial order and
// dimension, ready to scan u up to (but excluding) bound.
func New[T any](fld field.Field[T], order point.MonomialOrder, dim int, u mvpoly.Lookup[T], bound *point.Point) *Engine[T] {
	origin := point.Origin(dim)
	return &Engine[T]{
		fld:   fld,
		order: order,
		dim:   dim,
		u:     u,
		bound: bound,
		f: map[string]entry[T]{
			origin.Key(): {pt: origin, poly: mvpoly.NewOne[T](fld, dim)},
		},
		g: map[string]entry[T]{},
	}
}

// invariantViolation reports an unreachable precondition (missing
// witness, missing G key) as a fatal bug: these are asserted programming
// errors, never recoverable caller-visible errors.
func invariantViolation(msg string) {
	panic("bms: invariant violation: " + msg)
}

type discrRecord[T any] struct {
	s   *point.Point
	val T
}

// ComputeMinimalSet runs the full scan from the origin up to (exclusive)
// the engine's bound and returns the final F-map's polynomials, the
// minimal Gröbner-style basis of the vanishing ideal. Calling it more than
// once returns the same cached result.
func (e *Engine[T]) ComputeMinimalSet() []*mvpoly.Poly[T] {
	if !e.ran {
		e.run()
	}
	keys := make([]string, 0, len(e.f))
	for k := range e.f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*mvpoly.Poly[T], 0, len(keys))
	for _, k := range keys {
		out = append(out, e.f[k].poly)
	}
	return out
}

// F returns the final F-map keyed by each polynomial's multi-degree
// string key (point.Point.Key), available after ComputeMinimalSet.
func (e *Engine[T]) F() map[string]*mvpoly.Poly[T] {
	if !e.ran {
		e.run()
	}
	out := make(map[string]*mvpoly.Poly[T], len(e.f))
	for k, v := range e.f {
		out[k] = v.poly
	}
	return out
}

// DeltaPoints returns the final delta set Δ, available after
// ComputeMinimalSet.
func (e *Engine[T]) DeltaPoints() []*point.Point {
	if !e.ran {
		e.run()
	}
	return append([]*point.Point(nil), e.deltaPrev...)
}

// G returns the final G-map keyed by each witness polynomial's delta-point
// string key (point.Point.Key), available after ComputeMinimalSet. Package
// hermitian's Feng-Rao extension loop needs this alongside F() to build
// each candidate point's Γ_k set; it is a plain inspection method in the
// same shape as F(), not a behavior change.
func (e *Engine[T]) G() map[string]*mvpoly.Poly[T] {
	if !e.ran {
		e.run()
	}
	out := make(map[string]*mvpoly.Poly[T], len(e.g))
	for k, v := range e.g {
		out[k] = v.poly
	}
	return out
}

// GPoints returns, for each key of the final G-map, the delta-point it is
// keyed by (the map key strings alone don't let callers reconstruct the
// *point.Point without re-parsing).
func (e *Engine[T]) GPoints() map[string]*point.Point {
	if !e.ran {
		e.run()
	}
	out := make(map[string]*point.Point, len(e.g))
	for k, v := range e.g {
		out[k] = v.pt
	}
	return out
}

// FPoints is the F-map analogue of GPoints.
func (e *Engine[T]) FPoints() map[string]*point.Point {
	if !e.ran {
		e.run()
	}
	out := make(map[string]*point.Point, len(e.f))
	for k, v := range e.f {
		out[k] = v.pt
	}
	return out
}

func (e *Engine[T]) run() {
	e.ran = true
	e.scanned = scanSequence(e.dim, e.bound, e.order)
	for _, k := range e.scanned {
		e.step(k)
	}
}

// step performs the per-point update at k: a six-step discrepancy pass,
// delta-set update, sigma-set construction, and Berlekamp-style update of
// both the F-map and G-map.
func (e *Engine[T]) step(k *point.Point) {
	fPrev := e.f
	gPrev := e.g

	// 1. Discrepancy pass.
	discr := map[string]discrRecord[T]{}
	var newDeltas []*point.Point
	for _, fe := range fPrev {
		s := fe.pt
		if !s.LessEq(k) {
			continue
		}
		b := mvpoly.Conv[T](fe.poly, e.u, s, k)
		discr[s.Key()] = discrRecord[T]{s: s, val: b}
		if e.fld.Equal(b, e.fld.Zero()) {
			continue
		}
		c := k.Sub(s)
		if !dominatedByAny(c, gPrev) {
			newDeltas = append(newDeltas, c)
		}
	}

	// 2. Delta set update.
	candidates := append(append([]*point.Point(nil), newDeltas...), e.deltaPrev...)
	deltaNew := point.PartialMaximums(candidates)

	// 3. Sigma set.
	sigmaNew := point.Conjugate(deltaNew, e.dim, e.order)

	// 4. New G.
	gNew := map[string]entry[T]{}
	for _, c := range deltaNew {
		key := c.Key()
		if old, ok := gPrev[key]; ok {
			gNew[key] = old
			continue
		}
		s := k.Sub(c)
		rec, ok := discr[s.Key()]
		if !ok || e.fld.Equal(rec.val, e.fld.Zero()) {
			invariantViolation(fmt.Sprintf("missing nonzero discrepancy witness for new delta point %s at scan point %s", c, k))
		}
		inv, err := e.fld.Inv(rec.val)
		if err != nil {
			invariantViolation("discrepancy witness inverse: " + err.Error())
		}
		witness, ok := fPrev[s.Key()]
		if !ok {
			invariantViolation(fmt.Sprintf("missing F witness at %s for new delta point %s", s, c))
		}
		gNew[key] = entry[T]{pt: c, poly: witness.poly.ScalarMul(inv)}
	}

	// 5. New F.
	fNew := map[string]entry[T]{}
	for _, t := range sigmaNew {
		s := findWitness(fPrev, t)
		if s == nil {
			invariantViolation(fmt.Sprintf("no F witness s <=_c %s", t))
		}
		u := t.Sub(s.pt)

		var newPoly *mvpoly.Poly[T]
		if t.LessEq(k) {
			g := findGWitness(gPrev, k, t)
			if g != nil {
				rec := discr[s.pt.Key()]
				berlekampTerm := g.poly.ShiftBy(g.pt.Sub(k.Sub(t))).ScalarMul(rec.val)
				newPoly = s.poly.ShiftBy(u).Sub(berlekampTerm)
			} else {
				newPoly = s.poly.ShiftBy(u)
			}
		} else {
			newPoly = s.poly.ShiftBy(u)
		}
		fNew[t.Key()] = entry[T]{pt: t, poly: newPoly}
	}

	// 6. Commit.
	e.f = fNew
	e.g = gNew
	e.deltaPrev = deltaNew
}

// dominatedByAny reports whether some existing G key g satisfies c <=_c g.
func dominatedByAny[T any](c *point.Point, g map[string]entry[T]) bool {
	for _, ge := range g {
		if c.LessEq(ge.pt) {
			return true
		}
	}
	return false
}

// findWitness locates an s ∈ keys(fPrev) with s ≤_c t: one must exist
// because Σ points are constructed from Δ points (which came from F
// keys). When multiple candidates qualify, the one
// of greatest weight is chosen (the tightest-fitting witness, minimizing
// the shift u = t-s), with Key() as a deterministic tie-break.
func findWitness[T any](fPrev map[string]entry[T], t *point.Point) *entry[T] {
	var best *entry[T]
	for _, fe := range fPrev {
		if !fe.pt.LessEq(t) {
			continue
		}
		if best == nil || fe.pt.Weight() > best.pt.Weight() ||
			(fe.pt.Weight() == best.pt.Weight() && fe.pt.Key() < best.pt.Key()) {
			feCopy := fe
			best = &feCopy
		}
	}
	return best
}

// findGWitness locates a c ∈ keys(gPrev) with (k-t) ≤_c c, the witness
// used by the Case A update branch. Ties are broken the same way as
// findWitness.
func findGWitness[T any](gPrev map[string]entry[T], k, t *point.Point) *entry[T] {
	need := k.Sub(t)
	var best *entry[T]
	for _, ge := range gPrev {
		if !need.LessEq(ge.pt) {
			continue
		}
		if best == nil || ge.pt.Weight() < best.pt.Weight() ||
			(ge.pt.Weight() == best.pt.Weight() && ge.pt.Key() < best.pt.Key()) {
			geCopy := ge
			best = &geCopy
		}
	}
	return best
}
