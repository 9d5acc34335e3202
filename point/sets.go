package point

import "sort"

// PartialMaximums returns the minimal subset M ⊆ S with the same
// coordinate-wise upper set as S: for every s ∈ S there exists m ∈ M with
// s ≤_c m, and M is an antichain under ≤_c. Grounded on
// original_source/Point.hpp's getPartialMaximums: scan the input, skip any
// candidate already dominated by a point in M, otherwise drop from M every
// point the candidate dominates and insert it.
func PartialMaximums(s []*Point) []*Point {
	var m []*Point
	for _, cand := range s {
		dominated := false
		for _, existing := range m {
			if cand.LessEq(existing) {
				dominated = true
				break
			}
		}
		if dominated {
			continue
		}
		kept := m[:0:0]
		for _, existing := range m {
			if !existing.LessEq(cand) {
				kept = append(kept, existing)
			}
		}
		m = append(kept, cand)
	}
	return m
}

// PartialMinimums is the dual of PartialMaximums: the minimal subset M ⊆ S
// such that every s ∈ S has some m ∈ M with m ≤_c s, and M is an antichain.
func PartialMinimums(s []*Point) []*Point {
	var m []*Point
	for _, cand := range s {
		dominated := false
		for _, existing := range m {
			if existing.LessEq(cand) {
				dominated = true
				break
			}
		}
		if dominated {
			continue
		}
		kept := m[:0:0]
		for _, existing := range m {
			if !cand.LessEq(existing) {
				kept = append(kept, existing)
			}
		}
		m = append(kept, cand)
	}
	return m
}

// Conjugate computes the Sigma set Σ = conjugate(Δ): the antichain of
// minimal points not lying in the down-closure of any δ ∈ Δ under ≤_c
// (i.e. x survives unless x ≤_c δ for some δ). If Δ is empty, the
// conjugate is the single-element set {origin}. Otherwise: let W be the
// maximum weight over Δ, enumerate every lattice point of weight ≤ W+1 in
// monomial order, retain those not covered by any δ, and reduce with
// PartialMinimums. Verified against the classical Δ={(0,1),(2,0)} ⇒
// Σ={(3,0),(1,1),(0,2)} case -- see DESIGN.md.
//
// dim must be supplied explicitly because an empty Δ carries no dimension
// of its own.
func Conjugate(delta []*Point, dim int, order MonomialOrder) []*Point {
	if len(delta) == 0 {
		return []*Point{Origin(dim)}
	}

	maxWeight := 0
	for _, d := range delta {
		if w := d.Weight(); w > maxWeight {
			maxWeight = w
		}
	}

	candidates := enumerateUpTo(dim, maxWeight+1, order)
	var surviving []*Point
	for _, c := range candidates {
		covered := false
		for _, d := range delta {
			if c.LessEq(d) {
				covered = true
				break
			}
		}
		if !covered {
			surviving = append(surviving, c)
		}
	}
	return PartialMinimums(surviving)
}

// EnumerateUpToWeight returns every point of the given dimension whose
// Σp[i] is at most maxWeight, sorted ascending by order. Exported for
// callers (package hermitian) that need a bounded weighted enumeration
// without a live successor -- see Weighted's doc comment.
func EnumerateUpToWeight(dim, maxWeight int, order MonomialOrder) []*Point {
	return enumerateUpTo(dim, maxWeight, order)
}

// FirstN returns the first n points of the given dimension in order's
// total order, by doubling a coordinate-sum weight bound until at least n
// candidates have been generated and raising the bound by one no longer
// changes the n-th point (every point beyond the bound dominates one of
// coordinate sum bound+1, so for a monomial order none of them can come
// earlier). This realizes bounded, successor-free
// enumeration under an arbitrary MonomialOrder (in particular Weighted,
// which has no live Successor -- see its doc comment), used by package
// hermitian to list Hermitian pole-order basis monomials.
func FirstN(dim, n int, order MonomialOrder) []*Point {
	if n == 0 {
		return nil
	}
	bound := dim
	for {
		candidates := enumerateUpTo(dim, bound, order)
		if len(candidates) >= n {
			wider := enumerateUpTo(dim, bound+1, order)
			if wider[n-1].Equal(candidates[n-1]) {
				return candidates[:n]
			}
		}
		bound *= 2
	}
}

// enumerateUpTo returns every point of the given dimension whose Σp[i] is
// at most maxWeight, sorted ascending by order. The bound is always the
// plain coordinate-sum weight used by the conjugate construction,
// independent of whichever order is used to sort the result -- Weighted
// order is only ever consulted for tie-breaking and final ordering here,
// never for the enumeration bound itself.
func enumerateUpTo(dim, maxWeight int, order MonomialOrder) []*Point {
	var out []*Point
	coords := make([]int, dim)
	var rec func(idx, remaining int)
	rec = func(idx, remaining int) {
		if idx == dim-1 {
			coords[idx] = remaining
			out = append(out, New(coords...))
			coords[idx] = 0
			return
		}
		for v := 0; v <= remaining; v++ {
			coords[idx] = v
			rec(idx+1, remaining-v)
		}
		coords[idx] = 0
	}
	for w := 0; w <= maxWeight; w++ {
		rec(0, w)
	}
	sort.Slice(out, func(i, j int) bool {
		return order.Less(out[i].coords, out[j].coords)
	})
	return out
}
