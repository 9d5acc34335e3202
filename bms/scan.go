package bms

import "github.com/eth2030/bmsa/point"

// scanSequence returns every lattice point k with k <_O bound, in
// ascending order. When order has a live successor (point.Successive,
// e.g. GradedAntilex) it is walked directly from the origin. Otherwise
// (point.Weighted) the sequence is built by bounding each coordinate from
// bound's weighted value and the order's per-coordinate weights, then
// generating and sorting -- the same bounded, successor-free technique
// point.FirstN uses, since a live weighted successor would require an
// external oracle (see point.Weighted's doc comment).
func scanSequence(dim int, bound *point.Point, order point.MonomialOrder) []*point.Point {
	if succ, ok := order.(point.Successive); ok {
		var seq []*point.Point
		cur := point.Origin(dim)
		for order.Less(cur.Coords(), bound.Coords()) {
			seq = append(seq, cur)
			cur = point.New(succ.Successor(cur.Coords())...)
		}
		return seq
	}

	w, ok := order.(point.Weighted)
	if !ok {
		invariantViolation("scan bound requires either a Successive order or a point.Weighted order")
	}

	boundWeight := w.Weight(bound.Coords())
	maxCoordSum := 0
	for _, wt := range w.Weights {
		if wt <= 0 {
			invariantViolation("weighted order requires strictly positive weights")
		}
		maxCoordSum += (boundWeight + wt - 1) / wt
	}

	candidates := point.EnumerateUpToWeight(dim, maxCoordSum, order)
	var seq []*point.Point
	for _, c := range candidates {
		if order.Less(c.Coords(), bound.Coords()) {
			seq = append(seq, c)
		}
	}
	return seq
}
