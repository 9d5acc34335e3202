package point

// MonomialOrder is the value-level strategy object Point/BMS instances are
// parameterized over: an order policy expressed as a plain interface
// rather than a compile-time policy class.
type MonomialOrder interface {
	// Less reports whether a <_O b, the total monomial order.
	Less(a, b []int) bool
}

// Successive is implemented by monomial orders that support a live
// successor operation (the "++p" enumeration primitive). Weighted order
// deliberately does not implement this interface: a live weighted
// successor would require an ILP oracle out of scope here, and every place
// this module needs weighted enumeration is a bounded region handled by
// generate-and-sort instead (see Weighted below).
type Successive interface {
	MonomialOrder
	// Successor returns the next point strictly greater than coords under
	// this order. coords is not mutated.
	Successor(coords []int) []int
}

// GradedAntilex is the default monomial order: compare by weight first,
// then by the coordinate sequence read from the highest index down to
// index 0 (ascending at the first position where the two points differ).
// This is grounded on original_source/Point.hpp's GradedAntilexMonomialOrder
// (totalLess via std::lexicographical_compare(rbegin,rend), inc() via a
// forward find-first-nonzero scan) -- ported and validated by hand-tracing
// its enumeration order against small cases (see DESIGN.md).
type GradedAntilex struct{}

var _ Successive = GradedAntilex{}

// Less implements MonomialOrder.
func (GradedAntilex) Less(a, b []int) bool {
	wa, wb := sum(a), sum(b)
	if wa != wb {
		return wa < wb
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Successor implements the monomial-order increment ++p. It is a direct
// port of Point.hpp's inc(): find the first nonzero coordinate scanning
// from index 0 upward; if none, the point was the origin and the successor
// is (1,0,...,0); if that coordinate is the last index, its entire value
// rolls over into index 0 at one higher weight; otherwise one unit moves
// from that coordinate into the next index and the remainder collects at
// index 0.
func (GradedAntilex) Successor(coords []int) []int {
	n := len(coords)
	next := append([]int(nil), coords...)

	idx := -1
	for i := 0; i < n; i++ {
		if next[i] != 0 {
			idx = i
			break
		}
	}

	switch {
	case idx == -1:
		next[0] = 1
	case idx == n-1:
		a := next[idx] + 1
		next[idx] = 0
		next[0] = a
	default:
		next[idx+1]++
		a := next[idx] - 1
		next[idx] = 0
		next[0] = a
	}
	return next
}

func sum(a []int) int {
	s := 0
	for _, v := range a {
		s += v
	}
	return s
}

// Weighted is the pole-order used for Hermitian AG codes: weight(p) =
// Σ weights[i]*p[i], with ties (equal weight) broken by GradedAntilex so
// the order remains total. It implements only MonomialOrder, not
// Successive: a live weighted successor would need an external ILP oracle
// (the unique next lattice point of strictly greater weighted value with
// minimum weighted value), held out of scope here. Every caller that needs
// weighted enumeration (basis-monomial listing in package hermitian)
// instead generates all points up to a weight bound and sorts by Less,
// which visits the same points in the same relative order without
// requiring a stepwise oracle.
type Weighted struct {
	Weights []int
}

var _ MonomialOrder = Weighted{}

// Weight returns Σ weights[i]*p[i].
func (o Weighted) Weight(coords []int) int {
	w := 0
	for i, c := range coords {
		w += o.Weights[i] * c
	}
	return w
}

// Less implements MonomialOrder.
func (o Weighted) Less(a, b []int) bool {
	wa, wb := o.Weight(a), o.Weight(b)
	if wa != wb {
		return wa < wb
	}
	return GradedAntilex{}.Less(a, b)
}
