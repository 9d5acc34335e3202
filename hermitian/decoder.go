package hermitian

import (
	"errors"
	"fmt"

	"github.com/eth2030/bmsa/bms"
	"github.com/eth2030/bmsa/field"
	"github.com/eth2030/bmsa/log"
	"github.com/eth2030/bmsa/mvpoly"
	"github.com/eth2030/bmsa/point"
)

var herLog = log.Default().Module("hermitian")

// ErrDecodeInconclusive is the one caller-recoverable decode failure:
// DecodeExtended's majority vote tied (or had no supporting candidates)
// while trying to extend the syndrome past the directly computable
// range.
var ErrDecodeInconclusive = errors.New("hermitian: decode inconclusive")

// Decoder holds the fixed parameters of a Hermitian code (curve,
// dimension, pole bound) and the rational points computed from them.
// Nothing here depends on a particular received word -- New builds the
// curve once, and Decode/DecodeExtended each run independently against it.
type Decoder[T any] struct {
	fld    field.DecoderField[T]
	r      int
	l      int
	order  point.MonomialOrder
	points []CurvePoint[T]
	basis  []*point.Point
}

// New constructs the rational points of the Hermitian curve x^(r+1) =
// y^r + y over fld (which must be F_{r^2}) and the first l basis
// monomials in pole order.
func New[T any](fld field.DecoderField[T], r, l int) (*Decoder[T], error) {
	if r < 1 {
		return nil, fmt.Errorf("hermitian: curve parameter r must be >= 1, got %d", r)
	}
	if l < 1 {
		return nil, fmt.Errorf("hermitian: pole bound l must be >= 1, got %d", l)
	}
	order := point.Weighted{Weights: []int{r, r + 1}}
	points := rationalPoints[T](fld, r)
	if len(points) == 0 {
		return nil, fmt.Errorf("hermitian: curve has no affine rational points over the supplied field")
	}
	basis := point.FirstN(2, l, order)
	return &Decoder[T]{
		fld:    fld,
		r:      r,
		l:      l,
		order:  order,
		points: points,
		basis:  basis,
	}, nil
}

// N returns the code length (number of affine rational points).
func (d *Decoder[T]) N() int { return len(d.points) }

// Points returns a defensive copy of the enumerated rational points, in
// the order Decode/DecodeExtended index received words and error
// positions by.
func (d *Decoder[T]) Points() []CurvePoint[T] {
	return append([]CurvePoint[T](nil), d.points...)
}

// scanBound returns the successor, under d.order, of the largest point in
// basis: the exclusive bound passed to BMS. Since d.order has no live
// Successive successor (the Weighted order never needs one -- see
// point.Weighted's doc comment), this is realized as the (len(basis)+1)-th
// point of the same bounded enumeration point.FirstN used to build basis,
// which is exactly the next point strictly greater under d.order.
func (d *Decoder[T]) scanBound(basis []*point.Point) *point.Point {
	return point.FirstN(2, len(basis)+1, d.order)[len(basis)]
}

// locate runs BMS over the given syndrome table and basis, then reports
// the indices of points at which every returned polynomial vanishes.
func (d *Decoder[T]) locate(tbl *syndromeTable[T], basis []*point.Point) []int {
	bound := d.scanBound(basis)
	engine := bms.New[T](d.fld, d.order, 2, tbl, bound)
	locators := engine.ComputeMinimalSet()
	herLog.Debug("computed error-locator set", "count", len(locators), "bound", bound.String())

	var positions []int
	for i, p := range d.points {
		vanishes := true
		for _, f := range locators {
			if !d.fld.Equal(f.Eval(p.X, p.Y), d.fld.Zero()) {
				vanishes = false
				break
			}
		}
		if vanishes {
			positions = append(positions, i)
		}
	}
	return positions
}

// Decode returns the indices of received where the Hermitian code's
// error-locator ideal vanishes, using only the directly computable
// syndromes -- a restricted decoding radius compared to DecodeExtended,
// but with no dependence on the majority-voting extension below.
func (d *Decoder[T]) Decode(received []T) ([]int, error) {
	if len(received) != len(d.points) {
		return nil, fmt.Errorf("hermitian: received word has length %d, code length is %d", len(received), len(d.points))
	}
	tbl := assembleSyndromes[T](d.fld, d.points, received, d.basis)
	return d.locate(tbl, d.basis), nil
}

// DecodeExtended runs Decode's directly-computable syndrome table, then
// extends it by up to extra additional points using Feng-Rao majority
// voting (extendSyndromeAt) before locating errors -- completing the
// majority-voting loop left unfinished in
// original_source/bmsa-decoding.hpp. If a vote ties or has no supporting
// candidates at any extension step, it stops there and reports
// ErrDecodeInconclusive rather than guessing.
func (d *Decoder[T]) DecodeExtended(received []T, extra int) ([]int, error) {
	if len(received) != len(d.points) {
		return nil, fmt.Errorf("hermitian: received word has length %d, code length is %d", len(received), len(d.points))
	}
	basis := append([]*point.Point(nil), d.basis...)
	tbl := assembleSyndromes[T](d.fld, d.points, received, basis)

	for i := 0; i < extra; i++ {
		k := d.scanBound(basis)
		value, err := extendSyndromeAt[T](d.fld, tbl, d.order, basis, k)
		if err != nil {
			return nil, fmt.Errorf("hermitian: extending syndrome at %s after %d/%d steps: %w", k, i, extra, err)
		}
		tbl.set(k, value)
		basis = append(basis, k)
	}

	return d.locate(tbl, basis), nil
}

// extendSyndromeAt computes the candidate extension set Γ_k and the
// Feng-Rao majority vote for the syndrome value at k:
//
//	Γ_k = { t : s ≤_c t, t ≤_c k, (k - t) ≤_c some key of G, for some s ∈ keys(F) }
//
// (the second condition is non-strict: read strictly it would make Γ_k
// empty whenever t = k, which cannot happen here since k is strictly
// beyond every basis point scanned so far and t ranges over keys(F),
// themselves all ≤_O the current bound, so t ≤_c k never actually admits
// t = k in practice).
//
// For each t ∈ Γ_k the relation F[t] already annihilates every previously
// known syndrome; since conv(F[t], tbl, t, k) is linear in the one
// still-unknown entry tbl[k] with coefficient F[t][t] (the lookup at i=t
// reads tbl[k] and every other term is already known), requiring the
// convolution stay zero solves uniquely for a candidate value of S_k.
// Candidates are tallied by field equality; a strict plurality wins, a tie
// (including an empty Γ_k) is reported as ErrDecodeInconclusive.
func extendSyndromeAt[T any](fld field.Field[T], tbl *syndromeTable[T], order point.MonomialOrder, basis []*point.Point, k *point.Point) (T, error) {
	bound := point.FirstN(2, len(basis)+1, order)[len(basis)]
	engine := bms.New[T](fld, order, 2, tbl, bound)
	engine.ComputeMinimalSet()
	fMap := engine.F()
	fPts := engine.FPoints()
	gPts := engine.GPoints()

	type vote struct {
		value T
		count int
	}
	var votes []vote

	for key, t := range fPts {
		if !t.LessEq(k) {
			continue
		}
		if !dominatedByAnyPoint(gPts, k.Sub(t)) {
			continue
		}
		f := fMap[key]
		leading := f.At(t)
		if fld.Equal(leading, fld.Zero()) {
			continue
		}
		inv, err := fld.Inv(leading)
		if err != nil {
			continue
		}
		partial := mvpoly.Conv[T](f, tbl, t, k)
		implied := fld.Mul(fld.Neg(partial), inv)

		found := false
		for i := range votes {
			if fld.Equal(votes[i].value, implied) {
				votes[i].count++
				found = true
				break
			}
		}
		if !found {
			votes = append(votes, vote{value: implied, count: 1})
		}
	}

	if len(votes) == 0 {
		var zero T
		return zero, ErrDecodeInconclusive
	}
	best := votes[0]
	tie := false
	for _, v := range votes[1:] {
		if v.count > best.count {
			best = v
			tie = false
		} else if v.count == best.count {
			tie = true
		}
	}
	if tie {
		var zero T
		return zero, ErrDecodeInconclusive
	}
	return best.value, nil
}

// dominatedByAnyPoint reports whether some point in pts dominates need
// under ≤_c, the "(k - t) ≤_c some key of G" test of Γ_k.
func dominatedByAnyPoint(pts map[string]*point.Point, need *point.Point) bool {
	for _, p := range pts {
		if need.LessEq(p) {
			return true
		}
	}
	return false
}
