package hermitian

import (
	"github.com/eth2030/bmsa/field"
	"github.com/eth2030/bmsa/point"
)

// syndromeTable maps basis monomials to F-valued syndromes, realized as a
// Lookup[T] -- any object offering multi-index lookup with out-of-range
// entries reading as zero qualifies, polynomials and syndrome tables
// alike -- so it can be fed directly to bms.New and mvpoly.Conv.
type syndromeTable[T any] struct {
	fld    field.Field[T]
	values map[string]T
}

func newSyndromeTable[T any](fld field.Field[T]) *syndromeTable[T] {
	return &syndromeTable[T]{fld: fld, values: map[string]T{}}
}

// At implements mvpoly.Lookup. A monomial never assembled (or not yet
// extended to, see extendSyndromeAt) reads as the field's zero element.
func (s *syndromeTable[T]) At(p *point.Point) T {
	if v, ok := s.values[p.Key()]; ok {
		return v
	}
	return s.fld.Zero()
}

func (s *syndromeTable[T]) set(p *point.Point, v T) {
	s.values[p.Key()] = v
}

// assembleSyndromes computes, for each basis monomial b, S_b = Σ_i
// r_i * b(P_i), where b(P) = P[0]^b[0] * P[1]^b[1].
func assembleSyndromes[T any](fld field.Field[T], points []CurvePoint[T], received []T, basis []*point.Point) *syndromeTable[T] {
	tbl := newSyndromeTable[T](fld)
	for _, b := range basis {
		sum := fld.Zero()
		i0, j0 := b.At(0), b.At(1)
		for i, r := range received {
			p := points[i]
			mono := fld.Mul(fld.Pow(p.X, int64(i0)), fld.Pow(p.Y, int64(j0)))
			sum = fld.Add(sum, fld.Mul(r, mono))
		}
		tbl.set(b, sum)
	}
	return tbl
}
