// Package hermitian implements the BMS-based AG decoder for one-point
// Hermitian codes. A Hermitian curve of parameter r is the plane curve
// x^(r+1) = y^r + y over F_{r^2}; its affine rational points (there are
// exactly r^3 of them) carry the codeword, and the pole order at the
// single point at infinity -- the weighted monomial order with weights
// (r, r+1) -- selects the evaluation basis.
//
// Field initialization and error-value recovery stay the caller's
// responsibility; the decoding machinery itself -- rational-point
// enumeration, syndrome assembly, BMS invocation, common-root search, and
// the Feng-Rao majority-voting extension left unfinished in
// original_source/bmsa-decoding.hpp -- is implemented here.
package hermitian

import (
	"fmt"

	"github.com/eth2030/bmsa/field"
)

// CurvePoint is an affine rational point (x, y) of a Hermitian curve.
type CurvePoint[T any] struct {
	X, Y T
}

// String renders (x, y) using fmt's default verb for T, for diagnostics
// only.
func (p CurvePoint[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// rationalPoints enumerates every affine (x, y) in F_{r^2} x F_{r^2}
// satisfying x^(r+1) = y^r + y. The order is the double loop over fld's
// own Elements() order (x outermost, y innermost), filtered by the curve
// equation: deterministic, and the only order the syndrome-assembly and
// error-position steps of this package ever rely on, since both index
// into the same slice.
func rationalPoints[T any](fld field.DecoderField[T], r int) []CurvePoint[T] {
	elems := fld.Elements()
	var pts []CurvePoint[T]
	for _, x := range elems {
		xp := fld.Pow(x, int64(r+1))
		for _, y := range elems {
			yp := fld.Add(fld.Pow(y, int64(r)), y)
			if fld.Equal(xp, yp) {
				pts = append(pts, CurvePoint[T]{X: x, Y: y})
			}
		}
	}
	return pts
}
