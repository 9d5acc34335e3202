// Package field supplies the field abstraction that the BMS engine and the
// multivariate-polynomial layer are parameterized over. The core consumes
// this abstraction and never implements GF arithmetic itself; field.go and
// its siblings in this package provide the concrete implementations the
// tests and the Hermitian decoder need.
//
// The shape follows pkg/das/erasure, generalized from a fixed GF(2^8) and
// a fixed BLS12-381 scalar modulus to parametric binary and prime fields
// (see BinaryField and PrimeField), plus a new degree-k extension-field
// implementation needed for Hermitian-curve fields F_{r^2} that neither
// of those alone can express.
package field

import "errors"

// ErrInverseOfZero is returned by Inv when asked to invert the additive
// identity. The BMS engine treats this as a fatal invariant violation once
// it surfaces internally; the field layer itself just reports it.
var ErrInverseOfZero = errors.New("field: inverse of zero is undefined")

// Field is the capability object every concrete field implementation
// provides: one value per concrete field, dispatched by method call rather
// than by a trait implemented on T itself.
type Field[T any] interface {
	Zero() T
	One() T
	Add(a, b T) T
	Sub(a, b T) T
	Neg(a T) T
	Mul(a, b T) T
	Inv(a T) (T, error)
	// Pow satisfies pow(x, 0) = 1, pow(x, n) = x * pow(x, n-1) for n > 0.
	Pow(a T, n int64) T
	Equal(a, b T) bool
}

// DecoderField extends Field with the two capabilities reserved for the
// decoder only: a primitive-element accessor and enumeration of all field
// elements, used to build Hermitian rational curve points.
type DecoderField[T any] interface {
	Field[T]
	Elements() []T
	Primitive() T
}

// pow implements pow(x,0)=1, pow(x,n)=x*pow(x,n-1) for n>0 via
// square-and-multiply, for field implementations that want to share one
// definition rather than hand-roll repeated squaring. The result is
// identical to the naive recursive definition; only the number of Mul
// calls differs.
func pow[T any](f Field[T], a T, n int64) T {
	if n < 0 {
		panic("field: negative exponent")
	}
	result := f.One()
	base := a
	for n > 0 {
		if n&1 == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
		n >>= 1
	}
	return result
}
