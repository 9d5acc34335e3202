package field

import (
	"fmt"
	"math/big"
)

// PrimeElem is an element of a PrimeField, a residue class mod p held as a
// normalized big.Int (always in [0, p)).
type PrimeElem struct {
	v *big.Int
	f *PrimeField
}

// BigInt returns the underlying representative in [0, p).
func (e PrimeElem) BigInt() *big.Int { return new(big.Int).Set(e.v) }

// PrimeField implements Field[PrimeElem] / DecoderField[PrimeElem] over
// Z/pZ for an arbitrary prime p, generalizing pkg/das/field.go's
// FieldElement (which hardcodes the BLS12-381 scalar modulus) to any
// modulus the caller supplies.
type PrimeField struct {
	p *big.Int
}

// NewPrimeField builds Z/pZ for the given modulus. p is trusted to be
// prime, as in das/field.go's FieldElement: primality is a precondition
// of the construction, not something this constructor verifies.
func NewPrimeField(p *big.Int) *PrimeField {
	return &PrimeField{p: new(big.Int).Set(p)}
}

// NewPrimeFieldUint64 is a convenience constructor for small moduli, the
// common case in tests (e.g. p=2, p=5).
func NewPrimeFieldUint64(p uint64) *PrimeField {
	return NewPrimeField(new(big.Int).SetUint64(p))
}

// elem normalizes v into [0, p) and wraps it as a PrimeElem bound to f.
func (f *PrimeField) elem(v *big.Int) PrimeElem {
	r := new(big.Int).Mod(v, f.p)
	return PrimeElem{v: r, f: f}
}

// Elem lifts an int64 into the field, reducing mod p.
func (f *PrimeField) Elem(v int64) PrimeElem {
	return f.elem(big.NewInt(v))
}

// Modulus returns p.
func (f *PrimeField) Modulus() *big.Int { return new(big.Int).Set(f.p) }

// Zero returns the additive identity.
func (f *PrimeField) Zero() PrimeElem { return f.elem(big.NewInt(0)) }

// One returns the multiplicative identity.
func (f *PrimeField) One() PrimeElem { return f.elem(big.NewInt(1)) }

// Add returns a+b mod p.
func (f *PrimeField) Add(a, b PrimeElem) PrimeElem {
	return f.elem(new(big.Int).Add(a.v, b.v))
}

// Sub returns a-b mod p.
func (f *PrimeField) Sub(a, b PrimeElem) PrimeElem {
	return f.elem(new(big.Int).Sub(a.v, b.v))
}

// Neg returns -a mod p.
func (f *PrimeField) Neg(a PrimeElem) PrimeElem {
	return f.elem(new(big.Int).Neg(a.v))
}

// Mul returns a*b mod p.
func (f *PrimeField) Mul(a, b PrimeElem) PrimeElem {
	return f.elem(new(big.Int).Mul(a.v, b.v))
}

// Inv returns a^-1 mod p via modular inverse (extended Euclid, through
// big.Int.ModInverse), mirroring CoefficientTraits::inverse's delegation to
// a library routine rather than a hand-rolled Euclidean loop.
func (f *PrimeField) Inv(a PrimeElem) (PrimeElem, error) {
	if a.v.Sign() == 0 {
		return PrimeElem{}, ErrInverseOfZero
	}
	r := new(big.Int).ModInverse(a.v, f.p)
	if r == nil {
		return PrimeElem{}, fmt.Errorf("field: %v has no inverse mod %v", a.v, f.p)
	}
	return f.elem(r), nil
}

// Pow raises a to the n-th power via square-and-multiply.
func (f *PrimeField) Pow(a PrimeElem, n int64) PrimeElem {
	return pow[PrimeElem](f, a, n)
}

// Equal reports whether a and b are the same residue.
func (f *PrimeField) Equal(a, b PrimeElem) bool {
	return a.v.Cmp(b.v) == 0
}

// Elements enumerates 0..p-1. Only meaningful for p small enough that the
// decoder can afford to range over the whole field (Hermitian test fields).
func (f *PrimeField) Elements() []PrimeElem {
	if !f.p.IsInt64() {
		panic("field: Elements() called on a prime field too large to enumerate")
	}
	n := f.p.Int64()
	out := make([]PrimeElem, n)
	for i := int64(0); i < n; i++ {
		out[i] = f.Elem(i)
	}
	return out
}

// Primitive returns a generator of the multiplicative group Z/pZ*, found by
// trial over small candidates. This is adequate for the small test moduli
// the decoder exercises; it is not intended for cryptographic-size p.
func (f *PrimeField) Primitive() PrimeElem {
	if !f.p.IsInt64() {
		panic("field: Primitive() called on a prime field too large to search")
	}
	order := f.p.Int64() - 1
	factors := primeFactors(order)
	for cand := int64(1); cand < f.p.Int64(); cand++ {
		g := f.Elem(cand)
		if f.isGenerator(g, order, factors) {
			return g
		}
	}
	panic("field: no generator found")
}

func (f *PrimeField) isGenerator(g PrimeElem, order int64, factors []int64) bool {
	for _, q := range factors {
		if f.Equal(f.Pow(g, order/q), f.One()) {
			return false
		}
	}
	return true
}

// primeFactors returns the distinct prime factors of n via trial division,
// sufficient for the small group orders this package's test fields have.
func primeFactors(n int64) []int64 {
	var out []int64
	for p := int64(2); p*p <= n; p++ {
		if n%p == 0 {
			out = append(out, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	if n > 1 {
		out = append(out, n)
	}
	return out
}
