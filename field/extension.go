package field

import "fmt"

// ExtElem is an element of a degree-k extension of a PrimeField, held as
// the coefficient vector of a polynomial of degree < k in the basis
// {1, t, t^2, ..., t^(k-1)}. coeffs[i] is the coefficient of t^i.
type ExtElem struct {
	coeffs []PrimeElem
}

// ExtensionField implements Field[ExtElem]/DecoderField[ExtElem] over
// GF(p^k) = F_p[t]/(mod), a construction das/field.go and das/erasure
// never need (they fix p and k once each, never composing an extension
// at runtime). It is grounded conceptually on
// original_source/CoefficientTraits.hpp and NtlPolynomials.hpp, which
// delegate this exact job (degree-k extension arithmetic, inversion via
// extended Euclid) to NTL; no pure-Go library in the retrieved pack offers
// generic GF(p^k) arithmetic (the gnark-crypto-family deps are hardcoded
// to specific pairing-friendly curves), so this is implemented directly —
// see DESIGN.md.
type ExtensionField struct {
	base *PrimeField
	// modulus holds the reduction polynomial's coefficients for degrees
	// 0..k (length k+1, modulus[k] != 0, conventionally monic so
	// modulus[k] == 1).
	modulus []PrimeElem
	k       int
}

// NewExtensionField builds F_p[t]/(modulus) where modulus is given as
// coefficients [c0, c1, ..., ck] representing c0 + c1*t + ... + ck*t^k, a
// monic irreducible polynomial of degree k over base. For F4 via 1+t+t^2
// over F2, pass base=NewPrimeFieldUint64(2), modulusCoeffs=[]int64{1,1,1}.
func NewExtensionField(base *PrimeField, modulusCoeffs []int64) (*ExtensionField, error) {
	k := len(modulusCoeffs) - 1
	if k < 1 {
		return nil, fmt.Errorf("field: extension modulus must have degree >= 1")
	}
	mod := make([]PrimeElem, k+1)
	for i, c := range modulusCoeffs {
		mod[i] = base.Elem(c)
	}
	if base.Equal(mod[k], base.Zero()) {
		return nil, fmt.Errorf("field: extension modulus must be monic (nonzero leading coefficient)")
	}
	return &ExtensionField{base: base, modulus: mod, k: k}, nil
}

// Degree returns k, the extension degree over the base prime field.
func (ef *ExtensionField) Degree() int { return ef.k }

// Elem lifts a coefficient vector [c0, c1, ...] (length <= k) into the
// field, zero-padding to degree k-1.
func (ef *ExtensionField) Elem(coeffs ...int64) ExtElem {
	c := make([]PrimeElem, ef.k)
	for i := 0; i < ef.k && i < len(coeffs); i++ {
		c[i] = ef.base.Elem(coeffs[i])
	}
	for i := len(coeffs); i < ef.k; i++ {
		c[i] = ef.base.Zero()
	}
	return ExtElem{coeffs: c}
}

// Zero returns the additive identity.
func (ef *ExtensionField) Zero() ExtElem { return ef.Elem() }

// One returns the multiplicative identity.
func (ef *ExtensionField) One() ExtElem { return ef.Elem(1) }

// Add returns a+b, coefficient-wise.
func (ef *ExtensionField) Add(a, b ExtElem) ExtElem {
	out := make([]PrimeElem, ef.k)
	for i := range out {
		out[i] = ef.base.Add(a.coeffs[i], b.coeffs[i])
	}
	return ExtElem{coeffs: out}
}

// Sub returns a-b, coefficient-wise.
func (ef *ExtensionField) Sub(a, b ExtElem) ExtElem {
	out := make([]PrimeElem, ef.k)
	for i := range out {
		out[i] = ef.base.Sub(a.coeffs[i], b.coeffs[i])
	}
	return ExtElem{coeffs: out}
}

// Neg returns -a, coefficient-wise.
func (ef *ExtensionField) Neg(a ExtElem) ExtElem {
	out := make([]PrimeElem, ef.k)
	for i := range out {
		out[i] = ef.base.Neg(a.coeffs[i])
	}
	return ExtElem{coeffs: out}
}

// Mul returns a*b, via schoolbook polynomial multiplication followed by
// reduction modulo ef.modulus.
func (ef *ExtensionField) Mul(a, b ExtElem) ExtElem {
	prod := make([]PrimeElem, 2*ef.k-1)
	for i := range prod {
		prod[i] = ef.base.Zero()
	}
	for i, ai := range a.coeffs {
		if ef.base.Equal(ai, ef.base.Zero()) {
			continue
		}
		for j, bj := range b.coeffs {
			prod[i+j] = ef.base.Add(prod[i+j], ef.base.Mul(ai, bj))
		}
	}
	return ExtElem{coeffs: ef.reduce(prod)}
}

// reduce performs polynomial long division of p by ef.modulus, returning
// the degree-<k remainder's coefficients (length k).
func (ef *ExtensionField) reduce(p []PrimeElem) []PrimeElem {
	rem := ef.padTo(p, ef.k)
	lead := ef.modulus[ef.k]
	leadInv, err := ef.base.Inv(lead)
	if err != nil {
		panic("field: extension modulus has non-invertible leading coefficient")
	}
	for deg := len(rem) - 1; deg >= ef.k; deg-- {
		if ef.base.Equal(rem[deg], ef.base.Zero()) {
			continue
		}
		factor := ef.base.Mul(rem[deg], leadInv)
		shift := deg - ef.k
		for i := 0; i <= ef.k; i++ {
			rem[shift+i] = ef.base.Sub(rem[shift+i], ef.base.Mul(factor, ef.modulus[i]))
		}
	}
	return rem[:ef.k]
}

// Inv returns a^-1 via the extended Euclidean algorithm on polynomials over
// the base field, the same job original_source/CoefficientTraits.hpp
// delegates to NTL's inv().
func (ef *ExtensionField) Inv(a ExtElem) (ExtElem, error) {
	if ef.Equal(a, ef.Zero()) {
		return ExtElem{}, ErrInverseOfZero
	}
	// Extended Euclid over F_p[t]: track (r, s) with r = s*a + t*modulus,
	// starting from (modulus, 0) and (a, 1).
	r0 := append([]PrimeElem(nil), ef.modulus...)
	s0 := ef.polyZero()
	r1 := ef.padTo(a.coeffs, ef.k)
	s1 := ef.polyOne()

	for !ef.polyIsZero(r1) {
		q := ef.polyDiv(r0, r1)
		r0, r1 = r1, ef.polySub(r0, ef.polyMul(q, r1))
		s0, s1 = s1, ef.polySub(s0, ef.polyMul(q, s1))
	}
	// r0 is now a nonzero constant (gcd); normalize s0 by its inverse.
	if ef.polyDegree(r0) != 0 {
		return ExtElem{}, fmt.Errorf("field: extension modulus is not irreducible (gcd degree %d)", ef.polyDegree(r0))
	}
	cInv, err := ef.base.Inv(r0[0])
	if err != nil {
		return ExtElem{}, err
	}
	result := make([]PrimeElem, len(s0))
	for i, c := range s0 {
		result[i] = ef.base.Mul(c, cInv)
	}
	return ExtElem{coeffs: ef.reduce(result)}, nil
}

// Pow raises a to the n-th power via square-and-multiply.
func (ef *ExtensionField) Pow(a ExtElem, n int64) ExtElem {
	return pow[ExtElem](ef, a, n)
}

// Equal reports whether a and b have identical coefficient vectors.
func (ef *ExtensionField) Equal(a, b ExtElem) bool {
	for i := range a.coeffs {
		if !ef.base.Equal(a.coeffs[i], b.coeffs[i]) {
			return false
		}
	}
	return true
}

// Elements enumerates all p^k field elements, ordered by coefficient
// vector treated as a base-p integer (zero first). Usable only for the
// small test fields (e.g. F4) the decoder exercises.
func (ef *ExtensionField) Elements() []ExtElem {
	pInt := ef.base.Modulus().Int64()
	total := int64(1)
	for i := 0; i < ef.k; i++ {
		total *= pInt
	}
	out := make([]ExtElem, total)
	digits := make([]int64, ef.k)
	for idx := int64(0); idx < total; idx++ {
		rem := idx
		for i := 0; i < ef.k; i++ {
			digits[i] = rem % pInt
			rem /= pInt
		}
		out[idx] = ef.Elem(digits...)
	}
	return out
}

// Primitive returns a generator of the multiplicative group of the
// extension field, found by trial over all nonzero elements.
func (ef *ExtensionField) Primitive() ExtElem {
	order := int64(1)
	pInt := ef.base.Modulus().Int64()
	for i := 0; i < ef.k; i++ {
		order *= pInt
	}
	order--
	factors := primeFactors(order)
	for _, cand := range ef.Elements() {
		if ef.Equal(cand, ef.Zero()) {
			continue
		}
		isGen := true
		for _, q := range factors {
			if ef.Equal(ef.Pow(cand, order/q), ef.One()) {
				isGen = false
				break
			}
		}
		if isGen {
			return cand
		}
	}
	panic("field: no generator found")
}

// -- polynomial helpers over the base field, used only by Inv's extended
// Euclidean algorithm. Slices are least-significant-coefficient first and
// may exceed length k (unlike ExtElem.coeffs, which is always exactly k).

func (ef *ExtensionField) polyZero() []PrimeElem { return []PrimeElem{ef.base.Zero()} }
func (ef *ExtensionField) polyOne() []PrimeElem  { return []PrimeElem{ef.base.One()} }

func (ef *ExtensionField) polyIsZero(p []PrimeElem) bool {
	for _, c := range p {
		if !ef.base.Equal(c, ef.base.Zero()) {
			return false
		}
	}
	return true
}

func (ef *ExtensionField) polyDegree(p []PrimeElem) int {
	for i := len(p) - 1; i >= 0; i-- {
		if !ef.base.Equal(p[i], ef.base.Zero()) {
			return i
		}
	}
	return 0
}

func (ef *ExtensionField) padTo(p []PrimeElem, n int) []PrimeElem {
	if len(p) >= n {
		return append([]PrimeElem(nil), p...)
	}
	out := make([]PrimeElem, n)
	copy(out, p)
	for i := len(p); i < n; i++ {
		out[i] = ef.base.Zero()
	}
	return out
}

func (ef *ExtensionField) polySub(a, b []PrimeElem) []PrimeElem {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	pa, pb := ef.padTo(a, n), ef.padTo(b, n)
	out := make([]PrimeElem, n)
	for i := range out {
		out[i] = ef.base.Sub(pa[i], pb[i])
	}
	return out
}

func (ef *ExtensionField) polyMul(a, b []PrimeElem) []PrimeElem {
	if ef.polyIsZero(a) || ef.polyIsZero(b) {
		return ef.polyZero()
	}
	out := make([]PrimeElem, len(a)+len(b)-1)
	for i := range out {
		out[i] = ef.base.Zero()
	}
	for i, ai := range a {
		if ef.base.Equal(ai, ef.base.Zero()) {
			continue
		}
		for j, bj := range b {
			out[i+j] = ef.base.Add(out[i+j], ef.base.Mul(ai, bj))
		}
	}
	return out
}

// polyDiv returns the quotient of a/b via schoolbook polynomial long
// division over the base field (b must be nonzero).
func (ef *ExtensionField) polyDiv(a, b []PrimeElem) []PrimeElem {
	degB := ef.polyDegree(b)
	if ef.polyIsZero(b) {
		panic("field: division by zero polynomial")
	}
	leadBInv, err := ef.base.Inv(b[degB])
	if err != nil {
		panic(err)
	}
	rem := append([]PrimeElem(nil), a...)
	degA := ef.polyDegree(rem)
	if len(rem) < degA+1 {
		rem = ef.padTo(rem, degA+1)
	}
	if degA < degB || ef.polyIsZero(rem) {
		return ef.polyZero()
	}
	quot := make([]PrimeElem, degA-degB+1)
	for i := range quot {
		quot[i] = ef.base.Zero()
	}
	for degA >= degB && !ef.polyIsZero(rem) {
		factor := ef.base.Mul(rem[degA], leadBInv)
		shift := degA - degB
		quot[shift] = factor
		for i := 0; i <= degB; i++ {
			rem[shift+i] = ef.base.Sub(rem[shift+i], ef.base.Mul(factor, b[i]))
		}
		degA = ef.polyDegree(rem)
		if ef.polyIsZero(rem) {
			break
		}
	}
	return quot
}
