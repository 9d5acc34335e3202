package field

import "fmt"

// Binary is an element of GF(2^k) for whatever k a BinaryField was built
// with, represented as the usual bit-vector-as-integer encoding (the i-th
// bit is the coefficient of t^i in the polynomial basis).
type Binary uint32

// BinaryField implements Field[Binary] over GF(2^k) using pre-computed
// log/exp lookup tables, generalizing the hardcoded GF(2^8) struct in
// pkg/das/erasure/gf_field.go to an arbitrary degree k driven by a
// caller-supplied primitive polynomial. k is capped at 24 so
// the exp/log tables (sized 2^k) stay small; every field this module
// exercises (F_2 through F_256-scale Hermitian fields) is well inside that.
type BinaryField struct {
	k         int
	order     uint32 // 2^k - 1, the multiplicative group order
	modulus   uint32 // primitive polynomial, degree k, bit k set
	logTbl    []uint32
	expTbl    []uint32 // length 2*order, doubled for wraparound-free lookups
	generator Binary
}

// NewBinaryField builds GF(2^k) from a primitive polynomial given as a
// bitmask (bit i set means the poly has a t^i term; bit k must be set).
// generator is conventionally 2 (the element "t"), matching gf_field.go's
// gfFieldGenerator, since a primitive polynomial's root t already generates
// the multiplicative group.
func NewBinaryField(k int, modulusPoly uint32) (*BinaryField, error) {
	if k <= 0 || k > 24 {
		return nil, fmt.Errorf("field: binary field degree %d out of supported range [1,24]", k)
	}
	if modulusPoly&(1<<uint(k)) == 0 {
		return nil, fmt.Errorf("field: modulus polynomial 0x%x is not degree %d", modulusPoly, k)
	}

	order := uint32(1)<<uint(k) - 1
	bf := &BinaryField{
		k:         k,
		order:     order,
		modulus:   modulusPoly,
		logTbl:    make([]uint32, order+1),
		expTbl:    make([]uint32, 2*order),
		generator: 2,
	}
	bf.initTables()
	return bf, nil
}

// initTables pre-computes the log/exp tables by repeatedly multiplying by
// the generator (2, i.e. "t") and reducing modulo bf.modulus whenever the
// running value overflows k bits -- the same construction as
// gf_field.go's initTables, generalized from the fixed 0x11D/255 constants
// to bf.modulus/bf.order.
func (bf *BinaryField) initTables() {
	x := uint32(1)
	top := uint32(1) << uint(bf.k)
	for i := uint32(0); i < bf.order; i++ {
		bf.expTbl[i] = x
		bf.logTbl[x] = i
		x <<= 1
		if x&top != 0 {
			x ^= bf.modulus
		}
	}
	for i := uint32(0); i < bf.order; i++ {
		bf.expTbl[i+bf.order] = bf.expTbl[i]
	}
}

// Zero returns the additive identity.
func (bf *BinaryField) Zero() Binary { return 0 }

// One returns the multiplicative identity.
func (bf *BinaryField) One() Binary { return 1 }

// Add returns a+b; in characteristic 2, addition is XOR and equals
// subtraction.
func (bf *BinaryField) Add(a, b Binary) Binary { return a ^ b }

// Sub returns a-b, identical to Add in characteristic 2.
func (bf *BinaryField) Sub(a, b Binary) Binary { return a ^ b }

// Neg returns -a; in characteristic 2 every element is its own negative.
func (bf *BinaryField) Neg(a Binary) Binary { return a }

// Mul returns a*b via the log/exp tables: a*b = exp[(log[a]+log[b]) mod order].
func (bf *BinaryField) Mul(a, b Binary) Binary {
	if a == 0 || b == 0 {
		return 0
	}
	logSum := bf.logTbl[a] + bf.logTbl[b]
	if logSum >= bf.order {
		logSum -= bf.order
	}
	return Binary(bf.expTbl[logSum])
}

// Inv returns the multiplicative inverse of a nonzero element:
// a^-1 = exp[order - log[a]].
func (bf *BinaryField) Inv(a Binary) (Binary, error) {
	if a == 0 {
		return 0, ErrInverseOfZero
	}
	return Binary(bf.expTbl[bf.order-bf.logTbl[uint32(a)]]), nil
}

// Pow raises a to the n-th power via square-and-multiply.
func (bf *BinaryField) Pow(a Binary, n int64) Binary {
	return pow[Binary](bf, a, n)
}

// Equal reports whether a and b are the same field element.
func (bf *BinaryField) Equal(a, b Binary) bool { return a == b }

// Elements enumerates all 2^k field elements, zero first.
func (bf *BinaryField) Elements() []Binary {
	n := bf.order + 1
	out := make([]Binary, n)
	for i := uint32(0); i < n; i++ {
		out[i] = Binary(i)
	}
	return out
}

// Primitive returns the generator used to build the log/exp tables.
func (bf *BinaryField) Primitive() Binary { return bf.generator }

// Degree returns k, the extension degree over GF(2).
func (bf *BinaryField) Degree() int { return bf.k }
