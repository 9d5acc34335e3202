// Package mvpoly implements the recursive multivariate polynomial type
// MP<N,FE>: MP<1,FE> is an ordered sequence of field elements, and
// MP<N,FE> is an ordered sequence of MP<N-1,FE>. This package realizes
// both cases with a single tagged struct (Poly[T], with a leaf bool
// discriminating the base case) rather than deep recursive generic
// instantiation -- algorithms traverse by destructuring on leaf, not by
// type-level recursion.
//
// "Slice<Dim,Offset>" views over a Point are likewise not reified as a
// wrapper type: recursive methods thread a plain integer offset through
// the coordinate slice instead (see at, shiftBy below).
package mvpoly

import (
	"fmt"
	"strings"

	"github.com/eth2030/bmsa/field"
	"github.com/eth2030/bmsa/point"
)

// Lookup is anything offering multi-index lookup into field-valued data,
// with out-of-range indices yielding the field's zero element. Both
// Poly[T] and syndrome tables (package hermitian) satisfy this, which is
// exactly what lets Conv treat either as its "u" operand.
type Lookup[T any] interface {
	At(p *point.Point) T
}

// Poly is the recursive multivariate polynomial MP<N,FE>. A leaf node
// (dim == 1) stores scalar coefficients directly; an interior node stores
// one child Poly of dimension dim-1 per outermost coefficient index.
type Poly[T any] struct {
	fld  field.Field[T]
	dim  int
	leaf bool

	scalars  []T       // valid when leaf
	children []*Poly[T] // valid when !leaf
}

var _ Lookup[int] = (*Poly[int])(nil)

// NewZero returns the zero polynomial of the given dimension: [] (an
// empty coefficient list) at every level.
func NewZero[T any](fld field.Field[T], dim int) *Poly[T] {
	if dim < 1 {
		panic("mvpoly: dimension must be >= 1")
	}
	if dim == 1 {
		return &Poly[T]{fld: fld, dim: 1, leaf: true}
	}
	return &Poly[T]{fld: fld, dim: dim, leaf: false}
}

// NewOne returns the identity polynomial [[…[1]…]]: a single 1 at
// multi-index 0.
func NewOne[T any](fld field.Field[T], dim int) *Poly[T] {
	if dim < 1 {
		panic("mvpoly: dimension must be >= 1")
	}
	if dim == 1 {
		return &Poly[T]{fld: fld, dim: 1, leaf: true, scalars: []T{fld.One()}}
	}
	return &Poly[T]{fld: fld, dim: dim, leaf: false, children: []*Poly[T]{NewOne[T](fld, dim-1)}}
}

// Dim returns N.
func (p *Poly[T]) Dim() int { return p.dim }

// Field returns the field this polynomial's coefficients live in.
func (p *Poly[T]) Field() field.Field[T] { return p.fld }

// At returns the coefficient at multi-index pt: out-of-range at any level
// yields zero.
func (p *Poly[T]) At(pt *point.Point) T {
	return p.at(pt.Coords(), 0)
}

func (p *Poly[T]) at(coords []int, offset int) T {
	idx := coords[offset]
	if p.leaf {
		if idx < 0 || idx >= len(p.scalars) {
			return p.fld.Zero()
		}
		return p.scalars[idx]
	}
	if idx < 0 || idx >= len(p.children) {
		return p.fld.Zero()
	}
	return p.children[idx].at(coords, offset+1)
}

func (p *Poly[T]) scalarAt(i int) T {
	if i < 0 || i >= len(p.scalars) {
		return p.fld.Zero()
	}
	return p.scalars[i]
}

func (p *Poly[T]) childAt(i int) *Poly[T] {
	if i < 0 || i >= len(p.children) {
		return NewZero[T](p.fld, p.dim-1)
	}
	return p.children[i]
}

// ScalarMul returns c*f: every leaf coefficient multiplied by c.
func (p *Poly[T]) ScalarMul(c T) *Poly[T] {
	if p.leaf {
		out := make([]T, len(p.scalars))
		for i, v := range p.scalars {
			out[i] = p.fld.Mul(v, c)
		}
		return &Poly[T]{fld: p.fld, dim: p.dim, leaf: true, scalars: out}
	}
	out := make([]*Poly[T], len(p.children))
	for i, ch := range p.children {
		out[i] = ch.ScalarMul(c)
	}
	return &Poly[T]{fld: p.fld, dim: p.dim, leaf: false, children: out}
}

// negate returns -f, used by Sub.
func (p *Poly[T]) negate() *Poly[T] {
	if p.leaf {
		out := make([]T, len(p.scalars))
		for i, v := range p.scalars {
			out[i] = p.fld.Neg(v)
		}
		return &Poly[T]{fld: p.fld, dim: p.dim, leaf: true, scalars: out}
	}
	out := make([]*Poly[T], len(p.children))
	for i, ch := range p.children {
		out[i] = ch.negate()
	}
	return &Poly[T]{fld: p.fld, dim: p.dim, leaf: false, children: out}
}

// ShiftBy returns f · x_0^m[0] · … · x_{N-1}^m[N-1]: recursively shift
// with slice(m), then prepend m[0]
// zero elements.
func (p *Poly[T]) ShiftBy(m *point.Point) *Poly[T] {
	return p.shiftBy(m.Coords(), 0)
}

func (p *Poly[T]) shiftBy(mcoords []int, offset int) *Poly[T] {
	amount := mcoords[offset]
	if p.leaf {
		out := make([]T, amount+len(p.scalars))
		for i := 0; i < amount; i++ {
			out[i] = p.fld.Zero()
		}
		copy(out[amount:], p.scalars)
		return &Poly[T]{fld: p.fld, dim: p.dim, leaf: true, scalars: out}
	}
	shifted := make([]*Poly[T], amount+len(p.children))
	zero := NewZero[T](p.fld, p.dim-1)
	for i := 0; i < amount; i++ {
		shifted[i] = zero
	}
	for i, ch := range p.children {
		shifted[amount+i] = ch.shiftBy(mcoords, offset+1)
	}
	return &Poly[T]{fld: p.fld, dim: p.dim, leaf: false, children: shifted}
}

// Eval evaluates f at a point (c[0],…,c[N-1]) of the field itself (as
// opposed to At, which looks up a stored coefficient by integer
// multi-index): for N=1, Horner's rule on the stored coefficients from
// highest to lowest; for N>1, Horner in c[0] whose
// "coefficients" are the nested (N-1)-variate polynomials evaluated at
// the remaining coordinates.
func (p *Poly[T]) Eval(c ...T) T {
	if len(c) != p.dim {
		panic("mvpoly: Eval argument count must equal dimension")
	}
	if p.leaf {
		result := p.fld.Zero()
		for i := len(p.scalars) - 1; i >= 0; i-- {
			result = p.fld.Add(p.fld.Mul(result, c[0]), p.scalars[i])
		}
		return result
	}
	result := p.fld.Zero()
	for i := len(p.children) - 1; i >= 0; i-- {
		result = p.fld.Add(p.fld.Mul(result, c[0]), p.children[i].Eval(c[1:]...))
	}
	return result
}

// Add returns f+g: extend the shorter operand's tail with (implicit)
// zeros, then add elementwise.
func (p *Poly[T]) Add(q *Poly[T]) *Poly[T] {
	if p.leaf {
		n := len(p.scalars)
		if len(q.scalars) > n {
			n = len(q.scalars)
		}
		out := make([]T, n)
		for i := 0; i < n; i++ {
			out[i] = p.fld.Add(p.scalarAt(i), q.scalarAt(i))
		}
		return &Poly[T]{fld: p.fld, dim: p.dim, leaf: true, scalars: out}
	}
	n := len(p.children)
	if len(q.children) > n {
		n = len(q.children)
	}
	out := make([]*Poly[T], n)
	for i := 0; i < n; i++ {
		out[i] = p.childAt(i).Add(q.childAt(i))
	}
	return &Poly[T]{fld: p.fld, dim: p.dim, leaf: false, children: out}
}

// Sub returns f-g, defined as f + (-1)*g via the field's additive inverse.
func (p *Poly[T]) Sub(q *Poly[T]) *Poly[T] {
	return p.Add(q.negate())
}

// normalized returns a copy with trailing zero elements trimmed at every
// level, keeping at least one element. Used before equality comparison.
func (p *Poly[T]) normalized() *Poly[T] {
	if p.leaf {
		if len(p.scalars) == 0 {
			return &Poly[T]{fld: p.fld, dim: p.dim, leaf: true, scalars: []T{p.fld.Zero()}}
		}
		n := len(p.scalars)
		for n > 1 && p.fld.Equal(p.scalars[n-1], p.fld.Zero()) {
			n--
		}
		return &Poly[T]{fld: p.fld, dim: p.dim, leaf: true, scalars: p.scalars[:n]}
	}
	if len(p.children) == 0 {
		return &Poly[T]{fld: p.fld, dim: p.dim, leaf: false, children: []*Poly[T]{NewZero[T](p.fld, p.dim-1).normalized()}}
	}
	normalizedChildren := make([]*Poly[T], len(p.children))
	for i, ch := range p.children {
		normalizedChildren[i] = ch.normalized()
	}
	n := len(normalizedChildren)
	for n > 1 && normalizedChildren[n-1].isZero() {
		n--
	}
	return &Poly[T]{fld: p.fld, dim: p.dim, leaf: false, children: normalizedChildren[:n]}
}

func (p *Poly[T]) isZero() bool {
	n := p.normalized()
	if n.leaf {
		return len(n.scalars) == 0 || (len(n.scalars) == 1 && n.fld.Equal(n.scalars[0], n.fld.Zero()))
	}
	return len(n.children) == 0 || (len(n.children) == 1 && n.children[0].isZero())
}

// IsZero reports whether f is the zero polynomial after normalization.
func (p *Poly[T]) IsZero() bool { return p.isZero() }

// Equal reports whether f and g agree after normalization.
func (p *Poly[T]) Equal(q *Poly[T]) bool {
	pn, qn := p.normalized(), q.normalized()
	if pn.leaf {
		if len(pn.scalars) != len(qn.scalars) {
			return false
		}
		for i := range pn.scalars {
			if !pn.fld.Equal(pn.scalars[i], qn.scalars[i]) {
				return false
			}
		}
		return true
	}
	if len(pn.children) != len(qn.children) {
		return false
	}
	for i := range pn.children {
		if !pn.children[i].Equal(qn.children[i]) {
			return false
		}
	}
	return true
}

// Conv computes the truncated convolution conv(f, u, deg, k) = Σ_i
// f[i]·u[i+k-deg], where i ranges over every stored coefficient of f (for
// f of multi-degree deg these are all ≤_O deg, but not necessarily ≤_c
// deg). The precondition deg ≤_c k is the caller's responsibility;
// violating it panics via Point.Sub.
func Conv[T any](f *Poly[T], u Lookup[T], deg, k *point.Point) T {
	fld := f.fld
	shift := k.Sub(deg)
	coords := make([]int, deg.Dim())
	sum := fld.Zero()

	var rec func(node *Poly[T], idx int)
	rec = func(node *Poly[T], idx int) {
		if node.leaf {
			for v, fi := range node.scalars {
				if fld.Equal(fi, fld.Zero()) {
					continue
				}
				coords[idx] = v
				upoint := point.New(coords...).Add(shift)
				sum = fld.Add(sum, fld.Mul(fi, u.At(upoint)))
			}
			coords[idx] = 0
			return
		}
		for v, ch := range node.children {
			coords[idx] = v
			rec(ch, idx+1)
		}
		coords[idx] = 0
	}
	rec(f, 0)
	return sum
}

// ParseError reports a failure parsing a bracketed polynomial literal.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("mvpoly: parse error at byte %d: %s", e.Pos, e.Msg)
}

// Parse accepts the grammar poly_N ::= "[" poly_{N-1} (SP poly_{N-1})* "]",
// poly_0 ::= field_literal. leaf converts one scalar token into a field
// element; an empty bracket at any level yields the zero polynomial.
func Parse[T any](fld field.Field[T], dim int, s string, leaf func(string) (T, error)) (*Poly[T], error) {
	ps := &parser[T]{fld: fld, leaf: leaf, s: s}
	result, err := ps.parsePoly(dim)
	if err != nil {
		return nil, err
	}
	ps.skipSpace()
	if ps.pos != len(ps.s) {
		return nil, &ParseError{Pos: ps.pos, Msg: "unexpected trailing input"}
	}
	return result, nil
}

type parser[T any] struct {
	fld  field.Field[T]
	leaf func(string) (T, error)
	s    string
	pos  int
}

func (p *parser[T]) skipSpace() {
	for p.pos < len(p.s) && p.s[p.pos] == ' ' {
		p.pos++
	}
}

func (p *parser[T]) parsePoly(dim int) (*Poly[T], error) {
	p.skipSpace()
	if p.pos >= len(p.s) || p.s[p.pos] != '[' {
		return nil, &ParseError{Pos: p.pos, Msg: "expected '['"}
	}
	p.pos++

	if dim == 1 {
		var scalars []T
		for {
			p.skipSpace()
			if p.pos < len(p.s) && p.s[p.pos] == ']' {
				p.pos++
				break
			}
			if p.pos >= len(p.s) {
				return nil, &ParseError{Pos: p.pos, Msg: "unterminated bracket"}
			}
			start := p.pos
			for p.pos < len(p.s) && p.s[p.pos] != ' ' && p.s[p.pos] != ']' {
				p.pos++
			}
			if p.pos == start {
				return nil, &ParseError{Pos: p.pos, Msg: "expected field literal"}
			}
			v, err := p.leaf(p.s[start:p.pos])
			if err != nil {
				return nil, &ParseError{Pos: start, Msg: err.Error()}
			}
			scalars = append(scalars, v)
		}
		return &Poly[T]{fld: p.fld, dim: 1, leaf: true, scalars: scalars}, nil
	}

	var children []*Poly[T]
	for {
		p.skipSpace()
		if p.pos < len(p.s) && p.s[p.pos] == ']' {
			p.pos++
			break
		}
		if p.pos >= len(p.s) {
			return nil, &ParseError{Pos: p.pos, Msg: "unterminated bracket"}
		}
		child, err := p.parsePoly(dim - 1)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return &Poly[T]{fld: p.fld, dim: dim, leaf: false, children: children}, nil
}

// String renders the polynomial back in the bracketed literal grammar
// Parse accepts, using leaf to format one scalar.
func (p *Poly[T]) String(leaf func(T) string) string {
	var b strings.Builder
	p.write(&b, leaf)
	return b.String()
}

func (p *Poly[T]) write(b *strings.Builder, leaf func(T) string) {
	b.WriteByte('[')
	if p.leaf {
		for i, v := range p.scalars {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(leaf(v))
		}
	} else {
		for i, ch := range p.children {
			if i > 0 {
				b.WriteByte(' ')
			}
			ch.write(b, leaf)
		}
	}
	b.WriteByte(']')
}
