package field

import "testing"

func TestPrimeFieldAddCommutativity(t *testing.T) {
	f := NewPrimeFieldUint64(7)
	for _, a := range f.Elements() {
		for _, b := range f.Elements() {
			if !f.Equal(f.Add(a, b), f.Add(b, a)) {
				t.Fatalf("Add not commutative for %v, %v", a.v, b.v)
			}
		}
	}
}

func TestPrimeFieldAddIdentity(t *testing.T) {
	f := NewPrimeFieldUint64(7)
	for _, a := range f.Elements() {
		if !f.Equal(f.Add(a, f.Zero()), a) {
			t.Fatalf("Add(%v, zero) != %v", a.v, a.v)
		}
	}
}

func TestPrimeFieldAddSub(t *testing.T) {
	f := NewPrimeFieldUint64(7)
	for _, a := range f.Elements() {
		for _, b := range f.Elements() {
			if !f.Equal(f.Sub(f.Add(a, b), b), a) {
				t.Fatalf("Add then Sub did not round-trip for %v, %v", a.v, b.v)
			}
		}
	}
}

func TestPrimeFieldMulInv(t *testing.T) {
	f := NewPrimeFieldUint64(7)
	for _, a := range f.Elements() {
		if f.Equal(a, f.Zero()) {
			continue
		}
		inv, err := f.Inv(a)
		if err != nil {
			t.Fatalf("Inv(%v): %v", a.v, err)
		}
		if !f.Equal(f.Mul(a, inv), f.One()) {
			t.Fatalf("Mul(%v, Inv(%v)) != one", a.v, a.v)
		}
	}
}

func TestPrimeFieldInvOfZero(t *testing.T) {
	f := NewPrimeFieldUint64(7)
	if _, err := f.Inv(f.Zero()); err != ErrInverseOfZero {
		t.Fatalf("Inv(0) = %v, want ErrInverseOfZero", err)
	}
}

func TestPrimeFieldPow(t *testing.T) {
	f := NewPrimeFieldUint64(5)
	three := f.Elem(3)
	if got := f.Pow(three, 0); !f.Equal(got, f.One()) {
		t.Fatalf("Pow(3,0) = %v, want 1", got.v)
	}
	if got := f.Pow(three, 4); !f.Equal(got, f.One()) {
		// 3^4 = 81 = 1 mod 5, by Fermat's little theorem.
		t.Fatalf("Pow(3,4) = %v, want 1 mod 5", got.v)
	}
}

func TestPrimeFieldPrimitiveGeneratesGroup(t *testing.T) {
	f := NewPrimeFieldUint64(7)
	g := f.Primitive()
	seen := map[string]bool{}
	x := f.One()
	for i := 0; i < 6; i++ {
		seen[x.v.String()] = true
		x = f.Mul(x, g)
	}
	if len(seen) != 6 {
		t.Fatalf("primitive element %v only generated %d of 6 elements", g.v, len(seen))
	}
}
