package field

import "testing"

func mustBinaryField(t *testing.T, k int, modulus uint32) *BinaryField {
	t.Helper()
	bf, err := NewBinaryField(k, modulus)
	if err != nil {
		t.Fatalf("NewBinaryField(%d, 0x%x): %v", k, modulus, err)
	}
	return bf
}

func TestBinaryFieldAddCommutativity(t *testing.T) {
	bf := mustBinaryField(t, 8, 0x11D)
	for _, a := range bf.Elements() {
		for _, b := range bf.Elements() {
			if bf.Add(a, b) != bf.Add(b, a) {
				t.Fatalf("Add(%v,%v) != Add(%v,%v)", a, b, b, a)
			}
		}
	}
}

func TestBinaryFieldAddIdentity(t *testing.T) {
	bf := mustBinaryField(t, 8, 0x11D)
	for _, a := range bf.Elements() {
		if bf.Add(a, bf.Zero()) != a {
			t.Fatalf("Add(%v, zero) != %v", a, a)
		}
	}
}

func TestBinaryFieldAddSelfInverse(t *testing.T) {
	bf := mustBinaryField(t, 8, 0x11D)
	for _, a := range bf.Elements() {
		if bf.Add(a, a) != bf.Zero() {
			t.Fatalf("Add(%v,%v) != zero", a, a)
		}
	}
}

func TestBinaryFieldSubEqAdd(t *testing.T) {
	bf := mustBinaryField(t, 8, 0x11D)
	for _, a := range bf.Elements() {
		for _, b := range bf.Elements() {
			if bf.Sub(a, b) != bf.Add(a, b) {
				t.Fatalf("Sub(%v,%v) != Add(%v,%v)", a, b, a, b)
			}
		}
	}
}

func TestBinaryFieldMulIdentity(t *testing.T) {
	bf := mustBinaryField(t, 8, 0x11D)
	for _, a := range bf.Elements() {
		if bf.Mul(a, bf.One()) != a {
			t.Fatalf("Mul(%v, one) != %v", a, a)
		}
	}
}

func TestBinaryFieldInv(t *testing.T) {
	bf := mustBinaryField(t, 8, 0x11D)
	for _, a := range bf.Elements() {
		if a == 0 {
			continue
		}
		inv, err := bf.Inv(a)
		if err != nil {
			t.Fatalf("Inv(%v): %v", a, err)
		}
		if bf.Mul(a, inv) != bf.One() {
			t.Fatalf("Mul(%v, Inv(%v)) != one", a, a)
		}
	}
}

func TestBinaryFieldInvOfZero(t *testing.T) {
	bf := mustBinaryField(t, 8, 0x11D)
	if _, err := bf.Inv(0); err != ErrInverseOfZero {
		t.Fatalf("Inv(0) = %v, want ErrInverseOfZero", err)
	}
}

func TestBinaryFieldSmallGF4(t *testing.T) {
	// GF(4) via t^2+t+1 (0b111 = 0x7), the smallest binary field with an
	// element outside GF(2).
	bf := mustBinaryField(t, 2, 0x7)
	if len(bf.Elements()) != 4 {
		t.Fatalf("GF(4) has %d elements, want 4", len(bf.Elements()))
	}
	for _, a := range bf.Elements() {
		if a == 0 {
			continue
		}
		inv, err := bf.Inv(a)
		if err != nil {
			t.Fatalf("Inv(%v): %v", a, err)
		}
		if bf.Mul(a, inv) != bf.One() {
			t.Fatalf("Mul(%v, Inv(%v)) != one in GF(4)", a, a)
		}
	}
}

func TestBinaryFieldRejectsBadModulus(t *testing.T) {
	if _, err := NewBinaryField(8, 0x3); err == nil {
		t.Fatal("expected error for degree-mismatched modulus")
	}
	if _, err := NewBinaryField(0, 0x3); err == nil {
		t.Fatal("expected error for non-positive degree")
	}
}
