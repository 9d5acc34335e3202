package hermitian

import (
	"errors"
	"testing"

	"github.com/eth2030/bmsa/field"
)

// buildF4 constructs F_4 = F_2[t]/(1 + t + t^2).
func buildF4(t *testing.T) *field.ExtensionField {
	t.Helper()
	base := field.NewPrimeFieldUint64(2)
	ext, err := field.NewExtensionField(base, []int64{1, 1, 1})
	if err != nil {
		t.Fatalf("NewExtensionField: %v", err)
	}
	return ext
}

func TestRationalPointCount(t *testing.T) {
	fld := buildF4(t)
	d, err := New[field.ExtElem](fld, 2, 5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if n := d.N(); n != 8 {
		t.Fatalf("expected 8 affine rational points on the r=2 Hermitian curve over F4, got %d", n)
	}
}

// TestHermitianDecodeCLOS05 covers the classic CLOS'05 worked example:
// F_4 via 1+t+t^2, r=2, pole bound l=5, n=8, errors injected at positions
// 1 and 7 with value 1, expected decoder output [1, 7].
func TestHermitianDecodeCLOS05(t *testing.T) {
	fld := buildF4(t)
	d, err := New[field.ExtElem](fld, 2, 5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	received := make([]field.ExtElem, d.N())
	for i := range received {
		received[i] = fld.Zero()
	}
	received[1] = fld.One()
	received[7] = fld.One()

	positions, err := d.Decode(received)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(positions) != 2 || positions[0] != 1 || positions[1] != 7 {
		t.Fatalf("expected error positions [1 7], got %v", positions)
	}
}

func TestHermitianDecodeNoErrors(t *testing.T) {
	fld := buildF4(t)
	d, err := New[field.ExtElem](fld, 2, 5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	received := make([]field.ExtElem, d.N())
	for i := range received {
		received[i] = fld.Zero()
	}
	positions, err := d.Decode(received)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(positions) != 0 {
		t.Fatalf("expected no error positions for the zero word, got %v", positions)
	}
}

func TestHermitianDecodeWrongLength(t *testing.T) {
	fld := buildF4(t)
	d, err := New[field.ExtElem](fld, 2, 5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = d.Decode(make([]field.ExtElem, d.N()-1))
	if err == nil {
		t.Fatalf("expected an error for a mismatched received-word length")
	}
}

func TestHermitianDecodeExtendedMatchesDecodeWithZeroExtra(t *testing.T) {
	fld := buildF4(t)
	d, err := New[field.ExtElem](fld, 2, 5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	received := make([]field.ExtElem, d.N())
	for i := range received {
		received[i] = fld.Zero()
	}
	received[1] = fld.One()
	received[7] = fld.One()

	positions, err := d.DecodeExtended(received, 0)
	if err != nil {
		t.Fatalf("DecodeExtended: %v", err)
	}
	if len(positions) != 2 || positions[0] != 1 || positions[1] != 7 {
		t.Fatalf("expected error positions [1 7], got %v", positions)
	}
}

// TestHermitianDecodeExtendedWithExtension exercises the Feng-Rao
// majority-voting extension loop itself (extra > 0). The extension is a
// genuinely new completion over an unfinished source routine
// (original_source/bmsa-decoding.hpp), so this only pins
// down its observable contract -- it terminates without panicking and
// either returns a locator set or the documented recoverable error -- not
// a specific numeric outcome.
func TestHermitianDecodeExtendedWithExtension(t *testing.T) {
	fld := buildF4(t)
	d, err := New[field.ExtElem](fld, 2, 5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	received := make([]field.ExtElem, d.N())
	for i := range received {
		received[i] = fld.Zero()
	}
	received[1] = fld.One()
	received[7] = fld.One()

	_, err = d.DecodeExtended(received, 1)
	if err != nil && !errors.Is(err, ErrDecodeInconclusive) {
		t.Fatalf("DecodeExtended returned an unexpected error: %v", err)
	}
}

func TestNewRejectsInvalidParameters(t *testing.T) {
	fld := buildF4(t)
	if _, err := New[field.ExtElem](fld, 0, 5); err == nil {
		t.Fatalf("expected an error for r=0")
	}
	if _, err := New[field.ExtElem](fld, 2, 0); err == nil {
		t.Fatalf("expected an error for l=0")
	}
}

func TestErrDecodeInconclusiveIsSentinel(t *testing.T) {
	// extendSyndromeAt's error is always either nil or ErrDecodeInconclusive;
	// this just pins the sentinel's identity for callers using errors.Is.
	if !errors.Is(ErrDecodeInconclusive, ErrDecodeInconclusive) {
		t.Fatalf("ErrDecodeInconclusive must compare equal to itself via errors.Is")
	}
}
