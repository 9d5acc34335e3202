package point

import "testing"

func TestPointEqual(t *testing.T) {
	a := New(1, 2, 3)
	b := New(1, 2, 3)
	c := New(1, 2, 4)
	if !a.Equal(b) {
		t.Fatalf("%v should equal %v", a, b)
	}
	if a.Equal(c) {
		t.Fatalf("%v should not equal %v", a, c)
	}
}

func TestPointLessEq(t *testing.T) {
	a := New(1, 2)
	b := New(2, 2)
	if !a.LessEq(b) {
		t.Fatalf("%v should be <=_c %v", a, b)
	}
	if b.LessEq(a) {
		t.Fatalf("%v should not be <=_c %v", b, a)
	}
}

func TestPointAddSub(t *testing.T) {
	a := New(3, 4)
	b := New(1, 2)
	sum := a.Add(b)
	if !sum.Equal(New(4, 6)) {
		t.Fatalf("Add = %v, want (4,6)", sum)
	}
	diff := sum.Sub(b)
	if !diff.Equal(a) {
		t.Fatalf("Sub did not invert Add: got %v, want %v", diff, a)
	}
}

func TestPointSubPanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic subtracting a larger point")
		}
	}()
	New(1, 1).Sub(New(2, 0))
}

func TestGradedAntilexWeight2Dim3Enumeration(t *testing.T) {
	// Hand-traced enumeration order for dim 3, weight 2: validates the
	// successor against the order's own Less relation, and against a
	// fixed reference sequence derived by simulating the source's inc().
	order := GradedAntilex{}
	want := [][]int{
		{2, 0, 0}, {1, 1, 0}, {0, 2, 0}, {1, 0, 1}, {0, 1, 1}, {0, 0, 2},
	}
	p := New(2, 0, 0)
	for i, w := range want {
		if !p.Equal(New(w...)) {
			t.Fatalf("step %d: got %v, want %v", i, p, w)
		}
		next := order.Successor(p.coords)
		nextP := New(next...)
		if i < len(want)-1 && !order.Less(p.coords, nextP.coords) {
			t.Fatalf("step %d: successor %v is not greater than %v under Less", i, nextP, p)
		}
		p = nextP
	}
	// After the last weight-2 point, the successor bumps to weight 3,
	// minimum element (3,0,0).
	if !p.Equal(New(3, 0, 0)) {
		t.Fatalf("expected weight bump to (3,0,0), got %v", p)
	}
}

func TestGradedAntilexSuccessorFromOrigin(t *testing.T) {
	order := GradedAntilex{}
	origin := Origin(3)
	next := New(order.Successor(origin.coords)...)
	if !next.Equal(New(1, 0, 0)) {
		t.Fatalf("Successor(origin) = %v, want (1,0,0)", next)
	}
}

func TestGradedAntilexEnumerationIsStrictlyIncreasing(t *testing.T) {
	order := GradedAntilex{}
	p := Origin(2)
	prevWeight := -1
	for i := 0; i < 40; i++ {
		if p.Weight() < prevWeight {
			t.Fatalf("weight decreased at step %d: %v", i, p)
		}
		prevWeight = p.Weight()
		next := New(order.Successor(p.coords)...)
		if !order.Less(p.coords, next.coords) {
			t.Fatalf("step %d: %v is not Less than successor %v", i, p, next)
		}
		p = next
	}
}

func TestPartialMaximums(t *testing.T) {
	s := []*Point{New(1, 0), New(0, 1), New(1, 1), New(2, 0)}
	got := PartialMaximums(s)
	for _, want := range []*Point{New(1, 1), New(2, 0)} {
		found := false
		for _, g := range got {
			if g.Equal(want) {
				found = true
			}
		}
		if !found {
			t.Fatalf("PartialMaximums(%v) missing %v, got %v", s, want, got)
		}
	}
	if len(got) != 2 {
		t.Fatalf("PartialMaximums(%v) = %v, want 2 elements", s, got)
	}
}

func TestPartialMinimums(t *testing.T) {
	s := []*Point{New(1, 0), New(0, 1), New(1, 1), New(2, 0)}
	got := PartialMinimums(s)
	for _, want := range []*Point{New(1, 0), New(0, 1)} {
		found := false
		for _, g := range got {
			if g.Equal(want) {
				found = true
			}
		}
		if !found {
			t.Fatalf("PartialMinimums(%v) missing %v, got %v", s, want, got)
		}
	}
	if len(got) != 2 {
		t.Fatalf("PartialMinimums(%v) = %v, want 2 elements", s, got)
	}
}

func TestConjugateEmptyDelta(t *testing.T) {
	got := Conjugate(nil, 2, GradedAntilex{})
	if len(got) != 1 || !got[0].Equal(Origin(2)) {
		t.Fatalf("Conjugate(nil) = %v, want {origin}", got)
	}
}

// TestConjugateBoundaryScenario checks that Δ = {(0,1),(2,0)} conjugates
// to {(3,0),(1,1),(0,2)}, regardless of input collection order.
func TestConjugateBoundaryScenario(t *testing.T) {
	orders := [][]*Point{
		{New(0, 1), New(2, 0)},
		{New(2, 0), New(0, 1)},
	}
	want := []*Point{New(3, 0), New(1, 1), New(0, 2)}
	for _, delta := range orders {
		got := Conjugate(delta, 2, GradedAntilex{})
		if len(got) != len(want) {
			t.Fatalf("Conjugate(%v) = %v, want %v", delta, got, want)
		}
		for _, w := range want {
			found := false
			for _, g := range got {
				if g.Equal(w) {
					found = true
				}
			}
			if !found {
				t.Fatalf("Conjugate(%v) = %v missing %v", delta, got, w)
			}
		}
	}
}

func TestWeightedOrderTieBreak(t *testing.T) {
	order := Weighted{Weights: []int{2, 3}}
	// (0,2) has weight 6, (3,0) has weight 6: tie broken by GradedAntilex.
	a := New(0, 2)
	b := New(3, 0)
	wantLess := GradedAntilex{}.Less(a.coords, b.coords)
	if got := order.Less(a.coords, b.coords); got != wantLess {
		t.Fatalf("Weighted tie-break mismatch: got %v, want %v", got, wantLess)
	}
}

func TestEnumerateUpToWeightCompleteness(t *testing.T) {
	got := EnumerateUpToWeight(2, 2, GradedAntilex{})
	want := []*Point{New(0, 0), New(1, 0), New(0, 1), New(2, 0), New(1, 1), New(0, 2)}
	if len(got) != len(want) {
		t.Fatalf("EnumerateUpToWeight got %d points, want %d", len(got), len(want))
	}
	for _, w := range want {
		found := false
		for _, g := range got {
			if g.Equal(w) {
				found = true
			}
		}
		if !found {
			t.Fatalf("EnumerateUpToWeight(2,2) missing %v", w)
		}
	}
}

func TestFirstNUnderWeightedOrder(t *testing.T) {
	order := Weighted{Weights: []int{2, 3}}
	got := FirstN(2, 5, order)
	if len(got) != 5 {
		t.Fatalf("FirstN returned %d points, want 5", len(got))
	}
	for i := 1; i < len(got); i++ {
		if !order.Less(got[i-1].coords, got[i].coords) && !got[i-1].Equal(got[i]) {
			t.Fatalf("FirstN result not sorted at index %d: %v then %v", i, got[i-1], got[i])
		}
	}
}
