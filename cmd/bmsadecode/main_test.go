package main

import "testing"

func TestParsePositionsEmpty(t *testing.T) {
	got, err := parsePositions("")
	if err != nil {
		t.Fatalf("parsePositions: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no positions, got %v", got)
	}
}

func TestParsePositionsList(t *testing.T) {
	got, err := parsePositions(" 1, 7 ")
	if err != nil {
		t.Fatalf("parsePositions: %v", err)
	}
	if len(got) != 2 || got[0] != 1 || got[1] != 7 {
		t.Fatalf("expected [1 7], got %v", got)
	}
}

func TestParsePositionsInvalid(t *testing.T) {
	if _, err := parsePositions("1,x"); err == nil {
		t.Fatalf("expected an error for a non-numeric position")
	}
}

func TestRunDecodesCLOS05Scenario(t *testing.T) {
	code := run([]string{"-errors", "1,7"})
	if code != 0 {
		t.Fatalf("run returned exit code %d, want 0", code)
	}
}

func TestRunRejectsOutOfRangePosition(t *testing.T) {
	code := run([]string{"-errors", "99"})
	if code != 2 {
		t.Fatalf("run returned exit code %d, want 2", code)
	}
}

func TestRunVersion(t *testing.T) {
	if code := run([]string{"-version"}); code != 0 {
		t.Fatalf("run -version returned exit code %d, want 0", code)
	}
}
