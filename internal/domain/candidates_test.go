package domain

import "testing"

func TestCandidateSetBasics(t *testing.T) {
	var s CandidateSet
	s.Add(3)
	s.Add(7)
	if !s.Has(3) || !s.Has(7) || s.Has(5) {
		t.Fatalf("membership wrong after adds: %b", s)
	}
	if s.Count() != 2 {
		t.Fatalf("Count = %d, want 2", s.Count())
	}
	s.Remove(3)
	if s.Has(3) || s.Count() != 1 {
		t.Fatalf("remove failed: %b", s)
	}
}

func TestCandidateSetRemoveAbsentIsNoop(t *testing.T) {
	var s CandidateSet
	s.Add(2)
	before := s
	s.Remove(9)
	if s != before {
		t.Fatalf("removing an absent digit changed the set: %b -> %b", before, s)
	}
}

func TestCandidateSetIgnoresOutOfRange(t *testing.T) {
	var s CandidateSet
	s.Add(0)
	s.Add(10)
	if s != 0 {
		t.Fatalf("out-of-range adds must be ignored, got %b", s)
	}
	if s.Has(0) || s.Has(10) {
		t.Fatal("out-of-range digits are never members")
	}
}

func TestCandidateSetDigits(t *testing.T) {
	s := FullCandidates()
	got := s.Digits()
	if len(got) != 9 {
		t.Fatalf("full set has %d digits, want 9", len(got))
	}
	for i, v := range got {
		if v != uint8(i+1) {
			t.Fatalf("Digits not ascending: %v", got)
		}
	}
	var empty CandidateSet
	if d := empty.Digits(); d == nil || len(d) != 0 {
		t.Fatalf("empty set must yield an empty non-nil slice, got %v", d)
	}
}
