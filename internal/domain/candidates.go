package domain

// CandidateSet is a set of digits 1-9, one bit per digit.
type CandidateSet uint16

const allCandidates CandidateSet = 0x1ff << 1

// FullCandidates returns the set containing every digit 1-9.
func FullCandidates() CandidateSet { return allCandidates }

// Has reports whether v is in the set.
func (s CandidateSet) Has(v uint8) bool {
	if v < 1 || v > 9 {
		return false
	}
	return s&(1<<v) != 0
}

// Add inserts v. Out-of-range digits are ignored.
func (s *CandidateSet) Add(v uint8) {
	if v >= 1 && v <= 9 {
		*s |= 1 << v
	}
}

// Remove deletes v. Removing a digit the set does not contain is a no-op.
func (s *CandidateSet) Remove(v uint8) {
	if v >= 1 && v <= 9 {
		*s &^= 1 << v
	}
}

// Count returns the number of digits in the set.
func (s CandidateSet) Count() int {
	n := 0
	for v := uint8(1); v <= 9; v++ {
		if s.Has(v) {
			n++
		}
	}
	return n
}

// Digits returns the members in ascending order. The empty set yields an
// empty (non-nil) slice so JSON callers see [] rather than null.
func (s CandidateSet) Digits() []uint8 {
	out := make([]uint8, 0, 9)
	for v := uint8(1); v <= 9; v++ {
		if s.Has(v) {
			out = append(out, v)
		}
	}
	return out
}
