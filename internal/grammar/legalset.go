package grammar

import "math/bits"

// LegalSet is a compact, immutable bitset over the 8192 possible 13-bit
// patterns, marking which ones are legal COLAG grammars. Values are
// 0-indexed Grammar values in [0, 8191]; each is represented by a single
// bit in a uint64 word array, giving O(1) membership testing.
//
// Adapted from the word-array bitset idiom the teacher uses for finite
// domains (pkg/minikanren/domain.go's BitSetDomain): same fixed-width word
// layout and popcount-based Count, restricted here to a static legality
// mask built once at load time rather than a mutable propagation domain.
type LegalSet struct {
	words [128]uint64 // 8192 bits = 128 * 64
}

// NewLegalSet builds a LegalSet from the grammars present in the given
// slice (typically the keys of a loaded language table).
func NewLegalSet(grammars []Grammar) *LegalSet {
	s := &LegalSet{}
	for _, g := range grammars {
		s.add(g)
	}
	return s
}

func (s *LegalSet) add(g Grammar) {
	wordIdx := g / 64
	bitOffset := uint(g % 64)
	s.words[wordIdx] |= 1 << bitOffset
}

// Has reports whether g is a legal grammar.
func (s *LegalSet) Has(g Grammar) bool {
	wordIdx := g / 64
	bitOffset := uint(g % 64)
	return (s.words[wordIdx]>>bitOffset)&1 == 1
}

// Count returns the number of legal grammars recorded in the set.
func (s *LegalSet) Count() int {
	count := 0
	for _, word := range s.words {
		count += bits.OnesCount64(word)
	}
	return count
}
