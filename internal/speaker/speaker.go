// Package speaker implements the uniform-random sentence sampler each
// learner simulation run consumes from.
//
// Grounded in _examples/original_source/src/speaker.rs: a speaker caches
// the target language's sentence vector once at construction and then
// draws uniformly from it forever. The Rust version used a library
// ThreadRng; here each speaker owns its own math/rand/v2 source seeded by
// the caller, so replicate runs with identical seeds reproduce identical
// sentence streams (spec.md §4.5, §5).
package speaker

import (
	"fmt"
	"math/rand/v2"

	"github.com/pfeyz-sim/colagsim/internal/domaintable"
	"github.com/pfeyz-sim/colagsim/internal/grammar"
)

// Speaker produces an infinite stream of sentences drawn i.i.d. and
// uniformly from one target language. It never blocks and never fails
// once constructed.
type Speaker struct {
	sentences []domaintable.Sentence
	rng       *rand.Rand
}

// New constructs a speaker for the given target grammar, caching its
// sentence vector. rng must already be seeded by the caller (typically
// derived from a per-job seed in the experiment driver).
func New(table *domaintable.LanguageTable, target grammar.Grammar, rng *rand.Rand) (*Speaker, error) {
	sentences, err := table.LanguageVec(target)
	if err != nil {
		return nil, fmt.Errorf("speaker: %w", err)
	}
	return &Speaker{sentences: sentences, rng: rng}, nil
}

// Next returns the next sentence in the stream: a uniform independent
// choice from the cached sentence vector.
func (s *Speaker) Next() domaintable.Sentence {
	return s.sentences[s.rng.IntN(len(s.sentences))]
}
