package learner

import (
	"math/rand/v2"

	"github.com/pfeyz-sim/colagsim/internal/domaintable"
	"github.com/pfeyz-sim/colagsim/internal/grammar"
	"github.com/pfeyz-sim/colagsim/internal/hypothesis"
)

// convergedStreak is the clean-parse streak the Trigger Learning
// Algorithm must exceed before it reports convergence.
const convergedStreak = 1000

// TLA is the Trigger Learning Algorithm: a single-grammar hypothesis that
// greedily tries one random replacement grammar on every parse failure and
// keeps it only if it clears the offending sentence (the "greedy one-try"
// variant — spec.md §4.6).
type TLA struct {
	gram        grammar.Grammar
	cleanParses uint32
	rng         *rand.Rand
}

// NewTLA constructs a TLA starting at the neutral grammar 0.
func NewTLA(rng *rand.Rand) *TLA {
	return &TLA{rng: rng}
}

// Learn consumes one sentence, per spec.md §4.6.
func (l *TLA) Learn(env *Environment, sent domaintable.Sentence) {
	ok, err := env.Domain.Parses(l.gram, sent)
	if err == nil && ok {
		l.cleanParses++
		return
	}

	candidate := env.Domain.RandomGrammar(l.rng)
	if ok2, err2 := env.Domain.Parses(candidate, sent); err2 == nil && ok2 {
		l.gram = candidate
	}
	l.cleanParses = 0
}

// Converged reports whether the clean-parse streak exceeds the threshold.
func (l *TLA) Converged() bool {
	return l.cleanParses > convergedStreak
}

// Theory reports the current grammar hypothesis.
func (l *TLA) Theory() hypothesis.Theory {
	return hypothesis.OfSimple(hypothesis.Simple{Grammar: l.gram})
}

// Guess is the identity draw for a Simple hypothesis: TLA's hypothesis is
// already a single concrete grammar, so rng goes unused.
func (l *TLA) Guess(rng *rand.Rand) hypothesis.Simple {
	return hypothesis.Simple{Grammar: l.gram}
}
