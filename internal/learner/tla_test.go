package learner

import (
	"math/rand/v2"
	"testing"

	"github.com/pfeyz-sim/colagsim/internal/domaintable"
	"github.com/pfeyz-sim/colagsim/internal/speaker"
	"github.com/pfeyz-sim/colagsim/internal/testutil"
)

func TestTLAConvergesOnEnglish(t *testing.T) {
	path := testutil.WriteLanguageFixture(t)
	table, err := domaintable.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	rng := rand.New(rand.NewPCG(1, 2))
	sp, err := speaker.New(table, domaintable.EnglishGrammar, rng)
	if err != nil {
		t.Fatalf("speaker.New: %v", err)
	}

	tla := NewTLA(rng)
	env := &Environment{Domain: table}

	const cap = 100000
	consumed := 0
	for ; consumed < cap; consumed++ {
		tla.Learn(env, sp.Next())
		if tla.Converged() {
			break
		}
	}

	if !tla.Converged() {
		t.Fatalf("TLA did not converge within %d sentences", cap)
	}
	if consumed == 0 {
		t.Fatal("expected a non-zero number of sentences consumed")
	}

	guess, ok := tla.Theory().AsSimple()
	if !ok {
		t.Fatal("expected TLA's theory to be a Simple hypothesis")
	}
	if _, err := table.Language(guess.Grammar); err != nil {
		t.Errorf("TLA's final guess %d is not a legal grammar: %v", guess.Grammar, err)
	}
}

func TestTLAConvergesInstantlyWhenZeroAlreadyParses(t *testing.T) {
	// Build a language table where grammar 0 (the TLA's initial
	// hypothesis) already generates every sentence in the target
	// language, so every input is a clean parse from the start.
	path := testutil.WriteLanguageFixture(t)
	table, err := domaintable.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	rng := rand.New(rand.NewPCG(3, 4))
	env := &Environment{Domain: table}
	tla := NewTLA(rng)

	// Grammar 0's own language (one sentence, id 0) is the target: since
	// the hypothesis starts at grammar 0, every sentence from its own
	// language is a clean parse.
	sp, err := speaker.New(table, 0, rng)
	if err != nil {
		t.Fatalf("speaker.New: %v", err)
	}
	for i := 0; i < 1001; i++ {
		tla.Learn(env, sp.Next())
	}
	if !tla.Converged() {
		t.Fatal("expected TLA to converge when grammar 0 already parses every sentence")
	}
}
