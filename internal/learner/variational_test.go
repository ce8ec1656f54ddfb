package learner

import (
	"math/rand/v2"
	"testing"

	"github.com/pfeyz-sim/colagsim/internal/domaintable"
	"github.com/pfeyz-sim/colagsim/internal/grammar"
	"github.com/pfeyz-sim/colagsim/internal/speaker"
	"github.com/pfeyz-sim/colagsim/internal/testutil"
)

func TestRewardOnlyVLWeightsTrendTowardTarget(t *testing.T) {
	path := testutil.WriteLanguageFixture(t)
	table, err := domaintable.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	rng := rand.New(rand.NewPCG(5, 6))
	sp, err := speaker.New(table, domaintable.EnglishGrammar, rng)
	if err != nil {
		t.Fatalf("speaker.New: %v", err)
	}

	vl := NewRewardOnlyVL(rng)
	env := &Environment{Domain: table}

	const n = 200000
	for i := 0; i < n; i++ {
		vl.Learn(env, sp.Next())
	}

	theory, ok := vl.Theory().AsWeighted()
	if !ok {
		t.Fatal("expected RO-VL's theory to be a Weighted hypothesis")
	}
	for p := 0; p < grammar.NumParams; p++ {
		bit := grammar.Get(domaintable.EnglishGrammar, p)
		w := theory.Weights[p]
		if bit == 1 && w <= 0.5 {
			t.Errorf("param %d: target bit 1 but weight %.6f did not rise above 0.5", p, w)
		}
		if bit == 0 && w >= 0.5 {
			t.Errorf("param %d: target bit 0 but weight %.6f did not fall below 0.5", p, w)
		}
	}
}

func TestRewardOnlyRelevantVLIrrelevantRateZeroFreezesWeights(t *testing.T) {
	path := testutil.WriteLanguageFixture(t)
	table, err := domaintable.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	vec, err := table.LanguageVec(domaintable.EnglishGrammar)
	if err != nil {
		t.Fatalf("LanguageVec: %v", err)
	}

	// Mark params 0 and 1 Irrelevant for every sentence English generates.
	irrelevant := map[int]bool{0: true, 1: true}
	ids := make([]int, len(vec))
	for i, s := range vec {
		ids[i] = int(s)
	}
	trigPath := testutil.WriteTriggerFixture(t, ids, irrelevant)
	triggers, err := domaintable.LoadTriggers(trigPath)
	if err != nil {
		t.Fatalf("LoadTriggers: %v", err)
	}

	rng := rand.New(rand.NewPCG(7, 8))
	sp, err := speaker.New(table, domaintable.EnglishGrammar, rng)
	if err != nil {
		t.Fatalf("speaker.New: %v", err)
	}

	rvl := NewRewardOnlyRelevantVL(rng, 0)
	env := &Environment{Domain: table, Triggers: triggers}

	const n = 50000
	for i := 0; i < n; i++ {
		rvl.Learn(env, sp.Next())
	}

	theory, ok := rvl.Theory().AsWeighted()
	if !ok {
		t.Fatal("expected RO-RVL's theory to be a Weighted hypothesis")
	}
	for _, p := range []int{0, 1} {
		if theory.Weights[p] != 0.5 {
			t.Errorf("param %d marked permanently Irrelevant with irrelevant_rate=0 should stay at 0.5, got %.6f",
				p, theory.Weights[p])
		}
	}
}
