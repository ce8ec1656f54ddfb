package learner

import (
	"math/rand/v2"

	"github.com/pfeyz-sim/colagsim/internal/domaintable"
	"github.com/pfeyz-sim/colagsim/internal/grammar"
	"github.com/pfeyz-sim/colagsim/internal/hypothesis"
)

const (
	learningRate           = 0.001
	convergenceThreshold   = 0.02
	weightedSampleMaxTries = 1000 // spec.md §9: soft retry budget, not infinite
)

// RewardOnlyVL is the Reward-Only Variational Learner: on every sentence
// it draws a grammar from its current weight vector, and only ever
// rewards (never punishes) the parameters that produced a successful
// parse (spec.md §4.7).
type RewardOnlyVL struct {
	hyp hypothesis.Weighted
	rng *rand.Rand
}

// NewRewardOnlyVL constructs a RO-VL at the neutral 0.5-everywhere state.
func NewRewardOnlyVL(rng *rand.Rand) *RewardOnlyVL {
	return &RewardOnlyVL{hyp: hypothesis.NewWeighted(), rng: rng}
}

// Learn consumes one sentence, per spec.md §4.7.
func (l *RewardOnlyVL) Learn(env *Environment, sent domaintable.Sentence) {
	g, parsed, sampled := sampleParseResult(env, l.rng, l.hyp.Weights, sent)
	if !sampled {
		return // retry budget exhausted: a no-update step
	}
	if parsed {
		rewardWeights(&l.hyp.Weights, g)
	}
}

// Converged reports whether every weight has left the open interval
// (T, 1-T).
func (l *RewardOnlyVL) Converged() bool {
	return weightsConverged(l.hyp.Weights)
}

// Theory reports the current weight vector.
func (l *RewardOnlyVL) Theory() hypothesis.Theory {
	return hypothesis.OfWeighted(l.hyp)
}

// Guess draws one concrete grammar from the current weight vector
// (spec.md §4.10: "the single most-representative draw, not an argmax").
func (l *RewardOnlyVL) Guess(rng *rand.Rand) hypothesis.Simple {
	return hypothesis.Simple{Grammar: domaintable.RandomWeightedGrammar(rng, l.hyp.Weights)}
}

// RewardOnlyRelevantVL is the Reward-Only Relevant Variational Learner: it
// scales each parameter's update rate by that sentence's trigger label for
// that parameter, letting Irrelevant-labeled parameters be updated slower
// (or not at all) via irrelevantRate (spec.md §4.8).
type RewardOnlyRelevantVL struct {
	hyp            hypothesis.Weighted
	irrelevantRate float64
	activated      [grammar.NumParams]uint32
	consumed       uint64
	rng            *rand.Rand
}

// NewRewardOnlyRelevantVL constructs a RO-RVL with the given irrelevant-
// parameter update-rate multiplier (0 skips irrelevant parameters
// entirely, 1 recovers plain RO-VL behavior).
func NewRewardOnlyRelevantVL(rng *rand.Rand, irrelevantRate float64) *RewardOnlyRelevantVL {
	return &RewardOnlyRelevantVL{hyp: hypothesis.NewWeighted(), irrelevantRate: irrelevantRate, rng: rng}
}

// Learn consumes one sentence, per spec.md §4.8.
func (l *RewardOnlyRelevantVL) Learn(env *Environment, sent domaintable.Sentence) {
	g, parsed, sampled := sampleParseResult(env, l.rng, l.hyp.Weights, sent)
	if !sampled {
		return
	}
	l.consumed++
	if !parsed {
		return
	}

	triggers, ok := env.Triggers.Get(sent)
	if !ok {
		return // corrupt input data; spec.md §7 treats this as a load-time invariant, not a runtime failure here
	}

	for p := 0; p < grammar.NumParams; p++ {
		rate := learningRate
		switch triggers[p] {
		case domaintable.Irrelevant:
			rate = learningRate * l.irrelevantRate
		default:
			l.activated[p]++
		}
		applyUpdate(&l.hyp.Weights[p], grammar.Get(g, p), rate)
	}
}

// Converged reports whether every weight has left the open interval
// (T, 1-T). The "dead parameter" relaxation described in the source is
// wired into the struct (activated/consumed) but never changes this
// result — spec.md §9(c) documents it as disabled.
func (l *RewardOnlyRelevantVL) Converged() bool {
	return weightsConverged(l.hyp.Weights)
}

// Theory reports the current weight vector.
func (l *RewardOnlyRelevantVL) Theory() hypothesis.Theory {
	return hypothesis.OfWeighted(l.hyp)
}

// Guess draws one concrete grammar from the current weight vector, same
// rule as RewardOnlyVL.Guess.
func (l *RewardOnlyRelevantVL) Guess(rng *rand.Rand) hypothesis.Simple {
	return hypothesis.Simple{Grammar: domaintable.RandomWeightedGrammar(rng, l.hyp.Weights)}
}

// sampleParseResult repeatedly draws a weighted grammar until one is
// legal (parses returns no IllegalGrammarError) or the retry budget is
// exhausted, in which case sampled is false.
func sampleParseResult(
	env *Environment,
	rng *rand.Rand,
	weights [grammar.NumParams]float64,
	sent domaintable.Sentence,
) (g grammar.Grammar, parsed bool, sampled bool) {
	for tries := 0; tries < weightedSampleMaxTries; tries++ {
		candidate := domaintable.RandomWeightedGrammar(rng, weights)
		ok, err := env.Domain.Parses(candidate, sent)
		if err == nil {
			return candidate, ok, true
		}
	}
	return 0, false, false
}

// rewardWeights applies the reward-only update rule with the fixed
// learning rate to every parameter.
func rewardWeights(weights *[grammar.NumParams]float64, g grammar.Grammar) {
	for p := 0; p < grammar.NumParams; p++ {
		applyUpdate(&weights[p], grammar.Get(g, p), learningRate)
	}
}

// applyUpdate nudges weight toward bit (0 or 1) by rate of the gap: moving
// down by rate*weight when bit is 0, or up by rate*(1-weight) when bit is 1.
func applyUpdate(weight *float64, bit int, rate float64) {
	if bit == 0 {
		*weight -= rate * *weight
	} else {
		*weight += rate * (1 - *weight)
	}
}

func weightsConverged(weights [grammar.NumParams]float64) bool {
	for _, w := range weights {
		if w > convergenceThreshold && w < 1-convergenceThreshold {
			return false
		}
	}
	return true
}
