// Package learner implements the family of COLAG learners: the Trigger
// Learning Algorithm, the Reward-Only (Relevant) Variational Learners, and
// the Non-Defaults Learner. All four share the Learner capability set so
// the experiment driver and reporter can treat them polymorphically.
//
// Grounded in _examples/original_source/src/learner/{mod,trigger,
// variational,ndl}.rs.
package learner

import (
	"math/rand/v2"

	"github.com/pfeyz-sim/colagsim/internal/domaintable"
	"github.com/pfeyz-sim/colagsim/internal/hypothesis"
)

// Environment bundles the shared, read-only tables a learner consults
// while learning. Domain is always populated; Triggers is required only
// by the relevant-trigger variational learner and Forms only by the
// non-defaults learner.
type Environment struct {
	Domain   *domaintable.LanguageTable
	Triggers *domaintable.TriggerTable
	Forms    *domaintable.SurfaceFormTable
}

// Learner is the capability set every learner variant implements. Theory
// returns a tagged union so the reporter can format either hypothesis
// shape without a type switch on the concrete learner (spec.md §9). Guess
// extracts a single concrete grammar from the current hypothesis: identity
// for a Simple hypothesis, one rng-sampled draw through
// domaintable.RandomWeightedGrammar for a Weighted one (spec.md §4.10).
type Learner interface {
	Learn(env *Environment, sent domaintable.Sentence)
	Converged() bool
	Theory() hypothesis.Theory
	Guess(rng *rand.Rand) hypothesis.Simple
}
