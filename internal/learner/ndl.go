package learner

import (
	"math/rand/v2"

	"github.com/pfeyz-sim/colagsim/internal/domaintable"
	"github.com/pfeyz-sim/colagsim/internal/hypothesis"
	"github.com/pfeyz-sim/colagsim/internal/sentence"
)

// Param names the 13 NDL parameters, in the order the source's Param enum
// lists them, which doubles as the index into the WeightedHypothesis
// weight array.
type Param int

const (
	SP Param = iota
	HIP
	HCP
	OPT
	NS
	NT
	WHM
	PI
	TM
	VtoI
	ItoC
	AH
	QInv
)

const (
	ndlRate = 0.001 // "Normal" and "Conservative" share this value (spec.md §9(b))
)

// update is one weight nudge a cue can emit: param p moves toward 1 if
// positive is true, toward 0 otherwise, at the fixed NDL rate.
type update struct {
	param    Param
	positive bool
}

// NDL is the Non-Defaults Learner: it inspects the current sentence's
// surface form with a fixed battery of symbolic cues and applies whatever
// updates they emit, all at every sentence (spec.md §4.9).
type NDL struct {
	hyp hypothesis.Weighted
}

// NewNDL constructs an NDL at the neutral 0.5-everywhere state.
func NewNDL() *NDL {
	return &NDL{hyp: hypothesis.NewWeighted()}
}

// Learn consumes one sentence's surface form and applies every cue's
// emitted updates in order.
func (l *NDL) Learn(env *Environment, sent domaintable.Sentence) {
	form, ok := env.Forms.Form(sent)
	if !ok {
		return // corrupt input data; surface forms are a load-time invariant (spec.md §7)
	}
	for _, u := range l.runCues(form) {
		l.apply(u)
	}
}

// Converged is undefined for NDL in the source; it never signals early
// convergence and always runs to the sentence cap.
func (l *NDL) Converged() bool {
	return false
}

// Theory reports the current weight vector.
func (l *NDL) Theory() hypothesis.Theory {
	return hypothesis.OfWeighted(l.hyp)
}

// Guess draws one concrete grammar from the current weight vector, same
// rule as the variational learners' Guess.
func (l *NDL) Guess(rng *rand.Rand) hypothesis.Simple {
	return hypothesis.Simple{Grammar: domaintable.RandomWeightedGrammar(rng, l.hyp.Weights)}
}

func (l *NDL) apply(u update) {
	applySymmetricUpdate(&l.hyp.Weights[u.param], u.positive, ndlRate)
}

// applySymmetricUpdate is NDL's own update rule (_examples/original_source/
// src/learner/ndl.rs's update_weights): unlike RO-VL's asymmetric rate*(1-w)
// rise, NDL moves the weight by rate*w in both directions, so a positive cue
// raises it by rate*w and a negative one lowers it by rate*w.
func applySymmetricUpdate(weight *float64, positive bool, rate float64) {
	if positive {
		*weight += rate * *weight
	} else {
		*weight -= rate * *weight
	}
}

// runCues evaluates every cue against form and collects their updates, in
// the fixed order the source lists them.
func (l *NDL) runCues(form sentence.Form) []update {
	var ops []update
	for _, cue := range []func(sentence.Form) []update{
		subjectPosition,
		headInCP,
		headIP,
		nullSubject,
		whMovement,
		prepStranding,
	} {
		ops = append(ops, cue(form)...)
	}
	return ops
}

// subjectPosition (SP): Dec forms only.
func subjectPosition(form sentence.Form) []update {
	if form.Illoc != sentence.Dec {
		return nil
	}
	if !form.Topicalized(sentence.O1) && form.Order(sentence.O1, sentence.S) {
		return []update{{SP, true}}
	}
	if !form.Topicalized(sentence.S) && form.Order(sentence.S, sentence.O1) {
		return []update{{SP, false}}
	}
	return nil
}

// headInCP (HCP): Q forms only.
func headInCP(form sentence.Form) []update {
	if form.Illoc != sentence.Q {
		return nil
	}
	if form.EndsWith(sentence.Ka) || (form.EndsWith(sentence.Aux) && !form.Contains(sentence.Ka)) {
		return []update{{HCP, true}}
	}
	if form.Topicalized(sentence.Ka) || (form.Topicalized(sentence.Aux) && !form.Contains(sentence.Ka)) {
		return []update{{HCP, false}}
	}
	return nil
}

// headIP (HIP). The source's second (Imp) branch tests the same adjacency
// predicate on both arms — mirrored here rather than guessed at
// (spec.md §9, open question (a)), so the false arm is unreachable exactly
// as it is in the original.
func headIP(form sentence.Form) []update {
	if form.Contains(sentence.O3) && form.Contains(sentence.P) {
		if !form.Topicalized(sentence.O3) && form.Adjacent(sentence.O3, sentence.P) {
			return []update{{HIP, true}}
		}
		if !form.Topicalized(sentence.O3) && form.Adjacent(sentence.P, sentence.O3) {
			return []update{{HIP, false}}
		}
		return nil
	}
	if form.Illoc == sentence.Imp && form.Contains(sentence.O1) && form.Contains(sentence.Verb) {
		if form.Adjacent(sentence.O1, sentence.Verb) {
			return []update{{HIP, true}}
		}
		if form.Adjacent(sentence.O1, sentence.Verb) {
			return []update{{HIP, false}}
		}
	}
	return nil
}

// nullSubject (NS): Dec forms only; also nudges OPT alongside NS.
func nullSubject(form sentence.Form) []update {
	if form.Illoc != sentence.Dec {
		return nil
	}
	switch {
	case !form.Contains(sentence.S) && form.OutOblique():
		return []update{{NS, true}, {OPT, true}}
	case form.Contains(sentence.S) && form.OutOblique():
		return []update{{NS, false}}
	default:
		return nil
	}
}

// whMovement (WHM): Q forms carrying any wh-feature.
func whMovement(form sentence.Form) []update {
	if form.Illoc != sentence.Q {
		return nil
	}
	hasWh := false
	for _, w := range form.Words {
		if w.HasFeature(sentence.WH) {
			hasWh = true
			break
		}
	}
	if !hasWh {
		return nil
	}

	firstHasWh := len(form.Words) > 0 && form.Words[0].HasFeature(sentence.WH)
	o3WhAny := sentence.Symbol{Kind: sentence.KindO3, Wa: sentence.Any, Wh: sentence.True}
	if firstHasWh || form.StartsWith([]sentence.Symbol{sentence.P, o3WhAny}) {
		return []update{{WHM, true}}
	}
	return []update{{WHM, false}}
}

// prepStranding is reserved in the source and never emits an update.
func prepStranding(form sentence.Form) []update {
	return nil
}
