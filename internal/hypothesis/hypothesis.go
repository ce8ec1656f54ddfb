// Package hypothesis holds the two shapes a learner's current guess about
// the target grammar can take, and the tagged union a reporter uses to
// format either without knowing the concrete learner.
//
// Grounded in _examples/original_source/src/hypothesis.rs.
package hypothesis

import (
	"fmt"
	"strings"

	"github.com/pfeyz-sim/colagsim/internal/grammar"
)

// Simple is a single concrete grammar — the Trigger Learning Algorithm's
// hypothesis shape.
type Simple struct {
	Grammar grammar.Grammar
}

func (s Simple) String() string {
	return fmt.Sprintf("%d", s.Grammar)
}

// Weighted is a vector of per-parameter weights in [0,1] — the shape used
// by the variational and non-defaults learners. NewWeighted initializes
// every weight to 0.5, the neutral starting state.
type Weighted struct {
	Weights [grammar.NumParams]float64
}

// NewWeighted builds a Weighted hypothesis with every weight at the
// neutral initial value.
//
// The source fills this array element-by-element through an uninitialized
// fixed-size array (see DESIGN NOTES, "source pattern to re-architect");
// here the array starts zero-valued and is filled before NewWeighted
// returns, so callers never see a partially initialized weight vector.
func NewWeighted() Weighted {
	w := Weighted{}
	for p := range w.Weights {
		w.Weights[p] = 0.5
	}
	return w
}

func (w Weighted) String() string {
	parts := make([]string, len(w.Weights))
	for i, v := range w.Weights {
		parts[i] = fmt.Sprintf("%.6f", v)
	}
	return strings.Join(parts, ",")
}

// Theory is a tagged variant over the two hypothesis shapes, letting a
// reporter format either kind without a type switch on the concrete
// learner.
type Theory struct {
	simple   *Simple
	weighted *Weighted
}

// OfSimple wraps a Simple hypothesis as a Theory.
func OfSimple(s Simple) Theory { return Theory{simple: &s} }

// OfWeighted wraps a Weighted hypothesis as a Theory.
func OfWeighted(w Weighted) Theory { return Theory{weighted: &w} }

// IsSimple reports whether this Theory wraps a Simple hypothesis.
func (t Theory) IsSimple() bool { return t.simple != nil }

// AsSimple returns the wrapped Simple hypothesis and true, or the zero
// value and false if this Theory wraps a Weighted hypothesis instead.
func (t Theory) AsSimple() (Simple, bool) {
	if t.simple == nil {
		return Simple{}, false
	}
	return *t.simple, true
}

// AsWeighted returns the wrapped Weighted hypothesis and true, or the zero
// value and false if this Theory wraps a Simple hypothesis instead.
func (t Theory) AsWeighted() (Weighted, bool) {
	if t.weighted == nil {
		return Weighted{}, false
	}
	return *t.weighted, true
}

// String formats whichever hypothesis this Theory wraps.
func (t Theory) String() string {
	if t.simple != nil {
		return t.simple.String()
	}
	if t.weighted != nil {
		return t.weighted.String()
	}
	return ""
}
