// Package report encodes completed run results as CSV rows.
//
// Grounded in _examples/original_source/src/main.rs, which println!s one
// CSV line per completed run (the source's own reporting path); no
// third-party CSV writer appears anywhere in the retrieval pack, so this
// package uses the standard library's encoding/csv the same way
// internal/domaintable's loaders do — see SPEC_FULL.md §4.15.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pfeyz-sim/colagsim/internal/grammar"
	"github.com/pfeyz-sim/colagsim/internal/hypothesis"
)

// Row is the in-memory record a worker hands back to the reporter before
// CSV encoding: learner tag, target grammar, the learner's final concrete
// guess, run tag, consumed-sentence count, and the full final hypothesis.
type Row struct {
	LearnerName string
	Target      grammar.Grammar
	Guess       grammar.Grammar
	RunTag      string
	Consumed    uint64
	Final       hypothesis.Theory
}

// header names the CSV columns Writer emits, in order (spec.md §4.10).
var header = []string{"learner_name", "target", "final_grammar_guess", "run_tag", "consumed", "hypothesis_detail"}

// Writer encodes Rows as CSV, one row per completed job, through a
// buffered csv.Writer over an underlying io.Writer (typically stdout or
// a --out file).
type Writer struct {
	w *csv.Writer
}

// NewWriter wraps w and writes the header row immediately.
func NewWriter(w io.Writer) (*Writer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return nil, err
	}
	return &Writer{w: cw}, nil
}

// Write encodes one Row. The hypothesis_detail column is either a bare
// integer (Simple hypotheses) or a 13-value comma-joined weight vector
// (Weighted hypotheses) — hypothesis.Theory.String already formats
// either shape correctly.
func (w *Writer) Write(r Row) error {
	return w.w.Write([]string{
		r.LearnerName,
		strconv.Itoa(int(r.Target)),
		strconv.Itoa(int(r.Guess)),
		r.RunTag,
		strconv.FormatUint(r.Consumed, 10),
		r.Final.String(),
	})
}

// Flush flushes any buffered rows and returns the first write error, if
// any occurred.
func (w *Writer) Flush() error {
	w.w.Flush()
	return w.w.Error()
}
