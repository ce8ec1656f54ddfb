package domaintable

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pfeyz-sim/colagsim/internal/grammar"
)

// TriggerLabel is the per-(sentence, parameter) label a trigger table
// entry carries.
type TriggerLabel int

const (
	Off TriggerLabel = iota
	On
	Ambiguous
	Irrelevant
)

func (l TriggerLabel) String() string {
	switch l {
	case Off:
		return "Off"
	case On:
		return "On"
	case Ambiguous:
		return "Ambiguous"
	default:
		return "Irrelevant"
	}
}

// TriggerVector is the fixed 13-label trigger assignment for one sentence.
type TriggerVector [grammar.NumParams]TriggerLabel

// NumTriggers is the required number of entries in a fully loaded trigger
// table (spec.md §3).
const NumTriggers = 48077

// TriggerTable maps a sentence to its TriggerVector. Immutable after
// LoadTriggers.
//
// Grounded in _examples/original_source/src/triggers.rs, which read this
// same file shape through the Rust `csv` crate with a space delimiter; see
// SPEC_FULL.md §4.15 for why the Go side uses encoding/csv the same way.
type TriggerTable struct {
	byLabel map[Sentence]TriggerVector
}

// LoadTriggers reads a space-delimited, headerless file of
// (sentence, 13-character trigger string) pairs and builds a TriggerTable.
func LoadTriggers(path string) (*TriggerTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("domaintable: load trigger file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ' '
	r.FieldsPerRecord = 2

	byLabel := make(map[Sentence]TriggerVector)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("domaintable: malformed row in %s: %w", path, err)
		}
		var s uint64
		if _, err := fmt.Sscanf(row[0], "%d", &s); err != nil {
			return nil, fmt.Errorf("domaintable: bad sentence column %q in %s: %w", row[0], path, err)
		}
		trig := row[1]
		if len(trig) != grammar.NumParams {
			return nil, fmt.Errorf("domaintable: %s: trigger string %q has length %d, want %d",
				path, trig, len(trig), grammar.NumParams)
		}
		var vec TriggerVector
		for i := 0; i < grammar.NumParams; i++ {
			switch trig[i] {
			case '0':
				vec[i] = Off
			case '1':
				vec[i] = On
			case '*':
				vec[i] = Ambiguous
			case '~':
				vec[i] = Irrelevant
			default:
				return nil, fmt.Errorf("domaintable: %s: illegal trigger char %q in %q", path, trig[i], trig)
			}
		}
		byLabel[Sentence(s)] = vec
	}

	if len(byLabel) != NumTriggers {
		return nil, fmt.Errorf("domaintable: expected %d trigger entries, saw %d", NumTriggers, len(byLabel))
	}

	return &TriggerTable{byLabel: byLabel}, nil
}

// Get returns the trigger vector for sentence s and true, or the zero
// vector and false if s is absent.
func (t *TriggerTable) Get(s Sentence) (TriggerVector, bool) {
	v, ok := t.byLabel[s]
	return v, ok
}

// Len returns the number of entries loaded.
func (t *TriggerTable) Len() int {
	return len(t.byLabel)
}
