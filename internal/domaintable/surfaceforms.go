package domaintable

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pfeyz-sim/colagsim/internal/sentence"
)

// SurfaceFormTable maps a sentence identifier to its parsed surface form.
// Immutable after LoadSurfaceForms.
type SurfaceFormTable struct {
	forms map[Sentence]sentence.Form
}

// LoadSurfaceForms reads the COLAG sentence file (header row, then
// sentence<TAB>illoc<TAB>symbols rows) and builds a SurfaceFormTable.
func LoadSurfaceForms(path string) (*SurfaceFormTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("domaintable: load surface form file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = 3

	if _, err := r.Read(); err != nil { // discard header
		return nil, fmt.Errorf("domaintable: read header of %s: %w", path, err)
	}

	forms := make(map[Sentence]sentence.Form)
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
		form, err := sentence.ParseForm(row[1], row[2])
		if err != nil {
			return nil, fmt.Errorf("domaintable: %s: %w", path, err)
		}
		forms[Sentence(s)] = form
	}

	return &SurfaceFormTable{forms: forms}, nil
}

// Form returns the parsed surface form for sentence s. Ok is false if s is
// not present in the table, which indicates corrupt input data (spec.md §7).
func (t *SurfaceFormTable) Form(s Sentence) (sentence.Form, bool) {
	f, ok := t.forms[s]
	return f, ok
}

// Len returns the number of surface forms loaded.
func (t *SurfaceFormTable) Len() int {
	return len(t.forms)
}
