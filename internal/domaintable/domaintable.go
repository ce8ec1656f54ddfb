// Package domaintable loads and queries the fixed tables the COLAG
// domain is built from: the language table (grammar -> sentences it
// generates), the trigger table (sentence -> per-parameter trigger
// label) and the surface-form table (sentence -> parsed form). All are
// built once at startup and are read-only afterward, so they can be
// shared across worker goroutines without locking.
//
// Grounded in _examples/original_source/src/domain.rs (the LanguageDomain
// trait and its Colag implementation) and
// _examples/original_source/src/triggers.rs (the trigger file loader,
// which used the Rust `csv` crate with a space delimiter — the Go
// counterpart here is encoding/csv with Comma set to ' ', see SPEC_FULL.md
// §4.15).
package domaintable

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sort"

	"github.com/pfeyz-sim/colagsim/internal/grammar"
)

// Sentence is an opaque sentence identifier drawn from the COLAG corpus.
type Sentence uint32

// EnglishGrammar is the calibration grammar used throughout the corpus'
// test suite: 611, with exactly 360 sentences.
const EnglishGrammar grammar.Grammar = 611

// IllegalGrammarError is returned when a query names a grammar that is
// not one of the 3072 legal COLAG grammars.
type IllegalGrammarError struct {
	Grammar grammar.Grammar
}

func (e *IllegalGrammarError) Error() string {
	return fmt.Sprintf("illegal grammar: %d", e.Grammar)
}

// LanguageTable maps each legal grammar to the set of sentences it
// generates. It is immutable after Load.
type LanguageTable struct {
	byGrammar map[grammar.Grammar]map[Sentence]struct{}
	vecCache  map[grammar.Grammar][]Sentence
	legal     *grammar.LegalSet
	legalList []grammar.Grammar
}

// Load reads a COLAG language TSV (header row, then grammar<TAB>sentence
// <TAB>tree_id rows; tree_id is discarded) and builds a LanguageTable.
func Load(path string) (*LanguageTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("domaintable: load language file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = 3

	if _, err := r.Read(); err != nil { // discard header
		return nil, fmt.Errorf("domaintable: read header of %s: %w", path, err)
	}

	byGrammar := make(map[grammar.Grammar]map[Sentence]struct{})
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("domaintable: malformed row in %s: %w", path, err)
		}
		var g, s uint64
		if _, err := fmt.Sscanf(row[0], "%d", &g); err != nil {
			return nil, fmt.Errorf("domaintable: bad grammar column %q in %s: %w", row[0], path, err)
		}
		if _, err := fmt.Sscanf(row[1], "%d", &s); err != nil {
			return nil, fmt.Errorf("domaintable: bad sentence column %q in %s: %w", row[1], path, err)
		}

		gr := grammar.Grammar(g)
		set, ok := byGrammar[gr]
		if !ok {
			set = make(map[Sentence]struct{})
			byGrammar[gr] = set
		}
		set[Sentence(s)] = struct{}{}
	}

	if len(byGrammar) != grammar.NumLegal {
		return nil, fmt.Errorf("domaintable: expected %d grammars, saw %d", grammar.NumLegal, len(byGrammar))
	}
	if len(byGrammar[EnglishGrammar]) != 360 {
		return nil, fmt.Errorf("domaintable: expected 360 sentences for grammar %d, saw %d",
			EnglishGrammar, len(byGrammar[EnglishGrammar]))
	}
	for _, want := range []Sentence{3138, 1970, 5871, 6923, 1969} {
		if _, ok := byGrammar[EnglishGrammar][want]; !ok {
			return nil, fmt.Errorf("domaintable: grammar %d missing expected sentence %d", EnglishGrammar, want)
		}
	}

	legalList := make([]grammar.Grammar, 0, len(byGrammar))
	for g := range byGrammar {
		legalList = append(legalList, g)
	}
	sort.Slice(legalList, func(i, j int) bool { return legalList[i] < legalList[j] })

	vecCache := make(map[grammar.Grammar][]Sentence, len(byGrammar))
	for g, set := range byGrammar {
		v := make([]Sentence, 0, len(set))
		for s := range set {
			v = append(v, s)
		}
		sort.Slice(v, func(i, j int) bool { return v[i] < v[j] })
		vecCache[g] = v
	}

	return &LanguageTable{
		byGrammar: byGrammar,
		vecCache:  vecCache,
		legal:     grammar.NewLegalSet(legalList),
		legalList: legalList,
	}, nil
}

// Language returns the set of sentences grammar g generates, or an
// IllegalGrammarError if g is not legal.
func (t *LanguageTable) Language(g grammar.Grammar) (map[Sentence]struct{}, error) {
	set, ok := t.byGrammar[g]
	if !ok {
		return nil, &IllegalGrammarError{Grammar: g}
	}
	return set, nil
}

// LanguageVec returns a stable ordered view of the sentences grammar g
// generates, suitable for O(1) indexed choice by a speaker. The vector
// is built once by Load and never mutated afterward, so concurrent
// callers (one per worker goroutine, see internal/parallel) share it
// without locking.
func (t *LanguageTable) LanguageVec(g grammar.Grammar) ([]Sentence, error) {
	v, ok := t.vecCache[g]
	if !ok {
		return nil, &IllegalGrammarError{Grammar: g}
	}
	return v, nil
}

// Parses reports whether grammar g generates sentence s, or an
// IllegalGrammarError if g is not legal.
func (t *LanguageTable) Parses(g grammar.Grammar, s Sentence) (bool, error) {
	set, err := t.Language(g)
	if err != nil {
		return false, err
	}
	_, ok := set[s]
	return ok, nil
}

// RandomGrammar returns a grammar chosen uniformly at random from the
// legal grammars (the keys of the language map) — this is the asymmetry
// noted in spec.md §9(d): unlike RandomWeightedGrammar, this can never
// return an illegal grammar.
func (t *LanguageTable) RandomGrammar(rng *rand.Rand) grammar.Grammar {
	return t.legalList[rng.IntN(len(t.legalList))]
}

// RandomWeightedGrammar draws a grammar by setting each parameter bit
// independently with probability weights[p]. The result is not required
// to be legal; callers that need a legal grammar must reject-and-resample.
func RandomWeightedGrammar(rng *rand.Rand, weights [grammar.NumParams]float64) grammar.Grammar {
	var g grammar.Grammar
	for p := 0; p < grammar.NumParams; p++ {
		if rng.Float64() < weights[p] {
			g = grammar.Set(g, p)
		}
	}
	return g
}

// NumLegal returns the number of legal grammars in the table (always
// grammar.NumLegal for a correctly loaded corpus).
func (t *LanguageTable) NumLegal() int {
	return len(t.legalList)
}
