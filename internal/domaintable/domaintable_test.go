package domaintable

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/pfeyz-sim/colagsim/internal/grammar"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadRejectsWrongGrammarCount(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "lang.tsv", "grammar\tsentence\ttree_id\n0\t1\t0\n1\t2\t0\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for a corpus with only 2 grammars")
	}
}

func newFixtureTable() *LanguageTable {
	byGrammar := map[grammar.Grammar]map[Sentence]struct{}{
		0:   {1: {}, 2: {}},
		611: {3: {}, 4: {}, 5: {}},
	}
	legalList := []grammar.Grammar{0, 611}
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
	}
}

func TestParsesAndIllegalGrammar(t *testing.T) {
	table := newFixtureTable()

	ok, err := table.Parses(611, 3)
	if err != nil || !ok {
		t.Errorf("Parses(611, 3) = %v, %v, want true, nil", ok, err)
	}
	ok, err = table.Parses(611, 999)
	if err != nil || ok {
		t.Errorf("Parses(611, 999) = %v, %v, want false, nil", ok, err)
	}
	_, err = table.Parses(42, 3)
	if err == nil {
		t.Fatal("expected IllegalGrammarError for grammar 42")
	}
	if _, ok := err.(*IllegalGrammarError); !ok {
		t.Errorf("error type = %T, want *IllegalGrammarError", err)
	}
}

func TestRandomGrammarOnlyReturnsLegal(t *testing.T) {
	table := newFixtureTable()
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 100; i++ {
		g := table.RandomGrammar(rng)
		if g != 0 && g != 611 {
			t.Fatalf("RandomGrammar returned illegal grammar %d", g)
		}
	}
}

func TestRandomWeightedGrammarExtremes(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	var zero [grammar.NumParams]float64
	if g := RandomWeightedGrammar(rng, zero); g != 0 {
		t.Errorf("RandomWeightedGrammar(all-zero weights) = %d, want 0", g)
	}

	var ones [grammar.NumParams]float64
	for i := range ones {
		ones[i] = 1
	}
	want := grammar.Grammar(0b1_1111_1111_1111)
	if g := RandomWeightedGrammar(rng, ones); g != want {
		t.Errorf("RandomWeightedGrammar(all-one weights) = %b, want %b", g, want)
	}
}

func TestLanguageVecCaching(t *testing.T) {
	table := newFixtureTable()
	v1, err := table.LanguageVec(611)
	if err != nil {
		t.Fatalf("LanguageVec: %v", err)
	}
	if len(v1) != 3 {
		t.Fatalf("len(v1) = %d, want 3", len(v1))
	}
	v2, _ := table.LanguageVec(611)
	if &v1[0] != &v2[0] {
		t.Error("expected LanguageVec to return the cached slice on a second call")
	}
}

func TestLoadTriggersRejectsBadChar(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "trig.txt", "1 010101010101x\n")
	if _, err := LoadTriggers(path); err == nil {
		t.Fatal("expected error for illegal trigger character")
	}
}

func TestLoadTriggersRejectsWrongLength(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "trig.txt", "1 0101\n")
	if _, err := LoadTriggers(path); err == nil {
		t.Fatal("expected error for wrong-length trigger string")
	}
}

func TestTriggerTableGet(t *testing.T) {
	table := &TriggerTable{byLabel: map[Sentence]TriggerVector{
		7: {On, Off, Ambiguous, Irrelevant, On, Off, On, Off, On, Off, On, Off, On},
	}}
	vec, ok := table.Get(7)
	if !ok {
		t.Fatal("expected sentence 7 to be present")
	}
	if vec[0] != On || vec[3] != Irrelevant {
		t.Errorf("unexpected trigger vector %v", vec)
	}
	if _, ok := table.Get(8); ok {
		t.Error("expected sentence 8 to be absent")
	}
}
