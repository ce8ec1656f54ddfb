// Package testutil builds small, structurally valid COLAG fixture files
// for tests across the module, so every package's tests satisfy
// domaintable's load-time invariants (3072 grammars, 360 English
// sentences including the five calibration sentences, 48077 triggers)
// without shipping the real multi-megabyte corpus files.
package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/pfeyz-sim/colagsim/internal/domaintable"
)

// EnglishCalibrationSentences are the five sentences spec.md §3 requires
// grammar 611's language to contain.
var EnglishCalibrationSentences = []int{3138, 1970, 5871, 6923, 1969}

// WriteLanguageFixture writes a minimal-but-valid COLAG language TSV under
// a temp directory and returns its path. Every legal grammar gets exactly
// one sentence except 611 (English), which gets the five calibration
// sentences plus enough filler to reach 360.
func WriteLanguageFixture(t *testing.T) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("grammar\tsentence\ttree_id\n")
	for g := 0; g < 3072; g++ {
		if g == int(domaintable.EnglishGrammar) {
			for _, s := range EnglishCalibrationSentences {
				writeRow(&b, g, s)
			}
			for s := 0; s < 355; s++ {
				writeRow(&b, g, 10000+s)
			}
		} else {
			writeRow(&b, g, g)
		}
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "lang.tsv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write language fixture: %v", err)
	}
	return path
}

func writeRow(b *strings.Builder, g, s int) {
	b.WriteString(strconv.Itoa(g))
	b.WriteByte('\t')
	b.WriteString(strconv.Itoa(s))
	b.WriteString("\t0\n")
}

// WriteTriggerFixture writes a trigger file covering every sentence id in
// sentenceIDs, with every parameter marked Ambiguous except those listed
// in irrelevant, which are marked Irrelevant. The remaining entries up to
// domaintable.NumTriggers are filled with disjoint placeholder sentence
// ids (all parameters Ambiguous), since LoadTriggers requires the full
// corpus count. Returns the file path.
func WriteTriggerFixture(t *testing.T, sentenceIDs []int, irrelevant map[int]bool) string {
	t.Helper()
	var b strings.Builder
	count := 0
	for _, s := range sentenceIDs {
		writeTriggerRow(&b, s, irrelevant)
		count++
	}
	for filler := 1_000_000; count < domaintable.NumTriggers; filler++ {
		writeTriggerRow(&b, filler, nil)
		count++
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "trig.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write trigger fixture: %v", err)
	}
	return path
}

func writeTriggerRow(b *strings.Builder, s int, irrelevant map[int]bool) {
	b.WriteString(strconv.Itoa(s))
	b.WriteByte(' ')
	for p := 0; p < 13; p++ {
		if irrelevant[p] {
			b.WriteByte('~')
		} else {
			b.WriteByte('*')
		}
	}
	b.WriteByte('\n')
}
