// Package config loads the simulation driver's RunConfig from an
// optional TOML file, with flag-provided overrides layered on top.
//
// Grounded in _examples/dekarrin-tunaq's config handling
// (internal/tqw/tqw.go decodes world data through
// github.com/BurntSushi/toml; cmd/tqi and cmd/tqserver parse argv
// through github.com/spf13/pflag) — the same two libraries drive this
// package.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// RunConfig is the driver's resolved configuration: the paths to the
// three COLAG corpus files, the worker pool size, the per-job sentence
// cap, the set of target grammars and learner names to run, and the
// base RNG seed. Every field has a default matching spec.md §6's
// hard-coded paths, so a run with no config file and no flags still
// runs.
type RunConfig struct {
	Workers        int      `toml:"workers"`
	MaxSentences   uint64   `toml:"max_sentences"`
	LanguageFile   string   `toml:"language_file"`
	TriggerFile    string   `toml:"trigger_file"`
	SentenceFile   string   `toml:"sentence_file"`
	OutputPath     string   `toml:"output_path"`
	IrrelevantRate float64  `toml:"irrelevant_rate"`
	Replicates     int      `toml:"replicates"`
	Targets        []int    `toml:"targets"`
	Learners       []string `toml:"learners"`
	Seed           uint64   `toml:"seed"`
}

// Default returns the RunConfig a zero-flag, zero-config-file invocation
// uses: spec.md §6's hard-coded relative input paths, a 4-worker pool,
// output to stdout (empty OutputPath), and the English grammar as the
// sole target run once with every learner.
func Default() RunConfig {
	return RunConfig{
		Workers:        4,
		MaxSentences:   5_000_000,
		LanguageFile:   "data/COLAG_2011_ids.txt",
		TriggerFile:    "data/irrelevance-output.txt",
		SentenceFile:   "data/COLAG_2011_sents.txt",
		OutputPath:     "",
		IrrelevantRate: 1.0,
		Replicates:     1,
		Targets:        []int{611},
		Learners:       []string{"tla", "rovl", "rorvl", "ndl"},
		Seed:           1,
	}
}

// Load reads a TOML config file at path into a copy of Default(),
// leaving defaults in place for any key the file omits. A missing file
// is not an error: Load returns Default() unchanged. A malformed file is
// a load error (spec.md §7).
func Load(path string) (RunConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}
