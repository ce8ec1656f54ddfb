/*
Colagsim runs COLAG parametric-grammar learner simulations: a fixed
worker pool draws sentences from a target grammar's language through a
speaker and feeds them to one of the Trigger Learning Algorithm, the
Reward-Only (Relevant) Variational Learners, or the Non-Defaults
Learner, then reports each run's outcome as a CSV row on stdout.

Usage:

	colagsim [flags]

The flags are:

	--config path
		TOML config file (optional; see internal/config for the key set).

	--workers N
		Fixed worker pool size.

	--max-sentences N
		Per-job sentence cap; a run that never converges stops here.

	--targets "611,612"
		Comma-separated target grammars to run.

	--learners "tla,rovl,rorvl,ndl"
		Comma-separated learner names.

	--irrelevant-rate F
		RO-RVL's irrelevant-parameter update-rate multiplier.

	--replicates N
		Replicate runs per (target, learner) pair.

	--seed N
		Base RNG seed; each job derives its own seed from this plus its index.

	--out path
		Output CSV path; empty writes to stdout.

Every flag overrides the corresponding config-file value. With no flags
and no config file present, the program runs with spec-documented
defaults (see internal/config.Default).
*/
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/pfeyz-sim/colagsim/internal/config"
	"github.com/pfeyz-sim/colagsim/internal/domaintable"
	"github.com/pfeyz-sim/colagsim/internal/grammar"
	"github.com/pfeyz-sim/colagsim/internal/learner"
	"github.com/pfeyz-sim/colagsim/internal/parallel"
	"github.com/pfeyz-sim/colagsim/internal/report"
	"github.com/pfeyz-sim/colagsim/internal/runid"
	"github.com/pfeyz-sim/colagsim/internal/speaker"
)

const (
	// ExitSuccess indicates a successful run.
	ExitSuccess = iota

	// ExitConfigError indicates a problem initializing logging.
	ExitConfigError
)

var (
	returnCode int

	flagConfig         = pflag.String("config", "", "Path to a TOML config file (optional)")
	flagWorkers        = pflag.Int("workers", 0, "Fixed worker pool size (0 keeps the config/default value)")
	flagMaxSentences   = pflag.Uint64("max-sentences", 0, "Per-job sentence cap (0 keeps the config/default value)")
	flagTargets        = pflag.String("targets", "", `Comma-separated target grammars, e.g. "611,612"`)
	flagLearners       = pflag.String("learners", "", "Comma-separated learner names: tla,rovl,rorvl,ndl")
	flagIrrelevantRate = pflag.Float64("irrelevant-rate", -1, "RO-RVL irrelevant-parameter update-rate multiplier")
	flagReplicates     = pflag.Int("replicates", 0, "Replicate runs per (target, learner) pair")
	flagSeed           = pflag.Uint64("seed", 0, "Base RNG seed")
	flagOut            = pflag.String("out", "", "Output CSV path (empty writes to stdout)")
)

func main() {
	defer func() {
		os.Exit(returnCode)
	}()

	pflag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "colagsim: logger init: %v\n", err)
		returnCode = ExitConfigError
		return
	}
	defer log.Sync()

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}
	applyFlagOverrides(&cfg)
	for _, name := range cfg.Learners {
		if _, err := newLearner(name, nil, cfg.IrrelevantRate); err != nil {
			log.Fatal("invalid learner name in --learners or config file", zap.Error(err))
		}
	}

	domain, err := domaintable.Load(cfg.LanguageFile)
	if err != nil {
		log.Fatal("language table load failed", zap.Error(err))
	}
	triggers, err := domaintable.LoadTriggers(cfg.TriggerFile)
	if err != nil {
		log.Fatal("trigger table load failed", zap.Error(err))
	}
	forms, err := domaintable.LoadSurfaceForms(cfg.SentenceFile)
	if err != nil {
		log.Fatal("surface form table load failed", zap.Error(err))
	}
	log.Info("tables loaded",
		zap.Int("legal_grammars", domain.NumLegal()),
		zap.Int("triggers", triggers.Len()),
		zap.Int("surface_forms", forms.Len()),
	)

	env := &learner.Environment{Domain: domain, Triggers: triggers, Forms: forms}

	out := os.Stdout
	if cfg.OutputPath != "" {
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			log.Fatal("open output file failed", zap.Error(err))
		}
		defer f.Close()
		out = f
	}
	writer, err := report.NewWriter(out)
	if err != nil {
		log.Fatal("CSV writer init failed", zap.Error(err))
	}

	jobs := buildJobs(cfg, env)
	log.Info("starting worker pool", zap.Int("workers", cfg.Workers), zap.Int("jobs", len(jobs)))

	pool := parallel.NewPool(cfg.Workers, log)
	results := pool.Run(jobs)
	log.Info("run complete", zap.Int("jobs", len(jobs)), zap.Int("rows", len(results)))

	for _, r := range results {
		row, ok := r.Value.(report.Row)
		if !ok {
			continue
		}
		if err := writer.Write(row); err != nil {
			log.Error("write row failed", zap.String("job", r.Label), zap.Error(err))
		}
	}
	if err := writer.Flush(); err != nil {
		log.Fatal("flush output failed", zap.Error(err))
	}
}

// buildJobs expands the (target, learner, replicate) cross product of
// cfg into one parallel.Job per combination, each deriving its own seed
// from cfg.Seed and its position in the expansion so runs are
// reproducible and independent across jobs (spec.md §5).
func buildJobs(cfg config.RunConfig, env *learner.Environment) []parallel.Job {
	var jobs []parallel.Job
	var idx uint64
	for _, t := range cfg.Targets {
		target := grammar.Grammar(t)
		for _, name := range cfg.Learners {
			learnerName := name
			for rep := 0; rep < cfg.Replicates; rep++ {
				idx++
				seed := cfg.Seed + idx
				label := fmt.Sprintf("%s/%d/%d", learnerName, target, rep)
				jobs = append(jobs, parallel.Job{
					Label: label,
					Run: func() (any, error) {
						return runJob(env, target, learnerName, cfg.MaxSentences, cfg.IrrelevantRate, seed)
					},
				})
			}
		}
	}
	return jobs
}

// runJob owns one independent (target, learner) run end to end: its own
// RNG, its own speaker, its own learner instance, consuming sentences
// until convergence or the sentence cap.
func runJob(
	env *learner.Environment,
	target grammar.Grammar,
	learnerName string,
	maxSentences uint64,
	irrelevantRate float64,
	seed uint64,
) (any, error) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	speakerRng := rand.New(rand.NewPCG(seed^0x9e3779b97f4a7c15, seed))

	l, err := newLearner(learnerName, rng, irrelevantRate)
	if err != nil {
		return nil, err
	}
	sp, err := speaker.New(env.Domain, target, speakerRng)
	if err != nil {
		return nil, err
	}

	var consumed uint64
	for consumed < maxSentences {
		l.Learn(env, sp.Next())
		consumed++
		if l.Converged() {
			break
		}
	}

	guess := l.Guess(rng)

	return report.Row{
		LearnerName: learnerName,
		Target:      target,
		Guess:       guess.Grammar,
		RunTag:      runid.New(),
		Consumed:    consumed,
		Final:       l.Theory(),
	}, nil
}

func newLearner(name string, rng *rand.Rand, irrelevantRate float64) (learner.Learner, error) {
	switch name {
	case "tla":
		return learner.NewTLA(rng), nil
	case "rovl":
		return learner.NewRewardOnlyVL(rng), nil
	case "rorvl":
		return learner.NewRewardOnlyRelevantVL(rng, irrelevantRate), nil
	case "ndl":
		return learner.NewNDL(), nil
	default:
		return nil, fmt.Errorf("unknown learner name %q", name)
	}
}

func applyFlagOverrides(cfg *config.RunConfig) {
	if pflag.CommandLine.Changed("workers") {
		cfg.Workers = *flagWorkers
	}
	if pflag.CommandLine.Changed("max-sentences") {
		cfg.MaxSentences = *flagMaxSentences
	}
	if pflag.CommandLine.Changed("targets") {
		cfg.Targets = parseIntList(*flagTargets)
	}
	if pflag.CommandLine.Changed("learners") {
		cfg.Learners = parseStringList(*flagLearners)
	}
	if pflag.CommandLine.Changed("irrelevant-rate") {
		cfg.IrrelevantRate = *flagIrrelevantRate
	}
	if pflag.CommandLine.Changed("replicates") {
		cfg.Replicates = *flagReplicates
	}
	if pflag.CommandLine.Changed("seed") {
		cfg.Seed = *flagSeed
	}
	if pflag.CommandLine.Changed("out") {
		cfg.OutputPath = *flagOut
	}
}

func parseIntList(s string) []int {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

func parseStringList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
