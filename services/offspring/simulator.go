// Package offspring simulates the genomes two parents could pass to a child
// and tallies how often each trait outcome turns up.
package offspring

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/odurisile/DNA-Insight/models/genome"
	"github.com/odurisile/DNA-Insight/models/health"
	"github.com/odurisile/DNA-Insight/models/traits"

	"golang.org/x/sync/errgroup"
)

const (
	MinTrials     = 8
	MaxTrials     = 256
	DefaultTrials = 64
)

// ErrMissingParent is returned when either parent genome is empty.
var ErrMissingParent = errors.New("both parent genomes are required")

type TraitPredictor interface {
	Predict(genome.Genome) traits.Set
}

type RiskComputer interface {
	Compute(genome.Genome) health.Profile
}

type Simulator struct {
	phenotype   TraitPredictor
	risk        RiskComputer
	concurrency int
	template    Template
}

func NewSimulator(phenotype TraitPredictor, risk RiskComputer, concurrency int, template Template) *Simulator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Simulator{
		phenotype:   phenotype,
		risk:        risk,
		concurrency: concurrency,
		template:    template,
	}
}

// Request tunes one simulation. A nil Seed draws a fresh one.
type Request struct {
	Trials int
	Seed   *int64
}

// Distribution maps trait name to outcome key to frequency.
type Distribution map[string]map[string]float64

type Outcome struct {
	Seed         int64          `json:"seed"`
	Trials       int            `json:"trials"`
	Template     string         `json:"template"`
	ChildGenome  genome.Genome  `json:"-"`
	ChildCalls   int            `json:"childCalls"`
	ChildTraits  traits.Set     `json:"childTraits"`
	ChildHealth  health.Profile `json:"childHealth"`
	Distribution Distribution   `json:"distribution"`
}

// ClampTrials bounds a requested trial count; zero means the default.
func ClampTrials(n int) int {
	switch {
	case n == 0:
		return DefaultTrials
	case n < MinTrials:
		return MinTrials
	case n > MaxTrials:
		return MaxTrials
	}
	return n
}

// Simulate builds one representative child and runs the Monte Carlo trials.
// Every trial owns a seed drawn from the master seed, so a seed reproduces
// the outcome regardless of scheduling.
func (s *Simulator) Simulate(ctx context.Context, a, b genome.Genome, req Request) (*Outcome, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrMissingParent
	}

	var seed int64
	if req.Seed != nil {
		seed = *req.Seed
	} else {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, err
		}
	}
	trials := ClampTrials(req.Trials)

	master := NewSource(seed)
	childSeed := master.Int63()
	trialSeeds := make([]int64, trials)
	for i := range trialSeeds {
		trialSeeds[i] = master.Int63()
	}

	start := time.Now()

	child := s.child(a, b, childSeed)
	outcome := &Outcome{
		Seed:        seed,
		Trials:      trials,
		Template:    s.template.String(),
		ChildGenome: child,
		ChildCalls:  len(child),
		ChildTraits: s.phenotype.Predict(child),
		ChildHealth: s.risk.Compute(child),
	}

	summaries := make([]map[string]string, trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range trialSeeds {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			summaries[i] = s.phenotype.Predict(s.child(a, b, trialSeeds[i])).Summary()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("offspring trials: %w", err)
	}

	outcome.Distribution = tally(summaries)

	fmt.Printf("[%s] - Simulated %d offspring trials (seed %d) in %s\n", time.Now(), trials, seed, time.Since(start))
	return outcome, nil
}

func (s *Simulator) child(a, b genome.Genome, seed int64) genome.Genome {
	src := NewSource(seed)
	gameteA := MakeGamete(a, src)
	gameteB := MakeGamete(b, src)
	return MakeChild(gameteA, gameteB, a, b, s.template)
}

func tally(summaries []map[string]string) Distribution {
	counts := map[string]map[string]int{}
	for _, summary := range summaries {
		for name, key := range summary {
			if counts[name] == nil {
				counts[name] = map[string]int{}
			}
			counts[name][key]++
		}
	}

	dist := make(Distribution, len(counts))
	total := float64(len(summaries))
	for name, outcomes := range counts {
		dist[name] = make(map[string]float64, len(outcomes))
		for key, n := range outcomes {
			dist[name][key] = float64(n) / total
		}
	}
	return dist
}

// Ranked lists a trait's outcomes from most to least frequent, ties by key.
func (d Distribution) Ranked(trait string) []string {
	outcomes := d[trait]
	keys := make([]string, 0, len(outcomes))
	for k := range outcomes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if outcomes[keys[i]] != outcomes[keys[j]] {
			return outcomes[keys[i]] > outcomes[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
