package heredity

import (
	"context"
	"fmt"

	"aiplay/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Distribution is one person's posterior. Gene is indexed by copy count and
// Trait by 0 for absent and 1 for present.
type Distribution struct {
	Gene  [3]float64
	Trait [2]float64
}

// TraitProbability returns P(trait = present) when present is true and
// P(trait = absent) otherwise.
func (d Distribution) TraitProbability(present bool) float64 {
	return d.Trait[traitIndex(present)]
}

func (d *Distribution) add(genes int, present bool, p float64) {
	d.Gene[genes] += p
	d.Trait[traitIndex(present)] += p
}

func (d *Distribution) merge(other Distribution) {
	for i := range d.Gene {
		d.Gene[i] += other.Gene[i]
	}
	for i := range d.Trait {
		d.Trait[i] += other.Trait[i]
	}
}

func (d Distribution) total() float64 {
	return d.Gene[0] + d.Gene[1] + d.Gene[2]
}

// normalize scales both distributions to sum to 1. Infer rejects zero totals
// first, so reaching one here is a bug.
func (d *Distribution) normalize() {
	geneSum := d.Gene[0] + d.Gene[1] + d.Gene[2]
	traitSum := d.Trait[0] + d.Trait[1]
	if geneSum == 0 || traitSum == 0 {
		panic("cannot normalize a distribution with zero total weight")
	}
	for i := range d.Gene {
		d.Gene[i] /= geneSum
	}
	for i := range d.Trait {
		d.Trait[i] /= traitSum
	}
}

type Option func(*inference)

type inference struct {
	params     Params
	goroutines int
	metrics    metrics.Collector
}

func WithParams(params Params) Option {
	return func(in *inference) {
		in.params = params
	}
}

// WithGoroutines spreads the trait subsets over n workers.
func WithGoroutines(n int) Option {
	return func(in *inference) {
		if n > 0 {
			in.goroutines = n
		}
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(in *inference) {
		if c != nil {
			in.metrics = c
		}
	}
}

// Result holds the normalized distribution of every person.
type Result struct {
	family        *Family
	distributions []Distribution
}

// Get returns the distribution of the named person.
func (r *Result) Get(name string) (Distribution, bool) {
	i, ok := r.family.index[name]
	if !ok {
		return Distribution{}, false
	}
	return r.distributions[i], true
}

// Names returns the people in dataset order.
func (r *Result) Names() []string {
	return r.family.Names()
}

// Distributions returns the distributions keyed by name.
func (r *Result) Distributions() map[string]Distribution {
	out := make(map[string]Distribution, len(r.distributions))
	for i, p := range r.family.people {
		out[p.Name] = r.distributions[i]
	}
	return out
}

// Infer computes every person's gene and trait distribution given the known
// traits, by summing the joint probability of every consistent scenario.
func Infer(ctx context.Context, f *Family, options ...Option) (*Result, error) {
	in := &inference{
		params:     DefaultParams(),
		goroutines: 1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(in)
	}
	if err := in.params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	in.metrics.Start(in.goroutines)
	partials := make([][]Distribution, in.goroutines)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < in.goroutines; w++ {
		partials[w] = make([]Distribution, f.Len())
		g.Go(func() error {
			return in.accumulate(ctx, f, w, partials[w])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Merge in worker order so a given worker count always sums identically
	distributions := make([]Distribution, f.Len())
	for _, partial := range partials {
		for i := range distributions {
			distributions[i].merge(partial[i])
		}
	}
	for i := range distributions {
		if distributions[i].total() == 0 {
			return nil, fmt.Errorf("%s: %w", f.people[i].Name, ErrImpossibleEvidence)
		}
		distributions[i].normalize()
	}

	snapshot := in.metrics.Complete()
	log.Debug().
		Int("people", f.Len()).
		Int("goroutines", in.goroutines).
		Int("accepted", snapshot.ScenariosAccepted).
		Int("rejected", snapshot.ScenariosRejected).
		Dur("duration", snapshot.Duration).
		Msg("inference complete")

	return &Result{family: f, distributions: distributions}, nil
}

// accumulate handles the trait subsets assigned to worker w, round robin over
// the enumeration order.
func (in *inference) accumulate(ctx context.Context, f *Family, w int, acc []Distribution) error {
	k := 0
	for trait := range subsets(f.everyone()) {
		mine := k%in.goroutines == w
		k++
		if !mine {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !f.Consistent(trait) {
			in.metrics.AddScenario(false)
			continue
		}
		in.metrics.AddScenario(true)

		for one, two := range f.GeneSplits() {
			s := Scenario{OneGene: one, TwoGenes: two, HaveTrait: trait}
			p := f.JointProbability(in.params, s)
			in.metrics.AddEvaluation()
			for i := range acc {
				acc[i].add(s.Genes(i), s.HasTrait(i), p)
			}
		}
	}
	return nil
}
