package heredity

import (
	"fmt"
	"math"
)

// Params holds the probability tables of the network. It is passed by value
// and never mutated by the inference engine.
type Params struct {
	// GenePrior is the unconditional distribution of gene copies for people
	// without recorded parents, indexed by copy count.
	GenePrior [3]float64
	// Trait is P(trait | genes), indexed by [genes][trait] with trait index 0
	// for absent and 1 for present.
	Trait [3][2]float64
	// Mutation is the probability that a transmitted copy flips.
	Mutation float64
}

const tolerance = 1e-9

// DefaultParams returns the standard gene prior, trait and mutation tables.
func DefaultParams() Params {
	return Params{
		GenePrior: [3]float64{0.96, 0.03, 0.01},
		Trait: [3][2]float64{
			{0.99, 0.01},
			{0.44, 0.56},
			{0.35, 0.65},
		},
		Mutation: 0.01,
	}
}

// Validate checks that every value is a probability and every distribution
// sums to 1.
func (p Params) Validate() error {
	if err := checkDistribution(p.GenePrior[:]); err != nil {
		return fmt.Errorf("gene prior: %w", err)
	}
	for genes, row := range p.Trait {
		if err := checkDistribution(row[:]); err != nil {
			return fmt.Errorf("trait given %d genes: %w", genes, err)
		}
	}
	if !isProbability(p.Mutation) {
		return fmt.Errorf("mutation %v: %w", p.Mutation, ErrProbabilityRange)
	}
	return nil
}

// transmission returns the probability that a parent with the given number
// of copies passes a gene-bearing copy to a child.
func (p Params) transmission(genes int) float64 {
	switch genes {
	case 0:
		return p.Mutation
	case 1:
		return 0.5
	default:
		return 1 - p.Mutation
	}
}

func checkDistribution(values []float64) error {
	sum := 0.0
	for _, v := range values {
		if !isProbability(v) {
			return fmt.Errorf("value %v: %w", v, ErrProbabilityRange)
		}
		sum += v
	}
	if math.Abs(sum-1) > tolerance {
		return fmt.Errorf("sum %v: %w", sum, ErrNotNormalized)
	}
	return nil
}

func isProbability(v float64) bool {
	return v >= 0 && v <= 1
}
