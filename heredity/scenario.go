package heredity

import (
	"fmt"
	"iter"
	"math/bits"
)

// Subset is a set of people, bit i standing for the i-th person of a Family.
type Subset uint64

func (s Subset) Has(i int) bool {
	return s&(1<<i) != 0
}

func (s Subset) Len() int {
	return bits.OnesCount64(uint64(s))
}

func (s Subset) with(i int) Subset {
	return s | 1<<i
}

// Names lists the members of s in dataset order.
func (s Subset) Names(f *Family) []string {
	names := make([]string, 0, s.Len())
	for i, p := range f.people {
		if s.Has(i) {
			names = append(names, p.Name)
		}
	}
	return names
}

// Scenario is one complete assignment of the hidden variables. People in
// neither OneGene nor TwoGenes carry no copies of the gene.
type Scenario struct {
	OneGene   Subset
	TwoGenes  Subset
	HaveTrait Subset
}

// Genes returns the copy count the scenario assigns to person i.
func (s Scenario) Genes(i int) int {
	switch {
	case s.OneGene.Has(i):
		return 1
	case s.TwoGenes.Has(i):
		return 2
	default:
		return 0
	}
}

func (s Scenario) HasTrait(i int) bool {
	return s.HaveTrait.Has(i)
}

// Scenario builds a scenario from names.
func (f *Family) Scenario(oneGene, twoGenes, haveTrait []string) (Scenario, error) {
	one, err := f.Subset(oneGene...)
	if err != nil {
		return Scenario{}, err
	}
	two, err := f.Subset(twoGenes...)
	if err != nil {
		return Scenario{}, err
	}
	if overlap := one & two; overlap != 0 {
		return Scenario{}, fmt.Errorf("%v: %w", overlap.Names(f), ErrOverlappingGenes)
	}
	trait, err := f.Subset(haveTrait...)
	if err != nil {
		return Scenario{}, err
	}
	return Scenario{OneGene: one, TwoGenes: two, HaveTrait: trait}, nil
}

// Consistent reports whether the trait subset agrees with every known trait.
func (f *Family) Consistent(haveTrait Subset) bool {
	return (haveTrait^f.present)&f.known == 0
}

// TraitSubsets yields every subset of people having the trait that agrees
// with the evidence.
func (f *Family) TraitSubsets() iter.Seq[Subset] {
	return func(yield func(Subset) bool) {
		for s := range subsets(f.everyone()) {
			if f.Consistent(s) && !yield(s) {
				return
			}
		}
	}
}

// GeneSplits yields every way to pick people with one copy and, among the
// rest, people with two copies.
func (f *Family) GeneSplits() iter.Seq2[Subset, Subset] {
	everyone := f.everyone()
	return func(yield func(one, two Subset) bool) {
		for one := range subsets(everyone) {
			for two := range subsets(everyone &^ one) {
				if !yield(one, two) {
					return
				}
			}
		}
	}
}

// Scenarios yields every evidence-consistent scenario.
func (f *Family) Scenarios() iter.Seq[Scenario] {
	return func(yield func(Scenario) bool) {
		for trait := range f.TraitSubsets() {
			for one, two := range f.GeneSplits() {
				if !yield(Scenario{OneGene: one, TwoGenes: two, HaveTrait: trait}) {
					return
				}
			}
		}
	}
}

// subsets yields every submask of set, including the empty set and set itself.
func subsets(set Subset) iter.Seq[Subset] {
	return func(yield func(Subset) bool) {
		s := set
		for {
			if !yield(s) {
				return
			}
			if s == 0 {
				return
			}
			s = (s - 1) & set
		}
	}
}
