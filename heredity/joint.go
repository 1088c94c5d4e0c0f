package heredity

// JointProbability returns the probability that every person has exactly the
// gene count and trait the scenario assigns them.
func (f *Family) JointProbability(p Params, s Scenario) float64 {
	probability := 1.0
	for i := range f.people {
		genes := s.Genes(i)
		probability *= f.geneProbability(p, s, i, genes)
		probability *= p.Trait[genes][traitIndex(s.HasTrait(i))]
	}
	return probability
}

// geneProbability is P(genes_i | parents' genes), or the prior for founders.
func (f *Family) geneProbability(p Params, s Scenario, i int, genes int) float64 {
	mother, father := f.mother[i], f.father[i]
	if mother < 0 {
		return p.GenePrior[genes]
	}

	fromMother := p.transmission(s.Genes(mother))
	fromFather := p.transmission(s.Genes(father))
	switch genes {
	case 0:
		return (1 - fromFather) * (1 - fromMother)
	case 1:
		return fromFather*(1-fromMother) + fromMother*(1-fromFather)
	default:
		return fromFather * fromMother
	}
}

func traitIndex(present bool) int {
	if present {
		return 1
	}
	return 0
}
