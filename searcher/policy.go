package searcher

import "math"

// uct scores the children of one parent: q/n + sqrt(c^2*ln(N)/n), where N is
// the parent's visit count.
type uct struct {
	numerator float64
}

func newUCT(cSquared float64, parentVisits float64) uct {
	if parentVisits <= 0 {
		panic("cannot score children of an unvisited node")
	}
	return uct{numerator: cSquared * math.Log(parentVisits)}
}

func (u uct) score(rewards float64, visits float64) float64 {
	if visits <= 0 {
		panic("cannot score an unvisited child")
	}
	return rewards/visits + math.Sqrt(u.numerator/visits)
}
