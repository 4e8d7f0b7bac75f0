package framework

// Population is an ordered, bounded container of individuals. Working
// populations are scratch sets; only populations maintained through the
// archive filter carry the pairwise non-dominance guarantee.
type Population struct {
	Members  []*Individual
	Capacity int
}

// NewPopulation creates an empty population with the given capacity bound.
func NewPopulation(capacity int) *Population {
	return &Population{
		Members:  make([]*Individual, 0, capacity),
		Capacity: capacity,
	}
}

// Size returns the current member count.
func (p *Population) Size() int {
	return len(p.Members)
}

// Append adds an individual if capacity allows and reports success.
func (p *Population) Append(x *Individual) bool {
	if len(p.Members) >= p.Capacity {
		return false
	}
	p.Members = append(p.Members, x)
	return true
}

// Reset empties the population, keeping its capacity.
func (p *Population) Reset() {
	p.Members = p.Members[:0]
}
