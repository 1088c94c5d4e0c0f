package heredity

import "fmt"

// MaxPeople bounds the family size. Inference visits 2^n * 3^n scenarios.
const MaxPeople = 20

// Trait is what the dataset says about a person's trait. Unknown is a value of
// its own and never stands in for either outcome.
type Trait int8

const (
	TraitUnknown Trait = iota
	TraitAbsent
	TraitPresent
)

// Known reports whether the dataset records the trait.
func (t Trait) Known() bool {
	return t != TraitUnknown
}

// Present reports the known value. It is only meaningful when Known is true.
func (t Trait) Present() bool {
	return t == TraitPresent
}

func (t Trait) String() string {
	switch t {
	case TraitAbsent:
		return "absent"
	case TraitPresent:
		return "present"
	default:
		return "unknown"
	}
}

type Person struct {
	Name   string
	Mother string // Empty when unknown
	Father string // Empty when unknown
	Trait  Trait
}

func (p Person) hasParents() bool {
	return p.Mother != "" || p.Father != ""
}

// Family is a validated dataset. Persons keep the order they were given in.
type Family struct {
	people []Person
	index  map[string]int
	mother []int // Index of the mother, -1 for founders
	father []int // Index of the father, -1 for founders

	known   Subset // People whose trait is known
	present Subset // People known to have the trait
}

// NewFamily validates people and indexes them for enumeration.
func NewFamily(people []Person) (*Family, error) {
	if len(people) == 0 {
		return nil, ErrEmptyFamily
	}
	if len(people) > MaxPeople {
		return nil, fmt.Errorf("%d people, at most %d: %w", len(people), MaxPeople, ErrTooManyPeople)
	}

	f := &Family{
		people: make([]Person, len(people)),
		index:  make(map[string]int, len(people)),
		mother: make([]int, len(people)),
		father: make([]int, len(people)),
	}
	copy(f.people, people)

	for i, p := range f.people {
		if p.Name == "" {
			return nil, fmt.Errorf("person %d: %w", i, ErrEmptyName)
		}
		if _, ok := f.index[p.Name]; ok {
			return nil, fmt.Errorf("%q: %w", p.Name, ErrDuplicatePerson)
		}
		f.index[p.Name] = i
	}

	for i, p := range f.people {
		f.mother[i], f.father[i] = -1, -1
		if p.Trait.Known() {
			f.known = f.known.with(i)
			if p.Trait.Present() {
				f.present = f.present.with(i)
			}
		}
		if !p.hasParents() {
			continue
		}
		if p.Mother == "" || p.Father == "" {
			return nil, fmt.Errorf("%q: %w", p.Name, ErrPartialParents)
		}
		mother, ok := f.index[p.Mother]
		if !ok {
			return nil, fmt.Errorf("mother %q of %q: %w", p.Mother, p.Name, ErrUnknownParent)
		}
		father, ok := f.index[p.Father]
		if !ok {
			return nil, fmt.Errorf("father %q of %q: %w", p.Father, p.Name, ErrUnknownParent)
		}
		f.mother[i], f.father[i] = mother, father
	}

	if err := f.checkAcyclic(); err != nil {
		return nil, err
	}
	return f, nil
}

// checkAcyclic walks the parent graph depth first and fails on a back edge.
func (f *Family) checkAcyclic() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(f.people))

	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case visiting:
			return fmt.Errorf("%q: %w", f.people[i].Name, ErrParentCycle)
		case done:
			return nil
		}
		state[i] = visiting
		for _, parent := range []int{f.mother[i], f.father[i]} {
			if parent < 0 {
				continue
			}
			if err := visit(parent); err != nil {
				return err
			}
		}
		state[i] = done
		return nil
	}

	for i := range f.people {
		if err := visit(i); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of people.
func (f *Family) Len() int {
	return len(f.people)
}

// People returns a copy of the persons in dataset order.
func (f *Family) People() []Person {
	people := make([]Person, len(f.people))
	copy(people, f.people)
	return people
}

// Names returns the people's names in dataset order.
func (f *Family) Names() []string {
	names := make([]string, len(f.people))
	for i, p := range f.people {
		names[i] = p.Name
	}
	return names
}

// Person looks up a person by name.
func (f *Family) Person(name string) (Person, bool) {
	i, ok := f.index[name]
	if !ok {
		return Person{}, false
	}
	return f.people[i], true
}

// Subset builds the subset holding the named people.
func (f *Family) Subset(names ...string) (Subset, error) {
	var s Subset
	for _, name := range names {
		i, ok := f.index[name]
		if !ok {
			return 0, fmt.Errorf("%q: %w", name, ErrUnknownPerson)
		}
		s = s.with(i)
	}
	return s, nil
}

func (f *Family) everyone() Subset {
	return Subset(1)<<len(f.people) - 1
}
