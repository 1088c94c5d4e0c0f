package heredity

import "errors"

// Dataset validation errors. Callers branch on them with errors.Is; the
// returned errors carry the offending person or row as context.
var (
	ErrEmptyFamily     = errors.New("heredity: family has no people")
	ErrTooManyPeople   = errors.New("heredity: too many people to enumerate")
	ErrEmptyName       = errors.New("heredity: person has no name")
	ErrDuplicatePerson = errors.New("heredity: duplicate person")
	ErrPartialParents  = errors.New("heredity: mother and father must both be known or both be unknown")
	ErrUnknownParent   = errors.New("heredity: parent is not in the family")
	ErrParentCycle     = errors.New("heredity: person is their own ancestor")
	ErrUnknownPerson   = errors.New("heredity: unknown person")
	ErrInvalidTrait    = errors.New("heredity: invalid trait value")
	ErrMissingColumn   = errors.New("heredity: missing column")
)

// Probability table errors.
var (
	ErrProbabilityRange = errors.New("heredity: probability out of range")
	ErrNotNormalized    = errors.New("heredity: probabilities do not sum to 1")
	ErrOverlappingGenes = errors.New("heredity: person cannot have both one and two gene copies")
)

// ErrImpossibleEvidence means every scenario agreeing with the known traits
// has probability zero under the tables in use.
var ErrImpossibleEvidence = errors.New("heredity: evidence has zero probability under the parameters")
