package ordering

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind indicates an unrecognized order name.
var ErrUnknownKind = errors.New("ordering: unknown order kind")

// Kind names an ordering strategy.
type Kind string

const (
	// KindNatural is ascending vertex id.
	KindNatural Kind = "natural"
	// KindDegree is descending degree.
	KindDegree Kind = "degree"
	// KindDegeneracy is the reverse peel sequence: highest core first.
	KindDegeneracy Kind = "degeneracy"
)

// ParseKind maps a case-insensitive name to its Kind.
func ParseKind(name string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(name))); k {
	case KindNatural, KindDegree, KindDegeneracy:
		return k, nil
	default:
		return "", fmt.Errorf("ordering: %q: %w", name, ErrUnknownKind)
	}
}

// Decomposition is the result of core peeling.
type Decomposition struct {
	// Peel lists vertices in removal order: non-decreasing core number.
	Peel []int

	// Order is Peel reversed: the densest core comes first.
	Order []int

	// Core[v] is the core number of v.
	Core []int

	// Degeneracy is max(Core), 0 for an empty graph.
	Degeneracy int
}
