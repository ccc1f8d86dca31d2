package nfa

import (
	"fmt"
	"strings"
)

// EpsilonPolicy selects how epsilon transitions are followed during a run.
type EpsilonPolicy int

const (
	// SinglePass is the default. Before each input symbol is consumed, the
	// active set is extended once with the direct epsilon targets of its
	// states; targets that are themselves only reachable through a second
	// epsilon hop are picked up on the next symbol, if at all. No extension
	// happens before the verdict, so the empty input is accepted iff state 0
	// accepts.
	SinglePass EpsilonPolicy = iota

	// Transitive follows epsilon transitions to a fixed point: the start set
	// and the result of every consuming step are closed before use, and the
	// verdict tests the closed set.
	Transitive
)

func (p EpsilonPolicy) String() string {
	switch p {
	case SinglePass:
		return "single"
	case Transitive:
		return "transitive"
	default:
		return fmt.Sprintf("EpsilonPolicy(%d)", int(p))
	}
}

// ParseEpsilonPolicy accepts the names printed by String, case-insensitively.
func ParseEpsilonPolicy(s string) (EpsilonPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single", "single-pass", "singlepass":
		return SinglePass, nil
	case "transitive", "closure":
		return Transitive, nil
	default:
		return SinglePass, fmt.Errorf("unknown epsilon policy %q", s)
	}
}
