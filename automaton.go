package nfa

import (
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Automaton Represents a nondeterministic automaton with epsilon transitions.
// States are non-negative integers and state 0 is always the initial state.
// Instances are produced by Builder.Finish and are read-only afterwards, so a
// single Automaton may be shared by any number of concurrent simulations.
//
// Only referenced states are stored: ids lists them in ascending order and
// everything else is indexed by position in ids, so a description using state
// 4000000000 costs as much as one using state 2. Transitions are packed: for
// each referenced state, states holds the offset of its first transition in
// transitions followed by how many transitions leave it, and transitions holds
// dest index, label for each transition in insertion order.
type Automaton struct {
	ids         []int
	numStates   int
	states      []int
	transitions []int
	isAccept    *bitset.BitSet

	alphabet []Label

	// True if no state has an epsilon transition or two transitions leaving
	// with the same label.
	deterministic bool
	hasEpsilon    bool
}

// NumStates How many states this automaton spans: one more than the highest
// state referenced. States in between that nothing references have no
// transitions and cost nothing.
func (a *Automaton) NumStates() int {
	return a.numStates
}

// States Returns the referenced states in ascending order. State 0 is always
// included.
func (a *Automaton) States() []int {
	return slices.Clone(a.ids)
}

// NumTransitions How many transitions this automaton has.
func (a *Automaton) NumTransitions() int {
	return len(a.transitions) / 2
}

// NumTransitionsFrom How many transitions leave this state. Unknown states
// have none.
func (a *Automaton) NumTransitionsFrom(state int) int {
	i, ok := a.index(state)
	if !ok {
		return 0
	}
	return a.states[2*i+1]
}

// index Returns the position of state in ids.
func (a *Automaton) index(state int) (int, bool) {
	if state < 0 || state >= a.numStates {
		return -1, false
	}
	if len(a.ids) == a.numStates {
		// Dense: every state up to the highest is referenced.
		return state, true
	}
	return slices.BinarySearch(a.ids, state)
}

func (a *Automaton) newStateSet() *StateSet {
	return newMappedStateSet(a.ids)
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	i, ok := a.index(state)
	return ok && a.isAccept.Test(uint(i))
}

// AcceptStates Returns the accept states in ascending order.
func (a *Automaton) AcceptStates() []int {
	accept := make([]int, 0, a.isAccept.Count())
	for i, ok := a.isAccept.NextSet(0); ok; i, ok = a.isAccept.NextSet(i + 1) {
		accept = append(accept, a.ids[i])
	}
	return accept
}

// IsDeterministic Returns true if this automaton is deterministic (no epsilon
// transitions and, for every state, at most one transition per label).
func (a *Automaton) IsDeterministic() bool {
	return a.deterministic
}

// HasEpsilon Returns true if at least one transition is an epsilon transition.
func (a *Automaton) HasEpsilon() bool {
	return a.hasEpsilon
}

// Alphabet Returns the sorted set of non-epsilon labels used by any transition.
func (a *Automaton) Alphabet() []Label {
	return slices.Clone(a.alphabet)
}

// InitTransition Initialize the provided Transition to iterate through all
// transitions leaving the specified state. You must call GetNextTransition to
// get each transition. Returns the number of transitions leaving this state.
func (a *Automaton) InitTransition(state int, t *Transition) int {
	t.Source = state
	i, ok := a.index(state)
	if !ok {
		t.TransitionUpto = len(a.transitions)
		return 0
	}
	t.TransitionUpto = a.states[2*i]
	return a.states[2*i+1]
}

// GetNextTransition Iterate to the next transition after the provided one
func (a *Automaton) GetNextTransition(t *Transition) {
	t.Dest = a.ids[a.transitions[t.TransitionUpto]]
	t.TransitionUpto++
	t.Label = Label(a.transitions[t.TransitionUpto])
	t.TransitionUpto++
}

// TransitionsFrom Returns a copy of the transitions leaving state, in the
// order they were added. A state beyond NumStates has no transitions.
func (a *Automaton) TransitionsFrom(state int) []Transition {
	t := NewTransition()
	count := a.InitTransition(state, t)
	result := make([]Transition, 0, count)
	for i := 0; i < count; i++ {
		a.GetNextTransition(t)
		result = append(result, Transition{Source: state, Dest: t.Dest, Label: t.Label})
	}
	return result
}

// forEachDest calls fn with the index of the destination of every transition
// leaving the state at index i whose label is label.
func (a *Automaton) forEachDest(i int, label Label, fn func(dest int)) {
	upto := a.states[2*i]
	limit := upto + 2*a.states[2*i+1]
	for ; upto < limit; upto += 2 {
		if Label(a.transitions[upto+1]) == label {
			fn(a.transitions[upto])
		}
	}
}

// forEachTransition is forEachDest for every label.
func (a *Automaton) forEachTransition(i int, fn func(dest int, label Label)) {
	upto := a.states[2*i]
	limit := upto + 2*a.states[2*i+1]
	for ; upto < limit; upto += 2 {
		fn(a.transitions[upto], Label(a.transitions[upto+1]))
	}
}

func (a *Automaton) String() string {
	var sb strings.Builder
	_ = Format(&sb, a)
	return sb.String()
}

// Step Performs lookup in transitions, assuming determinism. Returns the
// destination of the first transition leaving state with this label, or -1 if
// there is none.
func (a *Automaton) Step(state int, label Label) int {
	dest := -1
	i, ok := a.index(state)
	if !ok {
		return dest
	}
	upto := a.states[2*i]
	limit := upto + 2*a.states[2*i+1]
	for ; upto < limit; upto += 2 {
		if Label(a.transitions[upto+1]) == label {
			dest = a.ids[a.transitions[upto]]
			break
		}
	}
	return dest
}
