package nfa

import "fmt"

// DefaultDeterminizeWorkLimit bounds the number of DFA states Determinize
// creates when the caller passes a non-positive limit.
const DefaultDeterminizeWorkLimit = 10000

// Determinize Builds the RunAutomaton for a under policy using subset
// construction over the automaton's alphabet. Worst case complexity:
// exponential in number of states.
//
// workLimit is the maximum number of DFA states to create; once it would be
// exceeded Determinize gives up with ErrTooComplexToDeterminize.
func Determinize(a *Automaton, policy EpsilonPolicy, workLimit int) (*RunAutomaton, error) {
	if workLimit <= 0 {
		workLimit = DefaultDeterminizeWorkLimit
	}

	alphabet := a.Alphabet()
	numLabels := len(alphabet)
	r := &RunAutomaton{
		policy:     policy,
		alphabet:   alphabet,
		labelIndex: make(map[Label]int, numLabels),
	}
	for i, label := range alphabet {
		r.labelIndex[label] = i
	}

	type pending struct {
		state int
		set   *StateSet
	}

	newState := NewHashMap[int](WithCapacity(16))
	worklist := make([]pending, 0)

	addState := func(set *StateSet) (int, error) {
		state := newState.Size()
		if state >= workLimit {
			return -1, fmt.Errorf("%w: more than %d states", ErrTooComplexToDeterminize, workLimit)
		}
		frozen := set.Freeze(state)
		newState.Set(frozen, state)
		worklist = append(worklist, pending{state: state, set: set.Clone()})
		r.accept = append(r.accept, set.Intersects(a.isAccept))
		r.sets = append(r.sets, frozen.GetArray())
		for i := 0; i < numLabels; i++ {
			r.transitions = append(r.transitions, -1)
		}
		return state, nil
	}

	if _, err := addState(startSet(a, policy)); err != nil {
		return nil, err
	}

	next := a.newStateSet()
	for len(worklist) > 0 {
		s := worklist[0]
		worklist = worklist[1:]

		// The epsilon extension does not depend on the label, so it is
		// applied once per DFA state.
		from := s.set
		if policy == SinglePass {
			extendEpsilon(a, from)
		}

		for i, label := range alphabet {
			move(a, from, label, next)
			if policy == Transitive {
				closeEpsilon(a, next)
			}
			if next.IsEmpty() {
				continue
			}

			dest, ok := newState.Get(next)
			if !ok {
				var err error
				if dest, err = addState(next); err != nil {
					return nil, err
				}
			}
			r.transitions[s.state*numLabels+i] = dest
		}
	}

	return r, nil
}
