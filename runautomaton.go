package nfa

// RunAutomaton is a deterministic transition table produced by Determinize.
// Each of its states stands for one active set the simulator can reach, so
// running it gives the same verdict as Simulator.Accepts with the policy it
// was built for, without allocating per input symbol.
type RunAutomaton struct {
	policy     EpsilonPolicy
	alphabet   []Label
	labelIndex map[Label]int

	// transitions[state*len(alphabet)+i] is the successor of state on
	// alphabet[i], or -1 for the dead (empty) set.
	transitions []int
	accept      []bool
	sets        [][]int
}

func (r *RunAutomaton) Policy() EpsilonPolicy {
	return r.policy
}

// NumStates How many DFA states were built. The dead state is not counted.
func (r *RunAutomaton) NumStates() int {
	return len(r.accept)
}

func (r *RunAutomaton) IsAccept(state int) bool {
	return state >= 0 && state < len(r.accept) && r.accept[state]
}

// States Returns the NFA states the given DFA state stands for.
func (r *RunAutomaton) States(state int) []int {
	if state < 0 || state >= len(r.sets) {
		return nil
	}
	return r.sets[state]
}

// Step Returns the successor of state on label, or -1 if the run is dead.
func (r *RunAutomaton) Step(state int, label Label) int {
	if state < 0 || state >= len(r.accept) {
		return -1
	}
	i, ok := r.labelIndex[label]
	if !ok {
		return -1
	}
	return r.transitions[state*len(r.alphabet)+i]
}

// Run Returns true if the given string is accepted by this automaton
func (r *RunAutomaton) Run(s string) bool {
	p := 0
	for _, c := range s {
		p = r.Step(p, Label(c))
		if p == -1 {
			return false
		}
	}
	return r.accept[p]
}

func (r *RunAutomaton) RunLabels(labels []Label) bool {
	p := 0
	for _, label := range labels {
		p = r.Step(p, label)
		if p == -1 {
			return false
		}
	}
	return r.accept[p]
}
