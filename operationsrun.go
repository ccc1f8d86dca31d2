package nfa

// Run Returns true if a accepts s. Deterministic automata are walked one state
// at a time; anything else goes through the SinglePass simulator, which gives
// the same answer for deterministic input.
func Run(a *Automaton, s string) bool {
	if !a.IsDeterministic() {
		return Accepts(a, s)
	}
	state := 0
	for _, v := range s {
		nextState := a.Step(state, Label(v))
		if nextState == -1 {
			return false
		}
		state = nextState
	}
	return a.IsAccept(state)
}
