package nfa

// ReachableStates Returns the states that appear in the active set after some
// input under policy. Both the epsilon step and the symbol step distribute
// over set union, so it is enough to walk single states.
func ReachableStates(a *Automaton, policy EpsilonPolicy) *StateSet {
	live := a.newStateSet()
	workList := make([]int, 0)

	push := func(i int) {
		if live.addIndex(i) {
			workList = append(workList, i)
		}
	}

	start := startSet(a, policy)
	for _, i := range start.indices() {
		push(i)
	}

	closed := a.newStateSet()
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]

		sources := []int{s}
		if policy == SinglePass {
			a.forEachDest(s, Epsilon, func(dest int) {
				sources = append(sources, dest)
			})
		}

		for _, source := range sources {
			a.forEachTransition(source, func(dest int, label Label) {
				if label == Epsilon {
					return
				}
				if policy == SinglePass {
					push(dest)
					return
				}
				closed.Clear()
				closed.addIndex(dest)
				closeEpsilon(a, closed)
				for _, i := range closed.indices() {
					push(i)
				}
			})
		}
	}

	return live
}

// IsEmpty Returns true if a accepts no input at all under policy.
func IsEmpty(a *Automaton, policy EpsilonPolicy) bool {
	if a.isAccept.None() {
		// Common case: no accept states
		return true
	}
	if startSet(a, policy).Intersects(a.isAccept) {
		// Accepts the empty string
		return false
	}
	return !ReachableStates(a, policy).Intersects(a.isAccept)
}

// DeadStates Returns the referenced states that can never become active under
// policy, in ascending order.
func DeadStates(a *Automaton, policy EpsilonPolicy) []int {
	live := ReachableStates(a, policy)
	dead := make([]int, 0)
	for i, state := range a.ids {
		if !live.bits.Test(uint(i)) {
			dead = append(dead, state)
		}
	}
	return dead
}
