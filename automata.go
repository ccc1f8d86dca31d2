package nfa

type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language.
func (*Automata) MakeEmpty() *Automaton {
	return NewBuilder().Finish()
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (*Automata) MakeEmptyString() *Automaton {
	b := NewBuilder()
	_ = b.SetAccept(0, true)
	return b.Finish()
}

// MakeChar
// Returns a new (deterministic) automaton that accepts a single rune.
func (*Automata) MakeChar(c rune) *Automaton {
	b := NewBuilder()
	s1, _ := b.CreateState()
	s2, _ := b.CreateState()
	_ = b.AddTransition(s1, Label(c), s2)
	_ = b.SetAccept(s2, true)
	return b.Finish()
}

// MakeString
// Returns a new (deterministic) automaton that accepts exactly s.
func (*Automata) MakeString(s string) *Automaton {
	b := NewBuilder()
	lastState, _ := b.CreateState()
	for _, c := range s {
		state, _ := b.CreateState()
		_ = b.AddTransition(lastState, Label(c), state)
		lastState = state
	}
	_ = b.SetAccept(lastState, true)
	return b.Finish()
}
