package nfa

import (
	"fmt"
	"strconv"
)

// Label is the token a transition consumes. Input runes map to Label(r); the
// type is kept opaque so multi-rune tokens can be mapped onto it later.
type Label int

// Epsilon marks a transition that consumes no input. No rune maps to it.
const Epsilon = Label(-1)

// IsEpsilon Returns true if this label is the epsilon marker.
func (l Label) IsEpsilon() bool {
	return l == Epsilon
}

func (l Label) String() string {
	if l == Epsilon {
		return "ε"
	}
	if l >= 0 && l <= 0x10FFFF {
		return strconv.QuoteRune(rune(l))
	}
	return "#" + strconv.Itoa(int(l))
}

// LabelsOf converts a string into the label sequence the simulator consumes.
func LabelsOf(s string) []Label {
	labels := make([]Label, 0, len(s))
	for _, r := range s {
		labels = append(labels, Label(r))
	}
	return labels
}

// Transition Holds one edge leaving Source. It doubles as the cursor used by
// InitTransition/GetNextTransition, in which case TransitionUpto is the index
// of the next edge to read.
type Transition struct {
	Source         int
	Dest           int
	Label          Label
	TransitionUpto int
}

func NewTransition() *Transition {
	return &Transition{Source: -1, Dest: -1, TransitionUpto: -1}
}

func (t Transition) String() string {
	return fmt.Sprintf("%d -%s-> %d", t.Source, t.Label, t.Dest)
}
