package nfa

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Format Writes a in the description format read by Load: transitions grouped
// by source state in insertion order, then the accept state line.
func Format(w io.Writer, a *Automaton) error {
	bw := bufio.NewWriter(w)
	t := NewTransition()
	for _, s := range a.ids {
		count := a.InitTransition(s, t)
		for i := 0; i < count; i++ {
			a.GetNextTransition(t)
			symbol, err := formatLabel(t.Label)
			if err != nil {
				return err
			}
			fmt.Fprintf(bw, "%d=%s>%d\n", s, symbol, t.Dest)
		}
	}

	accept := a.AcceptStates()
	parts := make([]string, len(accept))
	for i, s := range accept {
		parts[i] = strconv.Itoa(s)
	}
	fmt.Fprintf(bw, "$%s\n", strings.Join(parts, ","))
	return bw.Flush()
}

func formatLabel(label Label) (string, error) {
	if label == Epsilon {
		return "", nil
	}
	if label < 0 || label > unicode.MaxRune || unicode.IsSpace(rune(label)) || !unicode.IsPrint(rune(label)) {
		return "", fmt.Errorf("label %s has no textual form", label)
	}
	return string(rune(label)), nil
}

// WriteDot Writes a Graphviz DOT rendering of a. Accept states are drawn as
// double circles and epsilon transitions are labelled ε.
func WriteDot(w io.Writer, a *Automaton) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("digraph NFA {\n")
	bw.WriteString("  rankdir=LR;\n")
	bw.WriteString("  node [shape=circle];\n")
	bw.WriteString("\n")

	// Invisible start node pointing to the initial state
	bw.WriteString("  start [shape=point];\n")
	bw.WriteString("  start -> \"0\";\n")
	bw.WriteString("\n")

	for _, s := range a.ids {
		if a.IsAccept(s) {
			fmt.Fprintf(bw, "  \"%d\" [shape=doublecircle];\n", s)
		} else {
			fmt.Fprintf(bw, "  \"%d\";\n", s)
		}
	}
	bw.WriteString("\n")

	t := NewTransition()
	for _, s := range a.ids {
		count := a.InitTransition(s, t)
		for i := 0; i < count; i++ {
			a.GetNextTransition(t)
			label := "ε"
			if t.Label != Epsilon {
				label = strings.Trim(strconv.QuoteRune(rune(t.Label)), "'")
			}
			fmt.Fprintf(bw, "  \"%d\" -> \"%d\" [label=%s];\n", s, t.Dest, strconv.Quote(label))
		}
	}

	bw.WriteString("}\n")
	return bw.Flush()
}
