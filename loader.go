package nfa

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// A transition line is <source>=<symbol>><dest>; omitting the symbol makes it
// an epsilon transition.
var transitionPattern = regexp.MustCompile(`^(\d+)=(\S)?>(\d+)$`)

// MaxLineLength is the longest description line Load accepts, in bytes.
const MaxLineLength = 1 << 20

// Load Reads an automaton description:
//
//	# comment
//	0=a>1
//	1=>2
//	$0,2
//
// Blank lines and lines starting with '#' are skipped. The first line starting
// with '$' lists the accept states and ends the description; anything after it
// is ignored. Transitions may reference states in any order. The load either
// succeeds completely or returns a *ParseError for the first offending line.
func Load(r io.Reader, options ...BuilderOption) (*Automaton, error) {
	b := NewBuilder(options...)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)

		switch {
		case line == "", line[0] == '#':
			continue
		case line[0] == '$':
			if err := parseAccepting(b, line[1:]); err != nil {
				return nil, &ParseError{Line: lineNo, Text: raw, Err: err}
			}
			return b.Finish(), nil
		}

		if err := parseTransition(b, line); err != nil {
			return nil, &ParseError{Line: lineNo, Text: raw, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			err = fmt.Errorf("%w: more than %d bytes", ErrLineTooLong, MaxLineLength)
		}
		// The scanner stops on the line it could not read.
		return nil, &ParseError{Line: lineNo + 1, Err: err}
	}

	return b.Finish(), nil
}

// LoadFile Loads the description stored at path.
func LoadFile(path string, options ...BuilderOption) (*Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := Load(f, options...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return a, nil
}

// ParseString Loads a description held in memory.
func ParseString(s string, options ...BuilderOption) (*Automaton, error) {
	return Load(strings.NewReader(s), options...)
}

func parseTransition(b *Builder, line string) error {
	m := transitionPattern.FindStringSubmatch(line)
	if m == nil {
		return ErrMalformedLine
	}

	source, err := strconv.Atoi(m[1])
	if err != nil {
		return fmt.Errorf("%w: source %q: %v", ErrMalformedLine, m[1], err)
	}
	dest, err := strconv.Atoi(m[3])
	if err != nil {
		return fmt.Errorf("%w: dest %q: %v", ErrMalformedLine, m[3], err)
	}

	label := Epsilon
	if m[2] != "" {
		label = Label([]rune(m[2])[0])
	}
	return b.AddTransition(source, label, dest)
}

func parseAccepting(b *Builder, list string) error {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	for _, field := range fields {
		state, err := strconv.Atoi(field)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrMalformedAccepting, field)
		}
		if err := b.SetAccept(state, true); err != nil {
			return err
		}
	}
	return nil
}
