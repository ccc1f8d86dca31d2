package nfa

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedLine           = errors.New("malformed transition line")
	ErrMalformedAccepting      = errors.New("malformed accepting state list")
	ErrLineTooLong             = errors.New("description line too long")
	ErrStateOutOfRange         = errors.New("state index out of range")
	ErrTooComplexToDeterminize = errors.New("automaton is too complex to determinize")
	ErrBuilderFinished         = errors.New("builder already finished")
)

// ParseError reports the description line a load failed on. Line is 1-based.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
