package nfa

import (
	"fmt"
	"slices"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// Builder Records transitions in any state order and packs them into an
// Automaton on Finish. Unlike the packed Automaton, states do not have to be
// added one at a time and may be arbitrarily sparse: only states that are
// referenced take up room. A capacity can be declared with WithMaxStates.
type Builder struct {
	maxStates int
	numStates int

	// Holds source, sequence, dest, label for each transition; sequence keeps
	// insertion order stable through the sort in Finish.
	transitions []int
	referenced  map[int]struct{}
	isAccept    map[int]struct{}
	finished    bool
}

type builderOptions struct {
	maxStates int // 0 means unbounded
}

type BuilderOption func(*builderOptions)

// WithMaxStates declares the capacity of the transition table. Any reference
// to a state >= n fails with ErrStateOutOfRange instead of growing the table.
// n <= 0 leaves the table unbounded.
func WithMaxStates(n int) BuilderOption {
	return func(o *builderOptions) {
		o.maxStates = n
	}
}

func NewBuilder(options ...BuilderOption) *Builder {
	opts := &builderOptions{}
	for _, fn := range options {
		fn(opts)
	}
	if opts.maxStates < 0 {
		opts.maxStates = 0
	}

	return &Builder{
		maxStates:   opts.maxStates,
		transitions: make([]int, 0, 4*4),
		referenced:  make(map[int]struct{}),
		isAccept:    make(map[int]struct{}),
	}
}

// MaxStates Returns the declared capacity, or 0 if unbounded.
func (b *Builder) MaxStates() int {
	return b.maxStates
}

// NumStates One more than the highest state referenced so far.
func (b *Builder) NumStates() int {
	return b.numStates
}

func (b *Builder) checkState(state int) error {
	if b.finished {
		return ErrBuilderFinished
	}
	if state < 0 {
		return fmt.Errorf("%w: negative state %d", ErrStateOutOfRange, state)
	}
	if b.maxStates > 0 && state >= b.maxStates {
		return fmt.Errorf("%w: state %d exceeds capacity %d", ErrStateOutOfRange, state, b.maxStates)
	}
	return nil
}

func (b *Builder) touch(state int) {
	if state >= b.numStates {
		b.numStates = state + 1
	}
	b.referenced[state] = struct{}{}
}

// CreateState Create a new state after the highest one referenced so far.
func (b *Builder) CreateState() (int, error) {
	state := b.numStates
	if err := b.checkState(state); err != nil {
		return -1, err
	}
	b.touch(state)
	return state, nil
}

// SetAccept Set or clear this state as an accept state.
func (b *Builder) SetAccept(state int, accept bool) error {
	if err := b.checkState(state); err != nil {
		return err
	}
	b.touch(state)
	if accept {
		b.isAccept[state] = struct{}{}
	} else {
		delete(b.isAccept, state)
	}
	return nil
}

func (b *Builder) IsAccept(state int) bool {
	_, ok := b.isAccept[state]
	return ok
}

// AddTransition Add a new transition with the specified source, label, dest.
// Duplicates are kept; they do not change what the automaton accepts.
func (b *Builder) AddTransition(source int, label Label, dest int) error {
	if err := b.checkState(source); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := b.checkState(dest); err != nil {
		return fmt.Errorf("dest: %w", err)
	}
	b.touch(source)
	b.touch(dest)

	seq := len(b.transitions) / 4
	b.transitions = append(b.transitions, source, seq, dest, int(label))
	return nil
}

// AddEpsilon Add an epsilon transition between source and dest.
func (b *Builder) AddEpsilon(source, dest int) error {
	return b.AddTransition(source, Epsilon, dest)
}

// Finish Packs the recorded transitions and returns the read-only Automaton.
// The builder cannot be used afterwards.
func (b *Builder) Finish() *Automaton {
	b.finished = true

	// State 0 always exists as the initial state.
	b.touch(0)
	ids := make([]int, 0, len(b.referenced))
	for state := range b.referenced {
		ids = append(ids, state)
	}
	slices.Sort(ids)
	index := make(map[int]int, len(ids))
	for i, state := range ids {
		index[state] = i
	}

	numTransitions := len(b.transitions) / 4
	b.sort(0, numTransitions)

	a := &Automaton{
		ids:           ids,
		numStates:     b.numStates,
		states:        grow(make([]int, 0, 2*len(ids)), 2*len(ids)),
		transitions:   make([]int, 0, 2*numTransitions),
		isAccept:      bitset.New(uint(len(ids))),
		deterministic: true,
	}
	for state := range b.isAccept {
		a.isAccept.Set(uint(index[state]))
	}

	alphabet := make(map[Label]struct{})
	seen := make(map[Label]struct{})
	cur := -1
	for i := 0; i < numTransitions; i++ {
		source := index[b.transitions[4*i]]
		dest := index[b.transitions[4*i+2]]
		label := Label(b.transitions[4*i+3])

		if source != cur {
			cur = source
			a.states[2*source] = len(a.transitions)
			clear(seen)
		}
		a.transitions = append(a.transitions, dest, int(label))
		a.states[2*source+1]++

		if label == Epsilon {
			a.hasEpsilon = true
			a.deterministic = false
			continue
		}
		alphabet[label] = struct{}{}
		if _, ok := seen[label]; ok {
			a.deterministic = false
		}
		seen[label] = struct{}{}
	}

	a.alphabet = make([]Label, 0, len(alphabet))
	for label := range alphabet {
		a.alphabet = append(a.alphabet, label)
	}
	sort.Slice(a.alphabet, func(i, j int) bool { return a.alphabet[i] < a.alphabet[j] })

	b.transitions = nil
	b.referenced = nil
	return a
}

var _ sort.Interface = &builderSorter{}

// Sorts recorded transitions by source, then insertion sequence.
type builderSorter struct {
	values []int
	size   int
}

func (s *builderSorter) Len() int {
	return s.size
}

func (s *builderSorter) Less(i, j int) bool {
	i *= 4
	j *= 4

	if s.values[i] != s.values[j] {
		return s.values[i] < s.values[j]
	}
	return s.values[i+1] < s.values[j+1]
}

func (s *builderSorter) Swap(i, j int) {
	i *= 4
	j *= 4

	s.values[i], s.values[j] = s.values[j], s.values[i]
	s.values[i+1], s.values[j+1] = s.values[j+1], s.values[i+1]
	s.values[i+2], s.values[j+2] = s.values[j+2], s.values[i+2]
	s.values[i+3], s.values[j+3] = s.values[j+3], s.values[i+3]
}

func (b *Builder) sort(from, to int) {
	sort.Sort(&builderSorter{
		values: b.transitions[4*from : 4*to],
		size:   to - from,
	})
}
