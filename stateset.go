package nfa

import (
	"slices"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

var _ IntSet = &StateSet{}

// StateSet is the set of states a simulation is active in. Adding a state
// twice has no effect: the simulation tracks reachability, not path counts.
//
// Sets made by an Automaton hold one bit per referenced state, so a sparse
// automaton with a huge highest index still gets small sets. ids maps a bit
// to the state it stands for and is nil when every bit is its own state.
type StateSet struct {
	bits        *bitset.BitSet
	ids         []int
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet(numStates int) *StateSet {
	return &StateSet{
		bits: bitset.New(uint(max(numStates, 1))),
	}
}

func newMappedStateSet(ids []int) *StateSet {
	return &StateSet{
		bits: bitset.New(uint(max(len(ids), 1))),
		ids:  ids,
	}
}

func (s *StateSet) id(i uint) int {
	if s.ids == nil {
		return int(i)
	}
	return s.ids[i]
}

// index Returns the bit standing for state.
func (s *StateSet) index(state int) (uint, bool) {
	if state < 0 {
		return 0, false
	}
	if s.ids == nil {
		return uint(state), true
	}
	i, ok := slices.BinarySearch(s.ids, state)
	return uint(i), ok
}

func (s *StateSet) sameIDs(other *StateSet) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	return len(s.ids) == 0 || &s.ids[0] == &other.ids[0]
}

func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = uint64(s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		s.hashCode += uint64(mix(s.id(i)))
	}
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	switch o := other.(type) {
	case *FrozenIntSet:
		if o == nil {
			return false
		}
	case *StateSet:
		if o == nil {
			return false
		}
	}
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	return s.Hash() == is.Hash() && equalInts(s.GetArray(), is.GetArray())
}

// GetArray Returns the states in ascending order.
func (s *StateSet) GetArray() []int {
	values := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		values = append(values, s.id(i))
	}
	return values
}

// indices Returns the set bits in ascending order.
func (s *StateSet) indices() []int {
	values := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		values = append(values, int(i))
	}
	return values
}

func (s *StateSet) Size() int {
	return int(s.bits.Count())
}

func (s *StateSet) IsEmpty() bool {
	return s.bits.None()
}

func (s *StateSet) keyChanged() {
	s.hashUpdated = false
	s.hashCode = 0
}

// Add Adds state and returns true if it was not already present. A set made
// by an Automaton cannot hold a state the automaton never references.
func (s *StateSet) Add(state int) bool {
	i, ok := s.index(state)
	if !ok {
		return false
	}
	return s.addIndex(int(i))
}

func (s *StateSet) addIndex(i int) bool {
	if s.bits.Test(uint(i)) {
		return false
	}
	s.bits.Set(uint(i))
	s.keyChanged()
	return true
}

func (s *StateSet) Contains(state int) bool {
	i, ok := s.index(state)
	return ok && s.bits.Test(i)
}

// Union Adds every state of other to s.
func (s *StateSet) Union(other *StateSet) {
	if s.sameIDs(other) {
		s.bits.InPlaceUnion(other.bits)
		s.keyChanged()
		return
	}
	for _, state := range other.GetArray() {
		s.Add(state)
	}
}

// Intersects Returns true if s shares at least one bit with bits, which must
// be numbered the same way as s.
func (s *StateSet) Intersects(bits *bitset.BitSet) bool {
	return s.bits.IntersectionCardinality(bits) > 0
}

func (s *StateSet) Clear() {
	s.bits.ClearAll()
	s.keyChanged()
}

func (s *StateSet) Clone() *StateSet {
	return &StateSet{
		bits:        s.bits.Clone(),
		ids:         s.ids,
		hashUpdated: s.hashUpdated,
		hashCode:    s.hashCode,
	}
}

// Freeze Returns an immutable copy of the set, tagged with a DFA state number.
func (s *StateSet) Freeze(state int) *FrozenIntSet {
	return NewFrozenIntSet(s.GetArray(), state, s.Hash())
}

func (s *StateSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range s.GetArray() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte('}')
	return sb.String()
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
