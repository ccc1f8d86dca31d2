package nfa

type IntSet interface {
	Hashable

	GetArray() []int

	Size() int
}

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet is an immutable, sorted set of NFA states. During subset
// construction it is the key under which a DFA state is stored.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

// NewFrozenIntSet values must be sorted ascending. hashCode must be the value
// a StateSet holding the same states would report, so both can be used to
// look up the same HashMap entry.
func NewFrozenIntSet(values []int, state int, hashCode uint64) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashCode}
}

// HashInts computes the set hash of sorted, duplicate-free values.
func HashInts(values []int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h += uint64(mix(v))
	}
	return h
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

func (f *FrozenIntSet) Equals(other Hashable) bool {
	if f == nil {
		switch o := other.(type) {
		case *FrozenIntSet:
			return o == nil
		case *StateSet:
			return o == nil
		default:
			return false
		}
	}

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
	if is.Hash() != f.Hash() {
		return false
	}
	return equalInts(f.values, is.GetArray())
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// State Returns the DFA state this set was assigned.
func (f *FrozenIntSet) State() int {
	return f.state
}
