package nfa

// Hashable is a key whose identity is not comparable with ==, such as a set
// of states held in a slice or a bitset.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap is a chained hash table keyed by Hashable. Subset construction uses
// it to find the DFA state already assigned to a set of NFA states, whether
// the set is looked up as a live StateSet or a FrozenIntSet. It is not safe
// for concurrent use; each Determinize call owns its own map.
type HashMap[T any] struct {
	buckets []*entry[T]
	size    int
	mask    uint64
}

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

type optionsHashMap struct {
	capacity int // 默认 1
}

// 负载因子
const loadFactory = 0.75

type OptionsHashMap func(*optionsHashMap)

func WithCapacity(capacity int) OptionsHashMap {
	return func(o *optionsHashMap) {
		o.capacity = capacity
	}
}

// NewHashMap capacity is rounded up to a power of two.
func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	opts := &optionsHashMap{
		capacity: 1,
	}
	for _, fn := range options {
		fn(opts)
	}

	realCap := 1
	for realCap < opts.capacity {
		realCap <<= 1
	}

	return &HashMap[T]{
		buckets: make([]*entry[T], realCap),
		mask:    uint64(realCap - 1),
	}
}

// Set inserts or replaces the value stored under key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	m.buckets[index] = &entry[T]{key: key, value: value, next: m.buckets[index]}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > loadFactory {
		m.resize()
	}
}

func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	var empty T
	return empty, false
}

// 扩容：容量翻倍并重新散列
func (m *HashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	newBuckets := make([]*entry[T], newCap)
	newMask := uint64(newCap - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			index := e.key.Hash() & newMask
			newBuckets[index] = &entry[T]{key: e.key, value: e.value, next: newBuckets[index]}
		}
	}

	m.buckets = newBuckets
	m.mask = newMask
}

func (m *HashMap[T]) Size() int {
	return m.size
}
