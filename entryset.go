package sigcache

// entrySet is a set of cache keys. Entries live in the keys slice so a
// uniformly random victim can be picked in O(1) during eviction; the index
// map provides O(1) membership and erase. Callers must hold the Verifier
// lock: read lock for contains and len, write lock for everything else.
type entrySet struct {
	index map[key]int
	keys  []key
}

func newEntrySet() *entrySet {
	return &entrySet{
		index: make(map[key]int),
	}
}

func (s *entrySet) contains(entry key) bool {
	_, ok := s.index[entry]
	return ok
}

func (s *entrySet) insert(entry key) {
	if _, ok := s.index[entry]; ok {
		return
	}
	s.index[entry] = len(s.keys)
	s.keys = append(s.keys, entry)
}

func (s *entrySet) erase(entry key) {
	if i, ok := s.index[entry]; ok {
		s.removeAt(i)
	}
}

// removeAt swap-removes the entry at slice position i.
func (s *entrySet) removeAt(i int) {
	last := len(s.keys) - 1
	moved := s.keys[last]

	delete(s.index, s.keys[i])
	s.keys[i] = moved
	s.keys = s.keys[:last]
	if i != last {
		s.index[moved] = i
	}
}

func (s *entrySet) len() int {
	return len(s.keys)
}

// capacity is the grown allocation of the backing slice. Erase and removeAt
// never shrink it, which is why the usage estimator charges for it
// separately; compact is what releases it again.
func (s *entrySet) capacity() int {
	return cap(s.keys)
}

// compact reallocates the backing slice once it is mostly empty, so memory
// released by eviction, or stranded by a shrunken budget, is actually
// returned. Halving per call keeps the amortized copy cost low; repeated
// calls converge towards the live entry count.
func (s *entrySet) compact() {
	if cap(s.keys) < 16 || len(s.keys) >= cap(s.keys)/4 {
		return
	}
	keys := make([]key, len(s.keys), cap(s.keys)/2)
	copy(keys, s.keys)
	s.keys = keys
}
