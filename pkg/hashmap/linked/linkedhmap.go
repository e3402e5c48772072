package linked

const (
	// loadFactor is the count-to-table-size ratio that triggers growth.
	// The check runs only after a collision-path insertion, i.e. when a
	// chain actually lengthened.
	loadFactor = 2

	// resizeFactor is the table growth multiple applied on rehash.
	resizeFactor = 3

	// initialTableSize is the single bucket every map starts from. The
	// table only ever grows from here.
	initialTableSize = 1
)

// Entry is an exported key/value pair, used for bulk construction and by
// the snapshotting internals.
type Entry[K comparable, V any] struct {
	Key K
	Val V
}

// HashMap is a hash table with separate chaining where all chains share
// one doubly-linked entry sequence: entries of one bucket form a
// contiguous run in the sequence and the bucket index records the first
// entry of each run. Lookup, insert and erase are amortized O(1), and
// stepping a Position is O(1) because it just follows the sequence.
// A HashMap is not safe for concurrent use.
type HashMap[K comparable, V any] struct {
	hash      HashFunc[K]
	tableSize int
	first     []*node[K, V] // nil slot = unoccupied bucket
	seq       entryList[K, V]
	count     int
}

// NewHashMap returns an empty map using the default maphash-backed hasher.
func NewHashMap[K comparable, V any]() *HashMap[K, V] {
	return newHashMap[K, V](nil)
}

// NewHashMapWithHasher returns an empty map using the supplied hash
// function, the map's only configuration point. A nil hash selects the
// default hasher.
func NewHashMapWithHasher[K comparable, V any](hash HashFunc[K]) *HashMap[K, V] {
	return newHashMap[K, V](hash)
}

// newHashMap is the internal variant of the constructors above.
func newHashMap[K comparable, V any](hash HashFunc[K]) *HashMap[K, V] {
	if hash == nil {
		hash = defaultHasher[K]()
	}
	m := &HashMap[K, V]{
		hash:      hash,
		tableSize: initialTableSize,
		first:     make([]*node[K, V], initialTableSize),
	}
	m.seq.init()
	return m
}

// FromEntries builds a map from the given entries by repeated insertion.
// On duplicate keys the first occurrence wins and later ones are dropped.
func FromEntries[K comparable, V any](entries ...Entry[K, V]) *HashMap[K, V] {
	return FromEntriesWithHasher[K, V](nil, entries...)
}

// FromEntriesWithHasher is FromEntries with a custom hash function.
func FromEntriesWithHasher[K comparable, V any](hash HashFunc[K], entries ...Entry[K, V]) *HashMap[K, V] {
	m := newHashMap[K, V](hash)
	for _, e := range entries {
		m.Insert(e.Key, e.Val)
	}
	return m
}

// bucketOf reduces the key's hash to a bucket index under the current
// table size.
func (m *HashMap[K, V]) bucketOf(key K) int {
	return int(m.hash(key) % uint64(m.tableSize))
}

// lookup returns the node holding key, or nil. It scans the bucket's
// contiguous run from the recorded first entry and stops as soon as an
// entry of a different bucket begins.
func (m *HashMap[K, V]) lookup(key K) *node[K, V] {
	h := m.bucketOf(key)
	n := m.first[h]
	if n == nil {
		return nil
	}
	for !m.seq.sentinel(n) && m.bucketOf(n.key) == h {
		if n.key == key {
			return n
		}
		n = n.next
	}
	return nil
}

// add links a new entry; callers guarantee the key is absent. An insert
// into an empty bucket appends to the sequence tail, a colliding insert
// splices in front of the bucket's current first entry and then runs the
// growth check.
func (m *HashMap[K, V]) add(key K, val V) *node[K, V] {
	m.count++
	h := m.bucketOf(key)
	if m.first[h] == nil {
		n := m.seq.pushBack(key, val)
		m.first[h] = n
		return n
	}
	n := m.seq.insertBefore(m.first[h], key, val)
	m.first[h] = n
	if m.count > m.tableSize*loadFactor {
		m.rehash(m.tableSize * resizeFactor)
		// the rehash rebuilt every node
		return m.lookup(key)
	}
	return n
}

// rehash rebuilds the table at size nmd: snapshot every entry in sequence
// order, reset the table, re-insert through the normal path. The snapshot
// completes before any state is touched, so a caller can never observe a
// half-migrated table.
func (m *HashMap[K, V]) rehash(nmd int) {
	if nmd < 1 {
		nmd = 1
	}
	snap := m.snapshot()
	m.seq.init()
	m.tableSize = nmd
	m.first = make([]*node[K, V], nmd)
	m.count = 0
	for _, e := range snap {
		m.add(e.Key, e.Val)
	}
}

// snapshot copies all entries in sequence order.
func (m *HashMap[K, V]) snapshot() []Entry[K, V] {
	snap := make([]Entry[K, V], 0, m.count)
	for n := m.seq.first(); !m.seq.sentinel(n); n = n.next {
		snap = append(snap, Entry[K, V]{Key: n.key, Val: n.val})
	}
	return snap
}

// Len returns the number of entries currently in the map.
func (m *HashMap[K, V]) Len() int {
	return m.count
}

// IsEmpty reports whether the map holds no entries.
func (m *HashMap[K, V]) IsEmpty() bool {
	return m.count == 0
}

// Contains reports whether key is present.
func (m *HashMap[K, V]) Contains(key K) bool {
	return m.lookup(key) != nil
}

// Get returns the value stored for key, or false if none could be found.
func (m *HashMap[K, V]) Get(key K) (V, bool) {
	if n := m.lookup(key); n != nil {
		return n.val, true
	}
	var zero V
	return zero, false
}

// At returns the value stored for key, or ErrKeyNotFound for an absent
// key. It is the only operation in the map that can fail.
func (m *HashMap[K, V]) At(key K) (V, error) {
	if n := m.lookup(key); n != nil {
		return n.val, nil
	}
	var zero V
	return zero, ErrKeyNotFound
}

// Insert stores the pair if key is absent. On a present key it is a no-op
// and the existing value is kept.
func (m *HashMap[K, V]) Insert(key K, val V) {
	if m.lookup(key) != nil {
		return
	}
	m.add(key, val)
}

// Ref returns a pointer to the value stored for key, inserting a zero
// value first when the key is absent. The pointer stays valid only until
// the next insert or erase on the map.
func (m *HashMap[K, V]) Ref(key K) *V {
	n := m.lookup(key)
	if n == nil {
		var zero V
		n = m.add(key, zero)
	}
	return &n.val
}

// Del erases the entry for key and reports whether one was removed.
func (m *HashMap[K, V]) Del(key K) bool {
	n := m.lookup(key)
	if n == nil {
		return false
	}
	m.unlink(n)
	return true
}

// Remove erases the entry at pos. The position must come from this map
// and denote a live entry; removing decrements the count exactly like Del.
func (m *HashMap[K, V]) Remove(pos *Position[K, V]) {
	if pos == nil || pos.n == nil {
		return
	}
	m.unlink(pos.n)
	pos.n = nil
}

// unlink removes n from its group, repairing the bucket's first-entry
// slot: advance it when a same-bucket successor exists, clear it when n
// was the group's sole member.
func (m *HashMap[K, V]) unlink(n *node[K, V]) {
	h := m.bucketOf(n.key)
	if m.first[h] == n {
		next := n.next
		if m.seq.sentinel(next) || m.bucketOf(next.key) != h {
			m.first[h] = nil
		} else {
			m.first[h] = next
		}
	}
	m.seq.remove(n)
	m.count--
}

// Clear drops every entry. The table size is kept.
func (m *HashMap[K, V]) Clear() {
	m.seq.init()
	m.first = make([]*node[K, V], m.tableSize)
	m.count = 0
}

// Hasher returns the configured hash function.
func (m *HashMap[K, V]) Hasher() HashFunc[K] {
	return m.hash
}

// Assign replaces the map's contents with a copy of src's entries,
// adopting src's hash function. The table is reset to its initial size
// first and regrown by the inserts themselves; the source's table size is
// never copied. Assigning a map to itself is a no-op.
func (m *HashMap[K, V]) Assign(src *HashMap[K, V]) {
	snap := src.snapshot()
	m.hash = src.hash
	m.tableSize = initialTableSize
	m.first = make([]*node[K, V], initialTableSize)
	m.seq.init()
	m.count = 0
	for _, e := range snap {
		m.add(e.Key, e.Val)
	}
}

// Clone returns a fresh map holding a copy of m's entries and hasher.
func (m *HashMap[K, V]) Clone() *HashMap[K, V] {
	c := newHashMap[K, V](m.hash)
	c.Assign(m)
	return c
}

// PercentFull returns the current ratio of entries to buckets.
func (m *HashMap[K, V]) PercentFull() float64 {
	return float64(m.count) / float64(m.tableSize)
}
