package linked

// Position denotes one live entry in the map's entry sequence. It doubles
// as a forward iterator: Next steps in sequence order, which visits each
// bucket's entries as one contiguous run (bucket-grouping order, not key
// or insertion order). Any insert or erase on the map invalidates every
// previously obtained Position.
type Position[K comparable, V any] struct {
	m *HashMap[K, V]
	n *node[K, V]
}

// Find returns the position of key, or nil when absent.
func (m *HashMap[K, V]) Find(key K) *Position[K, V] {
	n := m.lookup(key)
	if n == nil {
		return nil
	}
	return &Position[K, V]{m: m, n: n}
}

// First returns the position of the first entry in sequence order, or nil
// when the map is empty.
func (m *HashMap[K, V]) First() *Position[K, V] {
	n := m.seq.first()
	if m.seq.sentinel(n) {
		return nil
	}
	return &Position[K, V]{m: m, n: n}
}

// Next returns the position of the following entry, or nil past the last
// one.
func (p *Position[K, V]) Next() *Position[K, V] {
	if p.n == nil || p.n.next == nil {
		return nil
	}
	next := p.n.next
	if p.m.seq.sentinel(next) {
		return nil
	}
	return &Position[K, V]{m: p.m, n: next}
}

// Key returns the entry's key.
func (p *Position[K, V]) Key() K {
	return p.n.key
}

// Value returns the entry's value.
func (p *Position[K, V]) Value() V {
	return p.n.val
}

// SetValue overwrites the entry's value in place. The key cannot change.
func (p *Position[K, V]) SetValue(val V) {
	p.n.val = val
}

// Range calls fn for every entry in sequence order and stops early when
// fn returns false. Range is not safe to perform an insert or remove
// operation while ranging.
func (m *HashMap[K, V]) Range(fn func(key K, val V) bool) {
	for n := m.seq.first(); !m.seq.sentinel(n); n = n.next {
		if !fn(n.key, n.val) {
			return
		}
	}
}
