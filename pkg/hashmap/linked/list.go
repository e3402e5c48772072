package linked

// node is one entry in the shared sequence. The key is fixed at insert
// time; the value may be overwritten in place.
type node[K comparable, V any] struct {
	key        K
	val        V
	prev, next *node[K, V]
}

// entryList is the shared sequence every bucket chains into: a doubly
// linked ring around a sentinel root, so splicing at either end needs no
// special cases. Node addresses are stable for the node's lifetime.
type entryList[K comparable, V any] struct {
	root   node[K, V]
	length int
}

func (l *entryList[K, V]) init() {
	l.root.prev = &l.root
	l.root.next = &l.root
	l.length = 0
}

// sentinel reports whether n is the ring's root rather than a live entry.
func (l *entryList[K, V]) sentinel(n *node[K, V]) bool {
	return n == &l.root
}

// first returns the first live node, or the sentinel when empty.
func (l *entryList[K, V]) first() *node[K, V] {
	return l.root.next
}

func (l *entryList[K, V]) len() int {
	return l.length
}

// insertBefore splices a new node holding key and val directly in front
// of at. Passing the sentinel makes this a push-back.
func (l *entryList[K, V]) insertBefore(at *node[K, V], key K, val V) *node[K, V] {
	n := &node[K, V]{key: key, val: val, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	l.length++
	return n
}

func (l *entryList[K, V]) pushBack(key K, val V) *node[K, V] {
	return l.insertBefore(&l.root, key, val)
}

// remove unlinks n from the ring. The node's own links are cleared so a
// stale reference cannot walk back into the sequence.
func (l *entryList[K, V]) remove(n *node[K, V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
	l.length--
}
