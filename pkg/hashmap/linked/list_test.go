package linked

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(l *entryList[string, int]) []string {
	var keys []string
	for n := l.first(); !l.sentinel(n); n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}

func TestEntryListPushBack(t *testing.T) {
	var l entryList[string, int]
	l.init()
	assert.Equal(t, 0, l.len())
	assert.True(t, l.sentinel(l.first()))

	l.pushBack("a", 1)
	l.pushBack("b", 2)
	l.pushBack("c", 3)
	assert.Equal(t, 3, l.len())
	assert.Equal(t, []string{"a", "b", "c"}, collect(&l))
}

func TestEntryListInsertBefore(t *testing.T) {
	var l entryList[string, int]
	l.init()

	b := l.pushBack("b", 2)
	l.insertBefore(b, "a", 1)
	l.insertBefore(&l.root, "c", 3)
	assert.Equal(t, []string{"a", "b", "c"}, collect(&l))

	// backward links must mirror the forward order
	var back []string
	for n := l.root.prev; !l.sentinel(n); n = n.prev {
		back = append(back, n.key)
	}
	assert.Equal(t, []string{"c", "b", "a"}, back)
}

func TestEntryListRemove(t *testing.T) {
	var l entryList[string, int]
	l.init()

	a := l.pushBack("a", 1)
	b := l.pushBack("b", 2)
	c := l.pushBack("c", 3)

	l.remove(b)
	assert.Equal(t, []string{"a", "c"}, collect(&l))
	assert.Equal(t, 2, l.len())
	assert.Nil(t, b.next)
	assert.Nil(t, b.prev)

	l.remove(a)
	l.remove(c)
	assert.Equal(t, 0, l.len())
	assert.True(t, l.sentinel(l.first()))
}

func TestEntryListStableNodes(t *testing.T) {
	var l entryList[string, int]
	l.init()

	b := l.pushBack("b", 2)
	l.insertBefore(b, "a", 1)
	l.pushBack("c", 3)

	// inserting and removing around b must not move it
	assert.Equal(t, "b", b.key)
	assert.Equal(t, "a", b.prev.key)
	assert.Equal(t, "c", b.next.key)
}
