package linked

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc hashes a key to a 64-bit value. Bucket selection reduces the
// result modulo the current table size, so all 64 bits should be
// uniformly distributed for good chain lengths.
type HashFunc[K comparable] func(key K) uint64

// defaultHasher hashes any comparable key with the runtime's maphash,
// seeded once per map.
func defaultHasher[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// StringHasher returns an xxhash64-backed hash function for string keys,
// a faster alternative to the default hasher when keys are plain strings.
func StringHasher() HashFunc[string] {
	return xxhash.Sum64String
}
