package linked

import "errors"

var (
	// ErrKeyNotFound is returned by At for an absent key.
	ErrKeyNotFound = errors.New("linked: key not found")
)
