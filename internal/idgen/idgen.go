// Package idgen provides the identifier sources used when a document is saved
// without an id.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a new identifier on every call.
type Generator interface {
	NewID() string
}

// Func adapts a plain function to Generator.
type Func func() string

func (f Func) NewID() string { return f() }

// UUID returns a generator of random (version 4) UUID strings.
func UUID() Generator {
	return Func(uuid.NewString)
}

// Sequence returns a deterministic generator yielding prefix1, prefix2, ...
// Safe for concurrent use.
func Sequence(prefix string) Generator {
	var n atomic.Uint64
	return Func(func() string {
		return prefix + strconv.FormatUint(n.Add(1), 10)
	})
}
