// Package guard serializes access to a bstr container across goroutines.
//
// bstr.String deliberately carries no internal synchronization, keeping
// the single-threaded fast path lock-free. When a container must be
// shared, the contract is to wrap it behind an explicit exclusive-access
// guard instead; this package is that wrapper.
package guard

import (
	"sync"

	"github.com/npillmayer/bstr"
)

// Guard owns a container and grants exclusive access to it. The zero
// value guards an empty container and is ready for use. A Guard must not
// be copied after first use.
type Guard struct {
	mu sync.Mutex
	s  bstr.String
}

// New creates a guard around an empty container.
func New() *Guard {
	return &Guard{}
}

// With runs f with exclusive access to the guarded container. The
// container (and any State or Bytes view obtained from it) must not be
// retained beyond the call.
func (g *Guard) With(f func(s *bstr.String)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	f(&g.s)
}

// Len returns the guarded container's content length.
func (g *Guard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.s.Len()
}

// String returns a copy of the guarded container's content.
func (g *Guard) String() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.s.String()
}

// Bytes returns a copy of the guarded container's content. Unlike
// bstr.String.Bytes, the result never aliases the container: an aliasing
// view would escape the lock.
func (g *Guard) Bytes() []byte {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]byte(nil), g.s.Bytes()...)
}
