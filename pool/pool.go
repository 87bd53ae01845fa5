// Package pool provides a free list of bstr containers for long-lived
// processes which build many short-lived strings, e.g. per-request
// payload assembly in servers. Recycling keeps promoted heap buffers out
// of steady-state allocation churn.
package pool

import (
	"sync"
	"sync/atomic"

	"github.com/npillmayer/bstr"
)

// Metrics is a snapshot of pool activity counters.
type Metrics struct {
	Gets uint64 // containers handed out
	Puts uint64 // containers recycled
	News uint64 // containers allocated because the pool was empty
}

// Pool manages reusable containers. The zero value is not usable; create
// pools with New. Pools are safe for concurrent use; the containers they
// hand out are not (single-owner contract of bstr.String).
type Pool struct {
	pool sync.Pool
	gets atomic.Uint64
	puts atomic.Uint64
	news atomic.Uint64
}

// New creates an empty pool.
func New() *Pool {
	p := &Pool{}
	p.pool.New = func() interface{} {
		p.news.Add(1)
		return new(bstr.String)
	}
	return p
}

// Get returns an empty, unfrozen container in the embedded
// representation. The container is reset on the way out, so a dirty Put
// cannot leak state to the next user.
func (p *Pool) Get() *bstr.String {
	p.gets.Add(1)
	s := p.pool.Get().(*bstr.String)
	s.Free()
	return s
}

// Put recycles a container. Free is called on it, which releases any
// heap buffer and clears the frozen flag; frozen containers may
// therefore be recycled like any other. A nil container is ignored. The
// caller must not use s afterwards.
func (p *Pool) Put(s *bstr.String) {
	if s == nil {
		return
	}
	s.Free()
	p.puts.Add(1)
	p.pool.Put(s)
}

// Metrics returns a snapshot of the activity counters.
func (p *Pool) Metrics() Metrics {
	return Metrics{
		Gets: p.gets.Load(),
		Puts: p.puts.Load(),
		News: p.news.Load(),
	}
}
