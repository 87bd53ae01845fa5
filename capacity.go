package bstr

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Reserve guarantees a capacity of at least needed bytes and returns the
// updated state. Growth is exact: a growing call allocates precisely
// needed+1 bytes (terminator included), never more. Callers wanting
// amortized growth must over-request themselves.
//
// If the content is embedded and needed exceeds the embedded capacity,
// the container is promoted to the heap representation, preserving its
// bytes. Reserve never shrinks and is a no-op on a frozen container.
func (s *String) Reserve(needed int) State {
	if s == nil {
		return State{}
	}
	if s.frozen || needed < 0 {
		return s.State()
	}
	if s.heap {
		if needed <= s.capa {
			return s.State()
		}
		grown := make([]byte, needed+1)
		copy(grown, s.data[:s.length+1])
		s.data = grown
		s.capa = needed
		T().Debugf("bstr: heap buffer grown to capa=%d", needed)
		return s.State()
	}
	if needed <= EmbeddedCapacity {
		return s.State()
	}
	// Promote: embedded storage was never heap memory, nothing to release.
	buf := make([]byte, needed+1)
	n := int(s.slen)
	copy(buf, s.sdata[:n+1])
	s.heap = true
	s.data = buf
	s.length = n
	s.capa = needed
	s.slen = 0
	T().Debugf("bstr: promoted to heap representation (len=%d, capa=%d)", n, needed)
	return s.State()
}

// Resize sets the content length to n and writes the terminator at the
// new end, growing capacity via Reserve if necessary. Bytes between an
// old, larger length and n are not touched: shrinking leaves them in the
// buffer, logically unreachable, and a later grow may expose them again
// until overwritten. A no-op on a frozen container or for negative n.
func (s *String) Resize(n int) State {
	if s == nil {
		return State{}
	}
	if s.frozen || n < 0 {
		return s.State()
	}
	s.Reserve(n)
	if !s.heap {
		s.slen = uint8(n)
		s.sdata[n] = 0
		return s.State()
	}
	s.length = n
	s.data[n] = 0
	return s.State()
}

// Clear empties the container, retaining the existing capacity and
// representation. Equivalent to Resize(0).
func (s *String) Clear() State {
	return s.Resize(0)
}
