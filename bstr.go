package bstr

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

const (
	// EmbeddedSize is the number of bytes of in-place storage inside a
	// String, the terminator slot included.
	EmbeddedSize = 32
	// EmbeddedCapacity is the maximum content length (in bytes) a String
	// can hold without a heap allocation.
	EmbeddedCapacity = EmbeddedSize - 1
)

// String is a binary-safe, growable string container.
//
// Short content (up to EmbeddedCapacity bytes) lives directly inside the
// container; longer content lives in an exclusively owned heap buffer.
// The active representation is an implementation detail: all operations
// present one logical view of {capacity, length, content}, with the
// content always terminated by a zero byte at position length.
//
// The zero value is a valid, empty container in the embedded
// representation. A String must not be copied after first use while it
// holds a heap buffer, as both copies would then alias the same buffer.
type String struct {
	heap   bool // discriminator: content lives in data instead of sdata
	frozen bool
	slen   uint8 // embedded length; meaningless while heap is set
	sdata  [EmbeddedSize]byte
	length int    // heap length; meaningless while embedded
	capa   int    // heap capacity, terminator excluded
	data   []byte // heap buffer of capa+1 bytes, data[length] == 0
}

// State is a snapshot of a container's logical view.
//
// Data aliases the live backing buffer, spanning all Capa+1 bytes of it,
// so Data[Len] == 0 holds and in-place modification of content bytes is
// possible. A State goes stale as soon as a subsequent mutation
// reallocates or re-tags the container.
type State struct {
	Capa int
	Len  int
	Data []byte
}

// New creates an empty container in the embedded representation.
// Equivalent to new(String); provided for symmetry with FromString.
func New() *String {
	return &String{}
}

// FromString creates a container holding a copy of str.
func FromString(str string) *String {
	s := New()
	s.WriteString(str)
	return s
}

// FromBytes creates a container holding a copy of p.
func FromBytes(p []byte) *String {
	s := New()
	s.Write(p)
	return s
}

// Adopt creates a container which takes ownership of buf as its heap
// buffer, with the first length bytes as content. The caller must not
// use buf afterwards. If length exceeds len(buf) it is clamped; spare
// capacity of buf becomes container capacity. A terminator byte is
// written at the end of the content (appending one byte if buf has no
// room for it).
func Adopt(buf []byte, length int) *String {
	s := New()
	if length < 0 {
		length = 0
	}
	if length > len(buf) {
		length = len(buf)
	}
	buf = buf[:cap(buf)]
	if length >= len(buf) {
		buf = append(buf, 0)
	}
	buf[length] = 0
	s.heap = true
	s.data = buf
	s.length = length
	s.capa = len(buf) - 1
	return s
}

// Free releases any owned heap buffer and reinitializes the container to
// the empty embedded state. This is the only way to clear the frozen
// flag. The container is safe to reuse afterwards.
func (s *String) Free() {
	if s == nil {
		return
	}
	*s = String{}
}

// State returns the container's logical view. It never mutates the
// container; a nil container yields a zero-capacity, zero-length
// snapshot with nil Data.
func (s *String) State() State {
	if s == nil {
		return State{}
	}
	if !s.heap {
		return State{Capa: EmbeddedCapacity, Len: int(s.slen), Data: s.sdata[:]}
	}
	return State{Capa: s.capa, Len: s.length, Data: s.data}
}

// Len returns the content length in bytes.
func (s *String) Len() int {
	if s == nil {
		return 0
	}
	if !s.heap {
		return int(s.slen)
	}
	return s.length
}

// Cap returns the container's capacity in bytes, the terminator slot
// excluded. While embedded this is the fixed EmbeddedCapacity.
func (s *String) Cap() int {
	if s == nil {
		return 0
	}
	if !s.heap {
		return EmbeddedCapacity
	}
	return s.capa
}

// Bytes returns the content as a byte slice aliasing the container's
// storage. The slice is valid until the next mutation; callers needing a
// stable copy should use String or copy the bytes themselves.
func (s *String) Bytes() []byte {
	if s == nil {
		return nil
	}
	if !s.heap {
		return s.sdata[:s.slen]
	}
	return s.data[:s.length]
}

// String returns a copy of the content as a Go string. Content is
// arbitrary bytes; the result need not be valid UTF-8.
func (s *String) String() string {
	return string(s.Bytes())
}

// IsEmpty reports whether the container has no content bytes.
func (s *String) IsEmpty() bool {
	return s.Len() == 0
}

// IsEmbedded reports whether the content currently lives inside the
// container itself rather than in a heap buffer.
func (s *String) IsEmbedded() bool {
	return s == nil || !s.heap
}

// IsFrozen reports whether the container has been frozen.
func (s *String) IsFrozen() bool {
	return s != nil && s.frozen
}
