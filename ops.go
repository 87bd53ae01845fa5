package bstr

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Write appends p to the content and returns the updated state.
// A no-op if p is empty or the container is frozen.
func (s *String) Write(p []byte) State {
	if s == nil {
		return State{}
	}
	if len(p) == 0 || s.frozen {
		return s.State()
	}
	st := s.Resize(s.Len() + len(p))
	copy(st.Data[st.Len-len(p):], p)
	return st
}

// WriteString appends str to the content. See Write.
func (s *String) WriteString(str string) State {
	if s == nil {
		return State{}
	}
	if len(str) == 0 || s.frozen {
		return s.State()
	}
	st := s.Resize(s.Len() + len(str))
	copy(st.Data[st.Len-len(str):], str)
	return st
}

// Concat appends the current content of src to s and returns the updated
// state of s. src is never mutated; a nil or empty src is a no-op.
// Self-concatenation is permitted and duplicates the content.
func (s *String) Concat(src *String) State {
	if s == nil {
		return State{}
	}
	if s.frozen {
		return s.State()
	}
	// The view stays readable even if Resize reallocates s == src: the
	// old buffer holds the old bytes until the copy below is done.
	b := src.Bytes()
	if len(b) == 0 {
		return s.State()
	}
	st := s.Resize(s.Len() + len(b))
	copy(st.Data[st.Len-len(b):], b)
	return st
}

// resolvePos maps a signed position to a byte offset. Negative positions
// count from the end, -1 addressing the slot right after the last byte.
func (s *String) resolvePos(pos int) int {
	if pos < 0 {
		pos += s.Len() + 1
		if pos < 0 {
			pos = 0
		}
	}
	return pos
}

// Overwrite places p at byte offset pos, replacing existing bytes in
// that range and growing the content if p reaches past the current end.
// pos may be negative (counted from the end, -1 == end of content) and
// is clamped to the current length, so no gap of uninitialized bytes can
// open up. A no-op if p is empty or the container is frozen.
func (s *String) Overwrite(p []byte, pos int) State {
	if s == nil {
		return State{}
	}
	if len(p) == 0 || s.frozen {
		return s.State()
	}
	pos = s.resolvePos(pos)
	st := s.State()
	if pos > st.Len {
		pos = st.Len
	}
	if pos+len(p) > st.Len {
		st = s.Resize(pos + len(p))
	}
	copy(st.Data[pos:pos+len(p)], p)
	return st
}

// OverwriteString places str at byte offset pos. See Overwrite.
func (s *String) OverwriteString(str string, pos int) State {
	if s == nil {
		return State{}
	}
	if len(str) == 0 || s.frozen {
		return s.State()
	}
	pos = s.resolvePos(pos)
	st := s.State()
	if pos > st.Len {
		pos = st.Len
	}
	if pos+len(str) > st.Len {
		st = s.Resize(pos + len(str))
	}
	copy(st.Data[pos:pos+len(str)], str)
	return st
}

// Insert places p at byte offset pos, shifting all existing bytes from
// pos onward to the right. The content always grows by len(p); nothing
// is replaced. pos may be negative (counted from the end, -1 == append)
// and is clamped so the shifted tail stays in bounds. A no-op if p is
// empty or the container is frozen.
func (s *String) Insert(p []byte, pos int) State {
	if s == nil {
		return State{}
	}
	if len(p) == 0 || s.frozen {
		return s.State()
	}
	pos = s.resolvePos(pos)
	oldLen := s.Len()
	st := s.Resize(oldLen + len(p))
	if pos > st.Len-len(p) {
		pos = st.Len - len(p)
	}
	if pos != oldLen {
		copy(st.Data[pos+len(p):st.Len], st.Data[pos:oldLen])
	}
	copy(st.Data[pos:pos+len(p)], p)
	return st
}

// InsertString places str at byte offset pos. See Insert.
func (s *String) InsertString(str string, pos int) State {
	if s == nil {
		return State{}
	}
	if len(str) == 0 || s.frozen {
		return s.State()
	}
	pos = s.resolvePos(pos)
	oldLen := s.Len()
	st := s.Resize(oldLen + len(str))
	if pos > st.Len-len(str) {
		pos = st.Len - len(str)
	}
	if pos != oldLen {
		copy(st.Data[pos+len(str):st.Len], st.Data[pos:oldLen])
	}
	copy(st.Data[pos:pos+len(str)], str)
	return st
}

// Compact performs a best-effort shrink of the container's memory. If
// the content fits the embedded storage the container is demoted back to
// the embedded representation, releasing the heap buffer; otherwise the
// heap buffer is reallocated down to exactly length+1 bytes. Idempotent,
// and a no-op on an embedded, an optimally sized, or a frozen container.
func (s *String) Compact() State {
	if s == nil {
		return State{}
	}
	if s.frozen || !s.heap {
		return s.State()
	}
	if s.length < EmbeddedSize {
		// Demote: copy bytes (terminator included) back in place.
		n := s.length
		buf := s.data
		s.heap = false
		s.data = nil
		s.length = 0
		s.capa = 0
		s.slen = uint8(n)
		copy(s.sdata[:n+1], buf[:n+1])
		T().Debugf("bstr: demoted to embedded representation (len=%d)", n)
		return s.State()
	}
	if s.capa == s.length {
		return s.State()
	}
	shrunk := make([]byte, s.length+1)
	copy(shrunk, s.data[:s.length+1])
	s.data = shrunk
	s.capa = s.length
	T().Debugf("bstr: heap buffer compacted to capa=%d", s.capa)
	return s.State()
}

// Freeze marks the container read-only. Every subsequent mutating
// operation becomes a no-op that reports the unchanged state. Freezing
// is irreversible; only Free (full reinitialization) clears the flag.
func (s *String) Freeze() {
	if s == nil {
		return
	}
	s.frozen = true
}
