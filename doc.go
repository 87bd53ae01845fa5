/*
Package bstr implements a binary-safe, growable string container with an
embedded small-string optimization.

Strings in Go are immutable, and byte slices carry no notion of a stable,
NUL-terminated view onto their content. Applications which build up and
edit byte strings in place (protocol payloads, log lines, editor cells)
often reach for bytes.Buffer, which always allocates on the heap and
offers no positional editing. bstr fills this gap with a single value
type, String, which

▪︎ stores short content directly inside the container, without touching
the heap at all,

▪︎ transparently promotes to an exclusively owned heap buffer when the
content outgrows the embedded storage,

▪︎ keeps the content NUL-terminated at all times, while treating NUL as
an ordinary content byte (lengths and positions are byte-based),

▪︎ supports appending, concatenation, positional overwrite and insertion
(with negative, from-the-end positions), best-effort compaction back into
the embedded form, and an irreversible frozen (read-only) state.

The zero value

	var s bstr.String

is a valid, empty container and ready for use, just like the empty string.

Containers are plain values with single-owner semantics: there is no
sharing, no copy-on-write and no internal synchronization. Every operation
completes synchronously before returning. Callers who need to touch one
container from several goroutines must serialize access externally; the
guard subpackage provides the canonical wrapper for that.

Error Handling

The operation set is deliberately error-free. Invalid input, be it a nil
container, an empty byte source, an out-of-range position, or a mutation
on a frozen container, is silently absorbed and the operation degrades to
a no-op that reports the unchanged state. Callers who need to detect
"nothing happened" inspect the returned State. Memory exhaustion during
growth is fatal: the Go runtime aborts the process when an allocation
cannot be satisfied, which matches the container's contract that
continuing with a corrupt string is worse than stopping.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bstr

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
