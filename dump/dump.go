package dump

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/bstr"
	"golang.org/x/term"
)

// bytesPerRow is the number of content bytes shown per hex dump row.
const bytesPerRow = 16

// styles groups the colors used for the different parts of a dump.
// Styling is only applied when the output sink is an interactive
// terminal; otherwise the dump is plain text.
type styles struct {
	header  *color.Color
	offset  *color.Color
	content *color.Color
	nul     *color.Color
}

func newStyles(colorize bool) styles {
	s := styles{
		header:  color.New(color.FgCyan),
		offset:  color.New(color.Faint),
		content: color.New(color.FgGreen),
		nul:     color.New(color.FgRed, color.Bold),
	}
	if !colorize {
		s.header.DisableColor()
		s.offset.DisableColor()
		s.content.DisableColor()
		s.nul.DisableColor()
	}
	return s
}

// Print writes a dump of the container's state to stdout, colorized if
// stdout is an interactive terminal.
func Print(s *bstr.String) {
	Fprint(os.Stdout, s)
}

// Fprint writes a dump of the container's state to w: a header line with
// representation, length, capacity and frozen flag, followed by a
// hex+ASCII view of the content bytes and the terminator. The terminator
// (and every interior NUL) is highlighted. Intended for debugging.
func Fprint(w io.Writer, s *bstr.String) {
	st := newStyles(isTerminal(w))
	if s == nil {
		fmt.Fprintln(w, st.header.Sprint("bstr: <nil>"))
		return
	}
	state := s.State()
	repr := "heap"
	if s.IsEmbedded() {
		repr = "embedded"
	}
	fmt.Fprintln(w, st.header.Sprintf("bstr: repr=%s len=%d capa=%d frozen=%v",
		repr, state.Len, state.Capa, s.IsFrozen()))
	// content bytes plus the terminator at state.Len
	view := state.Data[:state.Len+1]
	for row := 0; row < len(view); row += bytesPerRow {
		end := row + bytesPerRow
		if end > len(view) {
			end = len(view)
		}
		fmt.Fprintln(w, formatRow(st, view[row:end], row))
	}
}

// formatRow renders one hex dump row: offset, hex columns, ASCII gutter.
func formatRow(st styles, row []byte, offset int) string {
	var hexcols, ascii strings.Builder
	for i, b := range row {
		if i > 0 {
			hexcols.WriteByte(' ')
		}
		cell := fmt.Sprintf("%02x", b)
		if b == 0 {
			hexcols.WriteString(st.nul.Sprint(cell))
			ascii.WriteString(st.nul.Sprint("."))
			continue
		}
		hexcols.WriteString(st.content.Sprint(cell))
		if b < 0x20 || b > 0x7e {
			ascii.WriteByte('.')
		} else {
			ascii.WriteByte(b)
		}
	}
	pad := strings.Repeat(" ", (bytesPerRow-len(row))*3)
	return fmt.Sprintf("%s  %s%s  |%s|",
		st.offset.Sprintf("%04x", offset), hexcols.String(), pad, ascii.String())
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
