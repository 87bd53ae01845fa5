package dump

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/bstr"
)

func TestFprintHeader(t *testing.T) {
	s := bstr.FromString("Worl")
	var buf bytes.Buffer
	Fprint(&buf, s)
	out := buf.String()
	header := fmt.Sprintf("repr=embedded len=4 capa=%d frozen=false", bstr.EmbeddedCapacity)
	if !strings.Contains(out, header) {
		t.Fatalf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "57 6f 72 6c 00") {
		t.Fatalf("hex view missing content bytes: %q", out)
	}
	if !strings.Contains(out, "|Worl.|") {
		t.Fatalf("ascii gutter missing: %q", out)
	}
}

func TestFprintHeapAndFrozen(t *testing.T) {
	s := bstr.FromString("Worl")
	s.Reserve(2 * bstr.EmbeddedSize)
	s.Freeze()
	var buf bytes.Buffer
	Fprint(&buf, s)
	out := buf.String()
	if !strings.Contains(out, "repr=heap") || !strings.Contains(out, "frozen=true") {
		t.Fatalf("unexpected header: %q", out)
	}
}

func TestFprintNil(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, nil)
	if !strings.Contains(buf.String(), "<nil>") {
		t.Fatalf("nil dump = %q", buf.String())
	}
}

func TestFprintMultipleRows(t *testing.T) {
	s := bstr.FromString(strings.Repeat("A", 40))
	var buf bytes.Buffer
	Fprint(&buf, s)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// header plus three rows for 41 bytes (40 content + terminator)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[2], "0010") {
		t.Fatalf("second row should start at offset 0010: %q", lines[2])
	}
}
