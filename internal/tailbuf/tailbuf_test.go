package tailbuf

import (
	"strings"
	"testing"
)

func TestTailTruncates(t *testing.T) {
	got := Tail([]byte("abcdefghijklmnopqrstuvwxyz"), 10)
	want := "… (truncated, showing last 10 bytes)\nqrstuvwxyz"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestTailShortInputUnchanged(t *testing.T) {
	if got := Tail([]byte("hello"), 10); got != "hello" {
		t.Fatalf("got %q", got)
	}
}

func TestTailExactBoundaryNoMarker(t *testing.T) {
	if got := Tail([]byte("exact10!!"), 9); got != "exact10!!" {
		t.Fatalf("got %q", got)
	}
	if strings.Contains(Tail([]byte("abc"), 3), "truncated") {
		t.Fatalf("marker present at exact boundary")
	}
}

func TestTailZeroMax(t *testing.T) {
	got := Tail([]byte("anything"), 0)
	if got != "… (truncated, showing last 0 bytes)\n" {
		t.Fatalf("got %q", got)
	}
}

func TestTailEmptyInput(t *testing.T) {
	if got := Tail(nil, 10); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestTailSplitMultibyteRune(t *testing.T) {
	// "héllo" with the tail boundary cutting é in half.
	data := []byte("h\xc3\xa9llo")
	got := Tail(data, 4) // last 4 bytes: \xa9 l l o
	if !strings.HasSuffix(got, "�llo") {
		t.Fatalf("malformed sequence not replaced: %q", got)
	}
	if !strings.HasPrefix(got, "… (truncated, showing last 4 bytes)\n") {
		t.Fatalf("missing marker: %q", got)
	}
}

func TestTailInvalidBytesNeverFail(t *testing.T) {
	data := []byte{0xff, 0xfe, 'o', 'k'}
	got := Tail(data, 100)
	if !strings.HasSuffix(got, "ok") {
		t.Fatalf("got %q", got)
	}
}
