// Package tailbuf trims captured process output to a display-safe tail.
package tailbuf

import (
	"fmt"
	"strings"
)

// Tail decodes data as UTF-8 text, substituting the Unicode replacement
// character for invalid sequences. When data is longer than max bytes,
// only the last max bytes are decoded and the result is prefixed with a
// truncation marker. max must be >= 0; max == 0 yields just the marker.
func Tail(data []byte, max int) string {
	if len(data) <= max {
		return lossy(data)
	}
	return fmt.Sprintf("… (truncated, showing last %d bytes)\n%s", max, lossy(data[len(data)-max:]))
}

// lossy never fails: a truncation boundary may split a multi-byte rune
// and the malformed remainder becomes a replacement character.
func lossy(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
