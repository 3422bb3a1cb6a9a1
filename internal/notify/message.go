package notify

import "fmt"

// FormatMessage renders the canonical notification body: bracketed
// timestamp and bracketed host identity on the first line, the message
// text after.
func FormatMessage(ts, host, text string) string {
	return fmt.Sprintf("[%s] [%s]\n%s", ts, host, text)
}
