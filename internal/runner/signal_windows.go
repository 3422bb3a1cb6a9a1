//go:build windows

package runner

import "os"

// signaled always reports false: Windows has no signal-termination
// semantics, every exit carries a code.
func signaled(_ *os.ProcessState) bool {
	return false
}
