//go:build !windows

package runner

import (
	"os"
	"syscall"
)

// signaled reports whether the process state describes termination by a
// signal rather than a normal exit.
func signaled(state *os.ProcessState) bool {
	ws, ok := state.Sys().(syscall.WaitStatus)
	return ok && ws.Signaled()
}
