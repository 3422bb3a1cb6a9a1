//go:build windows

package runner

import "os/exec"

// shellCommand wraps the command line in the system shell.
func shellCommand(command string) *exec.Cmd {
	// #nosec G204
	return exec.Command("cmd", "/C", command)
}
