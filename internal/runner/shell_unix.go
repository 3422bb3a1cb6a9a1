//go:build !windows

package runner

import "os/exec"

// shellCommand wraps the command line in the system shell so pipes,
// redirects and other metacharacters behave exactly as the shell
// defines them. The command string itself is never parsed here.
func shellCommand(command string) *exec.Cmd {
	// #nosec G204
	return exec.Command("/bin/sh", "-c", command)
}
