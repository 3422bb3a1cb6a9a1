// Package runner spawns a single shell command and captures its output
// while mirroring it to the invoking terminal.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// SpawnError reports that the child process could not be created at
// all, as opposed to a fault while relaying its output.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to run command %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Runner executes one command under the system shell. Stdout and Stderr
// receive the teed live output; Stdin is handed to the child unmodified
// so interactive and piped input keep working.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Tee    bool
}

// New returns a Runner wired to the process's own standard streams with
// teeing enabled.
func New() *Runner {
	return &Runner{Stdout: os.Stdout, Stderr: os.Stderr, Stdin: os.Stdin, Tee: true}
}

type relayOutcome struct {
	data []byte
	err  error
}

// Run executes the command line, draining stdout and stderr through two
// concurrent relays while the child runs. It blocks until both streams
// reach EOF and the child has been waited on. Non-zero child exit codes
// are data in the Result, not errors; an error return means the run
// itself failed (a SpawnError, or a relay I/O fault).
func (r *Runner) Run(command string) (*Result, error) {
	cmd := shellCommand(command)
	cmd.Stdin = r.Stdin

	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &SpawnError{Command: command, Err: err}
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, &SpawnError{Command: command, Err: err}
	}
	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Command: command, Err: err}
	}

	// Both pipes must be drained in parallel with the child: a child
	// blocked writing to one full pipe while we drain only the other
	// would deadlock.
	outCh := make(chan relayOutcome, 1)
	errCh := make(chan relayOutcome, 1)
	go func() {
		data, rerr := Relay(outPipe, r.Stdout, r.Tee)
		outCh <- relayOutcome{data: data, err: rerr}
	}()
	go func() {
		data, rerr := Relay(errPipe, r.Stderr, r.Tee)
		errCh <- relayOutcome{data: data, err: rerr}
	}()

	outRes := <-outCh
	errRes := <-errCh

	// Wait even when a relay faulted so the child is always reaped.
	waitErr := cmd.Wait()

	if outRes.err != nil {
		return nil, fmt.Errorf("relay stdout: %w", outRes.err)
	}
	if errRes.err != nil {
		return nil, fmt.Errorf("relay stderr: %w", errRes.err)
	}

	res := &Result{Stdout: outRes.data, Stderr: errRes.data}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return nil, fmt.Errorf("wait for command: %w", waitErr)
		}
		if signaled(exitErr.ProcessState) {
			res.Signaled = true
		} else {
			res.ExitCode = exitErr.ExitCode()
		}
	}
	return res, nil
}
