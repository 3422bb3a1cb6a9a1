// Package lifecycle sequences a supervised run: started notification,
// execution, terminal notification, and exit-code mapping.
package lifecycle

import (
	"fmt"
	"log/slog"

	"github.com/loykin/sentinel/internal/runner"
	"github.com/loykin/sentinel/internal/tailbuf"
)

// Process exit codes for outcomes that carry no child exit code. A
// normally exiting child's own code is passed through unchanged.
const (
	ExitOK        = 0
	ExitRunFailed = 1   // spawn failure or output-relay fault
	ExitUsage     = 2   // bad arguments or missing configuration
	ExitSignaled  = 125 // child terminated by a signal
)

// tailMax bounds how much of each captured stream a terminal
// notification carries.
const tailMax = 1500

// Notifier is the producer-side slice of the dispatcher.
type Notifier interface {
	Enqueue(msg string)
}

// Supervisor drives one command through its lifecycle. It enqueues
// exactly one started and one terminal notification on every path; the
// caller owns dispatcher shutdown.
type Supervisor struct {
	runner   *runner.Runner
	notifier Notifier
	logger   *slog.Logger
}

func New(r *runner.Runner, n Notifier, logger *slog.Logger) *Supervisor {
	return &Supervisor{runner: r, notifier: n, logger: logger}
}

// Run executes the command and returns the process exit code mandated
// by its outcome.
func (s *Supervisor) Run(command string) int {
	s.notifier.Enqueue("Started\n" + command)

	res, err := s.runner.Run(command)
	if err != nil {
		s.notifier.Enqueue(fmt.Sprintf("Failed to execute command: %v", err))
		s.logger.Error("failed to execute command", "command", command, "error", err)
		return ExitRunFailed
	}

	outTail := tailbuf.Tail(res.Stdout, tailMax)
	errTail := tailbuf.Tail(res.Stderr, tailMax)

	switch {
	case res.Signaled:
		s.notifier.Enqueue(fmt.Sprintf("Process terminated by signal.\nStdout:\n%s\nStderr:\n%s", outTail, errTail))
		s.logger.Info("process terminated by signal", "command", command)
		return ExitSignaled
	case res.ExitCode == 0:
		s.notifier.Enqueue(fmt.Sprintf("Finished successfully with exit code 0.\nStdout:\n%s\nStderr:\n%s", outTail, errTail))
		s.logger.Info("command finished successfully", "command", command)
		return ExitOK
	default:
		s.notifier.Enqueue(fmt.Sprintf("Failed with exit code: %d.\nStdout:\n%s\nStderr:\n%s", res.ExitCode, outTail, errTail))
		s.logger.Info("command failed", "command", command, "exit_code", res.ExitCode)
		return res.ExitCode
	}
}
