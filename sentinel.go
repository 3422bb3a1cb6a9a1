// Package sentinel supervises a single shell command: it mirrors the
// command's output to the invoking terminal while capturing it, and
// reports the command's lifecycle to a Telegram chat.
package sentinel

import (
	"io"

	"github.com/loykin/sentinel/internal/config"
	"github.com/loykin/sentinel/internal/lifecycle"
	"github.com/loykin/sentinel/internal/logger"
	"github.com/loykin/sentinel/internal/notify"
	"github.com/loykin/sentinel/internal/runner"
)

// Re-export core types for embedding consumers.
// These are aliases so conversions are zero-cost.

type Config = config.Config

type Result = runner.Result

// Exit codes mapped from run outcomes.
const (
	ExitOK        = lifecycle.ExitOK
	ExitRunFailed = lifecycle.ExitRunFailed
	ExitUsage     = lifecycle.ExitUsage
	ExitSignaled  = lifecycle.ExitSignaled
)

// LoadConfig reads configuration from the environment.
func LoadConfig() (*Config, error) { return config.FromEnv() }

// Sentinel ties the runner, dispatcher and orchestrator together for
// one supervised run.
type Sentinel struct {
	disp   *notify.Dispatcher
	sup    *lifecycle.Supervisor
	closer io.Closer
}

// New wires a Sentinel from cfg. The instance is single-use: exactly
// one call to Run, after which the dispatcher has shut down.
func New(cfg *Config) *Sentinel {
	log, closer := logger.New(logger.Config{
		Level: cfg.LogLevel,
		Color: !cfg.NoColor,
		File:  cfg.LogFile,
	})
	tg := notify.NewTelegram(cfg.APIBase, cfg.BotToken, cfg.ChatID, cfg.HTTPTimeout)
	disp := notify.NewDispatcher(tg, log)
	return &Sentinel{
		disp:   disp,
		sup:    lifecycle.New(runner.New(), disp, log),
		closer: closer,
	}
}

// Run supervises command and returns the process exit code. The
// dispatcher is drained before Run returns so both notifications get a
// delivery attempt, whatever the outcome.
func (s *Sentinel) Run(command string) int {
	defer func() {
		s.disp.Shutdown()
		if s.closer != nil {
			_ = s.closer.Close()
		}
	}()
	return s.sup.Run(command)
}
