package app

import (
	"context"
	"sync"
	"time"

	"leetcode-discord-bot/internal/domain/ports"
)

const shutdownGrace = 5 * time.Second

// Runner is a single notification run.
type Runner interface {
	Run(ctx context.Context) error
}

// App manages the lifecycle of the gateway session and the one-shot digest run.
type App struct {
	gateway      ports.Gateway
	digest       Runner
	logger       ports.Logger
	exitAfterRun bool
}

// Options controls App lifecycle behaviour.
type Options struct {
	// ExitAfterRun makes Run return once the digest has completed instead of
	// keeping the session open until the context is cancelled.
	ExitAfterRun bool
}

// New constructs an App instance.
func New(gateway ports.Gateway, digest Runner, logger ports.Logger, opts Options) *App {
	return &App{
		gateway:      gateway,
		digest:       digest,
		logger:       logger,
		exitAfterRun: opts.ExitAfterRun,
	}
}

// Run connects the session and executes the digest once, when the session
// becomes ready. It returns when ctx is cancelled, or after the digest when
// ExitAfterRun is set. In that mode the digest error is returned.
func (a *App) Run(ctx context.Context) error {
	var (
		once    sync.Once
		started = make(chan struct{})
		done    = make(chan struct{})
		runErr  error
	)

	a.gateway.OnReady(func() {
		once.Do(func() {
			close(started)
			defer close(done)
			if runErr = a.digest.Run(ctx); runErr != nil {
				a.logger.Error(ctx, "challenge digest run failed", "error", runErr)
			}
		})
	})
	a.gateway.AcknowledgeInteractions()

	a.logger.Info(ctx, "connecting to discord")
	if err := a.gateway.Open(); err != nil {
		return err
	}
	defer a.close()

	if a.exitAfterRun {
		select {
		case <-done:
			return runErr
		case <-ctx.Done():
		}
	} else {
		<-ctx.Done()
	}

	a.waitForRun(started, done)
	return nil
}

// waitForRun gives an in-flight digest a bounded grace period to finish.
func (a *App) waitForRun(started, done <-chan struct{}) {
	select {
	case <-started:
	default:
		return
	}

	select {
	case <-done:
	case <-time.After(shutdownGrace):
		a.logger.Warn(context.Background(), "digest still running at shutdown")
	}
}

func (a *App) close() {
	if err := a.gateway.Close(); err != nil {
		a.logger.Error(context.Background(), "failed to close discord session", "error", err)
		return
	}
	a.logger.Info(context.Background(), "discord session closed")
}
