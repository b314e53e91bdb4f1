// Package mutation funnels every list-mutating write through one
// lifecycle: run the operation, then notify, navigate and call back
// uniformly regardless of which write it was.
package mutation

import (
	"context"
	"log/slog"
)

// Notifier surfaces operation outcomes to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Navigator moves the user to another path after a successful write.
type Navigator interface {
	Go(path string)
}

// Config declares the side effects of one write.
type Config[T any] struct {
	OnSuccess      func(T)
	OnError        func(error)
	SuccessMessage string
	ErrorMessage   string
	RedirectPath   string
}

type Executor struct {
	notifier  Notifier
	navigator Navigator
	logger    *slog.Logger
}

func NewExecutor(notifier Notifier, navigator Navigator, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{notifier: notifier, navigator: navigator, logger: logger}
}

// Run executes op and applies the configured side effects. A failing op
// is reported through the notifier and swallowed here: the returned bool
// is the only success signal, and callers needing the error itself must
// take it via OnError.
func Run[T any](e *Executor, ctx context.Context, op func(context.Context) (T, error), cfg Config[T]) (T, bool) {
	result, err := op(ctx)
	if err != nil {
		msg := cfg.ErrorMessage
		if msg == "" {
			msg = err.Error()
		}
		e.logger.Warn("mutation failed", "error", err)
		e.notifier.Error(msg)
		if cfg.OnError != nil {
			cfg.OnError(err)
		}
		var zero T
		return zero, false
	}

	if cfg.SuccessMessage != "" {
		e.notifier.Success(cfg.SuccessMessage)
	}
	if cfg.RedirectPath != "" {
		e.navigator.Go(cfg.RedirectPath)
	}
	if cfg.OnSuccess != nil {
		cfg.OnSuccess(result)
	}
	return result, true
}
