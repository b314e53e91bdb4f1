package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/towtu/genesis-frontend/internal/api"
	"github.com/towtu/genesis-frontend/internal/cli"
	"github.com/towtu/genesis-frontend/internal/config"
	"github.com/towtu/genesis-frontend/internal/controller"
	"github.com/towtu/genesis-frontend/internal/mutation"
	"github.com/towtu/genesis-frontend/internal/notify"
	"github.com/towtu/genesis-frontend/internal/repository"
	"github.com/towtu/genesis-frontend/internal/session"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		return 1
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.ParseLogLevel(),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions, err := session.OpenSQLite(cfg.StateDBPath)
	if err != nil {
		logger.Error("open session store", "error", err, "path", cfg.StateDBPath)
		return 1
	}
	defer sessions.Close()

	client := api.NewClient(cfg.APIBaseURL, sessions, cfg.HTTPTimeout, logger)
	repo := repository.NewRESTTask(client)

	terminal := notify.NewTerminal(os.Stdout, os.Stdin)
	exec := mutation.NewExecutor(terminal, terminal, logger)

	list := controller.NewListController(repo, exec, terminal, logger)
	create := controller.NewCreateController(repo, exec, list.Refresh, nil, logger)

	app := &cli.App{
		Sessions: sessions,
		Client:   client,
		Exec:     exec,
		List:     list,
		Create:   create,
		Terminal: terminal,
		Logger:   logger,
		Out:      os.Stdout,
	}
	return app.Run(ctx, args)
}
