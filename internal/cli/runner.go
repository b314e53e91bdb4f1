// Package cli dispatches subcommands onto the controllers. It is a thin
// shell: all task state and write policy lives in the controllers.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/towtu/genesis-frontend/internal/api"
	"github.com/towtu/genesis-frontend/internal/controller"
	"github.com/towtu/genesis-frontend/internal/guard"
	"github.com/towtu/genesis-frontend/internal/model"
	"github.com/towtu/genesis-frontend/internal/mutation"
	"github.com/towtu/genesis-frontend/internal/notify"
	"github.com/towtu/genesis-frontend/internal/session"
)

type App struct {
	Sessions session.Store
	Client   *api.Client
	Exec     *mutation.Executor
	List     *controller.ListController
	Create   *controller.CreateController
	Terminal *notify.Terminal
	Logger   *slog.Logger
	Out      io.Writer
}

// Run dispatches one subcommand and returns an exit code (0 ok, 1 error,
// 2 usage).
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.printHelp()
		return 2
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		a.printHelp()
		return 0
	case "login":
		return a.doLogin(ctx, rest)
	case "register":
		return a.doRegister(ctx, rest)
	case "logout":
		return a.doLogout()
	case "whoami":
		return a.doWhoami()
	case "ls":
		return a.doList(ctx, "")
	case "search":
		if len(rest) != 1 {
			a.usage("usage: towtu search <query>")
			return 2
		}
		return a.doList(ctx, rest[0])
	case "add":
		return a.doAdd(ctx, rest)
	case "edit":
		return a.doEdit(ctx, rest)
	case "done":
		return a.withTask(ctx, rest, "done", func(task model.Task) bool {
			return a.List.ToggleCompleted(ctx, task)
		})
	case "important":
		return a.withTask(ctx, rest, "important", func(task model.Task) bool {
			return a.List.ToggleImportant(ctx, task)
		})
	case "rm":
		return a.withTask(ctx, rest, "rm", func(task model.Task) bool {
			return a.List.Remove(ctx, task)
		})
	case "dashboard":
		return a.doDashboard(ctx)
	}

	a.usage("unknown subcommand: " + cmd)
	a.printHelp()
	return 2
}

func (a *App) requireAuth() bool {
	decision := guard.RequireAuthenticated(a.Sessions)
	if !decision.Allow {
		a.Terminal.Error("not logged in")
		a.Terminal.Go(decision.RedirectTo)
		return false
	}
	return true
}

func (a *App) requirePublic() bool {
	decision := guard.RequirePublic(a.Sessions)
	if !decision.Allow {
		a.Terminal.Error("already logged in")
		a.Terminal.Go(decision.RedirectTo)
		return false
	}
	return true
}

func (a *App) doLogin(ctx context.Context, args []string) int {
	if len(args) != 2 {
		a.usage("usage: towtu login <email> <password>")
		return 2
	}
	if !a.requirePublic() {
		return 1
	}

	_, ok := mutation.Run(a.Exec, ctx,
		func(ctx context.Context) (api.TokenPair, error) {
			return a.Client.Login(ctx, args[0], args[1])
		},
		mutation.Config[api.TokenPair]{
			SuccessMessage: "Login successful! Redirecting to dashboard...",
			RedirectPath:   guard.DashboardPath,
			OnSuccess: func(pair api.TokenPair) {
				sess := session.Session{AccessToken: pair.Access, RefreshToken: pair.Refresh}
				if err := a.Sessions.Set(sess); err != nil {
					a.Logger.Error("persist session failed", "error", err)
				}
			},
		},
	)
	if !ok {
		return 1
	}
	return 0
}

func (a *App) doRegister(ctx context.Context, args []string) int {
	if len(args) != 5 {
		a.usage("usage: towtu register <email> <username> <password> <first-name> <last-name>")
		return 2
	}
	if !a.requirePublic() {
		return 1
	}

	input := api.RegisterInput{
		Email:     args[0],
		Username:  args[1],
		Password:  args[2],
		FirstName: args[3],
		LastName:  args[4],
	}
	_, ok := mutation.Run(a.Exec, ctx,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, a.Client.Register(ctx, input)
		},
		mutation.Config[struct{}]{
			SuccessMessage: "Registration successful! Redirecting to login...",
			RedirectPath:   guard.LoginPath,
		},
	)
	if !ok {
		return 1
	}
	return 0
}

func (a *App) doLogout() int {
	if err := a.Sessions.Clear(); err != nil {
		a.Terminal.Error("logout failed: " + err.Error())
		return 1
	}
	a.Terminal.Success("Logged out.")
	a.Terminal.Go(guard.LoginPath)
	return 0
}

func (a *App) doWhoami() int {
	sess := a.Sessions.Current()
	if sess.Empty() {
		a.Terminal.Error("not logged in")
		return 1
	}
	claims, err := sess.AccessClaims()
	if err != nil {
		a.Terminal.Error("cannot read access token: " + err.Error())
		return 1
	}
	fmt.Fprintf(a.Out, "subject: %s\n", claims.Subject)
	if claims.ExpiresAt != nil {
		fmt.Fprintf(a.Out, "token expires: %s\n", claims.ExpiresAt.Local())
	}
	return 0
}

func (a *App) doList(ctx context.Context, query string) int {
	if !a.requireAuth() {
		return 1
	}
	a.List.SetSearch(query)
	if err := a.List.Refresh(ctx); err != nil {
		a.Terminal.Error(err.Error())
		return 1
	}
	a.printTasks(a.List.FilteredTasks())
	return 0
}

func (a *App) doAdd(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	due := fs.String("due", "", "due date, e.g. 2025-01-31T10:00")
	status := fs.String("status", string(model.StatusNotStarted), "not_started|in_progress|completed")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		a.usage("usage: towtu add [-due <date>] [-status <status>] <title>")
		return 2
	}
	if !a.requireAuth() {
		return 1
	}
	if !model.Status(*status).IsValid() {
		a.usage("invalid status: " + *status)
		return 2
	}

	a.Create.Enable()
	draft := a.Create.Draft()
	draft.Title = fs.Arg(0)
	draft.DueDate = *due
	draft.Status = model.Status(*status)

	if err := a.Create.Submit(ctx); err != nil {
		a.Terminal.Error(err.Error())
		a.Create.Cancel()
		return 1
	}
	a.printTasks(a.List.FilteredTasks())
	return 0
}

func (a *App) doEdit(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	title := fs.String("title", "", "new title")
	due := fs.String("due", "", "new due date")
	status := fs.String("status", "", "new status")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		a.usage("usage: towtu edit [-title <t>] [-due <d>] [-status <s>] <id>")
		return 2
	}

	return a.withTask(ctx, fs.Args(), "edit", func(task model.Task) bool {
		a.List.BeginEdit(task)
		edit := a.List.Editing()
		if *title != "" {
			edit.Title = *title
		}
		if *due != "" {
			edit.DueDate = *due
		}
		if *status != "" {
			if !model.Status(*status).IsValid() {
				a.Terminal.Error("invalid status: " + *status)
				a.List.CancelEdit()
				return false
			}
			edit.Status = model.Status(*status)
		}
		if err := a.List.SaveEdit(ctx); err != nil {
			a.Terminal.Error(err.Error())
			a.List.CancelEdit()
			return false
		}
		return true
	})
}

// withTask refreshes the list, resolves the ID argument against it and
// hands the task to fn.
func (a *App) withTask(ctx context.Context, args []string, cmd string, fn func(model.Task) bool) int {
	if len(args) != 1 {
		a.usage(fmt.Sprintf("usage: towtu %s <id>", cmd))
		return 2
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		a.usage(cmd + ": not a task id: " + args[0])
		return 2
	}
	if !a.requireAuth() {
		return 1
	}
	if err := a.List.Refresh(ctx); err != nil {
		a.Terminal.Error(err.Error())
		return 1
	}

	var task *model.Task
	for _, t := range a.List.Tasks() {
		if t.ID == id {
			task = &t
			break
		}
	}
	if task == nil {
		a.Terminal.Error(fmt.Sprintf("no task with id %d", id))
		return 1
	}
	if !fn(*task) {
		return 1
	}
	a.printTasks(a.List.FilteredTasks())
	return 0
}

func (a *App) doDashboard(ctx context.Context) int {
	if !a.requireAuth() {
		return 1
	}
	raw, err := a.Client.Dashboard(ctx)
	if err != nil {
		a.Terminal.Error(err.Error())
		return 1
	}
	fmt.Fprintln(a.Out, string(raw))
	return 0
}

func (a *App) printTasks(tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(a.Out, "no tasks")
		return
	}
	for _, t := range tasks {
		box := " "
		if t.Completed {
			box = "x"
		}
		mark := ""
		if t.MarkAsImportant {
			mark = " !"
		}
		due := ""
		if t.DueDate != nil && *t.DueDate != "" {
			due = "  due " + *t.DueDate
		}
		fmt.Fprintf(a.Out, "%4d [%s]%s %s (%s)%s\n", t.ID, box, mark, t.Title, t.Status, due)
	}
}

func (a *App) usage(msg string) {
	fmt.Fprintln(a.Out, msg)
}

func (a *App) printHelp() {
	fmt.Fprint(a.Out, `towtu - task client

Usage:
  towtu <subcommand> [args]

Subcommands:
  login <email> <password>       Log in and store the session
  register <email> <username> <password> <first> <last>
  logout                         Clear the stored session
  whoami                         Show the current session's subject
  ls                             List tasks
  search <query>                 List tasks matching the query
  add [-due <d>] [-status <s>] <title>
  edit [-title <t>] [-due <d>] [-status <s>] <id>
  done <id>                      Toggle completion
  important <id>                 Toggle importance
  rm <id>                        Delete (asks for confirmation)
  dashboard                      Print the dashboard summary
`)
}
