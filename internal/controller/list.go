package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/towtu/genesis-frontend/internal/model"
	"github.com/towtu/genesis-frontend/internal/mutation"
	"github.com/towtu/genesis-frontend/internal/repository"
)

// Confirmer blocks until the user accepts or declines a destructive
// action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// EditSession is the draft state for in-place editing of one task. The
// task reference is by ID only: if the task disappears from a refresh the
// session is cancelled rather than left dangling.
type EditSession struct {
	TaskID  int
	Title   string
	DueDate string
	Status  model.Status
}

// ListController owns the cached task list, the search filter and the
// single edit session. All writes go through the mutation executor and
// re-fetch the full list on success rather than patching in place, so the
// cache never drifts from what the server holds.
type ListController struct {
	repo    repository.TaskRepository
	exec    *mutation.Executor
	confirm Confirmer
	logger  *slog.Logger

	tasks  []model.Task
	edit   *EditSession
	search string
}

func NewListController(repo repository.TaskRepository, exec *mutation.Executor, confirm Confirmer, logger *slog.Logger) *ListController {
	if logger == nil {
		logger = slog.Default()
	}
	return &ListController{repo: repo, exec: exec, confirm: confirm, logger: logger}
}

// Refresh replaces the cached list wholesale. On failure the previous
// list stays untouched.
func (c *ListController) Refresh(ctx context.Context) error {
	tasks, err := c.repo.List(ctx, repository.ListParams{Search: c.search})
	if err != nil {
		return fmt.Errorf("refresh tasks: %w", err)
	}
	c.tasks = tasks

	if c.edit != nil && !c.hasTask(c.edit.TaskID) {
		c.logger.Debug("edit target gone after refresh, cancelling edit", "task_id", c.edit.TaskID)
		c.edit = nil
	}
	return nil
}

func (c *ListController) hasTask(id int) bool {
	for _, t := range c.tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (c *ListController) Tasks() []model.Task {
	return c.tasks
}

func (c *ListController) SetSearch(query string) {
	c.search = query
}

func (c *ListController) Search() string {
	return c.search
}

// FilteredTasks applies the search filter as a case-insensitive substring
// match on the title. An empty filter matches everything. This runs
// client-side even when the server already filtered, so the result set
// does not depend on which the server chose to honor.
func (c *ListController) FilteredTasks() []model.Task {
	if c.search == "" {
		return c.tasks
	}
	needle := strings.ToLower(c.search)
	var out []model.Task
	for _, t := range c.tasks {
		if strings.Contains(strings.ToLower(t.Title), needle) {
			out = append(out, t)
		}
	}
	return out
}

// BeginEdit opens an edit session seeded from the task's current values.
// An already-open session for another task is replaced.
func (c *ListController) BeginEdit(task model.Task) {
	due := ""
	if task.DueDate != nil {
		due = *task.DueDate
	}
	status := task.Status
	if !status.IsValid() {
		status = model.StatusNotStarted
	}
	c.edit = &EditSession{
		TaskID:  task.ID,
		Title:   task.Title,
		DueDate: due,
		Status:  status,
	}
}

// Editing returns the live edit session, or nil when none is open.
// Callers mutate the draft fields directly.
func (c *ListController) Editing() *EditSession {
	return c.edit
}

func (c *ListController) CancelEdit() {
	c.edit = nil
}

// SaveEdit validates the draft and patches the task. The returned error
// covers validation only; a rejected write surfaces through the notifier
// and leaves the session open.
func (c *ListController) SaveEdit(ctx context.Context) error {
	if c.edit == nil {
		return nil
	}
	if strings.TrimSpace(c.edit.Title) == "" {
		return fmt.Errorf("%w: title required", ErrInvalidInput)
	}

	edit := c.edit
	input := repository.UpdateTaskInput{
		Title:  &edit.Title,
		Status: &edit.Status,
	}
	if edit.DueDate != "" {
		input.DueDate = &edit.DueDate
	}

	mutation.Run(c.exec, ctx,
		func(ctx context.Context) (model.Task, error) {
			return c.repo.Update(ctx, edit.TaskID, input)
		},
		mutation.Config[model.Task]{
			ErrorMessage: "Could not save the task.",
			OnSuccess: func(model.Task) {
				c.edit = nil
				c.refreshAfterWrite(ctx)
			},
		},
	)
	return nil
}

// ToggleCompleted flips completion with the status field moving in
// lockstep, carrying the task's current due date in the same request so
// the toggle never clears it.
func (c *ListController) ToggleCompleted(ctx context.Context, task model.Task) bool {
	completed, status := task.ToggledCompletion()
	input := repository.UpdateTaskInput{
		Completed: &completed,
		Status:    &status,
		DueDate:   task.DueDate,
	}

	_, ok := mutation.Run(c.exec, ctx,
		func(ctx context.Context) (model.Task, error) {
			return c.repo.Update(ctx, task.ID, input)
		},
		mutation.Config[model.Task]{
			ErrorMessage: "Could not update the task.",
			OnSuccess: func(model.Task) {
				c.refreshAfterWrite(ctx)
			},
		},
	)
	return ok
}

// ToggleImportant re-asserts server-side importance. Idempotent from the
// client's side: the server owns the flag, the client just re-syncs.
func (c *ListController) ToggleImportant(ctx context.Context, task model.Task) bool {
	_, ok := mutation.Run(c.exec, ctx,
		func(ctx context.Context) (model.Task, error) {
			return c.repo.MarkImportant(ctx, task.ID)
		},
		mutation.Config[model.Task]{
			ErrorMessage: "Could not mark the task as important.",
			OnSuccess: func(model.Task) {
				c.refreshAfterWrite(ctx)
			},
		},
	)
	return ok
}

// Remove deletes the task after an explicit confirmation. A decline
// issues no call at all.
func (c *ListController) Remove(ctx context.Context, task model.Task) bool {
	if !c.confirm.Confirm(fmt.Sprintf("Delete %q? You will not be able to recover it.", task.Title)) {
		return false
	}

	_, ok := mutation.Run(c.exec, ctx,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, c.repo.Delete(ctx, task.ID)
		},
		mutation.Config[struct{}]{
			SuccessMessage: "Task deleted.",
			ErrorMessage:   "Failed to delete the task.",
			OnSuccess: func(struct{}) {
				c.refreshAfterWrite(ctx)
			},
		},
	)
	return ok
}

func (c *ListController) refreshAfterWrite(ctx context.Context) {
	if err := c.Refresh(ctx); err != nil {
		c.logger.Warn("refresh after write failed", "error", err)
	}
}
