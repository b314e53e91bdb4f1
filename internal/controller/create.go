package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/towtu/genesis-frontend/internal/model"
	"github.com/towtu/genesis-frontend/internal/mutation"
	"github.com/towtu/genesis-frontend/internal/repository"
)

// dueDateLayouts are accepted draft formats, tried in order. The first is
// what a datetime-local input produces.
var dueDateLayouts = []string{
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
}

// Draft is the unsaved new task.
type Draft struct {
	Title   string
	DueDate string
	Status  model.Status
}

// CreateController owns the new-task draft and its validation policy.
type CreateController struct {
	repo    repository.TaskRepository
	exec    *mutation.Executor
	refresh func(context.Context) error
	now     func() time.Time
	logger  *slog.Logger

	draft   Draft
	enabled bool
}

// NewCreateController wires the creation flow. refresh is invoked after a
// successful create, typically the list controller's Refresh. now may be
// nil for the wall clock.
func NewCreateController(repo repository.TaskRepository, exec *mutation.Executor, refresh func(context.Context) error, now func() time.Time, logger *slog.Logger) *CreateController {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CreateController{
		repo:    repo,
		exec:    exec,
		refresh: refresh,
		now:     now,
		logger:  logger,
		draft:   defaultDraft(),
	}
}

func defaultDraft() Draft {
	return Draft{Status: model.StatusNotStarted}
}

func (c *CreateController) Enable() {
	c.enabled = true
}

// Cancel closes the form and resets the draft to defaults.
func (c *CreateController) Cancel() {
	c.draft = defaultDraft()
	c.enabled = false
}

func (c *CreateController) Enabled() bool {
	return c.enabled
}

// Draft returns the live draft for the caller to fill in.
func (c *CreateController) Draft() *Draft {
	return &c.draft
}

// Submit validates the draft and creates the task. Validation failures
// return ErrInvalidInput-wrapped errors and issue no network call; a
// rejected create surfaces through the notifier and keeps the draft.
func (c *CreateController) Submit(ctx context.Context) error {
	if strings.TrimSpace(c.draft.Title) == "" {
		return fmt.Errorf("%w: title required", ErrInvalidInput)
	}
	if c.draft.DueDate != "" {
		due, err := parseDueDate(c.draft.DueDate)
		if err != nil || due.Before(c.now()) {
			return fmt.Errorf("%w: due date invalid", ErrInvalidInput)
		}
	}

	input := repository.CreateTaskInput{
		Title:  c.draft.Title,
		Status: c.draft.Status,
	}
	if c.draft.DueDate != "" {
		input.DueDate = &c.draft.DueDate
	}

	mutation.Run(c.exec, ctx,
		func(ctx context.Context) (model.Task, error) {
			return c.repo.Create(ctx, input)
		},
		mutation.Config[model.Task]{
			ErrorMessage: "Could not create the task.",
			OnSuccess: func(model.Task) {
				c.draft = defaultDraft()
				c.enabled = false
				if c.refresh != nil {
					if err := c.refresh(ctx); err != nil {
						c.logger.Warn("refresh after create failed", "error", err)
					}
				}
			},
		},
	)
	return nil
}

func parseDueDate(raw string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized due date %q", raw)
}
