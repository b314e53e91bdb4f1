package repository

import (
	"context"

	"github.com/towtu/genesis-frontend/internal/model"
)

// ListParams are forwarded to the server as query parameters. Server-side
// filtering is an optimization only; the list controller re-applies the
// search filter to whatever comes back.
type ListParams struct {
	Search    string
	Completed *bool
}

type CreateTaskInput struct {
	Title   string
	DueDate *string
	Status  model.Status
	Date    *string
}

// UpdateTaskInput is a partial patch. Nil Title/Completed/Status fields
// are left out of the request entirely; DueDate and Date are always sent,
// as null when unset, matching what the backend expects.
type UpdateTaskInput struct {
	Title     *string
	Completed *bool
	Status    *model.Status
	DueDate   *string
	Date      *string
}

type TaskRepository interface {
	List(ctx context.Context, params ListParams) ([]model.Task, error)
	Get(ctx context.Context, id int) (model.Task, error)
	Create(ctx context.Context, input CreateTaskInput) (model.Task, error)
	Update(ctx context.Context, id int, input UpdateTaskInput) (model.Task, error)
	Delete(ctx context.Context, id int) error
	MarkImportant(ctx context.Context, id int) (model.Task, error)
	MarkCompleted(ctx context.Context, id int) (model.Task, error)
}
