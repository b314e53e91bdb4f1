package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/towtu/genesis-frontend/internal/api"
	"github.com/towtu/genesis-frontend/internal/model"
)

// RESTTaskRepository maps the repository contract onto the backend's task
// resource. Errors from the transport propagate unchanged; there are no
// retries and no local caching.
type RESTTaskRepository struct {
	client *api.Client
}

func NewRESTTask(client *api.Client) *RESTTaskRepository {
	return &RESTTaskRepository{client: client}
}

func (r *RESTTaskRepository) List(ctx context.Context, params ListParams) ([]model.Task, error) {
	query := url.Values{}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Completed != nil {
		query.Set("completed", strconv.FormatBool(*params.Completed))
	}

	var tasks []model.Task
	if err := r.client.Do(ctx, http.MethodGet, "/todo/", query, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *RESTTaskRepository) Get(ctx context.Context, id int) (model.Task, error) {
	var task model.Task
	if err := r.client.Do(ctx, http.MethodGet, detailPath(id), nil, nil, &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (r *RESTTaskRepository) Create(ctx context.Context, input CreateTaskInput) (model.Task, error) {
	body := map[string]any{
		"title":     input.Title,
		"completed": false,
		"due_date":  input.DueDate,
		"status":    input.Status,
		"date":      input.Date,
	}
	if input.Status == "" {
		body["status"] = model.StatusNotStarted
	}

	var task model.Task
	if err := r.client.Do(ctx, http.MethodPost, "/todo/", nil, body, &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (r *RESTTaskRepository) Update(ctx context.Context, id int, input UpdateTaskInput) (model.Task, error) {
	body := map[string]any{
		"due_date": input.DueDate,
		"date":     input.Date,
	}
	if input.Title != nil {
		body["title"] = *input.Title
	}
	if input.Completed != nil {
		body["completed"] = *input.Completed
	}
	if input.Status != nil {
		body["status"] = *input.Status
	}

	var task model.Task
	if err := r.client.Do(ctx, http.MethodPatch, detailPath(id), nil, body, &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (r *RESTTaskRepository) Delete(ctx context.Context, id int) error {
	return r.client.Do(ctx, http.MethodDelete, detailPath(id), nil, nil, nil)
}

func (r *RESTTaskRepository) MarkImportant(ctx context.Context, id int) (model.Task, error) {
	var task model.Task
	if err := r.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/todo-important/%d/", id), nil, nil, &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (r *RESTTaskRepository) MarkCompleted(ctx context.Context, id int) (model.Task, error) {
	var task model.Task
	if err := r.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/todo-completed/%d/", id), nil, nil, &task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func detailPath(id int) string {
	return fmt.Sprintf("/todo-detail/%d/", id)
}
