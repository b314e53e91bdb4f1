package controller_test

import (
	"context"

	"github.com/towtu/genesis-frontend/internal/model"
	"github.com/towtu/genesis-frontend/internal/repository"
)

// fakeTaskRepo implements repository.TaskRepository with per-call hooks
// and call counters.
type fakeTaskRepo struct {
	listFn          func(ctx context.Context, params repository.ListParams) ([]model.Task, error)
	getFn           func(ctx context.Context, id int) (model.Task, error)
	createFn        func(ctx context.Context, input repository.CreateTaskInput) (model.Task, error)
	updateFn        func(ctx context.Context, id int, input repository.UpdateTaskInput) (model.Task, error)
	deleteFn        func(ctx context.Context, id int) error
	markImportantFn func(ctx context.Context, id int) (model.Task, error)
	markCompletedFn func(ctx context.Context, id int) (model.Task, error)

	listCalls          int
	createCalls        int
	updateCalls        int
	deleteCalls        int
	markImportantCalls int
}

func (f *fakeTaskRepo) List(ctx context.Context, params repository.ListParams) ([]model.Task, error) {
	f.listCalls++
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, params)
}

func (f *fakeTaskRepo) Get(ctx context.Context, id int) (model.Task, error) {
	if f.getFn == nil {
		return model.Task{}, nil
	}
	return f.getFn(ctx, id)
}

func (f *fakeTaskRepo) Create(ctx context.Context, input repository.CreateTaskInput) (model.Task, error) {
	f.createCalls++
	if f.createFn == nil {
		return model.Task{}, nil
	}
	return f.createFn(ctx, input)
}

func (f *fakeTaskRepo) Update(ctx context.Context, id int, input repository.UpdateTaskInput) (model.Task, error) {
	f.updateCalls++
	if f.updateFn == nil {
		return model.Task{}, nil
	}
	return f.updateFn(ctx, id, input)
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id int) error {
	f.deleteCalls++
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

func (f *fakeTaskRepo) MarkImportant(ctx context.Context, id int) (model.Task, error) {
	f.markImportantCalls++
	if f.markImportantFn == nil {
		return model.Task{}, nil
	}
	return f.markImportantFn(ctx, id)
}

func (f *fakeTaskRepo) MarkCompleted(ctx context.Context, id int) (model.Task, error) {
	if f.markCompletedFn == nil {
		return model.Task{}, nil
	}
	return f.markCompletedFn(ctx, id)
}

type fakeNotifier struct {
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *fakeNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

type fakeNavigator struct {
	paths []string
}

func (n *fakeNavigator) Go(path string) { n.paths = append(n.paths, path) }

type fakeConfirmer struct {
	answer  bool
	prompts []string
}

func (c *fakeConfirmer) Confirm(prompt string) bool {
	c.prompts = append(c.prompts, prompt)
	return c.answer
}

func strPtr(s string) *string { return &s }
