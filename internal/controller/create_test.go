package controller_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/towtu/genesis-frontend/internal/controller"
	"github.com/towtu/genesis-frontend/internal/model"
	"github.com/towtu/genesis-frontend/internal/mutation"
	"github.com/towtu/genesis-frontend/internal/repository"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

func newCreateController(repo *fakeTaskRepo, refresh func(context.Context) error) (*controller.CreateController, *fakeNotifier) {
	notifier := &fakeNotifier{}
	exec := mutation.NewExecutor(notifier, &fakeNavigator{}, nil)
	now := func() time.Time { return testNow }
	return controller.NewCreateController(repo, exec, refresh, now, nil), notifier
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		dueDate string
	}{
		{"empty title", "", ""},
		{"whitespace title", "   \t", ""},
		{"due date in the past", "Buy milk", "2025-06-14T10:00"},
		{"unparseable due date", "Buy milk", "tomorrow-ish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTaskRepo{}
			c, _ := newCreateController(repo, nil)
			c.Enable()
			c.Draft().Title = tt.title
			c.Draft().DueDate = tt.dueDate

			err := c.Submit(context.Background())
			if !errors.Is(err, controller.ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
			if repo.createCalls != 0 {
				t.Errorf("create calls = %d, validation must block the write", repo.createCalls)
			}
		})
	}
}

func TestSubmitSuccessResetsAndRefreshes(t *testing.T) {
	var gotInput repository.CreateTaskInput
	repo := &fakeTaskRepo{
		createFn: func(ctx context.Context, input repository.CreateTaskInput) (model.Task, error) {
			gotInput = input
			return model.Task{ID: 9, Title: input.Title, Status: model.StatusNotStarted}, nil
		},
	}
	refreshes := 0
	c, _ := newCreateController(repo, func(ctx context.Context) error {
		refreshes++
		return nil
	})

	c.Enable()
	c.Draft().Title = "Buy milk"
	c.Draft().DueDate = "2025-06-16T09:00"

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if gotInput.Title != "Buy milk" {
		t.Errorf("title = %q", gotInput.Title)
	}
	if gotInput.Status != model.StatusNotStarted {
		t.Errorf("status = %q, want not_started default", gotInput.Status)
	}
	if gotInput.DueDate == nil || *gotInput.DueDate != "2025-06-16T09:00" {
		t.Errorf("due date = %v", gotInput.DueDate)
	}
	if refreshes != 1 {
		t.Errorf("refreshes = %d, want exactly 1", refreshes)
	}
	if c.Enabled() {
		t.Error("form should be disabled after create")
	}
	if c.Draft().Title != "" || c.Draft().DueDate != "" {
		t.Errorf("draft = %+v, want reset to defaults", *c.Draft())
	}
}

func TestSubmitWithoutDueDate(t *testing.T) {
	var gotInput repository.CreateTaskInput
	repo := &fakeTaskRepo{
		createFn: func(ctx context.Context, input repository.CreateTaskInput) (model.Task, error) {
			gotInput = input
			return model.Task{ID: 9}, nil
		},
	}
	c, _ := newCreateController(repo, nil)
	c.Enable()
	c.Draft().Title = "Buy milk"

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if gotInput.DueDate != nil {
		t.Errorf("due date = %v, want nil", gotInput.DueDate)
	}
}

func TestSubmitServerErrorKeepsDraft(t *testing.T) {
	repo := &fakeTaskRepo{
		createFn: func(ctx context.Context, input repository.CreateTaskInput) (model.Task, error) {
			return model.Task{}, errors.New("server returned 500")
		},
	}
	c, notifier := newCreateController(repo, nil)
	c.Enable()
	c.Draft().Title = "Buy milk"

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit returned %v, write errors are surfaced via notifier", err)
	}
	if len(notifier.errors) != 1 {
		t.Errorf("error notifications = %v", notifier.errors)
	}
	if !c.Enabled() || c.Draft().Title != "Buy milk" {
		t.Error("draft and form state should survive a failed create")
	}
}

func TestCancelResetsDraft(t *testing.T) {
	c, _ := newCreateController(&fakeTaskRepo{}, nil)

	c.Enable()
	c.Draft().Title = "half-typed"
	c.Draft().DueDate = "2025-06-16T09:00"
	c.Draft().Status = model.StatusInProgress
	c.Cancel()

	if c.Enabled() {
		t.Error("form should be disabled after cancel")
	}
	draft := c.Draft()
	if draft.Title != "" || draft.DueDate != "" || draft.Status != model.StatusNotStarted {
		t.Errorf("draft = %+v, want defaults", *draft)
	}
}
