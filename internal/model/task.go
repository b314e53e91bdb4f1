package model

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) IsValid() bool {
	return s == StatusNotStarted || s == StatusInProgress || s == StatusCompleted
}

// Task is the remote-owned to-do record. Timestamps are carried as the
// server's own string encoding and passed back unmodified on writes, so a
// toggle never rewrites a due date it did not touch.
type Task struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Completed       bool    `json:"completed"`
	DueDate         *string `json:"due_date"`
	Status          Status  `json:"status"`
	MarkAsImportant bool    `json:"mark_as_important"`
	Date            *string `json:"date"`
}

// ToggledCompletion returns the completed/status pair for flipping this
// task's completion state. The two fields always move together.
func (t Task) ToggledCompletion() (bool, Status) {
	if t.Completed {
		return false, StatusNotStarted
	}
	return true, StatusCompleted
}
