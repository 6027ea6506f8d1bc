package model

import (
	"fmt"
	"time"
)

// Task is a single unit of work. Timestamps are Unix seconds.
// Values are built by service.TaskFactory, which guarantees Deadline > Created.
type Task struct {
	ID          uint64
	Description string
	Created     int64
	Deadline    int64
	Completed   bool
}

func (t Task) CreatedAt() time.Time {
	return time.Unix(t.Created, 0).UTC()
}

func (t Task) DeadlineAt() time.Time {
	return time.Unix(t.Deadline, 0).UTC()
}

// Overdue reports whether an open task has reached its deadline at now.
func (t Task) Overdue(now time.Time) bool {
	return !t.Completed && now.Unix() >= t.Deadline
}

func (t Task) String() string {
	status := "open"
	if t.Completed {
		status = "done"
	}
	return fmt.Sprintf("#%d %q deadline=%s created=%s %s",
		t.ID, t.Description,
		t.DeadlineAt().Format(time.RFC3339),
		t.CreatedAt().Format(time.RFC3339),
		status)
}
