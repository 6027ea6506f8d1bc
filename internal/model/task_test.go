package model

import (
	"strings"
	"testing"
	"time"
)

func TestTaskTimes(t *testing.T) {
	task := Task{ID: 7, Description: "x", Created: 1735603200, Deadline: 1735689600}

	if got := task.CreatedAt(); !got.Equal(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("CreatedAt = %v", got)
	}
	if got := task.DeadlineAt(); got.Location() != time.UTC || got.Unix() != task.Deadline {
		t.Errorf("DeadlineAt = %v", got)
	}
}

func TestTaskOverdue(t *testing.T) {
	task := Task{Created: 100, Deadline: 200}

	tests := []struct {
		name      string
		now       int64
		completed bool
		want      bool
	}{
		{"before deadline", 199, false, false},
		{"at deadline", 200, false, true},
		{"after deadline", 500, false, true},
		{"completed", 500, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task.Completed = tt.completed
			if got := task.Overdue(time.Unix(tt.now, 0)); got != tt.want {
				t.Errorf("Overdue(%d) = %t, want %t", tt.now, got, tt.want)
			}
		})
	}
}

func TestTaskString(t *testing.T) {
	task := Task{ID: 1, Description: "Test task", Created: 1735516800, Deadline: 1735603200}
	s := task.String()
	for _, want := range []string{"#1", `"Test task"`, "deadline=2024-12-31T00:00:00Z", "open"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
