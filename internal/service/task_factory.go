package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"task-factory/internal/model"
)

// FallbackWindow is the deadline offset, in seconds, used when the supplied
// deadline is unusable.
const FallbackWindow int64 = 86_400

// TaskFactory builds tasks from user-supplied deadline text.
type TaskFactory struct {
	log *zap.Logger
	now func() time.Time
}

type FactoryOption func(*TaskFactory)

// WithClock replaces the wall clock used to stamp Created.
func WithClock(now func() time.Time) FactoryOption {
	return func(f *TaskFactory) {
		if now != nil {
			f.now = now
		}
	}
}

func NewTaskFactory(log *zap.Logger, opts ...FactoryOption) *TaskFactory {
	if log == nil {
		log = zap.NewNop()
	}
	f := &TaskFactory{log: log, now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create never fails. A malformed or past deadline is replaced with
// Created+FallbackWindow and reported as a warning.
func (f *TaskFactory) Create(id uint64, description, deadlineText string) model.Task {
	created := f.now().Unix()
	fallback := created + FallbackWindow

	deadline, err := ParseDate(deadlineText)
	switch {
	case err != nil:
		f.log.Warn(
			fmt.Sprintf("Failed to parse deadline '%s'. Defaulting to the next day. Error: %v", deadlineText, err),
			zap.String("deadline", deadlineText),
			zap.Int64("fallback", fallback),
			zap.Error(err),
		)
		deadline = fallback
	case deadline <= created:
		f.log.Warn(
			fmt.Sprintf("Deadline '%s' has already passed. Defaulting to the next day.", deadlineText),
			zap.String("deadline", deadlineText),
			zap.Int64("fallback", fallback),
		)
		deadline = fallback
	}

	return model.Task{
		ID:          id,
		Description: description,
		Created:     created,
		Deadline:    deadline,
		Completed:   false,
	}
}
