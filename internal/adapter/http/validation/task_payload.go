package validation

import (
	"errors"
	"time"

	"tasktrack/internal/adapter/http/dto"
	"tasktrack/internal/core/ports"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// ParseDeadline accepts RFC3339 timestamps only; domain rules about the
// value itself (subtask bounds) are not checked here.
func ParseDeadline(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, ErrInvalidTaskPayload
	}
	return parsed, nil
}

func BuildCreateTaskInput(req dto.CreateTaskRequest) (ports.CreateTaskInput, error) {
	dueDate, err := ParseDeadline(req.DueDate)
	if err != nil {
		return ports.CreateTaskInput{}, err
	}

	return ports.CreateTaskInput{
		Title:             req.Title,
		Description:       req.Description,
		Priority:          req.Priority,
		DueDate:           dueDate,
		ProjectID:         req.ProjectID,
		ParentTaskID:      req.ParentTaskID,
		RecurringInterval: req.RecurringInterval,
		Assignees:         req.Assignees,
		Tags:              req.Tags,
	}, nil
}
