package domain

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")

	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidTitle           = errors.New("title must not be empty")
	ErrInvalidPriority        = errors.New("priority must be between 1 and 10")
	ErrInvalidRecurrence      = errors.New("recurring interval must be a positive number of days")
	ErrInvalidSubtaskDeadline = errors.New("subtask deadline must not exceed parent deadline")
	ErrInvalidFileType        = errors.New("file type is not allowed")

	ErrMaxAssigneesReached   = errors.New("maximum number of assignees reached")
	ErrFileSizeLimitExceeded = errors.New("total file size limit exceeded")

	ErrNoAssignees      = errors.New("task must have at least 1 assignee")
	ErrMinAssignees     = errors.New("task must keep at least 1 assignee")
	ErrAssigneeNotFound = errors.New("user is not assigned to this task")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrEmptyProjectID   = errors.New("project id must not be empty")
	ErrProjectNotFound  = errors.New("project not found")
)
