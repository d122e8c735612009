package ports

import (
	"context"
	"time"

	"tasktrack/internal/core/domain"
)

// TaskRepository is the single authoritative store for task aggregates.
// Isolation between concurrent writers is the store's concern, not the
// core's; SaveTask is an idempotent upsert.
type TaskRepository interface {
	LoadTask(ctx context.Context, id string) (*domain.Task, error)
	SaveTask(ctx context.Context, task *domain.Task) error
	ListTasksByDepartments(ctx context.Context, departmentIDs []string, includeArchived bool) ([]*domain.Task, error)
	ListTasksForUser(ctx context.Context, userID string, includeArchived bool) ([]*domain.Task, error)
	ListAllTasks(ctx context.Context, includeArchived bool) ([]*domain.Task, error)
}

type DepartmentRepository interface {
	ListDepartments(ctx context.Context) ([]domain.Department, error)
}

type ProjectRepository interface {
	ProjectExists(ctx context.Context, projectID string) (bool, error)
}

type CreateTaskInput struct {
	Title             string
	Description       string
	Priority          int
	DueDate           time.Time
	ProjectID         *string
	ParentTaskID      *string
	RecurringInterval *int
	Assignees         []string
	Tags              []string
}

type TaskService interface {
	CreateTask(ctx context.Context, user domain.UserContext, input CreateTaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, user domain.UserContext, taskID string) (*domain.Task, bool, error)
	UpdateTitle(ctx context.Context, user domain.UserContext, taskID, title string) (*domain.Task, error)
	UpdateDescription(ctx context.Context, user domain.UserContext, taskID, description string) (*domain.Task, error)
	UpdatePriority(ctx context.Context, user domain.UserContext, taskID string, level int) (*domain.Task, error)
	UpdateDeadline(ctx context.Context, user domain.UserContext, taskID string, deadline time.Time) (*domain.Task, error)
	UpdateStatus(ctx context.Context, user domain.UserContext, taskID string, status domain.TaskStatus) (*domain.Task, error)
	AddTag(ctx context.Context, user domain.UserContext, taskID, tag string) (*domain.Task, error)
	RemoveTag(ctx context.Context, user domain.UserContext, taskID, tag string) (*domain.Task, error)
	AddAssignee(ctx context.Context, user domain.UserContext, taskID, assigneeID string) (*domain.Task, error)
	RemoveAssignee(ctx context.Context, user domain.UserContext, taskID, assigneeID string) (*domain.Task, error)
	AddComment(ctx context.Context, user domain.UserContext, taskID, content string) (domain.Comment, error)
	UpdateComment(ctx context.Context, user domain.UserContext, taskID, commentID, content string) (*domain.Task, error)
	AddFile(ctx context.Context, user domain.UserContext, taskID string, upload domain.FileUpload) (domain.File, error)
	RemoveFile(ctx context.Context, user domain.UserContext, taskID, fileID string) (*domain.Task, error)
	UpdateRecurring(ctx context.Context, user domain.UserContext, taskID string, enabled bool, interval *int) (*domain.Task, error)
	Archive(ctx context.Context, user domain.UserContext, taskID string) (*domain.Task, error)
	Unarchive(ctx context.Context, user domain.UserContext, taskID string) (*domain.Task, error)
	Complete(ctx context.Context, user domain.UserContext, taskID string) (*domain.Task, error)
}
