package service

import (
	"context"
	"time"

	"tasktrack/internal/core/access"
	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
)

// TaskService is the only component allowed to combine repository
// lookups with Task mutations. Every mutation follows the same shape:
// load, authorize, mutate in memory, save.
type TaskService struct {
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
	engine   *access.Engine
	limits   domain.TaskLimits
}

func NewTaskService(tasks ports.TaskRepository, projects ports.ProjectRepository, engine *access.Engine, limits domain.TaskLimits) *TaskService {
	return &TaskService{tasks: tasks, projects: projects, engine: engine, limits: limits}
}

func (s *TaskService) CreateTask(ctx context.Context, user domain.UserContext, input ports.CreateTaskInput) (*domain.Task, error) {
	if input.ProjectID != nil {
		if *input.ProjectID == "" {
			return nil, domain.ErrEmptyProjectID
		}
		exists, err := s.projects.ProjectExists(ctx, *input.ProjectID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.ErrProjectNotFound
		}
	}

	task, err := domain.NewTask(domain.CreateTaskInput{
		Title:             input.Title,
		Description:       input.Description,
		Priority:          input.Priority,
		DueDate:           input.DueDate,
		OwnerID:           user.UserID,
		DepartmentID:      user.DepartmentID,
		ProjectID:         input.ProjectID,
		ParentTaskID:      input.ParentTaskID,
		RecurringInterval: input.RecurringInterval,
		Assignees:         input.Assignees,
		Tags:              input.Tags,
	}, s.limits)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.SaveTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, user domain.UserContext, taskID string) (*domain.Task, bool, error) {
	task, err := s.tasks.LoadTask(ctx, taskID)
	if err != nil {
		return nil, false, err
	}
	visible, err := s.canView(ctx, user, task)
	if err != nil {
		return nil, false, err
	}
	if !visible {
		return nil, false, domain.ErrUnauthorized
	}
	canEdit, err := s.engine.CanEdit(ctx, user, task)
	if err != nil {
		return nil, false, err
	}
	return task, canEdit, nil
}

func (s *TaskService) UpdateTitle(ctx context.Context, user domain.UserContext, taskID, title string) (*domain.Task, error) {
	return s.mutate(ctx, user, taskID, func(task *domain.Task) error {
		return task.UpdateTitle(title)
	})
}

func (s *TaskService) UpdateDescription(ctx context.Context, user domain.UserContext, taskID, description string) (*domain.Task, error) {
	return s.mutate(ctx, user, taskID, func(task *domain.Task) error {
		task.UpdateDescription(description)
		return nil
	})
}

func (s *TaskService) UpdatePriority(ctx context.Context, user domain.UserContext, taskID string, level int) (*domain.Task, error) {
	return s.mutate(ctx, user, taskID, func(task *domain.Task) error {
		return task.UpdatePriority(level)
	})
}

// UpdateDeadline resolves the parent's current deadline when the task is
// a subtask, so the entity can bound the new value.
func (s *TaskService) UpdateDeadline(ctx context.Context, user domain.UserContext, taskID string, deadline time.Time) (*domain.Task, error) {
	return s.mutate(ctx, user, taskID, func(task *domain.Task) error {
		var parentDeadline *time.Time
		if parentID := task.ParentTaskID(); parentID != nil {
			parent, err := s.tasks.LoadTask(ctx, *parentID)
			if err != nil {
				return err
			}
			due := parent.DueDate()
			parentDeadline = &due
		}
		return task.UpdateDeadline(deadline, parentDeadline)
	})
}

func (s *TaskService) UpdateStatus(ctx context.Context, user domain.UserContext, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	return s.mutate(ctx, user, taskID, func(task *domain.Task) error {
		task.UpdateStatus(status)
		return nil
	})
}

func (s *TaskService) AddTag(ctx context.Context, user domain.UserContext, taskID, tag string) (*domain.Task, error) {
	return s.mutate(ctx, user, taskID, func(task *domain.Task) error {
		task.AddTag(tag)
		return nil
	})
}

func (s *TaskService) RemoveTag(ctx context.Context, user domain.UserContext, taskID, tag string) (*domain.Task, error) {
	return s.mutate(ctx, user, taskID, func(task *domain.Task) error {
		task.RemoveTag(tag)
		return nil
	})
}

// AddAssignee and RemoveAssignee delegate their role rules to the
// entity; the actor's role decides, not department edit rights.
func (s *TaskService) AddAssignee(ctx context.Context, user domain.UserContext, taskID, assigneeID string) (*domain.Task, error) {
	return s.mutateUnchecked(ctx, taskID, func(task *domain.Task) error {
		return task.AddAssignee(assigneeID, user.UserID, user.Role)
	})
}

func (s *TaskService) RemoveAssignee(ctx context.Context, user domain.UserContext, taskID, assigneeID string) (*domain.Task, error) {
	return s.mutateUnchecked(ctx, taskID, func(task *domain.Task) error {
		return task.RemoveAssignee(assigneeID, user.UserID, user.Role)
	})
}

func (s *TaskService) AddComment(ctx context.Context, user domain.UserContext, taskID, content string) (domain.Comment, error) {
	task, err := s.tasks.LoadTask(ctx, taskID)
	if err != nil {
		return domain.Comment{}, err
	}
	visible, err := s.canView(ctx, user, task)
	if err != nil {
		return domain.Comment{}, err
	}
	if !visible {
		return domain.Comment{}, domain.ErrUnauthorized
	}
	comment := task.AddComment(content, user.UserID)
	if err := s.tasks.SaveTask(ctx, task); err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

func (s *TaskService) UpdateComment(ctx context.Context, user domain.UserContext, taskID, commentID, content string) (*domain.Task, error) {
	return s.mutateUnchecked(ctx, taskID, func(task *domain.Task) error {
		return task.UpdateComment(commentID, content, user.UserID)
	})
}

func (s *TaskService) AddFile(ctx context.Context, user domain.UserContext, taskID string, upload domain.FileUpload) (domain.File, error) {
	task, err := s.tasks.LoadTask(ctx, taskID)
	if err != nil {
		return domain.File{}, err
	}
	file, err := task.AddFile(upload, user.UserID)
	if err != nil {
		return domain.File{}, err
	}
	if err := s.tasks.SaveTask(ctx, task); err != nil {
		return domain.File{}, err
	}
	return file, nil
}

func (s *TaskService) RemoveFile(ctx context.Context, user domain.UserContext, taskID, fileID string) (*domain.Task, error) {
	return s.mutateUnchecked(ctx, taskID, func(task *domain.Task) error {
		return task.RemoveFile(fileID, user.UserID)
	})
}

func (s *TaskService) UpdateRecurring(ctx context.Context, user domain.UserContext, taskID string, enabled bool, interval *int) (*domain.Task, error) {
	return s.mutate(ctx, user, taskID, func(task *domain.Task) error {
		return task.UpdateRecurring(enabled, interval)
	})
}

func (s *TaskService) Archive(ctx context.Context, user domain.UserContext, taskID string) (*domain.Task, error) {
	return s.mutate(ctx, user, taskID, func(task *domain.Task) error {
		task.Archive()
		return nil
	})
}

func (s *TaskService) Unarchive(ctx context.Context, user domain.UserContext, taskID string) (*domain.Task, error) {
	return s.mutate(ctx, user, taskID, func(task *domain.Task) error {
		task.Unarchive()
		return nil
	})
}

func (s *TaskService) Complete(ctx context.Context, user domain.UserContext, taskID string) (*domain.Task, error) {
	return s.mutateUnchecked(ctx, taskID, func(task *domain.Task) error {
		return task.Complete(user.UserID)
	})
}

// mutate gates on general modification rights before applying fn.
func (s *TaskService) mutate(ctx context.Context, user domain.UserContext, taskID string, fn func(*domain.Task) error) (*domain.Task, error) {
	task, err := s.tasks.LoadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	allowed, err := s.canModify(ctx, user, task)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrUnauthorized
	}
	if err := fn(task); err != nil {
		return nil, err
	}
	if err := s.tasks.SaveTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// mutateUnchecked is for operations whose authorization rule lives in
// the entity itself (assignment membership, actor role, comment author).
func (s *TaskService) mutateUnchecked(ctx context.Context, taskID string, fn func(*domain.Task) error) (*domain.Task, error) {
	task, err := s.tasks.LoadTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := fn(task); err != nil {
		return nil, err
	}
	if err := s.tasks.SaveTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// canModify: assignees and the owner may always modify; otherwise the
// caller needs department edit rights over the task.
func (s *TaskService) canModify(ctx context.Context, user domain.UserContext, task *domain.Task) (bool, error) {
	if task.IsAssigned(user.UserID) || task.OwnerID() == user.UserID {
		return true, nil
	}
	return s.engine.CanEdit(ctx, user, task)
}

// canView: owners and assignees always see their task; beyond that the
// role scope decides.
func (s *TaskService) canView(ctx context.Context, user domain.UserContext, task *domain.Task) (bool, error) {
	if task.IsAssigned(user.UserID) || task.OwnerID() == user.UserID {
		return true, nil
	}
	scope, err := s.engine.Scope(ctx, user)
	if err != nil {
		return false, err
	}
	if scope.All {
		return true, nil
	}
	if scope.AssigneeOnly {
		return false, nil
	}
	_, ok := scope.DepartmentIDs[task.DepartmentID()]
	return ok, nil
}

var _ ports.TaskService = (*TaskService)(nil)
