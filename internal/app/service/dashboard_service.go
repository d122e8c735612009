package service

import (
	"context"

	"tasktrack/internal/core/access"
	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
)

// DashboardService computes the role-scoped visible task set once, then
// narrows it with composable AND filters and decorates each task with
// its canEdit flag.
type DashboardService struct {
	tasks       ports.TaskRepository
	departments ports.DepartmentRepository
}

func NewDashboardService(tasks ports.TaskRepository, departments ports.DepartmentRepository) *DashboardService {
	return &DashboardService{tasks: tasks, departments: departments}
}

func (s *DashboardService) Dashboard(ctx context.Context, user domain.UserContext, filters ports.DashboardFilters) (ports.Dashboard, error) {
	departments, err := s.departments.ListDepartments(ctx)
	if err != nil {
		return ports.Dashboard{}, err
	}

	scope, err := access.ScopeFor(user, departments)
	if err != nil {
		return ports.Dashboard{}, err
	}

	var visible []*domain.Task
	switch {
	case scope.All:
		visible, err = s.tasks.ListAllTasks(ctx, filters.IncludeArchived)
	case scope.AssigneeOnly:
		visible, err = s.tasks.ListTasksForUser(ctx, user.UserID, filters.IncludeArchived)
	default:
		ids := make([]string, 0, len(scope.DepartmentIDs))
		for id := range scope.DepartmentIDs {
			ids = append(ids, id)
		}
		visible, err = s.tasks.ListTasksByDepartments(ctx, ids, filters.IncludeArchived)
	}
	if err != nil {
		return ports.Dashboard{}, err
	}

	editable := access.EditableDepartments(user, departments)

	var departmentIDsByName map[string]struct{}
	if filters.DepartmentName != nil {
		departmentIDsByName = make(map[string]struct{})
		for _, dept := range departments {
			if dept.Name == *filters.DepartmentName {
				departmentIDsByName[dept.ID] = struct{}{}
			}
		}
	}

	dashboard := ports.Dashboard{Items: make([]ports.DashboardItem, 0, len(visible))}
	for _, task := range visible {
		if !matches(task, filters, departmentIDsByName) {
			continue
		}
		switch task.Status() {
		case domain.TaskStatusToDo:
			dashboard.Summary.ToDo++
		case domain.TaskStatusInProgress:
			dashboard.Summary.InProgress++
		case domain.TaskStatusCompleted:
			dashboard.Summary.Completed++
		case domain.TaskStatusBlocked:
			dashboard.Summary.Blocked++
		}
		dashboard.Items = append(dashboard.Items, ports.DashboardItem{
			Task:    task,
			CanEdit: access.CanEditIn(editable, task.DepartmentID()),
		})
	}
	return dashboard, nil
}

// matches applies the post-hoc filters. Filters only narrow the scoped
// set; they never re-derive visibility.
func matches(task *domain.Task, filters ports.DashboardFilters, departmentIDsByName map[string]struct{}) bool {
	if departmentIDsByName != nil {
		if _, ok := departmentIDsByName[task.DepartmentID()]; !ok {
			return false
		}
	}
	if filters.ProjectID != nil {
		projectID := task.ProjectID()
		if projectID == nil || *projectID != *filters.ProjectID {
			return false
		}
	}
	if filters.AssigneeID != nil && !task.IsAssigned(*filters.AssigneeID) {
		return false
	}
	if filters.Status != nil && task.Status() != *filters.Status {
		return false
	}
	return true
}

var _ ports.DashboardService = (*DashboardService)(nil)
