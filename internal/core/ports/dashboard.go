package ports

import (
	"context"

	"tasktrack/internal/core/domain"
)

// DashboardFilters narrow the already-scoped visible set; they never
// widen visibility. All set filters combine with logical AND.
type DashboardFilters struct {
	DepartmentName  *string
	ProjectID       *string
	AssigneeID      *string
	Status          *domain.TaskStatus
	IncludeArchived bool
}

type StatusSummary struct {
	ToDo       int
	InProgress int
	Completed  int
	Blocked    int
}

type DashboardItem struct {
	Task    *domain.Task
	CanEdit bool
}

type Dashboard struct {
	Summary StatusSummary
	Items   []DashboardItem
}

type DashboardService interface {
	Dashboard(ctx context.Context, user domain.UserContext, filters DashboardFilters) (Dashboard, error)
}
