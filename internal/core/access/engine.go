package access

import (
	"context"

	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
)

// Scope describes which tasks a user may see. Exactly one of the three
// shapes applies: everything, an explicit department set, or only tasks
// the user owns or is assigned to.
type Scope struct {
	All           bool
	AssigneeOnly  bool
	DepartmentIDs map[string]struct{}
}

// ScopeFor computes the visibility scope for a user against the current
// department forest. Roles are branched exhaustively; an unknown role is
// rejected rather than silently defaulted.
func ScopeFor(user domain.UserContext, departments []domain.Department) (Scope, error) {
	switch user.Role {
	case domain.RoleStaff:
		return Scope{AssigneeOnly: true}, nil
	case domain.RoleManager:
		return Scope{DepartmentIDs: Subtree(departments, user.DepartmentID)}, nil
	case domain.RoleHRAdmin:
		return Scope{All: true}, nil
	default:
		return Scope{}, domain.ErrUnauthorized
	}
}

// EditableDepartments returns every department id the user may edit
// tasks in. Two independent rules are OR'd:
//   - manager rule: the subtree of every department the user manages,
//     either through the MANAGER role on their own department or through
//     a Department.ManagerID back-reference;
//   - HR rule: an HR_ADMIN may edit their home department only. Wide
//     visibility for reporting does not grant wide edit rights.
func EditableDepartments(user domain.UserContext, departments []domain.Department) map[string]struct{} {
	editable := make(map[string]struct{})

	roots := make(map[string]struct{})
	if user.Role == domain.RoleManager {
		roots[user.DepartmentID] = struct{}{}
	}
	for _, dept := range departments {
		if dept.ManagerID != "" && dept.ManagerID == user.UserID {
			roots[dept.ID] = struct{}{}
		}
	}
	for root := range roots {
		for id := range Subtree(departments, root) {
			editable[id] = struct{}{}
		}
	}

	if user.Role == domain.RoleHRAdmin {
		editable[user.DepartmentID] = struct{}{}
	}

	return editable
}

func CanEditIn(editable map[string]struct{}, departmentID string) bool {
	_, ok := editable[departmentID]
	return ok
}

// Engine is the repository-backed entry point used by the services.
type Engine struct {
	departments ports.DepartmentRepository
}

func NewEngine(departments ports.DepartmentRepository) *Engine {
	return &Engine{departments: departments}
}

func (e *Engine) Scope(ctx context.Context, user domain.UserContext) (Scope, error) {
	departments, err := e.departments.ListDepartments(ctx)
	if err != nil {
		return Scope{}, err
	}
	return ScopeFor(user, departments)
}

func (e *Engine) EditableDepartments(ctx context.Context, user domain.UserContext) (map[string]struct{}, error) {
	departments, err := e.departments.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	return EditableDepartments(user, departments), nil
}

// CanEdit answers the per-task editability question on its own; bulk
// paths should resolve EditableDepartments once instead.
func (e *Engine) CanEdit(ctx context.Context, user domain.UserContext, task *domain.Task) (bool, error) {
	editable, err := e.EditableDepartments(ctx, user)
	if err != nil {
		return false, err
	}
	return CanEditIn(editable, task.DepartmentID()), nil
}
