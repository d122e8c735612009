package access

import (
	"context"

	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
)

// Subtree returns the ids of rootID and every descendant in the
// parent-pointer forest. Departments are expected to form a forest, but
// the walk keeps a visited set so a malformed cycle cannot loop forever.
func Subtree(departments []domain.Department, rootID string) map[string]struct{} {
	children := make(map[string][]string, len(departments))
	for _, dept := range departments {
		if dept.ParentID == nil {
			continue
		}
		children[*dept.ParentID] = append(children[*dept.ParentID], dept.ID)
	}

	visited := map[string]struct{}{rootID: {}}
	stack := []string{rootID}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range children[current] {
			if _, seen := visited[child]; seen {
				continue
			}
			visited[child] = struct{}{}
			stack = append(stack, child)
		}
	}
	return visited
}

// Resolver answers subtree queries against the department store.
type Resolver struct {
	departments ports.DepartmentRepository
}

func NewResolver(departments ports.DepartmentRepository) *Resolver {
	return &Resolver{departments: departments}
}

func (r *Resolver) Subtree(ctx context.Context, rootID string) (map[string]struct{}, error) {
	departments, err := r.departments.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	return Subtree(departments, rootID), nil
}
