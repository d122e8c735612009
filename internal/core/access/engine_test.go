package access_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tasktrack/internal/core/access"
	"tasktrack/internal/core/domain"
)

func TestScopeFor_Staff(t *testing.T) {
	scope, err := access.ScopeFor(domain.UserContext{
		UserID: "u1", Role: domain.RoleStaff, DepartmentID: "sales",
	}, forest())
	require.NoError(t, err)
	require.True(t, scope.AssigneeOnly)
	require.False(t, scope.All)
}

func TestScopeFor_ManagerSeesSubtreeOnly(t *testing.T) {
	scope, err := access.ScopeFor(domain.UserContext{
		UserID: "mgr", Role: domain.RoleManager, DepartmentID: "eng",
	}, forest())
	require.NoError(t, err)
	require.False(t, scope.All)
	require.Contains(t, scope.DepartmentIDs, "eng")
	require.Contains(t, scope.DepartmentIDs, "eng-dev")
	require.NotContains(t, scope.DepartmentIDs, "sales")
	require.NotContains(t, scope.DepartmentIDs, "root")
}

func TestScopeFor_HRAdminSeesEverything(t *testing.T) {
	scope, err := access.ScopeFor(domain.UserContext{
		UserID: "hr", Role: domain.RoleHRAdmin, DepartmentID: "root",
	}, forest())
	require.NoError(t, err)
	require.True(t, scope.All)
}

func TestScopeFor_UnknownRoleRejected(t *testing.T) {
	_, err := access.ScopeFor(domain.UserContext{
		UserID: "u1", Role: "INTERN", DepartmentID: "eng",
	}, forest())
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestEditableDepartments_Manager(t *testing.T) {
	editable := access.EditableDepartments(domain.UserContext{
		UserID: "mgr", Role: domain.RoleManager, DepartmentID: "eng",
	}, forest())

	require.True(t, access.CanEditIn(editable, "eng"))
	require.True(t, access.CanEditIn(editable, "eng-dev"))
	require.False(t, access.CanEditIn(editable, "sales"))
	require.False(t, access.CanEditIn(editable, "root"))
}

func TestEditableDepartments_PlainHRAdmin(t *testing.T) {
	// HR with no manager role anywhere: organization-wide visibility,
	// but edit rights only in the home department.
	editable := access.EditableDepartments(domain.UserContext{
		UserID: "hr", Role: domain.RoleHRAdmin, DepartmentID: "sales",
	}, forest())

	require.True(t, access.CanEditIn(editable, "sales"))
	require.False(t, access.CanEditIn(editable, "eng"))
	require.False(t, access.CanEditIn(editable, "eng-dev"))
	require.False(t, access.CanEditIn(editable, "root"))
}

func TestEditableDepartments_CombinedHRAndManager(t *testing.T) {
	// HR_ADMIN who also manages Engineering through the back-reference.
	departments := forest()
	for i := range departments {
		if departments[i].ID == "eng" {
			departments[i].ManagerID = "hr-mgr"
		}
	}

	editable := access.EditableDepartments(domain.UserContext{
		UserID: "hr-mgr", Role: domain.RoleHRAdmin, DepartmentID: "root",
	}, departments)

	// Manager rule grants the managed subtree.
	require.True(t, access.CanEditIn(editable, "eng"))
	require.True(t, access.CanEditIn(editable, "eng-dev"))
	// HR rule grants the home department.
	require.True(t, access.CanEditIn(editable, "root"))
	// Peer departments remain read-only.
	require.False(t, access.CanEditIn(editable, "sales"))
}

func TestEditableDepartments_ManagerBackReferenceWithoutManagerRole(t *testing.T) {
	departments := forest()
	for i := range departments {
		if departments[i].ID == "sales" {
			departments[i].ManagerID = "u9"
		}
	}

	// The back-reference alone grants the subtree, independent of role.
	editable := access.EditableDepartments(domain.UserContext{
		UserID: "u9", Role: domain.RoleStaff, DepartmentID: "eng",
	}, departments)

	require.True(t, access.CanEditIn(editable, "sales"))
	require.False(t, access.CanEditIn(editable, "eng"))
}
