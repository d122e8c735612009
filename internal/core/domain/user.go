package domain

type Role string

const (
	RoleStaff   Role = "STAFF"
	RoleManager Role = "MANAGER"
	RoleHRAdmin Role = "HR_ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStaff, RoleManager, RoleHRAdmin:
		return true
	default:
		return false
	}
}

// UserContext is supplied by the authentication collaborator and trusted
// as given. Role is a single value; a user who is HR_ADMIN and also manages
// a department is recognised through Department.ManagerID back-references.
type UserContext struct {
	UserID       string
	Role         Role
	DepartmentID string
}
