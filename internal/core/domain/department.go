package domain

// Department is read-only to the core. Parent and manager are plain id
// references resolved through the repository, never embedded aggregates.
type Department struct {
	ID        string
	Name      string
	ParentID  *string
	ManagerID string
}
