package db

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
)

const listDepartmentsQuery = `
SELECT id, name, parent_id, manager_id
FROM departments
ORDER BY id;
`

type DepartmentRepository struct {
	db *sqlx.DB
}

var _ ports.DepartmentRepository = (*DepartmentRepository)(nil)

func NewDepartmentRepository(db *sqlx.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

type departmentRow struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	ParentID  sql.NullString `db:"parent_id"`
	ManagerID sql.NullString `db:"manager_id"`
}

func (r *DepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	var rows []departmentRow
	if err := r.db.SelectContext(ctx, &rows, listDepartmentsQuery); err != nil {
		return nil, err
	}

	departments := make([]domain.Department, 0, len(rows))
	for _, row := range rows {
		dept := domain.Department{
			ID:   row.ID,
			Name: row.Name,
		}
		if row.ParentID.Valid {
			value := row.ParentID.String
			dept.ParentID = &value
		}
		if row.ManagerID.Valid {
			dept.ManagerID = row.ManagerID.String
		}
		departments = append(departments, dept)
	}
	return departments, nil
}
