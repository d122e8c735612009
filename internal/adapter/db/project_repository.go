package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"tasktrack/internal/core/ports"
)

type ProjectRepository struct {
	db *sqlx.DB
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS (SELECT 1 FROM projects WHERE id = ?);", projectID)
	if err != nil {
		return false, err
	}
	return exists, nil
}
