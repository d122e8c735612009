package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
)

const selectTaskColumns = `
SELECT id, title, description, priority, due_date, status, owner_id,
       department_id, project_id, parent_task_id, recurring_interval,
       is_archived, created_at, start_date, updated_at, completed_at
FROM tasks
`

const upsertTaskQuery = `
INSERT INTO tasks (
  id, title, description, priority, due_date, status, owner_id,
  department_id, project_id, parent_task_id, recurring_interval,
  is_archived, created_at, start_date, updated_at, completed_at
) VALUES (
  :id, :title, :description, :priority, :due_date, :status, :owner_id,
  :department_id, :project_id, :parent_task_id, :recurring_interval,
  :is_archived, :created_at, :start_date, :updated_at, :completed_at
)
ON DUPLICATE KEY UPDATE
  title = VALUES(title),
  description = VALUES(description),
  priority = VALUES(priority),
  due_date = VALUES(due_date),
  status = VALUES(status),
  recurring_interval = VALUES(recurring_interval),
  is_archived = VALUES(is_archived),
  start_date = VALUES(start_date),
  updated_at = VALUES(updated_at),
  completed_at = VALUES(completed_at);
`

type TaskRepository struct {
	db     *sqlx.DB
	limits domain.TaskLimits
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB, limits domain.TaskLimits) *TaskRepository {
	return &TaskRepository{db: db, limits: limits}
}

type taskRow struct {
	ID                string         `db:"id"`
	Title             string         `db:"title"`
	Description       string         `db:"description"`
	Priority          int            `db:"priority"`
	DueDate           time.Time      `db:"due_date"`
	Status            string         `db:"status"`
	OwnerID           string         `db:"owner_id"`
	DepartmentID      string         `db:"department_id"`
	ProjectID         sql.NullString `db:"project_id"`
	ParentTaskID      sql.NullString `db:"parent_task_id"`
	RecurringInterval sql.NullInt64  `db:"recurring_interval"`
	IsArchived        bool           `db:"is_archived"`
	CreatedAt         time.Time      `db:"created_at"`
	StartDate         sql.NullTime   `db:"start_date"`
	UpdatedAt         time.Time      `db:"updated_at"`
	CompletedAt       sql.NullTime   `db:"completed_at"`
}

type assigneeRow struct {
	TaskID string `db:"task_id"`
	UserID string `db:"user_id"`
}

type tagRow struct {
	TaskID string `db:"task_id"`
	Tag    string `db:"tag"`
}

type commentRow struct {
	ID        string    `db:"id"`
	TaskID    string    `db:"task_id"`
	Content   string    `db:"content"`
	AuthorID  string    `db:"author_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type fileRow struct {
	ID           string    `db:"id"`
	TaskID       string    `db:"task_id"`
	FileName     string    `db:"file_name"`
	FileSize     int64     `db:"file_size"`
	FileType     string    `db:"file_type"`
	StoragePath  string    `db:"storage_path"`
	UploadedByID string    `db:"uploaded_by_id"`
	UploadedAt   time.Time `db:"uploaded_at"`
}

func (r *TaskRepository) LoadTask(ctx context.Context, id string) (*domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, selectTaskColumns+"WHERE id = ?;", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	tasks, err := r.attachChildren(ctx, []taskRow{row})
	if err != nil {
		return nil, err
	}
	return tasks[0], nil
}

func (r *TaskRepository) SaveTask(ctx context.Context, task *domain.Task) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.NamedExecContext(ctx, upsertTaskQuery, mapTaskToRow(task)); err != nil {
		return err
	}

	// Child collections are replaced wholesale; the aggregate is the
	// source of truth for all of them.
	for _, query := range []string{
		"DELETE FROM task_assignees WHERE task_id = ?;",
		"DELETE FROM task_tags WHERE task_id = ?;",
		"DELETE FROM task_comments WHERE task_id = ?;",
		"DELETE FROM task_files WHERE task_id = ?;",
	} {
		if _, err := tx.ExecContext(ctx, query, task.ID()); err != nil {
			return err
		}
	}

	for _, userID := range task.Assignees() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO task_assignees (task_id, user_id) VALUES (?, ?);",
			task.ID(), userID); err != nil {
			return err
		}
	}
	for _, tag := range task.Tags() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO task_tags (task_id, tag) VALUES (?, ?);",
			task.ID(), tag); err != nil {
			return err
		}
	}
	for _, comment := range task.Comments() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO task_comments (id, task_id, content, author_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?);",
			comment.ID, task.ID(), comment.Content, comment.AuthorID, comment.CreatedAt, comment.UpdatedAt); err != nil {
			return err
		}
	}
	for _, file := range task.Files() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO task_files (id, task_id, file_name, file_size, file_type, storage_path, uploaded_by_id, uploaded_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?);",
			file.ID, task.ID(), file.FileName, file.FileSize, file.FileType, file.StoragePath, file.UploadedByID, file.UploadedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *TaskRepository) ListTasksByDepartments(ctx context.Context, departmentIDs []string, includeArchived bool) ([]*domain.Task, error) {
	if len(departmentIDs) == 0 {
		return []*domain.Task{}, nil
	}

	query := selectTaskColumns + "WHERE department_id IN (?)"
	if !includeArchived {
		query += " AND is_archived = FALSE"
	}
	query += " ORDER BY created_at;"

	query, args, err := sqlx.In(query, departmentIDs)
	if err != nil {
		return nil, err
	}

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	return r.attachChildren(ctx, rows)
}

func (r *TaskRepository) ListTasksForUser(ctx context.Context, userID string, includeArchived bool) ([]*domain.Task, error) {
	query := selectTaskColumns + `
WHERE (owner_id = ? OR id IN (SELECT task_id FROM task_assignees WHERE user_id = ?))`
	if !includeArchived {
		query += " AND is_archived = FALSE"
	}
	query += " ORDER BY created_at;"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, userID, userID); err != nil {
		return nil, err
	}
	return r.attachChildren(ctx, rows)
}

func (r *TaskRepository) ListAllTasks(ctx context.Context, includeArchived bool) ([]*domain.Task, error) {
	query := selectTaskColumns
	if !includeArchived {
		query += "WHERE is_archived = FALSE\n"
	}
	query += "ORDER BY created_at;"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return r.attachChildren(ctx, rows)
}

// attachChildren batch-loads the child collections for the given rows
// and rehydrates the aggregates.
func (r *TaskRepository) attachChildren(ctx context.Context, rows []taskRow) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(rows))
	if len(rows) == 0 {
		return tasks, nil
	}

	taskIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		taskIDs = append(taskIDs, row.ID)
	}

	assignees := make(map[string][]string)
	var assigneeRows []assigneeRow
	if err := r.selectIn(ctx, &assigneeRows,
		"SELECT task_id, user_id FROM task_assignees WHERE task_id IN (?);", taskIDs); err != nil {
		return nil, err
	}
	for _, row := range assigneeRows {
		assignees[row.TaskID] = append(assignees[row.TaskID], row.UserID)
	}

	tags := make(map[string][]string)
	var tagRows []tagRow
	if err := r.selectIn(ctx, &tagRows,
		"SELECT task_id, tag FROM task_tags WHERE task_id IN (?);", taskIDs); err != nil {
		return nil, err
	}
	for _, row := range tagRows {
		tags[row.TaskID] = append(tags[row.TaskID], row.Tag)
	}

	comments := make(map[string][]domain.Comment)
	var commentRows []commentRow
	if err := r.selectIn(ctx, &commentRows,
		"SELECT id, task_id, content, author_id, created_at, updated_at FROM task_comments WHERE task_id IN (?) ORDER BY created_at;", taskIDs); err != nil {
		return nil, err
	}
	for _, row := range commentRows {
		comments[row.TaskID] = append(comments[row.TaskID], domain.Comment{
			ID:        row.ID,
			Content:   row.Content,
			AuthorID:  row.AuthorID,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}

	files := make(map[string][]domain.File)
	var fileRows []fileRow
	if err := r.selectIn(ctx, &fileRows,
		"SELECT id, task_id, file_name, file_size, file_type, storage_path, uploaded_by_id, uploaded_at FROM task_files WHERE task_id IN (?) ORDER BY uploaded_at;", taskIDs); err != nil {
		return nil, err
	}
	for _, row := range fileRows {
		files[row.TaskID] = append(files[row.TaskID], domain.File{
			ID:           row.ID,
			FileName:     row.FileName,
			FileSize:     row.FileSize,
			FileType:     row.FileType,
			StoragePath:  row.StoragePath,
			UploadedByID: row.UploadedByID,
			UploadedAt:   row.UploadedAt,
		})
	}

	for _, row := range rows {
		tasks = append(tasks, domain.RehydrateTask(domain.TaskRecord{
			ID:                row.ID,
			Title:             row.Title,
			Description:       row.Description,
			Priority:          row.Priority,
			DueDate:           row.DueDate,
			Status:            domain.TaskStatus(row.Status),
			OwnerID:           row.OwnerID,
			DepartmentID:      row.DepartmentID,
			ProjectID:         nullableString(row.ProjectID),
			ParentTaskID:      nullableString(row.ParentTaskID),
			RecurringInterval: nullableInt(row.RecurringInterval),
			IsArchived:        row.IsArchived,
			Assignees:         assignees[row.ID],
			Tags:              tags[row.ID],
			Comments:          comments[row.ID],
			Files:             files[row.ID],
			CreatedAt:         row.CreatedAt,
			StartDate:         nullableTime(row.StartDate),
			UpdatedAt:         row.UpdatedAt,
			CompletedAt:       nullableTime(row.CompletedAt),
		}, r.limits))
	}
	return tasks, nil
}

func (r *TaskRepository) selectIn(ctx context.Context, dest interface{}, query string, ids []string) error {
	query, args, err := sqlx.In(query, ids)
	if err != nil {
		return err
	}
	return r.db.SelectContext(ctx, dest, r.db.Rebind(query), args...)
}

func mapTaskToRow(task *domain.Task) taskRow {
	row := taskRow{
		ID:           task.ID(),
		Title:        task.Title(),
		Description:  task.Description(),
		Priority:     task.Priority().Level(),
		DueDate:      task.DueDate(),
		Status:       string(task.Status()),
		OwnerID:      task.OwnerID(),
		DepartmentID: task.DepartmentID(),
		IsArchived:   task.IsArchived(),
		CreatedAt:    task.CreatedAt(),
		UpdatedAt:    task.UpdatedAt(),
	}
	if value := task.ProjectID(); value != nil {
		row.ProjectID = sql.NullString{String: *value, Valid: true}
	}
	if value := task.ParentTaskID(); value != nil {
		row.ParentTaskID = sql.NullString{String: *value, Valid: true}
	}
	if value := task.RecurringInterval(); value != nil {
		row.RecurringInterval = sql.NullInt64{Int64: int64(*value), Valid: true}
	}
	if value := task.StartDate(); value != nil {
		row.StartDate = sql.NullTime{Time: *value, Valid: true}
	}
	if value := task.CompletedAt(); value != nil {
		row.CompletedAt = sql.NullTime{Time: *value, Valid: true}
	}
	return row
}

func nullableString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	return &value.String
}

func nullableInt(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	converted := int(value.Int64)
	return &converted
}

func nullableTime(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	return &value.Time
}
