package dto

type PriorityItem struct {
	Level       int    `json:"level"`
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

type CommentItem struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	AuthorID  string `json:"author_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type FileItem struct {
	ID           string `json:"id"`
	FileName     string `json:"file_name"`
	FileSize     int64  `json:"file_size"`
	FileType     string `json:"file_type"`
	StoragePath  string `json:"storage_path"`
	UploadedByID string `json:"uploaded_by_id"`
	UploadedAt   string `json:"uploaded_at"`
}

type TaskItem struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Priority          PriorityItem  `json:"priority"`
	DueDate           string        `json:"due_date"`
	Status            string        `json:"status"`
	OwnerID           string        `json:"owner_id"`
	DepartmentID      string        `json:"department_id"`
	ProjectID         *string       `json:"project_id,omitempty"`
	ParentTaskID      *string       `json:"parent_task_id,omitempty"`
	RecurringInterval *int          `json:"recurring_interval,omitempty"`
	IsArchived        bool          `json:"is_archived"`
	IsOverdue         bool          `json:"is_overdue"`
	Assignees         []string      `json:"assignees"`
	Tags              []string      `json:"tags"`
	Comments          []CommentItem `json:"comments"`
	Files             []FileItem    `json:"files"`
	CreatedAt         string        `json:"created_at"`
	StartDate         *string       `json:"start_date,omitempty"`
	UpdatedAt         string        `json:"updated_at"`
	CompletedAt       *string       `json:"completed_at,omitempty"`
	CanEdit           *bool         `json:"can_edit,omitempty"`
}

type CreateTaskRequest struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Priority          int      `json:"priority"`
	DueDate           string   `json:"due_date" binding:"required"`
	ProjectID         *string  `json:"project_id"`
	ParentTaskID      *string  `json:"parent_task_id"`
	RecurringInterval *int     `json:"recurring_interval"`
	Assignees         []string `json:"assignees"`
	Tags              []string `json:"tags"`
}

type UpdateTitleRequest struct {
	Title string `json:"title"`
}

type UpdateDescriptionRequest struct {
	Description string `json:"description"`
}

type UpdatePriorityRequest struct {
	Priority int `json:"priority"`
}

type UpdateDeadlineRequest struct {
	DueDate string `json:"due_date" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=TO_DO IN_PROGRESS COMPLETED BLOCKED"`
}

type TagRequest struct {
	Tag string `json:"tag" binding:"required"`
}

type AssigneeRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type FileRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	FileSize    int64  `json:"file_size" binding:"required,gt=0"`
	FileType    string `json:"file_type" binding:"required"`
	StoragePath string `json:"storage_path" binding:"required"`
}

type RecurringRequest struct {
	Enabled  bool `json:"enabled"`
	Interval *int `json:"interval"`
}

type SummaryItem struct {
	ToDo       int `json:"to_do"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Blocked    int `json:"blocked"`
}

type DashboardResponse struct {
	Summary SummaryItem `json:"summary"`
	Tasks   []TaskItem  `json:"tasks"`
}
