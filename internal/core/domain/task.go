package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "TO_DO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusBlocked    TaskStatus = "BLOCKED"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusCompleted, TaskStatusBlocked:
		return true
	default:
		return false
	}
}

type Comment struct {
	ID        string
	Content   string
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type File struct {
	ID           string
	FileName     string
	FileSize     int64
	FileType     string
	StoragePath  string
	UploadedByID string
	UploadedAt   time.Time
}

// FileUpload is the caller-supplied part of a File; id, uploader and
// timestamp are filled in by AddFile.
type FileUpload struct {
	FileName    string
	FileSize    int64
	FileType    string
	StoragePath string
}

type CreateTaskInput struct {
	Title             string
	Description       string
	Priority          int
	DueDate           time.Time
	OwnerID           string
	DepartmentID      string
	ProjectID         *string
	ParentTaskID      *string
	RecurringInterval *int
	Assignees         []string
	Tags              []string
}

// Task is the aggregate root. All fields are private; state changes go
// through the named mutators below, each of which re-validates the
// invariants it touches and stamps updatedAt.
type Task struct {
	id                string
	title             string
	description       string
	priority          PriorityBucket
	dueDate           time.Time
	status            TaskStatus
	ownerID           string
	departmentID      string
	projectID         *string
	parentTaskID      *string
	recurringInterval *int
	isArchived        bool
	assignments       map[string]struct{}
	tags              map[string]struct{}
	comments          []Comment
	files             []File
	createdAt         time.Time
	startDate         *time.Time
	updatedAt         time.Time
	completedAt       *time.Time
	limits            TaskLimits
}

// NewTask is the only way to build a Task from untrusted input.
func NewTask(input CreateTaskInput, limits TaskLimits) (*Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrInvalidTitle
	}

	priority, err := NewPriorityBucket(input.Priority)
	if err != nil {
		return nil, err
	}

	assignments := make(map[string]struct{}, len(input.Assignees))
	for _, userID := range input.Assignees {
		assignments[userID] = struct{}{}
	}
	if len(assignments) < limits.MinAssignees {
		return nil, ErrNoAssignees
	}
	if len(assignments) > limits.MaxAssignees {
		return nil, ErrMaxAssigneesReached
	}

	if input.RecurringInterval != nil && *input.RecurringInterval <= 0 {
		return nil, ErrInvalidRecurrence
	}

	if input.ProjectID != nil && *input.ProjectID == "" {
		return nil, ErrEmptyProjectID
	}

	tags := make(map[string]struct{}, len(input.Tags))
	for _, tag := range input.Tags {
		tags[tag] = struct{}{}
	}

	now := time.Now().UTC()
	return &Task{
		id:                uuid.NewString(),
		title:             title,
		description:       input.Description,
		priority:          priority,
		dueDate:           input.DueDate,
		status:            TaskStatusToDo,
		ownerID:           input.OwnerID,
		departmentID:      input.DepartmentID,
		projectID:         copyStringPtr(input.ProjectID),
		parentTaskID:      copyStringPtr(input.ParentTaskID),
		recurringInterval: copyIntPtr(input.RecurringInterval),
		isArchived:        false,
		assignments:       assignments,
		tags:              tags,
		createdAt:         now,
		updatedAt:         now,
		limits:            limits,
	}, nil
}

// TaskRecord is a trusted persisted snapshot used to rebuild an aggregate.
// It bypasses creation validation, so only the persistence adapter may
// construct one.
type TaskRecord struct {
	ID                string
	Title             string
	Description       string
	Priority          int
	DueDate           time.Time
	Status            TaskStatus
	OwnerID           string
	DepartmentID      string
	ProjectID         *string
	ParentTaskID      *string
	RecurringInterval *int
	IsArchived        bool
	Assignees         []string
	Tags              []string
	Comments          []Comment
	Files             []File
	CreatedAt         time.Time
	StartDate         *time.Time
	UpdatedAt         time.Time
	CompletedAt       *time.Time
}

func RehydrateTask(record TaskRecord, limits TaskLimits) *Task {
	assignments := make(map[string]struct{}, len(record.Assignees))
	for _, userID := range record.Assignees {
		assignments[userID] = struct{}{}
	}
	tags := make(map[string]struct{}, len(record.Tags))
	for _, tag := range record.Tags {
		tags[tag] = struct{}{}
	}

	return &Task{
		id:                record.ID,
		title:             record.Title,
		description:       record.Description,
		priority:          PriorityBucket{level: record.Priority},
		dueDate:           record.DueDate,
		status:            record.Status,
		ownerID:           record.OwnerID,
		departmentID:      record.DepartmentID,
		projectID:         copyStringPtr(record.ProjectID),
		parentTaskID:      copyStringPtr(record.ParentTaskID),
		recurringInterval: copyIntPtr(record.RecurringInterval),
		isArchived:        record.IsArchived,
		assignments:       assignments,
		tags:              tags,
		comments:          append([]Comment(nil), record.Comments...),
		files:             append([]File(nil), record.Files...),
		createdAt:         record.CreatedAt,
		startDate:         copyTimePtr(record.StartDate),
		updatedAt:         record.UpdatedAt,
		completedAt:       copyTimePtr(record.CompletedAt),
		limits:            limits,
	}
}

func (t *Task) ID() string              { return t.id }
func (t *Task) Title() string           { return t.title }
func (t *Task) Description() string     { return t.description }
func (t *Task) Priority() PriorityBucket { return t.priority }
func (t *Task) DueDate() time.Time      { return t.dueDate }
func (t *Task) Status() TaskStatus      { return t.status }
func (t *Task) OwnerID() string         { return t.ownerID }
func (t *Task) DepartmentID() string    { return t.departmentID }
func (t *Task) ProjectID() *string      { return copyStringPtr(t.projectID) }
func (t *Task) ParentTaskID() *string   { return copyStringPtr(t.parentTaskID) }
func (t *Task) RecurringInterval() *int { return copyIntPtr(t.recurringInterval) }
func (t *Task) IsArchived() bool        { return t.isArchived }
func (t *Task) CreatedAt() time.Time    { return t.createdAt }
func (t *Task) StartDate() *time.Time   { return copyTimePtr(t.startDate) }
func (t *Task) UpdatedAt() time.Time    { return t.updatedAt }
func (t *Task) CompletedAt() *time.Time { return copyTimePtr(t.completedAt) }
func (t *Task) Limits() TaskLimits      { return t.limits }

func (t *Task) IsSubtask() bool {
	return t.parentTaskID != nil
}

// Assignees returns a sorted copy; the live set is never handed out.
func (t *Task) Assignees() []string {
	return sortedKeys(t.assignments)
}

func (t *Task) IsAssigned(userID string) bool {
	_, ok := t.assignments[userID]
	return ok
}

func (t *Task) Tags() []string {
	return sortedKeys(t.tags)
}

func (t *Task) Comments() []Comment {
	return append([]Comment(nil), t.comments...)
}

func (t *Task) Files() []File {
	return append([]File(nil), t.files...)
}

func (t *Task) TotalFileSize() int64 {
	var total int64
	for _, f := range t.files {
		total += f.FileSize
	}
	return total
}

func (t *Task) UpdateTitle(newTitle string) error {
	title := strings.TrimSpace(newTitle)
	if title == "" {
		return ErrInvalidTitle
	}
	t.title = title
	t.touch()
	return nil
}

func (t *Task) UpdateDescription(newDescription string) {
	t.description = newDescription
	t.touch()
}

func (t *Task) UpdatePriority(newLevel int) error {
	priority, err := NewPriorityBucket(newLevel)
	if err != nil {
		return err
	}
	t.priority = priority
	t.touch()
	return nil
}

// UpdateDeadline accepts any timestamp, past dates included. The parent
// deadline is supplied by the caller when the task is a subtask; equality
// is allowed, only exceeding the parent is rejected.
func (t *Task) UpdateDeadline(newDeadline time.Time, parentDeadline *time.Time) error {
	if t.IsSubtask() && parentDeadline != nil && newDeadline.After(*parentDeadline) {
		return ErrInvalidSubtaskDeadline
	}
	t.dueDate = newDeadline
	t.touch()
	return nil
}

// UpdateStatus has no transition graph: any status may follow any other,
// including reopening a completed task. Only the first entry into
// IN_PROGRESS records the start date.
func (t *Task) UpdateStatus(newStatus TaskStatus) {
	if newStatus == TaskStatusInProgress && t.startDate == nil {
		now := time.Now().UTC()
		t.startDate = &now
	}
	t.status = newStatus
	t.touch()
}

func (t *Task) AddTag(tag string) {
	t.tags[tag] = struct{}{}
	t.touch()
}

func (t *Task) RemoveTag(tag string) {
	delete(t.tags, tag)
	t.touch()
}

// AddAssignee lets a manager add anyone; every other actor must already
// be assigned. Re-adding an existing assignee is a no-op without a
// timestamp bump.
func (t *Task) AddAssignee(newUserID, actorID string, actorRole Role) error {
	if actorRole != RoleManager && !t.IsAssigned(actorID) {
		return ErrUnauthorized
	}
	if t.IsAssigned(newUserID) {
		return nil
	}
	if len(t.assignments) >= t.limits.MaxAssignees {
		return ErrMaxAssigneesReached
	}
	t.assignments[newUserID] = struct{}{}
	t.touch()
	return nil
}

// RemoveAssignee is manager-only. Removing the owner from the assignment
// set is allowed and leaves ownership untouched.
func (t *Task) RemoveAssignee(userID, actorID string, actorRole Role) error {
	if actorRole != RoleManager {
		return ErrUnauthorized
	}
	if !t.IsAssigned(userID) {
		return ErrAssigneeNotFound
	}
	if len(t.assignments) <= t.limits.MinAssignees {
		return ErrMinAssignees
	}
	delete(t.assignments, userID)
	t.touch()
	return nil
}

// AddComment performs no membership check; gating who may comment is the
// service's responsibility.
func (t *Task) AddComment(content, userID string) Comment {
	now := time.Now().UTC()
	comment := Comment{
		ID:        uuid.NewString(),
		Content:   content,
		AuthorID:  userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	t.comments = append(t.comments, comment)
	t.touch()
	return comment
}

// UpdateComment only lets the original author edit.
func (t *Task) UpdateComment(commentID, newContent, userID string) error {
	for i := range t.comments {
		if t.comments[i].ID != commentID {
			continue
		}
		if t.comments[i].AuthorID != userID {
			return ErrUnauthorized
		}
		t.comments[i].Content = newContent
		t.comments[i].UpdatedAt = time.Now().UTC()
		t.touch()
		return nil
	}
	return ErrCommentNotFound
}

func (t *Task) AddFile(upload FileUpload, userID string) (File, error) {
	if !t.IsAssigned(userID) {
		return File{}, ErrUnauthorized
	}
	fileType := strings.ToLower(strings.TrimSpace(upload.FileType))
	if !t.limits.allowsFileType(fileType) {
		return File{}, ErrInvalidFileType
	}
	if t.TotalFileSize()+upload.FileSize > t.limits.MaxTotalFileSize {
		return File{}, ErrFileSizeLimitExceeded
	}
	file := File{
		ID:           uuid.NewString(),
		FileName:     upload.FileName,
		FileSize:     upload.FileSize,
		FileType:     fileType,
		StoragePath:  upload.StoragePath,
		UploadedByID: userID,
		UploadedAt:   time.Now().UTC(),
	}
	t.files = append(t.files, file)
	t.touch()
	return file, nil
}

func (t *Task) RemoveFile(fileID, userID string) error {
	if !t.IsAssigned(userID) {
		return ErrUnauthorized
	}
	for i := range t.files {
		if t.files[i].ID == fileID {
			t.files = append(t.files[:i], t.files[i+1:]...)
			t.touch()
			return nil
		}
	}
	// Unknown file ids are ignored.
	return nil
}

// UpdateRecurring enables recurrence with a positive interval, or
// disables it and clears the interval whatever was passed.
func (t *Task) UpdateRecurring(enabled bool, interval *int) error {
	if enabled {
		if interval == nil || *interval <= 0 {
			return ErrInvalidRecurrence
		}
		value := *interval
		t.recurringInterval = &value
	} else {
		t.recurringInterval = nil
	}
	t.touch()
	return nil
}

func (t *Task) Archive() {
	t.isArchived = true
	t.touch()
}

func (t *Task) Unarchive() {
	t.isArchived = false
	t.touch()
}

// Complete re-sets completedAt on every call; the timestamp refreshes
// even when the task is already completed.
func (t *Task) Complete(userID string) error {
	if !t.IsAssigned(userID) {
		return ErrUnauthorized
	}
	now := time.Now().UTC()
	t.status = TaskStatusCompleted
	t.completedAt = &now
	t.touch()
	return nil
}

func (t *Task) IsOverdue() bool {
	return time.Now().After(t.dueDate) && t.status != TaskStatusCompleted
}

func (t *Task) touch() {
	t.updatedAt = time.Now().UTC()
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func copyStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

func copyIntPtr(value *int) *int {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}

func copyTimePtr(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
