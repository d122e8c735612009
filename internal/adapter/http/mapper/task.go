package mapper

import (
	"time"

	"tasktrack/internal/adapter/http/dto"
	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
)

func ToTaskItem(task *domain.Task) dto.TaskItem {
	priority := task.Priority()
	item := dto.TaskItem{
		ID:          task.ID(),
		Title:       task.Title(),
		Description: task.Description(),
		Priority: dto.PriorityItem{
			Level:       priority.Level(),
			Label:       priority.Label(),
			Color:       priority.Color(),
			Description: priority.Description(),
		},
		DueDate:           task.DueDate().Format(time.RFC3339),
		Status:            string(task.Status()),
		OwnerID:           task.OwnerID(),
		DepartmentID:      task.DepartmentID(),
		ProjectID:         task.ProjectID(),
		ParentTaskID:      task.ParentTaskID(),
		RecurringInterval: task.RecurringInterval(),
		IsArchived:        task.IsArchived(),
		IsOverdue:         task.IsOverdue(),
		Assignees:         task.Assignees(),
		Tags:              task.Tags(),
		Comments:          toCommentItems(task.Comments()),
		Files:             toFileItems(task.Files()),
		CreatedAt:         task.CreatedAt().Format(time.RFC3339),
		UpdatedAt:         task.UpdatedAt().Format(time.RFC3339),
	}

	if value := task.StartDate(); value != nil {
		formatted := value.Format(time.RFC3339)
		item.StartDate = &formatted
	}
	if value := task.CompletedAt(); value != nil {
		formatted := value.Format(time.RFC3339)
		item.CompletedAt = &formatted
	}
	return item
}

func ToTaskItemWithEdit(task *domain.Task, canEdit bool) dto.TaskItem {
	item := ToTaskItem(task)
	item.CanEdit = &canEdit
	return item
}

func ToCommentItem(comment domain.Comment) dto.CommentItem {
	return dto.CommentItem{
		ID:        comment.ID,
		Content:   comment.Content,
		AuthorID:  comment.AuthorID,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		UpdatedAt: comment.UpdatedAt.Format(time.RFC3339),
	}
}

func ToFileItem(file domain.File) dto.FileItem {
	return dto.FileItem{
		ID:           file.ID,
		FileName:     file.FileName,
		FileSize:     file.FileSize,
		FileType:     file.FileType,
		StoragePath:  file.StoragePath,
		UploadedByID: file.UploadedByID,
		UploadedAt:   file.UploadedAt.Format(time.RFC3339),
	}
}

func ToDashboardResponse(dashboard ports.Dashboard) dto.DashboardResponse {
	response := dto.DashboardResponse{
		Summary: dto.SummaryItem{
			ToDo:       dashboard.Summary.ToDo,
			InProgress: dashboard.Summary.InProgress,
			Completed:  dashboard.Summary.Completed,
			Blocked:    dashboard.Summary.Blocked,
		},
		Tasks: make([]dto.TaskItem, 0, len(dashboard.Items)),
	}
	for _, item := range dashboard.Items {
		response.Tasks = append(response.Tasks, ToTaskItemWithEdit(item.Task, item.CanEdit))
	}
	return response
}

func toCommentItems(comments []domain.Comment) []dto.CommentItem {
	items := make([]dto.CommentItem, 0, len(comments))
	for _, comment := range comments {
		items = append(items, ToCommentItem(comment))
	}
	return items
}

func toFileItems(files []domain.File) []dto.FileItem {
	items := make([]dto.FileItem, 0, len(files))
	for _, file := range files {
		items = append(items, ToFileItem(file))
	}
	return items
}
