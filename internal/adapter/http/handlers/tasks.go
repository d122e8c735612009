package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/adapter/http/dto"
	"tasktrack/internal/adapter/http/mapper"
	"tasktrack/internal/adapter/http/middleware"
	"tasktrack/internal/adapter/http/validation"
	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	user := middleware.GetUser(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}
	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), user, input)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	user := middleware.GetUser(c)

	task, canEdit, err := h.taskService.GetTask(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItemWithEdit(task, canEdit))
}

func (h *TaskHandler) UpdateTitle(c *gin.Context) {
	var req dto.UpdateTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respondMutation(c, func(user domain.UserContext) (*domain.Task, error) {
		return h.taskService.UpdateTitle(c.Request.Context(), user, c.Param("id"), req.Title)
	})
}

func (h *TaskHandler) UpdateDescription(c *gin.Context) {
	var req dto.UpdateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respondMutation(c, func(user domain.UserContext) (*domain.Task, error) {
		return h.taskService.UpdateDescription(c.Request.Context(), user, c.Param("id"), req.Description)
	})
}

func (h *TaskHandler) UpdatePriority(c *gin.Context) {
	var req dto.UpdatePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respondMutation(c, func(user domain.UserContext) (*domain.Task, error) {
		return h.taskService.UpdatePriority(c.Request.Context(), user, c.Param("id"), req.Priority)
	})
}

func (h *TaskHandler) UpdateDeadline(c *gin.Context) {
	var req dto.UpdateDeadlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}
	dueDate, err := validation.ParseDeadline(req.DueDate)
	if err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respondMutation(c, func(user domain.UserContext) (*domain.Task, error) {
		return h.taskService.UpdateDeadline(c.Request.Context(), user, c.Param("id"), dueDate)
	})
}

func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respondMutation(c, func(user domain.UserContext) (*domain.Task, error) {
		return h.taskService.UpdateStatus(c.Request.Context(), user, c.Param("id"), domain.TaskStatus(req.Status))
	})
}

func (h *TaskHandler) AddTag(c *gin.Context) {
	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respondMutation(c, func(user domain.UserContext) (*domain.Task, error) {
		return h.taskService.AddTag(c.Request.Context(), user, c.Param("id"), req.Tag)
	})
}

func (h *TaskHandler) RemoveTag(c *gin.Context) {
	h.respondMutation(c, func(user domain.UserContext) (*domain.Task, error) {
		return h.taskService.RemoveTag(c.Request.Context(), user, c.Param("id"), c.Param("tag"))
	})
}

func (h *TaskHandler) AddAssignee(c *gin.Context) {
	var req dto.AssigneeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respondMutation(c, func(user domain.UserContext) (*domain.Task, error) {
		return h.taskService.AddAssignee(c.Request.Context(), user, c.Param("id"), req.UserID)
	})
}

func (h *TaskHandler) RemoveAssignee(c *gin.Context) {
	h.respondMutation(c, func(user domain.UserContext) (*domain.Task, error) {
		return h.taskService.RemoveAssignee(c.Request.Context(), user, c.Param("id"), c.Param("userId"))
	})
}

func (h *TaskHandler) AddComment(c *gin.Context) {
	user := middleware.GetUser(c)

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	comment, err := h.taskService.AddComment(c.Request.Context(), user, c.Param("id"), req.Content)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCommentItem(comment))
}

func (h *TaskHandler) UpdateComment(c *gin.Context) {
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respondMutation(c, func(user domain.UserContext) (*domain.Task, error) {
		return h.taskService.UpdateComment(c.Request.Context(), user, c.Param("id"), c.Param("commentId"), req.Content)
	})
}

func (h *TaskHandler) AddFile(c *gin.Context) {
	user := middleware.GetUser(c)

	var req dto.FileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	file, err := h.taskService.AddFile(c.Request.Context(), user, c.Param("id"), domain.FileUpload{
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		FileType:    req.FileType,
		StoragePath: req.StoragePath,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToFileItem(file))
}

func (h *TaskHandler) RemoveFile(c *gin.Context) {
	h.respondMutation(c, func(user domain.UserContext) (*domain.Task, error) {
		return h.taskService.RemoveFile(c.Request.Context(), user, c.Param("id"), c.Param("fileId"))
	})
}

func (h *TaskHandler) UpdateRecurring(c *gin.Context) {
	var req dto.RecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}
	h.respondMutation(c, func(user domain.UserContext) (*domain.Task, error) {
		return h.taskService.UpdateRecurring(c.Request.Context(), user, c.Param("id"), req.Enabled, req.Interval)
	})
}

func (h *TaskHandler) Archive(c *gin.Context) {
	h.respondMutation(c, func(user domain.UserContext) (*domain.Task, error) {
		return h.taskService.Archive(c.Request.Context(), user, c.Param("id"))
	})
}

func (h *TaskHandler) Unarchive(c *gin.Context) {
	h.respondMutation(c, func(user domain.UserContext) (*domain.Task, error) {
		return h.taskService.Unarchive(c.Request.Context(), user, c.Param("id"))
	})
}

func (h *TaskHandler) Complete(c *gin.Context) {
	h.respondMutation(c, func(user domain.UserContext) (*domain.Task, error) {
		return h.taskService.Complete(c.Request.Context(), user, c.Param("id"))
	})
}

func (h *TaskHandler) respondMutation(c *gin.Context, mutate func(domain.UserContext) (*domain.Task, error)) {
	user := middleware.GetUser(c)

	task, err := mutate(user)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}
