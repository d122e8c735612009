package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktrack/internal/adapter/http/mapper"
	"tasktrack/internal/adapter/http/middleware"
	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
	"tasktrack/pkg/apierrors"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	filters := ports.DashboardFilters{
		IncludeArchived: c.Query("include_archived") == "true",
	}
	if value := c.Query("department"); value != "" {
		filters.DepartmentName = &value
	}
	if value := c.Query("project_id"); value != "" {
		filters.ProjectID = &value
	}
	if value := c.Query("assignee_id"); value != "" {
		filters.AssigneeID = &value
	}
	if value := c.Query("status"); value != "" {
		status := domain.TaskStatus(value)
		if !status.Valid() {
			respondInvalidPayload(c)
			return
		}
		filters.Status = &status
	}

	dashboard, err := h.dashboardService.Dashboard(c.Request.Context(), user, filters)
	if err != nil {
		zap.L().Error("failed to build dashboard",
			zap.String("user_id", user.UserID),
			zap.String("role", string(user.Role)),
			zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDashboard, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDashboardResponse(dashboard))
}
