package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tasktrack/internal/adapter/http/dto"
	"tasktrack/internal/adapter/http/handlers"
	"tasktrack/internal/adapter/http/middleware"
	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
)

type dashboardServiceMock struct {
	mock.Mock
}

func (m *dashboardServiceMock) Dashboard(ctx context.Context, user domain.UserContext, filters ports.DashboardFilters) (ports.Dashboard, error) {
	args := m.Called(ctx, user, filters)
	return args.Get(0).(ports.Dashboard), args.Error(1)
}

var _ ports.DashboardService = (*dashboardServiceMock)(nil)

func newDashboardRouter(serviceMock *dashboardServiceMock) *gin.Engine {
	router := gin.New()
	handler := handlers.NewDashboardHandler(serviceMock)
	router.GET("/api/dashboard", middleware.LanguageMiddleware(), middleware.IdentityMiddleware(), handler.GetDashboard)
	return router
}

func TestDashboardHandler_ParsesFilters(t *testing.T) {
	task := sampleTask(t)
	serviceMock := new(dashboardServiceMock)
	status := domain.TaskStatusInProgress
	department := "Engineering"
	serviceMock.On("Dashboard", mock.Anything, mock.Anything, ports.DashboardFilters{
		DepartmentName:  &department,
		Status:          &status,
		IncludeArchived: true,
	}).Return(ports.Dashboard{
		Summary: ports.StatusSummary{InProgress: 1},
		Items:   []ports.DashboardItem{{Task: task, CanEdit: true}},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet,
		"/api/dashboard?department=Engineering&status=IN_PROGRESS&include_archived=true", nil)
	identify(req, "MANAGER")
	rec := httptest.NewRecorder()
	newDashboardRouter(serviceMock).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 1, got.Summary.InProgress)
	require.Len(t, got.Tasks, 1)
	require.Equal(t, task.ID(), got.Tasks[0].ID)
	require.NotNil(t, got.Tasks[0].CanEdit)
	require.True(t, *got.Tasks[0].CanEdit)
	serviceMock.AssertExpectations(t)
}

func TestDashboardHandler_RejectsUnknownStatusFilter(t *testing.T) {
	serviceMock := new(dashboardServiceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard?status=ON_HOLD", nil)
	identify(req, "MANAGER")
	rec := httptest.NewRecorder()
	newDashboardRouter(serviceMock).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "Dashboard")
}

func TestDashboardHandler_ServiceFailure(t *testing.T) {
	serviceMock := new(dashboardServiceMock)
	serviceMock.On("Dashboard", mock.Anything, mock.Anything, mock.Anything).
		Return(ports.Dashboard{}, errors.New("db down")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	identify(req, "STAFF")
	rec := httptest.NewRecorder()
	newDashboardRouter(serviceMock).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	serviceMock.AssertExpectations(t)
}
