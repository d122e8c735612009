package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tasktrack/internal/app/service"
	"tasktrack/internal/core/access"
	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
)

// taskRepoFake keeps aggregates in memory; saved tasks are the same
// pointers handed back by LoadTask, matching the read-your-writes
// contract of the real store within one operation.
type taskRepoFake struct {
	tasks map[string]*domain.Task
	saved int
}

func newTaskRepoFake() *taskRepoFake {
	return &taskRepoFake{tasks: make(map[string]*domain.Task)}
}

func (f *taskRepoFake) LoadTask(ctx context.Context, id string) (*domain.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (f *taskRepoFake) SaveTask(ctx context.Context, task *domain.Task) error {
	f.tasks[task.ID()] = task
	f.saved++
	return nil
}

func (f *taskRepoFake) ListTasksByDepartments(ctx context.Context, departmentIDs []string, includeArchived bool) ([]*domain.Task, error) {
	wanted := make(map[string]struct{}, len(departmentIDs))
	for _, id := range departmentIDs {
		wanted[id] = struct{}{}
	}
	var out []*domain.Task
	for _, task := range f.tasks {
		if _, ok := wanted[task.DepartmentID()]; !ok {
			continue
		}
		if task.IsArchived() && !includeArchived {
			continue
		}
		out = append(out, task)
	}
	return out, nil
}

func (f *taskRepoFake) ListTasksForUser(ctx context.Context, userID string, includeArchived bool) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, task := range f.tasks {
		if !task.IsAssigned(userID) && task.OwnerID() != userID {
			continue
		}
		if task.IsArchived() && !includeArchived {
			continue
		}
		out = append(out, task)
	}
	return out, nil
}

func (f *taskRepoFake) ListAllTasks(ctx context.Context, includeArchived bool) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, task := range f.tasks {
		if task.IsArchived() && !includeArchived {
			continue
		}
		out = append(out, task)
	}
	return out, nil
}

type departmentRepoFake struct {
	departments []domain.Department
}

func (f *departmentRepoFake) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return f.departments, nil
}

type projectRepoFake struct {
	existing map[string]bool
}

func (f *projectRepoFake) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	return f.existing[projectID], nil
}

func ptr(s string) *string { return &s }

func testForest() []domain.Department {
	return []domain.Department{
		{ID: "root", Name: "Root"},
		{ID: "eng", Name: "Engineering", ParentID: ptr("root")},
		{ID: "eng-dev", Name: "Engineering/Dev", ParentID: ptr("eng")},
		{ID: "sales", Name: "Sales", ParentID: ptr("root")},
	}
}

type fixture struct {
	tasks    *taskRepoFake
	projects *projectRepoFake
	service  *service.TaskService
}

func newFixture() *fixture {
	tasks := newTaskRepoFake()
	projects := &projectRepoFake{existing: map[string]bool{"proj-1": true}}
	engine := access.NewEngine(&departmentRepoFake{departments: testForest()})
	return &fixture{
		tasks:    tasks,
		projects: projects,
		service:  service.NewTaskService(tasks, projects, engine, domain.DefaultTaskLimits()),
	}
}

func staff(userID, deptID string) domain.UserContext {
	return domain.UserContext{UserID: userID, Role: domain.RoleStaff, DepartmentID: deptID}
}

func manager(userID, deptID string) domain.UserContext {
	return domain.UserContext{UserID: userID, Role: domain.RoleManager, DepartmentID: deptID}
}

func createInput() ports.CreateTaskInput {
	return ports.CreateTaskInput{
		Title:     "Ship release",
		Priority:  5,
		DueDate:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Assignees: []string{"alice"},
	}
}

func TestCreateTask_PersistsAggregate(t *testing.T) {
	f := newFixture()

	task, err := f.service.CreateTask(context.Background(), staff("alice", "eng"), createInput())
	require.NoError(t, err)
	require.Equal(t, "alice", task.OwnerID())
	require.Equal(t, "eng", task.DepartmentID())
	require.Equal(t, 1, f.tasks.saved)
}

func TestCreateTask_ProjectValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	input := createInput()
	input.ProjectID = ptr("")
	_, err := f.service.CreateTask(ctx, staff("alice", "eng"), input)
	require.ErrorIs(t, err, domain.ErrEmptyProjectID)

	input.ProjectID = ptr("ghost-project")
	_, err = f.service.CreateTask(ctx, staff("alice", "eng"), input)
	require.ErrorIs(t, err, domain.ErrProjectNotFound)

	input.ProjectID = ptr("proj-1")
	task, err := f.service.CreateTask(ctx, staff("alice", "eng"), input)
	require.NoError(t, err)
	require.Equal(t, "proj-1", *task.ProjectID())
}

func TestCreateTask_DomainErrorsPropagate(t *testing.T) {
	f := newFixture()

	input := createInput()
	input.Assignees = nil
	_, err := f.service.CreateTask(context.Background(), staff("alice", "eng"), input)
	require.ErrorIs(t, err, domain.ErrNoAssignees)
	require.Zero(t, f.tasks.saved)
}

func TestUpdateTitle_AuthorizationPaths(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	task, err := f.service.CreateTask(ctx, staff("alice", "eng-dev"), createInput())
	require.NoError(t, err)

	// An unrelated staff member from another department is rejected.
	_, err = f.service.UpdateTitle(ctx, staff("bob", "sales"), task.ID(), "New")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	// The assignee may update.
	updated, err := f.service.UpdateTitle(ctx, staff("alice", "eng-dev"), task.ID(), "New")
	require.NoError(t, err)
	require.Equal(t, "New", updated.Title())

	// A manager above the task's department may update without being assigned.
	updated, err = f.service.UpdateTitle(ctx, manager("mgr", "eng"), task.ID(), "Newer")
	require.NoError(t, err)
	require.Equal(t, "Newer", updated.Title())

	// A manager of a peer department may not.
	_, err = f.service.UpdateTitle(ctx, manager("smgr", "sales"), task.ID(), "Nope")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdateDeadline_LoadsParentBound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	parent, err := f.service.CreateTask(ctx, staff("alice", "eng"), createInput())
	require.NoError(t, err)
	parentDue := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	_, err = f.service.UpdateDeadline(ctx, staff("alice", "eng"), parent.ID(), parentDue)
	require.NoError(t, err)

	childInput := createInput()
	parentID := parent.ID()
	childInput.ParentTaskID = &parentID
	child, err := f.service.CreateTask(ctx, staff("alice", "eng"), childInput)
	require.NoError(t, err)

	// Equal to the parent deadline passes.
	_, err = f.service.UpdateDeadline(ctx, staff("alice", "eng"), child.ID(), parentDue)
	require.NoError(t, err)

	// One day beyond the parent deadline fails.
	_, err = f.service.UpdateDeadline(ctx, staff("alice", "eng"), child.ID(),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, domain.ErrInvalidSubtaskDeadline)
}

func TestAssigneeOperations_RoleRulesReachEntity(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	task, err := f.service.CreateTask(ctx, staff("alice", "eng"), createInput())
	require.NoError(t, err)

	_, err = f.service.AddAssignee(ctx, staff("bob", "eng"), task.ID(), "carol")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.service.AddAssignee(ctx, manager("mgr", "eng"), task.ID(), "carol")
	require.NoError(t, err)

	_, err = f.service.RemoveAssignee(ctx, staff("alice", "eng"), task.ID(), "carol")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.service.RemoveAssignee(ctx, manager("mgr", "eng"), task.ID(), "carol")
	require.NoError(t, err)
}

func TestAddComment_RequiresVisibility(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	task, err := f.service.CreateTask(ctx, staff("alice", "eng"), createInput())
	require.NoError(t, err)

	_, err = f.service.AddComment(ctx, staff("stranger", "sales"), task.ID(), "hi")
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	comment, err := f.service.AddComment(ctx, staff("alice", "eng"), task.ID(), "hi")
	require.NoError(t, err)
	require.Equal(t, "alice", comment.AuthorID)

	// HR sees the whole organization, so commenting is allowed.
	hr := domain.UserContext{UserID: "hr", Role: domain.RoleHRAdmin, DepartmentID: "root"}
	_, err = f.service.AddComment(ctx, hr, task.ID(), "noted")
	require.NoError(t, err)
}

func TestGetTask_VisibilityAndCanEdit(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	task, err := f.service.CreateTask(ctx, staff("alice", "eng-dev"), createInput())
	require.NoError(t, err)

	_, _, err = f.service.GetTask(ctx, staff("stranger", "sales"), task.ID())
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, canEdit, err := f.service.GetTask(ctx, staff("alice", "eng-dev"), task.ID())
	require.NoError(t, err)
	require.False(t, canEdit)

	_, canEdit, err = f.service.GetTask(ctx, manager("mgr", "eng"), task.ID())
	require.NoError(t, err)
	require.True(t, canEdit)

	// HR outside the home department: visible but not editable.
	hr := domain.UserContext{UserID: "hr", Role: domain.RoleHRAdmin, DepartmentID: "sales"}
	_, canEdit, err = f.service.GetTask(ctx, hr, task.ID())
	require.NoError(t, err)
	require.False(t, canEdit)

	_, _, err = f.service.GetTask(ctx, staff("alice", "eng-dev"), "missing")
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestCompleteAndArchiveFlow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	task, err := f.service.CreateTask(ctx, staff("alice", "eng"), createInput())
	require.NoError(t, err)

	_, err = f.service.Complete(ctx, staff("stranger", "eng"), task.ID())
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	completed, err := f.service.Complete(ctx, staff("alice", "eng"), task.ID())
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusCompleted, completed.Status())
	require.NotNil(t, completed.CompletedAt())

	archived, err := f.service.Archive(ctx, staff("alice", "eng"), task.ID())
	require.NoError(t, err)
	require.True(t, archived.IsArchived())
	require.Equal(t, domain.TaskStatusCompleted, archived.Status())
}
