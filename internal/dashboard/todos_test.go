package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/campfire/internal/app"
	"github.com/thenoetrevino/campfire/internal/models"
	taskservice "github.com/thenoetrevino/campfire/internal/services/task"
	"github.com/thenoetrevino/campfire/internal/testutil"
)

func loadTodos(t *testing.T, projectID int) (*Todos, *app.App, *Recorder) {
	t.Helper()

	a, _ := testutil.NewApp(t)
	rec := &Recorder{}
	c := NewTodos(a, projectID, WithNotifier(rec))
	require.NoError(t, c.Load(context.Background()))
	return c, a, rec
}

func projectActivities(t *testing.T, a *app.App, projectID int) []*models.Activity {
	t.Helper()

	acts, err := a.ActivityService.GetByProjectID(context.Background(), projectID)
	require.NoError(t, err)
	return acts
}

func findActivity(acts []*models.Activity, action models.ActivityAction) (*models.Activity, bool) {
	for _, act := range acts {
		if act.Action == action {
			return act, true
		}
	}
	return nil, false
}

func lastNotice(t *testing.T, rec *Recorder) Notice {
	t.Helper()

	n, ok := rec.Last()
	require.True(t, ok, "expected a notice")
	return n
}

// ============================================================================
// Load and View Tests
// ============================================================================

func TestTodos_View(t *testing.T) {
	t.Parallel()

	c, _, _ := loadTodos(t, 1)
	v := c.View()

	require.True(t, v.Loaded)
	assert.Len(t, v.Tasks, 6)
	require.Len(t, v.Lists, 3)
	assert.Equal(t, "Design", v.Lists[0].List.Name)
	assert.Len(t, v.Lists[0].Tasks, 2)
	assert.Equal(t, Stats{Total: 2, Completed: 1, Percent: 50, Overdue: 1}, v.Lists[0].Stats)
	require.Len(t, v.Unlisted, 1)
	assert.Equal(t, 6, v.Unlisted[0].ID)
	assert.Equal(t, 33, v.Stats.Percent)
}

func TestTodos_LoadCancelledHoldsNothing(t *testing.T) {
	t.Parallel()

	a, _ := testutil.NewApp(t)
	c := NewTodos(a, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, c.Load(ctx), context.Canceled)

	v := c.View()
	assert.False(t, v.Loaded)
	assert.Nil(t, v.Tasks)
	assert.Nil(t, v.Lists)
}

// ============================================================================
// Task Tests
// ============================================================================

func TestTodos_ToggleTwiceRestoresAndRecordsTwice(t *testing.T) {
	t.Parallel()

	c, a, rec := loadTodos(t, 1)
	ctx := context.Background()
	before := len(projectActivities(t, a, 1))

	original, err := a.TaskService.GetByID(ctx, 2)
	require.NoError(t, err)

	first, err := c.ToggleTask(ctx, 2)
	require.NoError(t, err)
	assert.True(t, first.Completed)
	assert.Equal(t, "Task completed!", lastNotice(t, rec).Message)

	second, err := c.ToggleTask(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, original.Completed, second.Completed)
	assert.True(t, original.CreatedAt.Equal(second.CreatedAt))
	assert.Equal(t, "Task reopened!", lastNotice(t, rec).Message)

	acts := projectActivities(t, a, 1)
	require.Len(t, acts, before+2)

	var actions []models.ActivityAction
	for _, act := range acts[:2] {
		actions = append(actions, act.Action)
	}
	assert.ElementsMatch(t, []models.ActivityAction{models.ActionTaskCompleted, models.ActionTaskReopened}, actions)
	assert.Contains(t, []string{acts[0].Details, acts[1].Details}, `Task "Design the component library" was completed`)
}

func TestTodos_ToggleTwiceKeepsSubSecondDueDate(t *testing.T) {
	t.Parallel()

	a, _ := testutil.NewApp(t)
	ctx := context.Background()
	due := time.Date(2031, 3, 4, 10, 0, 0, 123456789, time.UTC)

	created, err := a.TaskService.Create(ctx, taskservice.CreateTaskRequest{
		ProjectID: 1,
		Title:     "Renew the certificate",
		DueDate:   &due,
	})
	require.NoError(t, err)

	c := NewTodos(a, 1)
	require.NoError(t, c.Load(ctx))

	_, err = c.ToggleTask(ctx, created.ID)
	require.NoError(t, err)
	second, err := c.ToggleTask(ctx, created.ID)
	require.NoError(t, err)

	require.NotNil(t, second.DueDate)
	assert.True(t, second.DueDate.Equal(due), "expected %v, got %v", due, *second.DueDate)

	stored, err := a.TaskService.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.DueDate.Equal(due), "expected stored %v, got %v", due, *stored.DueDate)
}

func TestTodos_ToggleUpdatesLocalStats(t *testing.T) {
	t.Parallel()

	c, _, _ := loadTodos(t, 1)

	_, err := c.ToggleTask(context.Background(), 6)
	require.NoError(t, err)

	v := c.View()
	assert.Equal(t, 3, v.Stats.Completed)
	assert.Equal(t, 50, v.Stats.Percent)
}

func TestTodos_AddTaskInListPrepends(t *testing.T) {
	t.Parallel()

	c, a, rec := loadTodos(t, 1)
	ctx := context.Background()

	task, err := c.AddTask(ctx, "  Write launch post  ", models.IntPtr(3))
	require.NoError(t, err)
	assert.Equal(t, "Write launch post", task.Title)
	assert.Equal(t, 3, *task.ListID)
	assert.Nil(t, task.DueDate)
	assert.Nil(t, task.AssigneeID)
	assert.Equal(t, testutil.FixedNow, task.CreatedAt)

	v := c.View()
	assert.Equal(t, task.ID, v.Tasks[0].ID)
	assert.Equal(t, "Task added to list!", lastNotice(t, rec).Message)

	acts := projectActivities(t, a, 1)
	assert.Equal(t, models.ActionTaskCreated, acts[0].Action)
	assert.Equal(t, `Task "Write launch post" was created in Launch`, acts[0].Details)
	assert.Equal(t, testutil.FixedNow, acts[0].Timestamp)
}

func TestTodos_AddTaskUnlisted(t *testing.T) {
	t.Parallel()

	c, a, rec := loadTodos(t, 1)

	_, err := c.AddTask(context.Background(), "Book venue", nil)
	require.NoError(t, err)
	assert.Equal(t, "Task created successfully!", lastNotice(t, rec).Message)
	assert.Len(t, c.View().Unlisted, 2)

	acts := projectActivities(t, a, 1)
	assert.Equal(t, `Task "Book venue" was created`, acts[0].Details)
}

func TestTodos_AddTaskBlankTitle(t *testing.T) {
	t.Parallel()

	c, a, rec := loadTodos(t, 1)
	before, err := a.TaskService.GetAll(context.Background())
	require.NoError(t, err)

	_, err = c.AddTask(context.Background(), "   ", nil)
	require.ErrorIs(t, err, ErrEmptyTaskTitle)
	assert.ErrorIs(t, err, models.ErrValidation)

	after, err := a.TaskService.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, after, len(before))

	n := lastNotice(t, rec)
	assert.Equal(t, LevelError, n.Level)
	assert.Equal(t, "Task title is required", n.Message)
}

func TestTodos_UpdateTaskClearsDueDate(t *testing.T) {
	t.Parallel()

	c, a, _ := loadTodos(t, 1)
	ctx := context.Background()

	due := "2024-01-01"
	updated, err := c.UpdateTask(ctx, 6, TaskEdit{DueDate: &due})
	require.NoError(t, err)
	require.NotNil(t, updated.DueDate)

	none := ""
	notes := "Survey sent"
	updated, err = c.UpdateTask(ctx, 6, TaskEdit{DueDate: &none, Notes: &notes, AssigneeID: models.IntPtr(0)})
	require.NoError(t, err)
	assert.Nil(t, updated.DueDate)
	assert.Nil(t, updated.AssigneeID)
	assert.Equal(t, "Survey sent", updated.Notes)
	assert.Equal(t, "Collect stakeholder feedback", updated.Title)

	acts := projectActivities(t, a, 1)
	assert.Equal(t, models.ActionTaskUpdated, acts[0].Action)
	assert.Equal(t, `Task "Collect stakeholder feedback" was updated`, acts[0].Details)
}

func TestTodos_UpdateTaskInvalidDueDateLeavesState(t *testing.T) {
	t.Parallel()

	c, a, rec := loadTodos(t, 1)
	before := len(projectActivities(t, a, 1))

	bad := "someday"
	_, err := c.UpdateTask(context.Background(), 6, TaskEdit{DueDate: &bad})
	require.ErrorIs(t, err, models.ErrInvalidDueDate)

	assert.Len(t, projectActivities(t, a, 1), before)
	assert.Equal(t, "Failed to update task", lastNotice(t, rec).Message)
}

func TestTodos_DeleteTask(t *testing.T) {
	t.Parallel()

	c, a, rec := loadTodos(t, 1)
	ctx := context.Background()

	require.NoError(t, c.DeleteTask(ctx, 6))
	assert.Len(t, c.View().Tasks, 5)
	assert.Equal(t, "Task deleted successfully!", lastNotice(t, rec).Message)

	_, err := a.TaskService.GetByID(ctx, 6)
	assert.ErrorIs(t, err, models.ErrNotFound)

	acts := projectActivities(t, a, 1)
	assert.Equal(t, `Task "Collect stakeholder feedback" was deleted`, acts[0].Details)
}

func TestTodos_ActionOnUnloadedTask(t *testing.T) {
	t.Parallel()

	c, _, rec := loadTodos(t, 1)

	_, err := c.ToggleTask(context.Background(), 7) // belongs to project 2
	require.ErrorIs(t, err, ErrNotLoaded)
	assert.Equal(t, LevelError, lastNotice(t, rec).Level)
}

func TestTodos_ActivityFailureKeepsMutation(t *testing.T) {
	t.Parallel()

	a, _ := testutil.NewApp(t)
	a.ActivityService = failingActivity{Service: a.ActivityService}
	rec := &Recorder{}
	c := NewTodos(a, 1, WithNotifier(rec))
	ctx := context.Background()
	require.NoError(t, c.Load(ctx))

	updated, err := c.ToggleTask(ctx, 2)
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	stored, err := a.TaskService.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.True(t, stored.Completed)

	var messages []string
	for _, n := range rec.Notices() {
		messages = append(messages, n.Message)
	}
	assert.Equal(t, []string{"Failed to record activity", "Task completed!"}, messages)
}

// ============================================================================
// Task List Tests
// ============================================================================

func TestTodos_CreateList(t *testing.T) {
	t.Parallel()

	c, a, rec := loadTodos(t, 1)

	list, err := c.CreateList(context.Background(), ListInput{Name: " QA ", Description: "Testing"})
	require.NoError(t, err)
	assert.Equal(t, "QA", list.Name)
	assert.Equal(t, models.DefaultListColor, list.Color)
	assert.False(t, list.IsCollapsed)

	v := c.View()
	require.Len(t, v.Lists, 4)
	assert.Equal(t, list.ID, v.Lists[3].List.ID)
	assert.Equal(t, "Task list created successfully!", lastNotice(t, rec).Message)

	acts := projectActivities(t, a, 1)
	assert.Equal(t, models.ActionListCreated, acts[0].Action)
	assert.Equal(t, `Task list "QA" was created`, acts[0].Details)
}

func TestTodos_CreateListBlankName(t *testing.T) {
	t.Parallel()

	c, _, rec := loadTodos(t, 1)

	_, err := c.CreateList(context.Background(), ListInput{Name: "  "})
	require.ErrorIs(t, err, ErrEmptyListName)
	assert.Len(t, c.View().Lists, 3)
	assert.Equal(t, "List name is required", lastNotice(t, rec).Message)
}

func TestTodos_EditListKeepsColorWhenEmpty(t *testing.T) {
	t.Parallel()

	c, a, _ := loadTodos(t, 1)

	list, err := c.EditList(context.Background(), 1, ListInput{Name: "Visual design"})
	require.NoError(t, err)
	assert.Equal(t, "Visual design", list.Name)
	assert.Equal(t, "#EC4899", list.Color)
	assert.Equal(t, "", list.Description)

	acts := projectActivities(t, a, 1)
	assert.Equal(t, `Task list "Visual design" was updated`, acts[0].Details)
}

func TestTodos_DeleteListWithTasksBlocked(t *testing.T) {
	t.Parallel()

	c, a, rec := loadTodos(t, 1)
	ctx := context.Background()
	before := len(projectActivities(t, a, 1))

	err := c.DeleteList(ctx, 1)
	require.ErrorIs(t, err, ErrListHasTasks)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Equal(t, "Cannot delete list with tasks. Move or delete tasks first.", lastNotice(t, rec).Message)

	_, err = a.TaskListService.GetByID(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, projectActivities(t, a, 1), before)
}

func TestTodos_DeleteEmptyList(t *testing.T) {
	t.Parallel()

	c, a, rec := loadTodos(t, 1)
	ctx := context.Background()

	require.NoError(t, c.DeleteTask(ctx, 5))
	require.NoError(t, c.DeleteList(ctx, 3))
	assert.Len(t, c.View().Lists, 2)
	assert.Equal(t, "Task list deleted successfully!", lastNotice(t, rec).Message)

	deleted, ok := findActivity(projectActivities(t, a, 1), models.ActionListDeleted)
	require.True(t, ok)
	assert.Equal(t, `Task list "Launch" was deleted`, deleted.Details)
}

func TestTodos_ToggleListCollapseRecordsNothing(t *testing.T) {
	t.Parallel()

	c, a, _ := loadTodos(t, 1)
	before := len(projectActivities(t, a, 1))

	list, err := c.ToggleListCollapse(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, list.IsCollapsed)
	assert.False(t, c.View().Lists[2].List.IsCollapsed)
	assert.Len(t, projectActivities(t, a, 1), before)
}
