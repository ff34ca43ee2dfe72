package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/campfire/internal/clock"
	"github.com/thenoetrevino/campfire/internal/events"
	"github.com/thenoetrevino/campfire/internal/fixtures"
	"github.com/thenoetrevino/campfire/internal/latency"
	"github.com/thenoetrevino/campfire/internal/models"
	"github.com/thenoetrevino/campfire/internal/services"
	"github.com/thenoetrevino/campfire/internal/store"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func setupService(t *testing.T, opts ...services.Option) (Service, *store.Store) {
	t.Helper()
	st := store.New(fixtures.MustLoad())
	base := []services.Option{
		services.WithClock(clock.Fake(testNow)),
		services.WithLatency(latency.Zero()),
	}
	return NewService(st, append(base, opts...)...), st
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

// ============================================================================
// Read Tests
// ============================================================================

func TestGetByProjectID_NewestFirst(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)

	tasks, err := svc.GetByProjectID(context.Background(), 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(tasks) == 0 {
		t.Fatal("Expected seeded tasks for project 1")
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i].CreatedAt.After(tasks[i-1].CreatedAt) {
			t.Fatalf("Expected descending CreatedAt, got %v before %v", tasks[i-1].CreatedAt, tasks[i].CreatedAt)
		}
	}
	for _, task := range tasks {
		if task.ProjectID != 1 {
			t.Errorf("Expected only project 1 tasks, got project %d", task.ProjectID)
		}
	}
}

func TestGetByProjectID_StableOnTies(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()
	tie := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	first, _ := svc.Create(ctx, CreateTaskRequest{ProjectID: 3, Title: "first", CreatedAt: tie})
	second, _ := svc.Create(ctx, CreateTaskRequest{ProjectID: 3, Title: "second", CreatedAt: tie})

	tasks, _ := svc.GetByProjectID(ctx, 3)
	if tasks[0].ID != first.ID || tasks[1].ID != second.ID {
		t.Errorf("Expected insertion order on ties, got %d then %d", tasks[0].ID, tasks[1].ID)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)

	_, err := svc.GetByID(context.Background(), 999)
	if !errors.Is(err, ErrTaskNotFound) || !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestGetByID_ReturnsCopy(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	task, _ := svc.GetByID(ctx, 1)
	task.Title = "mutated"

	again, _ := svc.GetByID(ctx, 1)
	if again.Title == "mutated" {
		t.Error("Expected stored task to be unaffected by caller mutation")
	}
}

// ============================================================================
// Create Tests
// ============================================================================

func TestCreate_Defaults(t *testing.T) {
	t.Parallel()
	svc, st := setupService(t)
	expectedID := st.Tasks.NextID()

	task, err := svc.Create(context.Background(), CreateTaskRequest{Title: "Ship it", ProjectID: 1})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.ID != expectedID {
		t.Errorf("Expected id %d, got %d", expectedID, task.ID)
	}
	if task.ListID != nil || task.DueDate != nil || task.AssigneeID != nil {
		t.Errorf("Expected nil optional fields, got %+v", task)
	}
	if task.Notes != "" || task.Completed {
		t.Errorf("Expected empty notes and not completed, got %+v", task)
	}
	if !task.CreatedAt.Equal(testNow) {
		t.Errorf("Expected CreatedAt %v, got %v", testNow, task.CreatedAt)
	}
}

func TestCreate_EmptyCollectionStartsAtOne(t *testing.T) {
	t.Parallel()
	svc := NewService(store.Empty(), services.WithLatency(latency.Zero()))

	task, err := svc.Create(context.Background(), CreateTaskRequest{Title: "first"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.ID != 1 {
		t.Errorf("Expected id 1, got %d", task.ID)
	}
}

func TestCreate_ZeroListIDMeansNoList(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)

	task, _ := svc.Create(context.Background(), CreateTaskRequest{Title: "x", ListID: models.IntPtr(0)})
	if task.ListID != nil {
		t.Errorf("Expected nil ListID, got %d", *task.ListID)
	}
}

func TestCreate_AppearsOnceNewestFirst(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	created, _ := svc.Create(ctx, CreateTaskRequest{Title: "Newest", ProjectID: 1})
	tasks, _ := svc.GetByProjectID(ctx, 1)

	count := 0
	for _, task := range tasks {
		if task.ID == created.ID {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("Expected new task once, got %d", count)
	}
	if tasks[0].ID != created.ID {
		t.Errorf("Expected new task first, got %d", tasks[0].ID)
	}
}

// ============================================================================
// Update Tests
// ============================================================================

func TestUpdate_KeepsAbsentFields(t *testing.T) {
	t.Parallel()
	svc, st := setupService(t)
	before, _ := st.Tasks.Get(1)

	task, err := svc.Update(context.Background(), 1, UpdateTaskRequest{Title: strPtr("Renamed")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Title != "Renamed" {
		t.Errorf("Expected title 'Renamed', got '%s'", task.Title)
	}
	if task.Completed != before.Completed || task.Notes != before.Notes || !task.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("Expected untouched fields preserved, got %+v", task)
	}
}

func TestUpdate_ClearsDueDate(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	task, err := svc.Update(ctx, 1, UpdateTaskRequest{DueDate: strPtr("2024-01-01")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if task.DueDate == nil || !task.DueDate.Equal(want) {
		t.Fatalf("Expected due date %v, got %v", want, task.DueDate)
	}

	task, err = svc.Update(ctx, 1, UpdateTaskRequest{DueDate: strPtr("")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.DueDate != nil {
		t.Errorf("Expected nil due date, got %v", *task.DueDate)
	}
}

func TestUpdate_ZeroClearsListAndAssignee(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)

	task, err := svc.Update(context.Background(), 1, UpdateTaskRequest{
		ListID:     models.IntPtr(0),
		AssigneeID: models.IntPtr(0),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.ListID != nil || task.AssigneeID != nil {
		t.Errorf("Expected cleared list and assignee, got %+v", task)
	}
}

func TestUpdate_InvalidDueDateLeavesTask(t *testing.T) {
	t.Parallel()
	svc, st := setupService(t)
	before, _ := st.Tasks.Get(1)

	_, err := svc.Update(context.Background(), 1, UpdateTaskRequest{
		Title:   strPtr("never applied"),
		DueDate: strPtr("soon"),
	})
	if !errors.Is(err, ErrInvalidDueDate) || !errors.Is(err, models.ErrValidation) {
		t.Fatalf("Expected ErrInvalidDueDate, got %v", err)
	}

	after, _ := st.Tasks.Get(1)
	if after.Title != before.Title {
		t.Errorf("Expected title unchanged, got '%s'", after.Title)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)

	if _, err := svc.Update(context.Background(), 999, UpdateTaskRequest{Completed: boolPtr(true)}); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestUpdate_NotFoundBeforeInvalidDueDate(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)

	_, err := svc.Update(context.Background(), 999, UpdateTaskRequest{DueDate: strPtr("soon")})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestUpdateRequestFrom_KeepsSubSecondDueDate(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()
	due := time.Date(2031, 3, 4, 10, 0, 0, 123456789, time.UTC)

	created, err := svc.Create(ctx, CreateTaskRequest{ProjectID: 1, Title: "Renew", DueDate: &due})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, UpdateRequestFrom(created))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.DueDate == nil || !updated.DueDate.Equal(due) {
		t.Errorf("Expected due date %v, got %v", due, updated.DueDate)
	}
}

func TestUpdateRequestFrom_ToggleTwiceRestores(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()
	original, _ := svc.GetByID(ctx, 1)

	current := original
	for i := 0; i < 2; i++ {
		req := UpdateRequestFrom(current)
		flipped := !current.Completed
		req.Completed = &flipped

		var err error
		current, err = svc.Update(ctx, current.ID, req)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	if current.Completed != original.Completed {
		t.Errorf("Expected Completed %v, got %v", original.Completed, current.Completed)
	}
	if !current.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("Expected CreatedAt preserved, got %v", current.CreatedAt)
	}
	if (current.DueDate == nil) != (original.DueDate == nil) {
		t.Fatalf("Expected due date presence preserved")
	}
	if current.DueDate != nil && !current.DueDate.Equal(*original.DueDate) {
		t.Errorf("Expected due date %v, got %v", *original.DueDate, *current.DueDate)
	}
}

// ============================================================================
// Delete Tests
// ============================================================================

func TestDelete_UnknownLeavesLength(t *testing.T) {
	t.Parallel()
	svc, st := setupService(t)
	before := st.Tasks.Len()

	if err := svc.Delete(context.Background(), 999); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("Expected ErrTaskNotFound, got %v", err)
	}
	if st.Tasks.Len() != before {
		t.Errorf("Expected length %d, got %d", before, st.Tasks.Len())
	}
}

func TestDelete_PublishesEvent(t *testing.T) {
	t.Parallel()
	bus := events.NewBus()
	ch, _ := bus.Listen(context.Background())
	svc, st := setupService(t, services.WithEventPublisher(bus))
	task, _ := st.Tasks.Get(1)

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	e := <-ch
	if e.Type != events.EventDeleted || e.EntityID != 1 || e.ProjectID != task.ProjectID {
		t.Errorf("Expected task 1 deleted event, got %v", e)
	}
}

// ============================================================================
// Team Member Tests
// ============================================================================

func TestGetTeamMembers(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)

	members, err := svc.GetTeamMembers(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(members) != 8 {
		t.Errorf("Expected 8 members, got %d", len(members))
	}
}

func TestGetTeamMember(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	m, err := svc.GetTeamMember(ctx, 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if m.Name != "Sarah Chen" {
		t.Errorf("Expected 'Sarah Chen', got '%s'", m.Name)
	}

	if _, err := svc.GetTeamMember(ctx, 42); !errors.Is(err, ErrTeamMemberNotFound) {
		t.Errorf("Expected ErrTeamMemberNotFound, got %v", err)
	}
}
