package store

import (
	"sync"
	"testing"

	"github.com/thenoetrevino/campfire/internal/fixtures"
	"github.com/thenoetrevino/campfire/internal/models"
)

func newProjects(ids ...int) *Collection[*models.Project] {
	seed := make([]*models.Project, 0, len(ids))
	for _, id := range ids {
		seed = append(seed, &models.Project{ID: id, Name: "p"})
	}
	return NewCollection(seed)
}

// ============================================================================
// Id Allocation Tests
// ============================================================================

func TestInsert_AssignsMaxPlusOne(t *testing.T) {
	t.Parallel()
	c := newProjects(1, 7, 3)

	got := c.Insert(func(id int) *models.Project { return &models.Project{ID: id} })
	if got.ID != 8 {
		t.Errorf("Expected id 8, got %d", got.ID)
	}
}

func TestInsert_EmptyStartsAtOne(t *testing.T) {
	t.Parallel()
	c := newProjects()

	got := c.Insert(func(id int) *models.Project { return &models.Project{ID: id} })
	if got.ID != 1 {
		t.Errorf("Expected id 1, got %d", got.ID)
	}
}

func TestInsert_ReusesDeletedMaximum(t *testing.T) {
	t.Parallel()
	c := newProjects(1, 2, 3)

	if _, ok := c.Delete(3); !ok {
		t.Fatal("Expected delete to succeed")
	}
	if next := c.NextID(); next != 3 {
		t.Errorf("Expected next id 3 after deleting max, got %d", next)
	}
}

func TestInsert_ConcurrentIDsUnique(t *testing.T) {
	t.Parallel()
	c := newProjects()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Insert(func(id int) *models.Project { return &models.Project{ID: id} })
		}()
	}
	wg.Wait()

	seen := map[int]bool{}
	for _, p := range c.All() {
		if seen[p.ID] {
			t.Fatalf("Duplicate id %d", p.ID)
		}
		seen[p.ID] = true
	}
	if len(seen) != 50 {
		t.Errorf("Expected 50 records, got %d", len(seen))
	}
}

// ============================================================================
// Read/Write Tests
// ============================================================================

func TestGet_ReturnsCopy(t *testing.T) {
	t.Parallel()
	c := newProjects(1)

	p, ok := c.Get(1)
	if !ok {
		t.Fatal("Expected project 1")
	}
	p.Name = "mutated"

	again, _ := c.Get(1)
	if again.Name != "p" {
		t.Errorf("Expected stored name 'p', got '%s'", again.Name)
	}
}

func TestGet_Missing(t *testing.T) {
	t.Parallel()
	if _, ok := newProjects(1).Get(2); ok {
		t.Error("Expected missing record")
	}
}

func TestUpdate_MergesInPlace(t *testing.T) {
	t.Parallel()
	c := newProjects(1, 2)

	got, ok := c.Update(2, func(p *models.Project) { p.Name = "renamed" })
	if !ok || got.Name != "renamed" {
		t.Fatalf("Expected renamed project, got %+v", got)
	}

	all := c.All()
	if all[1].ID != 2 || all[1].Name != "renamed" {
		t.Errorf("Expected position preserved, got %+v", all)
	}
}

func TestUpdate_Missing(t *testing.T) {
	t.Parallel()
	if _, ok := newProjects(1).Update(9, func(*models.Project) {}); ok {
		t.Error("Expected update of missing record to fail")
	}
}

func TestDelete_MissingLeavesLength(t *testing.T) {
	t.Parallel()
	c := newProjects(1, 2)

	if _, ok := c.Delete(5); ok {
		t.Error("Expected delete of missing record to fail")
	}
	if c.Len() != 2 {
		t.Errorf("Expected length 2, got %d", c.Len())
	}
}

func TestDelete_ClearsVacatedSlot(t *testing.T) {
	t.Parallel()
	c := newProjects(1, 2, 3)
	backing := c.items[:3]

	removed, ok := c.Delete(2)
	if !ok || removed.ID != 2 {
		t.Fatalf("Expected project 2 removed, got %v, %v", removed, ok)
	}
	if backing[2] != nil {
		t.Errorf("Expected vacated slot cleared, got %+v", backing[2])
	}
	if c.Len() != 2 || c.items[1].ID != 3 {
		t.Errorf("Expected [1 3], got %d items", c.Len())
	}
}

func TestFilter_KeepsOrder(t *testing.T) {
	t.Parallel()
	c := newProjects(5, 1, 4, 2)

	got := c.Filter(func(p *models.Project) bool { return p.ID%2 == 0 })
	if len(got) != 2 || got[0].ID != 4 || got[1].ID != 2 {
		t.Errorf("Expected [4 2], got %v", got)
	}
}

// ============================================================================
// Store Tests
// ============================================================================

func TestNew_DerivesInitialMessages(t *testing.T) {
	t.Parallel()
	seed := fixtures.MustLoad()
	s := New(seed)

	if s.Messages.Len() != len(seed.MessageThreads) {
		t.Fatalf("Expected %d messages, got %d", len(seed.MessageThreads), s.Messages.Len())
	}
	for _, m := range s.Messages.All() {
		if !m.IsInitial {
			t.Errorf("Expected initial message, got %+v", m)
		}
		thread, ok := s.Threads.Get(m.ThreadID)
		if !ok {
			t.Fatalf("Expected thread %d", m.ThreadID)
		}
		if m.Content != thread.InitialMessage || m.Author != thread.Author {
			t.Errorf("Expected message to mirror thread %d", thread.ID)
		}
	}
}

func TestNew_SeedIsNotAliased(t *testing.T) {
	t.Parallel()
	seed := fixtures.MustLoad()
	s := New(seed)

	seed.Projects[0].Name = "changed"
	p, _ := s.Projects.Get(seed.Projects[0].ID)
	if p.Name == "changed" {
		t.Error("Expected store to hold its own copy of the seed")
	}
}

func TestTeamMembers_ReturnsCopy(t *testing.T) {
	t.Parallel()
	s := New(fixtures.MustLoad())

	members := s.TeamMembers()
	if len(members) != 8 {
		t.Fatalf("Expected 8 members, got %d", len(members))
	}
	members[0].Name = "changed"
	if s.TeamMembers()[0].Name == "changed" {
		t.Error("Expected team members to be copied")
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()
	s := Empty()
	if s.Projects.Len() != 0 || s.Tasks.Len() != 0 || len(s.TeamMembers()) != 0 {
		t.Error("Expected empty store")
	}
}

// ============================================================================
// Snapshot Tests
// ============================================================================

func TestSnapshot_ForProject(t *testing.T) {
	t.Parallel()

	st := New(fixtures.MustLoad())
	snap := st.Snapshot()

	if len(snap.Tasks) != st.Tasks.Len() {
		t.Fatalf("Expected %d tasks, got %d", st.Tasks.Len(), len(snap.Tasks))
	}

	scoped := snap.ForProject(1)
	if len(scoped.Projects) != 1 || scoped.Projects[0].ID != 1 {
		t.Fatalf("Expected only project 1, got %+v", scoped.Projects)
	}
	for _, task := range scoped.Tasks {
		if task.ProjectID != 1 {
			t.Errorf("Expected task of project 1, got project %d", task.ProjectID)
		}
	}
	for _, a := range scoped.Activities {
		if a.ProjectID != 1 {
			t.Errorf("Expected activity of project 1, got project %d", a.ProjectID)
		}
	}
	if len(scoped.Threads) != len(snap.Threads) {
		t.Errorf("Expected threads kept, got %d of %d", len(scoped.Threads), len(snap.Threads))
	}
}

func TestSnapshot_IsCopy(t *testing.T) {
	t.Parallel()

	st := New(fixtures.MustLoad())
	snap := st.Snapshot()
	snap.Tasks[0].Title = "mutated"

	got, _ := st.Tasks.Get(snap.Tasks[0].ID)
	if got.Title == "mutated" {
		t.Error("Expected snapshot not to alias store state")
	}
}
