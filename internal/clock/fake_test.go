package clock

import (
	"testing"
	"time"
)

var start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// ============================================================================
// Now Tests
// ============================================================================

func TestFake_NowMovesOnlyOnAdvance(t *testing.T) {
	t.Parallel()
	c := Fake(start)

	if got := c.Now(); !got.Equal(start) {
		t.Fatalf("Expected %v, got %v", start, got)
	}
	c.Advance(5 * time.Second)
	if want, got := start.Add(5*time.Second), c.Now(); !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// ============================================================================
// Timer Tests
// ============================================================================

func TestFake_AfterFiresAtDeadline(t *testing.T) {
	t.Parallel()
	c := Fake(start)
	ch := c.After(300 * time.Millisecond)

	c.Advance(200 * time.Millisecond)
	select {
	case <-ch:
		t.Fatal("Expected no delivery before the deadline")
	default:
	}

	c.Advance(100 * time.Millisecond)
	select {
	case got := <-ch:
		if want := start.Add(300 * time.Millisecond); !got.Equal(want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	default:
		t.Fatal("Expected delivery at the deadline")
	}
	if n := c.PendingCount(); n != 0 {
		t.Errorf("Expected 0 pending, got %d", n)
	}
}

func TestFake_AfterNonPositiveFiresAtOnce(t *testing.T) {
	t.Parallel()
	c := Fake(start)

	select {
	case <-c.After(0):
	default:
		t.Fatal("Expected immediate delivery")
	}
	if n := c.PendingCount(); n != 0 {
		t.Errorf("Expected 0 pending, got %d", n)
	}
}

func TestFake_AdvanceFiresOnlyExpired(t *testing.T) {
	t.Parallel()
	c := Fake(start)
	late := c.After(2 * time.Second)
	early := c.After(time.Second)

	c.Advance(time.Second)

	select {
	case <-early:
	default:
		t.Fatal("Expected the 1s timer to fire")
	}
	select {
	case <-late:
		t.Fatal("Expected the 2s timer to stay pending")
	default:
	}
	if n := c.PendingCount(); n != 1 {
		t.Errorf("Expected 1 pending, got %d", n)
	}
}

func TestFake_SetPastDeadlineFires(t *testing.T) {
	t.Parallel()
	c := Fake(start)
	ch := c.After(time.Hour)

	c.Set(start.Add(-time.Hour))
	if n := c.PendingCount(); n != 1 {
		t.Fatalf("Expected moving back to fire nothing, got %d pending", n)
	}

	c.Set(start.Add(2 * time.Hour))
	select {
	case <-ch:
	default:
		t.Fatal("Expected Set past the deadline to fire")
	}
}

func TestFake_WaitForTimers(t *testing.T) {
	t.Parallel()
	c := Fake(start)
	done := make(chan struct{})

	go func() {
		<-c.After(time.Second)
		close(done)
	}()

	c.WaitForTimers(1)
	c.Advance(time.Second)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Expected the goroutine to wake after Advance")
	}
}
