package latency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/campfire/internal/clock"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestWait_ZeroDelayReturnsImmediately(t *testing.T) {
	t.Parallel()

	s := New(clock.Fake(epoch), 0)
	if err := s.Wait(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestWait_NilSimulator(t *testing.T) {
	t.Parallel()

	var s *Simulator
	if err := s.Wait(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.Delay() != 0 {
		t.Errorf("Expected zero delay, got %v", s.Delay())
	}
}

func TestWait_BlocksUntilClockAdvances(t *testing.T) {
	t.Parallel()

	fake := clock.Fake(epoch)
	s := New(fake, 250*time.Millisecond)
	done := make(chan error, 1)

	go func() { done <- s.Wait(context.Background()) }()

	fake.WaitForTimers(1)
	select {
	case <-done:
		t.Fatal("Wait returned before the clock advanced")
	default:
	}

	fake.Advance(250 * time.Millisecond)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return after Advance")
	}
}

func TestWait_ContextCanceled(t *testing.T) {
	t.Parallel()

	s := New(clock.Fake(epoch), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
}

func TestProfileMergeFrom(t *testing.T) {
	t.Parallel()

	p := DefaultProfile()
	p.MergeFrom(Profile{Task: time.Second})

	if p.Task != time.Second {
		t.Errorf("Expected task delay 1s, got %v", p.Task)
	}
	if p.Project != 300*time.Millisecond {
		t.Errorf("Expected project delay to stay 300ms, got %v", p.Project)
	}
}
