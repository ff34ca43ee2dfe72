package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/campfire/internal/clock"
	"github.com/thenoetrevino/campfire/internal/fixtures"
	"github.com/thenoetrevino/campfire/internal/latency"
	"github.com/thenoetrevino/campfire/internal/models"
	"github.com/thenoetrevino/campfire/internal/services"
	"github.com/thenoetrevino/campfire/internal/store"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func setupService(t *testing.T) (Service, *store.Store) {
	t.Helper()
	st := store.New(fixtures.MustLoad())
	return NewService(st,
		services.WithClock(clock.Fake(testNow)),
		services.WithLatency(latency.Zero()),
	), st
}

func TestCreate_StampsTimestampAndLeadsFeed(t *testing.T) {
	t.Parallel()
	svc, st := setupService(t)
	ctx := context.Background()
	expectedID := st.Activities.NextID()

	a, err := svc.Create(ctx, CreateActivityRequest{
		ProjectID: 1,
		Action:    models.ActionTaskCreated,
		Details:   `Task "Ship it" was created`,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if a.ID != expectedID {
		t.Errorf("Expected id %d, got %d", expectedID, a.ID)
	}
	if !a.Timestamp.Equal(testNow) {
		t.Errorf("Expected timestamp %v, got %v", testNow, a.Timestamp)
	}

	feed, _ := svc.GetByProjectID(ctx, 1)
	if feed[0].ID != a.ID {
		t.Errorf("Expected new activity first, got %d", feed[0].ID)
	}
	for i := 1; i < len(feed); i++ {
		if feed[i].Timestamp.After(feed[i-1].Timestamp) {
			t.Fatal("Expected feed sorted newest first")
		}
	}
}

func TestCreate_KeepsGivenTimestamp(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	at := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	a, _ := svc.Create(context.Background(), CreateActivityRequest{ProjectID: 1, Timestamp: at})
	if !a.Timestamp.Equal(at) {
		t.Errorf("Expected timestamp %v, got %v", at, a.Timestamp)
	}
}

func TestCreate_NoDedup(t *testing.T) {
	t.Parallel()
	svc, st := setupService(t)
	before := st.Activities.Len()
	req := CreateActivityRequest{ProjectID: 1, Action: models.ActionTaskUpdated, Details: "same"}

	_, _ = svc.Create(context.Background(), req)
	_, _ = svc.Create(context.Background(), req)

	if st.Activities.Len() != before+2 {
		t.Errorf("Expected %d activities, got %d", before+2, st.Activities.Len())
	}
}

func TestUpdateDelete_NotFound(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)
	ctx := context.Background()

	if _, err := svc.Update(ctx, 999, UpdateActivityRequest{}); !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("Expected ErrActivityNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, 999); !errors.Is(err, ErrActivityNotFound) {
		t.Errorf("Expected ErrActivityNotFound, got %v", err)
	}
	if _, err := svc.GetByID(ctx, 999); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected models.ErrNotFound, got %v", err)
	}
}

func TestUpdate_Details(t *testing.T) {
	t.Parallel()
	svc, _ := setupService(t)

	details := "edited"
	a, err := svc.Update(context.Background(), 1, UpdateActivityRequest{Details: &details})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if a.Details != "edited" {
		t.Errorf("Expected details 'edited', got '%s'", a.Details)
	}
}
