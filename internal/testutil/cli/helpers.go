package cli

import (
	"context"
	"testing"

	"github.com/thenoetrevino/campfire/internal/app"
	"github.com/thenoetrevino/campfire/internal/models"
)

// TaskByID reads a task straight from the test app
func TaskByID(t *testing.T, a *app.App, id int) *models.Task {
	t.Helper()

	task, err := a.TaskService.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("Failed to get task %d: %v", id, err)
	}
	return task
}

// ProjectActivities returns a project's feed, newest first
func ProjectActivities(t *testing.T, a *app.App, projectID int) []*models.Activity {
	t.Helper()

	acts, err := a.ActivityService.GetByProjectID(context.Background(), projectID)
	if err != nil {
		t.Fatalf("Failed to get activities for project %d: %v", projectID, err)
	}
	return acts
}
