package dashboard

import (
	"context"
	"errors"

	"github.com/thenoetrevino/campfire/internal/models"
	activityservice "github.com/thenoetrevino/campfire/internal/services/activity"
)

var errActivityDown = errors.New("activity service down")

// failingActivity rejects every append and delegates reads
type failingActivity struct {
	activityservice.Service
}

func (failingActivity) Create(context.Context, activityservice.CreateActivityRequest) (*models.Activity, error) {
	return nil, errActivityDown
}
