// Package cli holds what every campfire subcommand shares: the application
// handle, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/campfire/internal/app"
	"github.com/thenoetrevino/campfire/internal/config"
	"github.com/thenoetrevino/campfire/internal/dashboard"
	"github.com/thenoetrevino/campfire/internal/models"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	ctx    context.Context

	// borrowed apps belong to the caller and are not closed here
	borrowed bool
}

// NewCLI seeds a fresh in-memory application from cfg
// Every invocation starts from the fixtures, so changes last for one command.
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	application, err := app.Bootstrap(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	return &CLI{
		App:    application,
		Config: cfg,
		ctx:    ctx,
	}, nil
}

// ProjectOrDefault returns id when positive, else the configured default
func (c *CLI) ProjectOrDefault(id int) int {
	if id > 0 {
		return id
	}
	if c.Config != nil && c.Config.DefaultProject > 0 {
		return c.Config.DefaultProject
	}
	return 1
}

// Todos loads the to-do controller of an existing project
func (c *CLI) Todos(ctx context.Context, projectID int) (*models.Project, *dashboard.Todos, error) {
	project, err := c.App.ProjectService.GetByID(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}

	todos := dashboard.NewTodos(c.App, projectID, dashboard.WithLogger(c.App.Logger()))
	if err := todos.Load(ctx); err != nil {
		return nil, nil, err
	}
	return project, todos, nil
}

// TodosForTask loads the to-do controller of the project owning taskID
func (c *CLI) TodosForTask(ctx context.Context, taskID int) (*models.Task, *dashboard.Todos, error) {
	task, err := c.App.TaskService.GetByID(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}

	_, todos, err := c.Todos(ctx, task.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	return task, todos, nil
}

// TodosForList loads the to-do controller of the project owning listID
func (c *CLI) TodosForList(ctx context.Context, listID int) (*models.TaskList, *dashboard.Todos, error) {
	list, err := c.App.TaskListService.GetByID(ctx, listID)
	if err != nil {
		return nil, nil, err
	}

	_, todos, err := c.Todos(ctx, list.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	return list, todos, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}
	return c.App.Close()
}
