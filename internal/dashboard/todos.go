package dashboard

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/campfire/internal/app"
	"github.com/thenoetrevino/campfire/internal/models"
	taskservice "github.com/thenoetrevino/campfire/internal/services/task"
	tasklistservice "github.com/thenoetrevino/campfire/internal/services/tasklist"
)

// ListInput is the form data for creating or editing a task list
type ListInput struct {
	Name        string
	Description string
	Color       string // empty keeps the current color, or the default on create
}

// TaskEdit is a partial edit of a task
// Nil fields keep their value; DueDate "" and ListID/AssigneeID 0 clear.
type TaskEdit struct {
	Title      *string
	Notes      *string
	DueDate    *string
	ListID     *int
	AssigneeID *int
}

// ListView is one task list with its tasks and stats
type ListView struct {
	List  *models.TaskList
	Tasks []*models.Task
	Stats Stats
}

// TodosView is a snapshot of the to-do page
type TodosView struct {
	Loaded   bool
	Err      error
	Tasks    []*models.Task
	Lists    []ListView
	Unlisted []*models.Task
	Stats    Stats
}

// Todos manages a project's tasks and task lists
type Todos struct {
	base
	projectID int

	mu     sync.RWMutex
	loaded bool
	err    error
	tasks  []*models.Task     // newest first
	lists  []*models.TaskList // insertion order
}

// NewTodos creates a to-do controller for one project
func NewTodos(a *app.App, projectID int, opts ...Option) *Todos {
	return &Todos{base: newBase(a, opts), projectID: projectID}
}

// Load fetches tasks and task lists concurrently, all or nothing
func (c *Todos) Load(ctx context.Context) error {
	var (
		tasks []*models.Task
		lists []*models.TaskList
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = c.app.TaskService.GetByProjectID(gctx, c.projectID)
		return err
	})
	g.Go(func() error {
		var err error
		lists, err = c.app.TaskListService.GetByProjectID(gctx, c.projectID)
		return err
	})
	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.loaded, c.err, c.tasks, c.lists = false, err, nil, nil
		return err
	}
	c.loaded, c.err, c.tasks, c.lists = true, nil, tasks, lists
	return nil
}

// Reload retries Load
func (c *Todos) Reload(ctx context.Context) error {
	return c.Load(ctx)
}

// View returns the current state with derived groupings and stats
func (c *Todos) View() TodosView {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v := TodosView{Loaded: c.loaded, Err: c.err}
	if !c.loaded {
		return v
	}

	now := c.now()
	v.Tasks = cloneAll(c.tasks)
	v.Stats = ComputeStats(v.Tasks, now)
	for _, l := range c.lists {
		listTasks := []*models.Task{}
		for _, t := range v.Tasks {
			if t.InList(l.ID) {
				listTasks = append(listTasks, t)
			}
		}
		v.Lists = append(v.Lists, ListView{
			List:  l.Clone(),
			Tasks: listTasks,
			Stats: ComputeStats(listTasks, now),
		})
	}
	for _, t := range v.Tasks {
		if t.ListID == nil {
			v.Unlisted = append(v.Unlisted, t)
		}
	}
	return v
}

// ============================================================================
// Task lists
// ============================================================================

// CreateList adds a task list to the project
func (c *Todos) CreateList(ctx context.Context, in ListInput) (*models.TaskList, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		c.fail("List name is required", ErrEmptyListName)
		return nil, ErrEmptyListName
	}

	list, err := c.app.TaskListService.Create(ctx, tasklistservice.CreateTaskListRequest{
		ProjectID:   c.projectID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Color:       in.Color,
		IsCollapsed: false,
	})
	if err != nil {
		c.fail("Failed to create task list", err)
		return nil, err
	}

	c.mu.Lock()
	c.lists = append(c.lists, list.Clone())
	c.mu.Unlock()

	c.recordActivity(ctx, c.projectID, models.ActionListCreated, listDetails(name, "created"))
	c.success("Task list created successfully!")
	return list, nil
}

// EditList renames, re-describes or recolors a task list
func (c *Todos) EditList(ctx context.Context, listID int, in ListInput) (*models.TaskList, error) {
	if _, err := c.findList(listID); err != nil {
		c.fail("Failed to update task list", err)
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		c.fail("List name is required", ErrEmptyListName)
		return nil, ErrEmptyListName
	}

	description := strings.TrimSpace(in.Description)
	req := tasklistservice.UpdateTaskListRequest{Name: &name, Description: &description}
	if in.Color != "" {
		req.Color = &in.Color
	}

	list, err := c.app.TaskListService.Update(ctx, listID, req)
	if err != nil {
		c.fail("Failed to update task list", err)
		return nil, err
	}
	c.replaceList(list)

	c.recordActivity(ctx, c.projectID, models.ActionListUpdated, listDetails(name, "updated"))
	c.success("Task list updated successfully!")
	return list, nil
}

// DeleteList removes an empty task list
// It returns ErrListHasTasks while any loaded task belongs to the list.
func (c *Todos) DeleteList(ctx context.Context, listID int) error {
	list, err := c.findList(listID)
	if err != nil {
		c.fail("Failed to delete task list", err)
		return err
	}

	c.mu.RLock()
	hasTasks := slices.ContainsFunc(c.tasks, func(t *models.Task) bool { return t.InList(listID) })
	c.mu.RUnlock()
	if hasTasks {
		c.fail("Cannot delete list with tasks. Move or delete tasks first.", ErrListHasTasks)
		return ErrListHasTasks
	}

	if err := c.app.TaskListService.Delete(ctx, listID); err != nil {
		c.fail("Failed to delete task list", err)
		return err
	}

	c.mu.Lock()
	c.lists = slices.DeleteFunc(c.lists, func(l *models.TaskList) bool { return l.ID == listID })
	c.mu.Unlock()

	c.recordActivity(ctx, c.projectID, models.ActionListDeleted, listDetails(list.Name, "deleted"))
	c.success("Task list deleted successfully!")
	return nil
}

// ToggleListCollapse flips a list's collapsed flag
// Collapsing is a view preference and is not recorded as activity.
func (c *Todos) ToggleListCollapse(ctx context.Context, listID int) (*models.TaskList, error) {
	list, err := c.findList(listID)
	if err != nil {
		c.fail("Failed to update list", err)
		return nil, err
	}

	collapsed := !list.IsCollapsed
	updated, err := c.app.TaskListService.Update(ctx, listID, tasklistservice.UpdateTaskListRequest{
		Name:        &list.Name,
		Description: &list.Description,
		Color:       &list.Color,
		IsCollapsed: &collapsed,
	})
	if err != nil {
		c.fail("Failed to update list", err)
		return nil, err
	}
	c.replaceList(updated)
	return updated, nil
}

// ============================================================================
// Tasks
// ============================================================================

// AddTask creates a task, optionally inside a list, and shows it first
func (c *Todos) AddTask(ctx context.Context, title string, listID *int) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		c.fail("Task title is required", ErrEmptyTaskTitle)
		return nil, ErrEmptyTaskTitle
	}

	task, err := c.app.TaskService.Create(ctx, taskservice.CreateTaskRequest{
		ProjectID: c.projectID,
		ListID:    listID,
		Title:     title,
		Completed: false,
		CreatedAt: c.now(),
	})
	if err != nil {
		c.fail("Failed to create task", err)
		return nil, err
	}

	var listName string
	c.mu.Lock()
	c.tasks = append([]*models.Task{task.Clone()}, c.tasks...)
	if task.ListID != nil {
		if i := slices.IndexFunc(c.lists, func(l *models.TaskList) bool { return l.ID == *task.ListID }); i >= 0 {
			listName = c.lists[i].Name
		}
	}
	c.mu.Unlock()

	c.recordActivity(ctx, c.projectID, models.ActionTaskCreated, taskCreatedDetails(title, listName))
	if task.ListID != nil {
		c.success("Task added to list!")
	} else {
		c.success("Task created successfully!")
	}
	return task, nil
}

// ToggleTask flips a task between completed and open
func (c *Todos) ToggleTask(ctx context.Context, taskID int) (*models.Task, error) {
	task, err := c.findTask(taskID)
	if err != nil {
		c.fail("Failed to update task", err)
		return nil, err
	}

	req := taskservice.UpdateRequestFrom(task)
	completed := !task.Completed
	req.Completed = &completed

	updated, err := c.app.TaskService.Update(ctx, taskID, req)
	if err != nil {
		c.fail("Failed to update task", err)
		return nil, err
	}
	c.replaceTask(updated)

	if updated.Completed {
		c.recordActivity(ctx, c.projectID, models.ActionTaskCompleted, taskDetails(task.Title, "completed"))
		c.success("Task completed!")
	} else {
		c.recordActivity(ctx, c.projectID, models.ActionTaskReopened, taskDetails(task.Title, "reopened"))
		c.success("Task reopened!")
	}
	return updated, nil
}

// UpdateTask applies an edit of notes, due date, assignee, title or list
func (c *Todos) UpdateTask(ctx context.Context, taskID int, edit TaskEdit) (*models.Task, error) {
	task, err := c.findTask(taskID)
	if err != nil {
		c.fail("Failed to update task", err)
		return nil, err
	}

	req := taskservice.UpdateRequestFrom(task)
	if edit.Title != nil {
		title := strings.TrimSpace(*edit.Title)
		if title == "" {
			c.fail("Task title is required", ErrEmptyTaskTitle)
			return nil, ErrEmptyTaskTitle
		}
		req.Title = &title
	}
	if edit.Notes != nil {
		req.Notes = edit.Notes
	}
	if edit.DueDate != nil {
		req.DueDate = edit.DueDate
	}
	if edit.ListID != nil {
		req.ListID = edit.ListID
	}
	if edit.AssigneeID != nil {
		req.AssigneeID = edit.AssigneeID
	}

	updated, err := c.app.TaskService.Update(ctx, taskID, req)
	if err != nil {
		c.fail("Failed to update task", err)
		return nil, err
	}
	c.replaceTask(updated)

	c.recordActivity(ctx, c.projectID, models.ActionTaskUpdated, taskDetails(updated.Title, "updated"))
	c.success("Task updated successfully!")
	return updated, nil
}

// DeleteTask removes a task
func (c *Todos) DeleteTask(ctx context.Context, taskID int) error {
	task, err := c.findTask(taskID)
	if err != nil {
		c.fail("Failed to delete task", err)
		return err
	}

	if err := c.app.TaskService.Delete(ctx, taskID); err != nil {
		c.fail("Failed to delete task", err)
		return err
	}

	c.mu.Lock()
	c.tasks = slices.DeleteFunc(c.tasks, func(t *models.Task) bool { return t.ID == taskID })
	c.mu.Unlock()

	c.recordActivity(ctx, c.projectID, models.ActionTaskDeleted, taskDetails(task.Title, "deleted"))
	c.success("Task deleted successfully!")
	return nil
}

// ============================================================================
// Local state helpers
// ============================================================================

func (c *Todos) findTask(id int) (*models.Task, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.tasks {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return nil, fmt.Errorf("task %d: %w", id, ErrNotLoaded)
}

func (c *Todos) findList(id int) (*models.TaskList, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, l := range c.lists {
		if l.ID == id {
			return l.Clone(), nil
		}
	}
	return nil, fmt.Errorf("task list %d: %w", id, ErrNotLoaded)
}

func (c *Todos) replaceTask(updated *models.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, t := range c.tasks {
		if t.ID == updated.ID {
			c.tasks[i] = updated.Clone()
			return
		}
	}
}

func (c *Todos) replaceList(updated *models.TaskList) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, l := range c.lists {
		if l.ID == updated.ID {
			c.lists[i] = updated.Clone()
			return
		}
	}
}
