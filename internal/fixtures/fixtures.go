// Package fixtures bundles the seed data every store starts from.
//
// Each entity kind has its own YAML file under data/. A directory passed
// to LoadDir may override any subset of those files.
package fixtures

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/campfire/internal/models"
)

//go:embed data/*.yaml
var bundled embed.FS

// File names of the seed collections
const (
	ProjectsFile       = "projects.yaml"
	TaskListsFile      = "task_lists.yaml"
	TasksFile          = "tasks.yaml"
	MessageThreadsFile = "message_threads.yaml"
	ActivitiesFile     = "activities.yaml"
	TeamMembersFile    = "team_members.yaml"
)

// Seed is the initial content of every collection
type Seed struct {
	Projects       []*models.Project
	TaskLists      []*models.TaskList
	Tasks          []*models.Task
	MessageThreads []*models.MessageThread
	Activities     []*models.Activity
	TeamMembers    []models.TeamMember
}

// Load decodes the bundled seed
func Load() (*Seed, error) {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// MustLoad is Load for callers that cannot proceed without the bundled seed
func MustLoad() *Seed {
	seed, err := Load()
	if err != nil {
		panic(fmt.Sprintf("fixtures: bundled seed is invalid: %v", err))
	}
	return seed
}

// LoadDir decodes the seed, taking each file from dir when it exists there
// and from the bundled data otherwise. An empty dir is the same as Load.
func LoadDir(dir string) (*Seed, error) {
	if dir == "" {
		return Load()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("fixtures dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fixtures dir %s is not a directory", dir)
	}

	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(overlayFS{dir: dir, fallback: sub})
}

// LoadFS decodes every seed file from fsys
func LoadFS(fsys fs.FS) (*Seed, error) {
	seed := &Seed{}
	files := []struct {
		name string
		out  any
	}{
		{ProjectsFile, &seed.Projects},
		{TaskListsFile, &seed.TaskLists},
		{TasksFile, &seed.Tasks},
		{MessageThreadsFile, &seed.MessageThreads},
		{ActivitiesFile, &seed.Activities},
		{TeamMembersFile, &seed.TeamMembers},
	}

	for _, f := range files {
		data, err := fs.ReadFile(fsys, f.name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f.name, err)
		}
		if err := yaml.Unmarshal(data, f.out); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", f.name, err)
		}
	}

	if err := seed.validate(); err != nil {
		return nil, err
	}
	return seed, nil
}

// validate rejects seeds whose ids collide within one collection
func (s *Seed) validate() error {
	if err := uniqueIDs("project", idsOf(s.Projects)); err != nil {
		return err
	}
	if err := uniqueIDs("task list", idsOf(s.TaskLists)); err != nil {
		return err
	}
	if err := uniqueIDs("task", idsOf(s.Tasks)); err != nil {
		return err
	}
	if err := uniqueIDs("message thread", idsOf(s.MessageThreads)); err != nil {
		return err
	}
	if err := uniqueIDs("activity", idsOf(s.Activities)); err != nil {
		return err
	}
	members := make([]int, 0, len(s.TeamMembers))
	for _, m := range s.TeamMembers {
		members = append(members, m.ID)
	}
	return uniqueIDs("team member", members)
}

func idsOf[T interface{ GetID() int }](items []T) []int {
	ids := make([]int, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.GetID())
	}
	return ids
}

func uniqueIDs(kind string, ids []int) error {
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("%s fixture has non-positive id %d", kind, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%s fixture has duplicate id %d", kind, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// overlayFS reads from dir first and falls back to the bundled data
type overlayFS struct {
	dir      string
	fallback fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := os.Open(filepath.Join(o.dir, filepath.FromSlash(name)))
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return o.fallback.Open(name)
}
