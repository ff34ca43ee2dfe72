package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/thenoetrevino/campfire/internal/store"
)

// Counts reports how many rows a snapshot wrote per table
type Counts struct {
	Projects    int `json:"projects"`
	TaskLists   int `json:"task_lists"`
	Tasks       int `json:"tasks"`
	Threads     int `json:"message_threads"`
	Messages    int `json:"messages"`
	Activities  int `json:"activities"`
	TeamMembers int `json:"team_members"`
}

// WriteSnapshot opens path, writes every collection of snap in one
// transaction and closes the file
func WriteSnapshot(ctx context.Context, path string, snap *store.Snapshot) (Counts, error) {
	db, err := Open(ctx, path)
	if err != nil {
		return Counts{}, err
	}
	defer closeQuietly(db)

	return InsertSnapshot(ctx, db, snap)
}

// InsertSnapshot writes snap into an already migrated database
func InsertSnapshot(ctx context.Context, db *sql.DB, snap *store.Snapshot) (Counts, error) {
	var counts Counts
	err := withTx(ctx, db, func(tx *sql.Tx) error {
		for _, p := range snap.Projects {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO projects (id, name, description, created_at, member_count) VALUES (?, ?, ?, ?, ?)`,
				p.ID, p.Name, p.Description, timestamp(p.CreatedAt), p.MemberCount); err != nil {
				return fmt.Errorf("insert project %d: %w", p.ID, err)
			}
			counts.Projects++
		}

		for i, l := range snap.TaskLists {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO task_lists (id, project_id, name, description, color, is_collapsed, position, created_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				l.ID, l.ProjectID, l.Name, l.Description, l.Color, l.IsCollapsed, i, timestamp(l.CreatedAt)); err != nil {
				return fmt.Errorf("insert task list %d: %w", l.ID, err)
			}
			counts.TaskLists++
		}

		for _, m := range snap.TeamMembers {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO team_members (id, name, email) VALUES (?, ?, ?)`,
				m.ID, m.Name, m.Email); err != nil {
				return fmt.Errorf("insert team member %d: %w", m.ID, err)
			}
			counts.TeamMembers++
		}

		for _, t := range snap.Tasks {
			var due sql.NullString
			if t.DueDate != nil {
				due = sql.NullString{String: timestamp(*t.DueDate), Valid: true}
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO tasks (id, project_id, list_id, title, completed, due_date, assignee_id, notes, created_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				t.ID, t.ProjectID, nullInt(t.ListID), t.Title, t.Completed, due, nullInt(t.AssigneeID),
				t.Notes, timestamp(t.CreatedAt)); err != nil {
				return fmt.Errorf("insert task %d: %w", t.ID, err)
			}
			counts.Tasks++
		}

		for _, th := range snap.Threads {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO message_threads (id, title, author, created_at, last_activity, reply_count, initial_message)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				th.ID, th.Title, th.Author, timestamp(th.CreatedAt), timestamp(th.LastActivity),
				th.ReplyCount, th.InitialMessage); err != nil {
				return fmt.Errorf("insert thread %d: %w", th.ID, err)
			}
			counts.Threads++
		}

		for _, m := range snap.Messages {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO messages (id, thread_id, author, content, timestamp, is_initial) VALUES (?, ?, ?, ?, ?, ?)`,
				m.ID, m.ThreadID, m.Author, m.Content, timestamp(m.Timestamp), m.IsInitial); err != nil {
				return fmt.Errorf("insert message %d: %w", m.ID, err)
			}
			counts.Messages++
		}

		for _, a := range snap.Activities {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO activities (id, project_id, action, details, timestamp) VALUES (?, ?, ?, ?, ?)`,
				a.ID, a.ProjectID, string(a.Action), a.Details, timestamp(a.Timestamp)); err != nil {
				return fmt.Errorf("insert activity %d: %w", a.ID, err)
			}
			counts.Activities++
		}
		return nil
	})
	if err != nil {
		return Counts{}, err
	}
	return counts, nil
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
