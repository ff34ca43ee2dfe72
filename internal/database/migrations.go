package database

import (
	"context"
	"database/sql"
)

var schema = []string{
	`CREATE TABLE projects (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		member_count INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE task_lists (
		id INTEGER PRIMARY KEY,
		project_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL,
		is_collapsed BOOLEAN NOT NULL DEFAULT 0,
		position INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE team_members (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL
	)`,
	`CREATE TABLE tasks (
		id INTEGER PRIMARY KEY,
		project_id INTEGER NOT NULL,
		list_id INTEGER,
		title TEXT NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT 0,
		due_date DATETIME,
		assignee_id INTEGER,
		notes TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	)`,
	`CREATE INDEX idx_tasks_project ON tasks(project_id, created_at)`,
	`CREATE TABLE message_threads (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		last_activity DATETIME NOT NULL,
		reply_count INTEGER NOT NULL DEFAULT 0,
		initial_message TEXT NOT NULL
	)`,
	`CREATE TABLE messages (
		id INTEGER PRIMARY KEY,
		thread_id INTEGER NOT NULL REFERENCES message_threads(id) ON DELETE CASCADE,
		author TEXT NOT NULL,
		content TEXT NOT NULL,
		timestamp DATETIME NOT NULL,
		is_initial BOOLEAN NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX idx_messages_thread ON messages(thread_id, timestamp)`,
	`CREATE TABLE activities (
		id INTEGER PRIMARY KEY,
		project_id INTEGER NOT NULL,
		action TEXT NOT NULL,
		details TEXT NOT NULL,
		timestamp DATETIME NOT NULL
	)`,
	`CREATE INDEX idx_activities_project ON activities(project_id, timestamp)`,
}

// runMigrations creates the snapshot schema on a fresh file
// Task and list references are not foreign keys because the in-memory
// store does not enforce them either.
func runMigrations(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
