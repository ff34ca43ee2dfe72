// Package export writes the in-memory collections out as a spreadsheet
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/thenoetrevino/campfire/internal/dashboard"
	"github.com/thenoetrevino/campfire/internal/models"
	"github.com/thenoetrevino/campfire/internal/store"
	"github.com/thenoetrevino/campfire/internal/user"
)

// Sheet names of the workbook, in tab order
const (
	SheetSummary  = "Summary"
	SheetTasks    = "Tasks"
	SheetLists    = "Lists"
	SheetActivity = "Activity"
)

const (
	workbookTitle = "Campfire export"
	headerFill    = "F97316"
	dateLayout    = "2006-01-02"
)

type column struct {
	header string
	width  float64
}

var (
	summaryColumns = []column{
		{"Project ID", 11}, {"Project", 28}, {"Members", 10}, {"Total", 8}, {"Completed", 11},
		{"Percent", 9}, {"Overdue", 9}, {"Due Soon", 10},
	}
	taskColumns = []column{
		{"ID", 6}, {"Project", 24}, {"List", 16}, {"Title", 40}, {"Completed", 11},
		{"Due Date", 12}, {"Status", 10}, {"Assignee", 18}, {"Notes", 40}, {"Created", 12},
	}
	listColumns = []column{
		{"ID", 6}, {"Project", 24}, {"Name", 20}, {"Description", 40}, {"Color", 10},
		{"Collapsed", 11}, {"Tasks", 8}, {"Completed", 11}, {"Percent", 9},
	}
	activityColumns = []column{
		{"ID", 6}, {"Project", 24}, {"Action", 16}, {"Details", 60}, {"Timestamp", 22},
	}
)

// WriteXLSX renders snap as a workbook onto w
// Derived columns (status, percentages) are computed as of now.
func WriteXLSX(w io.Writer, snap *store.Snapshot, now time.Time) error {
	f, err := BuildWorkbook(snap, now)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return f.Write(w)
}

// BuildWorkbook lays out the Summary, Tasks, Lists and Activity sheets
func BuildWorkbook(snap *store.Snapshot, now time.Time) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	idx := newIndex(snap)

	sheets := []struct {
		name    string
		columns []column
		rows    [][]any
	}{
		{SheetSummary, summaryColumns, summaryRows(snap, now)},
		{SheetTasks, taskColumns, taskRows(snap, idx, now)},
		{SheetLists, listColumns, listRows(snap, idx, now)},
		{SheetActivity, activityColumns, activityRows(snap, idx)},
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			return nil, err
		}
		if err := writeSheet(f, sheet.name, sheet.columns, sheet.rows, headerStyle); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", sheet.name, err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   workbookTitle,
		Creator: user.CurrentName("campfire"),
		Created: now.UTC().Format(time.RFC3339),
	}); err != nil {
		return nil, fmt.Errorf("document properties: %w", err)
	}

	return f, nil
}

func writeSheet(f *excelize.File, sheet string, columns []column, rows [][]any, headerStyle int) error {
	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c.header
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, c.width); err != nil {
			return err
		}
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// index resolves ids to display names
type index struct {
	projects map[int]string
	lists    map[int]string
	members  map[int]string
}

func newIndex(snap *store.Snapshot) index {
	idx := index{
		projects: make(map[int]string, len(snap.Projects)),
		lists:    make(map[int]string, len(snap.TaskLists)),
		members:  make(map[int]string, len(snap.TeamMembers)),
	}
	for _, p := range snap.Projects {
		idx.projects[p.ID] = p.Name
	}
	for _, l := range snap.TaskLists {
		idx.lists[l.ID] = l.Name
	}
	for _, m := range snap.TeamMembers {
		idx.members[m.ID] = m.Name
	}
	return idx
}

func lookup(names map[int]string, id *int) string {
	if id == nil {
		return ""
	}
	return names[*id]
}

func summaryRows(snap *store.Snapshot, now time.Time) [][]any {
	rows := make([][]any, 0, len(snap.Projects))
	for _, p := range snap.Projects {
		var tasks []*models.Task
		for _, t := range snap.Tasks {
			if t.ProjectID == p.ID {
				tasks = append(tasks, t)
			}
		}
		s := dashboard.ComputeStats(tasks, now)
		rows = append(rows, []any{p.ID, p.Name, p.MemberCount, s.Total, s.Completed, s.Percent, s.Overdue, s.DueSoon})
	}
	return rows
}

// Status is the schedule state of a task as shown in exports
func Status(t *models.Task, now time.Time) string {
	switch {
	case t.Completed:
		return "done"
	case dashboard.IsOverdue(t, now):
		return "overdue"
	case dashboard.IsDueSoon(t, now):
		return "due soon"
	default:
		return "open"
	}
}

func taskRows(snap *store.Snapshot, idx index, now time.Time) [][]any {
	rows := make([][]any, 0, len(snap.Tasks))
	for _, t := range snap.Tasks {
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.UTC().Format(dateLayout)
		}
		rows = append(rows, []any{
			t.ID, idx.projects[t.ProjectID], lookup(idx.lists, t.ListID), t.Title, t.Completed,
			due, Status(t, now), lookup(idx.members, t.AssigneeID), t.Notes,
			t.CreatedAt.UTC().Format(dateLayout),
		})
	}
	return rows
}

func listRows(snap *store.Snapshot, idx index, now time.Time) [][]any {
	rows := make([][]any, 0, len(snap.TaskLists))
	for _, l := range snap.TaskLists {
		var tasks []*models.Task
		for _, t := range snap.Tasks {
			if t.InList(l.ID) {
				tasks = append(tasks, t)
			}
		}
		s := dashboard.ComputeStats(tasks, now)
		rows = append(rows, []any{
			l.ID, idx.projects[l.ProjectID], l.Name, l.Description, l.Color, l.IsCollapsed,
			s.Total, s.Completed, s.Percent,
		})
	}
	return rows
}

func activityRows(snap *store.Snapshot, idx index) [][]any {
	rows := make([][]any, 0, len(snap.Activities))
	for _, a := range snap.Activities {
		rows = append(rows, []any{
			a.ID, idx.projects[a.ProjectID], string(a.Action), a.Details, a.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	return rows
}
