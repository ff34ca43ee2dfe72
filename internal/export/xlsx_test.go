package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/thenoetrevino/campfire/internal/fixtures"
	"github.com/thenoetrevino/campfire/internal/models"
	"github.com/thenoetrevino/campfire/internal/store"
)

var exportNow = time.Date(2024, 2, 19, 12, 0, 0, 0, time.UTC)

func readBack(t *testing.T, snap *store.Snapshot) *excelize.File {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, snap, exportNow))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestWriteXLSX_Sheets(t *testing.T) {
	t.Parallel()

	f := readBack(t, store.New(fixtures.MustLoad()).Snapshot())

	assert.Equal(t, []string{SheetSummary, SheetTasks, SheetLists, SheetActivity}, f.GetSheetList())
}

func TestWriteXLSX_DocProps(t *testing.T) {
	t.Parallel()

	f := readBack(t, store.Empty().Snapshot())

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "Campfire export", props.Title)
	assert.NotEmpty(t, props.Creator)
	assert.Equal(t, "2024-02-19T12:00:00Z", props.Created)
}

func TestWriteXLSX_TaskRows(t *testing.T) {
	t.Parallel()

	snap := store.New(fixtures.MustLoad()).Snapshot()
	f := readBack(t, snap)

	rows, err := f.GetRows(SheetTasks)
	require.NoError(t, err)
	require.Len(t, rows, len(snap.Tasks)+1)

	assert.Equal(t, "Title", rows[0][3])
	first := rows[1]
	assert.Equal(t, "1", first[0])
	assert.Equal(t, "Website Redesign", first[1])
	assert.Equal(t, "Design", first[2])
	assert.Equal(t, "Create wireframes for the homepage", first[3])
	assert.Equal(t, "done", first[6])
	assert.Equal(t, "Sarah Chen", first[7])
}

func TestWriteXLSX_SummaryUsesStats(t *testing.T) {
	t.Parallel()

	snap := store.New(fixtures.MustLoad()).Snapshot().ForProject(1)
	f := readBack(t, snap)

	rows, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// project 1 seeds six tasks, two of them completed
	assert.Equal(t, "6", rows[1][3])
	assert.Equal(t, "2", rows[1][4])
	assert.Equal(t, "33", rows[1][5])
}

func TestWriteXLSX_EmptySnapshot(t *testing.T) {
	t.Parallel()

	f := readBack(t, store.Empty().Snapshot())

	rows, err := f.GetRows(SheetActivity)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Details", rows[0][3])
}

func TestStatus(t *testing.T) {
	t.Parallel()

	past := exportNow.Add(-time.Hour)
	soon := exportNow.Add(2 * time.Hour)
	later := exportNow.Add(72 * time.Hour)

	tests := []struct {
		name string
		task *models.Task
		want string
	}{
		{"completed", &models.Task{Completed: true, DueDate: &past}, "done"},
		{"overdue", &models.Task{DueDate: &past}, "overdue"},
		{"due soon", &models.Task{DueDate: &soon}, "due soon"},
		{"later", &models.Task{DueDate: &later}, "open"},
		{"no due date", &models.Task{}, "open"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.task, exportNow))
		})
	}
}
