package models

import (
	"fmt"
	"strings"
	"time"
)

// ============================================================================
// TASK LIST COLORS
// ============================================================================

// ListColors are the swatches offered when creating a task list
var ListColors = []string{
	"#EC4899", // pink
	"#3B82F6", // blue
	"#10B981", // green
	"#F59E0B", // yellow
	"#EF4444", // red
	"#8B5CF6", // purple
	"#6B7280", // gray
}

// DefaultListColor is used when a list is created without a color
const DefaultListColor = "#EC4899"

// ============================================================================
// DEFAULTS
// ============================================================================

// DefaultMemberCount is assigned to projects created without a member count
const DefaultMemberCount = 1

// DefaultAuthor signs threads and replies created in this session
const DefaultAuthor = "You"

// ============================================================================
// DUE DATES
// ============================================================================

// DueDateLayout is the date-only form accepted for due dates
const DueDateLayout = "2006-01-02"

// ErrInvalidDueDate is returned when a due date is neither a date nor RFC 3339
var ErrInvalidDueDate = fmt.Errorf("due date must be YYYY-MM-DD or RFC 3339: %w", ErrValidation)

// ParseDueDate converts user input into a due date
// Blank input means "no due date" and yields nil
func ParseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{DueDateLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, ErrInvalidDueDate
}

// FormatDueDate renders a due date so ParseDueDate reads it back unchanged,
// sub-second precision included
func FormatDueDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}
