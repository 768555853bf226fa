package shared

import (
	"strings"

	"lifeplanner/internal/planner/data"
	"lifeplanner/internal/tui/theme"
)

// StyledTaskLine renders a task as "[x] HH:MM Title (date) !".
func StyledTaskLine(t data.Task) string {
	var parts []string

	if t.Completed {
		parts = append(parts, theme.Muted.Render("[x]"))
	} else {
		parts = append(parts, "[ ]")
	}

	if t.Time != "" {
		if t.Completed {
			parts = append(parts, theme.Muted.Render(t.Time))
		} else {
			parts = append(parts, theme.Time.Render(t.Time))
		}
	}

	if t.Completed {
		parts = append(parts, theme.Done.Render(t.Title))
	} else {
		parts = append(parts, t.Title)
	}

	if t.Date != "" {
		parts = append(parts, theme.Date.Render(t.Date))
	}
	if t.IsImportant && !t.Completed {
		parts = append(parts, theme.Important.Render("!"))
	}

	return strings.Join(parts, " ")
}
