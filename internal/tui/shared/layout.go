package shared

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CenterWithBottomHints renders content vertically centered in the available
// height, with hint text pinned to the very bottom line.
func CenterWithBottomHints(content, hints string, height int) string {
	content = strings.TrimRight(content, "\n")
	hints = strings.TrimRight(hints, "\n")

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}
	hintLines := strings.Split(hints, "\n")

	totalUsed := len(contentLines) + len(hintLines)
	if totalUsed >= height {
		if content == "" {
			return hints
		}
		return content + "\n" + hints
	}

	gap := height - totalUsed
	topPad := gap / 2

	lines := make([]string, 0, height)
	for i := 0; i < topPad; i++ {
		lines = append(lines, "")
	}
	lines = append(lines, contentLines...)
	for len(lines) < height-len(hintLines) {
		lines = append(lines, "")
	}
	lines = append(lines, hintLines...)

	return strings.Join(lines, "\n")
}

// Header renders a view title with an optional right-aligned hint.
func Header(title, hint string, width int) string {
	if hint == "" {
		return title
	}
	padding := width - lipgloss.Width(title) - lipgloss.Width(hint) - 1
	if padding < 1 {
		return title
	}
	return title + strings.Repeat(" ", padding) + hint
}

// ScrollWindow returns the [start, end) range of rows to show so cursor
// stays visible in a list of total rows.
func ScrollWindow(cursor, offset, visible, total int) (int, int) {
	if visible < 1 {
		visible = 1
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+visible {
		offset = cursor - visible + 1
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + visible
	if end > total {
		end = total
	}
	return offset, end
}

// Truncate shortens s to width cells, ending with an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
