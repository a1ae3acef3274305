// Package render formats todo entries for terminal output: one colorized
// line per entry, or an indented JSON array in machine mode.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dukaforge/cltodo/pkg/types"
)

const (
	compactDate = "2006-01-02"

	// priorityWidth fits "Important", the longest priority name.
	priorityWidth = 9
)

var (
	criticalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	importantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Line formats a single entry, colorized by priority. Extended mode prints
// the full stored timestamp instead of the compact date.
func Line(t types.Todo, extended bool) string {
	line := plainLine(t, extended)
	switch t.Priority {
	case types.PriorityCritical:
		return criticalStyle.Render(line)
	case types.PriorityImportant:
		return importantStyle.Render(line)
	default:
		return line
	}
}

func plainLine(t types.Todo, extended bool) string {
	layout := compactDate
	if extended {
		layout = time.RFC3339
	}
	return fmt.Sprintf("#%d  %*s  %s  %s",
		t.ID, priorityWidth, t.Priority, t.Date.Format(layout), t.Text)
}

// List writes one line per entry, or a notice when there is nothing to
// show.
func List(w io.Writer, todos []types.Todo, extended bool) error {
	if len(todos) == 0 {
		_, err := fmt.Fprintln(w, "No todos found.")
		return err
	}
	for _, t := range todos {
		if _, err := fmt.Fprintln(w, Line(t, extended)); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the entries as an indented JSON array.
func JSON(w io.Writer, todos []types.Todo) error {
	out, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal todos: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
