package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/gateway"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/model"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/task"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/pkg/datemath"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	pendingStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	subtleStyle  = lipgloss.NewStyle().Faint(true)
)

// describeError turns pipeline failures into operator-friendly lines.
func describeError(err error) string {
	switch {
	case errors.Is(err, gateway.ErrSessionExpired):
		return "session ended, run `ezlife login` again"
	case errors.Is(err, gateway.ErrUnreachable):
		return "backend unreachable, is the server running?"
	default:
		var validation *gateway.ValidationError
		if errors.As(err, &validation) {
			return validation.Reason
		}
		var rejected *gateway.RejectedError
		if errors.As(err, &rejected) {
			return fmt.Sprintf("rejected (%d): %s", rejected.Status, rejected.Message)
		}
		return err.Error()
	}
}

func renderError(err error) string {
	return errorStyle.Render("error: ") + describeError(err)
}

func renderTaskLine(t model.Task, now time.Time) string {
	mark := "[ ]"
	style := lipgloss.NewStyle()
	switch {
	case t.Completed:
		mark = doneStyle.Render("[x]")
		style = subtleStyle
	case t.DueDate != nil && t.DueDate.Before(now):
		style = overdueStyle
	}

	line := fmt.Sprintf("%s %s", mark, style.Render(t.Description))
	if t.EstimatedMinutes > 0 {
		line += subtleStyle.Render(fmt.Sprintf("  ~%dm", t.EstimatedMinutes))
	}
	if t.DueDate != nil {
		due := t.DueDate.Local()
		if datemath.SameDay(due, now.Local()) {
			line += subtleStyle.Render("  due today " + due.Format("15:04"))
		} else {
			line += subtleStyle.Render("  due " + due.Format("2006-01-02 15:04"))
		}
	}
	if t.Pending {
		line += pendingStyle.Render("  (saving...)")
	} else {
		line += subtleStyle.Render("  " + t.ID)
	}
	return line
}

func renderTasks(title string, tasks []model.Task, now time.Time) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")
	if len(tasks) == 0 {
		b.WriteString(subtleStyle.Render("nothing here") + "\n")
		return b.String()
	}
	for _, t := range tasks {
		b.WriteString(renderTaskLine(t, now) + "\n")
	}
	return b.String()
}

func renderStats(stats task.Stats) string {
	return subtleStyle.Render(fmt.Sprintf("%d/%d done (%.0f%%)",
		stats.Completed, stats.Total, stats.CompletionRate*100))
}

func renderActivities(activities []model.Activity) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Daily schedule") + "\n")
	if len(activities) == 0 {
		b.WriteString(subtleStyle.Render("nothing scheduled") + "\n")
		return b.String()
	}
	for _, a := range activities {
		line := fmt.Sprintf("%s  %s %s", a.Name, a.Date, a.Time)
		if a.Pending {
			line += pendingStyle.Render("  (saving...)")
		} else {
			line += subtleStyle.Render("  " + a.ID)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func renderFiles(records []model.FileRecord) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Files") + "\n")
	if len(records) == 0 {
		b.WriteString(subtleStyle.Render("no files uploaded") + "\n")
		return b.String()
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-30s %-6s %10s  %s", "name", "type", "size", "id")) + "\n")
	for _, r := range records {
		b.WriteString(fmt.Sprintf("%-30s %-6s %10s  %s\n",
			r.OriginalFilename, r.FileType, formatSize(r.FileSize), subtleStyle.Render(r.ID)))
	}
	return b.String()
}

func formatSize(bytes int64) string {
	switch {
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

func renderProfile(p model.Profile) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Account") + "\n")
	b.WriteString("email: " + p.Email + "\n")
	if p.Name != "" {
		b.WriteString("name:  " + p.Name + "\n")
	}
	if p.Phone != "" {
		b.WriteString("phone: " + p.Phone + "\n")
	}
	return b.String()
}
