package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// FormatClock renders a duration as HH:MM:SS. Durations of a day or
// more keep accumulating hours rather than rolling over.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

// HumanClock renders the time-of-day of an instant.
func HumanClock(t time.Time) string {
	return t.Format("15:04:05")
}

// ClockOrDash renders an optional instant, dimmed "--" when absent.
func ClockOrDash(t *time.Time) string {
	if t == nil {
		return Dim("--")
	}
	return StyleFg.Render(HumanClock(*t))
}

// ReportDate renders a calendar day for the 7-day report.
func ReportDate(t time.Time) string {
	return t.Format("Mon, 02 Jan")
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// RenderTable renders a simple aligned table with a header separator
// line. Column widths are measured with lipgloss.Width so styled cells
// pad correctly.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2
	pad := func(b *strings.Builder, cell string, col int) {
		b.WriteString(cell)
		if col < cols-1 {
			gap := widths[col] - lipgloss.Width(cell)
			if gap < 0 {
				gap = 0
			}
			b.WriteString(strings.Repeat(" ", gap+colGap))
		}
	}

	var b strings.Builder
	for i, h := range headers {
		cell := StyleHeader.Render(h)
		b.WriteString(cell)
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(h)+colGap))
		}
	}
	b.WriteString("\n")
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad(&b, cell, i)
		}
		b.WriteString("\n")
	}
	return b.String()
}
