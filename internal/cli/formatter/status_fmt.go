package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/punch/internal/contract"
)

// FormatStatus renders the status dashboard for today's logical day.
func FormatStatus(resp *contract.StatusResponse) string {
	var b strings.Builder

	line := func(label string, value string) {
		b.WriteString(fmt.Sprintf("%-18s %s\n", label, value))
	}
	line("Login time", StyleFg.Render(FormatClock(resp.TotalLogin)))
	line("Break time", StyleFg.Render(FormatClock(resp.TotalBreak)))
	line("Productive time", Bold(FormatClock(resp.Productive)))

	b.WriteString("\n")
	if resp.LoggedIn && resp.Since != nil {
		b.WriteString(StyleGreen.Render(fmt.Sprintf("● Logged in since %s", HumanClock(*resp.Since))) + "\n")
	} else {
		b.WriteString(StyleRed.Render("○ Not logged in") + "\n")
	}
	if resp.FirstLogin != nil {
		b.WriteString(StyleBlue.Render(fmt.Sprintf("First login today: %s", HumanClock(*resp.FirstLogin))) + "\n")
	}

	return RenderBox("Status", strings.TrimRight(b.String(), "\n"))
}
