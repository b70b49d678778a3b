package formatter

import (
	"strings"

	"github.com/alexanderramin/punch/internal/contract"
)

// FormatReport renders the 7-day report table, oldest day first.
func FormatReport(resp *contract.ReportResponse) string {
	headers := []string{"DAY", "LOGIN", "BREAK", "PRODUCTIVE", "FIRST LOGIN", "LAST LOGOUT"}
	rows := make([][]string, 0, len(resp.Days))
	for _, d := range resp.Days {
		rows = append(rows, []string{
			StyleBlue.Render(ReportDate(d.Date)),
			StyleFg.Render(FormatClock(d.TotalLogin)),
			StyleFg.Render(FormatClock(d.TotalBreak)),
			Bold(FormatClock(d.Productive)),
			ClockOrDash(d.FirstLogin),
			ClockOrDash(d.LastLogout),
		})
	}
	return RenderBox("7-Day Report", strings.TrimRight(RenderTable(headers, rows), "\n"))
}
