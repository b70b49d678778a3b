package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/punch/internal/cli/formatter"
	"github.com/alexanderramin/punch/internal/contract"
	"github.com/alexanderramin/punch/internal/service"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// watchTickMsg drives the once-per-second refresh of the live view.
type watchTickMsg time.Time

// watchStatusMsg carries a freshly aggregated status snapshot.
type watchStatusMsg struct {
	resp *contract.StatusResponse
	err  error
}

type watchModel struct {
	tracker service.TrackerService
	spin    spinner.Model
	resp    *contract.StatusResponse
	err     error
}

func newWatchModel(tracker service.TrackerService) watchModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(formatter.StylePurple),
	)
	return watchModel{tracker: tracker, spin: sp}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.refresh, watchTick())
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

// refresh re-runs the status aggregation. Each tick reloads from the
// store, so the view also picks up mutations from other invocations.
func (m watchModel) refresh() tea.Msg {
	resp, err := m.tracker.Status(context.Background())
	return watchStatusMsg{resp: resp, err: err}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case watchTickMsg:
		return m, tea.Batch(m.refresh, watchTick())

	case watchStatusMsg:
		m.resp = msg.resp
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m watchModel) View() string {
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.resp == nil {
		return formatter.Dim("Loading…") + "\n"
	}

	out := formatter.FormatStatus(m.resp) + "\n"
	if m.resp.LoggedIn {
		out += "  " + m.spin.View() + formatter.Dim("tracking") + "\n"
	}
	out += "\n" + formatter.Dim("q to quit") + "\n"
	return out
}
