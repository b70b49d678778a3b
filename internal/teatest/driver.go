// Package teatest provides a synchronous test driver for bubbletea
// models. It replaces tea.Program in tests by calling Update() directly
// and draining returned Cmds, so models can be tested without
// goroutines or timing.
//
// Cmds that block on timer channels (tea.Tick, spinner ticks) are
// executed with a short timeout and skipped when they don't return
// promptly; tests inject tick messages explicitly instead.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth is the safety limit for command draining.
const maxDrainDepth = 100

// cmdTimeout separates instant Cmds (message factories, store reads)
// from timer-backed ones.
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg is seen during drain.
	Quitting bool
}

// New creates a Driver for the given model. Call DrainInit() to process
// the model's Init() command.
func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	return &Driver{T: t, Model: model}
}

// DrainInit executes the model's Init() command and drains the results.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// Send dispatches a message through Update and drains resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// PressKey sends a character key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressEsc sends the Escape key.
func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

// PressCtrlC sends Ctrl+C.
func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
}

// View returns the rendered output of the model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil || depth >= maxDrainDepth {
		return
	}

	msg := execCmdWithTimeout(cmd)
	if msg == nil {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub != nil {
				d.drainCmd(sub, depth+1)
			}
		}
		return
	}

	// tea.QuitMsg is normally intercepted by the runtime; detect it here.
	if _, isQuit := msg.(tea.QuitMsg); isQuit {
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(next, depth+1)
}

func execCmdWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}
