package cli

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/punch/internal/service"
	"github.com/alexanderramin/punch/internal/testutil"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testApp wires a full App backed by an in-memory store and a mock
// clock set to 09:00 for CLI integration tests.
func testApp(t *testing.T) (*App, *testutil.MemStore, *clock.Mock) {
	t.Helper()
	mock := clock.NewMock()
	mock.Set(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC))
	st := &testutil.MemStore{}
	app := &App{
		Tracker:       service.NewTrackerService(st, mock),
		IsInteractive: func() bool { return false },
	}
	return app, st, mock
}

func runCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

func TestLoginCmd(t *testing.T) {
	app, st, _ := testApp(t)

	out, err := runCmd(t, app, "login")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in at: 09:00:00")
	assert.True(t, st.Log.Active())
}

func TestLoginCmd_AlreadyLoggedInWarnsAndExitsZero(t *testing.T) {
	app, st, _ := testApp(t)

	_, err := runCmd(t, app, "login")
	require.NoError(t, err)
	out, err := runCmd(t, app, "login")
	require.NoError(t, err, "domain-rule violations are warnings, not failures")
	assert.Contains(t, out, "Already logged in!")
	assert.Len(t, st.Log.Sessions, 1)
}

func TestLogoutCmd(t *testing.T) {
	app, _, mock := testApp(t)

	out, err := runCmd(t, app, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "You are not logged in.")

	_, err = runCmd(t, app, "login")
	require.NoError(t, err)
	mock.Add(time.Hour)
	out, err = runCmd(t, app, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out at: 10:00:00")
}

func TestBreakCmds(t *testing.T) {
	app, _, mock := testApp(t)

	out, err := runCmd(t, app, "break", "start")
	require.NoError(t, err)
	assert.Contains(t, out, "You need to login first.")

	_, err = runCmd(t, app, "login")
	require.NoError(t, err)

	mock.Add(time.Hour)
	out, err = runCmd(t, app, "break", "start")
	require.NoError(t, err)
	assert.Contains(t, out, "Break started at: 10:00:00")

	out, err = runCmd(t, app, "break", "start")
	require.NoError(t, err)
	assert.Contains(t, out, "Break already in progress!")

	mock.Add(20 * time.Minute)
	out, err = runCmd(t, app, "break", "end")
	require.NoError(t, err)
	assert.Contains(t, out, "Break ended at: 10:20:00")

	out, err = runCmd(t, app, "break", "end")
	require.NoError(t, err)
	assert.Contains(t, out, "No active break found.")
}

func TestBreakAliases(t *testing.T) {
	app, _, mock := testApp(t)

	_, err := runCmd(t, app, "login")
	require.NoError(t, err)

	mock.Add(time.Hour)
	out, err := runCmd(t, app, "break-start")
	require.NoError(t, err)
	assert.Contains(t, out, "Break started at: 10:00:00")

	mock.Add(10 * time.Minute)
	out, err = runCmd(t, app, "break-end")
	require.NoError(t, err)
	assert.Contains(t, out, "Break ended at: 10:10:00")
}

func TestStatusCmd(t *testing.T) {
	app, _, mock := testApp(t)

	_, err := runCmd(t, app, "login")
	require.NoError(t, err)
	mock.Add(2 * time.Hour)

	out, err := runCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "02:00:00")
	assert.Contains(t, out, "● Logged in since 09:00:00")
	assert.Contains(t, out, "First login today: 09:00:00")
}

func TestStatusCmd_EmptyLog(t *testing.T) {
	app, _, _ := testApp(t)

	out, err := runCmd(t, app, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "00:00:00")
	assert.Contains(t, out, "○ Not logged in")
}

func TestReportCmd_NoActivity(t *testing.T) {
	app, _, _ := testApp(t)

	out, err := runCmd(t, app, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "No activity recorded yet.")
}

func TestReportCmd(t *testing.T) {
	app, _, mock := testApp(t)

	_, err := runCmd(t, app, "login")
	require.NoError(t, err)
	mock.Add(3 * time.Hour)
	_, err = runCmd(t, app, "logout")
	require.NoError(t, err)

	out, err := runCmd(t, app, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "7-DAY REPORT")
	assert.Contains(t, out, "Sun, 15 Jun")
	assert.Contains(t, out, "03:00:00")
	assert.Contains(t, out, "09:00:00")
	assert.Contains(t, out, "12:00:00")
}

func TestResetCmd_Force(t *testing.T) {
	app, st, _ := testApp(t)

	_, err := runCmd(t, app, "login")
	require.NoError(t, err)
	require.True(t, st.Log.Active())

	out, err := runCmd(t, app, "reset", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared all recorded sessions.")
	assert.Empty(t, st.Log.Sessions)
}

func TestResetCmd_NonInteractiveNeedsForce(t *testing.T) {
	app, _, _ := testApp(t)

	_, err := runCmd(t, app, "reset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
}

func TestWatchCmd_NonInteractive(t *testing.T) {
	app, _, _ := testApp(t)

	_, err := runCmd(t, app, "watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestPersistenceErrorPropagates(t *testing.T) {
	app, st, _ := testApp(t)
	st.LoadErr = assert.AnError

	_, err := runCmd(t, app, "status")
	assert.ErrorIs(t, err, assert.AnError, "corrupt storage is fatal, not a warning")
}
