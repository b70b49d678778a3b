package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testDay = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func TestDayWindow_AfterBoundary(t *testing.T) {
	now := testDay.Add(10 * time.Hour) // 10:00
	start, end := DayWindow(now, BoundaryHour)
	assert.Equal(t, testDay.Add(4*time.Hour), start)
	assert.Equal(t, testDay.Add(28*time.Hour), end)
}

func TestDayWindow_BeforeBoundary(t *testing.T) {
	// 02:30 still belongs to the previous logical day.
	now := testDay.Add(2*time.Hour + 30*time.Minute)
	start, end := DayWindow(now, BoundaryHour)
	assert.Equal(t, testDay.AddDate(0, 0, -1).Add(4*time.Hour), start)
	assert.Equal(t, testDay.Add(4*time.Hour), end)
}

func TestDayWindow_ExactlyAtBoundary(t *testing.T) {
	now := testDay.Add(4 * time.Hour)
	start, _ := DayWindow(now, BoundaryHour)
	assert.Equal(t, now, start, "the boundary instant opens the new day")
}

func TestCalendarDay(t *testing.T) {
	now := testDay.Add(23*time.Hour + 59*time.Minute)
	start, end := CalendarDay(now)
	assert.Equal(t, testDay, start)
	assert.Equal(t, testDay.AddDate(0, 0, 1), end)
}
