package entity

import (
	"StudentPlanner/internal/api/planner"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday("monday")
	require.NoError(t, err)
	assert.Equal(t, WeekdayMonday, day)

	day, err = ParseWeekday("  SENIN ")
	require.NoError(t, err)
	assert.Equal(t, WeekdayMonday, day)

	day, err = ParseWeekday("")
	require.NoError(t, err)
	assert.Empty(t, day)

	_, err = ParseWeekday("someday")
	assert.ErrorIs(t, err, planner.ErrInvalidDay)
}

func TestParsePriority(t *testing.T) {
	assert.Equal(t, PriorityHigh, ParsePriority("HIGH"))
	assert.Equal(t, PriorityLow, ParsePriority(" low "))
	assert.Equal(t, PriorityMedium, ParsePriority(""))
	assert.Equal(t, PriorityMedium, ParsePriority("urgent"))
}

func TestParseDeadline(t *testing.T) {
	parsed, err := ParseDeadline("2026-03-05T08:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 5, 8, 30, 0, 0, time.Local), parsed)

	parsed, err = ParseDeadline("2026-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.Local), parsed)

	_, err = ParseDeadline("")
	assert.ErrorIs(t, err, planner.ErrDeadlineRequired)

	_, err = ParseDeadline("05/03/2026")
	assert.ErrorIs(t, err, planner.ErrInvalidDeadline)
}

func TestCourseProgress(t *testing.T) {
	course := Course{
		Tasks: []Task{
			{Done: true},
			{Done: false},
			{Done: true},
			{Done: false},
		},
	}

	completed, total, percent := course.Progress()
	assert.Equal(t, 2, completed)
	assert.Equal(t, 4, total)
	assert.InDelta(t, 50.0, percent, 0.001)

	empty := Course{}
	completed, total, percent = empty.Progress()
	assert.Zero(t, completed)
	assert.Zero(t, total)
	assert.Zero(t, percent)
}

func TestAllTasksDone(t *testing.T) {
	// A course without tasks is never "all done".
	empty := Course{}
	assert.False(t, empty.AllTasksDone())

	course := Course{Tasks: []Task{{Done: true}, {Done: true}}}
	assert.True(t, course.AllTasksDone())

	course.Tasks[1].Done = false
	assert.False(t, course.AllTasksDone())
}

func TestCourseValidate(t *testing.T) {
	course := Course{Name: "Kalkulus", Day: WeekdayMonday}
	assert.NoError(t, course.Validate())

	course.Name = "  "
	assert.ErrorIs(t, course.Validate(), planner.ErrCourseNameRequired)

	course.Name = "Kalkulus"
	course.Day = "funday"
	assert.ErrorIs(t, course.Validate(), planner.ErrInvalidDay)
}

func TestTaskValidate(t *testing.T) {
	task := Task{Text: "Quiz", Deadline: "2026-03-05T08:00", Priority: PriorityMedium}
	assert.NoError(t, task.Validate())

	task.Text = ""
	assert.ErrorIs(t, task.Validate(), planner.ErrTaskTextRequired)

	task.Text = "Quiz"
	task.Deadline = "nanti"
	assert.ErrorIs(t, task.Validate(), planner.ErrInvalidDeadline)

	task.Deadline = "2026-03-05T08:00"
	task.Priority = "urgent"
	assert.ErrorIs(t, task.Validate(), planner.ErrInvalidPriority)
}
