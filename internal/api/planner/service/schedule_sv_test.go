package plannerService

import (
	"StudentPlanner/internal/api/planner"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklySchedule(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	mustCreateCourse(t, service, planner.CreateCourseRequest{
		Name: "Kalkulus", Day: "monday", StartTime: "10:00", EndTime: "11:40",
	})
	mustCreateCourse(t, service, planner.CreateCourseRequest{
		Name: "Fisika", Day: "monday", StartTime: "08:00", EndTime: "09:40", Room: "Lab 2",
	})
	mustCreateCourse(t, service, planner.CreateCourseRequest{
		Name: "Skripsi",
	})

	schedule, err := service.WeeklySchedule(ctx, 0)
	require.NoError(t, err)

	assert.Equal(t, "Minggu Ini", schedule.Label)
	assert.Equal(t, "2026-03-02", schedule.WeekStart)
	assert.Equal(t, "2026-03-08", schedule.WeekEnd)
	require.Len(t, schedule.Days, 7)

	monday := schedule.Days[0]
	assert.Equal(t, "monday", monday.Day)
	assert.Equal(t, "Senin", monday.DayName)
	assert.False(t, monday.IsToday)

	// Earlier start time comes first.
	require.Len(t, monday.Courses, 2)
	assert.Equal(t, "Fisika", monday.Courses[0].Name)
	assert.Equal(t, "Kalkulus", monday.Courses[1].Name)

	wednesday := schedule.Days[2]
	assert.True(t, wednesday.IsToday)
	assert.Empty(t, wednesday.Courses)

	// An unscheduled course never shows up in the grid.
	for _, day := range schedule.Days {
		for _, course := range day.Courses {
			assert.NotEqual(t, "Skripsi", course.Name)
		}
	}
}

func TestWeeklyScheduleOffset(t *testing.T) {
	service, _ := newTestService(t)

	schedule, err := service.WeeklySchedule(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-09", schedule.WeekStart)
	assert.Equal(t, "2026-03-15", schedule.WeekEnd)
	assert.Equal(t, "9 Mar - 15 Mar", schedule.Label)

	for _, day := range schedule.Days {
		assert.False(t, day.IsToday)
	}
}

func TestWeeklyScheduleKeepsOrderForMissingTimes(t *testing.T) {
	service, _ := newTestService(t)

	mustCreateCourse(t, service, planner.CreateCourseRequest{Name: "Seminar", Day: "friday"})
	mustCreateCourse(t, service, planner.CreateCourseRequest{
		Name: "Praktikum", Day: "friday", StartTime: "13:00", EndTime: "15:00",
	})

	schedule, err := service.WeeklySchedule(context.Background(), 0)
	require.NoError(t, err)

	friday := schedule.Days[4]
	require.Len(t, friday.Courses, 2)
	assert.Equal(t, "Seminar", friday.Courses[0].Name)
	assert.Equal(t, "Praktikum", friday.Courses[1].Name)
}
