package plannerService

import (
	"StudentPlanner/internal/api/planner"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpcomingTasks(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	course := mustCreateCourse(t, service, planner.CreateCourseRequest{Name: "Kalkulus"})

	later := mustCreateTask(t, service, planner.CreateTaskRequest{
		CourseID: course.ID, Text: "Laporan", Deadline: "2026-03-09T23:59",
	})
	soon := mustCreateTask(t, service, planner.CreateTaskRequest{
		CourseID: course.ID, Text: "Quiz", Deadline: "2026-03-05T08:00",
	})
	mustCreateTask(t, service, planner.CreateTaskRequest{
		CourseID: course.ID, Text: "UAS", Deadline: "2026-04-20T08:00",
	})
	overdue := mustCreateTask(t, service, planner.CreateTaskRequest{
		CourseID: course.ID, Text: "PR lama", Deadline: "2026-03-01T08:00",
	})
	finished := mustCreateTask(t, service, planner.CreateTaskRequest{
		CourseID: course.ID, Text: "Presentasi", Deadline: "2026-03-06T08:00",
	})
	_, err := service.ToggleTask(ctx, course.ID, finished.ID)
	require.NoError(t, err)

	entries, err := service.UpcomingTasks(ctx, 7)
	require.NoError(t, err)

	// Done, overdue and far-future tasks are all excluded; the rest is sorted
	// by deadline.
	require.Len(t, entries, 2)
	assert.Equal(t, soon.ID, entries[0].Task.ID)
	assert.Equal(t, later.ID, entries[1].Task.ID)
	assert.Equal(t, "Kalkulus", entries[0].CourseName)

	for _, entry := range entries {
		assert.NotEqual(t, overdue.ID, entry.Task.ID)
	}
}

func TestUpcomingTasksDefaultWindow(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	course := mustCreateCourse(t, service, planner.CreateCourseRequest{Name: "Fisika"})

	// Day seven is still inside the default window, day eight is not.
	mustCreateTask(t, service, planner.CreateTaskRequest{
		CourseID: course.ID, Text: "Dalam jendela", Deadline: "2026-03-11T12:00",
	})
	mustCreateTask(t, service, planner.CreateTaskRequest{
		CourseID: course.ID, Text: "Luar jendela", Deadline: "2026-03-12T13:00",
	})

	entries, err := service.UpcomingTasks(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Dalam jendela", entries[0].Task.Text)
}

func TestUpcomingTasksEmpty(t *testing.T) {
	service, _ := newTestService(t)

	entries, err := service.UpcomingTasks(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
