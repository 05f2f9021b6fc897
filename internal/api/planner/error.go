package planner

import "StudentPlanner/pkg/response"

var (
	ErrCourseNameRequired = response.NewError(400, "course name is required")
	ErrInvalidDay         = response.NewError(400, "invalid course day")
	ErrCourseNotFound     = response.NewError(404, "course not found")
	ErrTaskNotFound       = response.NewError(404, "task not found")
	ErrTaskTextRequired   = response.NewError(400, "task description is required")
	ErrDeadlineRequired   = response.NewError(400, "task deadline is required")
	ErrInvalidDeadline    = response.NewError(400, "invalid task deadline")
	ErrInvalidPriority    = response.NewError(400, "invalid task priority")
	ErrSaveCourses        = response.NewError(500, "failed to persist courses")
)
