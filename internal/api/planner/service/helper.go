package plannerService

import (
	"StudentPlanner/internal/api/planner"
	"StudentPlanner/internal/entity"
	"StudentPlanner/pkg/datetime"
)

func findCourse(courses []entity.Course, courseID string) (int, bool) {
	for i := range courses {
		if courses[i].ID == courseID {
			return i, true
		}
	}

	return 0, false
}

func (s *plannerService) makeTaskResponse(task entity.Task) planner.TaskResponse {
	response := planner.TaskResponse{
		ID:        task.ID,
		Text:      task.Text,
		Deadline:  task.Deadline,
		Priority:  string(task.Priority),
		Note:      task.Note,
		Done:      task.Done,
		CreatedAt: task.CreatedAt,
	}

	deadline, err := entity.ParseDeadline(task.Deadline)
	if err != nil {
		return response
	}

	now := s.now()
	response.DaysUntil = datetime.DaysUntil(deadline, now)
	response.Urgent = datetime.IsUrgent(deadline, now)
	response.RelativeDeadline = datetime.FormatRelativeDeadline(deadline, now)

	return response
}

func (s *plannerService) makeCourseResponse(course entity.Course) planner.CourseResponse {
	completed, total, percent := course.Progress()

	response := planner.CourseResponse{
		ID:        course.ID,
		Name:      course.Name,
		Day:       string(course.Day),
		StartTime: course.StartTime,
		EndTime:   course.EndTime,
		Room:      course.Room,
		Note:      course.Note,
		Progress: planner.ProgressResponse{
			Completed: completed,
			Total:     total,
			Percent:   percent,
		},
		Tasks: make([]planner.TaskResponse, 0, len(course.Tasks)),
	}

	if course.Day != "" {
		response.DayName = course.Day.DisplayName()
	}

	now := s.now()
	for _, task := range course.Tasks {
		response.Tasks = append(response.Tasks, s.makeTaskResponse(task))

		if task.Done {
			continue
		}
		deadline, err := entity.ParseDeadline(task.Deadline)
		if err != nil {
			continue
		}
		daysLeft := datetime.DaysUntil(deadline, now)
		if daysLeft >= 0 && daysLeft <= 7 {
			response.UpcomingCount++
		}
	}

	return response
}
