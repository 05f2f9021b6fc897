package plannerService

import (
	"StudentPlanner/internal/api/planner"
	"StudentPlanner/internal/entity"
	contextPkg "StudentPlanner/pkg/context"
	"StudentPlanner/pkg/datetime"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const defaultDeadlineWindowDays = 7

func (s *plannerService) UpcomingTasks(ctx context.Context, withinDays int) ([]planner.DeadlineEntry, error) {
	sessionID := contextPkg.GetSessionID(ctx)

	if withinDays <= 0 {
		withinDays = defaultDeadlineWindowDays
	}

	courses, err := s.plannerRepository.LoadCourses(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load courses")
		return nil, err
	}

	now := s.now()

	type candidate struct {
		entry    planner.DeadlineEntry
		deadline time.Time
	}

	candidates := make([]candidate, 0)
	for _, course := range courses {
		for _, task := range course.Tasks {
			if task.Done {
				continue
			}

			deadline, err := entity.ParseDeadline(task.Deadline)
			if err != nil {
				continue
			}

			daysLeft := datetime.DaysUntil(deadline, now)
			if daysLeft < 0 || daysLeft > withinDays {
				continue
			}

			candidates = append(candidates, candidate{
				entry: planner.DeadlineEntry{
					CourseID:   course.ID,
					CourseName: course.Name,
					Task:       s.makeTaskResponse(task),
				},
				deadline: deadline,
			})
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].deadline.Before(candidates[b].deadline)
	})

	entries := make([]planner.DeadlineEntry, 0, len(candidates))
	for _, c := range candidates {
		entries = append(entries, c.entry)
	}

	return entries, nil
}
