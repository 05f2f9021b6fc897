package plannerService

import (
	"StudentPlanner/internal/api/planner"
	"StudentPlanner/internal/entity"
	contextPkg "StudentPlanner/pkg/context"
	"StudentPlanner/pkg/datetime"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *plannerService) WeeklySchedule(ctx context.Context, weekOffset int) (planner.WeeklyScheduleResponse, error) {
	sessionID := contextPkg.GetSessionID(ctx)

	courses, err := s.plannerRepository.LoadCourses(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load courses")
		return planner.WeeklyScheduleResponse{}, err
	}

	now := s.now()
	weekStart := datetime.WeekStart(now, weekOffset)
	weekEnd := weekStart.AddDate(0, 0, 6)

	response := planner.WeeklyScheduleResponse{
		WeekOffset: weekOffset,
		WeekStart:  weekStart.Format("2006-01-02"),
		WeekEnd:    weekEnd.Format("2006-01-02"),
		Label:      "Minggu Ini",
		Days:       make([]planner.ScheduleDayResponse, 0, 7),
	}

	if weekOffset != 0 {
		response.Label = fmt.Sprintf("%s - %s",
			datetime.FormatDateShort(weekStart), datetime.FormatDateShort(weekEnd))
	}

	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i)
		day := entity.Weekday(datetime.DayOfWeek(date))

		bucket := planner.ScheduleDayResponse{
			Day:     string(day),
			DayName: day.DisplayName(),
			Date:    date.Format("2006-01-02"),
			IsToday: datetime.SameDate(date, now),
			Courses: []planner.ScheduleCourseResponse{},
		}

		scheduled := make([]entity.Course, 0)
		for _, course := range courses {
			if course.Day == day {
				scheduled = append(scheduled, course)
			}
		}

		// Lexicographic HH:MM comparison is chronological; courses without a
		// start time keep their insertion position.
		sort.SliceStable(scheduled, func(a, b int) bool {
			if scheduled[a].StartTime == "" || scheduled[b].StartTime == "" {
				return false
			}
			return scheduled[a].StartTime < scheduled[b].StartTime
		})

		for _, course := range scheduled {
			bucket.Courses = append(bucket.Courses, planner.ScheduleCourseResponse{
				ID:        course.ID,
				Name:      course.Name,
				StartTime: datetime.FormatTime(course.StartTime),
				EndTime:   datetime.FormatTime(course.EndTime),
				Room:      course.Room,
			})
		}

		response.Days = append(response.Days, bucket)
	}

	return response, nil
}
