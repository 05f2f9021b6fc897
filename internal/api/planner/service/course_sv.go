package plannerService

import (
	"StudentPlanner/internal/api/planner"
	"StudentPlanner/internal/entity"
	contextPkg "StudentPlanner/pkg/context"
	"StudentPlanner/pkg/notifier"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *plannerService) CreateCourse(ctx context.Context, req planner.CreateCourseRequest) (planner.CourseResponse, error) {
	sessionID := contextPkg.GetSessionID(ctx)

	if err := s.validator.Struct(req); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Invalid create course request")
		return planner.CourseResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
		}).Warn("Course name empty after trimming")
		return planner.CourseResponse{}, planner.ErrCourseNameRequired
	}

	day, err := entity.ParseWeekday(req.Day)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"day":        req.Day,
		}).Warn("Invalid course day")
		return planner.CourseResponse{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(s.now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return planner.CourseResponse{}, err
	}

	course := entity.Course{
		ID:        ULID,
		Name:      name,
		Day:       day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Room:      strings.TrimSpace(req.Room),
		Note:      strings.TrimSpace(req.Note),
		Tasks:     []entity.Task{},
	}

	if err := course.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Invalid course data")
		return planner.CourseResponse{}, err
	}

	courses, err := s.plannerRepository.LoadCourses(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load courses")
		return planner.CourseResponse{}, err
	}

	courses = append(courses, course)

	if err := s.plannerRepository.SaveCourses(ctx, courses); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to save courses")
		return planner.CourseResponse{}, planner.ErrSaveCourses
	}

	s.notifier.Notify(notifier.LevelSuccess, "Mata kuliah berhasil ditambahkan!")

	return s.makeCourseResponse(course), nil
}

func (s *plannerService) DeleteCourse(ctx context.Context, courseID string) error {
	sessionID := contextPkg.GetSessionID(ctx)

	courses, err := s.plannerRepository.LoadCourses(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load courses")
		return err
	}

	index, ok := findCourse(courses, courseID)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"course_id":  courseID,
		}).Warn("Course not found for deletion")
		return planner.ErrCourseNotFound
	}

	// Tasks are owned by the course, so the cascade is the removal itself.
	courses = append(courses[:index], courses[index+1:]...)

	if err := s.plannerRepository.SaveCourses(ctx, courses); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to save courses")
		return planner.ErrSaveCourses
	}

	s.notifier.Notify(notifier.LevelSuccess, "Mata kuliah berhasil dihapus")

	return nil
}

func (s *plannerService) GetCourses(ctx context.Context) ([]planner.CourseResponse, error) {
	sessionID := contextPkg.GetSessionID(ctx)

	courses, err := s.plannerRepository.LoadCourses(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load courses")
		return nil, err
	}

	result := make([]planner.CourseResponse, 0, len(courses))
	for _, course := range courses {
		result = append(result, s.makeCourseResponse(course))
	}

	return result, nil
}

func (s *plannerService) CourseProgress(ctx context.Context, courseID string) (planner.ProgressResponse, error) {
	sessionID := contextPkg.GetSessionID(ctx)

	courses, err := s.plannerRepository.LoadCourses(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load courses")
		return planner.ProgressResponse{}, err
	}

	index, ok := findCourse(courses, courseID)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"course_id":  courseID,
		}).Warn("Course not found")
		return planner.ProgressResponse{}, planner.ErrCourseNotFound
	}

	completed, total, percent := courses[index].Progress()

	return planner.ProgressResponse{
		Completed: completed,
		Total:     total,
		Percent:   percent,
	}, nil
}
