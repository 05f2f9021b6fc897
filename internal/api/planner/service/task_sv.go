package plannerService

import (
	"StudentPlanner/internal/api/planner"
	"StudentPlanner/internal/entity"
	contextPkg "StudentPlanner/pkg/context"
	"StudentPlanner/pkg/datetime"
	"StudentPlanner/pkg/notifier"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *plannerService) CreateTask(ctx context.Context, req planner.CreateTaskRequest) (planner.TaskResponse, error) {
	sessionID := contextPkg.GetSessionID(ctx)

	if err := s.validator.Struct(req); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Invalid create task request")
		return planner.TaskResponse{}, err
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
		}).Warn("Task description empty after trimming")
		return planner.TaskResponse{}, planner.ErrTaskTextRequired
	}

	if _, err := entity.ParseDeadline(req.Deadline); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"deadline":   req.Deadline,
		}).Warn("Invalid task deadline")
		return planner.TaskResponse{}, err
	}

	courses, err := s.plannerRepository.LoadCourses(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load courses")
		return planner.TaskResponse{}, err
	}

	index, ok := findCourse(courses, req.CourseID)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"course_id":  req.CourseID,
		}).Warn("Course not found for new task")
		return planner.TaskResponse{}, planner.ErrCourseNotFound
	}

	ULID, err := s.utils.NewULIDFromTimestamp(s.now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return planner.TaskResponse{}, err
	}

	task := entity.Task{
		ID:        ULID,
		Text:      text,
		Deadline:  strings.TrimSpace(req.Deadline),
		Priority:  entity.ParsePriority(req.Priority),
		Note:      strings.TrimSpace(req.Note),
		Done:      false,
		CreatedAt: s.now().Format(time.RFC3339),
	}

	if err := task.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Invalid task data")
		return planner.TaskResponse{}, err
	}

	courses[index].Tasks = append(courses[index].Tasks, task)

	if err := s.plannerRepository.SaveCourses(ctx, courses); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to save courses")
		return planner.TaskResponse{}, planner.ErrSaveCourses
	}

	s.notifier.Notify(notifier.LevelSuccess, "Tugas berhasil ditambahkan!")

	return s.makeTaskResponse(task), nil
}

func (s *plannerService) ToggleTask(ctx context.Context, courseID string, taskID string) (planner.TaskResponse, error) {
	sessionID := contextPkg.GetSessionID(ctx)

	courses, err := s.plannerRepository.LoadCourses(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load courses")
		return planner.TaskResponse{}, err
	}

	index, ok := findCourse(courses, courseID)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"course_id":  courseID,
		}).Warn("Course not found for toggle")
		return planner.TaskResponse{}, planner.ErrCourseNotFound
	}

	task, ok := courses[index].TaskByID(taskID)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"course_id":  courseID,
			"task_id":    taskID,
		}).Warn("Task not found for toggle")
		return planner.TaskResponse{}, planner.ErrTaskNotFound
	}

	task.Done = !task.Done

	if err := s.plannerRepository.SaveCourses(ctx, courses); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to save courses")
		return planner.TaskResponse{}, planner.ErrSaveCourses
	}

	if task.Done && courses[index].AllTasksDone() {
		s.notifier.Notify(notifier.LevelSuccess,
			fmt.Sprintf("🎉 Semua tugas %s selesai!", courses[index].Name))
	}

	return s.makeTaskResponse(*task), nil
}

func (s *plannerService) TaskDetail(ctx context.Context, courseID string, taskID string) (planner.TaskDetailResponse, error) {
	sessionID := contextPkg.GetSessionID(ctx)

	courses, err := s.plannerRepository.LoadCourses(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load courses")
		return planner.TaskDetailResponse{}, err
	}

	index, ok := findCourse(courses, courseID)
	if !ok {
		return planner.TaskDetailResponse{}, planner.ErrCourseNotFound
	}

	task, ok := courses[index].TaskByID(taskID)
	if !ok {
		return planner.TaskDetailResponse{}, planner.ErrTaskNotFound
	}

	detail := planner.TaskDetailResponse{
		CourseID:   courses[index].ID,
		CourseName: courses[index].Name,
		Task:       s.makeTaskResponse(*task),
	}

	if deadline, err := entity.ParseDeadline(task.Deadline); err == nil {
		detail.DeadlineAt = datetime.FormatDateTime(deadline)
	}

	return detail, nil
}
