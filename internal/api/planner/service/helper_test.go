package plannerService

import (
	"StudentPlanner/internal/api/planner"
	plannerRepository "StudentPlanner/internal/api/planner/repository"
	"StudentPlanner/pkg/kv/memkv"
	"StudentPlanner/pkg/notifier"
	"StudentPlanner/pkg/utils"
	"context"
	"io"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// noon on a Wednesday; all deadline math in these tests is relative to it.
var testNow = time.Date(2026, time.March, 4, 12, 0, 0, 0, time.Local)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(_ notifier.Level, message string) {
	n.messages = append(n.messages, message)
}

func newTestService(t *testing.T) (IPlannerService, *recordingNotifier) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	recorder := &recordingNotifier{}
	repo := plannerRepository.New(memkv.New(), logger)

	service := NewPlannerService(logger, validator.New(), repo, recorder, utils.New(),
		func() time.Time { return testNow })

	return service, recorder
}

func mustCreateCourse(t *testing.T, service IPlannerService, req planner.CreateCourseRequest) planner.CourseResponse {
	t.Helper()

	course, err := service.CreateCourse(context.Background(), req)
	require.NoError(t, err)
	return course
}

func mustCreateTask(t *testing.T, service IPlannerService, req planner.CreateTaskRequest) planner.TaskResponse {
	t.Helper()

	task, err := service.CreateTask(context.Background(), req)
	require.NoError(t, err)
	return task
}
