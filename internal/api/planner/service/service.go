package plannerService

import (
	"StudentPlanner/internal/api/planner"
	plannerRepository "StudentPlanner/internal/api/planner/repository"
	"StudentPlanner/pkg/notifier"
	"StudentPlanner/pkg/utils"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IPlannerService interface {
	CreateCourse(ctx context.Context, req planner.CreateCourseRequest) (planner.CourseResponse, error)
	DeleteCourse(ctx context.Context, courseID string) error
	GetCourses(ctx context.Context) ([]planner.CourseResponse, error)
	CourseProgress(ctx context.Context, courseID string) (planner.ProgressResponse, error)
	CreateTask(ctx context.Context, req planner.CreateTaskRequest) (planner.TaskResponse, error)
	ToggleTask(ctx context.Context, courseID string, taskID string) (planner.TaskResponse, error)
	TaskDetail(ctx context.Context, courseID string, taskID string) (planner.TaskDetailResponse, error)
	// UpcomingTasks lists undone tasks due within the next withinDays days;
	// zero or negative falls back to the seven-day default window.
	UpcomingTasks(ctx context.Context, withinDays int) ([]planner.DeadlineEntry, error)
	WeeklySchedule(ctx context.Context, weekOffset int) (planner.WeeklyScheduleResponse, error)
}

type plannerService struct {
	log               *logrus.Logger
	validator         *validator.Validate
	plannerRepository plannerRepository.Repository
	notifier          notifier.INotifier
	utils             utils.IUtils
	now               func() time.Time
}

func NewPlannerService(
	log *logrus.Logger,
	validate *validator.Validate,
	pr plannerRepository.Repository,
	n notifier.INotifier,
	u utils.IUtils,
	now func() time.Time,
) IPlannerService {
	if now == nil {
		now = time.Now
	}

	return &plannerService{
		log:               log,
		validator:         validate,
		plannerRepository: pr,
		notifier:          n,
		utils:             u,
		now:               now,
	}
}
