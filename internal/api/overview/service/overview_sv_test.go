package overviewService

import (
	financeRepository "StudentPlanner/internal/api/finance/repository"
	plannerRepository "StudentPlanner/internal/api/planner/repository"
	"StudentPlanner/internal/entity"
	"StudentPlanner/pkg/kv/memkv"
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 4, 12, 0, 0, 0, time.Local)

func newTestService(t *testing.T) (IOverviewService, plannerRepository.Repository, financeRepository.Repository) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := memkv.New()
	plannerRepo := plannerRepository.New(store, logger)
	financeRepo := financeRepository.New(store, logger)

	service := NewOverviewService(logger, plannerRepo, financeRepo,
		func() time.Time { return testNow })

	return service, plannerRepo, financeRepo
}

func seed(t *testing.T, plannerRepo plannerRepository.Repository, financeRepo financeRepository.Repository) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, plannerRepo.SaveCourses(ctx, []entity.Course{
		{
			ID:   "c1",
			Name: "Kalkulus",
			Tasks: []entity.Task{
				{ID: "t1", Text: "Quiz", Deadline: "2026-03-05T08:00", Priority: entity.PriorityMedium, Done: true},
				{ID: "t2", Text: "Laporan", Deadline: "2026-03-09T08:00", Priority: entity.PriorityMedium},
				{ID: "t3", Text: "UAS", Deadline: "2026-04-20T08:00", Priority: entity.PriorityHigh},
			},
		},
		{ID: "c2", Name: "Fisika", Tasks: []entity.Task{}},
	}))

	require.NoError(t, financeRepo.SaveTransactions(ctx, []entity.CashTransaction{
		{ID: "x1", Date: "2026-03-01", Desc: "Uang saku", Amount: 500000, Type: entity.TransactionTypeIncome},
		{ID: "x2", Date: "2026-03-02", Desc: "Makan", Amount: 120000, Type: entity.TransactionTypeExpense},
	}))
}

func TestQuickStats(t *testing.T) {
	service, plannerRepo, financeRepo := newTestService(t)
	seed(t, plannerRepo, financeRepo)

	stats, err := service.QuickStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.CourseCount)
	assert.Equal(t, "1/3", stats.TaskRatio)
	assert.InDelta(t, 380000, stats.Balance, 0.001)
}

func TestStats(t *testing.T) {
	service, plannerRepo, financeRepo := newTestService(t)
	seed(t, plannerRepo, financeRepo)

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalCourses)
	assert.Equal(t, 3, stats.TotalTasks)
	assert.Equal(t, 1, stats.CompletedTasks)

	// Only the undone task inside the next seven days counts.
	assert.Equal(t, 1, stats.UpcomingDeadlines)

	assert.InDelta(t, 380000, stats.Balance, 0.001)
	assert.Equal(t, 2, stats.TransactionCount)
}

func TestStatsEmpty(t *testing.T) {
	service, _, _ := newTestService(t)

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalCourses)
	assert.Zero(t, stats.UpcomingDeadlines)
	assert.Zero(t, stats.Balance)
}
