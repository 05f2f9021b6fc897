package overviewService

import (
	"StudentPlanner/internal/api/overview"
	"StudentPlanner/internal/entity"
	contextPkg "StudentPlanner/pkg/context"
	"StudentPlanner/pkg/datetime"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *overviewService) QuickStats(ctx context.Context) (overview.QuickStatsResponse, error) {
	sessionID := contextPkg.GetSessionID(ctx)

	courses, err := s.plannerRepository.LoadCourses(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load courses")
		return overview.QuickStatsResponse{}, err
	}

	transactions, err := s.financeRepository.LoadTransactions(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load transactions")
		return overview.QuickStatsResponse{}, err
	}

	completed, total := taskCounts(courses)

	return overview.QuickStatsResponse{
		CourseCount: len(courses),
		TaskRatio:   fmt.Sprintf("%d/%d", completed, total),
		Balance:     balance(transactions),
	}, nil
}

func (s *overviewService) Stats(ctx context.Context) (overview.StatsResponse, error) {
	sessionID := contextPkg.GetSessionID(ctx)

	courses, err := s.plannerRepository.LoadCourses(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load courses")
		return overview.StatsResponse{}, err
	}

	transactions, err := s.financeRepository.LoadTransactions(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load transactions")
		return overview.StatsResponse{}, err
	}

	completed, total := taskCounts(courses)
	now := s.now()

	upcoming := 0
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
			if daysLeft >= 0 && daysLeft <= 7 {
				upcoming++
			}
		}
	}

	return overview.StatsResponse{
		TotalCourses:      len(courses),
		TotalTasks:        total,
		CompletedTasks:    completed,
		UpcomingDeadlines: upcoming,
		Balance:           balance(transactions),
		TransactionCount:  len(transactions),
	}, nil
}

func taskCounts(courses []entity.Course) (completed int, total int) {
	for _, course := range courses {
		done, count, _ := course.Progress()
		completed += done
		total += count
	}

	return completed, total
}

func balance(transactions []entity.CashTransaction) float64 {
	var totalIn, totalOut float64
	for _, transaction := range transactions {
		switch transaction.Type {
		case entity.TransactionTypeIncome:
			totalIn += transaction.Amount
		case entity.TransactionTypeExpense:
			totalOut += transaction.Amount
		}
	}

	return totalIn - totalOut
}
