package overviewService

import (
	financeRepository "StudentPlanner/internal/api/finance/repository"
	"StudentPlanner/internal/api/overview"
	plannerRepository "StudentPlanner/internal/api/planner/repository"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IOverviewService interface {
	QuickStats(ctx context.Context) (overview.QuickStatsResponse, error)
	Stats(ctx context.Context) (overview.StatsResponse, error)
}

type overviewService struct {
	log               *logrus.Logger
	plannerRepository plannerRepository.Repository
	financeRepository financeRepository.Repository
	now               func() time.Time
}

func NewOverviewService(
	log *logrus.Logger,
	pr plannerRepository.Repository,
	fr financeRepository.Repository,
	now func() time.Time,
) IOverviewService {
	if now == nil {
		now = time.Now
	}

	return &overviewService{
		log:               log,
		plannerRepository: pr,
		financeRepository: fr,
		now:               now,
	}
}
