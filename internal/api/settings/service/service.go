package settingsService

import (
	financeRepository "StudentPlanner/internal/api/finance/repository"
	plannerRepository "StudentPlanner/internal/api/planner/repository"
	"StudentPlanner/internal/api/settings"
	settingsRepository "StudentPlanner/internal/api/settings/repository"
	"StudentPlanner/pkg/notifier"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ISettingsService interface {
	ExportSnapshot(ctx context.Context) (settings.ExportResponse, error)
	ClearAll(ctx context.Context) error
	DarkMode(ctx context.Context) bool
	SetDarkMode(ctx context.Context, enabled bool) error
	Welcome(ctx context.Context) error
}

type settingsService struct {
	log                *logrus.Logger
	settingsRepository settingsRepository.Repository
	plannerRepository  plannerRepository.Repository
	financeRepository  financeRepository.Repository
	notifier           notifier.INotifier
	now                func() time.Time
}

func NewSettingsService(
	log *logrus.Logger,
	sr settingsRepository.Repository,
	pr plannerRepository.Repository,
	fr financeRepository.Repository,
	n notifier.INotifier,
	now func() time.Time,
) ISettingsService {
	if now == nil {
		now = time.Now
	}

	return &settingsService{
		log:                log,
		settingsRepository: sr,
		plannerRepository:  pr,
		financeRepository:  fr,
		notifier:           n,
		now:                now,
	}
}
