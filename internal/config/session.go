package config

import (
	financeRepository "StudentPlanner/internal/api/finance/repository"
	financeService "StudentPlanner/internal/api/finance/service"
	overviewService "StudentPlanner/internal/api/overview/service"
	plannerRepository "StudentPlanner/internal/api/planner/repository"
	plannerService "StudentPlanner/internal/api/planner/service"
	settingsRepository "StudentPlanner/internal/api/settings/repository"
	settingsService "StudentPlanner/internal/api/settings/service"
	"StudentPlanner/pkg/kv"
	"StudentPlanner/pkg/notifier"
	"StudentPlanner/pkg/utils"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type SessionOption func(*Session) error

// Session owns the single in-process planner state: one store, one set of
// services, no ambient globals.
type Session struct {
	log       *logrus.Logger
	validator *validator.Validate
	store     kv.Store
	notifier  notifier.INotifier
	utils     utils.IUtils
	now       func() time.Time

	planner  plannerService.IPlannerService
	finance  financeService.IFinanceService
	overview overviewService.IOverviewService
	settings settingsService.ISettingsService
}

func NewSession(options ...SessionOption) (*Session, error) {
	session := &Session{}

	for _, option := range options {
		if err := option(session); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if session.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if session.store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if session.validator == nil {
		session.validator = NewValidator()
	}
	if session.notifier == nil {
		session.notifier = notifier.New(session.log)
	}
	if session.utils == nil {
		session.utils = utils.New()
	}
	if session.now == nil {
		session.now = time.Now
	}

	return session, nil
}

func WithLogger(logger *logrus.Logger) SessionOption {
	return func(s *Session) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validate *validator.Validate) SessionOption {
	return func(s *Session) error {
		s.validator = validate
		return nil
	}
}

func WithStore(store kv.Store) SessionOption {
	return func(s *Session) error {
		s.store = store
		return nil
	}
}

func WithNotifier(n notifier.INotifier) SessionOption {
	return func(s *Session) error {
		s.notifier = n
		return nil
	}
}

func WithUtils(u utils.IUtils) SessionOption {
	return func(s *Session) error {
		s.utils = u
		return nil
	}
}

func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) error {
		s.now = now
		return nil
	}
}

func (s *Session) RegisterDomains() {
	// Planner Domain
	plannerRepo := plannerRepository.New(s.store, s.log)
	s.planner = plannerService.NewPlannerService(s.log, s.validator, plannerRepo, s.notifier, s.utils, s.now)

	// Finance Domain
	financeRepo := financeRepository.New(s.store, s.log)
	s.finance = financeService.NewFinanceService(s.log, s.validator, financeRepo, s.notifier, s.utils, s.now)

	// Overview
	s.overview = overviewService.NewOverviewService(s.log, plannerRepo, financeRepo, s.now)

	// Settings Domain
	settingsRepo := settingsRepository.New(s.store, s.log)
	s.settings = settingsService.NewSettingsService(s.log, settingsRepo, plannerRepo, financeRepo, s.notifier, s.now)
}

func (s *Session) Planner() plannerService.IPlannerService {
	return s.planner
}

func (s *Session) Finance() financeService.IFinanceService {
	return s.finance
}

func (s *Session) Overview() overviewService.IOverviewService {
	return s.overview
}

func (s *Session) Settings() settingsService.ISettingsService {
	return s.settings
}
