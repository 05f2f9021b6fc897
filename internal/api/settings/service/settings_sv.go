package settingsService

import (
	"StudentPlanner/internal/api/settings"
	"StudentPlanner/internal/entity"
	contextPkg "StudentPlanner/pkg/context"
	"StudentPlanner/pkg/notifier"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const exportVersion = "1.0"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// exportDocument mirrors the original backup layout; the field names are a
// wire contract.
type exportDocument struct {
	Courses    []entity.Course          `json:"courses"`
	CashData   []entity.CashTransaction `json:"cashData"`
	ExportedAt string                   `json:"exportedAt"`
	Version    string                   `json:"version"`
}

func (s *settingsService) ExportSnapshot(ctx context.Context) (settings.ExportResponse, error) {
	sessionID := contextPkg.GetSessionID(ctx)

	courses, err := s.plannerRepository.LoadCourses(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load courses for export")
		return settings.ExportResponse{}, settings.ErrExportSnapshot
	}

	transactions, err := s.financeRepository.LoadTransactions(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to load transactions for export")
		return settings.ExportResponse{}, settings.ErrExportSnapshot
	}

	// Filename and timestamp must name the same day, so both come from UTC.
	now := s.now().UTC()
	document := exportDocument{
		Courses:    courses,
		CashData:   transactions,
		ExportedAt: now.Format(time.RFC3339),
		Version:    exportVersion,
	}

	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to serialize export document")
		return settings.ExportResponse{}, settings.ErrExportSnapshot
	}

	s.notifier.Notify(notifier.LevelSuccess, "Data berhasil di-export!")

	return settings.ExportResponse{
		Filename: fmt.Sprintf("student-planner-backup-%s.json", now.Format("2006-01-02")),
		Data:     data,
	}, nil
}

func (s *settingsService) ClearAll(ctx context.Context) error {
	sessionID := contextPkg.GetSessionID(ctx)

	// Confirmation happens at the presentation boundary; by the time this
	// runs the wipe is final.
	if err := s.plannerRepository.SaveCourses(ctx, []entity.Course{}); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to clear courses")
		return err
	}

	if err := s.financeRepository.SaveTransactions(ctx, []entity.CashTransaction{}); err != nil {
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to clear transactions")
		return err
	}

	s.notifier.Notify(notifier.LevelWarning, "Semua data telah dihapus")

	return nil
}

func (s *settingsService) DarkMode(ctx context.Context) bool {
	return s.settingsRepository.DarkMode(ctx)
}

func (s *settingsService) SetDarkMode(ctx context.Context, enabled bool) error {
	if err := s.settingsRepository.SetDarkMode(ctx, enabled); err != nil {
		return settings.ErrSavePreferences
	}

	return nil
}

// Welcome greets on the very first session and is silent afterwards.
func (s *settingsService) Welcome(ctx context.Context) error {
	if s.settingsRepository.HasVisited(ctx) {
		return nil
	}

	s.notifier.Notify(notifier.LevelSuccess, "Selamat datang di Student Planner Pro! 🎓")

	if err := s.settingsRepository.SetHasVisited(ctx); err != nil {
		return settings.ErrSavePreferences
	}

	return nil
}
