package settingsService

import (
	financeRepository "StudentPlanner/internal/api/finance/repository"
	plannerRepository "StudentPlanner/internal/api/planner/repository"
	settingsRepository "StudentPlanner/internal/api/settings/repository"
	"StudentPlanner/internal/entity"
	"StudentPlanner/pkg/kv/memkv"
	"StudentPlanner/pkg/notifier"
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(_ notifier.Level, message string) {
	n.messages = append(n.messages, message)
}

type fixture struct {
	service     ISettingsService
	plannerRepo plannerRepository.Repository
	financeRepo financeRepository.Repository
	recorder    *recordingNotifier
}

func newTestFixture(t *testing.T) fixture {
	return newTestFixtureWithClock(t, func() time.Time { return testNow })
}

func newTestFixtureWithClock(t *testing.T, now func() time.Time) fixture {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := memkv.New()
	recorder := &recordingNotifier{}

	plannerRepo := plannerRepository.New(store, logger)
	financeRepo := financeRepository.New(store, logger)
	settingsRepo := settingsRepository.New(store, logger)

	service := NewSettingsService(logger, settingsRepo, plannerRepo, financeRepo, recorder, now)

	return fixture{
		service:     service,
		plannerRepo: plannerRepo,
		financeRepo: financeRepo,
		recorder:    recorder,
	}
}

func TestExportSnapshot(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	require.NoError(t, f.plannerRepo.SaveCourses(ctx, []entity.Course{
		{ID: "c1", Name: "Kalkulus", Tasks: []entity.Task{}},
	}))
	require.NoError(t, f.financeRepo.SaveTransactions(ctx, []entity.CashTransaction{
		{ID: "t1", Date: "2026-03-01", Desc: "Uang saku", Amount: 500000, Type: entity.TransactionTypeIncome},
	}))

	export, err := f.service.ExportSnapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, "student-planner-backup-2026-03-04.json", export.Filename)
	assert.Contains(t, f.recorder.messages, "Data berhasil di-export!")

	var document exportDocument
	require.NoError(t, json.Unmarshal(export.Data, &document))

	assert.Len(t, document.Courses, 1)
	assert.Len(t, document.CashData, 1)
	assert.Equal(t, "1.0", document.Version)
	assert.Equal(t, "2026-03-04T12:00:00Z", document.ExportedAt)
}

func TestExportSnapshotUsesUTCDate(t *testing.T) {
	// Shortly after midnight in Jakarta it is still the previous day in UTC;
	// the filename must agree with the document's own timestamp.
	jakarta := time.FixedZone("WIB", 7*60*60)
	f := newTestFixtureWithClock(t, func() time.Time {
		return time.Date(2026, time.March, 5, 1, 0, 0, 0, jakarta)
	})

	export, err := f.service.ExportSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "student-planner-backup-2026-03-04.json", export.Filename)

	var document exportDocument
	require.NoError(t, json.Unmarshal(export.Data, &document))
	assert.Equal(t, "2026-03-04T18:00:00Z", document.ExportedAt)
}

func TestClearAll(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	require.NoError(t, f.plannerRepo.SaveCourses(ctx, []entity.Course{{ID: "c1", Name: "Kalkulus"}}))
	require.NoError(t, f.financeRepo.SaveTransactions(ctx, []entity.CashTransaction{
		{ID: "t1", Date: "2026-03-01", Desc: "Uang saku", Amount: 500000, Type: entity.TransactionTypeIncome},
	}))

	require.NoError(t, f.service.ClearAll(ctx))
	assert.Contains(t, f.recorder.messages, "Semua data telah dihapus")

	courses, err := f.plannerRepo.LoadCourses(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)

	transactions, err := f.financeRepo.LoadTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestDarkMode(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	assert.False(t, f.service.DarkMode(ctx))

	require.NoError(t, f.service.SetDarkMode(ctx, true))
	assert.True(t, f.service.DarkMode(ctx))

	require.NoError(t, f.service.SetDarkMode(ctx, false))
	assert.False(t, f.service.DarkMode(ctx))
}

func TestWelcomeGreetsOnlyOnce(t *testing.T) {
	f := newTestFixture(t)
	ctx := context.Background()

	require.NoError(t, f.service.Welcome(ctx))
	assert.Contains(t, f.recorder.messages, "Selamat datang di Student Planner Pro! 🎓")

	before := len(f.recorder.messages)
	require.NoError(t, f.service.Welcome(ctx))
	assert.Len(t, f.recorder.messages, before)
}
