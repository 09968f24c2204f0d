package scheduler

import (
	"errors"
	"testing"
	"time"

	repomocks "github.com/Kyosue/vetra/infrastructure/repository/mocks"
	"github.com/Kyosue/vetra/internal/config"
	"github.com/Kyosue/vetra/internal/domain"
	reportingmocks "github.com/Kyosue/vetra/internal/usecases/reporting/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReportSnapshotSyncService_SyncSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockSnapshotRepo := repomocks.NewMockReportSnapshotRepository(ctrl)

	agg := &domain.ReportAggregate{
		DailyTotal:   150,
		WeeklyTotal:  300,
		MonthlyTotal: 1200,
	}

	mockReporter.EXPECT().
		SalesReport(gomock.Any()).
		Return(agg, nil)

	var saved *domain.ReportSnapshotEntry
	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(entry *domain.ReportSnapshotEntry) error {
			saved = entry
			return nil
		})

	mockSnapshotRepo.EXPECT().
		DeleteOlderThan(snapshotRetentionDays).
		Return(int64(0), nil)

	service := &ReportSnapshotSyncService{
		reporter:     mockReporter,
		snapshotRepo: mockSnapshotRepo,
	}

	err := service.SyncSnapshot()

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, agg, saved.Aggregate)

	// A chave do snapshot é sempre a meia-noite do dia corrente
	today := time.Now()
	assert.Equal(t, today.Year(), saved.Date.Year())
	assert.Equal(t, today.Month(), saved.Date.Month())
	assert.Equal(t, today.Day(), saved.Date.Day())
	assert.Equal(t, 0, saved.Date.Hour())

	status := service.Status()
	assert.False(t, status.Running)
	assert.Empty(t, status.LastSyncError)
	assert.False(t, status.LastSyncCompletedAt.IsZero())
}

func TestReportSnapshotSyncService_SyncSnapshot_ErroNaAgregacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockSnapshotRepo := repomocks.NewMockReportSnapshotRepository(ctrl)

	mockReporter.EXPECT().
		SalesReport(gomock.Any()).
		Return(nil, errors.New("banco indisponível"))

	service := &ReportSnapshotSyncService{
		reporter:     mockReporter,
		snapshotRepo: mockSnapshotRepo,
	}

	err := service.SyncSnapshot()

	require.Error(t, err)

	status := service.Status()
	assert.False(t, status.Running)
	assert.Contains(t, status.LastSyncError, "banco indisponível")
}

func TestReportSnapshotSyncService_SyncSnapshot_ErroAoSalvar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockSnapshotRepo := repomocks.NewMockReportSnapshotRepository(ctrl)

	mockReporter.EXPECT().
		SalesReport(gomock.Any()).
		Return(&domain.ReportAggregate{}, nil)

	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(errors.New("violação de constraint"))

	service := &ReportSnapshotSyncService{
		reporter:     mockReporter,
		snapshotRepo: mockSnapshotRepo,
	}

	err := service.SyncSnapshot()

	require.Error(t, err)
	assert.Contains(t, service.Status().LastSyncError, "violação de constraint")
}

func TestReportSnapshotSyncService_SyncSnapshot_LimpezaFalhaNaoInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := reportingmocks.NewMockReporter(ctrl)
	mockSnapshotRepo := repomocks.NewMockReportSnapshotRepository(ctrl)

	mockReporter.EXPECT().
		SalesReport(gomock.Any()).
		Return(&domain.ReportAggregate{}, nil)

	mockSnapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil)

	// A limpeza de retenção falha, mas o snapshot já foi gravado
	mockSnapshotRepo.EXPECT().
		DeleteOlderThan(snapshotRetentionDays).
		Return(int64(0), errors.New("timeout"))

	service := &ReportSnapshotSyncService{
		reporter:     mockReporter,
		snapshotRepo: mockSnapshotRepo,
	}

	err := service.SyncSnapshot()

	require.NoError(t, err)
	assert.Empty(t, service.Status().LastSyncError)
}

func TestReportSnapshotSyncService_ExecucaoConcorrenteRejeitada(t *testing.T) {
	service := &ReportSnapshotSyncService{}
	service.syncRunning = true

	err := service.SyncSnapshot()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "já está em execução")
}

func TestReportSnapshotSyncService_Status(t *testing.T) {
	cfg := &config.Config{}
	cfg.ReportSnapshotSync.Enabled = true
	cfg.ReportSnapshotSync.CronSchedule = "0 3 * * *"

	service := NewReportSnapshotSyncService(nil, nil, cfg)

	status := service.Status()

	assert.True(t, status.Enabled)
	assert.Equal(t, "0 3 * * *", status.CronSchedule)
	assert.False(t, status.Running)
	assert.True(t, status.LastSyncStartedAt.IsZero())
}
