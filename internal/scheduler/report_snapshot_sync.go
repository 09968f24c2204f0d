// Package scheduler contém os serviços de agendamento de tarefas em background
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Kyosue/vetra/infrastructure/repository"
	"github.com/Kyosue/vetra/internal/config"
	"github.com/Kyosue/vetra/internal/domain"
	"github.com/Kyosue/vetra/internal/usecases/reporting"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// snapshotRetentionDays define por quanto tempo os snapshots diários ficam guardados
const snapshotRetentionDays = 365

// ReportSnapshotSyncService recalcula o agregado de vendas uma vez por dia e
// grava o resultado na tabela de snapshots, para os dashboards consultarem
// o histórico sem reprocessar a lista inteira de vendas.
type ReportSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	reporter            reporting.Reporter
	snapshotRepo        repository.ReportSnapshotRepository
	config              config.ReportSnapshotSync
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewReportSnapshotSyncService(
	reporter reporting.Reporter,
	snapshotRepo repository.ReportSnapshotRepository,
	cfg *config.Config,
) *ReportSnapshotSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.ReportSnapshotSync.CronSchedule,
		"enabled":       cfg.ReportSnapshotSync.Enabled,
	}).Info("Configuração do agendador de snapshot de relatório carregada")

	return &ReportSnapshotSyncService{
		scheduler:    scheduler,
		reporter:     reporter,
		snapshotRepo: snapshotRepo,
		config:       cfg.ReportSnapshotSync,
	}
}

func (s *ReportSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de snapshot de relatório desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot de relatório")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncSnapshot(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização do snapshot de relatório")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshot: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *ReportSnapshotSyncService) Stop() {
	s.scheduler.Stop()
	logrus.Info("Agendador de snapshot de relatório parado")
}

// SyncSnapshot recalcula o agregado do dia e grava na tabela de snapshots.
// Execuções concorrentes (cron + disparo manual) são rejeitadas.
func (s *ReportSnapshotSyncService) SyncSnapshot() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return fmt.Errorf("sincronização de snapshot já está em execução")
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	now := time.Now()

	agg, err := s.reporter.SalesReport(now)
	if err != nil {
		s.setLastError(err)
		return fmt.Errorf("erro ao agregar vendas para o snapshot: %w", err)
	}

	entry := &domain.ReportSnapshotEntry{
		Date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Aggregate: agg,
	}

	if err := s.snapshotRepo.SaveOrUpdate(entry); err != nil {
		s.setLastError(err)
		return fmt.Errorf("erro ao salvar snapshot: %w", err)
	}

	removed, err := s.snapshotRepo.DeleteOlderThan(snapshotRetentionDays)
	if err != nil {
		// Falha na limpeza não invalida o snapshot recém-gravado
		logrus.WithError(err).Warn("Erro ao remover snapshots antigos")
	} else if removed > 0 {
		logrus.WithField("removed", removed).Info("Snapshots antigos removidos")
	}

	s.setLastError(nil)

	logrus.WithFields(logrus.Fields{
		"date":          entry.Date.Format(time.DateOnly),
		"daily_total":   agg.DailyTotal,
		"weekly_total":  agg.WeeklyTotal,
		"monthly_total": agg.MonthlyTotal,
	}).Info("Snapshot de relatório sincronizado com sucesso")

	return nil
}

func (s *ReportSnapshotSyncService) setLastError(err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if err != nil {
		s.lastSyncError = err.Error()
	} else {
		s.lastSyncError = ""
	}
}

// SyncStatus é o estado do agendador exposto pela rota de status
type SyncStatus struct {
	Enabled             bool      `json:"enabled"`
	CronSchedule        string    `json:"cron_schedule"`
	Running             bool      `json:"running"`
	LastSyncStartedAt   time.Time `json:"last_sync_started_at"`
	LastSyncCompletedAt time.Time `json:"last_sync_completed_at"`
	LastSyncError       string    `json:"last_sync_error,omitempty"`
}

func (s *ReportSnapshotSyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return SyncStatus{
		Enabled:             s.config.Enabled,
		CronSchedule:        s.config.CronSchedule,
		Running:             s.syncRunning,
		LastSyncStartedAt:   s.lastSyncStartedAt,
		LastSyncCompletedAt: s.lastSyncCompletedAt,
		LastSyncError:       s.lastSyncError,
	}
}
