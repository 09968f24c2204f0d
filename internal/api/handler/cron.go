package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Kyosue/vetra/internal/scheduler"
	"github.com/Kyosue/vetra/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// CronJobServices agrupa os agendadores expostos pelas rotas de cron
type CronJobServices struct {
	ReportSnapshotSyncService *scheduler.ReportSnapshotSyncService
}

// RunCronJob dispara manualmente a execução de um agendador
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch jobType {
		case "report-snapshot":
			// Executa em background; o resultado aparece na rota de status
			go func() {
				if err := services.ReportSnapshotSyncService.SyncSnapshot(); err != nil {
					logrus.WithError(err).Error("Erro na execução manual do snapshot de relatório")
				}
			}()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron desconhecido: "+jobType, nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "started",
			"job":    jobType,
		})
	}
}

// GetCronStatus retorna o estado dos agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]scheduler.SyncStatus{
			"report-snapshot": services.ReportSnapshotSyncService.Status(),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error(err)
		}
	}
}
