package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Kyosue/vetra/internal/usecases/reporting"
	"github.com/Kyosue/vetra/pkg/apiErrors"
	"github.com/Kyosue/vetra/pkg/utils"
	"github.com/sirupsen/logrus"
)

// reportReferenceTime resolve o instante de referência do relatório.
// O parâmetro opcional ?date=YYYY-MM-DD permite gerar o relatório de uma data
// passada; sem ele, vale o relógio do servidor. Este é o único ponto onde o
// "agora" implícito entra: o agregador em si sempre recebe o instante explícito.
func reportReferenceTime(r *http.Request) (time.Time, error) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return time.Now(), nil
	}

	return utils.ParseDate(dateStr)
}

// GetSalesReport retorna o agregado de vendas (totais e buckets)
func GetSalesReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now, err := reportReferenceTime(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		report, err := service.SalesReport(now)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar relatório de vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.Error(err)
		}
	}
}

// GetSalesReportSeries retorna as séries prontas para os gráficos do dashboard
func GetSalesReportSeries(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now, err := reportReferenceTime(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		series, err := service.SalesReportSeries(now)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar séries do relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(series); err != nil {
			logrus.Error(err)
		}
	}
}

// GetSalesReportSnapshot retorna o agregado pré-calculado pelo cron diário.
// O parâmetro opcional ?date=YYYY-MM-DD escolhe o dia; sem ele, vale hoje.
func GetSalesReportSnapshot(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := reportReferenceTime(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		entry, err := service.SalesReportSnapshot(date)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar snapshot do relatório", nil)
			return
		}

		if entry == nil {
			apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound, "Nenhum snapshot para a data informada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logrus.Error(err)
		}
	}
}

// ExportSalesReport gera o documento imprimível do relatório e o envia
// como download com o nome de arquivo datado
func ExportSalesReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now, err := reportReferenceTime(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		artifact, err := service.ExportSalesReport(now)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao exportar relatório de vendas", nil)
			return
		}

		w.Header().Set("Content-Type", artifact.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
		if _, err := w.Write(artifact.Content); err != nil {
			logrus.Error(err)
		}
	}
}
