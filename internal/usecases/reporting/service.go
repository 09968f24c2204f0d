package reporting

import (
	"fmt"
	"time"

	"github.com/Kyosue/vetra/infrastructure/repository"
	"github.com/Kyosue/vetra/internal/config"
	"github.com/Kyosue/vetra/internal/domain"
)

// Reporter expõe o relatório de vendas nas três formas consumidas pelo
// cliente: agregado cru, séries de gráfico e documento imprimível.
// O instante de referência é sempre recebido como parâmetro; o default de
// "agora" fica no handler HTTP.
type Reporter interface {
	SalesReport(now time.Time) (*domain.ReportAggregate, error)
	SalesReportSeries(now time.Time) ([]domain.ChartSeries, error)
	ExportSalesReport(now time.Time) (*domain.ReportArtifact, error)
	SalesReportSnapshot(date time.Time) (*domain.ReportSnapshotEntry, error)
}

type Service struct {
	saleRepo     repository.SaleRepository
	snapshotRepo repository.ReportSnapshotRepository
	cfg          *config.Config
}

func NewService(saleRepo repository.SaleRepository, snapshotRepo repository.ReportSnapshotRepository, cfg *config.Config) Reporter {
	return &Service{
		saleRepo:     saleRepo,
		snapshotRepo: snapshotRepo,
		cfg:          cfg,
	}
}

// SalesReport busca o histórico completo de vendas e agrega
func (s *Service) SalesReport(now time.Time) (*domain.ReportAggregate, error) {
	sales, err := s.saleRepo.ListSales()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas: %w", err)
	}

	return BuildAggregate(sales, now), nil
}

func (s *Service) SalesReportSeries(now time.Time) ([]domain.ChartSeries, error) {
	agg, err := s.SalesReport(now)
	if err != nil {
		return nil, err
	}

	return BuildChartSeries(agg), nil
}

func (s *Service) ExportSalesReport(now time.Time) (*domain.ReportArtifact, error) {
	agg, err := s.SalesReport(now)
	if err != nil {
		return nil, err
	}

	return RenderDocument(agg, s.cfg.Store.Name, now)
}

// SalesReportSnapshot devolve o agregado pré-calculado pelo cron para a data
// pedida, sem recalcular. Retorna nil quando não há snapshot para a data.
func (s *Service) SalesReportSnapshot(date time.Time) (*domain.ReportSnapshotEntry, error) {
	entry, err := s.snapshotRepo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshot: %w", err)
	}

	return entry, nil
}
