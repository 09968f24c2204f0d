package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/Kyosue/vetra/internal/domain"
	"github.com/Kyosue/vetra/pkg/utils"
)

// minVisibleAmount é o valor mínimo exibido no gráfico quando o bucket soma
// exatamente zero, para a série continuar visível. É só um ajuste de
// apresentação; o agregado guarda o zero real.
const minVisibleAmount = 0.01

const reportContentType = "text/html; charset=utf-8"

// BuildChartSeries converte o agregado em séries prontas para o widget de
// gráfico do cliente, aplicando o piso visual nos buckets zerados.
func BuildChartSeries(agg *domain.ReportAggregate) []domain.ChartSeries {
	return []domain.ChartSeries{
		{Name: "daily_trend", Points: withVisualFloor(agg.DailyTrend)},
		{Name: "weekly_distribution", Points: withVisualFloor(agg.WeeklyDistribution)},
		{Name: "monthly_breakdown", Points: withVisualFloor(agg.MonthlyBreakdown)},
	}
}

func withVisualFloor(points []domain.ReportPoint) []domain.ReportPoint {
	result := make([]domain.ReportPoint, len(points))
	for i, point := range points {
		if point.Amount == 0 {
			point.Amount = minVisibleAmount
		}
		result[i] = point
	}
	return result
}

var reportTemplate = template.Must(template.New("sales-report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.StoreName}} - Relatório de Vendas</title>
<style>
body { font-family: sans-serif; margin: 24px; color: #222; }
h1 { font-size: 20px; }
h2 { font-size: 16px; margin-top: 24px; }
table { border-collapse: collapse; min-width: 320px; }
th, td { border: 1px solid #999; padding: 6px 12px; text-align: left; }
td.amount { text-align: right; }
.meta { color: #666; font-size: 12px; }
</style>
</head>
<body>
<h1>{{.StoreName}} - Relatório de Vendas</h1>
<p class="meta">Gerado em {{.GeneratedAt}}</p>

<h2>Resumo</h2>
<table>
<tr><th>Período</th><th>Total</th></tr>
<tr><td>Hoje</td><td class="amount">{{.DailyTotal}}</td></tr>
<tr><td>Últimos 7 dias</td><td class="amount">{{.WeeklyTotal}}</td></tr>
<tr><td>Último mês</td><td class="amount">{{.MonthlyTotal}}</td></tr>
</table>

<h2>Tendência diária (7 dias)</h2>
<table>
<tr><th>Dia</th><th>Total</th></tr>
{{range .DailyTrend}}<tr><td>{{.Label}}</td><td class="amount">{{.Amount}}</td></tr>
{{end}}</table>

<h2>Distribuição semanal</h2>
<table>
<tr><th>Dia da semana</th><th>Total</th></tr>
{{range .WeeklyDistribution}}<tr><td>{{.Label}}</td><td class="amount">{{.Amount}}</td></tr>
{{end}}</table>

<h2>Últimos 6 meses</h2>
<table>
<tr><th>Mês</th><th>Total</th></tr>
{{range .MonthlyBreakdown}}<tr><td>{{.Label}}</td><td class="amount">{{.Amount}}</td></tr>
{{end}}</table>
</body>
</html>
`))

type reportRow struct {
	Label  string
	Amount string
}

type reportTemplateData struct {
	StoreName    string
	GeneratedAt  string
	DailyTotal   string
	WeeklyTotal  string
	MonthlyTotal string

	DailyTrend         []reportRow
	WeeklyDistribution []reportRow
	MonthlyBreakdown   []reportRow
}

// RenderDocument gera o documento tabular imprimível do relatório.
// A formatação monetária (duas casas, separador de milhar, prefixo da moeda)
// acontece somente aqui; o agregado mantém os valores crus.
func RenderDocument(agg *domain.ReportAggregate, storeName string, now time.Time) (*domain.ReportArtifact, error) {
	data := reportTemplateData{
		StoreName:          storeName,
		GeneratedAt:        now.Format("02/01/2006 15:04"),
		DailyTotal:         utils.FormatCurrency(agg.DailyTotal),
		WeeklyTotal:        utils.FormatCurrency(agg.WeeklyTotal),
		MonthlyTotal:       utils.FormatCurrency(agg.MonthlyTotal),
		DailyTrend:         formatRows(agg.DailyTrend),
		WeeklyDistribution: formatRows(agg.WeeklyDistribution),
		MonthlyBreakdown:   formatRows(agg.MonthlyBreakdown),
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("erro ao renderizar relatório: %w", err)
	}

	return &domain.ReportArtifact{
		Filename:    fmt.Sprintf("vetra-sales-report-%s.html", now.Format("01-02-2006-15-04")),
		ContentType: reportContentType,
		Content:     buf.Bytes(),
	}, nil
}

func formatRows(points []domain.ReportPoint) []reportRow {
	rows := make([]reportRow, len(points))
	for i, point := range points {
		rows[i] = reportRow{
			Label:  point.Label,
			Amount: utils.FormatCurrency(point.Amount),
		}
	}
	return rows
}
