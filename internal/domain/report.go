package domain

import "time"

// ReportPoint é um bucket rotulado de um gráfico ou tabela do relatório.
type ReportPoint struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// ReportAggregate é o resultado derivado da agregação de vendas.
// Não é persistido pelo agregador; é recalculado por completo a cada chamada.
type ReportAggregate struct {
	DailyTotal   float64 `json:"daily_total"`
	WeeklyTotal  float64 `json:"weekly_total"`
	MonthlyTotal float64 `json:"monthly_total"`

	// DailyTrend tem sempre 7 entradas, da mais antiga para a mais recente.
	DailyTrend []ReportPoint `json:"daily_trend"`

	// WeeklyDistribution tem sempre 7 entradas na ordem fixa Dom..Sáb,
	// somando apenas as vendas dos últimos 7 dias.
	WeeklyDistribution []ReportPoint `json:"weekly_distribution"`

	// MonthlyBreakdown tem sempre 6 entradas, da mais antiga para a mais recente.
	MonthlyBreakdown []ReportPoint `json:"monthly_breakdown"`
}

// ChartSeries é uma série pronta para o widget de gráfico do cliente.
type ChartSeries struct {
	Name   string        `json:"name"`
	Points []ReportPoint `json:"points"`
}

// ReportArtifact é o documento imprimível gerado a partir do agregado.
type ReportArtifact struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"content"`
}

// ReportSnapshotEntry é o agregado pré-calculado pelo cron diário,
// armazenado por data para consulta rápida dos dashboards.
type ReportSnapshotEntry struct {
	ID        int64            `json:"id"`
	Date      time.Time        `json:"date"`
	Aggregate *ReportAggregate `json:"aggregate"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
