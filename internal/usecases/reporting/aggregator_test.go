package reporting

import (
	"testing"
	"time"

	"github.com/Kyosue/vetra/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleAt(ts time.Time, amount float64) *domain.Sale {
	return &domain.Sale{
		TotalAmount: amount,
		Timestamp:   ts,
	}
}

func TestBuildAggregate_SemVendas(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	agg := BuildAggregate([]*domain.Sale{}, now)

	assert.Equal(t, 0.0, agg.DailyTotal)
	assert.Equal(t, 0.0, agg.WeeklyTotal)
	assert.Equal(t, 0.0, agg.MonthlyTotal)

	// Os buckets continuam presentes e rotulados mesmo sem nenhuma venda
	require.Len(t, agg.DailyTrend, 7)
	require.Len(t, agg.WeeklyDistribution, 7)
	require.Len(t, agg.MonthlyBreakdown, 6)

	for _, point := range agg.DailyTrend {
		assert.NotEmpty(t, point.Label)
		assert.Equal(t, 0.0, point.Amount)
	}

	expectedWeekdays := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	for i, point := range agg.WeeklyDistribution {
		assert.Equal(t, expectedWeekdays[i], point.Label)
		assert.Equal(t, 0.0, point.Amount)
	}
}

func TestBuildAggregate_TotaisPorJanela(t *testing.T) {
	// Sexta-feira, 15 de março de 2024, 10h
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	sales := []*domain.Sale{
		saleAt(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), 100),  // hoje
		saleAt(time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC), 50),   // dentro das 168h
		saleAt(time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC), 200),  // fora da janela mensal (corte em 15/02)
		saleAt(time.Date(2024, 2, 20, 12, 0, 0, 0, time.UTC), 300), // dentro da janela mensal
	}

	agg := BuildAggregate(sales, now)

	assert.Equal(t, 100.0, agg.DailyTotal)
	assert.Equal(t, 150.0, agg.WeeklyTotal)
	assert.Equal(t, 450.0, agg.MonthlyTotal)
}

func TestBuildAggregate_TendenciaDiaria(t *testing.T) {
	// Sexta-feira; a série cobre de sábado (09/03) até sexta (15/03)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	sales := []*domain.Sale{
		saleAt(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), 100),
		saleAt(time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC), 40),
		saleAt(time.Date(2024, 3, 12, 11, 0, 0, 0, time.UTC), 25),
		// 08/03 fica fora: a série diária cobre apenas os 7 dias de calendário
		saleAt(time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC), 50),
	}

	agg := BuildAggregate(sales, now)

	require.Len(t, agg.DailyTrend, 7)

	expectedLabels := []string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"}
	for i, point := range agg.DailyTrend {
		assert.Equal(t, expectedLabels[i], point.Label)
	}

	// Último bucket é sempre o dia de referência
	assert.Equal(t, 140.0, agg.DailyTrend[6].Amount)
	// Terça-feira (12/03)
	assert.Equal(t, 25.0, agg.DailyTrend[3].Amount)
	// Sábado (09/03) sem vendas
	assert.Equal(t, 0.0, agg.DailyTrend[0].Amount)
}

func TestBuildAggregate_DistribuicaoSemanal(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	sales := []*domain.Sale{
		saleAt(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), 100), // sexta
		saleAt(time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC), 50),  // sexta anterior, ainda dentro das 168h
		saleAt(time.Date(2024, 3, 13, 14, 0, 0, 0, time.UTC), 75), // quarta
		saleAt(time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC), 999), // fora do corte
	}

	agg := BuildAggregate(sales, now)

	require.Len(t, agg.WeeklyDistribution, 7)

	// Ordem fixa Dom..Sáb
	assert.Equal(t, "Sunday", agg.WeeklyDistribution[0].Label)
	assert.Equal(t, "Saturday", agg.WeeklyDistribution[6].Label)

	// As duas sextas dentro do corte caem no mesmo bucket
	assert.Equal(t, 150.0, agg.WeeklyDistribution[5].Amount)
	assert.Equal(t, 75.0, agg.WeeklyDistribution[3].Amount)

	// A soma da distribuição bate com o total semanal
	var sum float64
	for _, point := range agg.WeeklyDistribution {
		sum += point.Amount
	}
	assert.Equal(t, agg.WeeklyTotal, sum)
}

func TestBuildAggregate_QuebraMensal(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	sales := []*domain.Sale{
		saleAt(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), 100),
		saleAt(time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC), 200),
		saleAt(time.Date(2023, 10, 5, 12, 0, 0, 0, time.UTC), 30),
		// Setembro de 2023 fica fora da janela de 6 meses
		saleAt(time.Date(2023, 9, 30, 12, 0, 0, 0, time.UTC), 999),
	}

	agg := BuildAggregate(sales, now)

	require.Len(t, agg.MonthlyBreakdown, 6)

	expectedLabels := []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}
	for i, point := range agg.MonthlyBreakdown {
		assert.Equal(t, expectedLabels[i], point.Label)
	}

	assert.Equal(t, 30.0, agg.MonthlyBreakdown[0].Amount)
	assert.Equal(t, 200.0, agg.MonthlyBreakdown[4].Amount)
	assert.Equal(t, 100.0, agg.MonthlyBreakdown[5].Amount)
}

func TestBuildAggregate_LimiteMeiaNoite(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	midnight := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		timestamp     time.Time
		expectedDaily float64
	}{
		{
			name:          "Venda exatamente à meia-noite conta para hoje",
			timestamp:     midnight,
			expectedDaily: 10.0,
		},
		{
			name:          "Venda um nanossegundo antes da meia-noite fica em ontem",
			timestamp:     midnight.Add(-time.Nanosecond),
			expectedDaily: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := BuildAggregate([]*domain.Sale{saleAt(tt.timestamp, 10)}, now)
			assert.Equal(t, tt.expectedDaily, agg.DailyTotal)
		})
	}
}

func TestBuildAggregate_ClampDoMesAnterior(t *testing.T) {
	// 31 de março não existe em fevereiro; o corte mensal usa 29/02 (bissexto)
	now := time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC)

	sales := []*domain.Sale{
		saleAt(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), 80), // exatamente no corte
		saleAt(time.Date(2024, 2, 28, 23, 0, 0, 0, time.UTC), 999),
	}

	agg := BuildAggregate(sales, now)

	assert.Equal(t, 80.0, agg.MonthlyTotal)
}

func TestBuildAggregate_ClampViradaDeAno(t *testing.T) {
	// Janeiro menos um mês volta para dezembro do ano anterior
	now := time.Date(2025, 1, 31, 10, 0, 0, 0, time.UTC)

	sales := []*domain.Sale{
		saleAt(time.Date(2024, 12, 31, 8, 0, 0, 0, time.UTC), 60),
		saleAt(time.Date(2024, 12, 30, 8, 0, 0, 0, time.UTC), 999),
	}

	agg := BuildAggregate(sales, now)

	assert.Equal(t, 60.0, agg.MonthlyTotal)
}

func TestBuildAggregate_Deterministico(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	sales := []*domain.Sale{
		saleAt(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), 100),
		saleAt(time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC), 50),
		saleAt(time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC), 200),
	}

	first := BuildAggregate(sales, now)
	second := BuildAggregate(sales, now)

	assert.Equal(t, first, second)
}

func TestMonthBefore(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Dia existente no mês anterior mantém o dia",
			input:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Dia 31 em mês de 30 dias usa o último dia válido",
			input:    time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "31 de março em ano bissexto vira 29 de fevereiro",
			input:    time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "31 de março em ano comum vira 28 de fevereiro",
			input:    time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Janeiro volta para dezembro do ano anterior",
			input:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, monthBefore(tt.input))
		})
	}
}
