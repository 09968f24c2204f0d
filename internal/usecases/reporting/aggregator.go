package reporting

import (
	"time"

	"github.com/Kyosue/vetra/internal/domain"
)

// BuildAggregate produz o resumo de vendas usado pelo relatório e pelos
// gráficos do dashboard. É uma função pura: recebe o histórico completo de
// vendas e o instante de referência, e recalcula tudo do zero a cada chamada.
// Lista vazia produz agregado zerado com todos os buckets rotulados.
//
// Janelas:
//   - dia: a partir da meia-noite de hoje
//   - semana: 168h literais antes da meia-noite de hoje
//   - mês: mesmo dia do mês anterior, com clamp para o último dia válido
func BuildAggregate(sales []*domain.Sale, now time.Time) *domain.ReportAggregate {
	today := startOfDay(now)
	weekAgo := today.Add(-7 * 24 * time.Hour)
	monthAgo := monthBefore(today)

	agg := &domain.ReportAggregate{}

	for _, sale := range sales {
		ts := sale.Timestamp

		if !ts.Before(today) {
			agg.DailyTotal += sale.TotalAmount
		}

		if !ts.Before(weekAgo) {
			agg.WeeklyTotal += sale.TotalAmount
		}

		if !ts.Before(monthAgo) {
			agg.MonthlyTotal += sale.TotalAmount
		}
	}

	agg.DailyTrend = buildDailyTrend(sales, today)
	agg.WeeklyDistribution = buildWeeklyDistribution(sales, weekAgo)
	agg.MonthlyBreakdown = buildMonthlyBreakdown(sales, today)

	return agg
}

// buildDailyTrend soma as vendas dos últimos 7 dias de calendário,
// um bucket por dia, do mais antigo para o mais recente.
// O limite superior de cada dia é exclusivo.
func buildDailyTrend(sales []*domain.Sale, today time.Time) []domain.ReportPoint {
	trend := make([]domain.ReportPoint, 0, 7)

	for i := 6; i >= 0; i-- {
		dayStart := today.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		var amount float64
		for _, sale := range sales {
			if !sale.Timestamp.Before(dayStart) && sale.Timestamp.Before(dayEnd) {
				amount += sale.TotalAmount
			}
		}

		trend = append(trend, domain.ReportPoint{
			Label:  dayStart.Format("Mon"),
			Amount: amount,
		})
	}

	return trend
}

// buildWeeklyDistribution soma as vendas da semana corrente (mesmo corte de
// 168h do total semanal) agrupadas pelo dia da semana, na ordem fixa Dom..Sáb.
func buildWeeklyDistribution(sales []*domain.Sale, weekAgo time.Time) []domain.ReportPoint {
	distribution := make([]domain.ReportPoint, 0, 7)

	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		var amount float64
		for _, sale := range sales {
			if !sale.Timestamp.Before(weekAgo) && sale.Timestamp.Weekday() == weekday {
				amount += sale.TotalAmount
			}
		}

		distribution = append(distribution, domain.ReportPoint{
			Label:  weekday.String(),
			Amount: amount,
		})
	}

	return distribution
}

// buildMonthlyBreakdown soma as vendas dos últimos 6 meses de calendário,
// um bucket por mês, do mais antigo para o mais recente. Diferente do bucket
// diário, o limite superior aqui é inclusivo (fim do último dia do mês).
func buildMonthlyBreakdown(sales []*domain.Sale, today time.Time) []domain.ReportPoint {
	breakdown := make([]domain.ReportPoint, 0, 6)

	for i := 5; i >= 0; i-- {
		monthStart := time.Date(today.Year(), today.Month()-time.Month(i), 1, 0, 0, 0, 0, today.Location())
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

		var amount float64
		for _, sale := range sales {
			if !sale.Timestamp.Before(monthStart) && !sale.Timestamp.After(monthEnd) {
				amount += sale.TotalAmount
			}
		}

		breakdown = append(breakdown, domain.ReportPoint{
			Label:  monthStart.Format("Jan"),
			Amount: amount,
		})
	}

	return breakdown
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// monthBefore retorna a mesma data um mês antes. Quando o dia não existe no
// mês anterior (ex.: 31 de março), usa o último dia válido em vez de deixar
// a data estourar para o mês seguinte.
func monthBefore(t time.Time) time.Time {
	year, month, day := t.Date()

	month--
	if month < time.January {
		month = time.December
		year--
	}

	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
