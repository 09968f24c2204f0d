package utils

import "time"

// ParseDate interpreta uma data no formato YYYY-MM-DD, usado nos
// parâmetros de consulta da API. A hora resultante é meia-noite UTC.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(time.DateOnly, dateStr)
}
