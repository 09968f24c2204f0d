package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatCurrency formata um valor monetário com duas casas decimais,
// separador de milhar e o prefixo da moeda, ex.: R$ 1.234,56.
// Usado apenas na camada de apresentação; o agregado guarda o float puro.
func FormatCurrency(value float64) string {
	negative := value < 0

	s := strconv.FormatFloat(math.Abs(value), 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	formatted := "R$ " + grouped.String() + "," + fracPart
	if negative {
		formatted = "-" + formatted
	}

	return formatted
}
