package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "Zero", value: 0, expected: "R$ 0,00"},
		{name: "Valor simples", value: 9.9, expected: "R$ 9,90"},
		{name: "Com separador de milhar", value: 1234.56, expected: "R$ 1.234,56"},
		{name: "Milhões", value: 1234567.89, expected: "R$ 1.234.567,89"},
		{name: "Exatamente mil", value: 1000, expected: "R$ 1.000,00"},
		{name: "Negativo", value: -42.5, expected: "-R$ 42,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.value))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 10.57, RoundWithTwoDecimalPlace(10.567))
	assert.Equal(t, 10.56, RoundWithTwoDecimalPlace(10.564))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func TestGenerateReceiptNumber(t *testing.T) {
	first, err := GenerateReceiptNumber()
	assert.NoError(t, err)
	assert.Len(t, first, 10)

	second, err := GenerateReceiptNumber()
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)

	for _, r := range first {
		assert.True(t, (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'))
	}
}
