package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), date)
}

func TestParseDate_FormatoInvalido(t *testing.T) {
	for _, dateStr := range []string{"15-03-2024", "2024/03/15", "2024-13-01", ""} {
		t.Run(dateStr, func(t *testing.T) {
			_, err := ParseDate(dateStr)
			assert.Error(t, err)
		})
	}
}
