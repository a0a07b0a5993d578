package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthRange(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	ref := time.Date(2026, 3, 15, 22, 45, 0, 0, loc)
	start, end := MonthRange(ref, "America/Sao_Paulo")

	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, loc), end)
}

func TestMonthRangeViradaDeAno(t *testing.T) {
	loc := Location(DefaultTimezone)

	ref := time.Date(2025, 12, 31, 23, 59, 0, 0, loc)
	start, end := MonthRange(ref, DefaultTimezone)

	assert.Equal(t, time.December, start.Month())
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, loc), end)
}

func TestLocationFusoInvalidoCaiNoPadrao(t *testing.T) {
	loc := Location("nao/existe")
	assert.Equal(t, DefaultTimezone, loc.String())
}
