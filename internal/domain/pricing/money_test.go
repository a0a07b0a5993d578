package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BLEINATS/estetica-auto-api/internal/httperr"
)

func TestParseAmount_BrazilianFormats(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"49,90", 49.90},
		{"1.234,56", 1234.56},
		{"R$ 10", 10},
		{"R$1.000,00", 1000},
		{"0", 0},
		{"-7,5", -7.5},
		{" 200 ", 200},
	}

	for _, tc := range cases {
		got, err := ParseAmount(tc.raw)
		require.NoError(t, err, "raw=%q", tc.raw)
		assert.InDelta(t, tc.want, got, 1e-9, "raw=%q", tc.raw)
	}
}

func TestParseAmount_RejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "12,3,4", "R$", "10,ab"} {
		_, err := ParseAmount(raw)
		require.Error(t, err, "raw=%q", raw)
		assert.True(t, httperr.IsBusiness(err, "invalid_amount"), "raw=%q", raw)
	}
}
