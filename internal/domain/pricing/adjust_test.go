package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BLEINATS/estetica-auto-api/internal/models"
)

func matrixFixture() []models.ServicePrice {
	return []models.ServicePrice{
		{ID: 1, ServiceID: 1, Size: "small", Price: 100},
		{ID: 2, ServiceID: 1, Size: "medium", Price: 200},
		{ID: 3, ServiceID: 1, Size: "large", Price: 300},
		{ID: 4, ServiceID: 1, Size: "xl", Price: 400},
		{ID: 5, ServiceID: 2, Size: "large", Price: 80},
	}
}

func TestBulkAdjust_OnlyTargetSize(t *testing.T) {
	entries := matrixFixture()

	changed := BulkAdjust(entries, "large", 10)

	require.Len(t, changed, 2)
	assert.InDelta(t, 330.0, changed[0].Price, 1e-9)
	assert.InDelta(t, 88.0, changed[1].Price, 1e-9)

	// entradas originais de outros portes intocadas (igualdade exata)
	assert.Equal(t, 100.0, entries[0].Price)
	assert.Equal(t, 200.0, entries[1].Price)
	assert.Equal(t, 400.0, entries[3].Price)
}

func TestBulkAdjust_InverseRestoresOriginal(t *testing.T) {
	entries := matrixFixture()

	first := BulkAdjust(entries, "large", 10)
	second := BulkAdjust(first, "large", -100.0/11.0)

	require.Len(t, second, 2)
	assert.InDelta(t, 300.0, second[0].Price, 1e-9)
	assert.InDelta(t, 80.0, second[1].Price, 1e-9)
}

func TestBulkAdjust_All(t *testing.T) {
	entries := matrixFixture()

	changed := BulkAdjust(entries, SelectorAll, -50)

	require.Len(t, changed, len(entries))
	for i, e := range changed {
		assert.InDelta(t, entries[i].Price/2, e.Price, 1e-9)
	}
}

func TestBulkAdjust_ClampsAtZero(t *testing.T) {
	entries := matrixFixture()

	// desconto acima de 100% para no zero, nunca vira preço negativo
	changed := BulkAdjust(entries, SelectorAll, -150)

	require.Len(t, changed, len(entries))
	for _, e := range changed {
		assert.Equal(t, 0.0, e.Price)
	}
}

func TestBulkAdjust_ZeroPercentIsNoop(t *testing.T) {
	entries := matrixFixture()

	changed := BulkAdjust(entries, SelectorAll, 0)

	assert.Empty(t, changed)
}

func TestParseSizeSelector(t *testing.T) {
	got, err := ParseSizeSelector(" ALL ")
	require.NoError(t, err)
	assert.Equal(t, SelectorAll, got)

	got, err = ParseSizeSelector("Large")
	require.NoError(t, err)
	assert.Equal(t, "large", got)

	_, err = ParseSizeSelector("jumbo")
	assert.Error(t, err)
}
