package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPlateValid(t *testing.T) {
	valid := []string{
		"ABC1234",
		"abc1234",
		"ABC-1234",
		"BRA2E19",
		" rio2a18 ",
	}
	for _, p := range valid {
		assert.True(t, IsPlateValid(p), "placa %q", p)
	}

	invalid := []string{
		"",
		"ABC123",
		"AB12345",
		"ABCD123",
		"ABC1DE3",
		"1234ABC",
	}
	for _, p := range invalid {
		assert.False(t, IsPlateValid(p), "placa %q", p)
	}
}

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "ABC1234", NormalizePlate(" abc-1234 "))
	assert.Equal(t, "BRA2E19", NormalizePlate("bra2e19"))
}
