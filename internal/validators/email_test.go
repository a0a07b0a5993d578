package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "dono@oficina.com.br", NormalizeEmail("  Dono@Oficina.COM.br "))
}

// Casos que caem na checagem de forma, antes de qualquer consulta DNS
func TestIsEmailDeliverableFormaInvalida(t *testing.T) {
	invalid := []string{
		"",
		"sem-arroba",
		"@oficina.com",
		"dono@",
		"dono@localhost",
	}
	for _, e := range invalid {
		assert.False(t, IsEmailDeliverable(e), "email %q", e)
	}
}
