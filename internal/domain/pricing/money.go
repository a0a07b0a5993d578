package pricing

import (
	"strconv"
	"strings"

	"github.com/BLEINATS/estetica-auto-api/internal/httperr"
)

// ===============================
// Locale Amount Parsing
// ===============================

// ParseAmount converte texto decimal em formato brasileiro ("1.234,56",
// "49,90", "R$ 10") em valor numérico. Entrada que não parseia é
// rejeitada com invalid_amount — nunca vira 0 em silêncio.
func ParseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)

	if s == "" {
		return 0, httperr.ErrBusiness("invalid_amount")
	}

	// separador de milhar some, vírgula vira ponto decimal
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_amount")
	}
	return v, nil
}
