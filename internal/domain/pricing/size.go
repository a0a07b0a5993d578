package pricing

import (
	"strings"

	"github.com/BLEINATS/estetica-auto-api/internal/httperr"
)

// ===============================
// Vehicle Size
// ===============================

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeXL     Size = "xl"
)

// Porte de referência usado nos cálculos de lucratividade
const ReferenceSize = SizeMedium

// Seletor aceito apenas no ajuste em massa
const SelectorAll = "all"

func AllSizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge, SizeXL}
}

func ParseSize(raw string) (Size, error) {
	s := Size(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeXL:
		return s, nil
	}
	return "", httperr.ErrBusiness("invalid_size")
}

// ParseSizeSelector aceita um porte válido ou "all"
func ParseSizeSelector(raw string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == SelectorAll {
		return v, nil
	}
	s, err := ParseSize(v)
	if err != nil {
		return "", err
	}
	return string(s), nil
}
