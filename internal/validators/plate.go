package validators

import (
	"regexp"
	"strings"
)

// Placas aceitas: padrão antigo (ABC1234) e Mercosul (ABC1D23)
var (
	legacyPlate   = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	mercosulPlate = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
)

func NormalizePlate(plate string) string {
	p := strings.ToUpper(strings.TrimSpace(plate))
	return strings.ReplaceAll(p, "-", "")
}

func IsPlateValid(plate string) bool {
	p := NormalizePlate(plate)
	return legacyPlate.MatchString(p) || mercosulPlate.MatchString(p)
}
