package pricing

import "strings"

// ===============================
// Unit Conversion
// ===============================

type unitPair struct {
	inventory string
	usage     string
}

// Registro de conversões unidade-do-estoque → unidade-de-uso.
// Qualquer par fora do registro usa fator 1 (sem conversão).
var conversionFactors = map[unitPair]float64{
	{"l", "ml"}: 0.001,
	{"kg", "g"}: 0.001,
	{"ml", "l"}: 1000,
	{"g", "kg"}: 1000,
}

// UnitFactor devolve o multiplicador aplicado ao custo unitário quando a
// receita consome em unidade diferente da nativa do estoque. A comparação
// é case-insensitive.
func UnitFactor(inventoryUnit, usageUnit string) float64 {
	pair := unitPair{
		inventory: strings.ToLower(strings.TrimSpace(inventoryUnit)),
		usage:     strings.ToLower(strings.TrimSpace(usageUnit)),
	}
	if f, ok := conversionFactors[pair]; ok {
		return f
	}
	return 1
}
