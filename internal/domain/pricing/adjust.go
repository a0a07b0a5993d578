package pricing

import "github.com/BLEINATS/estetica-auto-api/internal/models"

// ===============================
// Bulk Price Adjustment
// ===============================

// BulkAdjust aplica percentage (positivo ou negativo) a toda linha da
// matriz cujo porte casa com target ("all" atinge todas). Devolve apenas
// as linhas alteradas; as demais ficam intocadas. Preço resultante nunca
// fica negativo: descontos acima de 100% param no zero.
func BulkAdjust(entries []models.ServicePrice, target string, percentage float64) []models.ServicePrice {
	factor := 1 + percentage/100

	var changed []models.ServicePrice
	for _, e := range entries {
		if target != SelectorAll && e.Size != target {
			continue
		}
		newPrice := e.Price * factor
		if newPrice < 0 {
			newPrice = 0
		}
		if newPrice == e.Price {
			continue
		}
		e.Price = newPrice
		changed = append(changed, e)
	}
	return changed
}
