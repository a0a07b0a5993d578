package pricing

import "github.com/BLEINATS/estetica-auto-api/internal/models"

// ===============================
// Service Cost
// ===============================

// CostBreakdown é o custo derivado da receita de consumo de um serviço.
// MissingItemIDs lista as linhas cujo item foi removido do estoque —
// estado válido de exibição, não erro.
type CostBreakdown struct {
	Total          float64 `json:"total"`
	MissingItemIDs []uint  `json:"missing_item_ids,omitempty"`
}

// ServiceCost acumula costPrice × quantidade × fator de conversão por linha
// da receita. Linhas com item inexistente são puladas em silêncio.
func ServiceCost(recipe []models.ServiceConsumption, inventory []models.InventoryItem) CostBreakdown {
	byID := make(map[uint]models.InventoryItem, len(inventory))
	for _, item := range inventory {
		byID[item.ID] = item
	}

	var out CostBreakdown
	for _, line := range recipe {
		item, ok := byID[line.InventoryItemID]
		if !ok {
			out.MissingItemIDs = append(out.MissingItemIDs, line.InventoryItemID)
			continue
		}
		factor := UnitFactor(item.Unit, line.UsageUnit)
		out.Total += item.CostPrice * line.Quantity * factor
	}
	return out
}
