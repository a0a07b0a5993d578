package models

import "time"

// Linha da receita de consumo de um serviço: quanto de cada
// item de estoque uma execução gasta
type ServiceConsumption struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `json:"shop_id"`

	ServiceID       uint `json:"service_id"`
	InventoryItemID uint `json:"inventory_item_id"`

	Quantity  float64 `json:"quantity"`
	UsageUnit string  `gorm:"size:10" json:"usage_unit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
