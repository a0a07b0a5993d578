package models

import "time"

type InventoryItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `json:"shop_id"`

	Name string `gorm:"size:100;not null" json:"name"`

	// Unidade nativa do estoque: L, mL, kg, g, un...
	Unit      string  `gorm:"size:10;not null" json:"unit"`
	CostPrice float64 `json:"cost_price"`

	Stock    float64 `json:"stock"`
	MinStock float64 `json:"min_stock"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
