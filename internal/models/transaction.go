package models

import "time"

type Transaction struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `json:"shop_id"`

	WorkOrderID *uint `json:"work_order_id"`

	// income ou expense
	Type        string  `gorm:"size:10;not null" json:"type"`
	Description string  `gorm:"size:255" json:"description"`
	Amount      float64 `json:"amount"`
	Method      string  `gorm:"size:20" json:"method"`

	Date time.Time `json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
