package models

import "time"

type WorkOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ShopID uint       `json:"shop_id"`
	Shop   DetailShop `gorm:"foreignKey:ShopID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"shop"`

	// Referência pública usada em links de pagamento
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	VehicleID uint    `json:"vehicle_id"`
	Vehicle   Vehicle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"vehicle"`

	// Serviço principal; serviços extras ficam em Items
	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Items []WorkOrderItem `gorm:"constraint:OnDelete:CASCADE;" json:"items,omitempty"`

	TotalValue float64 `json:"total_value"`
	Status     string  `gorm:"size:20;default:'open'" json:"status"`
	Notes      string  `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Serviço adicional de uma OS, com o preço congelado no momento da criação
type WorkOrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	WorkOrderID uint    `json:"work_order_id"`
	ServiceID   uint    `json:"service_id"`
	Price       float64 `json:"price"`
}
