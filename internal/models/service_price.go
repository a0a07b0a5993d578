package models

import "time"

// Uma linha por (serviço, porte) já precificado. Linha ausente
// significa preço 0 ("Sob Consulta").
type ServicePrice struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `json:"shop_id"`

	ServiceID uint    `gorm:"uniqueIndex:idx_service_size" json:"service_id"`
	Size      string  `gorm:"size:10;uniqueIndex:idx_service_size" json:"size"`
	Price     float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
