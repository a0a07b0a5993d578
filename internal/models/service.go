package models

import "time"

type Service struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `json:"shop_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Category    string `gorm:"size:50" json:"category"`

	// Tempo padrão de execução em minutos
	StandardTimeMin int  `json:"standard_time_min"`
	Active          bool `gorm:"default:true" json:"active"`

	Prices      []ServicePrice       `gorm:"constraint:OnDelete:CASCADE;" json:"prices,omitempty"`
	Consumption []ServiceConsumption `gorm:"constraint:OnDelete:CASCADE;" json:"consumption,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
