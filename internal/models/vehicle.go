package models

import "time"

type Vehicle struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ShopID   uint `json:"shop_id"`
	ClientID uint `json:"client_id"`

	Plate string `gorm:"size:10;not null" json:"plate"`
	Brand string `gorm:"size:50" json:"brand"`
	Model string `gorm:"size:50" json:"model"`
	Color string `gorm:"size:30" json:"color"`

	// Porte do veículo: small, medium, large ou xl — define a coluna
	// da matriz de preços usada nas ordens de serviço
	Size string `gorm:"size:10;default:'medium'" json:"size"`

	PhotoURL string `gorm:"size:500" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
