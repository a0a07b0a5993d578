package dto

import "time"

type WorkOrderListDTO struct {
	ID          uint       `json:"id"`
	Reference   string     `json:"reference"`
	Status      string     `json:"status"`
	TotalValue  float64    `json:"total_value"`
	ClientName  string     `json:"client_name"`
	Plate       string     `json:"plate"`
	ServiceName string     `json:"service_name"`
	ExtraCount  int        `json:"extra_count"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
