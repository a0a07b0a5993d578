package workorder

import (
	"context"

	"github.com/BLEINATS/estetica-auto-api/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetShopByID(
		ctx context.Context,
		id uint,
	) (*models.DetailShop, error)

	GetVehicle(
		ctx context.Context,
		shopID uint,
		vehicleID uint,
	) (*models.Vehicle, error)

	GetService(
		ctx context.Context,
		shopID uint,
		serviceID uint,
	) (*models.Service, error)

	GetPriceForSize(
		ctx context.Context,
		shopID uint,
		serviceID uint,
		size string,
	) (float64, error)

	// -------- Work order --------
	CreateWorkOrder(
		ctx context.Context,
		wo *models.WorkOrder,
	) error

	GetWorkOrder(
		ctx context.Context,
		shopID uint,
		workOrderID uint,
	) (*models.WorkOrder, error)

	UpdateWorkOrder(
		ctx context.Context,
		wo *models.WorkOrder,
	) error

	// CompleteWithTransaction grava a OS concluída e o lançamento
	// financeiro na mesma transação
	CompleteWithTransaction(
		ctx context.Context,
		wo *models.WorkOrder,
		tx *models.Transaction,
	) error
}
