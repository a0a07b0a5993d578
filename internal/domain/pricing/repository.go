package pricing

import (
	"context"

	"github.com/BLEINATS/estetica-auto-api/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetShopByID(
		ctx context.Context,
		id uint,
	) (*models.DetailShop, error)

	GetService(
		ctx context.Context,
		shopID uint,
		serviceID uint,
	) (*models.Service, error)

	ListActiveServices(
		ctx context.Context,
		shopID uint,
	) ([]models.Service, error)

	// -------- Price matrix --------
	ListPrices(
		ctx context.Context,
		shopID uint,
	) ([]models.ServicePrice, error)

	ListPricesForService(
		ctx context.Context,
		shopID uint,
		serviceID uint,
	) ([]models.ServicePrice, error)

	UpsertPrice(
		ctx context.Context,
		price *models.ServicePrice,
	) error

	SavePrices(
		ctx context.Context,
		prices []models.ServicePrice,
	) error

	// -------- Cost inputs --------
	ListConsumption(
		ctx context.Context,
		shopID uint,
		serviceID uint,
	) ([]models.ServiceConsumption, error)

	ReplaceConsumption(
		ctx context.Context,
		shopID uint,
		serviceID uint,
		lines []models.ServiceConsumption,
	) error

	ListInventory(
		ctx context.Context,
		shopID uint,
	) ([]models.InventoryItem, error)

	// -------- Usage history --------
	CountServiceUsage(
		ctx context.Context,
		shopID uint,
		serviceID uint,
	) (int, error)
}
