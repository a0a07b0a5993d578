package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BLEINATS/estetica-auto-api/internal/domain/pricing"
	"github.com/BLEINATS/estetica-auto-api/internal/models"
)

type PricingGormRepository struct {
	db *gorm.DB
}

func NewPricingGormRepository(db *gorm.DB) *PricingGormRepository {
	return &PricingGormRepository{db: db}
}

var _ domain.Repository = (*PricingGormRepository)(nil)

// --------------------------------------------------
// Shop
// --------------------------------------------------

func (r *PricingGormRepository) GetShopByID(
	ctx context.Context,
	id uint,
) (*models.DetailShop, error) {

	var shop models.DetailShop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *PricingGormRepository) GetService(
	ctx context.Context,
	shopID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", serviceID, shopID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *PricingGormRepository) ListActiveServices(
	ctx context.Context,
	shopID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND active = true", shopID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Price matrix
// --------------------------------------------------

func (r *PricingGormRepository) ListPrices(
	ctx context.Context,
	shopID uint,
) ([]models.ServicePrice, error) {

	var prices []models.ServicePrice
	if err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("service_id ASC, size ASC").
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *PricingGormRepository) ListPricesForService(
	ctx context.Context,
	shopID uint,
	serviceID uint,
) ([]models.ServicePrice, error) {

	var prices []models.ServicePrice
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND service_id = ?", shopID, serviceID).
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *PricingGormRepository) UpsertPrice(
	ctx context.Context,
	price *models.ServicePrice,
) error {

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "service_id"}, {Name: "size"}},
			DoUpdates: clause.AssignmentColumns([]string{"price", "updated_at"}),
		}).
		Create(price).Error
}

func (r *PricingGormRepository) SavePrices(
	ctx context.Context,
	prices []models.ServicePrice,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range prices {
			if err := tx.Save(&prices[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// --------------------------------------------------
// Cost inputs
// --------------------------------------------------

func (r *PricingGormRepository) ListConsumption(
	ctx context.Context,
	shopID uint,
	serviceID uint,
) ([]models.ServiceConsumption, error) {

	var recipe []models.ServiceConsumption
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND service_id = ?", shopID, serviceID).
		Find(&recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// ReplaceConsumption troca a receita inteira do serviço de uma vez
func (r *PricingGormRepository) ReplaceConsumption(
	ctx context.Context,
	shopID uint,
	serviceID uint,
	lines []models.ServiceConsumption,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("shop_id = ? AND service_id = ?", shopID, serviceID).
			Delete(&models.ServiceConsumption{}).Error; err != nil {
			return err
		}

		if len(lines) == 0 {
			return nil
		}
		return tx.Create(&lines).Error
	})
}

func (r *PricingGormRepository) ListInventory(
	ctx context.Context,
	shopID uint,
) ([]models.InventoryItem, error) {

	var items []models.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// --------------------------------------------------
// Usage history
// --------------------------------------------------

// Conta OSs que referenciam o serviço como principal ou como item extra
func (r *PricingGormRepository) CountServiceUsage(
	ctx context.Context,
	shopID uint,
	serviceID uint,
) (int, error) {

	itemOrders := r.db.
		Model(&models.WorkOrderItem{}).
		Select("work_order_id").
		Where("service_id = ?", serviceID)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.WorkOrder{}).
		Where("shop_id = ?", shopID).
		Where("service_id = ? OR id IN (?)", serviceID, itemOrders).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
