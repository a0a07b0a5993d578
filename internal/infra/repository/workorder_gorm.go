package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BLEINATS/estetica-auto-api/internal/domain/workorder"
	"github.com/BLEINATS/estetica-auto-api/internal/models"
)

type WorkOrderGormRepository struct {
	db *gorm.DB
}

func NewWorkOrderGormRepository(db *gorm.DB) *WorkOrderGormRepository {
	return &WorkOrderGormRepository{db: db}
}

var _ domain.Repository = (*WorkOrderGormRepository)(nil)

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *WorkOrderGormRepository) GetShopByID(
	ctx context.Context,
	id uint,
) (*models.DetailShop, error) {

	var shop models.DetailShop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *WorkOrderGormRepository) GetVehicle(
	ctx context.Context,
	shopID uint,
	vehicleID uint,
) (*models.Vehicle, error) {

	var v models.Vehicle
	if err := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", vehicleID, shopID).
		First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *WorkOrderGormRepository) GetService(
	ctx context.Context,
	shopID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND shop_id = ? AND active = true", serviceID, shopID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// Linha ausente na matriz vale 0 (Sob Consulta), não é erro
func (r *WorkOrderGormRepository) GetPriceForSize(
	ctx context.Context,
	shopID uint,
	serviceID uint,
	size string,
) (float64, error) {

	var price models.ServicePrice
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND service_id = ? AND size = ?", shopID, serviceID, size).
		First(&price).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return price.Price, nil
}

// --------------------------------------------------
// Work order
// --------------------------------------------------

func (r *WorkOrderGormRepository) CreateWorkOrder(
	ctx context.Context,
	wo *models.WorkOrder,
) error {

	return r.db.WithContext(ctx).Create(wo).Error
}

func (r *WorkOrderGormRepository) GetWorkOrder(
	ctx context.Context,
	shopID uint,
	workOrderID uint,
) (*models.WorkOrder, error) {

	var wo models.WorkOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND shop_id = ?", workOrderID, shopID).
		First(&wo).Error; err != nil {
		return nil, err
	}
	return &wo, nil
}

func (r *WorkOrderGormRepository) UpdateWorkOrder(
	ctx context.Context,
	wo *models.WorkOrder,
) error {

	return r.db.WithContext(ctx).Save(wo).Error
}

func (r *WorkOrderGormRepository) CompleteWithTransaction(
	ctx context.Context,
	wo *models.WorkOrder,
	tx *models.Transaction,
) error {

	return r.db.WithContext(ctx).Transaction(func(gtx *gorm.DB) error {
		if err := gtx.Save(wo).Error; err != nil {
			return err
		}
		return gtx.Create(tx).Error
	})
}
