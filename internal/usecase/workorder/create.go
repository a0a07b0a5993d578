package workorder

import (
	"context"

	"github.com/google/uuid"

	"github.com/BLEINATS/estetica-auto-api/internal/audit"
	domain "github.com/BLEINATS/estetica-auto-api/internal/domain/workorder"
	"github.com/BLEINATS/estetica-auto-api/internal/httperr"
	"github.com/BLEINATS/estetica-auto-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateWorkOrderInput struct {
	ShopID uint
	UserID uint

	ClientID  uint
	VehicleID uint

	// Serviço principal + extras
	ServiceID       uint
	ExtraServiceIDs []uint

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateWorkOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateWorkOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateWorkOrder {
	return &CreateWorkOrder{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateWorkOrder) Execute(
	ctx context.Context,
	in CreateWorkOrderInput,
) (*models.WorkOrder, error) {

	// --------------------------------------------------
	// Veículo define o porte usado na matriz de preços
	// --------------------------------------------------
	vehicle, err := uc.repo.GetVehicle(ctx, in.ShopID, in.VehicleID)
	if err != nil {
		return nil, httperr.ErrBusiness("vehicle_not_found")
	}

	if _, err := uc.repo.GetService(ctx, in.ShopID, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// Preço congelado na criação (linha ausente = 0, Sob Consulta)
	// --------------------------------------------------
	total, err := uc.repo.GetPriceForSize(ctx, in.ShopID, in.ServiceID, vehicle.Size)
	if err != nil {
		return nil, err
	}

	var items []models.WorkOrderItem
	for _, extraID := range in.ExtraServiceIDs {
		if extraID == in.ServiceID {
			continue
		}
		if _, err := uc.repo.GetService(ctx, in.ShopID, extraID); err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		price, err := uc.repo.GetPriceForSize(ctx, in.ShopID, extraID, vehicle.Size)
		if err != nil {
			return nil, err
		}
		items = append(items, models.WorkOrderItem{
			ServiceID: extraID,
			Price:     price,
		})
		total += price
	}

	wo := &models.WorkOrder{
		ShopID:     in.ShopID,
		Reference:  uuid.NewString(),
		ClientID:   in.ClientID,
		VehicleID:  in.VehicleID,
		ServiceID:  in.ServiceID,
		Items:      items,
		TotalValue: total,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	if err := uc.repo.CreateWorkOrder(ctx, wo); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   in.ShopID,
		UserID:   &in.UserID,
		Action:   "work_order_created",
		Entity:   "work_order",
		EntityID: &wo.ID,
	})

	return wo, nil
}
