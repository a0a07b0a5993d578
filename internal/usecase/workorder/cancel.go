package workorder

import (
	"context"

	"github.com/BLEINATS/estetica-auto-api/internal/audit"
	domain "github.com/BLEINATS/estetica-auto-api/internal/domain/workorder"
	"github.com/BLEINATS/estetica-auto-api/internal/httperr"
	"github.com/BLEINATS/estetica-auto-api/internal/models"
	"github.com/BLEINATS/estetica-auto-api/internal/timezone"
)

type CancelWorkOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelWorkOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelWorkOrder {
	return &CancelWorkOrder{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelWorkOrder) Execute(
	ctx context.Context,
	shopID uint,
	userID uint,
	workOrderID uint,
) (*models.WorkOrder, error) {

	shop, err := uc.repo.GetShopByID(ctx, shopID)
	if err != nil {
		return nil, err
	}

	wo, err := uc.repo.GetWorkOrder(ctx, shopID, workOrderID)
	if err != nil {
		return nil, httperr.ErrBusiness("work_order_not_found")
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Cancel(wo, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateWorkOrder(ctx, wo); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "work_order_cancelled",
		Entity:   "work_order",
		EntityID: &wo.ID,
	})

	return wo, nil
}
