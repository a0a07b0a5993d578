package workorder

import (
	"context"

	"github.com/BLEINATS/estetica-auto-api/internal/audit"
	domain "github.com/BLEINATS/estetica-auto-api/internal/domain/workorder"
	"github.com/BLEINATS/estetica-auto-api/internal/httperr"
	"github.com/BLEINATS/estetica-auto-api/internal/models"
	"github.com/BLEINATS/estetica-auto-api/internal/timezone"
)

type CompleteWorkOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteWorkOrder(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteWorkOrder {
	return &CompleteWorkOrder{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteWorkOrder) Execute(
	ctx context.Context,
	shopID uint,
	userID uint,
	workOrderID uint,
	paymentMethod string,
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
	if err := domain.Complete(wo, now); err != nil {
		return nil, err
	}

	// Conclusão gera o lançamento financeiro na mesma transação
	tx := &models.Transaction{
		ShopID:      shopID,
		WorkOrderID: &wo.ID,
		Type:        "income",
		Description: "Ordem de serviço " + wo.Reference,
		Amount:      wo.TotalValue,
		Method:      paymentMethod,
		Date:        now,
	}

	if err := uc.repo.CompleteWithTransaction(ctx, wo, tx); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   &userID,
		Action:   "work_order_completed",
		Entity:   "work_order",
		EntityID: &wo.ID,
	})

	return wo, nil
}
