package pricing

import (
	"context"

	domain "github.com/BLEINATS/estetica-auto-api/internal/domain/pricing"
	"github.com/BLEINATS/estetica-auto-api/internal/httperr"
)

// ======================================================
// USE CASE
// ======================================================

// GetServiceCost expõe o custo derivado de um serviço isolado,
// usado na tela de receita de consumo.
type GetServiceCost struct {
	repo domain.Repository
}

func NewGetServiceCost(repo domain.Repository) *GetServiceCost {
	return &GetServiceCost{repo: repo}
}

func (uc *GetServiceCost) Execute(
	ctx context.Context,
	shopID uint,
	serviceID uint,
) (*domain.CostBreakdown, error) {

	if _, err := uc.repo.GetService(ctx, shopID, serviceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	recipe, err := uc.repo.ListConsumption(ctx, shopID, serviceID)
	if err != nil {
		return nil, err
	}

	inventory, err := uc.repo.ListInventory(ctx, shopID)
	if err != nil {
		return nil, err
	}

	cost := domain.ServiceCost(recipe, inventory)
	return &cost, nil
}
