package pricing

import (
	"context"

	"github.com/BLEINATS/estetica-auto-api/internal/audit"
	domain "github.com/BLEINATS/estetica-auto-api/internal/domain/pricing"
	"github.com/BLEINATS/estetica-auto-api/internal/httperr"
	"github.com/BLEINATS/estetica-auto-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RecipeLineInput struct {
	InventoryItemID uint
	Quantity        float64
	UsageUnit       string
}

type ReplaceRecipeInput struct {
	ShopID    uint
	UserID    uint
	ServiceID uint

	Lines []RecipeLineInput
}

// ======================================================
// USE CASE
// ======================================================

// ReplaceRecipe substitui a receita de consumo inteira do serviço.
// A receita alimenta o custo derivado, então o relatório em cache
// da loja é invalidado junto.
type ReplaceRecipe struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache ReportCache
}

func NewReplaceRecipe(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache ReportCache,
) *ReplaceRecipe {
	return &ReplaceRecipe{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *ReplaceRecipe) Execute(
	ctx context.Context,
	in ReplaceRecipeInput,
) ([]models.ServiceConsumption, error) {

	service, err := uc.repo.GetService(ctx, in.ShopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	for _, l := range in.Lines {
		if l.Quantity <= 0 {
			return nil, httperr.ErrBusiness("invalid_quantity")
		}
	}

	lines := make([]models.ServiceConsumption, 0, len(in.Lines))
	for _, l := range in.Lines {
		lines = append(lines, models.ServiceConsumption{
			ShopID:          in.ShopID,
			ServiceID:       service.ID,
			InventoryItemID: l.InventoryItemID,
			Quantity:        l.Quantity,
			UsageUnit:       l.UsageUnit,
		})
	}

	if err := uc.repo.ReplaceConsumption(ctx, in.ShopID, service.ID, lines); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.ShopID)
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   in.ShopID,
		UserID:   &in.UserID,
		Action:   "recipe_replaced",
		Entity:   "service",
		EntityID: &service.ID,
		Metadata: map[string]any{
			"lines": len(lines),
		},
	})

	return lines, nil
}
