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

type BulkAdjustInput struct {
	ShopID uint
	UserID uint

	// Porte alvo ("small"..."xl") ou "all"
	Target string

	// Percentual em texto localizado, ex.: "-7,5"
	Percentage string
}

// ======================================================
// USE CASE
// ======================================================

type BulkAdjustPrices struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache ReportCache
}

func NewBulkAdjustPrices(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache ReportCache,
) *BulkAdjustPrices {
	return &BulkAdjustPrices{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *BulkAdjustPrices) Execute(
	ctx context.Context,
	in BulkAdjustInput,
) ([]models.ServicePrice, error) {

	target, err := domain.ParseSizeSelector(in.Target)
	if err != nil {
		return nil, err
	}

	percentage, err := domain.ParseAmount(in.Percentage)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_percentage")
	}

	entries, err := uc.repo.ListPrices(ctx, in.ShopID)
	if err != nil {
		return nil, err
	}

	changed := domain.BulkAdjust(entries, target, percentage)
	if len(changed) == 0 {
		return []models.ServicePrice{}, nil
	}

	if err := uc.repo.SavePrices(ctx, changed); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.ShopID)
	}

	uc.audit.Dispatch(audit.Event{
		ShopID: in.ShopID,
		UserID: &in.UserID,
		Action: "prices_bulk_adjusted",
		Entity: "service_price",
		Metadata: map[string]any{
			"target":     target,
			"percentage": percentage,
			"changed":    len(changed),
		},
	})

	return changed, nil
}
