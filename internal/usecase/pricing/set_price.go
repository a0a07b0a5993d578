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

type SetPriceInput struct {
	ShopID    uint
	UserID    uint
	ServiceID uint

	Size string

	// Valor em texto localizado, ex.: "1.234,56"
	Price string
}

// ======================================================
// USE CASE
// ======================================================

type SetPrice struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache ReportCache
}

func NewSetPrice(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache ReportCache,
) *SetPrice {
	return &SetPrice{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (uc *SetPrice) Execute(
	ctx context.Context,
	in SetPriceInput,
) (*models.ServicePrice, error) {

	size, err := domain.ParseSize(in.Size)
	if err != nil {
		return nil, err
	}

	newPrice, err := domain.ParseAmount(in.Price)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_price")
	}
	if newPrice < 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}

	if _, err := uc.repo.GetService(ctx, in.ShopID, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	entries, err := uc.repo.ListPricesForService(ctx, in.ShopID, in.ServiceID)
	if err != nil {
		return nil, err
	}

	entry := models.ServicePrice{
		ShopID:    in.ShopID,
		ServiceID: in.ServiceID,
		Size:      string(size),
	}
	for _, e := range entries {
		if e.Size == string(size) {
			entry = e
			break
		}
	}

	// edição idempotente: valor igual não toca a persistência
	if entry.ID != 0 && entry.Price == newPrice {
		return &entry, nil
	}

	entry.Price = newPrice
	if err := uc.repo.UpsertPrice(ctx, &entry); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.ShopID)
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   in.ShopID,
		UserID:   &in.UserID,
		Action:   "price_updated",
		Entity:   "service_price",
		EntityID: &entry.ID,
		Metadata: map[string]any{
			"service_id": in.ServiceID,
			"size":       size,
			"price":      newPrice,
		},
	})

	return &entry, nil
}
