package pricing

import (
	"context"

	domain "github.com/BLEINATS/estetica-auto-api/internal/domain/pricing"
)

// ======================================================
// OUTPUT
// ======================================================

type Report struct {
	HourlyRate float64 `json:"hourly_rate"`

	// Ranking principal: lucro líquido decrescente
	Ranking []domain.Record `json:"ranking"`

	// Visões secundárias
	TopPerformers []domain.Record `json:"top_performers"`
	ScheduleHogs  []domain.Record `json:"schedule_hogs"`
}

// ReportCache guarda o relatório pronto por loja. Falha de cache nunca
// derruba o cálculo.
type ReportCache interface {
	Get(ctx context.Context, shopID uint) (*Report, bool)
	Set(ctx context.Context, shopID uint, report *Report)
	Invalidate(ctx context.Context, shopID uint)
}

// ======================================================
// USE CASE
// ======================================================

type ComputeReport struct {
	repo  domain.Repository
	cache ReportCache
}

func NewComputeReport(repo domain.Repository, cache ReportCache) *ComputeReport {
	return &ComputeReport{repo: repo, cache: cache}
}

func (uc *ComputeReport) Execute(ctx context.Context, shopID uint) (*Report, error) {

	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, shopID); ok {
			return cached, nil
		}
	}

	shop, err := uc.repo.GetShopByID(ctx, shopID)
	if err != nil {
		return nil, err
	}

	services, err := uc.repo.ListActiveServices(ctx, shopID)
	if err != nil {
		return nil, err
	}

	prices, err := uc.repo.ListPrices(ctx, shopID)
	if err != nil {
		return nil, err
	}

	priceBySvc := make(map[uint]map[domain.Size]float64, len(services))
	for _, p := range prices {
		if priceBySvc[p.ServiceID] == nil {
			priceBySvc[p.ServiceID] = make(map[domain.Size]float64, 4)
		}
		priceBySvc[p.ServiceID][domain.Size(p.Size)] = p.Price
	}

	inventory, err := uc.repo.ListInventory(ctx, shopID)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(services))
	for _, svc := range services {
		recipe, err := uc.repo.ListConsumption(ctx, shopID, svc.ID)
		if err != nil {
			return nil, err
		}

		usage, err := uc.repo.CountServiceUsage(ctx, shopID, svc.ID)
		if err != nil {
			return nil, err
		}

		cost := domain.ServiceCost(recipe, inventory)
		records = append(records, domain.Compute(
			svc,
			priceBySvc[svc.ID],
			cost,
			shop.HourlyRate,
			usage,
		))
	}

	domain.RankByNetProfit(records)

	report := &Report{
		HourlyRate:    shop.HourlyRate,
		Ranking:       records,
		TopPerformers: domain.TopPerformers(records),
		ScheduleHogs:  domain.ScheduleHogs(records),
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, shopID, report)
	}

	return report, nil
}
